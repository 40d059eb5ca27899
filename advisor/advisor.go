// Package advisor is an interactive chat assistant that answers questions
// about a portfolio. It binds ledger queries as Gemini function tools so the
// model can look up holdings, distribution or prices instead of guessing.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shlok12343/stockfolio"
	"github.com/shlok12343/stockfolio/docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const prompt = "assist> "

// Advisor runs the chat session over one portfolio.
type Advisor struct {
	w         io.Writer
	r         *bufio.Reader
	portfolio *stockfolio.SmartPortfolio
	chat      *genai.Chat
}

// New creates a new Advisor for the given portfolio. Output goes to w
// (e.g. os.Stdout) and user input is read from r (e.g. os.Stdin).
func New(p *stockfolio.SmartPortfolio, w io.Writer, r io.Reader) *Advisor {
	return &Advisor{
		w:         w,
		r:         bufio.NewReader(r),
		portfolio: p,
	}
}

// Start creates the Gemini chat with the portfolio tools declared.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	instruction := `You are a financial assistant for the user's stock portfolio.
Use the available tools to read the portfolio before answering: they give you
the held tickers, the value distribution and closing prices. Never invent
figures the tools did not return.

Dates use the format described below.

` + must(docs.GetTopic("dates"))

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: a.declarations()},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}

	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Run starts the interactive REPL session. Prompts, if any, are consumed
// before reading from the input, which makes one-shot questions scriptable.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to sfol assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}

// ask sends parts to the chat and resolves function calls until the model
// produces a text response.
func (a *Advisor) ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from model")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.call(ctx, part0.FunctionCall)
		log.Printf("tool %q: %v", part0.FunctionCall.Name, fresp.Response)
		return a.ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
