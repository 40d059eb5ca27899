package advisor

import (
	"context"
	"fmt"

	"github.com/shlok12343/stockfolio/date"
	"github.com/shlok12343/stockfolio/docs"
	"github.com/shlok12343/stockfolio/renderer"
	"google.golang.org/genai"
)

// dateProperty is the shared schema for tool date arguments.
var dateProperty = &genai.Schema{
	Type: genai.TypeString,
	Description: `The date to query, YYYY-MM-DD. Today is the default.

` + must(docs.GetTopic("dates")),
}

// declarations lists the portfolio tools offered to the model.
func (a *Advisor) declarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        "Holdings",
			Description: "Holdings lists the stocks held on the given day with their share quantities.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateProperty},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of held tickers and quantities.",
			},
		},
		{
			Name:        "Distribution",
			Description: "Distribution reports how the portfolio value splits across stocks on the given day, with the total value.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateProperty},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of tickers, values and the total portfolio value.",
			},
		},
		{
			Name:        "ClosingPrice",
			Description: "ClosingPrice returns one stock's closing price on the given day, snapping to a nearby trading day if needed.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"ticker": {
						Type:        genai.TypeString,
						Description: "The stock ticker, e.g. AAPL.",
					},
					"date": dateProperty,
				},
				Required: []string{"ticker"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The closing price in dollars.",
			},
		},
	}
}

// call dispatches one function call from the model to the matching portfolio
// query. Errors come back inside the response so the model can recover.
func (a *Advisor) call(ctx context.Context, fc *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: fc.ID, Name: fc.Name}

	output, err := a.dispatch(fc.Name, fc.Args)
	if err != nil {
		fresp.Response = map[string]any{"error": err.Error()}
		return fresp
	}
	fresp.Response = map[string]any{"output": output}
	return fresp
}

func (a *Advisor) dispatch(name string, args map[string]any) (string, error) {
	switch name {
	case "Holdings":
		on, err := parseDate(args)
		if err != nil {
			return "", err
		}
		return renderer.RenderHoldings(a.portfolio.Holdings(on)), nil

	case "Distribution":
		on, err := parseDate(args)
		if err != nil {
			return "", err
		}
		report, err := a.portfolio.DistributionOnDate(on)
		if err != nil {
			return "", err
		}
		return renderer.RenderDistribution(report), nil

	case "ClosingPrice":
		ticker, ok := args["ticker"].(string)
		if !ok {
			return "", fmt.Errorf("argument 'ticker' is not a string as expected but %T", args["ticker"])
		}
		stock := a.portfolio.Stock(ticker)
		if stock == nil {
			return "", fmt.Errorf("no stock %q in the portfolio", ticker)
		}
		on, err := parseDate(args)
		if err != nil {
			return "", err
		}
		price, err := stock.ClosingPrice(on)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%.2f", price), nil

	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
}

func parseDate(args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	d, err := date.Parse(sdate)
	if err != nil {
		return date.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format\n\n%s", sdate, must(docs.GetTopic("dates")))
	}
	return d, nil
}
