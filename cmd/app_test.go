package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func testLedgerFile(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "portfolio.folio")
	old := *ledgerFile
	*ledgerFile = file
	t.Cleanup(func() { *ledgerFile = old })
	return file
}

func TestCreateCmd(t *testing.T) {
	file := testLedgerFile(t)

	c := &createCmd{owner: "pat"}
	f := flag.NewFlagSet("create", flag.ContinueOnError)
	if err := f.Parse([]string{"retirement"}); err != nil {
		t.Fatal(err)
	}

	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("create exited with %v", status)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := "name:retirement\nstocks:\n"
	if string(content) != want {
		t.Errorf("ledger file = %q want %q", content, want)
	}

	// A second create on the same file must refuse to overwrite it.
	if status := c.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Errorf("create over an existing ledger exited with %v", status)
	}
}

func TestCreateCmdNeedsName(t *testing.T) {
	testLedgerFile(t)

	c := &createCmd{}
	f := flag.NewFlagSet("create", flag.ContinueOnError)
	if status := c.Execute(context.Background(), f); status != subcommands.ExitUsageError {
		t.Errorf("create without a name exited with %v", status)
	}
}

// TestCompletionCoversCommands keeps the shell completion tree in sync with
// the registered subcommands.
func TestCompletionCoversCommands(t *testing.T) {
	sub := Completion().Sub
	for _, name := range []string{
		"create", "buy", "sell", "refresh",
		"price", "value", "movavg", "gainloss", "crossover",
		"holdings", "distribution", "chart",
		"rebalance", "topic", "assist",
	} {
		if _, ok := sub[name]; !ok {
			t.Errorf("completion tree is missing %q", name)
		}
	}
}

func TestGatewayRequiresAPIKey(t *testing.T) {
	t.Setenv(apiKeyEnv, "")
	if _, err := gateway(); err == nil || !strings.Contains(err.Error(), apiKeyEnv) {
		t.Errorf("gateway() without %s = %v, want an error naming the variable", apiKeyEnv, err)
	}
}
