package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command tree for shell completion. It mirrors the
// subcommands registered in Register.
func Completion() *complete.Command {
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	rangeFlags := map[string]complete.Predictor{"s": predict.Nothing, "d": predict.Nothing}
	windowFlags := map[string]complete.Predictor{"s": predict.Nothing, "d": predict.Nothing, "x": predict.Nothing}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.folio"),
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"create":  {Flags: map[string]complete.Predictor{"owner": predict.Nothing}},
			"buy":     {Flags: dateFlags},
			"sell":    {Flags: dateFlags},
			"refresh": {Flags: map[string]complete.Predictor{"full": predict.Nothing}},

			"price":     {Flags: map[string]complete.Predictor{"d": predict.Nothing, "latest": predict.Nothing}},
			"value":     {Flags: dateFlags},
			"movavg":    {Flags: map[string]complete.Predictor{"d": predict.Nothing, "x": predict.Nothing}},
			"gainloss":  {Flags: rangeFlags},
			"crossover": {Flags: windowFlags},

			"holdings":     {Flags: dateFlags},
			"distribution": {Flags: dateFlags},
			"chart":        {Flags: rangeFlags},

			"rebalance": {Flags: dateFlags},

			"topic":  {Args: predict.Set{"readme", "dates", "charts", "rebalancing", "ledger", "*"}},
			"assist": {},
		},
	}
}
