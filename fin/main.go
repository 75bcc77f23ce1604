package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finboard/finboard/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Local .env may carry GEMINI_API_KEY for the assistant.
	godotenv.Load()

	// Shell completion: exits early when invoked by the shell.
	completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	date := predict.Nothing
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"home":    predict.Dirs("*"),
			"dataset": predict.Files("*.json"),
			"locale":  predict.Set{"en", "de", "fr"},
		},
		Sub: map[string]*complete.Command{
			"summary": {Flags: map[string]complete.Predictor{"d": date}},
			"trend":   {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"health":  {Flags: map[string]complete.Predictor{"d": date}},
			"notifications": {Flags: map[string]complete.Predictor{
				"d":        date,
				"read":     predict.Nothing,
				"read-all": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"q":      predict.Nothing,
				"cat":    predict.Nothing,
				"status": predict.Set{"completed", "pending", "failed", "refunded"},
				"from":   date,
				"to":     date,
			}},
			"add": {Flags: map[string]complete.Predictor{
				"d":      date,
				"desc":   predict.Nothing,
				"amount": predict.Nothing,
				"c":      predict.Nothing,
				"cat":    predict.Nothing,
				"k":      predict.Set{"income", "expense"},
				"m":      predict.Set{"card", "bank", "cash", "crypto", "paypal"},
			}},
			"budget": {},
			"bills":  {Flags: map[string]complete.Predictor{"d": date, "autopay": predict.Nothing}},
			"goals":  {Flags: map[string]complete.Predictor{"d": date}},
			"subs":   {},
			"invest": {},
			"calc": {
				Sub: map[string]*complete.Command{
					"loan":    {},
					"growth":  {},
					"savings": {},
				},
			},
			"convert": {},
			"theme":   {Sub: map[string]*complete.Command{"dark": {}, "light": {}}},
			"topic":   {},
			"assist":  {},
		},
	}
}
