package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or set the terminal rendering theme" }
func (*themeCmd) Usage() string {
	return `fin theme [dark|light]

  Without an argument, prints the current theme. With one, persists it
  in the app home.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prefs, err := OpenPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Println(prefs.Theme())
		return subcommands.ExitSuccess
	}

	theme := f.Arg(0)
	if theme != "dark" && theme != "light" {
		fmt.Fprintf(os.Stderr, "unknown theme %q: expected dark or light\n", theme)
		return subcommands.ExitUsageError
	}
	if err := prefs.SetTheme(theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving theme: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("theme set to %s\n", theme)
	return subcommands.ExitSuccess
}
