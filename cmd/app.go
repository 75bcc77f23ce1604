// Package cmd implements the CLI application presenting the finance
// dashboard in the terminal.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finboard/finboard"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")
	c.Register(&healthCmd{}, "reports")
	c.Register(&notifyCmd{}, "reports")

	c.Register(&txCmd{}, "transactions")
	c.Register(&addCmd{}, "transactions")

	c.Register(&budgetCmd{}, "planning")
	c.Register(&billsCmd{}, "planning")
	c.Register(&goalsCmd{}, "planning")
	c.Register(&subsCmd{}, "planning")
	c.Register(&investCmd{}, "planning")
	c.Register(&calcCmd{}, "planning")

	c.Register(&convertCmd{}, "tools")
	c.Register(&themeCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&assistCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var homeDir = flag.String("home", defaultHome(), "Directory for preferences and user-added transactions")
var datasetFile = flag.String("dataset", "", "Path to a JSON dataset file. Uses the built-in demo dataset when empty.")
var localeFlag = flag.String("locale", "en", "Locale for number and currency formatting (en, de, fr)")

func defaultHome() string {
	if env := os.Getenv("FINBOARD_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finboard"
	}
	return filepath.Join(home, ".finboard")
}

// OpenPrefs opens the preference cache in the app home directory.
func OpenPrefs() (*finboard.Prefs, error) {
	return finboard.OpenPrefs(*homeDir)
}

// LoadDataset loads the dataset named by the -dataset flag, or the
// built-in demo dataset.
func LoadDataset() (*finboard.Dataset, error) {
	if *datasetFile == "" {
		return finboard.DefaultDataset(), nil
	}
	f, err := os.Open(*datasetFile)
	if err != nil {
		return nil, fmt.Errorf("could not open dataset %q: %w", *datasetFile, err)
	}
	defer f.Close()
	ds, err := finboard.DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode dataset %q: %w", *datasetFile, err)
	}
	return ds, nil
}

// LoadStore builds the store from the dataset plus the user-added
// records cached in the app home.
func LoadStore() (*finboard.Store, error) {
	ds, err := LoadDataset()
	if err != nil {
		return nil, err
	}
	prefs, err := OpenPrefs()
	if err != nil {
		return nil, err
	}
	ds.Records = append(ds.Records, prefs.UserRecords()...)
	return finboard.NewStore(ds), nil
}
