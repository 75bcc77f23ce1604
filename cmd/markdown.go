package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/finboard/finboard"
	"github.com/finboard/finboard/renderer"
)

// printMarkdown renders markdown to the terminal using the preferred
// theme. On any rendering problem the raw markdown is printed instead.
func printMarkdown(md string) {
	theme := finboard.DefaultTheme
	if prefs, err := OpenPrefs(); err == nil {
		theme = prefs.Theme()
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// newFormatter builds the renderer formatter for the -locale flag.
func newFormatter() *renderer.Formatter {
	return renderer.NewFormatter(*localeFlag)
}
