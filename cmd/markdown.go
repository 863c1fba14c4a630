package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// glamourize renders markdown for the terminal. On any rendering problem the
// raw markdown is returned, which is still readable.
func glamourize(md string) string {
	out, err := glamour.Render(md, App().Style)
	if err != nil {
		return md
	}
	return out
}

// printMarkdown renders markdown to stdout.
func printMarkdown(md string) {
	fmt.Print(glamourize(md))
}
