package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Helix ASCII art banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Base colours, one per line, in mapping-table order
	lines := []struct {
		text  string
		color string
	}{
		{"  _          _ _       ", baseColors['A']},
		{" | |__   ___| (_)_  __ ", baseColors['T']},
		{" | '_ \\ / _ \\ | \\ \\/ / ", baseColors['G']},
		{" | | | |  __/ | |>  <  ", baseColors['C']},
		{" |_| |_|\\___|_|_/_/\\_\\ ", baseColors['A']},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
