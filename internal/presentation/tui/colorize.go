package tui

import (
	"strings"

	"github.com/muesli/termenv"
)

var baseColors = map[byte]string{
	'A': "#4ade80",
	'T': "#f87171",
	'G': "#facc15",
	'C': "#60a5fa",
}

// NewBaseColorizer returns a function that paints each nucleotide of a sequence
// in its own colour for the given profile. Other bytes are left untouched.
func NewBaseColorizer(p termenv.Profile) func(string) string {
	if p == termenv.Ascii {
		return func(seq string) string { return seq }
	}
	return func(seq string) string {
		var b strings.Builder
		for i := 0; i < len(seq); i++ {
			c := seq[i]
			hex, ok := baseColors[c]
			if !ok {
				b.WriteByte(c)
				continue
			}
			b.WriteString(termenv.String(string(c)).Foreground(p.Color(hex)).String())
		}
		return b.String()
	}
}
