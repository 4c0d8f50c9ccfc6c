package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/helix/pkg/domain"
)

// MaxBytes bounds how many bytes GenerateMermaid draws before eliding the rest.
const MaxBytes = 32

// GenerateMermaid produces a Mermaid flowchart tracing each byte of a result
// through its bit pattern and positive-strand bases to the paired bases of the
// negative strand.
// Shapes:
// - Input: ((Circle))
// - Byte: [/Parallelogram/]
// - Bases: [Rectangle]
// Negative-strand nodes get the "failed" class when that strand has no text.
func GenerateMermaid(res *domain.Result) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	if res == nil {
		return sb.String()
	}

	label := res.Input
	if res.Mode == domain.ModeDecode {
		label = res.Positive.Text
	}
	sb.WriteString(fmt.Sprintf("    input((\"%s\"))\n", escapeLabel(label)))

	bits := res.Positive.Binary
	pos := res.Positive.Sequence
	neg := res.Negative.Sequence
	perByte := domain.BitsPerByte / domain.BitsPerBase

	n := len(bits) / domain.BitsPerByte
	shown := min(n, MaxBytes)
	for i := 0; i < shown; i++ {
		octet := bits[i*domain.BitsPerByte : (i+1)*domain.BitsPerByte]
		value, _ := strconv.ParseUint(octet, 2, 8)

		sb.WriteString(fmt.Sprintf("    b%d[/\"0x%02X <br/> %s\"/]\n", i, value, octet))
		sb.WriteString(fmt.Sprintf("    p%d[\"%s\"]\n", i, slice(pos, i*perByte, perByte)))
		sb.WriteString(fmt.Sprintf("    n%d[\"%s\"]\n", i, slice(neg, i*perByte, perByte)))
		sb.WriteString(fmt.Sprintf("    input --> b%d\n", i))
		sb.WriteString(fmt.Sprintf("    b%d --> p%d\n", i, i))
		sb.WriteString(fmt.Sprintf("    p%d -. complement .-> n%d\n", i, i))
	}
	if n > shown {
		sb.WriteString(fmt.Sprintf("    more[\"... %d more bytes\"]\n", n-shown))
		sb.WriteString("    input --> more\n")
	}

	if res.Negative.Err != nil && shown > 0 {
		sb.WriteString("\n    %% Strand Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#c62828,stroke-dasharray:4,color:#000;\n")
		ids := make([]string, shown)
		for i := range ids {
			ids[i] = fmt.Sprintf("n%d", i)
		}
		sb.WriteString(fmt.Sprintf("    class %s failed;\n", strings.Join(ids, ",")))
	}

	return sb.String()
}

func slice(s string, from, n int) string {
	if from >= len(s) {
		return ""
	}
	return s[from:min(from+n, len(s))]
}

func escapeLabel(s string) string {
	q := strconv.Quote(s)
	q = q[1 : len(q)-1]
	return strings.ReplaceAll(q, `\"`, "#quot;")
}
