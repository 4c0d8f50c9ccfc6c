package codec

import (
	"strings"

	"github.com/aretw0/helix/pkg/domain"
)

// GroupBits splits a bit-string into space-separated octets for display.
// A trailing partial group is kept as is.
func GroupBits(bits string) string {
	if len(bits) <= domain.BitsPerByte {
		return bits
	}
	var b strings.Builder
	b.Grow(len(bits) + len(bits)/domain.BitsPerByte)
	for i := 0; i < len(bits); i += domain.BitsPerByte {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+domain.BitsPerByte, len(bits))
		b.WriteString(bits[i:end])
	}
	return b.String()
}

// GCContent returns the fraction of G and C bases in seq.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq))
}
