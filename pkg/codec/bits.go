package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/helix/pkg/domain"
)

// EncodeBits renders the UTF-8 bytes of text as a bit-string, eight characters
// per byte, most significant bit first.
func EncodeBits(text string) string {
	var b strings.Builder
	b.Grow(len(text) * domain.BitsPerByte)
	for i := 0; i < len(text); i++ {
		c := text[i]
		for shift := 7; shift >= 0; shift-- {
			b.WriteByte('0' + ((c >> shift) & 1))
		}
	}
	return b.String()
}

// DecodeBits reassembles a bit-string produced by EncodeBits into text.
func DecodeBits(bits string) (string, error) {
	if len(bits)%domain.BitsPerByte != 0 {
		return "", &domain.CodecError{
			Err:    domain.ErrInvalidBitLength,
			Length: len(bits),
			Unit:   domain.BitsPerByte,
		}
	}

	buf := make([]byte, len(bits)/domain.BitsPerByte)
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		if c != '0' && c != '1' {
			return "", invalidBit(bits, i)
		}
		buf[i/domain.BitsPerByte] = buf[i/domain.BitsPerByte]<<1 | (c - '0')
	}

	if off := invalidUTF8Offset(buf); off >= 0 {
		return "", &domain.CodecError{
			Err:    domain.ErrInvalidUTF8,
			Offset: off,
			Value:  buf[off],
		}
	}
	return string(buf), nil
}

func invalidBit(bits string, i int) error {
	r, _ := utf8.DecodeRuneInString(bits[i:])
	return &domain.CodecError{Err: domain.ErrInvalidBit, Offset: i, Symbol: r}
}

// invalidUTF8Offset returns the offset of the first byte that does not start a
// well-formed UTF-8 sequence, or -1.
func invalidUTF8Offset(p []byte) int {
	if utf8.Valid(p) {
		return -1
	}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
