package codec

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/helix/pkg/domain"
)

// Canonicalize trims surrounding whitespace and uppercases a DNA sequence.
func Canonicalize(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}

// EncodeDNA maps each pair of bits to one base.
func EncodeDNA(bits string) (string, error) {
	if len(bits)%domain.BitsPerBase != 0 {
		return "", &domain.CodecError{
			Err:    domain.ErrInvalidBitLength,
			Length: len(bits),
			Unit:   domain.BitsPerBase,
		}
	}

	out := make([]byte, len(bits)/domain.BitsPerBase)
	for i := 0; i < len(bits); i += domain.BitsPerBase {
		hi, lo := bits[i], bits[i+1]
		if hi != '0' && hi != '1' {
			return "", invalidBit(bits, i)
		}
		if lo != '0' && lo != '1' {
			return "", invalidBit(bits, i+1)
		}
		out[i/domain.BitsPerBase] = baseFor((hi-'0')<<1 | (lo - '0'))
	}
	return string(out), nil
}

// DecodeDNA canonicalizes seq and expands each base to its 2-bit pattern.
func DecodeDNA(seq string) (string, error) {
	canonical := Canonicalize(seq)
	if canonical == "" {
		return "", domain.ErrEmptySequence
	}

	var b strings.Builder
	b.Grow(len(canonical) * domain.BitsPerBase)
	for i := 0; i < len(canonical); i++ {
		pair, ok := pairFor(canonical[i])
		if !ok {
			r, _ := utf8.DecodeRuneInString(canonical[i:])
			return "", &domain.CodecError{Err: domain.ErrInvalidSymbol, Offset: i, Symbol: r}
		}
		b.WriteByte('0' + pair>>1)
		b.WriteByte('0' + pair&1)
	}
	return b.String(), nil
}

// Validate canonicalizes seq and checks it against the base alphabet without
// expanding it. It returns the canonical form.
func Validate(seq string) (string, error) {
	canonical := Canonicalize(seq)
	if canonical == "" {
		return "", domain.ErrEmptySequence
	}
	for i := 0; i < len(canonical); i++ {
		if !IsBase(canonical[i]) {
			r, _ := utf8.DecodeRuneInString(canonical[i:])
			return "", &domain.CodecError{Err: domain.ErrInvalidSymbol, Offset: i, Symbol: r}
		}
	}
	return canonical, nil
}

// TextToDNA encodes text straight to DNA, four bases per byte.
// It is equivalent to EncodeDNA(EncodeBits(text)) without the intermediate bit-string.
func TextToDNA(text string) string {
	out := make([]byte, 0, len(text)*4)
	for i := 0; i < len(text); i++ {
		c := text[i]
		out = append(out,
			baseFor(c>>6),
			baseFor(c>>4),
			baseFor(c>>2),
			baseFor(c),
		)
	}
	return string(out)
}

// DNAToText decodes a DNA sequence straight to text.
func DNAToText(seq string) (string, error) {
	bits, err := DecodeDNA(seq)
	if err != nil {
		return "", err
	}
	return DecodeBits(bits)
}
