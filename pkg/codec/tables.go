package codec

import "github.com/aretw0/helix/pkg/domain"

// baseFor maps a 2-bit pattern (0..3) to its base.
func baseFor(pair byte) byte {
	return domain.Alphabet[pair&0x3]
}

// pairFor maps an uppercase base to its 2-bit pattern.
func pairFor(base byte) (byte, bool) {
	switch base {
	case 'A':
		return 0b00, true
	case 'T':
		return 0b01, true
	case 'G':
		return 0b10, true
	case 'C':
		return 0b11, true
	}
	return 0, false
}

// complementOf returns the Watson-Crick partner of base.
// Bytes outside the alphabet are returned unchanged.
func complementOf(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	}
	return base
}

// IsBase reports whether b is an uppercase DNA base.
func IsBase(b byte) bool {
	_, ok := pairFor(b)
	return ok
}
