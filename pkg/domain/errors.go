package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBitLength is returned when a bit-string is not a whole number of units
	// (8 bits for text, 2 bits for DNA).
	ErrInvalidBitLength = errors.New("invalid bit length")

	// ErrInvalidBit is returned when a bit-string contains a character other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrInvalidUTF8 is returned when reconstructed bytes are not well-formed UTF-8.
	// It is the expected outcome of decoding most negative strands.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrEmptySequence is returned when a DNA sequence is empty after canonicalization.
	ErrEmptySequence = errors.New("empty DNA sequence")

	// ErrInvalidSymbol is returned when a DNA sequence contains a symbol outside A, T, G, C.
	ErrInvalidSymbol = errors.New("invalid DNA symbol")

	// ErrUnknownMode is returned by request boundaries for modes other than encode/decode.
	ErrUnknownMode = errors.New("unknown mode")
)

// CodecError describes where a codec operation failed.
// It always wraps one of the Err* sentinels, so errors.Is keeps working.
type CodecError struct {
	Err    error // Sentinel kind
	Offset int   // Byte offset into the (canonical) input
	Symbol rune  // Offending character, for ErrInvalidBit / ErrInvalidSymbol
	Value  byte  // Offending byte, for ErrInvalidUTF8
	Length int   // Input length, for ErrInvalidBitLength
	Unit   int   // Required multiple, for ErrInvalidBitLength
}

func (e *CodecError) Error() string {
	switch e.Err {
	case ErrInvalidBitLength:
		return fmt.Sprintf("%v: length %d is not a multiple of %d", e.Err, e.Length, e.Unit)
	case ErrInvalidBit, ErrInvalidSymbol:
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Symbol, e.Offset)
	case ErrInvalidUTF8:
		return fmt.Sprintf("%v: byte 0x%02x at offset %d", e.Err, e.Value, e.Offset)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by the shape of the caller's input
// rather than by the codec itself. Boundaries use it to pick a client-error status.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptySequence) ||
		errors.Is(err, ErrInvalidSymbol) ||
		errors.Is(err, ErrInvalidBitLength) ||
		errors.Is(err, ErrInvalidBit) ||
		errors.Is(err, ErrUnknownMode)
}
