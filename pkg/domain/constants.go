package domain

// Strand names used in events, metrics labels and wire payloads.
const (
	StrandPositive = "positive"
	StrandNegative = "negative"
)

// Alphabet lists the DNA bases in 2-bit pattern order (00, 01, 10, 11).
const Alphabet = "ATGC"

// BitsPerByte and BitsPerBase are the grouping units of the bit-string format.
const (
	BitsPerByte = 8
	BitsPerBase = 2
)
