package domain

// Strand is one DNA sequence and its reconstruction back through the codec.
type Strand struct {
	// Sequence is the canonical (uppercase) DNA sequence.
	Sequence string

	// Binary is the bit-string the sequence decodes to.
	Binary string

	// Text is the UTF-8 text the bit-string decodes to. Empty when Err is set.
	Text string

	// GCContent is the fraction of G and C bases in Sequence (0 for an empty strand).
	GCContent float64

	// Err records why Text could not be reconstructed.
	// For negative strands this is routinely ErrInvalidUTF8 and is not a request failure.
	Err error
}

// Decoded reports whether the strand's text reconstruction succeeded.
func (s Strand) Decoded() bool {
	return s.Err == nil
}

// Result is the outcome of a single transcode request.
type Result struct {
	Mode Mode

	// Input is the payload as received (text for encode, raw sequence for decode).
	Input string

	Positive Strand
	Negative Strand
}
