package codec

// Complement returns the Watson-Crick complement of seq, base by base.
//
// seq must already be canonical and validated (see Validate); complementing raw
// input is a caller error. Bytes outside the alphabet are copied unchanged.
func Complement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complementOf(seq[i])
	}
	return string(out)
}
