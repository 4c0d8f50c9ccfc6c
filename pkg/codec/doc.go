/*
Package codec implements the reversible text <-> DNA transcoding primitives.

The pipeline works on textual bit-strings (characters '0' and '1'), not packed buffers:

	text --EncodeBits--> bits --EncodeDNA--> DNA
	DNA  --DecodeDNA-->  bits --DecodeBits--> text

Each base carries two bits using the fixed table 00=A, 01=T, 10=G, 11=C, so every
byte of UTF-8 input becomes exactly four bases. Complement maps a sequence to its
Watson-Crick partner (A<->T, G<->C).

All functions are pure and safe for concurrent use. Failures are returned as values
wrapping the sentinels in package domain; nothing here logs or retries.
*/
package codec
