/*
Package helix is a reversible transcoder between UTF-8 text and the DNA alphabet (A, T, G, C).

Every byte of input text becomes four bases using a fixed 2-bit table
(00=A, 01=T, 10=G, 11=C). Alongside the encoded (positive) strand, helix derives the
Watson-Crick complement (negative) strand and reads both back through the codec, so a
caller always sees the sequence, its bit-string and its text reconstruction.

# Concept

The codec primitives live in package codec and are pure functions. The Engine in this
package composes them into two pipelines and adds the ambient concerns a host needs:
structured logging and lifecycle hooks. Adapters (HTTP, MCP, CLI) depend only on the
Engine, which keeps the codec free of I/O.

# Usage

	eng := helix.New(helix.WithLogger(slog.Default()))

	res, err := eng.Encode(ctx, "Hi")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Positive.Sequence) // TAGATGGT
	fmt.Println(res.Negative.Sequence) // ATCTACCA

	res, err = eng.Decode(ctx, "tagatggt")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Positive.Text) // Hi

# Errors

Failures are typed values wrapping the sentinels in package domain (ErrEmptySequence,
ErrInvalidSymbol, ErrInvalidBitLength, ErrInvalidUTF8, ...). A negative strand whose
bytes are not valid UTF-8 is not an error of the call: it is recorded on Strand.Err.
*/
package helix
