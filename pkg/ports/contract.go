package ports

import (
	"context"
	"testing"

	"github.com/aretw0/helix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTranscoderContract runs a suite of tests to verify that a Transcoder implementation
// adheres to the round-trip and error contract of the codec.
func RunTranscoderContract(t *testing.T, tr Transcoder) {
	t.Helper()
	ctx := context.Background()

	t.Run("Encode Literal", func(t *testing.T) {
		res, err := tr.Encode(ctx, "Hi")
		require.NoError(t, err)
		assert.Equal(t, "TAGATGGT", res.Positive.Sequence)
		assert.Equal(t, "0100100001101001", res.Positive.Binary)
		assert.Equal(t, "Hi", res.Positive.Text)
		assert.Equal(t, "ATCTACCA", res.Negative.Sequence)
	})

	t.Run("Encode Empty", func(t *testing.T) {
		res, err := tr.Encode(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, res.Positive.Sequence)
		assert.Empty(t, res.Positive.Binary)
	})

	t.Run("Round Trip", func(t *testing.T) {
		for _, text := range []string{"a", "héllo wörld", "日本語", "🧬", "\x00"} {
			enc, err := tr.Encode(ctx, text)
			require.NoError(t, err, "encode %q", text)
			dec, err := tr.Decode(ctx, enc.Positive.Sequence)
			require.NoError(t, err, "decode %q", enc.Positive.Sequence)
			assert.Equal(t, text, dec.Positive.Text)
		}
	})

	t.Run("Decode Case Insensitive", func(t *testing.T) {
		upper, err := tr.Decode(ctx, "ACGT")
		require.NoError(t, err)
		lower, err := tr.Decode(ctx, "  acgt ")
		require.NoError(t, err)
		assert.Equal(t, upper.Positive.Text, lower.Positive.Text)
		assert.Equal(t, "ACGT", lower.Positive.Sequence)
	})

	t.Run("Decode Errors", func(t *testing.T) {
		_, err := tr.Decode(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrEmptySequence)

		_, err = tr.Decode(ctx, "ACXT")
		assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
	})

	t.Run("Transcode Unknown Mode", func(t *testing.T) {
		_, err := tr.Transcode(ctx, domain.Mode("shuffle"), "Hi")
		assert.ErrorIs(t, err, domain.ErrUnknownMode)
	})

	t.Run("Complement Involution", func(t *testing.T) {
		once, err := tr.Complement(ctx, "GATTACA")
		require.NoError(t, err)
		twice, err := tr.Complement(ctx, once)
		require.NoError(t, err)
		assert.Equal(t, "CTAATGT", once)
		assert.Equal(t, "GATTACA", twice)
	})
}
