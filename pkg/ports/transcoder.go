package ports

import (
	"context"

	"github.com/aretw0/helix/pkg/domain"
)

// Transcoder is the engine surface consumed by request boundaries.
type Transcoder interface {
	// Encode converts UTF-8 text to its positive and negative strands.
	Encode(ctx context.Context, text string) (*domain.Result, error)

	// Decode converts a DNA sequence back to text.
	Decode(ctx context.Context, seq string) (*domain.Result, error)

	// Transcode dispatches to Encode or Decode.
	Transcode(ctx context.Context, mode domain.Mode, payload string) (*domain.Result, error)

	// Complement validates seq and returns its complement strand.
	Complement(ctx context.Context, seq string) (string, error)
}
