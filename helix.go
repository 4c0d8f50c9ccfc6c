package helix

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/helix/internal/runtime"
	"github.com/aretw0/helix/pkg/domain"
)

// Engine is the high-level entry point for the Helix library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Transcoder
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Helix Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	eng.runtime = runtime.NewTranscoder(
		runtime.WithLogger(eng.logger.With("component", "transcoder")),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng
}

// Encode converts text to its positive and negative strands.
func (e *Engine) Encode(ctx context.Context, text string) (*domain.Result, error) {
	return e.runtime.Encode(ctx, text)
}

// Decode converts a DNA sequence (case-insensitive, surrounding whitespace ignored) to text.
func (e *Engine) Decode(ctx context.Context, seq string) (*domain.Result, error) {
	return e.runtime.Decode(ctx, seq)
}

// Transcode runs Encode or Decode according to mode.
func (e *Engine) Transcode(ctx context.Context, mode domain.Mode, payload string) (*domain.Result, error) {
	return e.runtime.Transcode(ctx, mode, payload)
}

// Complement returns the complement strand of a DNA sequence after validating it.
func (e *Engine) Complement(ctx context.Context, seq string) (string, error) {
	return e.runtime.Complement(ctx, seq)
}
