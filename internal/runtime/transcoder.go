package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/helix/pkg/codec"
	"github.com/aretw0/helix/pkg/domain"
)

// ErrRoundTrip is returned when the positive strand of an encode does not decode
// back to the original text. It indicates a codec defect, never bad input.
var ErrRoundTrip = errors.New("positive strand did not round-trip")

// Transcoder composes the codec primitives into the encode and decode pipelines.
// It is stateless apart from its configuration and safe for concurrent use.
type Transcoder struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transcoder) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(t *Transcoder) {
		t.hooks = hooks
	}
}

// WithClock overrides the time source used for event timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(t *Transcoder) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTranscoder creates a Transcoder.
func NewTranscoder(opts ...Option) *Transcoder {
	t := &Transcoder{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transcode dispatches on mode.
func (t *Transcoder) Transcode(ctx context.Context, mode domain.Mode, payload string) (*domain.Result, error) {
	switch mode {
	case domain.ModeEncode:
		return t.Encode(ctx, payload)
	case domain.ModeDecode:
		return t.Decode(ctx, payload)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, string(mode))
}

// Encode turns text into its positive strand and derives the negative strand.
// Both strands are read back through the codec; only a positive-strand failure
// fails the call.
func (t *Transcoder) Encode(ctx context.Context, text string) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := t.begin(ctx, domain.ModeEncode, text)

	positive := codec.TextToDNA(text)
	bits := codec.EncodeBits(text)

	res := &domain.Result{
		Mode:     domain.ModeEncode,
		Input:    text,
		Positive: readStrand(positive),
	}
	if res.Positive.Err != nil || res.Positive.Text != text || res.Positive.Binary != bits {
		err := ErrRoundTrip
		if res.Positive.Err != nil {
			err = fmt.Errorf("%w: %w", ErrRoundTrip, res.Positive.Err)
		}
		return nil, t.end(ctx, domain.ModeEncode, text, len(positive), start, err)
	}

	res.Negative = readStrand(codec.Complement(positive))
	t.strandFailure(ctx, domain.ModeEncode, domain.StrandNegative, res.Negative.Err)

	t.end(ctx, domain.ModeEncode, text, len(positive), start, nil)
	return res, nil
}

// Decode validates a DNA sequence and reconstructs its text. The complement strand
// is decoded independently; its failure is recorded on the strand.
func (t *Transcoder) Decode(ctx context.Context, seq string) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := t.begin(ctx, domain.ModeDecode, seq)

	canonical := codec.Canonicalize(seq)
	bits, err := codec.DecodeDNA(canonical)
	if err != nil {
		return nil, t.end(ctx, domain.ModeDecode, seq, 0, start, err)
	}
	text, err := codec.DecodeBits(bits)
	if err != nil {
		return nil, t.end(ctx, domain.ModeDecode, seq, len(canonical), start, fmt.Errorf("decode positive strand: %w", err))
	}

	res := &domain.Result{
		Mode:  domain.ModeDecode,
		Input: seq,
		Positive: domain.Strand{
			Sequence:  canonical,
			Binary:    bits,
			Text:      text,
			GCContent: codec.GCContent(canonical),
		},
		Negative: readStrand(codec.Complement(canonical)),
	}
	t.strandFailure(ctx, domain.ModeDecode, domain.StrandNegative, res.Negative.Err)

	t.end(ctx, domain.ModeDecode, seq, len(canonical), start, nil)
	return res, nil
}

// Complement validates seq and returns the complement of its canonical form.
func (t *Transcoder) Complement(ctx context.Context, seq string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	canonical, err := codec.Validate(seq)
	if err != nil {
		return "", err
	}
	return codec.Complement(canonical), nil
}

// readStrand decodes an already valid sequence back to bits and text.
// An empty sequence reads back as an empty strand.
func readStrand(seq string) domain.Strand {
	s := domain.Strand{Sequence: seq, GCContent: codec.GCContent(seq)}
	if seq == "" {
		return s
	}
	bits, err := codec.DecodeDNA(seq)
	if err != nil {
		s.Err = err
		return s
	}
	s.Binary = bits
	s.Text, s.Err = codec.DecodeBits(bits)
	return s
}

func (t *Transcoder) begin(ctx context.Context, mode domain.Mode, input string) time.Time {
	start := t.now()
	t.logger.DebugContext(ctx, "transcode started", "mode", mode, "input_bytes", len(input))
	if t.hooks.OnTranscodeStart != nil {
		t.hooks.OnTranscodeStart(ctx, &domain.TranscodeEvent{
			EventBase:  domain.EventBase{Timestamp: start, Type: domain.EventTranscodeStart},
			Mode:       mode,
			InputBytes: len(input),
		})
	}
	return start
}

// end emits the completion event and returns err unchanged.
func (t *Transcoder) end(ctx context.Context, mode domain.Mode, input string, bases int, start time.Time, err error) error {
	now := t.now()
	elapsed := now.Sub(start)
	if err != nil {
		t.logger.DebugContext(ctx, "transcode failed", "mode", mode, "input_bytes", len(input), "error", err)
	} else {
		t.logger.DebugContext(ctx, "transcode finished", "mode", mode, "bases", bases, "duration", elapsed)
	}
	if t.hooks.OnTranscodeEnd != nil {
		t.hooks.OnTranscodeEnd(ctx, &domain.TranscodeEvent{
			EventBase:  domain.EventBase{Timestamp: now, Type: domain.EventTranscodeEnd},
			Mode:       mode,
			InputBytes: len(input),
			Bases:      bases,
			Duration:   elapsed,
			Err:        err,
		})
	}
	return err
}

func (t *Transcoder) strandFailure(ctx context.Context, mode domain.Mode, strand string, err error) {
	if err == nil {
		return
	}
	t.logger.DebugContext(ctx, "strand text not reconstructed", "mode", mode, "strand", strand, "error", err)
	if t.hooks.OnStrandFailure != nil {
		t.hooks.OnStrandFailure(ctx, &domain.StrandEvent{
			EventBase: domain.EventBase{Timestamp: t.now(), Type: domain.EventStrandFailure},
			Mode:      mode,
			Strand:    strand,
			Err:       err,
		})
	}
}
