package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/ports"
)

// Runner executes a single transcode for the CLI.
type Runner struct {
	Engine       ports.Transcoder
	Handler      OutputHandler
	MaxInputSize int
}

// NewRunner creates a Runner with the default input limit.
func NewRunner(engine ports.Transcoder, handler OutputHandler) *Runner {
	return &Runner{
		Engine:       engine,
		Handler:      handler,
		MaxInputSize: getMaxInputSize(),
	}
}

// Run sanitizes payload, transcodes it and writes the result.
func (r *Runner) Run(ctx context.Context, mode domain.Mode, payload string) error {
	clean, err := SanitizeInputLimit(payload, r.MaxInputSize)
	if err != nil {
		return err
	}
	res, err := r.Engine.Transcode(ctx, mode, clean)
	if err != nil {
		return err
	}
	return r.Handler.Output(ctx, res)
}

// RunComplement validates payload as DNA and writes its complement strand.
func (r *Runner) RunComplement(ctx context.Context, payload string) error {
	clean, err := SanitizeInputLimit(payload, r.MaxInputSize)
	if err != nil {
		return err
	}
	seq, err := r.Engine.Complement(ctx, clean)
	if err != nil {
		return err
	}
	return r.Handler.OutputSequence(ctx, seq)
}

// ReadPayload returns args joined by spaces, or the whole of in when args is empty.
// A single trailing newline from piped input is dropped so `echo hi | helix encode`
// encodes "hi".
func ReadPayload(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}
