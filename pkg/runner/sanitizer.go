package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 1MiB.
	DefaultMaxInputSize = 1 << 20
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "HELIX_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput enforces the input policy using the size limit from the environment.
func SanitizeInput(input string) (string, error) {
	return SanitizeInputLimit(input, getMaxInputSize())
}

// SanitizeInputLimit rejects input larger than limit bytes or not valid UTF-8.
//
// Unlike a chat-style sanitizer it never strips characters: every byte of the
// payload is data for a lossless codec, control characters included.
func SanitizeInputLimit(input string, limit int) (string, error) {
	if limit > 0 && len(input) > limit {
		// We explicitly reject rather than truncate to ensure deterministic output.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	return input, nil
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
