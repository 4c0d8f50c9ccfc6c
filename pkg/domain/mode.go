package domain

import (
	"fmt"
	"strings"
)

// Mode selects the direction of a transcode request.
type Mode string

const (
	ModeEncode Mode = "encode" // UTF-8 text -> DNA
	ModeDecode Mode = "decode" // DNA -> UTF-8 text
)

// ParseMode validates a wire-level mode string.
// Matching is exact, as the boundary contract only allows the lowercase names.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeEncode, ModeDecode:
		return m, nil
	}
	if strings.TrimSpace(s) == "" {
		return "", ErrUnknownMode
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	return string(m)
}
