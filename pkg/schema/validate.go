package schema

import (
	"regexp"
	"strings"

	"github.com/aretw0/helix/pkg/domain"
)

// dnaPattern is the boundary's allow-list. The codec re-validates authoritatively.
var dnaPattern = regexp.MustCompile(`^[ACGTacgt]+$`)

// Boundary messages returned to clients.
const (
	MsgEmptySequence     = "empty DNA sequence"
	MsgInvalidCharacters = "DNA sequence contains invalid characters (allow A C G T)"
	MsgUnknownMode       = "unknown mode"
)

// ParseMode validates the mode field of a request.
func (r TranscodeRequest) ParseMode() (domain.Mode, error) {
	mode, err := domain.ParseMode(r.Mode)
	if err != nil {
		return "", &ValidationError{Key: "mode", Reason: MsgUnknownMode, Value: r.Mode, Err: err}
	}
	return mode, nil
}

// CheckDNA applies the boundary pre-check to a raw DNA payload: after trimming
// surrounding whitespace it must be non-empty and match ^[ACGTacgt]+$.
func CheckDNA(field, payload string) error {
	seq := strings.TrimSpace(payload)
	if seq == "" {
		return &ValidationError{Key: field, Reason: MsgEmptySequence, Err: domain.ErrEmptySequence}
	}
	if !dnaPattern.MatchString(seq) {
		return &ValidationError{Key: field, Reason: MsgInvalidCharacters, Value: payload, Err: domain.ErrInvalidSymbol}
	}
	return nil
}
