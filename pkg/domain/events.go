package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTranscodeStart EventType = "transcode_start"
	EventTranscodeEnd   EventType = "transcode_end"
	EventStrandFailure  EventType = "strand_failure"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TranscodeEvent represents the start or end of a pipeline run.
type TranscodeEvent struct {
	EventBase
	Mode       Mode          `json:"mode"`
	InputBytes int           `json:"input_bytes"`
	Bases      int           `json:"bases,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Err        error         `json:"-"`
}

// StrandEvent represents a strand whose text could not be reconstructed.
type StrandEvent struct {
	EventBase
	Mode   Mode   `json:"mode"`
	Strand string `json:"strand"`
	Err    error  `json:"-"`
}

// LifecycleHooks defines callbacks for transcoder observability.
type LifecycleHooks struct {
	OnTranscodeStart func(context.Context, *TranscodeEvent)
	OnTranscodeEnd   func(context.Context, *TranscodeEvent)
	OnStrandFailure  func(context.Context, *StrandEvent)
}
