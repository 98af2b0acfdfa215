package models

import (
	"time"
)

// Kind represents the telemetry channel an event originated from
type Kind string

const (
	KindVideo  Kind = "video"
	KindAudio  Kind = "audio"
	KindSystem Kind = "system"
)

// Kinds returns all known kinds in a stable order
func Kinds() []Kind {
	return []Kind{KindVideo, KindAudio, KindSystem}
}

// IsValid reports whether the kind is one of the known channels
func (k Kind) IsValid() bool {
	switch k {
	case KindVideo, KindAudio, KindSystem:
		return true
	}
	return false
}

// Severity represents the informational priority of an event
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Severities returns all known severities in a stable order
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityWarn, SeverityError}
}

// IsValid reports whether the severity is one of the known levels
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityError:
		return true
	}
	return false
}

// Event represents one telemetry record accepted by the store.
// The store assigns the ID; events are never mutated after acceptance.
// The timestamp field is serialized as "ts" to match the frontend's payloads.
type Event struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Kind      Kind      `json:"kind"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"ts"`
}
