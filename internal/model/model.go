package model

import "time"

// EventKind classifies a recorded interaction.
type EventKind string

const (
	EventKindClick EventKind = "click"
	EventKindKey   EventKind = "key"
	EventKindTimer EventKind = "timer"
)

// InteractionEvent is one recorded interaction with the demo page.
type InteractionEvent struct {
	SessionID string    `json:"sessionId"`
	Seq       int64     `json:"seq"`
	Kind      EventKind `json:"kind"`
	Target    string    `json:"target"` // element id or key name
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// Session groups the events of one demo run.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
	Events    int64     `json:"events"`
}
