package domain

import "time"

// Stream names (must match the producers on the client backend side)
const (
	StreamSignalsIncoming = "stream:signals:incoming"
	StreamSignalsRecorded = "stream:signals:recorded"
)

// Signal types. Only confirm carries a side effect on the entity; any
// other type is recorded as-is.
const (
	SignalTypeConfirm = "confirm"
)

// Signal - an immutable event asserting something about an entity.
// The referenced entity does not have to exist: signals outlive entities
// and vice versa.
type Signal struct {
	ID        string    `json:"id"`
	EntityID  string    `json:"entity_id"`
	Type      string    `json:"type"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsConfirm reports whether the signal should bump the entity's
// confirmation timestamp.
func (s *Signal) IsConfirm() bool {
	return s.Type == SignalTypeConfirm
}

// SignalIncomingEvent - payload consumed from stream:signals:incoming
type SignalIncomingEvent struct {
	EntityID string  `json:"entity_id"`
	Type     string  `json:"type"`
	Note     *string `json:"note,omitempty"`
}

// SignalRecordedEvent - payload published to stream:signals:recorded
// after a signal has been appended to the ledger.
type SignalRecordedEvent struct {
	SignalID      string    `json:"signal_id"`
	EntityID      string    `json:"entity_id"`
	Type          string    `json:"type"`
	EntityUpdated bool      `json:"entity_updated"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// StreamMessage - raw message read from a Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
