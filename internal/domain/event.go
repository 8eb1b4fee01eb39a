package domain

import "github.com/google/uuid"

type EventKind string

const (
	EventAdded      EventKind = "added"
	EventRemoved    EventKind = "removed"
	EventRegistered EventKind = "registered"
	EventConfirmed  EventKind = "confirmed"
	EventRejected   EventKind = "rejected"
	EventCancelled  EventKind = "cancelled"
)

// Event describes a completed registry mutation. The registry emits one on
// every successful mutating call; sinks (audit log, live feed) consume them.
// ID lets a sink that sees the same event twice drop the duplicate.
type Event struct {
	ID        string    `json:"id"`
	Kind      EventKind `json:"kind"`
	SubjectID int64     `json:"subject_id"`
	Note      string    `json:"note"`
}

func NewEvent(kind EventKind, subjectID int64, note string) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		SubjectID: subjectID,
		Note:      note,
	}
}
