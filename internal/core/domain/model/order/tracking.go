package order

import (
	"errors"
	"strings"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
)

// PlacedNote is the note of the tracking entry recorded at placement.
const PlacedNote = "Order placed successfully"

// TrackingEntry is an immutable status snapshot in the order history.
type TrackingEntry struct {
	id        kernel.ID
	status    Status
	note      string
	timestamp time.Time
}

func NewTrackingEntry(id kernel.ID, status Status, note string, timestamp time.Time) (*TrackingEntry, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &TrackingEntry{
		id:        id,
		status:    status,
		note:      strings.TrimSpace(note),
		timestamp: timestamp,
	}, nil
}

func (e *TrackingEntry) ID() kernel.ID {
	return e.id
}

func (e *TrackingEntry) Status() Status {
	return e.status
}

func (e *TrackingEntry) Note() string {
	return e.note
}

func (e *TrackingEntry) Timestamp() time.Time {
	return e.timestamp
}
