package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/ebs/internal/api/v1"
)

var (
	// ErrDuplicate is returned when an event with the same id already exists.
	ErrDuplicate = errors.New("event already exists")

	// ErrNotFound is returned when no event has the requested id.
	ErrNotFound = errors.New("event not found")
)

// EventStore defines the interface for storing and retrieving single events.
type EventStore interface {
	SaveEvent(ctx context.Context, event *v1.Event) error
	GetEvent(ctx context.Context, id string) (*v1.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	// CountEvents returns the number of stored events.
	CountEvents(ctx context.Context) (int64, error)

	// DeleteAllEvents removes every event and returns how many were removed.
	DeleteAllEvents(ctx context.Context) (int64, error)
}
