package repository

import (
	"context"

	"github.com/easyevent/api/internal/domain/entity"
)

// EventRepository defines the persistence contract for events.
type EventRepository interface {
	// Insert stores a new event and fills in its assigned id.
	Insert(ctx context.Context, e *entity.Event) error
	FindAll(ctx context.Context) ([]*entity.Event, error)
	FindByID(ctx context.Context, id string) (*entity.Event, error)
	// FindByIDs returns the events for the given ids, in the order the ids
	// were given. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Event, error)
}
