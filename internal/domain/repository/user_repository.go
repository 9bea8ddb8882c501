package repository

import (
	"context"

	"github.com/easyevent/api/internal/domain/entity"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Insert stores a new user and fills in its assigned id.
	// Returns entity.ErrEmailTaken on a duplicate email.
	Insert(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// AppendCreatedEvent atomically appends eventID to the user's
	// created-events list. Returns entity.ErrUserNotFound when the user does
	// not exist. Implementations must not read-modify-write the whole record.
	AppendCreatedEvent(ctx context.Context, userID, eventID string) error
}
