// Package graph holds the GraphQL resolvers. One exported method per declared
// operation; collaborators arrive by constructor injection.
package graph

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/easyevent/api/internal/application"
)

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	events *application.EventService
	users  *application.UserService
	logger *logrus.Logger
}

func NewResolver(events *application.EventService, users *application.UserService, logger *logrus.Logger) *Resolver {
	return &Resolver{events: events, users: users, logger: logger}
}

// EventInput mirrors the EventInput schema type; the scalar types carry the
// text-to-value coercion.
type EventInput struct {
	Title       string
	Description string
	Price       Price
	Date        DateTime
}

// UserInput mirrors the UserInput schema type.
type UserInput struct {
	Email    string
	Password string
}

// Events resolves the events query. The list is never null and never contains
// null elements.
func (r *Resolver) Events(ctx context.Context) ([]*EventResolver, error) {
	events, err := r.events.ListEvents(ctx)
	if err != nil {
		return nil, r.fail(ctx, "events", err)
	}
	out := make([]*EventResolver, 0, len(events))
	for _, e := range events {
		out = append(out, &EventResolver{event: e, root: r})
	}
	return out, nil
}

// CreateEvent resolves the createEvent mutation.
func (r *Resolver) CreateEvent(ctx context.Context, args struct{ EventInput EventInput }) (*EventResolver, error) {
	params := application.CreateEventParams{
		Title:       args.EventInput.Title,
		Description: args.EventInput.Description,
		Price:       float64(args.EventInput.Price),
		Date:        args.EventInput.Date.Time,
	}
	event, err := r.events.CreateEvent(ctx, params)
	if err != nil {
		return nil, r.fail(ctx, "createEvent", err)
	}
	return &EventResolver{event: event, root: r}, nil
}

// CreateUser resolves the createUser mutation.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput UserInput }) (*UserResolver, error) {
	params := application.CreateUserParams{
		Email:    args.UserInput.Email,
		Password: args.UserInput.Password,
	}
	user, err := r.users.CreateUser(ctx, params)
	if err != nil {
		return nil, r.fail(ctx, "createUser", err)
	}
	return &UserResolver{user: user, root: r}, nil
}

// fail logs a resolver failure and shapes it into the structured error the
// client receives. Failures never crash the process; the executor isolates
// them per operation.
func (r *Resolver) fail(ctx context.Context, op string, err error) error {
	if r.logger != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("operation", op).Warn("operation failed")
	}
	return newOpError(op, err)
}
