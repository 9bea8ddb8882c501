package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/easyevent/api/internal/domain/entity"
)

// EventResolver projects a stored event onto the public Event shape. Fields
// are constructed one by one; nothing leaks from the stored document by
// accident.
type EventResolver struct {
	event *entity.Event
	root  *Resolver
}

func (r *EventResolver) ID() graphql.ID {
	return graphql.ID(r.event.ID)
}

func (r *EventResolver) Title() string {
	return r.event.Title
}

func (r *EventResolver) Description() string {
	return r.event.Description
}

func (r *EventResolver) Price() Price {
	return Price(r.event.Price)
}

func (r *EventResolver) Date() DateTime {
	return DateTime{Time: r.event.Date}
}

// Creator loads the creating user on demand. Every stored event references an
// existing user, so a lookup failure here is a store error, not a dangling
// reference.
func (r *EventResolver) Creator(ctx context.Context) (*UserResolver, error) {
	user, err := r.root.users.GetUser(ctx, r.event.CreatorID)
	if err != nil {
		return nil, r.root.fail(ctx, "events", err)
	}
	return &UserResolver{user: user, root: r.root}, nil
}

// UserResolver projects a stored user onto the public User shape.
type UserResolver struct {
	user *entity.User
	root *Resolver
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.user.ID)
}

func (r *UserResolver) Email() string {
	return r.user.Email
}

// Password is always null. Only the hash is persisted and even that never
// leaves the persistence layer through this type.
func (r *UserResolver) Password() *string {
	return nil
}

// CreatedEvents loads the user's events in creation order.
func (r *UserResolver) CreatedEvents(ctx context.Context) (*[]*EventResolver, error) {
	events, err := r.root.events.GetEventsByIDs(ctx, r.user.CreatedEvents)
	if err != nil {
		return nil, r.root.fail(ctx, "events", err)
	}
	out := make([]*EventResolver, 0, len(events))
	for _, e := range events {
		out = append(out, &EventResolver{event: e, root: r.root})
	}
	return &out, nil
}
