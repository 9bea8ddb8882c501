package application_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/easyevent/api/internal/domain/entity"
)

// memStore is an in-memory stand-in for the persistence adapter. Its
// transaction manager snapshots state and restores it when the wrapped
// function fails, matching the rollback the real adapter provides.
type memStore struct {
	mu         sync.Mutex
	users      map[string]*entity.User
	events     map[string]*entity.Event
	eventOrder []string

	findAllErr error // when set, FindAll fails with it
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[string]*entity.User),
		events: make(map[string]*entity.Event),
	}
}

func (s *memStore) addUser(email string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &entity.User{ID: uuid.NewString(), Email: email, Password: "x", CreatedEvents: []string{}}
	s.users[u.ID] = u
	return cloneUser(u)
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.CreatedEvents = append([]string{}, u.CreatedEvents...)
	return &c
}

func cloneEvent(e *entity.Event) *entity.Event {
	c := *e
	return &c
}

type memEventRepo struct{ s *memStore }

func (r memEventRepo) Insert(_ context.Context, e *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	r.s.events[e.ID] = cloneEvent(e)
	r.s.eventOrder = append(r.s.eventOrder, e.ID)
	return nil
}

func (r memEventRepo) FindAll(context.Context) ([]*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.findAllErr != nil {
		return nil, r.s.findAllErr
	}
	out := make([]*entity.Event, 0, len(r.s.eventOrder))
	for _, id := range r.s.eventOrder {
		out = append(out, cloneEvent(r.s.events[id]))
	}
	return out, nil
}

func (r memEventRepo) FindByID(_ context.Context, id string) (*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, entity.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (r memEventRepo) FindByIDs(_ context.Context, ids []string) ([]*entity.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := r.s.events[id]; ok {
			out = append(out, cloneEvent(e))
		}
	}
	return out, nil
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Insert(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return entity.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.s.users[u.ID] = cloneUser(u)
	return nil
}

func (r memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r memUserRepo) AppendCreatedEvent(_ context.Context, userID, eventID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}
	u.CreatedEvents = append(u.CreatedEvents, eventID)
	return nil
}

type memTx struct{ s *memStore }

func (t memTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.s.mu.Lock()
	users := make(map[string]*entity.User, len(t.s.users))
	for id, u := range t.s.users {
		users[id] = cloneUser(u)
	}
	events := make(map[string]*entity.Event, len(t.s.events))
	for id, e := range t.s.events {
		events[id] = cloneEvent(e)
	}
	order := append([]string{}, t.s.eventOrder...)
	t.s.mu.Unlock()

	if err := fn(ctx); err != nil {
		t.s.mu.Lock()
		t.s.users = users
		t.s.events = events
		t.s.eventOrder = order
		t.s.mu.Unlock()
		return err
	}
	return nil
}
