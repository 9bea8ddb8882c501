package application

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/easyevent/api/internal/domain/entity"
	repo "github.com/easyevent/api/internal/domain/repository"
	"github.com/easyevent/api/internal/identity"
	"github.com/easyevent/api/pkg/helpers"
	"github.com/easyevent/api/pkg/validation"
)

// EventService implements the event query/mutation semantics on top of the
// persistence contracts.
type EventService struct {
	Events   repo.EventRepository
	Users    repo.UserRepository
	Tx       repo.TransactionManager
	Identity identity.Provider
	Pub      *helpers.RabbitPublisher
	Logger   *logrus.Logger

	validate *validator.Validate
}

func NewEventService(events repo.EventRepository, users repo.UserRepository, tx repo.TransactionManager, idp identity.Provider, pub *helpers.RabbitPublisher, logger *logrus.Logger) *EventService {
	return &EventService{
		Events:   events,
		Users:    users,
		Tx:       tx,
		Identity: idp,
		Pub:      pub,
		Logger:   logger,
		validate: validation.New(),
	}
}

// CreateEventParams holds the coerced createEvent input.
type CreateEventParams struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Date        time.Time `json:"date" validate:"required"`
}

// eventCreatedMessage is the payload published after a successful creation.
type eventCreatedMessage struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	CreatorID string    `json:"creator_id"`
	Date      time.Time `json:"date"`
}

// ListEvents returns every stored event in the order the adapter yields.
// The result is never nil.
func (s *EventService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.Events.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*entity.Event{}
	}
	return events, nil
}

// GetEvent returns one event by id.
func (s *EventService) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	return s.Events.FindByID(ctx, id)
}

// GetEventsByIDs returns the events for the given ids in the given order.
func (s *EventService) GetEventsByIDs(ctx context.Context, ids []string) ([]*entity.Event, error) {
	return s.Events.FindByIDs(ctx, ids)
}

// CreateEvent validates the input, resolves the acting user, and inside one
// transaction inserts the event and appends it to the creator's list. A
// missing creator aborts the transaction, so an event is never left without a
// resolvable creator.
func (s *EventService) CreateEvent(ctx context.Context, params CreateEventParams) (*entity.Event, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, firstDetail(err))
	}

	creatorID, err := s.Identity.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
		Date:        params.Date,
		CreatorID:   creatorID,
	}

	err = s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.Events.Insert(ctx, event); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		if err := s.Users.AppendCreatedEvent(ctx, creatorID, event.ID); err != nil {
			return fmt.Errorf("link event to creator: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, event)
	return event, nil
}

// publishCreated emits a fire-and-forget notification. Losing it only delays
// downstream consumers; the created event itself is already committed.
func (s *EventService) publishCreated(ctx context.Context, e *entity.Event) {
	if s.Pub == nil {
		return
	}
	msg := eventCreatedMessage{EventID: e.ID, Title: e.Title, CreatorID: e.CreatorID, Date: e.Date}
	if err := s.Pub.PublishJSON(ctx, msg); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("event_id", e.ID).Warn("publish event.created failed")
	}
}

// firstDetail flattens a validation error into a single message.
func firstDetail(err error) string {
	for field, msg := range validation.ToDetails(err) {
		return field + " " + msg
	}
	return err.Error()
}
