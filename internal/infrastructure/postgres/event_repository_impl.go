package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easyevent/api/internal/domain/entity"
	"github.com/easyevent/api/internal/domain/repository"
)

// foreign key violation, per the PostgreSQL error code table
const pgFKViolation = "23503"

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Insert(ctx context.Context, e *entity.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	row := queryerFrom(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO events (id, title, description, price, date, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, e.ID, e.Title, e.Description, e.Price, e.Date, e.CreatorID)

	if err := row.Scan(&e.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return entity.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	rows, err := queryerFrom(ctx, r.pool).Query(ctx, `
		SELECT id, title, description, price, date, creator_id, created_at
		FROM events
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entity.Event, error) {
	e := &entity.Event{}
	row := queryerFrom(ctx, r.pool).QueryRow(ctx, `
		SELECT id, title, description, price, date, creator_id, created_at
		FROM events
		WHERE id = $1
	`, id)

	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Price, &e.Date,
		&e.CreatorID, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Event, error) {
	if len(ids) == 0 {
		return []*entity.Event{}, nil
	}
	rows, err := queryerFrom(ctx, r.pool).Query(ctx, `
		SELECT id, title, description, price, date, creator_id, created_at
		FROM events
		WHERE id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}

	// preserve the caller's id order (creation order for createdEvents)
	byID := make(map[string]*entity.Event, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}
	out := make([]*entity.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func scanEvents(rows pgx.Rows) ([]*entity.Event, error) {
	events := make([]*entity.Event, 0)
	for rows.Next() {
		e := &entity.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Price, &e.Date,
			&e.CreatorID, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

var _ repository.EventRepository = (*EventRepository)(nil)
