package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Event kinds recorded by the CLI.
const (
	KindRoll      = "roll"
	KindFlip      = "flip"
	KindDraw      = "draw"
	KindRoulette  = "roulette"
	KindAbilities = "abilities"
	KindModifier  = "modifier"
	KindCoins     = "coins"
	KindChange    = "change"
	KindNPC       = "npc"
)

// ErrInvalidEvent is returned when an event is missing its kind or result.
var ErrInvalidEvent = errors.New("invalid session event")

// Event is one recorded operation outcome.
type Event struct {
	ID        string
	Kind      string
	Input     string
	Result    string
	CreatedAt time.Time
}

// EventRepository provides session log persistence operations.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates an EventRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Record inserts e, assigning a new ID when e.ID is empty.
//
// Precondition: e.Kind and e.Result must be non-empty.
// Postcondition: Returns the stored Event with ID and CreatedAt set.
func (r *EventRepository) Record(ctx context.Context, e Event) (Event, error) {
	if e.Kind == "" || e.Result == "" {
		return Event{}, fmt.Errorf("kind and result are required: %w", ErrInvalidEvent)
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	err := r.db.QueryRow(ctx,
		`INSERT INTO session_events (id, kind, input, result)
		 VALUES ($1::uuid, $2, $3, $4)
		 RETURNING created_at`,
		e.ID, e.Kind, e.Input, e.Result,
	).Scan(&e.CreatedAt)
	if err != nil {
		return Event{}, fmt.Errorf("inserting session event: %w", err)
	}
	return e, nil
}

// Recent returns up to limit events, newest first.
//
// Precondition: limit > 0.
func (r *EventRepository) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0, got %d", limit)
	}
	rows, err := r.db.Query(ctx,
		`SELECT id::text, kind, input, result, created_at
		 FROM session_events
		 ORDER BY created_at DESC, id
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying session events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Kind, &e.Input, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session events: %w", err)
	}
	return events, nil
}
