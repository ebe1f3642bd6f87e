package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/cory-johannsen/gmkit/internal/storage/postgres"
	"github.com/cory-johannsen/gmkit/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEvents(t *testing.T) (*postgres.EventRepository, *testutil.PostgresContainer) {
	t.Helper()
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewEventRepository(pc.RawPool), pc
}

func TestEventRepository_RecordAndRecent(t *testing.T) {
	repo, _ := setupEvents(t)
	ctx := context.Background()

	first, err := repo.Record(ctx, postgres.Event{Kind: postgres.KindRoll, Input: "4d6", Result: "4d6 → [1 2 3 4] = 10 (max 4, min 1)"})
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err, "assigned ID must be a UUID")
	assert.False(t, first.CreatedAt.IsZero())

	time.Sleep(10 * time.Millisecond)
	second, err := repo.Record(ctx, postgres.Event{Kind: postgres.KindFlip, Input: "2", Result: "Heads, Tails"})
	require.NoError(t, err)

	events, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, second.ID, events[0].ID, "newest event first")
	assert.Equal(t, first.ID, events[1].ID)
	assert.Equal(t, "4d6", events[1].Input)

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestEventRepository_RecordKeepsGivenID(t *testing.T) {
	repo, _ := setupEvents(t)
	id := uuid.New().String()
	e, err := repo.Record(context.Background(), postgres.Event{ID: id, Kind: postgres.KindNPC, Result: "Brom"})
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	_, pc := setupEvents(t)
	res, err := postgres.Migrate(pc.DSN(), false, 0)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, uint(1), res.Version)
}
