package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation happens before the pool is touched, so a nil pool is safe here.
func TestEventRepository_RecordRejectsIncomplete(t *testing.T) {
	repo := NewEventRepository(nil)
	_, err := repo.Record(context.Background(), Event{Kind: KindRoll})
	assert.ErrorIs(t, err, ErrInvalidEvent)
	_, err = repo.Record(context.Background(), Event{Result: "3"})
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestEventRepository_RecentRejectsNonPositiveLimit(t *testing.T) {
	repo := NewEventRepository(nil)
	_, err := repo.Recent(context.Background(), 0)
	assert.Error(t, err)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := migrationFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
