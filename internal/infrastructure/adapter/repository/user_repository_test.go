package repository

import (
	"context"
	"testing"

	"github.com/ecotrail/ecopoints/internal/infrastructure/adapter/logger"
	timeProvider "github.com/ecotrail/ecopoints/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB opens a session that renders SQL without executing it and
// captures the last query it built.
func newDryRunDB(t *testing.T) (*gorm.DB, *string) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	lastQuery := new(string)
	err = db.Callback().Query().After("gorm:query").Register("capture_query_sql", func(tx *gorm.DB) {
		*lastQuery = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return db, lastQuery
}

func TestUserRepositoryRowLocking(t *testing.T) {
	ctx := context.Background()

	t.Run("GetByIDForUpdate emits an exclusive row lock", func(t *testing.T) {
		db, lastQuery := newDryRunDB(t)
		repo := NewUserRepository(db, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())

		_, _ = repo.GetByIDForUpdate(ctx, 7)

		assert.Contains(t, *lastQuery, "FOR UPDATE",
			"locked read must carry a locking clause")
	})

	t.Run("GetByID reads without a lock", func(t *testing.T) {
		db, lastQuery := newDryRunDB(t)
		repo := NewUserRepository(db, timeProvider.NewRealTimeProvider(), logger.NewNoopLogger())

		_, _ = repo.GetByID(ctx, 7)

		assert.NotContains(t, *lastQuery, "FOR UPDATE")
	})
}
