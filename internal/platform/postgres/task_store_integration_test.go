//go:build integration

package postgres_test

import (
	"context"
	"testing"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/domain"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/platform/postgres"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTaskStore_Lifecycle(t *testing.T) {
	db := testdb.Open(t)
	testdb.ResetTasks(t, db)
	s := postgres.NewPostgresTaskStore(db, nil)
	ctx := context.Background()

	created, err := s.Create(ctx, "Buy milk", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	fetched, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	updated, err := s.Update(ctx, created.ID, "Buy oat milk", true)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.True(t, updated.Completed)

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{*updated}, tasks)

	require.NoError(t, s.Delete(ctx, created.ID))
	_, err = s.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, s.Delete(ctx, created.ID), store.ErrTaskNotFound)

	_, err = s.Update(ctx, created.ID, "gone", false)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testdb.Open(t)
	assert.NoError(t, postgres.Migrate(context.Background(), db, nil))
}

func TestPostgresTaskStore_IDBeyondInt32(t *testing.T) {
	db := testdb.Open(t)
	testdb.ResetTasks(t, db)
	s := postgres.NewPostgresTaskStore(db, nil)
	ctx := context.Background()

	var dataType string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT data_type FROM information_schema.columns WHERE table_name = 'tasks' AND column_name = 'id'`,
	).Scan(&dataType))
	assert.Equal(t, "bigint", dataType)

	const id = int64(9999999999)

	_, err := s.GetByID(ctx, id)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	_, err = s.Update(ctx, id, "x", false)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	assert.ErrorIs(t, s.Delete(ctx, id), store.ErrTaskNotFound)
}
