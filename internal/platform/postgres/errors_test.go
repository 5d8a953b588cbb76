package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/Abdulrahman-PROG/Containerized-Web-App/internal/store"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantIs     error
		wantSameAs bool
	}{
		{name: "no rows", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{
			name:   "not null violation",
			err:    &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:   "check violation",
			err:    &pgconn.PgError{Code: checkViolationCode, ConstraintName: "title_not_blank"},
			wantIs: store.ErrInvalidEntity,
		},
		{
			name:       "unmapped postgres error",
			err:        &pgconn.PgError{Code: "40001"},
			wantSameAs: true,
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantSameAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantSameAs {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}

	assert.Nil(t, MapError(nil))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, "task"))
	})

	t.Run("one row", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), "task"))
	})

	t.Run("zero rows with entity", func(t *testing.T) {
		err := CheckRowsAffected(sqlmock.NewResult(0, 0), "task")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.Contains(t, err.Error(), "task not found")
	})

	t.Run("zero rows without entity", func(t *testing.T) {
		assert.Equal(t, store.ErrNotFound, CheckRowsAffected(sqlmock.NewResult(0, 0), ""))
	})

	t.Run("rows affected error", func(t *testing.T) {
		err := CheckRowsAffected(sqlmock.NewErrorResult(errors.New("unsupported")), "task")
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}
