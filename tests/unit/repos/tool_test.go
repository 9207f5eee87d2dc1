package repos

import (
	"context"
	"testing"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolColumns() []string {
	return []string{"id", "name", "category", "replacement_value_cents", "status", "created_on", "deleted_on"}
}

func TestToolRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tool := &domain.Tool{
			Name:                  "hammer drill",
			Category:              "drill",
			ReplacementValueCents: 80000,
			Status:                domain.ToolStatusAvailable,
		}

		mock.ExpectQuery("INSERT INTO tools").
			WithArgs(tool.Name, tool.Category, tool.ReplacementValueCents, tool.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		err := repo.Create(ctx, tool)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), tool.ID)
	})
}

func TestToolRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(toolColumns()).
			AddRow(2, "hammer drill", "drill", 80000, "AVAILABLE", "2026-03-10", nil)

		mock.ExpectQuery("SELECT (.+) FROM tools WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		tool, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		require.NotNil(t, tool)
		assert.Equal(t, int32(2), tool.ID)
		assert.Equal(t, domain.ToolStatusAvailable, tool.Status)
		assert.Nil(t, tool.DeletedOn)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tools WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(toolColumns()))

		tool, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, tool)
	})
}

func TestToolRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE tools SET status").
			WithArgs(domain.ToolStatusLoaned, int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)

		err = repo.UpdateStatus(ctx, tx, 2, domain.ToolStatusLoaned)
		assert.NoError(t, err)
		assert.NoError(t, tx.Commit())
	})

	t.Run("Unknown Tool", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE tools SET status").
			WithArgs(domain.ToolStatusLoaned, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		tx, err := db.Begin()
		require.NoError(t, err)

		err = repo.UpdateStatus(ctx, tx, 99, domain.ToolStatusLoaned)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, tx.Rollback())
	})
}

func TestToolRepository_Deactivate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE tools SET status").
		WithArgs(domain.ToolStatusDecommissioned, sqlmock.AnyArg(), int32(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Deactivate(ctx, 2)
	assert.NoError(t, err)
}

func TestToolRepository_LatestReplacementValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT replacement_value_cents FROM tools").
			WithArgs("hammer drill", "drill").
			WillReturnRows(sqlmock.NewRows([]string{"replacement_value_cents"}).AddRow(80000))

		value, found, err := repo.LatestReplacementValue(ctx, "hammer drill", "drill")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int32(80000), value)
	})

	t.Run("No Match", func(t *testing.T) {
		mock.ExpectQuery("SELECT replacement_value_cents FROM tools").
			WithArgs("router", "woodworking").
			WillReturnRows(sqlmock.NewRows([]string{"replacement_value_cents"}))

		value, found, err := repo.LatestReplacementValue(ctx, "router", "woodworking")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, int32(0), value)
	})
}

func TestToolRepository_UpdateGroupReplacementValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewToolRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE tools SET replacement_value_cents").
		WithArgs(int32(90000), "hammer drill", "drill").
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.UpdateGroupReplacementValue(ctx, "hammer drill", "drill", 90000)
	assert.NoError(t, err)
}
