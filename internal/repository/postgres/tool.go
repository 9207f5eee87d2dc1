package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

const toolColumns = `id, name, category, replacement_value_cents, status, created_on, deleted_on`

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (name, category, replacement_value_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.Name, t.Category, t.ReplacementValueCents, t.Status, time.Now()).Scan(&t.ID)
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	return scanTool(r.db.QueryRowContext(ctx, query, id), id)
}

// GetByIDForUpdate locks the tool row for the duration of tx. The rent
// lifecycle relies on this lock to serialize concurrent reservations of
// the same tool.
func (r *toolRepository) GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1 FOR UPDATE`
	return scanTool(tx.QueryRowContext(ctx, query, id), id)
}

func scanTool(row *sql.Row, id int32) (*domain.Tool, error) {
	t := &domain.Tool{}
	err := row.Scan(&t.ID, &t.Name, &t.Category, &t.ReplacementValueCents, &t.Status, &t.CreatedOn, &t.DeletedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tool %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *toolRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id int32, status domain.ToolStatus) error {
	query := `UPDATE tools SET status = $1 WHERE id = $2`
	res, err := tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (r *toolRepository) SetStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	query := `UPDATE tools SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func requireRow(res sql.Result, id int32) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("tool %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name = $1, category = $2, replacement_value_cents = $3, status = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Category, t.ReplacementValueCents, t.Status, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res, t.ID)
}

// UpdateGroupReplacementValue aligns the replacement value of every tool
// sharing name+category, so all copies of a tool are billed alike on loss.
func (r *toolRepository) UpdateGroupReplacementValue(ctx context.Context, name, category string, valueCents int32) error {
	query := `UPDATE tools SET replacement_value_cents = $1 WHERE name = $2 AND category = $3 AND deleted_on IS NULL`
	_, err := r.db.ExecContext(ctx, query, valueCents, name, category)
	return err
}

func (r *toolRepository) Deactivate(ctx context.Context, id int32) error {
	query := `UPDATE tools SET status = $1, deleted_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, domain.ToolStatusDecommissioned, time.Now(), id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE deleted_on IS NULL ORDER BY id`
	return r.queryTools(ctx, query)
}

func (r *toolRepository) ListByStatus(ctx context.Context, status domain.ToolStatus) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE status = $1 AND deleted_on IS NULL ORDER BY id`
	return r.queryTools(ctx, query, status)
}

func (r *toolRepository) ListByName(ctx context.Context, name string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE name = $1 AND deleted_on IS NULL ORDER BY id`
	return r.queryTools(ctx, query, name)
}

func (r *toolRepository) ListByCategory(ctx context.Context, category string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE category = $1 AND deleted_on IS NULL ORDER BY id`
	return r.queryTools(ctx, query, category)
}

func (r *toolRepository) LatestReplacementValue(ctx context.Context, name, category string) (int32, bool, error) {
	query := `SELECT replacement_value_cents FROM tools
	          WHERE name = $1 AND category = $2 AND deleted_on IS NULL
	          ORDER BY created_on DESC LIMIT 1`
	var value int32
	err := r.db.QueryRowContext(ctx, query, name, category).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return value, true, nil
}

func (r *toolRepository) queryTools(ctx context.Context, query string, args ...interface{}) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.ReplacementValueCents, &t.Status, &t.CreatedOn, &t.DeletedOn); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
