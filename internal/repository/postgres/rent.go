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

const rentColumns = `id, client_id, tool_id, start_date, finish_date, return_date, active, damaged, irreparable, fine_cents, total_cents, employee_name, created_on, updated_on`

type rentRepository struct {
	db *sql.DB
}

func NewRentRepository(db *sql.DB) repository.RentRepository {
	return &rentRepository{db: db}
}

func (r *rentRepository) Create(ctx context.Context, tx *sql.Tx, rt *domain.Rent) error {
	query := `INSERT INTO rents (client_id, tool_id, start_date, finish_date, active, damaged, irreparable, fine_cents, total_cents, employee_name, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, TRUE, FALSE, FALSE, 0, 0, $5, $6, $7) RETURNING id`
	now := time.Now()
	rt.Active = true
	rt.FineCents = 0
	rt.TotalCents = 0
	return tx.QueryRowContext(ctx, query, rt.ClientID, rt.ToolID, rt.StartDate, rt.FinishDate, rt.EmployeeName, now, now).Scan(&rt.ID)
}

func (r *rentRepository) GetByID(ctx context.Context, id int32) (*domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE id = $1`
	return scanRent(r.db.QueryRowContext(ctx, query, id), id)
}

// GetByIDForUpdate locks the rent row so two concurrent returns of the
// same rent serialize; the loser observes active=false and conflicts.
func (r *rentRepository) GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE id = $1 FOR UPDATE`
	return scanRent(tx.QueryRowContext(ctx, query, id), id)
}

func scanRent(row *sql.Row, id int32) (*domain.Rent, error) {
	rt := &domain.Rent{}
	err := row.Scan(&rt.ID, &rt.ClientID, &rt.ToolID, &rt.StartDate, &rt.FinishDate, &rt.ReturnDate,
		&rt.Active, &rt.Damaged, &rt.Irreparable, &rt.FineCents, &rt.TotalCents, &rt.EmployeeName,
		&rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rent %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Finalize closes an active rent. The active=TRUE guard makes a double
// return fail even if the caller skipped the row lock.
func (r *rentRepository) Finalize(ctx context.Context, tx *sql.Tx, id int32, returnDate time.Time, damaged, irreparable bool, fineCents, totalCents int32) error {
	query := `UPDATE rents SET return_date = $1, active = FALSE, damaged = $2, irreparable = $3,
	          fine_cents = $4, total_cents = $5, updated_on = $6
	          WHERE id = $7 AND active = TRUE`
	res, err := tx.ExecContext(ctx, query, returnDate, damaged, irreparable, fineCents, totalCents, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("rent %d already returned: %w", id, domain.ErrConflict)
	}
	return nil
}

func (r *rentRepository) ListActiveByClient(ctx context.Context, clientID int32) ([]domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE client_id = $1 AND active = TRUE ORDER BY id`
	return r.queryRents(ctx, query, clientID)
}

func (r *rentRepository) ExistsActiveForClientAndTool(ctx context.Context, clientID, toolID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rents WHERE client_id = $1 AND tool_id = $2 AND active = TRUE)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, clientID, toolID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *rentRepository) ListAllOrdered(ctx context.Context) ([]domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents ORDER BY created_on DESC, id DESC`
	return r.queryRents(ctx, query)
}

func (r *rentRepository) ListOverdueUnreturned(ctx context.Context, today time.Time) ([]domain.Rent, error) {
	query := `SELECT ` + rentColumns + ` FROM rents WHERE return_date IS NULL AND finish_date < $1 ORDER BY finish_date`
	return r.queryRents(ctx, query, today)
}

func (r *rentRepository) queryRents(ctx context.Context, query string, args ...interface{}) ([]domain.Rent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rents []domain.Rent
	for rows.Next() {
		var rt domain.Rent
		if err := rows.Scan(&rt.ID, &rt.ClientID, &rt.ToolID, &rt.StartDate, &rt.FinishDate, &rt.ReturnDate,
			&rt.Active, &rt.Damaged, &rt.Irreparable, &rt.FineCents, &rt.TotalCents, &rt.EmployeeName,
			&rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rents = append(rents, rt)
	}
	return rents, rows.Err()
}
