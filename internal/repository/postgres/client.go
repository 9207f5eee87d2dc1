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

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (rut, name, status, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Rut, c.Name, c.Status, time.Now()).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	query := `SELECT id, rut, name, status, created_on FROM clients WHERE id = $1`
	c := &domain.Client{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Rut, &c.Name, &c.Status, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) GetByRut(ctx context.Context, rut string) (*domain.Client, error) {
	query := `SELECT id, rut, name, status, created_on FROM clients WHERE rut = $1`
	c := &domain.Client{}
	err := r.db.QueryRowContext(ctx, query, rut).Scan(&c.ID, &c.Rut, &c.Name, &c.Status, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", rut, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT id, rut, name, status, created_on FROM clients ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Rut, &c.Name, &c.Status, &c.CreatedOn); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientRepository) UpdateStatus(ctx context.Context, id int32, status domain.ClientStatus) error {
	query := `UPDATE clients SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("client %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
