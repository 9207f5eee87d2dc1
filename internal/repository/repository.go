package repository

import (
	"context"
	"database/sql"
	"time"

	"toolrent-backend/internal/domain"
)

// ToolRepository owns tool identity and status. The ForUpdate/tx variants
// exist so the rent lifecycle can pair a status check with its mutation
// inside one transaction keyed on the tool row.
type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Tool, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id int32, status domain.ToolStatus) error
	SetStatus(ctx context.Context, id int32, status domain.ToolStatus) error
	Update(ctx context.Context, tool *domain.Tool) error
	UpdateGroupReplacementValue(ctx context.Context, name, category string, valueCents int32) error
	Deactivate(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Tool, error)
	ListByStatus(ctx context.Context, status domain.ToolStatus) ([]domain.Tool, error)
	ListByName(ctx context.Context, name string) ([]domain.Tool, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Tool, error)
	// LatestReplacementValue returns the most recently recorded replacement
	// value for tools sharing name+category, for duplicate/price suggestions.
	LatestReplacementValue(ctx context.Context, name, category string) (int32, bool, error)
}

// RentRepository owns rental transactions. Create and Finalize run inside
// the caller's transaction so that tool status and rent state move together.
type RentRepository interface {
	Create(ctx context.Context, tx *sql.Tx, rent *domain.Rent) error
	GetByID(ctx context.Context, id int32) (*domain.Rent, error)
	GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Rent, error)
	Finalize(ctx context.Context, tx *sql.Tx, id int32, returnDate time.Time, damaged, irreparable bool, fineCents, totalCents int32) error
	ListActiveByClient(ctx context.Context, clientID int32) ([]domain.Rent, error)
	ExistsActiveForClientAndTool(ctx context.Context, clientID, toolID int32) (bool, error)
	ListAllOrdered(ctx context.Context) ([]domain.Rent, error)
	ListOverdueUnreturned(ctx context.Context, today time.Time) ([]domain.Rent, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	GetByRut(ctx context.Context, rut string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ClientStatus) error
}
