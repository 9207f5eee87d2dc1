package service

import (
	"context"

	"toolrent-backend/internal/domain"
)

type RentService interface {
	// CreateRent opens a loan for the client identified by rut. The tool
	// reservation and the rent insert commit atomically.
	CreateRent(ctx context.Context, rut string, toolID int32, finishDate string, employeeName string) (*domain.Rent, error)
	// ReturnTool closes a loan, computes charges and moves the tool to its
	// post-return status, all in one transaction.
	ReturnTool(ctx context.Context, rentID int32, damaged, irreparable bool, employeeName string) (*domain.Rent, error)
	GetRent(ctx context.Context, rentID int32) (*domain.Rent, error)
	ListAllOrdered(ctx context.Context) ([]domain.Rent, error)
	ListActiveByClient(ctx context.Context, clientID int32) ([]domain.Rent, error)
	ListOverdueUnreturned(ctx context.Context) ([]domain.Rent, error)
}

// DuplicateSuggestion is the answer to "does a tool like this already
// exist, and what did we last value it at".
type DuplicateSuggestion struct {
	Exists              bool  `json:"exists"`
	SuggestedValueCents int32 `json:"suggested_value_cents"`
}

type ToolService interface {
	AddTool(ctx context.Context, tool *domain.Tool) error
	GetTool(ctx context.Context, id int32) (*domain.Tool, error)
	UpdateTool(ctx context.Context, tool *domain.Tool, actingEmployee string) (*domain.Tool, error)
	SetToolStatus(ctx context.Context, id int32, status domain.ToolStatus, actingEmployee string) (*domain.Tool, error)
	DeactivateTool(ctx context.Context, id int32, actingEmployee string) (*domain.Tool, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
	ListAvailableTools(ctx context.Context) ([]domain.Tool, error)
	GetToolsByName(ctx context.Context, name string) ([]domain.Tool, error)
	GetToolsByCategory(ctx context.Context, category string) ([]domain.Tool, error)
	AvailableCountByName(ctx context.Context) (map[string]int32, error)
	CheckDuplicate(ctx context.Context, name, category string) (*DuplicateSuggestion, error)
}

type ClientService interface {
	AddClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	SetClientStatus(ctx context.Context, id int32, status domain.ClientStatus) error
}

// EligibilityChecker is the external policy deciding whether a client may
// open a new rent. Implementations return an ErrForbidden-wrapped error
// when the client is restricted.
type EligibilityChecker interface {
	CheckEligibility(ctx context.Context, client *domain.Client) error
}

// ToolStatusObserver is notified after a tool's status change commits,
// e.g. so listings learn a tool became available or accounting learns one
// was decommissioned.
type ToolStatusObserver interface {
	ToolStatusChanged(ctx context.Context, tool *domain.Tool, from, to domain.ToolStatus)
}

type EmailService interface {
	SendOverdueRentSummary(ctx context.Context, to string, rents []domain.Rent) error
}
