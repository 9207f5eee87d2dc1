package unit

import (
	"context"
	"database/sql"
	"time"

	"toolrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) Create(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, id int32, status domain.ToolStatus) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}
func (m *MockToolRepo) SetStatus(ctx context.Context, id int32, status domain.ToolStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockToolRepo) Update(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolRepo) UpdateGroupReplacementValue(ctx context.Context, name, category string, valueCents int32) error {
	args := m.Called(ctx, name, category, valueCents)
	return args.Error(0)
}
func (m *MockToolRepo) Deactivate(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockToolRepo) List(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByStatus(ctx context.Context, status domain.ToolStatus) ([]domain.Tool, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByName(ctx context.Context, name string) ([]domain.Tool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) ListByCategory(ctx context.Context, category string) ([]domain.Tool, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolRepo) LatestReplacementValue(ctx context.Context, name, category string) (int32, bool, error) {
	args := m.Called(ctx, name, category)
	return args.Get(0).(int32), args.Bool(1), args.Error(2)
}

// MockRentRepo
type MockRentRepo struct {
	mock.Mock
}

func (m *MockRentRepo) Create(ctx context.Context, tx *sql.Tx, rent *domain.Rent) error {
	args := m.Called(ctx, tx, rent)
	return args.Error(0)
}
func (m *MockRentRepo) GetByID(ctx context.Context, id int32) (*domain.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentRepo) GetByIDForUpdate(ctx context.Context, tx *sql.Tx, id int32) (*domain.Rent, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentRepo) Finalize(ctx context.Context, tx *sql.Tx, id int32, returnDate time.Time, damaged, irreparable bool, fineCents, totalCents int32) error {
	args := m.Called(ctx, tx, id, returnDate, damaged, irreparable, fineCents, totalCents)
	return args.Error(0)
}
func (m *MockRentRepo) ListActiveByClient(ctx context.Context, clientID int32) ([]domain.Rent, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) ExistsActiveForClientAndTool(ctx context.Context, clientID, toolID int32) (bool, error) {
	args := m.Called(ctx, clientID, toolID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentRepo) ListAllOrdered(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) ListOverdueUnreturned(ctx context.Context, today time.Time) ([]domain.Rent, error) {
	args := m.Called(ctx, today)
	return args.Get(0).([]domain.Rent), args.Error(1)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) GetByRut(ctx context.Context, rut string) (*domain.Client, error) {
	args := m.Called(ctx, rut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientRepo) UpdateStatus(ctx context.Context, id int32, status domain.ClientStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockEligibility
type MockEligibility struct {
	mock.Mock
}

func (m *MockEligibility) CheckEligibility(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// MockObserver
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ToolStatusChanged(ctx context.Context, tool *domain.Tool, from, to domain.ToolStatus) {
	m.Called(ctx, tool, from, to)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueRentSummary(ctx context.Context, to string, rents []domain.Rent) error {
	args := m.Called(ctx, to, rents)
	return args.Error(0)
}
