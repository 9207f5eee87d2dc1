package handlers

import (
	"context"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockRentService
type MockRentService struct {
	mock.Mock
}

func (m *MockRentService) CreateRent(ctx context.Context, rut string, toolID int32, finishDate string, employeeName string) (*domain.Rent, error) {
	args := m.Called(ctx, rut, toolID, finishDate, employeeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentService) ReturnTool(ctx context.Context, rentID int32, damaged, irreparable bool, employeeName string) (*domain.Rent, error) {
	args := m.Called(ctx, rentID, damaged, irreparable, employeeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentService) GetRent(ctx context.Context, rentID int32) (*domain.Rent, error) {
	args := m.Called(ctx, rentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentService) ListAllOrdered(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentService) ListActiveByClient(ctx context.Context, clientID int32) ([]domain.Rent, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentService) ListOverdueUnreturned(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}

// MockToolService
type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) AddTool(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}
func (m *MockToolService) GetTool(ctx context.Context, id int32) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) UpdateTool(ctx context.Context, tool *domain.Tool, actingEmployee string) (*domain.Tool, error) {
	args := m.Called(ctx, tool, actingEmployee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) SetToolStatus(ctx context.Context, id int32, status domain.ToolStatus, actingEmployee string) (*domain.Tool, error) {
	args := m.Called(ctx, id, status, actingEmployee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) DeactivateTool(ctx context.Context, id int32, actingEmployee string) (*domain.Tool, error) {
	args := m.Called(ctx, id, actingEmployee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolService) ListAvailableTools(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolService) GetToolsByName(ctx context.Context, name string) ([]domain.Tool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolService) GetToolsByCategory(ctx context.Context, category string) ([]domain.Tool, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Tool), args.Error(1)
}
func (m *MockToolService) AvailableCountByName(ctx context.Context) (map[string]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int32), args.Error(1)
}
func (m *MockToolService) CheckDuplicate(ctx context.Context, name, category string) (*service.DuplicateSuggestion, error) {
	args := m.Called(ctx, name, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DuplicateSuggestion), args.Error(1)
}

// MockClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) AddClient(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) SetClientStatus(ctx context.Context, id int32, status domain.ClientStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
