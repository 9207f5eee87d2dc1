package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
	"toolrent-backend/internal/utils"
)

type rentService struct {
	db          *sql.DB
	rentRepo    repository.RentRepository
	toolRepo    repository.ToolRepository
	clientRepo  repository.ClientRepository
	eligibility EligibilityChecker
	policy      utils.PricingPolicy
	observer    ToolStatusObserver
}

func NewRentService(
	db *sql.DB,
	rentRepo repository.RentRepository,
	toolRepo repository.ToolRepository,
	clientRepo repository.ClientRepository,
	eligibility EligibilityChecker,
	policy utils.PricingPolicy,
	observer ToolStatusObserver,
) RentService {
	return &rentService{
		db:          db,
		rentRepo:    rentRepo,
		toolRepo:    toolRepo,
		clientRepo:  clientRepo,
		eligibility: eligibility,
		policy:      policy,
		observer:    observer,
	}
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *rentService) CreateRent(ctx context.Context, rut string, toolID int32, finishDateStr string, employeeName string) (*domain.Rent, error) {
	finish, err := time.Parse("2006-01-02", finishDateStr)
	if err != nil {
		return nil, fmt.Errorf("finish date %q: %w", finishDateStr, domain.ErrInvalidInput)
	}
	start := today()
	if !finish.After(start) {
		return nil, fmt.Errorf("finish date must be after today: %w", domain.ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByRut(ctx, rut)
	if err != nil {
		return nil, err
	}
	if err := s.eligibility.CheckEligibility(ctx, client); err != nil {
		return nil, err
	}

	exists, err := s.rentRepo.ExistsActiveForClientAndTool(ctx, client.ID, toolID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("client %d already holds tool %d: %w", client.ID, toolID, domain.ErrConflict)
	}

	// Reserve the tool and persist the rent under one row-locked
	// transaction; of two concurrent requests for the same tool, the
	// second sees a non-AVAILABLE status and conflicts.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	tool, err := s.toolRepo.GetByIDForUpdate(ctx, tx, toolID)
	if err != nil {
		return nil, err
	}
	if tool.Status != domain.ToolStatusAvailable {
		err = fmt.Errorf("tool %d is %s: %w", toolID, tool.Status, domain.ErrConflict)
		return nil, err
	}
	if err = s.toolRepo.UpdateStatus(ctx, tx, toolID, domain.ToolStatusLoaned); err != nil {
		return nil, err
	}

	rent := &domain.Rent{
		ClientID:     client.ID,
		ToolID:       toolID,
		StartDate:    start,
		FinishDate:   finish,
		EmployeeName: employeeName,
	}
	if err = s.rentRepo.Create(ctx, tx, rent); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	if s.observer != nil {
		s.observer.ToolStatusChanged(ctx, tool, domain.ToolStatusAvailable, domain.ToolStatusLoaned)
	}
	logger.Info("rent created",
		"rent_id", rent.ID, "client_id", client.ID, "tool_id", toolID,
		"finish_date", finishDateStr, "employee", employeeName)
	return rent, nil
}

func (s *rentService) ReturnTool(ctx context.Context, rentID int32, damaged, irreparable bool, employeeName string) (*domain.Rent, error) {
	// An irreparable tool is by definition damaged; the flag is
	// normalized rather than rejected so callers only reporting the
	// total loss are still processed.
	if irreparable {
		damaged = true
	}
	returnDate := today()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rent, err := s.rentRepo.GetByIDForUpdate(ctx, tx, rentID)
	if err != nil {
		return nil, err
	}
	if !rent.Active {
		err = fmt.Errorf("rent %d already returned: %w", rentID, domain.ErrConflict)
		return nil, err
	}

	tool, err := s.toolRepo.GetByIDForUpdate(ctx, tx, rent.ToolID)
	if err != nil {
		return nil, err
	}

	base := utils.CalculateBaseCharge(rent.StartDate, rent.FinishDate, s.policy.DailyRateFor(tool.Category))
	charges, err := utils.ComputeReturnCharges(base, rent.FinishDate, returnDate, tool.ReplacementValueCents, damaged, irreparable, s.policy)
	if err != nil {
		err = fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		return nil, err
	}

	if err = s.rentRepo.Finalize(ctx, tx, rentID, returnDate, damaged, irreparable, charges.FineCents, charges.TotalCents); err != nil {
		return nil, err
	}

	newStatus := domain.ToolStatusAvailable
	switch {
	case irreparable:
		newStatus = domain.ToolStatusDecommissioned
	case damaged:
		newStatus = domain.ToolStatusInRepair
	}
	if err = s.toolRepo.UpdateStatus(ctx, tx, rent.ToolID, newStatus); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}

	rent.ReturnDate = &returnDate
	rent.Active = false
	rent.Damaged = damaged
	rent.Irreparable = irreparable
	rent.FineCents = charges.FineCents
	rent.TotalCents = charges.TotalCents

	if s.observer != nil {
		s.observer.ToolStatusChanged(ctx, tool, domain.ToolStatusLoaned, newStatus)
	}
	logger.Info("rent returned",
		"rent_id", rent.ID, "tool_id", rent.ToolID, "damaged", damaged, "irreparable", irreparable,
		"fine_cents", charges.FineCents, "total_cents", charges.TotalCents, "employee", employeeName)
	return rent, nil
}

func (s *rentService) GetRent(ctx context.Context, rentID int32) (*domain.Rent, error) {
	return s.rentRepo.GetByID(ctx, rentID)
}

func (s *rentService) ListAllOrdered(ctx context.Context) ([]domain.Rent, error) {
	return s.rentRepo.ListAllOrdered(ctx)
}

func (s *rentService) ListActiveByClient(ctx context.Context, clientID int32) ([]domain.Rent, error) {
	return s.rentRepo.ListActiveByClient(ctx, clientID)
}

func (s *rentService) ListOverdueUnreturned(ctx context.Context) ([]domain.Rent, error) {
	return s.rentRepo.ListOverdueUnreturned(ctx, today())
}
