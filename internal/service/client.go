package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
	rentRepo   repository.RentRepository
}

func NewClientService(clientRepo repository.ClientRepository, rentRepo repository.RentRepository) ClientService {
	return &clientService{clientRepo: clientRepo, rentRepo: rentRepo}
}

func (s *clientService) AddClient(ctx context.Context, client *domain.Client) error {
	client.Rut = strings.TrimSpace(client.Rut)
	if client.Rut == "" {
		return fmt.Errorf("client rut is required: %w", domain.ErrInvalidInput)
	}
	if client.Status == "" {
		client.Status = domain.ClientStatusActive
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) SetClientStatus(ctx context.Context, id int32, status domain.ClientStatus) error {
	if status != domain.ClientStatusActive && status != domain.ClientStatusRestricted {
		return fmt.Errorf("unknown client status %q: %w", status, domain.ErrInvalidInput)
	}
	return s.clientRepo.UpdateStatus(ctx, id, status)
}

// eligibilityPolicy is the shop's default lending policy: restricted
// clients and clients sitting on an overdue loan cannot open a new rent.
type eligibilityPolicy struct {
	rentRepo repository.RentRepository
}

func NewEligibilityPolicy(rentRepo repository.RentRepository) EligibilityChecker {
	return &eligibilityPolicy{rentRepo: rentRepo}
}

func (p *eligibilityPolicy) CheckEligibility(ctx context.Context, client *domain.Client) error {
	if client.Status == domain.ClientStatusRestricted {
		return fmt.Errorf("client %d is restricted: %w", client.ID, domain.ErrForbidden)
	}
	active, err := p.rentRepo.ListActiveByClient(ctx, client.ID)
	if err != nil {
		return err
	}
	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, rt := range active {
		if rt.FinishDate.Before(cutoff) {
			return fmt.Errorf("client %d holds an overdue rent %d: %w", client.ID, rt.ID, domain.ErrForbidden)
		}
	}
	return nil
}
