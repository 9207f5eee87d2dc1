package service

import (
	"context"
	"fmt"
	"strings"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
	observer ToolStatusObserver
}

func NewToolService(toolRepo repository.ToolRepository, observer ToolStatusObserver) ToolService {
	return &toolService{toolRepo: toolRepo, observer: observer}
}

func (s *toolService) AddTool(ctx context.Context, tool *domain.Tool) error {
	tool.Name = strings.ToLower(strings.TrimSpace(tool.Name))
	tool.Category = strings.ToLower(strings.TrimSpace(tool.Category))
	if tool.Name == "" || tool.Category == "" {
		return fmt.Errorf("tool name and category are required: %w", domain.ErrInvalidInput)
	}
	if tool.ReplacementValueCents <= 0 {
		return fmt.Errorf("replacement value must be positive: %w", domain.ErrInvalidInput)
	}
	tool.Status = domain.ToolStatusAvailable
	return s.toolRepo.Create(ctx, tool)
}

func (s *toolService) GetTool(ctx context.Context, id int32) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

// UpdateTool applies field edits. A status edit goes through the
// administrative override path, and a replacement-value edit propagates to
// every tool of the same name+category group.
func (s *toolService) UpdateTool(ctx context.Context, tool *domain.Tool, actingEmployee string) (*domain.Tool, error) {
	existing, err := s.toolRepo.GetByID(ctx, tool.ID)
	if err != nil {
		return nil, err
	}

	tool.Name = strings.ToLower(strings.TrimSpace(tool.Name))
	tool.Category = strings.ToLower(strings.TrimSpace(tool.Category))
	if tool.ReplacementValueCents <= 0 {
		return nil, fmt.Errorf("replacement value must be positive: %w", domain.ErrInvalidInput)
	}
	if !domain.ValidToolStatus(tool.Status) {
		return nil, fmt.Errorf("unknown tool status %q: %w", tool.Status, domain.ErrInvalidInput)
	}

	if err := s.toolRepo.Update(ctx, tool); err != nil {
		return nil, err
	}

	if tool.Status != existing.Status {
		logger.Info("tool status overridden",
			"tool_id", tool.ID, "from", existing.Status, "to", tool.Status, "employee", actingEmployee)
		if s.observer != nil {
			s.observer.ToolStatusChanged(ctx, tool, existing.Status, tool.Status)
		}
	}
	if tool.ReplacementValueCents != existing.ReplacementValueCents {
		if err := s.toolRepo.UpdateGroupReplacementValue(ctx, tool.Name, tool.Category, tool.ReplacementValueCents); err != nil {
			return nil, err
		}
	}
	return tool, nil
}

// SetToolStatus is the administrative override outside the rent/return
// cycle, used for manual repair completion or manual decommission. Only
// existence is validated; any transition is permitted.
func (s *toolService) SetToolStatus(ctx context.Context, id int32, status domain.ToolStatus, actingEmployee string) (*domain.Tool, error) {
	if !domain.ValidToolStatus(status) {
		return nil, fmt.Errorf("unknown tool status %q: %w", status, domain.ErrInvalidInput)
	}
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.toolRepo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}
	logger.Info("tool status overridden",
		"tool_id", id, "from", tool.Status, "to", status, "employee", actingEmployee)
	if s.observer != nil {
		s.observer.ToolStatusChanged(ctx, tool, tool.Status, status)
	}
	tool.Status = status
	return tool, nil
}

func (s *toolService) DeactivateTool(ctx context.Context, id int32, actingEmployee string) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.toolRepo.Deactivate(ctx, id); err != nil {
		return nil, err
	}
	logger.Info("tool deactivated", "tool_id", id, "employee", actingEmployee)
	if s.observer != nil {
		s.observer.ToolStatusChanged(ctx, tool, tool.Status, domain.ToolStatusDecommissioned)
	}
	tool.Status = domain.ToolStatusDecommissioned
	return tool, nil
}

func (s *toolService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolService) ListAvailableTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.ListByStatus(ctx, domain.ToolStatusAvailable)
}

func (s *toolService) GetToolsByName(ctx context.Context, name string) ([]domain.Tool, error) {
	return s.toolRepo.ListByName(ctx, strings.ToLower(strings.TrimSpace(name)))
}

func (s *toolService) GetToolsByCategory(ctx context.Context, category string) ([]domain.Tool, error) {
	return s.toolRepo.ListByCategory(ctx, strings.ToLower(strings.TrimSpace(category)))
}

// AvailableCountByName tallies how many copies of each tool name are
// currently available; names with no available copy are omitted.
func (s *toolService) AvailableCountByName(ctx context.Context) (map[string]int32, error) {
	tools, err := s.toolRepo.ListByStatus(ctx, domain.ToolStatusAvailable)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int32, len(tools))
	for _, t := range tools {
		counts[t.Name]++
	}
	return counts, nil
}

// CheckDuplicate reports whether a tool with this name+category already
// exists and suggests the last recorded replacement value for pricing.
func (s *toolService) CheckDuplicate(ctx context.Context, name, category string) (*DuplicateSuggestion, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	category = strings.ToLower(strings.TrimSpace(category))
	value, found, err := s.toolRepo.LatestReplacementValue(ctx, name, category)
	if err != nil {
		return nil, err
	}
	return &DuplicateSuggestion{Exists: found, SuggestedValueCents: value}, nil
}
