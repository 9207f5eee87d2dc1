package service

import (
	"context"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
)

// logStatusObserver publishes tool status transitions to the log stream,
// which inventory listings and replacement accounting tail.
type logStatusObserver struct{}

func NewLogStatusObserver() ToolStatusObserver {
	return logStatusObserver{}
}

func (logStatusObserver) ToolStatusChanged(ctx context.Context, tool *domain.Tool, from, to domain.ToolStatus) {
	logger.InfoContext(ctx, "tool status changed",
		"tool_id", tool.ID, "name", tool.Name, "from", from, "to", to)
	if to == domain.ToolStatusDecommissioned {
		logger.InfoContext(ctx, "tool decommissioned, replacement value written off",
			"tool_id", tool.ID, "replacement_value_cents", tool.ReplacementValueCents)
	}
}
