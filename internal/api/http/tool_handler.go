package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// ToolHandler exposes inventory management over HTTP.
type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

type toolRequest struct {
	Name                  string `json:"name"`
	Category              string `json:"category"`
	ReplacementValueCents int32  `json:"replacement_value_cents"`
	Status                string `json:"status,omitempty"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// AddTool registers a new tool in the inventory.
// POST /api/tools
func (h *ToolHandler) AddTool(w http.ResponseWriter, r *http.Request) {
	var req toolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	tool := &domain.Tool{
		Name:                  req.Name,
		Category:              req.Category,
		ReplacementValueCents: req.ReplacementValueCents,
	}
	if err := h.toolSvc.AddTool(r.Context(), tool); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tool)
}

// GetTool returns one tool.
// GET /api/tools/{toolId}
func (h *ToolHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "toolId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	tool, err := h.toolSvc.GetTool(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// UpdateTool edits a tool's descriptive fields, status and replacement
// value. A replacement value change propagates to same-name tools.
// PUT /api/tools/{toolId}
func (h *ToolHandler) UpdateTool(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "toolId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req toolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	tool := &domain.Tool{
		ID:                    id,
		Name:                  req.Name,
		Category:              req.Category,
		ReplacementValueCents: req.ReplacementValueCents,
		Status:                domain.ToolStatus(req.Status),
	}
	updated, err := h.toolSvc.UpdateTool(r.Context(), tool, employeeName(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetStatus moves a tool to an explicit status, e.g. back from repair.
// PATCH /api/tools/{toolId}/status
func (h *ToolHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "toolId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	tool, err := h.toolSvc.SetToolStatus(r.Context(), id, domain.ToolStatus(req.Status), employeeName(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// Deactivate retires a tool from circulation.
// DELETE /api/tools/{toolId}/deactivate
func (h *ToolHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "toolId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	tool, err := h.toolSvc.DeactivateTool(r.Context(), id, employeeName(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

// List returns the full inventory.
// GET /api/tools
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListTools(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

// ListAvailable returns tools that can be rented right now.
// GET /api/tools/available
func (h *ToolHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.ListAvailableTools(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

// AvailableCount returns how many units of each tool name are available.
// GET /api/tools/available/count
func (h *ToolHandler) AvailableCount(w http.ResponseWriter, r *http.Request) {
	counts, err := h.toolSvc.AvailableCountByName(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// SearchByName returns every unit matching a tool name.
// GET /api/tools/search?name=
func (h *ToolHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, r, fmt.Errorf("name query parameter is required: %w", domain.ErrInvalidInput))
		return
	}

	tools, err := h.toolSvc.GetToolsByName(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

// ListByCategory returns the tools in one category.
// GET /api/tools/category/{category}
func (h *ToolHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	tools, err := h.toolSvc.GetToolsByCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

// CheckDuplicate reports whether a tool with this name and category
// already exists and suggests the last recorded replacement value.
// GET /api/tools/check-duplicate?name=&category=
func (h *ToolHandler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	category := r.URL.Query().Get("category")
	if name == "" || category == "" {
		writeError(w, r, fmt.Errorf("name and category query parameters are required: %w", domain.ErrInvalidInput))
		return
	}

	suggestion, err := h.toolSvc.CheckDuplicate(r.Context(), name, category)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}
