package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// RentHandler exposes the rental lifecycle over HTTP.
type RentHandler struct {
	rentSvc   service.RentService
	toolSvc   service.ToolService
	clientSvc service.ClientService
}

func NewRentHandler(rentSvc service.RentService, toolSvc service.ToolService, clientSvc service.ClientService) *RentHandler {
	return &RentHandler{
		rentSvc:   rentSvc,
		toolSvc:   toolSvc,
		clientSvc: clientSvc,
	}
}

type createRentRequest struct {
	Rut        string `json:"rut"`
	ToolID     int32  `json:"toolId"`
	FinishDate string `json:"finishDate"`
}

type returnToolRequest struct {
	Damaged     bool `json:"damaged"`
	Irreparable bool `json:"irreparable"`
}

// CreateRent opens a new loan.
// POST /api/rent
func (h *RentHandler) CreateRent(w http.ResponseWriter, r *http.Request) {
	var req createRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	rent, err := h.rentSvc.CreateRent(r.Context(), req.Rut, req.ToolID, req.FinishDate, employeeName(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toView(r.Context(), rent))
}

// ReturnTool closes a loan and reports the charges.
// POST /api/rent/return/{rentId}
func (h *RentHandler) ReturnTool(w http.ResponseWriter, r *http.Request) {
	rentID, err := pathID(r, "rentId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req returnToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	rent, err := h.rentSvc.ReturnTool(r.Context(), rentID, req.Damaged, req.Irreparable, employeeName(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toView(r.Context(), rent))
}

// GetRent returns one rental.
// GET /api/rent/{rentId}
func (h *RentHandler) GetRent(w http.ResponseWriter, r *http.Request) {
	rentID, err := pathID(r, "rentId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	rent, err := h.rentSvc.GetRent(r.Context(), rentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toView(r.Context(), rent))
}

// ListAll returns every rental, newest first.
// GET /api/rent/all
func (h *RentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	rents, err := h.rentSvc.ListAllOrdered(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toViews(r.Context(), rents))
}

// ListActiveByClient returns a client's open loans.
// GET /api/rent/client/{clientId}/active
func (h *RentHandler) ListActiveByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	rents, err := h.rentSvc.ListActiveByClient(r.Context(), clientID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toViews(r.Context(), rents))
}

// ListOverdue returns unreturned rentals past their finish date.
// GET /api/rent/overdue
func (h *RentHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	rents, err := h.rentSvc.ListOverdueUnreturned(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toViews(r.Context(), rents))
}

func (h *RentHandler) toView(ctx context.Context, rent *domain.Rent) RentView {
	return newRentView(rent, h.clientName(ctx, rent.ClientID, nil), h.toolName(ctx, rent.ToolID, nil))
}

// toViews resolves client and tool names with per-request memoization so
// listings do not re-fetch the same rows.
func (h *RentHandler) toViews(ctx context.Context, rents []domain.Rent) []RentView {
	clientNames := make(map[int32]string)
	toolNames := make(map[int32]string)

	views := make([]RentView, 0, len(rents))
	for i := range rents {
		rent := &rents[i]
		views = append(views, newRentView(rent,
			h.clientName(ctx, rent.ClientID, clientNames),
			h.toolName(ctx, rent.ToolID, toolNames)))
	}
	return views
}

func (h *RentHandler) clientName(ctx context.Context, id int32, cache map[int32]string) string {
	if cache != nil {
		if name, ok := cache[id]; ok {
			return name
		}
	}
	name := ""
	if client, err := h.clientSvc.GetClient(ctx, id); err == nil {
		name = client.Name
	}
	if cache != nil {
		cache[id] = name
	}
	return name
}

func (h *RentHandler) toolName(ctx context.Context, id int32, cache map[int32]string) string {
	if cache != nil {
		if name, ok := cache[id]; ok {
			return name
		}
	}
	name := ""
	if tool, err := h.toolSvc.GetTool(ctx, id); err == nil {
		name = tool.Name
	}
	if cache != nil {
		cache[id] = name
	}
	return name
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, domain.ErrInvalidInput)
	}
	return int32(id), nil
}
