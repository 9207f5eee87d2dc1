package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/service"
)

// ClientHandler exposes client registration and status management.
type ClientHandler struct {
	clientSvc service.ClientService
}

func NewClientHandler(clientSvc service.ClientService) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc}
}

type clientRequest struct {
	Rut  string `json:"rut"`
	Name string `json:"name"`
}

type clientStatusRequest struct {
	Status string `json:"status"`
}

// AddClient registers a new client.
// POST /api/clients
func (h *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	client := &domain.Client{
		Rut:  req.Rut,
		Name: req.Name,
	}
	if err := h.clientSvc.AddClient(r.Context(), client); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

// GetClient returns one client.
// GET /api/clients/{clientId}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.clientSvc.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// List returns every registered client.
// GET /api/clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientSvc.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// SetStatus switches a client between ACTIVE and RESTRICTED.
// PATCH /api/clients/{clientId}/status
func (h *ClientHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "clientId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req clientStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("malformed request body: %w", domain.ErrInvalidInput))
		return
	}

	if err := h.clientSvc.SetClientStatus(r.Context(), id, domain.ClientStatus(req.Status)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
