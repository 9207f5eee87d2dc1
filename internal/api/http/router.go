package http

import (
	"net/http"

	"toolrent-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. Every /api route requires an employee
// token; inventory edits and client restrictions additionally require the
// ADMIN role.
func NewRouter(
	tokens security.TokenManager,
	rentHandler *RentHandler,
	toolHandler *ToolHandler,
	clientHandler *ClientHandler,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID)

	auth := NewAuthMiddleware(tokens)
	staff := auth.Require(security.RoleAdmin, security.RoleEmployee)
	admin := auth.Require(security.RoleAdmin)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// Rentals
	rents := api.PathPrefix("/rent").Subrouter()
	rents.Use(staff)
	rents.HandleFunc("", rentHandler.CreateRent).Methods(http.MethodPost)
	rents.HandleFunc("/all", rentHandler.ListAll).Methods(http.MethodGet)
	rents.HandleFunc("/overdue", rentHandler.ListOverdue).Methods(http.MethodGet)
	rents.HandleFunc("/client/{clientId:[0-9]+}/active", rentHandler.ListActiveByClient).Methods(http.MethodGet)
	rents.HandleFunc("/return/{rentId:[0-9]+}", rentHandler.ReturnTool).Methods(http.MethodPost)
	rents.HandleFunc("/{rentId:[0-9]+}", rentHandler.GetRent).Methods(http.MethodGet)

	// Inventory reads
	toolReads := api.PathPrefix("/tools").Subrouter()
	toolReads.Use(staff)
	toolReads.HandleFunc("", toolHandler.List).Methods(http.MethodGet)
	toolReads.HandleFunc("/available", toolHandler.ListAvailable).Methods(http.MethodGet)
	toolReads.HandleFunc("/available/count", toolHandler.AvailableCount).Methods(http.MethodGet)
	toolReads.HandleFunc("/search", toolHandler.SearchByName).Methods(http.MethodGet)
	toolReads.HandleFunc("/check-duplicate", toolHandler.CheckDuplicate).Methods(http.MethodGet)
	toolReads.HandleFunc("/category/{category}", toolHandler.ListByCategory).Methods(http.MethodGet)
	toolReads.HandleFunc("/{toolId:[0-9]+}", toolHandler.GetTool).Methods(http.MethodGet)

	// Inventory writes
	toolWrites := api.PathPrefix("/tools").Subrouter()
	toolWrites.Use(admin)
	toolWrites.HandleFunc("", toolHandler.AddTool).Methods(http.MethodPost)
	toolWrites.HandleFunc("/{toolId:[0-9]+}", toolHandler.UpdateTool).Methods(http.MethodPut)
	toolWrites.HandleFunc("/{toolId:[0-9]+}/status", toolHandler.SetStatus).Methods(http.MethodPatch)
	toolWrites.HandleFunc("/{toolId:[0-9]+}/deactivate", toolHandler.Deactivate).Methods(http.MethodDelete)

	// Clients
	clientReads := api.PathPrefix("/clients").Subrouter()
	clientReads.Use(staff)
	clientReads.HandleFunc("", clientHandler.List).Methods(http.MethodGet)
	clientReads.HandleFunc("/{clientId:[0-9]+}", clientHandler.GetClient).Methods(http.MethodGet)

	clientWrites := api.PathPrefix("/clients").Subrouter()
	clientWrites.Use(staff)
	clientWrites.HandleFunc("", clientHandler.AddClient).Methods(http.MethodPost)

	clientAdmin := api.PathPrefix("/clients").Subrouter()
	clientAdmin.Use(admin)
	clientAdmin.HandleFunc("/{clientId:[0-9]+}/status", clientHandler.SetStatus).Methods(http.MethodPatch)

	return router
}
