package handler

import (
	"net/http"

	"github.com/kulturboden/api/internal/store"
)

// HealthHandler answers liveness probes with a store ping.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Check handles GET /healthz
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		WriteError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	WriteData(w, http.StatusOK, map[string]string{"status": "ok"})
}
