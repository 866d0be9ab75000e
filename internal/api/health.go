package api

import (
	"net/http"

	"github.com/gatherly/gatherly/internal/api/respond"
	"github.com/gatherly/gatherly/internal/storage"
)

// HealthHandler reports service liveness backed by a store ping.
type HealthHandler struct {
	store storage.Store
}

func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	if err := h.store.HealthCheck(r.Context()); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"reason": err.Error(),
		})
		return nil
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	return nil
}
