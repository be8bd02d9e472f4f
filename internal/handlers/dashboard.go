// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/canteen-be/internal/core/ports"
)

// DashboardHandler handles dashboard operations
type DashboardHandler struct {
	base
	service ports.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service ports.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		base:    newBase(logger, "dashboard"),
		service: service,
	}
}

// GetDashboard handles GET /api/v1/dashboard. ?refresh=true skips the
// cached copy.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	get := h.service.Get
	if r.URL.Query().Get("refresh") == "true" {
		get = h.service.Refresh
	}

	dashboard, err := get(ctx, canteenID)
	if err != nil {
		h.fail(w, r, err, "load dashboard")
		return
	}

	if len(dashboard.Degraded) > 0 {
		w.Header().Set("X-Dashboard-Degraded", strings.Join(dashboard.Degraded, ","))
		h.logger.WarnContext(ctx, "serving degraded dashboard",
			slog.String("canteen_id", canteenID.String()),
			slog.Any("sections", dashboard.Degraded))
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}
