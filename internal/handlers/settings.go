// internal/handlers/settings.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// SettingsHandler handles the canteen profile and operating settings
type SettingsHandler struct {
	base
	service ports.CanteenService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service ports.CanteenService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		base:    newBase(logger, "settings"),
		service: service,
	}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	canteen, err := h.service.Get(r.Context(), canteenID)
	if err != nil {
		h.fail(w, r, err, "load settings")
		return
	}

	h.respondJSON(w, http.StatusOK, canteen)
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req SettingsRequest
	if !h.decode(w, r, &req) {
		return
	}

	canteen, err := h.service.Update(r.Context(), canteenID, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "update settings")
		return
	}

	h.respondJSON(w, http.StatusOK, canteen)
}

// SettingsRequest represents the full set of editable canteen settings
type SettingsRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	Description        string `json:"description" validate:"max=2000"`
	Address            string `json:"address" validate:"max=500"`
	Phone              string `json:"phone" validate:"max=20"`
	Email              string `json:"email" validate:"omitempty,email"`
	Timezone           string `json:"timezone" validate:"max=64"`
	Currency           string `json:"currency" validate:"omitempty,len=3"`
	OpenTime           string `json:"open_time"`
	CloseTime          string `json:"close_time"`
	PreparationTime    int    `json:"preparation_time" validate:"gte=0"`
	TableCount         int    `json:"table_count" validate:"gte=0"`
	DineInEnabled      bool   `json:"dine_in_enabled"`
	TakeawayEnabled    bool   `json:"takeaway_enabled"`
	OrderNotifications bool   `json:"order_notifications"`
	LowStockAlerts     bool   `json:"low_stock_alerts"`
	DailyReports       bool   `json:"daily_reports"`
}

// ToDomain converts the request to a domain model
func (r *SettingsRequest) ToDomain() *domain.Canteen {
	return &domain.Canteen{
		Name:               r.Name,
		Description:        r.Description,
		Address:            r.Address,
		Phone:              r.Phone,
		Email:              r.Email,
		Timezone:           r.Timezone,
		Currency:           r.Currency,
		OpenTime:           r.OpenTime,
		CloseTime:          r.CloseTime,
		PreparationTime:    r.PreparationTime,
		TableCount:         r.TableCount,
		DineInEnabled:      r.DineInEnabled,
		TakeawayEnabled:    r.TakeawayEnabled,
		OrderNotifications: r.OrderNotifications,
		LowStockAlerts:     r.LowStockAlerts,
		DailyReports:       r.DailyReports,
	}
}
