// internal/handlers/promotion.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// PromotionHandler handles promotion HTTP requests
type PromotionHandler struct {
	base
	service ports.PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(service ports.PromotionService, logger *slog.Logger) *PromotionHandler {
	return &PromotionHandler{
		base:    newBase(logger, "promotion"),
		service: service,
	}
}

// ListPromotions handles GET /api/v1/promotions?status=
func (h *PromotionHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	status := domain.PromotionStatus(r.URL.Query().Get("status"))
	if status == "all" {
		status = ""
	}

	promotions, err := h.service.List(r.Context(), canteenID, status)
	if err != nil {
		h.fail(w, r, err, "list promotions")
		return
	}
	if promotions == nil {
		promotions = []domain.ClassifiedPromotion{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"promotions": promotions,
		"count":      len(promotions),
	})
}

// GetPromotion handles GET /api/v1/promotions/{id}
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	promotion, err := h.service.Get(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "retrieve promotion")
		return
	}

	h.respondJSON(w, http.StatusOK, promotion)
}

// CreatePromotion handles POST /api/v1/promotions
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req PromotionRequest
	if !h.decode(w, r, &req) {
		return
	}

	promotion, err := h.service.Create(r.Context(), canteenID, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "create promotion")
		return
	}

	h.respondJSON(w, http.StatusCreated, promotion)
}

// UpdatePromotion handles PUT /api/v1/promotions/{id}
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req PromotionRequest
	if !h.decode(w, r, &req) {
		return
	}

	promotion, err := h.service.Update(r.Context(), canteenID, id, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "update promotion")
		return
	}

	h.respondJSON(w, http.StatusOK, promotion)
}

// DeletePromotion handles DELETE /api/v1/promotions/{id}
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), canteenID, id); err != nil {
		h.fail(w, r, err, "delete promotion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PromotionRequest represents the request body for a promotion
type PromotionRequest struct {
	Name           string          `json:"name" validate:"required,max=200"`
	Description    string          `json:"description" validate:"max=2000"`
	Type           string          `json:"type" validate:"required,oneof=percentage fixed_amount"`
	Value          decimal.Decimal `json:"value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	StartDate      *Date           `json:"start_date"`
	EndDate        *Date           `json:"end_date"`
	Scope          string          `json:"scope" validate:"omitempty,oneof=all category item"`
	TargetID       *uuid.UUID      `json:"target_id"`
	TargetName     string          `json:"target_name" validate:"max=200"`
	IsActive       *bool           `json:"is_active"`
}

// ToDomain converts the request to a domain model. Promotions are active
// unless the request says otherwise.
func (r *PromotionRequest) ToDomain() *domain.Promotion {
	p := &domain.Promotion{
		Name:           r.Name,
		Description:    r.Description,
		Type:           domain.PromotionType(r.Type),
		Value:          r.Value,
		MinOrderAmount: r.MinOrderAmount,
		StartDate:      r.StartDate.Ptr(),
		EndDate:        r.EndDate.Ptr(),
		Target: domain.PromotionTarget{
			Scope:      domain.PromotionScope(r.Scope),
			TargetID:   r.TargetID,
			TargetName: r.TargetName,
		},
		IsActive: true,
	}
	if p.Target.Scope == "" {
		p.Target.Scope = domain.ScopeAllItems
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p
}
