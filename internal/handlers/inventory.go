// internal/handlers/inventory.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	base
	service ports.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		base:    newBase(logger, "inventory"),
		service: service,
	}
}

// ListInventory handles GET /api/v1/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), canteenID, h.parseListParams(r))
	if err != nil {
		h.fail(w, r, err, "list inventory items")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetInventory handles GET /api/v1/inventory/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "retrieve inventory item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// CreateInventory handles POST /api/v1/inventory
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req InventoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.Create(ctx, canteenID, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "create inventory item")
		return
	}

	h.logger.InfoContext(ctx, "inventory item created",
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name))

	h.respondJSON(w, http.StatusCreated, item)
}

// UpdateInventory handles PUT /api/v1/inventory/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req InventoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.Update(r.Context(), canteenID, id, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "update inventory item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// DeleteInventory handles DELETE /api/v1/inventory/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, canteenID, id); err != nil {
		h.fail(w, r, err, "delete inventory item")
		return
	}

	h.logger.InfoContext(ctx, "inventory item deleted",
		slog.String("item_id", id.String()))

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Inventory item deleted successfully",
		"id":      id.String(),
	})
}

// Restock handles POST /api/v1/inventory/{id}/restock
func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req RestockRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.Restock(r.Context(), canteenID, id, req.Quantity)
	if err != nil {
		h.fail(w, r, err, "restock inventory item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// SetClearance handles PUT /api/v1/inventory/{id}/clearance
func (h *InventoryHandler) SetClearance(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req ClearanceRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.SetClearance(r.Context(), canteenID, id, req.ClearancePrice)
	if err != nil {
		h.fail(w, r, err, "put item on clearance")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// ClearClearance handles DELETE /api/v1/inventory/{id}/clearance
func (h *InventoryHandler) ClearClearance(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	item, err := h.service.ClearClearance(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "take item off clearance")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// Alerts handles GET /api/v1/inventory/alerts
func (h *InventoryHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	items, err := h.service.Alerts(r.Context(), canteenID)
	if err != nil {
		h.fail(w, r, err, "load inventory alerts")
		return
	}
	if items == nil {
		items = []domain.ClassifiedItem{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// Clearance handles GET /api/v1/clearance
func (h *InventoryHandler) Clearance(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Clearance(r.Context(), canteenID)
	if err != nil {
		h.fail(w, r, err, "load clearance items")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// parseListParams parses query parameters for listing inventory. Paging is
// clamped by the service.
func (h *InventoryHandler) parseListParams(r *http.Request) ports.InventoryListParams {
	q := r.URL.Query()
	params := ports.InventoryListParams{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		Status:    domain.InventoryStatus(q.Get("status")),
		SortBy:    q.Get("sort"),
		SortOrder: q.Get("order"),
		Page:      queryInt(r, "page", 1),
		PageSize:  queryInt(r, "limit", 0),
	}
	if params.Category == "all" {
		params.Category = ""
	}
	if params.Status == "all" {
		params.Status = ""
	}
	return params
}

// Request DTOs

// InventoryRequest represents the request body for creating or replacing an
// inventory item
type InventoryRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Description  string          `json:"description" validate:"max=2000"`
	Category     string          `json:"category" validate:"max=100"`
	Supplier     string          `json:"supplier" validate:"max=200"`
	Unit         string          `json:"unit" validate:"max=20"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	MaxStock     decimal.Decimal `json:"max_stock"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	RetailPrice  decimal.Decimal `json:"retail_price"`
	ExpiryDate   *Date           `json:"expiry_date"`
}

// ToDomain converts the request to a domain model
func (r *InventoryRequest) ToDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		Supplier:     r.Supplier,
		Unit:         r.Unit,
		CurrentStock: r.CurrentStock,
		MinStock:     r.MinStock,
		MaxStock:     r.MaxStock,
		UnitCost:     r.UnitCost,
		RetailPrice:  r.RetailPrice,
		ExpiryDate:   r.ExpiryDate.Ptr(),
	}
}

// RestockRequest represents the request body for a restock
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ClearanceRequest represents the request body for a clearance price
type ClearanceRequest struct {
	ClearancePrice decimal.Decimal `json:"clearance_price"`
}
