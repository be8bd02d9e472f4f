// internal/handlers/menu.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// MenuHandler handles menu item and category HTTP requests
type MenuHandler struct {
	base
	service ports.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service ports.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		base:    newBase(logger, "menu"),
		service: service,
	}
}

// ListItems handles GET /api/v1/menu/items?available=true
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	availableOnly := r.URL.Query().Get("available") == "true"
	items, err := h.service.List(r.Context(), canteenID, availableOnly)
	if err != nil {
		h.fail(w, r, err, "list menu items")
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

// GetItem handles GET /api/v1/menu/items/{id}
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "retrieve menu item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// CreateItem handles POST /api/v1/menu/items
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req MenuItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.Create(r.Context(), canteenID, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "create menu item")
		return
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/v1/menu/items/{id}
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req MenuItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	item, err := h.service.Update(r.Context(), canteenID, id, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "update menu item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/v1/menu/items/{id}
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), canteenID, id); err != nil {
		h.fail(w, r, err, "delete menu item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/v1/menu/categories
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	categories, err := h.service.Categories(r.Context(), canteenID)
	if err != nil {
		h.fail(w, r, err, "list menu categories")
		return
	}
	if categories == nil {
		categories = []domain.MenuCategory{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory handles POST /api/v1/menu/categories
func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	category, err := h.service.CreateCategory(r.Context(), canteenID, &domain.MenuCategory{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.fail(w, r, err, "create menu category")
		return
	}

	h.respondJSON(w, http.StatusCreated, category)
}

// MenuItemRequest represents the request body for a menu item
type MenuItemRequest struct {
	CategoryID      *uuid.UUID      `json:"category_id"`
	Name            string          `json:"name" validate:"required,max=200"`
	Description     string          `json:"description" validate:"max=2000"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url" validate:"omitempty,url"`
	IsAvailable     *bool           `json:"is_available"`
	PreparationTime int             `json:"preparation_time" validate:"gte=0,lte=600"`
	StockQuantity   *int            `json:"stock_quantity" validate:"omitempty,gte=0"`
}

// ToDomain converts the request to a domain model. Items are available
// unless the request says otherwise.
func (r *MenuItemRequest) ToDomain() *domain.MenuItem {
	item := &domain.MenuItem{
		CategoryID:      r.CategoryID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		ImageURL:        r.ImageURL,
		IsAvailable:     true,
		PreparationTime: r.PreparationTime,
		StockQuantity:   r.StockQuantity,
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	return item
}

// CategoryRequest represents the request body for a menu category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}
