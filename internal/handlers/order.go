// internal/handlers/order.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// OrderHandler handles order and invoice HTTP requests
type OrderHandler struct {
	base
	service ports.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service ports.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		base:    newBase(logger, "order"),
		service: service,
	}
}

// ListOrders handles GET /api/v1/orders?status=&limit=&offset=
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	orders, err := h.service.List(r.Context(), canteenID, orderListParams(r))
	if err != nil {
		h.fail(w, r, err, "list orders")
		return
	}

	h.respondOrders(w, "orders", orders)
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "retrieve order")
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req OrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.service.Create(ctx, canteenID, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "create order")
		return
	}

	h.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)))

	h.respondJSON(w, http.StatusCreated, order)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req OrderStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), canteenID, id, domain.OrderStatus(req.Status), req.ServedBy)
	if err != nil {
		h.fail(w, r, err, "update order status")
		return
	}

	h.respondJSON(w, http.StatusOK, order)
}

// ListInvoices handles GET /api/v1/invoices
func (h *OrderHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	params := orderListParams(r)
	params.Status = ""
	invoices, err := h.service.Invoices(r.Context(), canteenID, params)
	if err != nil {
		h.fail(w, r, err, "list invoices")
		return
	}

	h.respondOrders(w, "invoices", invoices)
}

// CreateInvoice handles POST /api/v1/invoices
func (h *OrderHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req OrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	invoice, err := h.service.CreateInvoice(r.Context(), canteenID, req.ToDomain())
	if err != nil {
		h.fail(w, r, err, "create invoice")
		return
	}

	h.respondJSON(w, http.StatusCreated, invoice)
}

func (h *OrderHandler) respondOrders(w http.ResponseWriter, key string, orders []domain.Order) {
	if orders == nil {
		orders = []domain.Order{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		key:     orders,
		"count": len(orders),
	})
}

func orderListParams(r *http.Request) ports.OrderListParams {
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	if status == "all" {
		status = ""
	}
	return ports.OrderListParams{
		Status: status,
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
}

// OrderItemRequest is one order line. Prices come from the menu.
type OrderItemRequest struct {
	MenuItemID          uuid.UUID `json:"menu_item_id" validate:"required"`
	Quantity            int       `json:"quantity" validate:"gte=1"`
	SpecialInstructions string    `json:"special_instructions" validate:"max=500"`
}

// OrderRequest represents the request body for an order or invoice
type OrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"max=200"`
	CustomerPhone string             `json:"customer_phone" validate:"max=20"`
	OrderType     string             `json:"order_type" validate:"omitempty,oneof=dine_in takeaway delivery"`
	PaymentMethod string             `json:"payment_method" validate:"max=50"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Notes         string             `json:"notes" validate:"max=1000"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
}

// ToDomain converts the request to a domain model
func (r *OrderRequest) ToDomain() *domain.Order {
	order := &domain.Order{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		OrderType:     domain.OrderType(r.OrderType),
		PaymentMethod: r.PaymentMethod,
		TotalAmount:   r.TotalAmount,
		Notes:         r.Notes,
	}
	for _, it := range r.Items {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:          it.MenuItemID,
			Quantity:            it.Quantity,
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	return order
}

// OrderStatusRequest represents the request body for a status change
type OrderStatusRequest struct {
	Status   string     `json:"status" validate:"required,oneof=pending preparing ready completed delivered cancelled"`
	ServedBy *uuid.UUID `json:"served_by"`
}
