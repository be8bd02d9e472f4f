// internal/core/domain/order.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

// Order status constants
const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid reports whether s is a known order status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the order is still waiting on the kitchen
func (s OrderStatus) IsOpen() bool {
	return s == OrderPending || s == OrderPreparing
}

// IsFulfilled reports whether the order has been handed over
func (s OrderStatus) IsFulfilled() bool {
	return s == OrderCompleted || s == OrderDelivered
}

// OrderType represents how an order is served
type OrderType string

// Order type constants
const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

// OrderItem is a single line of an order
type OrderItem struct {
	ID                  uuid.UUID       `json:"id"`
	OrderID             uuid.UUID       `json:"order_id"`
	MenuItemID          uuid.UUID       `json:"menu_item_id"`
	MenuItemName        string          `json:"menu_item_name,omitempty"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// Order represents a customer order; completed orders double as invoices
type Order struct {
	ID            uuid.UUID       `json:"id"`
	CanteenID     uuid.UUID       `json:"canteen_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Status        OrderStatus     `json:"status"`
	OrderType     OrderType       `json:"order_type"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         string          `json:"notes,omitempty"`
	ServedBy      *uuid.UUID      `json:"served_by,omitempty"`
	Items         []OrderItem     `json:"items,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the order
func (o *Order) Validate() error {
	if o.CanteenID == uuid.Nil {
		return invalid("canteen_id is required")
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	if !o.Status.IsValid() {
		return invalid("unknown order status %q", o.Status)
	}
	if o.OrderType == "" {
		o.OrderType = OrderDineIn
	}
	for idx, item := range o.Items {
		if item.MenuItemID == uuid.Nil {
			return invalid("items[%d].menu_item_id is required", idx)
		}
		if item.Quantity <= 0 {
			return invalid("items[%d].quantity must be positive", idx)
		}
		if item.UnitPrice.IsNegative() {
			return invalid("items[%d].unit_price cannot be negative", idx)
		}
	}
	if len(o.Items) == 0 && !o.TotalAmount.IsPositive() {
		return invalid("an order needs items or a positive total_amount")
	}
	return nil
}

// CalculateTotals sets line totals and, when the order has lines, the order
// total. Orders without lines keep the total they were given.
func (o *Order) CalculateTotals() {
	if len(o.Items) == 0 {
		return
	}
	total := decimal.Zero
	for idx := range o.Items {
		line := &o.Items[idx]
		line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(line.TotalPrice)
	}
	o.TotalAmount = total
}

// PrepareForStorage stamps identity and timestamps before an insert
func (o *Order) PrepareForStorage(now time.Time) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for idx := range o.Items {
		if o.Items[idx].ID == uuid.Nil {
			o.Items[idx].ID = uuid.New()
		}
		o.Items[idx].OrderID = o.ID
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}

// TransitionTo moves the order to status, stamping served_by when the order
// is completed.
func (o *Order) TransitionTo(status OrderStatus, servedBy *uuid.UUID, now time.Time) error {
	if !status.IsValid() {
		return invalid("unknown order status %q", status)
	}
	if o.Status == OrderCancelled && status != OrderCancelled {
		return invalid("cancelled orders cannot change status")
	}
	o.Status = status
	if status == OrderCompleted && servedBy != nil {
		o.ServedBy = servedBy
	}
	o.UpdatedAt = now
	return nil
}
