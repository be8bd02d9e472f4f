// internal/core/domain/menu.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuCategory groups menu items
type MenuCategory struct {
	ID          uuid.UUID `json:"id"`
	CanteenID   uuid.UUID `json:"canteen_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem represents a dish sold by a canteen
type MenuItem struct {
	ID              uuid.UUID       `json:"id"`
	CanteenID       uuid.UUID       `json:"canteen_id"`
	CategoryID      *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url,omitempty"`
	IsAvailable     bool            `json:"is_available"`
	IsActive        bool            `json:"is_active"`
	PreparationTime int             `json:"preparation_time,omitempty"`
	StockQuantity   *int            `json:"stock_quantity,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the menu item
func (m *MenuItem) Validate() error {
	if m.CanteenID == uuid.Nil {
		return invalid("canteen_id is required")
	}
	if m.Name == "" {
		return invalid("name is required")
	}
	if m.Price.IsNegative() {
		return invalid("price cannot be negative")
	}
	if m.PreparationTime < 0 {
		return invalid("preparation_time cannot be negative")
	}
	if m.StockQuantity != nil && *m.StockQuantity < 0 {
		return invalid("stock_quantity cannot be negative")
	}
	return nil
}

// PrepareForStorage stamps identity and timestamps before an insert
func (m *MenuItem) PrepareForStorage(now time.Time) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
		m.IsActive = true
	}
	m.UpdatedAt = now
}
