// internal/core/domain/inventory.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryStatus is the derived presentation status of a stock item
type InventoryStatus string

// Inventory status constants
const (
	StatusGood         InventoryStatus = "good"
	StatusLowStock     InventoryStatus = "low_stock"
	StatusCritical     InventoryStatus = "critical"
	StatusOutOfStock   InventoryStatus = "out_of_stock"
	StatusExpiringSoon InventoryStatus = "expiring_soon"
	StatusExpired      InventoryStatus = "expired"
)

// InventoryStatuses lists every inventory status in precedence order.
var InventoryStatuses = []InventoryStatus{
	StatusOutOfStock,
	StatusExpired,
	StatusExpiringSoon,
	StatusCritical,
	StatusLowStock,
	StatusGood,
}

// IsValid reports whether s is a known inventory status
func (s InventoryStatus) IsValid() bool {
	for _, known := range InventoryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// NeedsAttention reports whether the status should raise an alert
func (s InventoryStatus) NeedsAttention() bool {
	return s != StatusGood && s != ""
}

// DefaultCategory is used when an item is stored without a category
const DefaultCategory = "general"

var hundred = decimal.NewFromInt(100)

// InventoryItem represents a stock-keeping item of a canteen
type InventoryItem struct {
	ID             uuid.UUID       `json:"id"`
	CanteenID      uuid.UUID       `json:"canteen_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category"`
	Supplier       string          `json:"supplier,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	MinStock       decimal.Decimal `json:"min_stock"`
	MaxStock       decimal.Decimal `json:"max_stock"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	ExpiryDate     *time.Time      `json:"expiry_date,omitempty"`
	LastRestocked  *time.Time      `json:"last_restocked,omitempty"`
	IsOnClearance  bool            `json:"is_on_clearance"`
	ClearancePrice decimal.Decimal `json:"clearance_price"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the inventory item
func (i *InventoryItem) Validate() error {
	if i.CanteenID == uuid.Nil {
		return invalid("canteen_id is required")
	}
	if i.Name == "" {
		return invalid("name is required")
	}
	if i.CurrentStock.IsNegative() {
		return invalid("current_stock cannot be negative")
	}
	if i.MinStock.IsNegative() {
		return invalid("min_stock cannot be negative")
	}
	if i.MaxStock.IsNegative() {
		return invalid("max_stock cannot be negative")
	}
	if i.MaxStock.IsPositive() && i.MaxStock.LessThan(i.MinStock) {
		return invalid("max_stock must be greater than or equal to min_stock")
	}
	if i.UnitCost.IsNegative() {
		return invalid("unit_cost cannot be negative")
	}
	if i.RetailPrice.IsNegative() {
		return invalid("retail_price cannot be negative")
	}
	if i.IsOnClearance && !i.ClearancePrice.IsPositive() {
		return invalid("clearance_price must be positive for clearance items")
	}
	if i.Category == "" {
		i.Category = DefaultCategory
	}
	return nil
}

// PrepareForStorage stamps identity and timestamps before an insert
func (i *InventoryItem) PrepareForStorage(now time.Time) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
		i.IsActive = true
	}
	i.UpdatedAt = now
}

// TotalValue is the stock value at cost
func (i *InventoryItem) TotalValue() decimal.Decimal {
	return i.CurrentStock.Mul(i.UnitCost)
}

// StockPercent returns the fill level used for progress bars, 0..100
func (i *InventoryItem) StockPercent() float64 {
	return StockPercent(i.CurrentStock, i.MaxStock)
}

// StockPercent returns min(current/max, 1) * 100. A zero or negative max
// yields 0.
func StockPercent(current, max decimal.Decimal) float64 {
	if !max.IsPositive() || !current.IsPositive() {
		return 0
	}
	ratio := current.Div(max)
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return 100
	}
	pct, _ := ratio.Mul(hundred).Float64()
	return pct
}

// HasExpiry reports whether the item carries a usable expiry date
func (i *InventoryItem) HasExpiry() bool {
	return i.ExpiryDate != nil && !i.ExpiryDate.IsZero()
}

// Restock adds quantity to the current stock and stamps the restock date
func (i *InventoryItem) Restock(quantity decimal.Decimal, now time.Time) error {
	if !quantity.IsPositive() {
		return invalid("restock quantity must be positive")
	}
	i.CurrentStock = i.CurrentStock.Add(quantity)
	restocked := now
	i.LastRestocked = &restocked
	i.UpdatedAt = now
	return nil
}

// PutOnClearance flags the item for a clearance sale at price
func (i *InventoryItem) PutOnClearance(price decimal.Decimal, now time.Time) error {
	if !price.IsPositive() {
		return invalid("clearance_price must be positive")
	}
	if i.RetailPrice.IsPositive() && price.GreaterThan(i.RetailPrice) {
		return invalid("clearance_price cannot exceed retail_price")
	}
	i.IsOnClearance = true
	i.ClearancePrice = price
	i.UpdatedAt = now
	return nil
}

// RemoveFromClearance ends the clearance sale for the item
func (i *InventoryItem) RemoveFromClearance(now time.Time) {
	i.IsOnClearance = false
	i.ClearancePrice = decimal.Zero
	i.UpdatedAt = now
}

// ClearanceDiscountPercent is the discount off the retail price, rounded to
// whole percent. Items without a retail price report 0.
func (i *InventoryItem) ClearanceDiscountPercent() decimal.Decimal {
	if !i.IsOnClearance || !i.RetailPrice.IsPositive() {
		return decimal.Zero
	}
	off := i.RetailPrice.Sub(i.ClearancePrice)
	if off.IsNegative() {
		return decimal.Zero
	}
	return off.Div(i.RetailPrice).Mul(hundred).Round(0)
}

// ClassifiedItem is an inventory item together with its derived fields,
// computed once and passed to views and reports.
type ClassifiedItem struct {
	InventoryItem
	Status          InventoryStatus `json:"status"`
	TotalValue      decimal.Decimal `json:"total_value"`
	StockPercent    float64         `json:"stock_percent"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}
