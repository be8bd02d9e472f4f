// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
)

var benchNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

// generateInventory builds n items spread across every stock and expiry band
func generateInventory(canteenID uuid.UUID, n int) []domain.InventoryItem {
	categories := []string{"grains", "dairy", "produce", "beverages", "bakery"}

	items := make([]domain.InventoryItem, n)
	for i := range items {
		var expiry *time.Time
		if i%3 == 0 {
			d := benchNow.AddDate(0, 0, i%14-4)
			expiry = &d
		}
		items[i] = domain.InventoryItem{
			ID:             uuid.New(),
			CanteenID:      canteenID,
			Name:           fmt.Sprintf("Bench Item %d", i),
			Category:       categories[i%len(categories)],
			Unit:           "kg",
			CurrentStock:   decimal.NewFromInt(int64(i * 7 % 120)),
			MinStock:       decimal.NewFromInt(20),
			MaxStock:       decimal.NewFromInt(100),
			UnitCost:       decimal.RequireFromString("1.25"),
			RetailPrice:    decimal.RequireFromString("2.10"),
			ExpiryDate:     expiry,
			IsOnClearance:  i%10 == 0,
			ClearancePrice: decimal.RequireFromString("1.50"),
			IsActive:       true,
		}
	}
	return items
}

// generateOrders builds n two-line orders cycling through the statuses
func generateOrders(canteenID uuid.UUID, n int) []domain.Order {
	statuses := []domain.OrderStatus{
		domain.OrderPending, domain.OrderPreparing, domain.OrderReady,
		domain.OrderCompleted, domain.OrderDelivered, domain.OrderCancelled,
	}

	orders := make([]domain.Order, n)
	for i := range orders {
		o := domain.Order{
			ID:        uuid.New(),
			CanteenID: canteenID,
			Status:    statuses[i%len(statuses)],
			OrderType: domain.OrderDineIn,
			Items: []domain.OrderItem{
				{MenuItemID: uuid.New(), Quantity: 1 + i%3, UnitPrice: decimal.NewFromInt(120)},
				{MenuItemID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(15)},
			},
			CreatedAt: benchNow.Add(-time.Duration(i) * time.Hour),
		}
		o.CalculateTotals()
		orders[i] = o
	}
	return orders
}

// generateFeedback builds n entries with ratings 1 through 5
func generateFeedback(canteenID uuid.UUID, n int) []domain.Feedback {
	fb := make([]domain.Feedback, n)
	for i := range fb {
		fb[i] = domain.Feedback{
			ID:        uuid.New(),
			CanteenID: canteenID,
			Rating:    1 + i%5,
			Status:    domain.FeedbackNew,
		}
	}
	return fb
}
