// internal/core/classifier/classifier.go
package classifier

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

const (
	// ExpiringWindowDays is how many calendar days ahead an expiry counts as "soon".
	ExpiringWindowDays = 3
	// CriticalRatio is the fraction of min_stock at or below which stock is critical.
	CriticalRatio = 0.5
)

var criticalRatio = decimal.NewFromFloat(CriticalRatio)

// InventoryStatus derives the presentation status of item at now. Rules are
// evaluated first match wins:
//
//	out_of_stock, expired, expiring_soon, critical, low_stock, good
//
// Expiry comparisons use calendar days, with today taken from now's location.
func InventoryStatus(item *domain.InventoryItem, now time.Time) domain.InventoryStatus {
	if item == nil {
		return domain.StatusGood
	}
	stock := item.CurrentStock

	// negative stock is bad data; it sells nothing either way
	if !stock.IsPositive() {
		return domain.StatusOutOfStock
	}

	if item.HasExpiry() {
		today := clock.CivilDay(now)
		expiry := clock.CivilDay(*item.ExpiryDate)
		if expiry.Before(today) {
			return domain.StatusExpired
		}
		if expiry.Before(today.AddDate(0, 0, ExpiringWindowDays)) {
			return domain.StatusExpiringSoon
		}
	}

	if stock.LessThanOrEqual(item.MinStock.Mul(criticalRatio)) {
		return domain.StatusCritical
	}
	if stock.LessThanOrEqual(item.MinStock) {
		return domain.StatusLowStock
	}
	return domain.StatusGood
}

// PromotionStatus derives the status of p at now. Both bounds are inclusive
// calendar days; a missing bound never fires its rule.
func PromotionStatus(p *domain.Promotion, now time.Time) domain.PromotionStatus {
	if p == nil {
		return domain.PromotionActive
	}
	today := clock.CivilDay(now)

	if set(p.StartDate) && today.Before(clock.CivilDay(*p.StartDate)) {
		return domain.PromotionScheduled
	}
	if set(p.EndDate) && today.After(clock.CivilDay(*p.EndDate)) {
		return domain.PromotionExpired
	}
	return domain.PromotionActive
}

func set(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// Classifier binds the classification rules to a clock so callers get one
// consistent "now" per batch.
type Classifier struct {
	clock clock.Clock
}

// New creates a classifier reading time from c. A nil clock uses the system clock.
func New(c clock.Clock) *Classifier {
	if c == nil {
		c = clock.System()
	}
	return &Classifier{clock: c}
}

// Now returns the instant the classifier would use for a new batch.
func (c *Classifier) Now() time.Time {
	return c.clock.Now()
}

// Item classifies a single item and fills in its derived fields.
func (c *Classifier) Item(item domain.InventoryItem) domain.ClassifiedItem {
	return classifyItem(item, c.clock.Now())
}

// Inventory classifies items against a single reading of the clock.
func (c *Classifier) Inventory(items []domain.InventoryItem) []domain.ClassifiedItem {
	now := c.clock.Now()
	out := make([]domain.ClassifiedItem, len(items))
	for idx := range items {
		out[idx] = classifyItem(items[idx], now)
	}
	return out
}

// Promotions classifies promotions against a single reading of the clock.
func (c *Classifier) Promotions(promos []domain.Promotion) []domain.ClassifiedPromotion {
	now := c.clock.Now()
	out := make([]domain.ClassifiedPromotion, len(promos))
	for idx := range promos {
		out[idx] = domain.ClassifiedPromotion{
			Promotion: promos[idx],
			Status:    PromotionStatus(&promos[idx], now),
		}
	}
	return out
}

// Promotion classifies a single promotion.
func (c *Classifier) Promotion(p domain.Promotion) domain.ClassifiedPromotion {
	return domain.ClassifiedPromotion{Promotion: p, Status: PromotionStatus(&p, c.clock.Now())}
}

func classifyItem(item domain.InventoryItem, now time.Time) domain.ClassifiedItem {
	return domain.ClassifiedItem{
		InventoryItem:   item,
		Status:          InventoryStatus(&item, now),
		TotalValue:      item.TotalValue(),
		StockPercent:    item.StockPercent(),
		DiscountPercent: item.ClearanceDiscountPercent(),
	}
}

// NeedingAttention filters classified items down to those that should alert.
func NeedingAttention(items []domain.ClassifiedItem) []domain.ClassifiedItem {
	out := make([]domain.ClassifiedItem, 0)
	for _, it := range items {
		if it.Status.NeedsAttention() {
			out = append(out, it)
		}
	}
	return out
}
