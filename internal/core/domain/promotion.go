// internal/core/domain/promotion.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromotionType represents how a promotion discount is expressed
type PromotionType string

// Promotion type constants
const (
	PromotionPercentage  PromotionType = "percentage"
	PromotionFixedAmount PromotionType = "fixed_amount"
)

// PromotionScope represents which items a promotion applies to
type PromotionScope string

// Promotion scope constants
const (
	ScopeAllItems PromotionScope = "all"
	ScopeCategory PromotionScope = "category"
	ScopeItem     PromotionScope = "item"
)

// PromotionStatus is the derived status of a promotion
type PromotionStatus string

// Promotion status constants
const (
	PromotionScheduled PromotionStatus = "scheduled"
	PromotionActive    PromotionStatus = "active"
	PromotionExpired   PromotionStatus = "expired"
)

// IsValid reports whether s is a known promotion status
func (s PromotionStatus) IsValid() bool {
	switch s {
	case PromotionScheduled, PromotionActive, PromotionExpired:
		return true
	}
	return false
}

// PromotionTarget describes the scope of a promotion
type PromotionTarget struct {
	Scope      PromotionScope `json:"scope"`
	TargetID   *uuid.UUID     `json:"target_id,omitempty"`
	TargetName string         `json:"target_name,omitempty"`
}

// Promotion represents a discount offered by a canteen
type Promotion struct {
	ID             uuid.UUID       `json:"id"`
	CanteenID      uuid.UUID       `json:"canteen_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Type           PromotionType   `json:"type"`
	Value          decimal.Decimal `json:"value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	Target         PromotionTarget `json:"target"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the promotion
func (p *Promotion) Validate() error {
	if p.CanteenID == uuid.Nil {
		return invalid("canteen_id is required")
	}
	if p.Name == "" {
		return invalid("name is required")
	}
	switch p.Type {
	case PromotionPercentage:
		if p.Value.GreaterThan(hundred) {
			return invalid("percentage value cannot exceed 100")
		}
	case PromotionFixedAmount:
	default:
		return invalid("type must be one of percentage, fixed_amount")
	}
	if !p.Value.IsPositive() {
		return invalid("value must be positive")
	}
	if p.MinOrderAmount.IsNegative() {
		return invalid("min_order_amount cannot be negative")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return invalid("end_date must not be before start_date")
	}
	if p.Target.Scope == "" {
		p.Target.Scope = ScopeAllItems
	}
	if p.Target.Scope != ScopeAllItems && p.Target.TargetID == nil && p.Target.TargetName == "" {
		return invalid("target is required for %s promotions", p.Target.Scope)
	}
	return nil
}

// PrepareForStorage stamps identity and timestamps before an insert
func (p *Promotion) PrepareForStorage(now time.Time) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
		p.IsActive = true
	}
	p.UpdatedAt = now
}

// DiscountFor returns the discount this promotion grants on amount. The
// discount never exceeds the amount itself.
func (p *Promotion) DiscountFor(amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() || amount.LessThan(p.MinOrderAmount) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch p.Type {
	case PromotionPercentage:
		discount = amount.Mul(p.Value).Div(hundred)
	case PromotionFixedAmount:
		discount = p.Value
	}

	if discount.GreaterThan(amount) {
		discount = amount
	}
	return discount.Round(2)
}

// ClassifiedPromotion is a promotion with its derived status
type ClassifiedPromotion struct {
	Promotion
	Status PromotionStatus `json:"status"`
}
