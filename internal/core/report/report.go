// internal/core/report/report.go
package report

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

// InventorySummary holds the inventory dashboard tiles
type InventorySummary struct {
	TotalItems   int             `json:"total_items"`
	Good         int             `json:"good"`
	LowStock     int             `json:"low_stock"`
	Critical     int             `json:"critical"`
	OutOfStock   int             `json:"out_of_stock"`
	ExpiringSoon int             `json:"expiring_soon"`
	Expired      int             `json:"expired"`
	Attention    int             `json:"attention"`
	OnClearance  int             `json:"on_clearance"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// SummarizeInventory counts items per status and sums their value. Inactive
// items are skipped.
func SummarizeInventory(items []domain.ClassifiedItem) InventorySummary {
	s := InventorySummary{TotalValue: decimal.Zero}
	for idx := range items {
		it := &items[idx]
		if !it.IsActive {
			continue
		}
		s.TotalItems++
		s.TotalValue = s.TotalValue.Add(it.TotalValue)
		if it.IsOnClearance {
			s.OnClearance++
		}

		switch it.Status {
		case domain.StatusGood:
			s.Good++
		case domain.StatusLowStock:
			s.LowStock++
		case domain.StatusCritical:
			s.Critical++
		case domain.StatusOutOfStock:
			s.OutOfStock++
		case domain.StatusExpiringSoon:
			s.ExpiringSoon++
		case domain.StatusExpired:
			s.Expired++
		}
	}
	s.Attention = s.ExpiringSoon + s.Expired
	return s
}

// PromotionSummary holds promotion counts per status
type PromotionSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Scheduled int `json:"scheduled"`
	Expired   int `json:"expired"`
}

// SummarizePromotions counts promotions per status
func SummarizePromotions(promos []domain.ClassifiedPromotion) PromotionSummary {
	var s PromotionSummary
	for idx := range promos {
		s.Total++
		switch promos[idx].Status {
		case domain.PromotionActive:
			s.Active++
		case domain.PromotionScheduled:
			s.Scheduled++
		case domain.PromotionExpired:
			s.Expired++
		}
	}
	return s
}

// OrderSummary holds order and revenue tiles
type OrderSummary struct {
	TotalOrders  int                        `json:"total_orders"`
	TotalRevenue decimal.Decimal            `json:"total_revenue"`
	TodayOrders  int                        `json:"today_orders"`
	TodayRevenue decimal.Decimal            `json:"today_revenue"`
	Pending      int                        `json:"pending"`
	Completed    int                        `json:"completed"`
	ByStatus     map[domain.OrderStatus]int `json:"by_status"`
}

// SummarizeOrders sums total_amount over every order, all-time and for the
// calendar day of now in now's location.
func SummarizeOrders(orders []domain.Order, now time.Time) OrderSummary {
	s := OrderSummary{
		TotalRevenue: decimal.Zero,
		TodayRevenue: decimal.Zero,
		ByStatus:     make(map[domain.OrderStatus]int),
	}
	loc := now.Location()

	for idx := range orders {
		o := &orders[idx]
		s.TotalOrders++
		s.ByStatus[o.Status]++

		if o.Status.IsOpen() {
			s.Pending++
		}
		if o.Status.IsFulfilled() {
			s.Completed++
		}

		s.TotalRevenue = s.TotalRevenue.Add(o.TotalAmount)
		if clock.SameDay(o.CreatedAt, now, loc) {
			s.TodayOrders++
			s.TodayRevenue = s.TodayRevenue.Add(o.TotalAmount)
		}
	}
	return s
}

// CountByStatus counts orders whose status equals status
func CountByStatus(orders []domain.Order, status domain.OrderStatus) int {
	n := 0
	for idx := range orders {
		if orders[idx].Status == status {
			n++
		}
	}
	return n
}

// ClearanceSummary holds the clearance-sale tiles
type ClearanceSummary struct {
	Items   int             `json:"items"`
	Revenue decimal.Decimal `json:"potential_revenue"`
	Savings decimal.Decimal `json:"customer_savings"`
}

// SummarizeClearance totals the clearance items' potential revenue and the
// savings they give customers against the retail price.
func SummarizeClearance(items []domain.ClassifiedItem) ClearanceSummary {
	s := ClearanceSummary{Revenue: decimal.Zero, Savings: decimal.Zero}
	for idx := range items {
		it := &items[idx]
		if !it.IsActive || !it.IsOnClearance {
			continue
		}
		s.Items++
		s.Revenue = s.Revenue.Add(it.ClearancePrice.Mul(it.CurrentStock))

		off := it.RetailPrice.Sub(it.ClearancePrice)
		if off.IsPositive() {
			s.Savings = s.Savings.Add(off.Mul(it.CurrentStock))
		}
	}
	return s
}

// FeedbackSummary holds rating statistics
type FeedbackSummary struct {
	Total         int                       `json:"total"`
	AverageRating float64                   `json:"average_rating"`
	Positive      int                       `json:"positive"`
	Negative      int                       `json:"negative"`
	Pending       int                       `json:"pending"`
	ByRating      [domain.MaxRating + 1]int `json:"by_rating"`
}

// SummarizeFeedback averages ratings. Ratings outside 1..5 are ignored.
func SummarizeFeedback(feedback []domain.Feedback) FeedbackSummary {
	var s FeedbackSummary
	sum := 0
	for idx := range feedback {
		f := &feedback[idx]
		if f.Rating < domain.MinRating || f.Rating > domain.MaxRating {
			continue
		}
		s.Total++
		sum += f.Rating
		s.ByRating[f.Rating]++
		switch {
		case f.Rating >= 4:
			s.Positive++
		case f.Rating <= 2:
			s.Negative++
		}
		if f.Status != domain.FeedbackResponded {
			s.Pending++
		}
	}
	if s.Total > 0 {
		avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(s.Total))).Round(2)
		s.AverageRating, _ = avg.Float64()
	}
	return s
}

// StaffSummary counts staff by role and activity
type StaffSummary struct {
	Total  int                      `json:"total"`
	Active int                      `json:"active"`
	ByRole map[domain.StaffRole]int `json:"by_role"`
}

// SummarizeStaff counts every profile; every known role appears in ByRole
func SummarizeStaff(staff []domain.StaffProfile) StaffSummary {
	s := StaffSummary{ByRole: make(map[domain.StaffRole]int, len(domain.StaffRoles))}
	for _, role := range domain.StaffRoles {
		s.ByRole[role] = 0
	}
	for idx := range staff {
		s.Total++
		if staff[idx].IsActive {
			s.Active++
		}
		s.ByRole[staff[idx].Role]++
	}
	return s
}

// Dashboard is the full set of tiles for one canteen
type Dashboard struct {
	CanteenID       string           `json:"canteen_id"`
	Inventory       InventorySummary `json:"inventory"`
	Promotions      PromotionSummary `json:"promotions"`
	Orders          OrderSummary     `json:"orders"`
	Clearance       ClearanceSummary `json:"clearance"`
	Feedback        FeedbackSummary  `json:"feedback"`
	ActiveMenuItems int              `json:"active_menu_items"`
	Degraded        []string         `json:"degraded,omitempty"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// Dashboard section names, also used in Degraded
const (
	SectionInventory  = "inventory"
	SectionPromotions = "promotions"
	SectionOrders     = "orders"
	SectionMenu       = "menu"
	SectionFeedback   = "feedback"
)

// Input carries the already-fetched collections for BuildDashboard. A nil
// collection with its section listed in Failed is rendered as zeros.
type Input struct {
	CanteenID  string
	Items      []domain.ClassifiedItem
	Promotions []domain.ClassifiedPromotion
	Orders     []domain.Order
	MenuItems  []domain.MenuItem
	Feedback   []domain.Feedback
	Failed     []string
	Now        time.Time
}

// BuildDashboard folds every section into a Dashboard
func BuildDashboard(in Input) Dashboard {
	d := Dashboard{
		CanteenID:   in.CanteenID,
		Inventory:   SummarizeInventory(in.Items),
		Promotions:  SummarizePromotions(in.Promotions),
		Orders:      SummarizeOrders(in.Orders, in.Now),
		Clearance:   SummarizeClearance(in.Items),
		Feedback:    SummarizeFeedback(in.Feedback),
		GeneratedAt: in.Now,
	}
	for idx := range in.MenuItems {
		if in.MenuItems[idx].IsActive && in.MenuItems[idx].IsAvailable {
			d.ActiveMenuItems++
		}
	}
	if len(in.Failed) > 0 {
		d.Degraded = append([]string(nil), in.Failed...)
		slices.Sort(d.Degraded)
	}
	return d
}
