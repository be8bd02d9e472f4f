// internal/core/services/types.go
package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/classifier"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

// Pagination defaults
const (
	DefaultPageSize   = 20
	MaxPageSize       = 100
	DefaultOrderLimit = 50
)

// Locator resolves the time zone a canteen reports in
type Locator interface {
	Location(ctx context.Context, canteenID uuid.UUID) *time.Location
}

// Runtime carries the collaborators shared by the write services.
// Dashboard may be nil.
type Runtime struct {
	Clock     clock.Clock
	Locator   Locator
	Dashboard ports.DashboardInvalidator
}

func (rt Runtime) now(ctx context.Context, canteenID uuid.UUID) time.Time {
	c := rt.Clock
	if c == nil {
		c = clock.System()
	}
	loc := time.UTC
	if rt.Locator != nil {
		loc = rt.Locator.Location(ctx, canteenID)
	}
	return clock.InLocation(c, loc).Now()
}

// classifier returns a classifier frozen at the canteen's current instant
func (rt Runtime) classifier(ctx context.Context, canteenID uuid.UUID) *classifier.Classifier {
	return classifier.New(clock.Fixed(rt.now(ctx, canteenID)))
}

func classifyAt(item domain.InventoryItem, now time.Time) domain.ClassifiedItem {
	return classifier.New(clock.Fixed(now)).Item(item)
}

func classifyAllAt(items []domain.InventoryItem, now time.Time) []domain.ClassifiedItem {
	return classifier.New(clock.Fixed(now)).Inventory(items)
}

func (rt Runtime) invalidate(ctx context.Context, canteenID uuid.UUID) {
	if rt.Dashboard != nil {
		rt.Dashboard.Invalidate(ctx, canteenID)
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func totalPages(count int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(count) / pageSize
	if int(count)%pageSize > 0 {
		pages++
	}
	return pages
}

// urgency orders statuses by how soon staff must act on them
func urgency(s domain.InventoryStatus) int {
	if idx := slices.Index(domain.InventoryStatuses, s); idx >= 0 {
		return idx
	}
	return len(domain.InventoryStatuses)
}

// sortByUrgency orders items most urgent first, then by name
func sortByUrgency(items []domain.ClassifiedItem) {
	slices.SortStableFunc(items, func(a, b domain.ClassifiedItem) int {
		if d := urgency(a.Status) - urgency(b.Status); d != 0 {
			return d
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
