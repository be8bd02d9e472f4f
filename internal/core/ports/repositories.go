// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
)

// InventoryRepository defines the persistence port for inventory.
// Every read is scoped to one canteen and skips soft-deleted rows.
type InventoryRepository interface {
	Save(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.InventoryItem, error)
	FindAll(ctx context.Context, canteenID uuid.UUID, query InventoryQuery) ([]domain.InventoryItem, int64, error)
	ListActive(ctx context.Context, canteenID uuid.UUID) ([]domain.InventoryItem, error)
	SoftDelete(ctx context.Context, canteenID, id uuid.UUID, at time.Time) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

// InventoryQuery holds repository-level filters. A zero Limit returns
// every match.
type InventoryQuery struct {
	Search      string
	Category    string
	OnClearance *bool
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}

// PromotionRepository defines the persistence port for promotions
type PromotionRepository interface {
	Save(ctx context.Context, p *domain.Promotion) error
	Update(ctx context.Context, p *domain.Promotion) error
	FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.Promotion, error)
	FindAll(ctx context.Context, canteenID uuid.UUID) ([]domain.Promotion, error)
	Delete(ctx context.Context, canteenID, id uuid.UUID) error
}

// OrderRepository defines the persistence port for orders and their lines
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.Order, error)
	FindAll(ctx context.Context, canteenID uuid.UUID, query OrderQuery) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, order *domain.Order) error
}

// OrderQuery holds repository-level order filters
type OrderQuery struct {
	Statuses  []domain.OrderStatus
	Since     *time.Time
	WithItems bool
	Limit     int
	Offset    int
}

// MenuRepository defines the persistence port for menu items and categories
type MenuRepository interface {
	Save(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.MenuItem, error)
	FindByIDs(ctx context.Context, canteenID uuid.UUID, ids []uuid.UUID) ([]domain.MenuItem, error)
	FindAll(ctx context.Context, canteenID uuid.UUID, availableOnly bool) ([]domain.MenuItem, error)
	SoftDelete(ctx context.Context, canteenID, id uuid.UUID, at time.Time) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
	SaveCategory(ctx context.Context, category *domain.MenuCategory) error
	Categories(ctx context.Context, canteenID uuid.UUID) ([]domain.MenuCategory, error)
}

// FeedbackRepository defines the persistence port for customer feedback
type FeedbackRepository interface {
	Save(ctx context.Context, fb *domain.Feedback) error
	FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.Feedback, error)
	FindAll(ctx context.Context, canteenID uuid.UUID, query FeedbackQuery) ([]domain.Feedback, error)
	UpdateResponse(ctx context.Context, fb *domain.Feedback) error
}

// FeedbackQuery holds repository-level feedback filters
type FeedbackQuery struct {
	Rating int
	Status domain.FeedbackStatus
}

// StaffRepository defines the persistence port for staff profiles
type StaffRepository interface {
	Save(ctx context.Context, p *domain.StaffProfile) error
	Update(ctx context.Context, p *domain.StaffProfile) error
	FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.StaffProfile, error)
	FindAll(ctx context.Context, canteenID uuid.UUID, query StaffQuery) ([]domain.StaffProfile, error)
	CountActiveOwners(ctx context.Context, canteenID uuid.UUID) (int, error)
}

// StaffQuery holds repository-level staff filters. Zero values match all.
type StaffQuery struct {
	Role   domain.StaffRole
	Active *bool
	Search string
}

// CanteenRepository defines the persistence port for canteen settings
type CanteenRepository interface {
	Save(ctx context.Context, c *domain.Canteen) error
	Update(ctx context.Context, c *domain.Canteen) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Canteen, error)
	ListActiveIDs(ctx context.Context) ([]uuid.UUID, error)
}
