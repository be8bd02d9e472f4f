// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// InventoryService defines the application service port for inventory.
type InventoryService interface {
	List(ctx context.Context, canteenID uuid.UUID, params InventoryListParams) (*InventoryListResult, error)
	Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.ClassifiedItem, error)
	Create(ctx context.Context, canteenID uuid.UUID, item *domain.InventoryItem) (*domain.ClassifiedItem, error)
	Update(ctx context.Context, canteenID, id uuid.UUID, item *domain.InventoryItem) (*domain.ClassifiedItem, error)
	Restock(ctx context.Context, canteenID, id uuid.UUID, quantity decimal.Decimal) (*domain.ClassifiedItem, error)
	SetClearance(ctx context.Context, canteenID, id uuid.UUID, price decimal.Decimal) (*domain.ClassifiedItem, error)
	ClearClearance(ctx context.Context, canteenID, id uuid.UUID) (*domain.ClassifiedItem, error)
	Delete(ctx context.Context, canteenID, id uuid.UUID) error
	Alerts(ctx context.Context, canteenID uuid.UUID) ([]domain.ClassifiedItem, error)
	Clearance(ctx context.Context, canteenID uuid.UUID) (*ClearanceResult, error)
	Snapshot(ctx context.Context, canteenID uuid.UUID) ([]domain.ClassifiedItem, error)
}

// InventoryListParams holds parameters for listing inventory
type InventoryListParams struct {
	Search    string
	Category  string
	Status    domain.InventoryStatus
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// InventoryListResult holds one page of classified inventory
type InventoryListResult struct {
	Items      []domain.ClassifiedItem `json:"items"`
	Summary    report.InventorySummary `json:"summary"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalCount int64                   `json:"total_count"`
	TotalPages int                     `json:"total_pages"`
}

// ClearanceResult lists the items on clearance with their totals
type ClearanceResult struct {
	Items   []domain.ClassifiedItem `json:"items"`
	Summary report.ClearanceSummary `json:"summary"`
}

// PromotionService defines the application service port for promotions
type PromotionService interface {
	List(ctx context.Context, canteenID uuid.UUID, status domain.PromotionStatus) ([]domain.ClassifiedPromotion, error)
	Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.ClassifiedPromotion, error)
	Create(ctx context.Context, canteenID uuid.UUID, p *domain.Promotion) (*domain.ClassifiedPromotion, error)
	Update(ctx context.Context, canteenID, id uuid.UUID, p *domain.Promotion) (*domain.ClassifiedPromotion, error)
	Delete(ctx context.Context, canteenID, id uuid.UUID) error
}

// OrderService defines the application service port for orders and invoices
type OrderService interface {
	List(ctx context.Context, canteenID uuid.UUID, params OrderListParams) ([]domain.Order, error)
	Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.Order, error)
	Create(ctx context.Context, canteenID uuid.UUID, order *domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, canteenID, id uuid.UUID, status domain.OrderStatus, servedBy *uuid.UUID) (*domain.Order, error)
	Invoices(ctx context.Context, canteenID uuid.UUID, params OrderListParams) ([]domain.Order, error)
	CreateInvoice(ctx context.Context, canteenID uuid.UUID, order *domain.Order) (*domain.Order, error)
}

// OrderListParams holds parameters for listing orders
type OrderListParams struct {
	Status domain.OrderStatus
	Limit  int
	Offset int
}

// MenuService defines the application service port for the menu
type MenuService interface {
	List(ctx context.Context, canteenID uuid.UUID, availableOnly bool) ([]domain.MenuItem, error)
	Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.MenuItem, error)
	Create(ctx context.Context, canteenID uuid.UUID, item *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, canteenID, id uuid.UUID, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, canteenID, id uuid.UUID) error
	Categories(ctx context.Context, canteenID uuid.UUID) ([]domain.MenuCategory, error)
	CreateCategory(ctx context.Context, canteenID uuid.UUID, category *domain.MenuCategory) (*domain.MenuCategory, error)
}

// FeedbackService defines the application service port for feedback
type FeedbackService interface {
	List(ctx context.Context, canteenID uuid.UUID, query FeedbackQuery) (*FeedbackListResult, error)
	Submit(ctx context.Context, canteenID uuid.UUID, fb *domain.Feedback) (*domain.Feedback, error)
	Respond(ctx context.Context, canteenID, id uuid.UUID, response string) (*domain.Feedback, error)
}

// FeedbackListResult holds feedback with its rating statistics
type FeedbackListResult struct {
	Items   []domain.Feedback      `json:"items"`
	Summary report.FeedbackSummary `json:"summary"`
}

// UserService defines the application service port for staff profiles
type UserService interface {
	List(ctx context.Context, canteenID uuid.UUID, query StaffQuery) (*StaffListResult, error)
	Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.StaffProfile, error)
	Update(ctx context.Context, canteenID, id uuid.UUID, update domain.StaffUpdate) (*domain.StaffProfile, error)
}

// StaffListResult holds staff profiles with role counts
type StaffListResult struct {
	Items   []domain.StaffProfile `json:"items"`
	Summary report.StaffSummary   `json:"summary"`
}

// CanteenService defines the application service port for canteen settings
type CanteenService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Canteen, error)
	Update(ctx context.Context, id uuid.UUID, c *domain.Canteen) (*domain.Canteen, error)
	Location(ctx context.Context, id uuid.UUID) *time.Location
	ActiveIDs(ctx context.Context) ([]uuid.UUID, error)
}

// DashboardService builds the per-canteen dashboard
type DashboardService interface {
	Get(ctx context.Context, canteenID uuid.UUID) (*report.Dashboard, error)
	Refresh(ctx context.Context, canteenID uuid.UUID) (*report.Dashboard, error)
	DashboardInvalidator
}

// DashboardInvalidator drops a canteen's cached dashboard after a write
type DashboardInvalidator interface {
	Invalidate(ctx context.Context, canteenID uuid.UUID)
}

// ReportService builds inventory exports and tracks asynchronous ones
type ReportService interface {
	InventoryExport(ctx context.Context, canteenID uuid.UUID) (*InventoryExport, error)
	CreateInventoryExport(ctx context.Context, canteenID uuid.UUID, format domain.ExportFormat) (*domain.ExportJob, error)
	BuildInventoryExport(ctx context.Context, canteenID, exportID uuid.UUID) (*domain.ExportJob, error)
	MarkFailed(ctx context.Context, canteenID, exportID uuid.UUID, cause error) error
	ExportStatus(ctx context.Context, canteenID, exportID uuid.UUID) (*domain.ExportJob, error)
}

// AlertService scans inventory for items needing attention
type AlertService interface {
	ScanAlerts(ctx context.Context, canteenID uuid.UUID) (*AlertDigest, error)
}

// AlertDigest is the cached result of an alert scan
type AlertDigest struct {
	CanteenID uuid.UUID               `json:"canteen_id"`
	Items     []domain.ClassifiedItem `json:"items"`
	Summary   report.InventorySummary `json:"summary"`
	Notify    bool                    `json:"notify"`
	ScannedAt time.Time               `json:"scanned_at"`
}
