// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/canteen-be/internal/core/classifier"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// InventoryService handles inventory business logic
type InventoryService struct {
	repo   ports.InventoryRepository
	rt     Runtime
	logger *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(repo ports.InventoryRepository, rt Runtime, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		repo:   repo,
		rt:     rt,
		logger: logger.With(slog.String("service", "inventory")),
	}
}

// List retrieves classified inventory with filtering and pagination. The
// summary always covers the canteen's whole active inventory.
func (s *InventoryService) List(ctx context.Context, canteenID uuid.UUID, params ports.InventoryListParams) (*ports.InventoryListResult, error) {
	if params.Status != "" && !params.Status.IsValid() {
		return nil, invalidf("unknown status %q", params.Status)
	}
	page, pageSize := normalizePage(params.Page, params.PageSize)
	c := s.rt.classifier(ctx, canteenID)

	query := ports.InventoryQuery{
		Search:    params.Search,
		Category:  params.Category,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	}

	var (
		items []domain.ClassifiedItem
		total int64
	)
	if params.Status == "" {
		query.Limit = pageSize
		query.Offset = (page - 1) * pageSize
		rows, count, err := s.repo.FindAll(ctx, canteenID, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list inventory items: %w", err)
		}
		items, total = c.Inventory(rows), count
	} else {
		// status is derived, so the filter runs after classification
		rows, _, err := s.repo.FindAll(ctx, canteenID, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list inventory items: %w", err)
		}
		matched := make([]domain.ClassifiedItem, 0, len(rows))
		for _, it := range c.Inventory(rows) {
			if it.Status == params.Status {
				matched = append(matched, it)
			}
		}
		total = int64(len(matched))
		start := min((page-1)*pageSize, len(matched))
		end := min(start+pageSize, len(matched))
		items = matched[start:end]
	}

	active, err := s.repo.ListActive(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize inventory: %w", err)
	}

	return &ports.InventoryListResult{
		Items:      items,
		Summary:    report.SummarizeInventory(c.Inventory(active)),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Get retrieves one classified inventory item
func (s *InventoryService) Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.ClassifiedItem, error) {
	item, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	classified := s.rt.classifier(ctx, canteenID).Item(*item)
	return &classified, nil
}

// Create validates and stores a new inventory item
func (s *InventoryService) Create(ctx context.Context, canteenID uuid.UUID, item *domain.InventoryItem) (*domain.ClassifiedItem, error) {
	item.CanteenID = canteenID
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := s.rt.now(ctx, canteenID)
	item.PrepareForStorage(now)

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "saved inventory item",
		slog.String("canteen_id", canteenID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name))

	classified := classifyAt(*item, now)
	return &classified, nil
}

// Update replaces the editable fields of an existing item
func (s *InventoryService) Update(ctx context.Context, canteenID, id uuid.UUID, item *domain.InventoryItem) (*domain.ClassifiedItem, error) {
	existing, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	item.ID = existing.ID
	item.CanteenID = canteenID
	item.IsActive = existing.IsActive
	item.CreatedAt = existing.CreatedAt
	if item.LastRestocked == nil {
		item.LastRestocked = existing.LastRestocked
	}

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return s.store(ctx, canteenID, item, "updated inventory item")
}

// Restock adds quantity to an item's stock
func (s *InventoryService) Restock(ctx context.Context, canteenID, id uuid.UUID, quantity decimal.Decimal) (*domain.ClassifiedItem, error) {
	item, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if err := item.Restock(quantity, s.rt.now(ctx, canteenID)); err != nil {
		return nil, err
	}
	return s.store(ctx, canteenID, item, "restocked inventory item")
}

// SetClearance puts an item on clearance at price
func (s *InventoryService) SetClearance(ctx context.Context, canteenID, id uuid.UUID, price decimal.Decimal) (*domain.ClassifiedItem, error) {
	item, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	if err := item.PutOnClearance(price, s.rt.now(ctx, canteenID)); err != nil {
		return nil, err
	}
	return s.store(ctx, canteenID, item, "inventory item put on clearance")
}

// ClearClearance ends an item's clearance sale
func (s *InventoryService) ClearClearance(ctx context.Context, canteenID, id uuid.UUID) (*domain.ClassifiedItem, error) {
	item, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	item.RemoveFromClearance(s.rt.now(ctx, canteenID))
	return s.store(ctx, canteenID, item, "inventory item removed from clearance")
}

func (s *InventoryService) store(ctx context.Context, canteenID uuid.UUID, item *domain.InventoryItem, msg string) (*domain.ClassifiedItem, error) {
	now := s.rt.now(ctx, canteenID)
	item.UpdatedAt = now

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, msg,
		slog.String("canteen_id", canteenID.String()),
		slog.String("item_id", item.ID.String()))

	classified := classifyAt(*item, now)
	return &classified, nil
}

// Delete soft-deletes an inventory item
func (s *InventoryService) Delete(ctx context.Context, canteenID, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, canteenID, id, s.rt.now(ctx, canteenID)); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "deleted inventory item",
		slog.String("canteen_id", canteenID.String()),
		slog.String("item_id", id.String()))
	return nil
}

// Alerts returns the active items needing attention, most urgent first
func (s *InventoryService) Alerts(ctx context.Context, canteenID uuid.UUID) ([]domain.ClassifiedItem, error) {
	items, err := s.Snapshot(ctx, canteenID)
	if err != nil {
		return nil, err
	}
	alerts := classifier.NeedingAttention(items)
	sortByUrgency(alerts)
	return alerts, nil
}

// Clearance lists the items on clearance with their totals
func (s *InventoryService) Clearance(ctx context.Context, canteenID uuid.UUID) (*ports.ClearanceResult, error) {
	onClearance := true
	rows, _, err := s.repo.FindAll(ctx, canteenID, ports.InventoryQuery{OnClearance: &onClearance, SortBy: "name"})
	if err != nil {
		return nil, fmt.Errorf("failed to list clearance items: %w", err)
	}
	items := s.rt.classifier(ctx, canteenID).Inventory(rows)
	return &ports.ClearanceResult{
		Items:   items,
		Summary: report.SummarizeClearance(items),
	}, nil
}

// Snapshot classifies the canteen's whole active inventory
func (s *InventoryService) Snapshot(ctx context.Context, canteenID uuid.UUID) ([]domain.ClassifiedItem, error) {
	rows, err := s.repo.ListActive(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return s.rt.classifier(ctx, canteenID).Inventory(rows), nil
}
