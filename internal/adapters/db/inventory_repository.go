// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

var inventoryColumns = []string{
	"id", "canteen_id", "name", "description", "category", "supplier", "unit",
	"current_stock", "min_stock", "max_stock", "unit_cost", "retail_price",
	"expiry_date", "last_restocked", "is_on_clearance", "clearance_price",
	"is_active", "created_at", "updated_at", "deleted_at",
}

// inventoryRepository implements ports.InventoryRepository
type inventoryRepository struct {
	baseRepository
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *Database, logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{newBaseRepository(db, "inventory_items", logger)}
}

// live restricts a query to one canteen's active rows
func (r *inventoryRepository) live(canteenID uuid.UUID) squirrel.SelectBuilder {
	return psql.Select(inventoryColumns...).
		From(r.table).
		Where(squirrel.Eq{"canteen_id": canteenID, "is_active": true}).
		Where("deleted_at IS NULL")
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	var description, supplier, unit *string

	err := row.Scan(
		&item.ID, &item.CanteenID, &item.Name, &description, &item.Category, &supplier, &unit,
		&item.CurrentStock, &item.MinStock, &item.MaxStock, &item.UnitCost, &item.RetailPrice,
		&item.ExpiryDate, &item.LastRestocked, &item.IsOnClearance, &item.ClearancePrice,
		&item.IsActive, &item.CreatedAt, &item.UpdatedAt, &item.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Description = deref(description)
	item.Supplier = deref(supplier)
	item.Unit = deref(unit)
	return item, nil
}

// Save creates a new inventory item
func (r *inventoryRepository) Save(ctx context.Context, item *domain.InventoryItem) error {
	q := psql.Insert(r.table).
		Columns(inventoryColumns[:len(inventoryColumns)-1]...).
		Values(
			item.ID, item.CanteenID, item.Name, nullIfEmpty(item.Description), item.Category,
			nullIfEmpty(item.Supplier), nullIfEmpty(item.Unit),
			item.CurrentStock, item.MinStock, item.MaxStock, item.UnitCost, item.RetailPrice,
			item.ExpiryDate, item.LastRestocked, item.IsOnClearance, item.ClearancePrice,
			item.IsActive, item.CreatedAt, item.UpdatedAt,
		)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory item saved",
		slog.String("id", item.ID.String()),
		slog.String("canteen_id", item.CanteenID.String()))

	return nil
}

// Update overwrites the mutable fields of a live inventory item
func (r *inventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	q := psql.Update(r.table).SetMap(map[string]interface{}{
		"name":            item.Name,
		"description":     nullIfEmpty(item.Description),
		"category":        item.Category,
		"supplier":        nullIfEmpty(item.Supplier),
		"unit":            nullIfEmpty(item.Unit),
		"current_stock":   item.CurrentStock,
		"min_stock":       item.MinStock,
		"max_stock":       item.MaxStock,
		"unit_cost":       item.UnitCost,
		"retail_price":    item.RetailPrice,
		"expiry_date":     item.ExpiryDate,
		"last_restocked":  item.LastRestocked,
		"is_on_clearance": item.IsOnClearance,
		"clearance_price": item.ClearancePrice,
		"updated_at":      item.UpdatedAt,
	}).
		Where(squirrel.Eq{"id": item.ID, "canteen_id": item.CanteenID}).
		Where("deleted_at IS NULL")

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("inventory item %s: %w", item.ID, err)
		}
		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory item updated",
		slog.String("id", item.ID.String()))

	return nil
}

// FindByID retrieves a live inventory item of the canteen
func (r *inventoryRepository) FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.InventoryItem, error) {
	item, err := queryOne(ctx, r.db, r.live(canteenID).Where(squirrel.Eq{"id": id}), scanInventoryItem)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("inventory item %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}
	return item, nil
}

// FindAll retrieves inventory items with filtering and pagination. The
// returned count ignores Limit and Offset.
func (r *inventoryRepository) FindAll(ctx context.Context, canteenID uuid.UUID, params ports.InventoryQuery) ([]domain.InventoryItem, int64, error) {
	qb := r.live(canteenID)

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"supplier": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	if params.Category != "" {
		qb = qb.Where(squirrel.Eq{"category": params.Category})
	}
	if params.OnClearance != nil {
		qb = qb.Where(squirrel.Eq{"is_on_clearance": *params.OnClearance})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").FromSelect(qb, "filtered").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	qb = qb.OrderBy(inventoryOrderBy(params.SortBy, params.SortOrder))
	if params.Limit > 0 {
		qb = qb.Limit(uint64(params.Limit))
	}
	if params.Offset > 0 {
		qb = qb.Offset(uint64(params.Offset))
	}

	items, err := queryMany(ctx, r.db, qb, scanInventoryItem)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query inventory items: %w", err)
	}

	return items, totalCount, nil
}

func inventoryOrderBy(sortBy, sortOrder string) string {
	direction := "ASC"
	if sortOrder == "desc" {
		direction = "DESC"
	}

	switch sortBy {
	case "name":
		return "name " + direction
	case "stock":
		return "current_stock " + direction
	case "expiry":
		return "expiry_date " + direction + " NULLS LAST"
	case "value":
		return "(current_stock * unit_cost) " + direction
	case "updated":
		return "updated_at " + direction
	case "":
		return "name ASC"
	default:
		return "created_at " + direction
	}
}

// ListActive returns every live item of the canteen
func (r *inventoryRepository) ListActive(ctx context.Context, canteenID uuid.UUID) ([]domain.InventoryItem, error) {
	items, err := queryMany(ctx, r.db, r.live(canteenID).OrderBy("name ASC"), scanInventoryItem)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, nil
}

// SoftDelete marks an item inactive and stamps deleted_at
func (r *inventoryRepository) SoftDelete(ctx context.Context, canteenID, id uuid.UUID, at time.Time) error {
	q := psql.Update(r.table).
		Set("is_active", false).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "canteen_id": canteenID}).
		Where("deleted_at IS NULL")

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("inventory item %s: %w", id, err)
		}
		return fmt.Errorf("failed to soft delete inventory item: %w", err)
	}

	r.logger.InfoContext(ctx, "inventory item soft deleted",
		slog.String("id", id.String()),
		slog.String("canteen_id", canteenID.String()))

	return nil
}

// PurgeDeleted hard-deletes rows soft-deleted before the cutoff
func (r *inventoryRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	q := psql.Delete(r.table).Where(squirrel.Lt{"deleted_at": before})

	n, err := execCount(ctx, r.db, q)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inventory items: %w", err)
	}
	return n, nil
}
