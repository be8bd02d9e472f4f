// internal/adapters/db/menu_repository.go
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

var menuItemColumns = []string{
	"m.id", "m.canteen_id", "m.category_id", "c.name", "m.name", "m.description", "m.price",
	"m.image_url", "m.is_available", "m.is_active", "m.preparation_time", "m.stock_quantity",
	"m.created_at", "m.updated_at",
}

type menuRepository struct {
	baseRepository
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *Database, logger *slog.Logger) ports.MenuRepository {
	return &menuRepository{newBaseRepository(db, "menu_items", logger)}
}

func (r *menuRepository) live(canteenID uuid.UUID) squirrel.SelectBuilder {
	return psql.Select(menuItemColumns...).
		From("menu_items m").
		LeftJoin("menu_categories c ON c.id = m.category_id").
		Where(squirrel.Eq{"m.canteen_id": canteenID, "m.is_active": true}).
		Where("m.deleted_at IS NULL")
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	m := &domain.MenuItem{}
	var categoryName, description, imageURL *string

	err := row.Scan(
		&m.ID, &m.CanteenID, &m.CategoryID, &categoryName, &m.Name, &description, &m.Price,
		&imageURL, &m.IsAvailable, &m.IsActive, &m.PreparationTime, &m.StockQuantity,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.CategoryName = deref(categoryName)
	m.Description = deref(description)
	m.ImageURL = deref(imageURL)
	return m, nil
}

// Save creates a new menu item
func (r *menuRepository) Save(ctx context.Context, m *domain.MenuItem) error {
	q := psql.Insert(r.table).
		Columns("id", "canteen_id", "category_id", "name", "description", "price", "image_url",
			"is_available", "is_active", "preparation_time", "stock_quantity", "created_at", "updated_at").
		Values(m.ID, m.CanteenID, m.CategoryID, m.Name, nullIfEmpty(m.Description), m.Price,
			nullIfEmpty(m.ImageURL), m.IsAvailable, m.IsActive, m.PreparationTime, m.StockQuantity,
			m.CreatedAt, m.UpdatedAt)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save menu item: %w", err)
	}
	return nil
}

// Update overwrites a live menu item
func (r *menuRepository) Update(ctx context.Context, m *domain.MenuItem) error {
	q := psql.Update(r.table).SetMap(map[string]interface{}{
		"category_id":      m.CategoryID,
		"name":             m.Name,
		"description":      nullIfEmpty(m.Description),
		"price":            m.Price,
		"image_url":        nullIfEmpty(m.ImageURL),
		"is_available":     m.IsAvailable,
		"preparation_time": m.PreparationTime,
		"stock_quantity":   m.StockQuantity,
		"updated_at":       m.UpdatedAt,
	}).
		Where(squirrel.Eq{"id": m.ID, "canteen_id": m.CanteenID}).
		Where("deleted_at IS NULL")

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("menu item %s: %w", m.ID, err)
		}
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

// FindByID retrieves a live menu item of the canteen
func (r *menuRepository) FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.MenuItem, error) {
	m, err := queryOne(ctx, r.db, r.live(canteenID).Where(squirrel.Eq{"m.id": id}), scanMenuItem)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("menu item %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}
	return m, nil
}

// FindByIDs retrieves the live menu items among ids
func (r *menuRepository) FindByIDs(ctx context.Context, canteenID uuid.UUID, ids []uuid.UUID) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return []domain.MenuItem{}, nil
	}
	items, err := queryMany(ctx, r.db, r.live(canteenID).Where(squirrel.Eq{"m.id": ids}), scanMenuItem)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}
	return items, nil
}

// FindAll lists the canteen's menu ordered by category then name
func (r *menuRepository) FindAll(ctx context.Context, canteenID uuid.UUID, availableOnly bool) ([]domain.MenuItem, error) {
	qb := r.live(canteenID)
	if availableOnly {
		qb = qb.Where(squirrel.Eq{"m.is_available": true})
	}
	qb = qb.OrderBy("c.name NULLS LAST", "m.name")

	items, err := queryMany(ctx, r.db, qb, scanMenuItem)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// SoftDelete hides a menu item
func (r *menuRepository) SoftDelete(ctx context.Context, canteenID, id uuid.UUID, at time.Time) error {
	q := psql.Update(r.table).
		Set("is_active", false).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "canteen_id": canteenID}).
		Where("deleted_at IS NULL")

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("menu item %s: %w", id, err)
		}
		return fmt.Errorf("failed to soft delete menu item: %w", err)
	}
	return nil
}

// PurgeDeleted hard-deletes menu items soft-deleted before the cutoff
func (r *menuRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	n, err := execCount(ctx, r.db, psql.Delete(r.table).Where(squirrel.Lt{"deleted_at": before}))
	if err != nil {
		return 0, fmt.Errorf("failed to purge menu items: %w", err)
	}
	return n, nil
}

// SaveCategory creates a menu category
func (r *menuRepository) SaveCategory(ctx context.Context, c *domain.MenuCategory) error {
	q := psql.Insert("menu_categories").
		Columns("id", "canteen_id", "name", "description", "is_active", "created_at").
		Values(c.ID, c.CanteenID, c.Name, nullIfEmpty(c.Description), c.IsActive, c.CreatedAt)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save menu category: %w", err)
	}
	return nil
}

// Categories lists the canteen's active menu categories
func (r *menuRepository) Categories(ctx context.Context, canteenID uuid.UUID) ([]domain.MenuCategory, error) {
	qb := psql.Select("id", "canteen_id", "name", "description", "is_active", "created_at").
		From("menu_categories").
		Where(squirrel.Eq{"canteen_id": canteenID, "is_active": true}).
		OrderBy("name")

	cats, err := queryMany(ctx, r.db, qb, func(row pgx.Row) (*domain.MenuCategory, error) {
		c := &domain.MenuCategory{}
		var description *string
		if err := row.Scan(&c.ID, &c.CanteenID, &c.Name, &description, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Description = deref(description)
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}
	return cats, nil
}
