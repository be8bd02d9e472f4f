// internal/adapters/db/canteen_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

var canteenColumns = []string{
	"id", "name", "description", "address", "phone", "email", "timezone", "currency",
	"open_time", "close_time", "preparation_time", "table_count",
	"dine_in_enabled", "takeaway_enabled", "order_notifications", "low_stock_alerts", "daily_reports",
	"is_active", "created_at", "updated_at",
}

type canteenRepository struct {
	baseRepository
}

// NewCanteenRepository creates a new canteen repository
func NewCanteenRepository(db *Database, logger *slog.Logger) ports.CanteenRepository {
	return &canteenRepository{newBaseRepository(db, "canteens", logger)}
}

func scanCanteen(row pgx.Row) (*domain.Canteen, error) {
	c := &domain.Canteen{}
	var description, address, phone, email, openTime, closeTime *string

	err := row.Scan(
		&c.ID, &c.Name, &description, &address, &phone, &email, &c.Timezone, &c.Currency,
		&openTime, &closeTime, &c.PreparationTime, &c.TableCount,
		&c.DineInEnabled, &c.TakeawayEnabled, &c.OrderNotifications, &c.LowStockAlerts, &c.DailyReports,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Description = deref(description)
	c.Address = deref(address)
	c.Phone = deref(phone)
	c.Email = deref(email)
	c.OpenTime = deref(openTime)
	c.CloseTime = deref(closeTime)
	return c, nil
}

// Save creates a canteen
func (r *canteenRepository) Save(ctx context.Context, c *domain.Canteen) error {
	q := psql.Insert(r.table).
		Columns(canteenColumns...).
		Values(
			c.ID, c.Name, nullIfEmpty(c.Description), nullIfEmpty(c.Address), nullIfEmpty(c.Phone),
			nullIfEmpty(c.Email), c.Timezone, c.Currency,
			nullIfEmpty(c.OpenTime), nullIfEmpty(c.CloseTime), c.PreparationTime, c.TableCount,
			c.DineInEnabled, c.TakeawayEnabled, c.OrderNotifications, c.LowStockAlerts, c.DailyReports,
			c.IsActive, c.CreatedAt, c.UpdatedAt,
		)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save canteen: %w", err)
	}
	return nil
}

// Update overwrites the canteen's settings
func (r *canteenRepository) Update(ctx context.Context, c *domain.Canteen) error {
	q := psql.Update(r.table).SetMap(map[string]interface{}{
		"name":                c.Name,
		"description":         nullIfEmpty(c.Description),
		"address":             nullIfEmpty(c.Address),
		"phone":               nullIfEmpty(c.Phone),
		"email":               nullIfEmpty(c.Email),
		"timezone":            c.Timezone,
		"currency":            c.Currency,
		"open_time":           nullIfEmpty(c.OpenTime),
		"close_time":          nullIfEmpty(c.CloseTime),
		"preparation_time":    c.PreparationTime,
		"table_count":         c.TableCount,
		"dine_in_enabled":     c.DineInEnabled,
		"takeaway_enabled":    c.TakeawayEnabled,
		"order_notifications": c.OrderNotifications,
		"low_stock_alerts":    c.LowStockAlerts,
		"daily_reports":       c.DailyReports,
		"updated_at":          c.UpdatedAt,
	}).Where(squirrel.Eq{"id": c.ID})

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("canteen %s: %w", c.ID, err)
		}
		return fmt.Errorf("failed to update canteen: %w", err)
	}
	return nil
}

// FindByID retrieves a canteen
func (r *canteenRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Canteen, error) {
	qb := psql.Select(canteenColumns...).From(r.table).Where(squirrel.Eq{"id": id})

	c, err := queryOne(ctx, r.db, qb, scanCanteen)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("canteen %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find canteen: %w", err)
	}
	return c, nil
}

// ListActiveIDs returns the ids of every active canteen
func (r *canteenRepository) ListActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	qb := psql.Select("id").From(r.table).Where(squirrel.Eq{"is_active": true}).OrderBy("created_at")

	ids, err := queryMany(ctx, r.db, qb, func(row pgx.Row) (*uuid.UUID, error) {
		var id uuid.UUID
		if err := row.Scan(&id); err != nil {
			return nil, err
		}
		return &id, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list canteens: %w", err)
	}
	return ids, nil
}
