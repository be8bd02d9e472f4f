// internal/adapters/db/promotion_repository.go
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

var promotionColumns = []string{
	"id", "canteen_id", "name", "description", "type", "value", "min_order_amount",
	"start_date", "end_date", "target_scope", "target_id", "target_name",
	"is_active", "created_at", "updated_at",
}

type promotionRepository struct {
	baseRepository
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *Database, logger *slog.Logger) ports.PromotionRepository {
	return &promotionRepository{newBaseRepository(db, "promotions", logger)}
}

func scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	p := &domain.Promotion{}
	var description, targetName *string

	err := row.Scan(
		&p.ID, &p.CanteenID, &p.Name, &description, &p.Type, &p.Value, &p.MinOrderAmount,
		&p.StartDate, &p.EndDate, &p.Target.Scope, &p.Target.TargetID, &targetName,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Description = deref(description)
	p.Target.TargetName = deref(targetName)
	return p, nil
}

// Save creates a new promotion
func (r *promotionRepository) Save(ctx context.Context, p *domain.Promotion) error {
	q := psql.Insert(r.table).
		Columns(promotionColumns...).
		Values(
			p.ID, p.CanteenID, p.Name, nullIfEmpty(p.Description), p.Type, p.Value, p.MinOrderAmount,
			p.StartDate, p.EndDate, p.Target.Scope, p.Target.TargetID, nullIfEmpty(p.Target.TargetName),
			p.IsActive, p.CreatedAt, p.UpdatedAt,
		)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save promotion: %w", err)
	}

	r.logger.DebugContext(ctx, "promotion saved", slog.String("id", p.ID.String()))
	return nil
}

// Update overwrites a promotion
func (r *promotionRepository) Update(ctx context.Context, p *domain.Promotion) error {
	q := psql.Update(r.table).SetMap(map[string]interface{}{
		"name":             p.Name,
		"description":      nullIfEmpty(p.Description),
		"type":             p.Type,
		"value":            p.Value,
		"min_order_amount": p.MinOrderAmount,
		"start_date":       p.StartDate,
		"end_date":         p.EndDate,
		"target_scope":     p.Target.Scope,
		"target_id":        p.Target.TargetID,
		"target_name":      nullIfEmpty(p.Target.TargetName),
		"is_active":        p.IsActive,
		"updated_at":       p.UpdatedAt,
	}).Where(squirrel.Eq{"id": p.ID, "canteen_id": p.CanteenID})

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("promotion %s: %w", p.ID, err)
		}
		return fmt.Errorf("failed to update promotion: %w", err)
	}
	return nil
}

// FindByID retrieves a promotion of the canteen
func (r *promotionRepository) FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.Promotion, error) {
	qb := psql.Select(promotionColumns...).From(r.table).
		Where(squirrel.Eq{"id": id, "canteen_id": canteenID})

	p, err := queryOne(ctx, r.db, qb, scanPromotion)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("promotion %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find promotion: %w", err)
	}
	return p, nil
}

// FindAll lists the canteen's promotions, newest start first
func (r *promotionRepository) FindAll(ctx context.Context, canteenID uuid.UUID) ([]domain.Promotion, error) {
	qb := psql.Select(promotionColumns...).From(r.table).
		Where(squirrel.Eq{"canteen_id": canteenID, "is_active": true}).
		OrderBy("start_date DESC NULLS LAST", "created_at DESC")

	promos, err := queryMany(ctx, r.db, qb, scanPromotion)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promos, nil
}

// Delete removes a promotion permanently
func (r *promotionRepository) Delete(ctx context.Context, canteenID, id uuid.UUID) error {
	q := psql.Delete(r.table).Where(squirrel.Eq{"id": id, "canteen_id": canteenID})

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("promotion %s: %w", id, err)
		}
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	r.logger.InfoContext(ctx, "promotion deleted", slog.String("id", id.String()))
	return nil
}
