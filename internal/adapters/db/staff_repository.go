// internal/adapters/db/staff_repository.go
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

var staffColumns = []string{
	"id", "canteen_id", "email", "full_name", "phone", "role", "is_active", "created_at", "updated_at",
}

// staffRoleOrder sorts roles owner first, matching domain.StaffRoles
const staffRoleOrder = "CASE role WHEN 'owner' THEN 0 WHEN 'manager' THEN 1 WHEN 'chef' THEN 2 ELSE 3 END"

type staffRepository struct {
	baseRepository
}

// NewStaffRepository creates a new staff profile repository
func NewStaffRepository(db *Database, logger *slog.Logger) ports.StaffRepository {
	return &staffRepository{newBaseRepository(db, "staff_profiles", logger)}
}

func scanStaff(row pgx.Row) (*domain.StaffProfile, error) {
	p := &domain.StaffProfile{}
	var fullName, phone *string

	err := row.Scan(
		&p.ID, &p.CanteenID, &p.Email, &fullName, &phone, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.FullName = deref(fullName)
	p.Phone = deref(phone)
	return p, nil
}

// Save stores a new profile
func (r *staffRepository) Save(ctx context.Context, p *domain.StaffProfile) error {
	q := psql.Insert(r.table).
		Columns(staffColumns...).
		Values(
			p.ID, p.CanteenID, p.Email, nullIfEmpty(p.FullName), nullIfEmpty(p.Phone),
			p.Role, p.IsActive, p.CreatedAt, p.UpdatedAt,
		)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save staff profile: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of a profile
func (r *staffRepository) Update(ctx context.Context, p *domain.StaffProfile) error {
	q := psql.Update(r.table).SetMap(map[string]interface{}{
		"full_name":  nullIfEmpty(p.FullName),
		"phone":      nullIfEmpty(p.Phone),
		"role":       p.Role,
		"is_active":  p.IsActive,
		"updated_at": p.UpdatedAt,
	}).
		Where(squirrel.Eq{"id": p.ID, "canteen_id": p.CanteenID})

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("staff profile %s: %w", p.ID, err)
		}
		return fmt.Errorf("failed to update staff profile: %w", err)
	}
	return nil
}

// FindByID retrieves a profile of the canteen
func (r *staffRepository) FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.StaffProfile, error) {
	qb := psql.Select(staffColumns...).From(r.table).
		Where(squirrel.Eq{"id": id, "canteen_id": canteenID})

	p, err := queryOne(ctx, r.db, qb, scanStaff)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("staff profile %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find staff profile: %w", err)
	}
	return p, nil
}

// FindAll lists profiles by role seniority then name
func (r *staffRepository) FindAll(ctx context.Context, canteenID uuid.UUID, query ports.StaffQuery) ([]domain.StaffProfile, error) {
	list, err := queryMany(ctx, r.db, r.filtered(canteenID, query), scanStaff)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff profiles: %w", err)
	}
	return list, nil
}

func (r *staffRepository) filtered(canteenID uuid.UUID, query ports.StaffQuery) squirrel.SelectBuilder {
	qb := psql.Select(staffColumns...).From(r.table).
		Where(squirrel.Eq{"canteen_id": canteenID}).
		OrderBy(staffRoleOrder, "full_name", "email")

	if query.Role != "" {
		qb = qb.Where(squirrel.Eq{"role": query.Role})
	}
	if query.Active != nil {
		qb = qb.Where(squirrel.Eq{"is_active": *query.Active})
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	return qb
}

// CountActiveOwners counts the canteen's active owner seats
func (r *staffRepository) CountActiveOwners(ctx context.Context, canteenID uuid.UUID) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(r.table).
		Where(squirrel.Eq{"canteen_id": canteenID, "role": domain.RoleOwner, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}
	return n, nil
}
