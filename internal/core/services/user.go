// internal/core/services/user.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// UserService manages a canteen's staff profiles
type UserService struct {
	repo   ports.StaffRepository
	rt     Runtime
	logger *slog.Logger
}

var _ ports.UserService = (*UserService)(nil)

// NewUserService creates a new staff profile service
func NewUserService(repo ports.StaffRepository, rt Runtime, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		rt:     rt,
		logger: logger.With(slog.String("service", "user")),
	}
}

// List returns matching staff with role counts over the matches
func (s *UserService) List(ctx context.Context, canteenID uuid.UUID, query ports.StaffQuery) (*ports.StaffListResult, error) {
	if query.Role != "" && !query.Role.Valid() {
		return nil, invalidf("unknown role %q", query.Role)
	}
	query.Search = strings.TrimSpace(query.Search)

	items, err := s.repo.FindAll(ctx, canteenID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	for idx := range items {
		withPermissions(&items[idx])
	}
	return &ports.StaffListResult{
		Items:   items,
		Summary: report.SummarizeStaff(items),
	}, nil
}

// Get retrieves one staff profile
func (s *UserService) Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.StaffProfile, error) {
	p, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff profile: %w", err)
	}
	return withPermissions(p), nil
}

// Update changes a profile's details, role or active flag. A canteen always
// keeps at least one active owner.
func (s *UserService) Update(ctx context.Context, canteenID, id uuid.UUID, update domain.StaffUpdate) (*domain.StaffProfile, error) {
	if update.Empty() {
		return nil, invalidf("no fields to update")
	}

	p, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff profile: %w", err)
	}

	wasOwner := p.IsActiveOwner()
	p.Apply(update, s.rt.now(ctx, canteenID))
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if wasOwner && !p.IsActiveOwner() {
		owners, err := s.repo.CountActiveOwners(ctx, canteenID)
		if err != nil {
			return nil, fmt.Errorf("failed to check owners: %w", err)
		}
		if owners <= 1 {
			return nil, invalidf("canteen must keep at least one active owner")
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update staff profile: %w", err)
	}

	s.logger.InfoContext(ctx, "updated staff profile",
		slog.String("canteen_id", canteenID.String()),
		slog.String("staff_id", id.String()),
		slog.String("role", string(p.Role)),
		slog.Bool("is_active", p.IsActive))
	return withPermissions(p), nil
}

func withPermissions(p *domain.StaffProfile) *domain.StaffProfile {
	p.Permissions = p.Role.Permissions()
	return p
}
