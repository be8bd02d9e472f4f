// internal/core/services/canteen.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

// CanteenService handles canteen settings and resolves each canteen's
// time zone for the other services.
type CanteenService struct {
	repo       ports.CanteenRepository
	cache      ports.CacheRepository
	clock      clock.Clock
	defaultLoc *time.Location
	locations  sync.Map // uuid.UUID -> *time.Location
	logger     *slog.Logger
}

var (
	_ ports.CanteenService = (*CanteenService)(nil)
	_ Locator              = (*CanteenService)(nil)
)

// NewCanteenService creates a new canteen service. Canteens whose settings
// cannot be read report in defaultLoc.
func NewCanteenService(repo ports.CanteenRepository, cache ports.CacheRepository, clk clock.Clock, defaultLoc *time.Location, logger *slog.Logger) *CanteenService {
	if clk == nil {
		clk = clock.System()
	}
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &CanteenService{
		repo:       repo,
		cache:      cache,
		clock:      clk,
		defaultLoc: defaultLoc,
		logger:     logger.With(slog.String("service", "canteen")),
	}
}

// Get retrieves a canteen's settings
func (s *CanteenService) Get(ctx context.Context, id uuid.UUID) (*domain.Canteen, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get canteen: %w", err)
	}
	return c, nil
}

// Update replaces a canteen's settings
func (s *CanteenService) Update(ctx context.Context, id uuid.UUID, c *domain.Canteen) (*domain.Canteen, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get canteen: %w", err)
	}

	c.ID = existing.ID
	c.IsActive = existing.IsActive
	c.CreatedAt = existing.CreatedAt
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	c.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update canteen: %w", err)
	}

	s.locations.Delete(id)
	// the time zone decides which orders count as today's
	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, ports.CanteenKey(ports.PrefixDashboard, id, "*")); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate dashboard",
				slog.String("canteen_id", id.String()),
				slog.String("error", err.Error()))
		}
	}

	s.logger.InfoContext(ctx, "updated canteen settings",
		slog.String("canteen_id", id.String()),
		slog.String("timezone", c.Timezone))
	return c, nil
}

// Location returns the canteen's time zone, remembering it for later calls
func (s *CanteenService) Location(ctx context.Context, id uuid.UUID) *time.Location {
	if loc, ok := s.locations.Load(id); ok {
		return loc.(*time.Location)
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve canteen time zone, using default",
			slog.String("canteen_id", id.String()),
			slog.String("default", s.defaultLoc.String()),
			slog.String("error", err.Error()))
		return s.defaultLoc
	}

	loc := s.defaultLoc
	if c.Timezone != "" {
		loc = c.Location()
	}
	s.locations.Store(id, loc)
	return loc
}

// ActiveIDs lists the canteens the background jobs should visit
func (s *CanteenService) ActiveIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := s.repo.ListActiveIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list canteens: %w", err)
	}
	return ids, nil
}
