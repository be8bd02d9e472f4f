// internal/core/services/dashboard.go
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/canteen-be/internal/core/classifier"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

// DashboardRepositories groups the collections a dashboard reads
type DashboardRepositories struct {
	Inventory  ports.InventoryRepository
	Promotions ports.PromotionRepository
	Orders     ports.OrderRepository
	Menu       ports.MenuRepository
	Feedback   ports.FeedbackRepository
}

// DashboardService builds and caches the per-canteen dashboard
type DashboardService struct {
	repos  DashboardRepositories
	cache  ports.CacheRepository
	clock  clock.Clock
	loc    Locator
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos DashboardRepositories, cache ports.CacheRepository, clk clock.Clock, loc Locator, ttl time.Duration, logger *slog.Logger) *DashboardService {
	if clk == nil {
		clk = clock.System()
	}
	return &DashboardService{
		repos:  repos,
		cache:  cache,
		clock:  clk,
		loc:    loc,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "dashboard")),
	}
}

// dashboardKey is scoped to the canteen's local calendar day so "today"
// tiles never outlive midnight
func dashboardKey(canteenID uuid.UUID, now time.Time) string {
	return ports.CanteenKey(ports.PrefixDashboard, canteenID, now.Format(time.DateOnly))
}

func (s *DashboardService) now(ctx context.Context, canteenID uuid.UUID) time.Time {
	loc := time.UTC
	if s.loc != nil {
		loc = s.loc.Location(ctx, canteenID)
	}
	return clock.InLocation(s.clock, loc).Now()
}

// Get returns the cached dashboard, building it on a miss. Degraded
// dashboards are served but not kept.
func (s *DashboardService) Get(ctx context.Context, canteenID uuid.UUID) (*report.Dashboard, error) {
	now := s.now(ctx, canteenID)
	built := false

	var d report.Dashboard
	err := s.cache.GetOrSet(ctx, dashboardKey(canteenID, now), &d, func() (interface{}, error) {
		built = true
		return s.build(ctx, canteenID, now), nil
	}, s.ttl)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard cache unavailable, building directly",
			slog.String("canteen_id", canteenID.String()),
			slog.String("error", err.Error()))
		fresh := s.build(ctx, canteenID, now)
		return &fresh, nil
	}

	if built && len(d.Degraded) > 0 {
		s.Invalidate(ctx, canteenID)
	}
	return &d, nil
}

// Refresh rebuilds the dashboard and replaces the cached copy
func (s *DashboardService) Refresh(ctx context.Context, canteenID uuid.UUID) (*report.Dashboard, error) {
	now := s.now(ctx, canteenID)
	d := s.build(ctx, canteenID, now)
	if len(d.Degraded) > 0 {
		s.Invalidate(ctx, canteenID)
		return &d, nil
	}

	if err := s.cache.SetWithTTL(ctx, dashboardKey(canteenID, now), d, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "failed to cache dashboard",
			slog.String("canteen_id", canteenID.String()),
			slog.String("error", err.Error()))
	}
	return &d, nil
}

// Invalidate drops every cached day of a canteen's dashboard
func (s *DashboardService) Invalidate(ctx context.Context, canteenID uuid.UUID) {
	pattern := ports.CanteenKey(ports.PrefixDashboard, canteenID, "*")
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard",
			slog.String("canteen_id", canteenID.String()),
			slog.String("error", err.Error()))
	}
}

// build fetches every section concurrently. A failed section is logged,
// rendered as zeros and named in Degraded; it never fails the dashboard.
func (s *DashboardService) build(ctx context.Context, canteenID uuid.UUID, now time.Time) report.Dashboard {
	c := classifier.New(clock.Fixed(now))

	in := report.Input{CanteenID: canteenID.String(), Now: now}
	var mu sync.Mutex
	fail := func(section string, err error) {
		s.logger.ErrorContext(ctx, "dashboard section failed",
			slog.String("canteen_id", canteenID.String()),
			slog.String("section", section),
			slog.String("error", err.Error()))
		mu.Lock()
		in.Failed = append(in.Failed, section)
		mu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		items, err := s.repos.Inventory.ListActive(ctx, canteenID)
		if err != nil {
			fail(report.SectionInventory, err)
			return nil
		}
		in.Items = c.Inventory(items)
		return nil
	})
	g.Go(func() error {
		promos, err := s.repos.Promotions.FindAll(ctx, canteenID)
		if err != nil {
			fail(report.SectionPromotions, err)
			return nil
		}
		in.Promotions = c.Promotions(promos)
		return nil
	})
	g.Go(func() error {
		orders, err := s.repos.Orders.FindAll(ctx, canteenID, ports.OrderQuery{})
		if err != nil {
			fail(report.SectionOrders, err)
			return nil
		}
		in.Orders = orders
		return nil
	})
	g.Go(func() error {
		menu, err := s.repos.Menu.FindAll(ctx, canteenID, false)
		if err != nil {
			fail(report.SectionMenu, err)
			return nil
		}
		in.MenuItems = menu
		return nil
	})
	g.Go(func() error {
		fb, err := s.repos.Feedback.FindAll(ctx, canteenID, ports.FeedbackQuery{})
		if err != nil {
			fail(report.SectionFeedback, err)
			return nil
		}
		in.Feedback = fb
		return nil
	})
	_ = g.Wait()

	d := report.BuildDashboard(in)
	s.logger.DebugContext(ctx, "dashboard built",
		slog.String("canteen_id", canteenID.String()),
		slog.Int("items", len(in.Items)),
		slog.Int("orders", len(in.Orders)),
		slog.Any("degraded", d.Degraded))
	return d
}
