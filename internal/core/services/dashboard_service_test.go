package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
	"github.com/ammerola/canteen-be/internal/core/services"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
	"github.com/ammerola/canteen-be/test/helpers"
	"github.com/ammerola/canteen-be/test/mocks"
)

type dashboardFixture struct {
	inventory  *mocks.MockInventoryRepository
	promotions *mocks.MockPromotionRepository
	orders     *mocks.MockOrderRepository
	menu       *mocks.MockMenuRepository
	feedback   *mocks.MockFeedbackRepository
	redis      *helpers.TestRedis
	service    *services.DashboardService
	canteenID  uuid.UUID
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	ctrl := gomock.NewController(t)
	f := &dashboardFixture{
		inventory:  mocks.NewMockInventoryRepository(ctrl),
		promotions: mocks.NewMockPromotionRepository(ctrl),
		orders:     mocks.NewMockOrderRepository(ctrl),
		menu:       mocks.NewMockMenuRepository(ctrl),
		feedback:   mocks.NewMockFeedbackRepository(ctrl),
		redis:      helpers.SetupTestRedis(t),
		canteenID:  uuid.New(),
	}
	f.service = services.NewDashboardService(f.repos(), f.redis.Cache, clock.Fixed(testNow), nil, time.Minute, helpers.TestLogger())
	return f
}

func (f *dashboardFixture) repos() services.DashboardRepositories {
	return services.DashboardRepositories{
		Inventory:  f.inventory,
		Promotions: f.promotions,
		Orders:     f.orders,
		Menu:       f.menu,
		Feedback:   f.feedback,
	}
}

func (f *dashboardFixture) key() string {
	return dayKey(f.canteenID, testNow)
}

func dayKey(canteenID uuid.UUID, day time.Time) string {
	return ports.CanteenKey(ports.PrefixDashboard, canteenID, day.Format(time.DateOnly))
}

// expectSections serves one read of every section; ordersErr fails the
// orders section instead.
func (f *dashboardFixture) expectSections(ordersErr error) {
	f.inventory.EXPECT().ListActive(gomock.Any(), f.canteenID).Return([]domain.InventoryItem{
		*helpers.CreateTestInventoryItem(f.canteenID),
		*helpers.CreateTestInventoryItem(f.canteenID, func(i *domain.InventoryItem) {
			i.Name = "Paneer"
			i.CurrentStock = decimal.NewFromInt(4)
		}),
	}, nil)
	f.promotions.EXPECT().FindAll(gomock.Any(), f.canteenID).
		Return([]domain.Promotion{*helpers.CreateTestPromotion(f.canteenID)}, nil)

	if ordersErr != nil {
		f.orders.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.OrderQuery{}).Return(nil, ordersErr)
	} else {
		f.orders.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.OrderQuery{}).Return([]domain.Order{
			*helpers.CreateTestOrder(f.canteenID, nil, func(o *domain.Order) { o.CreatedAt = testNow.Add(-time.Hour) }),
			*helpers.CreateTestOrder(f.canteenID, nil, func(o *domain.Order) {
				o.Status = domain.OrderCompleted
				o.CreatedAt = testNow.AddDate(0, 0, -1)
			}),
		}, nil)
	}

	f.menu.EXPECT().FindAll(gomock.Any(), f.canteenID, false).Return([]domain.MenuItem{
		*helpers.CreateTestMenuItem(f.canteenID),
		*helpers.CreateTestMenuItem(f.canteenID, func(m *domain.MenuItem) { m.IsAvailable = false }),
	}, nil)
	f.feedback.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.FeedbackQuery{}).Return([]domain.Feedback{
		*helpers.CreateTestFeedback(f.canteenID, 5),
		*helpers.CreateTestFeedback(f.canteenID, 3),
	}, nil)
}

func TestDashboardService_Get(t *testing.T) {
	t.Run("builds_once_then_serves_cached_copy", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.expectSections(nil)

		first, err := f.service.Get(context.Background(), f.canteenID)
		require.NoError(t, err)

		assert.Equal(t, f.canteenID.String(), first.CanteenID)
		assert.Equal(t, 2, first.Inventory.TotalItems)
		assert.Equal(t, 1, first.Inventory.Critical)
		assert.Equal(t, 1, first.Promotions.Active)
		assert.Equal(t, 2, first.Orders.TotalOrders)
		assert.Equal(t, 1, first.Orders.TodayOrders)
		assert.True(t, decimal.NewFromInt(500).Equal(first.Orders.TotalRevenue))
		assert.True(t, decimal.NewFromInt(250).Equal(first.Orders.TodayRevenue))
		assert.Equal(t, 1, first.ActiveMenuItems)
		assert.Equal(t, 4.0, first.Feedback.AverageRating)
		assert.Empty(t, first.Degraded)
		assert.True(t, f.redis.Server.Exists(f.key()))

		// repositories expect a single read each
		second, err := f.service.Get(context.Background(), f.canteenID)
		require.NoError(t, err)
		assert.Equal(t, first.Inventory, second.Inventory)
		assert.True(t, first.GeneratedAt.Equal(second.GeneratedAt))
	})

	t.Run("degraded_dashboard_is_not_kept", func(t *testing.T) {
		f := newDashboardFixture(t)
		f.expectSections(errors.New("statement timeout"))

		d, err := f.service.Get(context.Background(), f.canteenID)
		require.NoError(t, err)
		assert.Equal(t, []string{report.SectionOrders}, d.Degraded)
		assert.Equal(t, 0, d.Orders.TotalOrders)
		assert.Equal(t, 2, d.Inventory.TotalItems)
		assert.False(t, f.redis.Server.Exists(f.key()))
	})

	t.Run("cache_failure_builds_directly", func(t *testing.T) {
		f := newDashboardFixture(t)
		cache := mocks.NewMockCacheRepository(gomock.NewController(t))
		svc := services.NewDashboardService(f.repos(), cache, clock.Fixed(testNow), nil, time.Minute, helpers.TestLogger())

		cache.EXPECT().GetOrSet(gomock.Any(), f.key(), gomock.Any(), gomock.Any(), time.Minute).
			Return(errors.New("connection refused"))
		f.expectSections(nil)

		d, err := svc.Get(context.Background(), f.canteenID)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Inventory.TotalItems)
	})
}

func TestDashboardService_Refresh(t *testing.T) {
	t.Run("replaces_cached_copy", func(t *testing.T) {
		f := newDashboardFixture(t)
		stale := report.Dashboard{CanteenID: f.canteenID.String(), ActiveMenuItems: 42}
		require.NoError(t, f.redis.Cache.Set(context.Background(), f.key(), stale))
		f.expectSections(nil)

		_, err := f.service.Refresh(context.Background(), f.canteenID)
		require.NoError(t, err)

		var cached report.Dashboard
		require.NoError(t, f.redis.Cache.Get(context.Background(), f.key(), &cached))
		assert.Equal(t, 1, cached.ActiveMenuItems)
	})

	t.Run("degraded_refresh_drops_cached_copy", func(t *testing.T) {
		f := newDashboardFixture(t)
		require.NoError(t, f.redis.Cache.Set(context.Background(), f.key(), report.Dashboard{}))
		f.expectSections(errors.New("statement timeout"))

		d, err := f.service.Refresh(context.Background(), f.canteenID)
		require.NoError(t, err)
		assert.NotEmpty(t, d.Degraded)
		assert.False(t, f.redis.Server.Exists(f.key()))
	})
}

func TestDashboardService_Invalidate(t *testing.T) {
	f := newDashboardFixture(t)
	yesterday := dayKey(f.canteenID, testNow.AddDate(0, 0, -1))
	other := dayKey(uuid.New(), testNow)
	for _, key := range []string{f.key(), yesterday, other} {
		require.NoError(t, f.redis.Cache.Set(context.Background(), key, report.Dashboard{}))
	}

	f.service.Invalidate(context.Background(), f.canteenID)

	assert.False(t, f.redis.Server.Exists(f.key()))
	assert.False(t, f.redis.Server.Exists(yesterday))
	assert.True(t, f.redis.Server.Exists(other))
}

func TestDashboardService_CachedCopyEndsAtMidnight(t *testing.T) {
	f := newDashboardFixture(t)
	current := time.Date(2026, 10, 15, 23, 50, 0, 0, time.UTC)
	svc := services.NewDashboardService(f.repos(), f.redis.Cache,
		clock.Func(func() time.Time { return current }), nil, time.Hour, helpers.TestLogger())

	lateOrder := helpers.CreateTestOrder(f.canteenID, nil, func(o *domain.Order) {
		o.CreatedAt = time.Date(2026, 10, 15, 23, 0, 0, 0, time.UTC)
	})
	expectBuild := func() {
		f.inventory.EXPECT().ListActive(gomock.Any(), f.canteenID).Return(nil, nil)
		f.promotions.EXPECT().FindAll(gomock.Any(), f.canteenID).Return(nil, nil)
		f.orders.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.OrderQuery{}).Return([]domain.Order{*lateOrder}, nil)
		f.menu.EXPECT().FindAll(gomock.Any(), f.canteenID, false).Return(nil, nil)
		f.feedback.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.FeedbackQuery{}).Return(nil, nil)
	}

	expectBuild()
	before, err := svc.Get(context.Background(), f.canteenID)
	require.NoError(t, err)
	assert.Equal(t, 1, before.Orders.TodayOrders)

	// twenty minutes later it is a new day and the ttl has not run out
	current = current.Add(20 * time.Minute)
	expectBuild()
	after, err := svc.Get(context.Background(), f.canteenID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Orders.TodayOrders)
	assert.Equal(t, 1, after.Orders.TotalOrders)

	assert.True(t, f.redis.Server.Exists(dayKey(f.canteenID, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))))
	assert.True(t, f.redis.Server.Exists(dayKey(f.canteenID, current)))
}

func TestDashboardService_UsesCanteenDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newDashboardFixture(t)
	locator := mocks.NewMockCanteenService(ctrl)
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	locator.EXPECT().Location(gomock.Any(), f.canteenID).Return(kolkata)

	// 23:00 UTC on the 14th is already the 15th in Kolkata
	late := time.Date(2026, 10, 14, 23, 0, 0, 0, time.UTC)
	svc := services.NewDashboardService(f.repos(), f.redis.Cache, clock.Fixed(late), locator, time.Minute, helpers.TestLogger())

	f.inventory.EXPECT().ListActive(gomock.Any(), f.canteenID).Return(nil, nil)
	f.promotions.EXPECT().FindAll(gomock.Any(), f.canteenID).Return(nil, nil)
	f.orders.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.OrderQuery{}).Return([]domain.Order{
		*helpers.CreateTestOrder(f.canteenID, nil, func(o *domain.Order) {
			o.CreatedAt = time.Date(2026, 10, 14, 19, 0, 0, 0, time.UTC)
		}),
		*helpers.CreateTestOrder(f.canteenID, nil, func(o *domain.Order) {
			o.CreatedAt = time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)
		}),
	}, nil)
	f.menu.EXPECT().FindAll(gomock.Any(), f.canteenID, false).Return(nil, nil)
	f.feedback.EXPECT().FindAll(gomock.Any(), f.canteenID, ports.FeedbackQuery{}).Return(nil, nil)

	d, err := svc.Refresh(context.Background(), f.canteenID)
	require.NoError(t, err)
	// 19:00 UTC is 00:30 on the 15th locally, 18:00 UTC is still the 14th
	assert.Equal(t, 1, d.Orders.TodayOrders)
}
