package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/services"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
	"github.com/ammerola/canteen-be/test/helpers"
	"github.com/ammerola/canteen-be/test/mocks"
)

func newMenuService(t *testing.T) (*services.MenuService, *mocks.MockMenuRepository, *mocks.MockDashboardInvalidator) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	dashboard := mocks.NewMockDashboardInvalidator(ctrl)
	rt := services.Runtime{Clock: clock.Fixed(testNow), Dashboard: dashboard}
	return services.NewMenuService(repo, rt, helpers.TestLogger()), repo, dashboard
}

func TestMenuService_Create(t *testing.T) {
	canteenID := uuid.New()

	t.Run("valid_item", func(t *testing.T) {
		svc, repo, dashboard := newMenuService(t)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

		got, err := svc.Create(context.Background(), canteenID, helpers.CreateTestMenuItem(uuid.Nil))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.True(t, got.IsActive)
		assert.Equal(t, testNow, got.UpdatedAt)
	})

	t.Run("negative_price", func(t *testing.T) {
		svc, _, _ := newMenuService(t)
		item := helpers.CreateTestMenuItem(uuid.Nil, func(m *domain.MenuItem) { m.Price = decimal.NewFromInt(-5) })

		_, err := svc.Create(context.Background(), canteenID, item)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestMenuService_Update(t *testing.T) {
	canteenID := uuid.New()
	svc, repo, dashboard := newMenuService(t)
	existing := helpers.CreateTestMenuItem(canteenID, func(m *domain.MenuItem) {
		m.ID = uuid.New()
		m.CreatedAt = testNow.AddDate(0, -1, 0)
	})

	repo.EXPECT().FindByID(gomock.Any(), canteenID, existing.ID).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

	update := helpers.CreateTestMenuItem(uuid.Nil, func(m *domain.MenuItem) {
		m.Price = decimal.NewFromInt(135)
		m.IsAvailable = false
	})
	got, err := svc.Update(context.Background(), canteenID, existing.ID, update)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, existing.CreatedAt, got.CreatedAt)
	assert.False(t, got.IsAvailable)
	assert.True(t, decimal.NewFromInt(135).Equal(got.Price))
}

func TestMenuService_Delete(t *testing.T) {
	canteenID, id := uuid.New(), uuid.New()
	svc, repo, dashboard := newMenuService(t)
	repo.EXPECT().SoftDelete(gomock.Any(), canteenID, id, testNow).Return(nil)
	dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

	assert.NoError(t, svc.Delete(context.Background(), canteenID, id))
}

func TestMenuService_Get_NotFound(t *testing.T) {
	canteenID, id := uuid.New(), uuid.New()
	svc, repo, _ := newMenuService(t)
	repo.EXPECT().FindByID(gomock.Any(), canteenID, id).Return(nil, ports.ErrNotFound)

	_, err := svc.Get(context.Background(), canteenID, id)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestMenuService_Categories(t *testing.T) {
	canteenID := uuid.New()

	t.Run("create_trims_and_stamps", func(t *testing.T) {
		svc, repo, _ := newMenuService(t)
		repo.EXPECT().SaveCategory(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.CreateCategory(context.Background(), canteenID, &domain.MenuCategory{Name: "  Snacks "})
		require.NoError(t, err)
		assert.Equal(t, "Snacks", got.Name)
		assert.Equal(t, canteenID, got.CanteenID)
		assert.True(t, got.IsActive)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("blank_name", func(t *testing.T) {
		svc, _, _ := newMenuService(t)
		_, err := svc.CreateCategory(context.Background(), canteenID, &domain.MenuCategory{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("list", func(t *testing.T) {
		svc, repo, _ := newMenuService(t)
		repo.EXPECT().Categories(gomock.Any(), canteenID).
			Return([]domain.MenuCategory{{Name: "Meals"}, {Name: "Snacks"}}, nil)

		got, err := svc.Categories(context.Background(), canteenID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestMenuService_List(t *testing.T) {
	canteenID := uuid.New()
	svc, repo, _ := newMenuService(t)
	repo.EXPECT().FindAll(gomock.Any(), canteenID, true).
		Return([]domain.MenuItem{*helpers.CreateTestMenuItem(canteenID)}, nil)

	got, err := svc.List(context.Background(), canteenID, true)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
