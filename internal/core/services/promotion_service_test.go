package services_test

import (
	"context"
	"testing"
	"time"

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

func newPromotionService(t *testing.T) (*services.PromotionService, *mocks.MockPromotionRepository, *mocks.MockDashboardInvalidator) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPromotionRepository(ctrl)
	dashboard := mocks.NewMockDashboardInvalidator(ctrl)
	rt := services.Runtime{Clock: clock.Fixed(testNow), Dashboard: dashboard}
	return services.NewPromotionService(repo, rt, helpers.TestLogger()), repo, dashboard
}

func TestPromotionService_List(t *testing.T) {
	canteenID := uuid.New()
	promos := []domain.Promotion{
		*helpers.CreateTestPromotion(canteenID, func(p *domain.Promotion) { p.Name = "Running" }),
		*helpers.CreateTestPromotion(canteenID, func(p *domain.Promotion) {
			p.Name = "Diwali"
			p.StartDate = helpers.Date(2026, time.November, 1)
			p.EndDate = helpers.Date(2026, time.November, 5)
		}),
		*helpers.CreateTestPromotion(canteenID, func(p *domain.Promotion) {
			p.Name = "Monsoon"
			p.StartDate = helpers.Date(2026, time.July, 1)
			p.EndDate = helpers.Date(2026, time.August, 31)
		}),
		*helpers.CreateTestPromotion(canteenID, func(p *domain.Promotion) {
			p.Name = "Open Ended"
			p.StartDate = nil
			p.EndDate = nil
		}),
	}

	tests := []struct {
		name      string
		status    domain.PromotionStatus
		wantNames []string
	}{
		{name: "all", wantNames: []string{"Running", "Diwali", "Monsoon", "Open Ended"}},
		{name: "active", status: domain.PromotionActive, wantNames: []string{"Running", "Open Ended"}},
		{name: "scheduled", status: domain.PromotionScheduled, wantNames: []string{"Diwali"}},
		{name: "expired", status: domain.PromotionExpired, wantNames: []string{"Monsoon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newPromotionService(t)
			repo.EXPECT().FindAll(gomock.Any(), canteenID).Return(promos, nil)

			got, err := svc.List(context.Background(), canteenID, tt.status)
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	t.Run("unknown_status", func(t *testing.T) {
		svc, _, _ := newPromotionService(t)
		_, err := svc.List(context.Background(), canteenID, "paused")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestPromotionService_Create(t *testing.T) {
	canteenID := uuid.New()

	t.Run("stores_and_classifies", func(t *testing.T) {
		svc, repo, dashboard := newPromotionService(t)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

		got, err := svc.Create(context.Background(), canteenID, helpers.CreateTestPromotion(uuid.Nil))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, canteenID, got.CanteenID)
		assert.Equal(t, domain.PromotionActive, got.Status)
	})

	t.Run("percentage_over_100", func(t *testing.T) {
		svc, _, _ := newPromotionService(t)
		p := helpers.CreateTestPromotion(uuid.Nil, func(p *domain.Promotion) { p.Value = decimal.NewFromInt(150) })

		_, err := svc.Create(context.Background(), canteenID, p)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "cannot exceed 100")
	})
}

func TestPromotionService_Update(t *testing.T) {
	canteenID := uuid.New()
	svc, repo, dashboard := newPromotionService(t)

	created := testNow.Add(-time.Hour)
	existing := helpers.CreateTestPromotion(canteenID, func(p *domain.Promotion) {
		p.ID = uuid.New()
		p.CreatedAt = created
	})
	repo.EXPECT().FindByID(gomock.Any(), canteenID, existing.ID).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Promotion) error {
			assert.Equal(t, existing.ID, p.ID)
			assert.Equal(t, created, p.CreatedAt)
			assert.Equal(t, testNow, p.UpdatedAt)
			return nil
		})
	dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

	update := helpers.CreateTestPromotion(uuid.Nil, func(p *domain.Promotion) {
		p.EndDate = helpers.Date(2026, time.October, 1)
	})
	got, err := svc.Update(context.Background(), canteenID, existing.ID, update)
	require.NoError(t, err)
	assert.Equal(t, domain.PromotionExpired, got.Status)
}

func TestPromotionService_Delete(t *testing.T) {
	canteenID, id := uuid.New(), uuid.New()

	t.Run("deletes", func(t *testing.T) {
		svc, repo, dashboard := newPromotionService(t)
		repo.EXPECT().Delete(gomock.Any(), canteenID, id).Return(nil)
		dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

		assert.NoError(t, svc.Delete(context.Background(), canteenID, id))
	})

	t.Run("not_found", func(t *testing.T) {
		svc, repo, _ := newPromotionService(t)
		repo.EXPECT().Delete(gomock.Any(), canteenID, id).Return(ports.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), canteenID, id), ports.ErrNotFound)
	})
}
