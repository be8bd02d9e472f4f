package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
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

func newCanteenService(t *testing.T, defaultLoc *time.Location) (*services.CanteenService, *mocks.MockCanteenRepository, *mocks.MockCacheRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCanteenRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	return services.NewCanteenService(repo, cache, clock.Fixed(testNow), defaultLoc, helpers.TestLogger()), repo, cache
}

func TestCanteenService_Location(t *testing.T) {
	t.Run("resolves_once_and_remembers", func(t *testing.T) {
		svc, repo, _ := newCanteenService(t, nil)
		c := helpers.CreateTestCanteen(func(c *domain.Canteen) { c.Timezone = "Asia/Kolkata" })
		repo.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil).Times(1)

		first := svc.Location(context.Background(), c.ID)
		second := svc.Location(context.Background(), c.ID)
		assert.Equal(t, "Asia/Kolkata", first.String())
		assert.Same(t, first, second)
	})

	t.Run("falls_back_to_default_on_error", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		svc, repo, _ := newCanteenService(t, berlin)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, errors.New("connection refused")).Times(2)

		assert.Equal(t, berlin, svc.Location(context.Background(), id))
		// failures are not remembered
		assert.Equal(t, berlin, svc.Location(context.Background(), id))
	})

	t.Run("empty_timezone_uses_default", func(t *testing.T) {
		svc, repo, _ := newCanteenService(t, nil)
		c := helpers.CreateTestCanteen(func(c *domain.Canteen) { c.Timezone = "" })
		repo.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)

		assert.Equal(t, time.UTC, svc.Location(context.Background(), c.ID))
	})
}

func TestCanteenService_Update(t *testing.T) {
	t.Run("saves_and_forgets_cached_state", func(t *testing.T) {
		svc, repo, cache := newCanteenService(t, nil)
		existing := helpers.CreateTestCanteen(func(c *domain.Canteen) { c.CreatedAt = testNow.AddDate(-1, 0, 0) })

		repo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil).Times(2)
		svc.Location(context.Background(), existing.ID)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().DeletePattern(gomock.Any(), ports.CanteenKey(ports.PrefixDashboard, existing.ID, "*")).Return(nil)

		update := helpers.CreateTestCanteen(func(c *domain.Canteen) {
			c.Name = "North Block"
			c.Timezone = "Asia/Kolkata"
			c.IsActive = false
		})
		got, err := svc.Update(context.Background(), existing.ID, update)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
		assert.True(t, got.IsActive)
		assert.Equal(t, testNow, got.UpdatedAt)

		// the next lookup reads the new settings
		repo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(got, nil)
		assert.Equal(t, "Asia/Kolkata", svc.Location(context.Background(), existing.ID).String())
	})

	t.Run("invalid_timezone", func(t *testing.T) {
		svc, repo, _ := newCanteenService(t, nil)
		existing := helpers.CreateTestCanteen()
		repo.EXPECT().FindByID(gomock.Any(), existing.ID).Return(existing, nil)

		update := helpers.CreateTestCanteen(func(c *domain.Canteen) { c.Timezone = "Mars/Olympus" })
		_, err := svc.Update(context.Background(), existing.ID, update)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCanteenService_ActiveIDs(t *testing.T) {
	svc, repo, _ := newCanteenService(t, nil)
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	repo.EXPECT().ListActiveIDs(gomock.Any()).Return(ids, nil)

	got, err := svc.ActiveIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}
