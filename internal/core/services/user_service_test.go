package services_test

import (
	"context"
	"errors"
	"testing"

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

func newUserService(t *testing.T) (*services.UserService, *mocks.MockStaffRepository) {
	repo := mocks.NewMockStaffRepository(gomock.NewController(t))
	rt := services.Runtime{Clock: clock.Fixed(testNow)}
	return services.NewUserService(repo, rt, helpers.TestLogger()), repo
}

func ptr[T any](v T) *T { return &v }

func TestUserService_List(t *testing.T) {
	canteenID := uuid.New()

	t.Run("adds_permissions_and_role_counts", func(t *testing.T) {
		svc, repo := newUserService(t)
		query := ports.StaffQuery{Search: "ravi"}
		repo.EXPECT().FindAll(gomock.Any(), canteenID, query).Return([]domain.StaffProfile{
			*helpers.CreateTestStaffProfile(canteenID, domain.RoleOwner),
			*helpers.CreateTestStaffProfile(canteenID, domain.RoleChef),
			*helpers.CreateTestStaffProfile(canteenID, domain.RoleChef, func(p *domain.StaffProfile) { p.IsActive = false }),
		}, nil)

		got, err := svc.List(context.Background(), canteenID, ports.StaffQuery{Search: "  ravi "})
		require.NoError(t, err)
		require.Len(t, got.Items, 3)
		assert.Contains(t, got.Items[0].Permissions, "Manage Users")
		assert.Contains(t, got.Items[1].Permissions, "Update Order Status")
		assert.Equal(t, 3, got.Summary.Total)
		assert.Equal(t, 2, got.Summary.Active)
		assert.Equal(t, 2, got.Summary.ByRole[domain.RoleChef])
		assert.Equal(t, 0, got.Summary.ByRole[domain.RoleCashier])
	})

	t.Run("unknown_role", func(t *testing.T) {
		svc, _ := newUserService(t)
		_, err := svc.List(context.Background(), canteenID, ports.StaffQuery{Role: "janitor"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("repository_error", func(t *testing.T) {
		svc, repo := newUserService(t)
		repo.EXPECT().FindAll(gomock.Any(), canteenID, gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := svc.List(context.Background(), canteenID, ports.StaffQuery{})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUserService_Get(t *testing.T) {
	canteenID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, repo := newUserService(t)
		p := helpers.CreateTestStaffProfile(canteenID, domain.RoleCashier)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, p.ID).Return(p, nil)

		got, err := svc.Get(context.Background(), canteenID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Process Orders", "Handle Payments", "View Menu"}, got.Permissions)
	})

	t.Run("not_found", func(t *testing.T) {
		svc, repo := newUserService(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), canteenID, id).Return(nil, ports.ErrNotFound)

		_, err := svc.Get(context.Background(), canteenID, id)
		assert.ErrorIs(t, err, ports.ErrNotFound)
	})
}

func TestUserService_Update(t *testing.T) {
	canteenID := uuid.New()

	t.Run("changes_role_and_name", func(t *testing.T) {
		svc, repo := newUserService(t)
		p := helpers.CreateTestStaffProfile(canteenID, domain.RoleCashier)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, p.ID).Return(p, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got *domain.StaffProfile) error {
				assert.Equal(t, domain.RoleManager, got.Role)
				assert.Equal(t, "Meera Nair", got.FullName)
				assert.Equal(t, testNow, got.UpdatedAt)
				return nil
			})

		got, err := svc.Update(context.Background(), canteenID, p.ID, domain.StaffUpdate{
			FullName: ptr(" Meera Nair "),
			Role:     ptr(domain.RoleManager),
		})
		require.NoError(t, err)
		assert.Contains(t, got.Permissions, "Manage Inventory")
	})

	t.Run("empty_update", func(t *testing.T) {
		svc, _ := newUserService(t)
		_, err := svc.Update(context.Background(), canteenID, uuid.New(), domain.StaffUpdate{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown_role", func(t *testing.T) {
		svc, repo := newUserService(t)
		p := helpers.CreateTestStaffProfile(canteenID, domain.RoleChef)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, p.ID).Return(p, nil)

		_, err := svc.Update(context.Background(), canteenID, p.ID, domain.StaffUpdate{Role: ptr(domain.StaffRole("janitor"))})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("last_owner_cannot_be_deactivated", func(t *testing.T) {
		svc, repo := newUserService(t)
		owner := helpers.CreateTestStaffProfile(canteenID, domain.RoleOwner)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, owner.ID).Return(owner, nil)
		repo.EXPECT().CountActiveOwners(gomock.Any(), canteenID).Return(1, nil)

		_, err := svc.Update(context.Background(), canteenID, owner.ID, domain.StaffUpdate{IsActive: ptr(false)})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "at least one active owner")
	})

	t.Run("last_owner_cannot_be_demoted", func(t *testing.T) {
		svc, repo := newUserService(t)
		owner := helpers.CreateTestStaffProfile(canteenID, domain.RoleOwner)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, owner.ID).Return(owner, nil)
		repo.EXPECT().CountActiveOwners(gomock.Any(), canteenID).Return(1, nil)

		_, err := svc.Update(context.Background(), canteenID, owner.ID, domain.StaffUpdate{Role: ptr(domain.RoleManager)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("owner_demoted_when_another_remains", func(t *testing.T) {
		svc, repo := newUserService(t)
		owner := helpers.CreateTestStaffProfile(canteenID, domain.RoleOwner)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, owner.ID).Return(owner, nil)
		repo.EXPECT().CountActiveOwners(gomock.Any(), canteenID).Return(2, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		got, err := svc.Update(context.Background(), canteenID, owner.ID, domain.StaffUpdate{Role: ptr(domain.RoleManager)})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleManager, got.Role)
	})

	t.Run("owner_rename_skips_owner_count", func(t *testing.T) {
		svc, repo := newUserService(t)
		owner := helpers.CreateTestStaffProfile(canteenID, domain.RoleOwner)
		repo.EXPECT().FindByID(gomock.Any(), canteenID, owner.ID).Return(owner, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.Update(context.Background(), canteenID, owner.ID, domain.StaffUpdate{Phone: ptr("+91 98450 00000")})
		require.NoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		svc, repo := newUserService(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), canteenID, id).Return(nil, ports.ErrNotFound)

		_, err := svc.Update(context.Background(), canteenID, id, domain.StaffUpdate{IsActive: ptr(true)})
		assert.ErrorIs(t, err, ports.ErrNotFound)
	})
}
