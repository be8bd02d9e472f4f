package services_test

import (
	"context"
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

func newFeedbackService(t *testing.T) (*services.FeedbackService, *mocks.MockFeedbackRepository, *mocks.MockDashboardInvalidator) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFeedbackRepository(ctrl)
	dashboard := mocks.NewMockDashboardInvalidator(ctrl)
	rt := services.Runtime{Clock: clock.Fixed(testNow), Dashboard: dashboard}
	return services.NewFeedbackService(repo, rt, helpers.TestLogger()), repo, dashboard
}

func TestFeedbackService_List(t *testing.T) {
	canteenID := uuid.New()

	t.Run("summarizes_matches", func(t *testing.T) {
		svc, repo, _ := newFeedbackService(t)
		query := ports.FeedbackQuery{Status: domain.FeedbackNew}
		repo.EXPECT().FindAll(gomock.Any(), canteenID, query).Return([]domain.Feedback{
			*helpers.CreateTestFeedback(canteenID, 5),
			*helpers.CreateTestFeedback(canteenID, 4),
			*helpers.CreateTestFeedback(canteenID, 1),
		}, nil)

		got, err := svc.List(context.Background(), canteenID, query)
		require.NoError(t, err)
		assert.Len(t, got.Items, 3)
		assert.Equal(t, 3, got.Summary.Total)
		assert.InDelta(t, 3.33, got.Summary.AverageRating, 0.001)
		assert.Equal(t, 2, got.Summary.Positive)
		assert.Equal(t, 1, got.Summary.Negative)
	})

	tests := []struct {
		name  string
		query ports.FeedbackQuery
	}{
		{name: "rating_too_high", query: ports.FeedbackQuery{Rating: 6}},
		{name: "negative_rating", query: ports.FeedbackQuery{Rating: -1}},
		{name: "unknown_status", query: ports.FeedbackQuery{Status: "archived"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newFeedbackService(t)
			_, err := svc.List(context.Background(), canteenID, tt.query)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestFeedbackService_Submit(t *testing.T) {
	canteenID := uuid.New()

	t.Run("valid_review", func(t *testing.T) {
		svc, repo, dashboard := newFeedbackService(t)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

		got, err := svc.Submit(context.Background(), canteenID, &domain.Feedback{Rating: 4, Comment: "Crisp dosa"})
		require.NoError(t, err)
		assert.Equal(t, domain.FeedbackNew, got.Status)
		assert.Equal(t, testNow, got.CreatedAt)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("rating_out_of_range", func(t *testing.T) {
		svc, _, _ := newFeedbackService(t)
		_, err := svc.Submit(context.Background(), canteenID, &domain.Feedback{Rating: 0})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestFeedbackService_Respond(t *testing.T) {
	canteenID := uuid.New()

	t.Run("records_response", func(t *testing.T) {
		svc, repo, dashboard := newFeedbackService(t)
		fb := helpers.CreateTestFeedback(canteenID, 2, func(f *domain.Feedback) { f.ID = uuid.New() })
		repo.EXPECT().FindByID(gomock.Any(), canteenID, fb.ID).Return(fb, nil)
		repo.EXPECT().UpdateResponse(gomock.Any(), fb).Return(nil)
		dashboard.EXPECT().Invalidate(gomock.Any(), canteenID)

		got, err := svc.Respond(context.Background(), canteenID, fb.ID, " Sorry, we will do better ")
		require.NoError(t, err)
		assert.Equal(t, domain.FeedbackResponded, got.Status)
		assert.Equal(t, "Sorry, we will do better", got.Response)
		require.NotNil(t, got.RespondedAt)
		assert.Equal(t, testNow, *got.RespondedAt)
	})

	t.Run("empty_response", func(t *testing.T) {
		svc, repo, _ := newFeedbackService(t)
		fb := helpers.CreateTestFeedback(canteenID, 3, func(f *domain.Feedback) { f.ID = uuid.New() })
		repo.EXPECT().FindByID(gomock.Any(), canteenID, fb.ID).Return(fb, nil)

		_, err := svc.Respond(context.Background(), canteenID, fb.ID, "  ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing_feedback", func(t *testing.T) {
		svc, repo, _ := newFeedbackService(t)
		id := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), canteenID, id).Return(nil, ports.ErrNotFound)

		_, err := svc.Respond(context.Background(), canteenID, id, "Thanks")
		assert.ErrorIs(t, err, ports.ErrNotFound)
	})
}
