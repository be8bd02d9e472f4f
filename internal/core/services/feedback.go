// internal/core/services/feedback.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// FeedbackService handles customer reviews
type FeedbackService struct {
	repo   ports.FeedbackRepository
	rt     Runtime
	logger *slog.Logger
}

var _ ports.FeedbackService = (*FeedbackService)(nil)

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo ports.FeedbackRepository, rt Runtime, logger *slog.Logger) *FeedbackService {
	return &FeedbackService{
		repo:   repo,
		rt:     rt,
		logger: logger.With(slog.String("service", "feedback")),
	}
}

// List returns feedback matching query with rating statistics over the matches
func (s *FeedbackService) List(ctx context.Context, canteenID uuid.UUID, query ports.FeedbackQuery) (*ports.FeedbackListResult, error) {
	if query.Rating != 0 && (query.Rating < domain.MinRating || query.Rating > domain.MaxRating) {
		return nil, invalidf("rating must be between %d and %d", domain.MinRating, domain.MaxRating)
	}
	switch query.Status {
	case "", domain.FeedbackNew, domain.FeedbackPending, domain.FeedbackResponded:
	default:
		return nil, invalidf("unknown status %q", query.Status)
	}

	items, err := s.repo.FindAll(ctx, canteenID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return &ports.FeedbackListResult{
		Items:   items,
		Summary: report.SummarizeFeedback(items),
	}, nil
}

// Submit stores a new review
func (s *FeedbackService) Submit(ctx context.Context, canteenID uuid.UUID, fb *domain.Feedback) (*domain.Feedback, error) {
	fb.CanteenID = canteenID
	if err := fb.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	fb.ID = uuid.New()
	fb.CreatedAt = s.rt.now(ctx, canteenID)

	if err := s.repo.Save(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "received feedback",
		slog.String("canteen_id", canteenID.String()),
		slog.String("feedback_id", fb.ID.String()),
		slog.Int("rating", fb.Rating))
	return fb, nil
}

// Respond records a staff reply to a review
func (s *FeedbackService) Respond(ctx context.Context, canteenID, id uuid.UUID, response string) (*domain.Feedback, error) {
	fb, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	if err := fb.Respond(response, s.rt.now(ctx, canteenID)); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateResponse(ctx, fb); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "responded to feedback",
		slog.String("canteen_id", canteenID.String()),
		slog.String("feedback_id", id.String()))
	return fb, nil
}
