// internal/core/services/promotion.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// PromotionService handles promotion business logic
type PromotionService struct {
	repo   ports.PromotionRepository
	rt     Runtime
	logger *slog.Logger
}

var _ ports.PromotionService = (*PromotionService)(nil)

// NewPromotionService creates a new promotion service
func NewPromotionService(repo ports.PromotionRepository, rt Runtime, logger *slog.Logger) *PromotionService {
	return &PromotionService{
		repo:   repo,
		rt:     rt,
		logger: logger.With(slog.String("service", "promotion")),
	}
}

// List returns the canteen's promotions with their derived status. An
// empty status returns every promotion.
func (s *PromotionService) List(ctx context.Context, canteenID uuid.UUID, status domain.PromotionStatus) ([]domain.ClassifiedPromotion, error) {
	if status != "" && !status.IsValid() {
		return nil, invalidf("unknown status %q", status)
	}

	promos, err := s.repo.FindAll(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	classified := s.rt.classifier(ctx, canteenID).Promotions(promos)
	if status == "" {
		return classified, nil
	}

	out := make([]domain.ClassifiedPromotion, 0, len(classified))
	for _, p := range classified {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get retrieves one promotion
func (s *PromotionService) Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.ClassifiedPromotion, error) {
	p, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}
	classified := s.rt.classifier(ctx, canteenID).Promotion(*p)
	return &classified, nil
}

// Create validates and stores a new promotion
func (s *PromotionService) Create(ctx context.Context, canteenID uuid.UUID, p *domain.Promotion) (*domain.ClassifiedPromotion, error) {
	p.CanteenID = canteenID
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	p.PrepareForStorage(s.rt.now(ctx, canteenID))

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save promotion: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "saved promotion",
		slog.String("canteen_id", canteenID.String()),
		slog.String("promotion_id", p.ID.String()),
		slog.String("type", string(p.Type)))

	classified := s.rt.classifier(ctx, canteenID).Promotion(*p)
	return &classified, nil
}

// Update replaces an existing promotion
func (s *PromotionService) Update(ctx context.Context, canteenID, id uuid.UUID, p *domain.Promotion) (*domain.ClassifiedPromotion, error) {
	existing, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}

	p.ID = existing.ID
	p.CanteenID = canteenID
	p.CreatedAt = existing.CreatedAt
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	p.UpdatedAt = s.rt.now(ctx, canteenID)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "updated promotion",
		slog.String("canteen_id", canteenID.String()),
		slog.String("promotion_id", id.String()))

	classified := s.rt.classifier(ctx, canteenID).Promotion(*p)
	return &classified, nil
}

// Delete removes a promotion permanently
func (s *PromotionService) Delete(ctx context.Context, canteenID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, canteenID, id); err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "deleted promotion",
		slog.String("canteen_id", canteenID.String()),
		slog.String("promotion_id", id.String()))
	return nil
}
