// internal/core/services/menu.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// MenuService handles menu items and categories
type MenuService struct {
	repo   ports.MenuRepository
	rt     Runtime
	logger *slog.Logger
}

var _ ports.MenuService = (*MenuService)(nil)

// NewMenuService creates a new menu service
func NewMenuService(repo ports.MenuRepository, rt Runtime, logger *slog.Logger) *MenuService {
	return &MenuService{
		repo:   repo,
		rt:     rt,
		logger: logger.With(slog.String("service", "menu")),
	}
}

// List returns the active menu with category names
func (s *MenuService) List(ctx context.Context, canteenID uuid.UUID, availableOnly bool) ([]domain.MenuItem, error) {
	items, err := s.repo.FindAll(ctx, canteenID, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// Get retrieves one menu item
func (s *MenuService) Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

// Create validates and stores a new menu item
func (s *MenuService) Create(ctx context.Context, canteenID uuid.UUID, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.CanteenID = canteenID
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	item.PrepareForStorage(s.rt.now(ctx, canteenID))

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save menu item: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "saved menu item",
		slog.String("canteen_id", canteenID.String()),
		slog.String("menu_item_id", item.ID.String()),
		slog.String("name", item.Name))
	return item, nil
}

// Update replaces an existing menu item
func (s *MenuService) Update(ctx context.Context, canteenID, id uuid.UUID, item *domain.MenuItem) (*domain.MenuItem, error) {
	existing, err := s.repo.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	item.ID = existing.ID
	item.CanteenID = canteenID
	item.IsActive = existing.IsActive
	item.CreatedAt = existing.CreatedAt
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	item.UpdatedAt = s.rt.now(ctx, canteenID)

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "updated menu item",
		slog.String("canteen_id", canteenID.String()),
		slog.String("menu_item_id", id.String()))
	return item, nil
}

// Delete soft-deletes a menu item
func (s *MenuService) Delete(ctx context.Context, canteenID, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, canteenID, id, s.rt.now(ctx, canteenID)); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "deleted menu item",
		slog.String("canteen_id", canteenID.String()),
		slog.String("menu_item_id", id.String()))
	return nil
}

// Categories lists the canteen's active menu categories
func (s *MenuService) Categories(ctx context.Context, canteenID uuid.UUID) ([]domain.MenuCategory, error) {
	categories, err := s.repo.Categories(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu categories: %w", err)
	}
	return categories, nil
}

// CreateCategory stores a new menu category
func (s *MenuService) CreateCategory(ctx context.Context, canteenID uuid.UUID, category *domain.MenuCategory) (*domain.MenuCategory, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, invalidf("name is required")
	}

	category.ID = uuid.New()
	category.CanteenID = canteenID
	category.IsActive = true
	category.CreatedAt = s.rt.now(ctx, canteenID)

	if err := s.repo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to save menu category: %w", err)
	}

	s.logger.InfoContext(ctx, "saved menu category",
		slog.String("canteen_id", canteenID.String()),
		slog.String("name", category.Name))
	return category, nil
}
