// internal/core/services/order.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// OrderService handles orders and the invoices derived from them
type OrderService struct {
	orders ports.OrderRepository
	menu   ports.MenuRepository
	rt     Runtime
	logger *slog.Logger
}

var _ ports.OrderService = (*OrderService)(nil)

// NewOrderService creates a new order service
func NewOrderService(orders ports.OrderRepository, menu ports.MenuRepository, rt Runtime, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		menu:   menu,
		rt:     rt,
		logger: logger.With(slog.String("service", "order")),
	}
}

// List returns orders newest first, with their lines
func (s *OrderService) List(ctx context.Context, canteenID uuid.UUID, params ports.OrderListParams) ([]domain.Order, error) {
	query, err := orderQuery(params)
	if err != nil {
		return nil, err
	}
	if params.Status != "" {
		query.Statuses = []domain.OrderStatus{params.Status}
	}

	orders, err := s.orders.FindAll(ctx, canteenID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Get retrieves one order with its lines
func (s *OrderService) Get(ctx context.Context, canteenID, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// Create prices the order from the menu and stores it with its lines
func (s *OrderService) Create(ctx context.Context, canteenID uuid.UUID, order *domain.Order) (*domain.Order, error) {
	order.CanteenID = canteenID
	if err := s.priceLines(ctx, canteenID, order); err != nil {
		return nil, err
	}
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	order.CalculateTotals()
	order.PrepareForStorage(s.rt.now(ctx, canteenID))

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "created order",
		slog.String("canteen_id", canteenID.String()),
		slog.String("order_id", order.ID.String()),
		slog.String("status", string(order.Status)),
		slog.Int("lines", len(order.Items)),
		slog.String("total", order.TotalAmount.StringFixed(2)))

	return order, nil
}

// priceLines replaces client-supplied prices and names with the menu's
func (s *OrderService) priceLines(ctx context.Context, canteenID uuid.UUID, order *domain.Order) error {
	if len(order.Items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, line := range order.Items {
		ids = append(ids, line.MenuItemID)
	}

	menu, err := s.menu.FindByIDs(ctx, canteenID, ids)
	if err != nil {
		return fmt.Errorf("failed to load menu items: %w", err)
	}
	byID := make(map[uuid.UUID]domain.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	for idx := range order.Items {
		line := &order.Items[idx]
		m, ok := byID[line.MenuItemID]
		if !ok {
			return invalidf("items[%d]: menu item %s not found", idx, line.MenuItemID)
		}
		if !m.IsAvailable {
			return invalidf("items[%d]: %s is not available", idx, m.Name)
		}
		line.UnitPrice = m.Price
		line.MenuItemName = m.Name
	}
	return nil
}

// UpdateStatus moves an order through its lifecycle
func (s *OrderService) UpdateStatus(ctx context.Context, canteenID, id uuid.UUID, status domain.OrderStatus, servedBy *uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, canteenID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	previous := order.Status
	if err := order.TransitionTo(status, servedBy, s.rt.now(ctx, canteenID)); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	s.rt.invalidate(ctx, canteenID)

	s.logger.InfoContext(ctx, "order status changed",
		slog.String("canteen_id", canteenID.String()),
		slog.String("order_id", id.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))

	return order, nil
}

// Invoices lists completed orders
func (s *OrderService) Invoices(ctx context.Context, canteenID uuid.UUID, params ports.OrderListParams) ([]domain.Order, error) {
	query, err := orderQuery(params)
	if err != nil {
		return nil, err
	}
	query.Statuses = []domain.OrderStatus{domain.OrderCompleted}

	orders, err := s.orders.FindAll(ctx, canteenID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return orders, nil
}

// CreateInvoice records an order that is already paid and handed over
func (s *OrderService) CreateInvoice(ctx context.Context, canteenID uuid.UUID, order *domain.Order) (*domain.Order, error) {
	order.Status = domain.OrderCompleted
	return s.Create(ctx, canteenID, order)
}

func orderQuery(params ports.OrderListParams) (ports.OrderQuery, error) {
	if params.Status != "" && !params.Status.IsValid() {
		return ports.OrderQuery{}, invalidf("unknown status %q", params.Status)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultOrderLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := max(params.Offset, 0)
	return ports.OrderQuery{WithItems: true, Limit: limit, Offset: offset}, nil
}
