// internal/adapters/db/order_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

var orderColumns = []string{
	"id", "canteen_id", "customer_name", "customer_phone", "status", "order_type",
	"payment_method", "total_amount", "notes", "served_by", "created_at", "updated_at",
}

type orderRepository struct {
	baseRepository
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *Database, logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{newBaseRepository(db, "orders", logger)}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	var customerName, customerPhone, paymentMethod, notes *string

	err := row.Scan(
		&o.ID, &o.CanteenID, &customerName, &customerPhone, &o.Status, &o.OrderType,
		&paymentMethod, &o.TotalAmount, &notes, &o.ServedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CustomerName = deref(customerName)
	o.CustomerPhone = deref(customerPhone)
	o.PaymentMethod = deref(paymentMethod)
	o.Notes = deref(notes)
	return o, nil
}

func scanOrderItem(row pgx.Row) (*domain.OrderItem, error) {
	it := &domain.OrderItem{}
	var name, instructions *string

	err := row.Scan(
		&it.ID, &it.OrderID, &it.MenuItemID, &name, &it.Quantity,
		&it.UnitPrice, &it.TotalPrice, &instructions,
	)
	if err != nil {
		return nil, err
	}

	it.MenuItemName = deref(name)
	it.SpecialInstructions = deref(instructions)
	return it, nil
}

// Create inserts the order and its lines in one transaction
func (r *orderRepository) Create(ctx context.Context, o *domain.Order) error {
	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		q := psql.Insert(r.table).
			Columns(orderColumns...).
			Values(
				o.ID, o.CanteenID, nullIfEmpty(o.CustomerName), nullIfEmpty(o.CustomerPhone), o.Status, o.OrderType,
				nullIfEmpty(o.PaymentMethod), o.TotalAmount, nullIfEmpty(o.Notes), o.ServedBy, o.CreatedAt, o.UpdatedAt,
			)
		if _, err := execCount(ctx, tx, q); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if len(o.Items) == 0 {
			return nil
		}

		lines := psql.Insert("order_items").Columns(
			"id", "order_id", "menu_item_id", "quantity", "unit_price", "total_price", "special_instructions",
		)
		for _, it := range o.Items {
			lines = lines.Values(it.ID, o.ID, it.MenuItemID, it.Quantity, it.UnitPrice, it.TotalPrice,
				nullIfEmpty(it.SpecialInstructions))
		}
		if _, err := execCount(ctx, tx, lines); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.InfoContext(ctx, "order created",
		slog.String("id", o.ID.String()),
		slog.String("canteen_id", o.CanteenID.String()),
		slog.Int("lines", len(o.Items)))

	return nil
}

// FindByID retrieves an order with its lines
func (r *orderRepository) FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.Order, error) {
	qb := psql.Select(orderColumns...).From(r.table).
		Where(squirrel.Eq{"id": id, "canteen_id": canteenID})

	o, err := queryOne(ctx, r.db, qb, scanOrder)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	orders := []domain.Order{*o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// FindAll lists the canteen's orders, newest first
func (r *orderRepository) FindAll(ctx context.Context, canteenID uuid.UUID, query ports.OrderQuery) ([]domain.Order, error) {
	qb := psql.Select(orderColumns...).From(r.table).
		Where(squirrel.Eq{"canteen_id": canteenID}).
		OrderBy("created_at DESC")

	if len(query.Statuses) > 0 {
		qb = qb.Where(squirrel.Eq{"status": query.Statuses})
	}
	if query.Since != nil {
		qb = qb.Where(squirrel.GtOrEq{"created_at": *query.Since})
	}
	if query.Limit > 0 {
		qb = qb.Limit(uint64(query.Limit))
	}
	if query.Offset > 0 {
		qb = qb.Offset(uint64(query.Offset))
	}

	orders, err := queryMany(ctx, r.db, qb, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if query.WithItems {
		if err := r.attachItems(ctx, orders); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// attachItems loads the lines of every order in one query
func (r *orderRepository) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
	}

	qb := psql.Select(
		"oi.id", "oi.order_id", "oi.menu_item_id", "m.name", "oi.quantity",
		"oi.unit_price", "oi.total_price", "oi.special_instructions",
	).
		From("order_items oi").
		LeftJoin("menu_items m ON m.id = oi.menu_item_id").
		Where(squirrel.Eq{"oi.order_id": ids}).
		OrderBy("oi.order_id", "oi.id")

	lines, err := queryMany(ctx, r.db, qb, scanOrderItem)
	if err != nil {
		return fmt.Errorf("failed to load order items: %w", err)
	}

	for _, line := range lines {
		i := index[line.OrderID]
		orders[i].Items = append(orders[i].Items, line)
	}
	return nil
}

// UpdateStatus persists the order's status and served_by
func (r *orderRepository) UpdateStatus(ctx context.Context, o *domain.Order) error {
	q := psql.Update(r.table).
		Set("status", o.Status).
		Set("served_by", o.ServedBy).
		Set("updated_at", o.UpdatedAt).
		Where(squirrel.Eq{"id": o.ID, "canteen_id": o.CanteenID})

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("order %s: %w", o.ID, err)
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}

	r.logger.InfoContext(ctx, "order status updated",
		slog.String("id", o.ID.String()),
		slog.String("status", string(o.Status)))

	return nil
}
