// internal/adapters/db/feedback_repository.go
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

var feedbackColumns = []string{
	"id", "canteen_id", "order_id", "customer_name", "rating", "comment",
	"status", "response", "responded_at", "created_at",
}

type feedbackRepository struct {
	baseRepository
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *Database, logger *slog.Logger) ports.FeedbackRepository {
	return &feedbackRepository{newBaseRepository(db, "feedback", logger)}
}

func scanFeedback(row pgx.Row) (*domain.Feedback, error) {
	f := &domain.Feedback{}
	var customerName, comment, response *string

	err := row.Scan(
		&f.ID, &f.CanteenID, &f.OrderID, &customerName, &f.Rating, &comment,
		&f.Status, &response, &f.RespondedAt, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	f.CustomerName = deref(customerName)
	f.Comment = deref(comment)
	f.Response = deref(response)
	return f, nil
}

// Save stores a new review
func (r *feedbackRepository) Save(ctx context.Context, f *domain.Feedback) error {
	q := psql.Insert(r.table).
		Columns(feedbackColumns...).
		Values(
			f.ID, f.CanteenID, f.OrderID, nullIfEmpty(f.CustomerName), f.Rating, nullIfEmpty(f.Comment),
			f.Status, nullIfEmpty(f.Response), f.RespondedAt, f.CreatedAt,
		)

	if _, err := execCount(ctx, r.db, q); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// FindByID retrieves a review of the canteen
func (r *feedbackRepository) FindByID(ctx context.Context, canteenID, id uuid.UUID) (*domain.Feedback, error) {
	qb := psql.Select(feedbackColumns...).From(r.table).
		Where(squirrel.Eq{"id": id, "canteen_id": canteenID})

	f, err := queryOne(ctx, r.db, qb, scanFeedback)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("feedback %s: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return f, nil
}

// FindAll lists reviews newest first. Zero-valued filters are ignored.
func (r *feedbackRepository) FindAll(ctx context.Context, canteenID uuid.UUID, query ports.FeedbackQuery) ([]domain.Feedback, error) {
	qb := psql.Select(feedbackColumns...).From(r.table).
		Where(squirrel.Eq{"canteen_id": canteenID}).
		OrderBy("created_at DESC")

	if query.Rating > 0 {
		qb = qb.Where(squirrel.Eq{"rating": query.Rating})
	}
	if query.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": query.Status})
	}

	list, err := queryMany(ctx, r.db, qb, scanFeedback)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return list, nil
}

// UpdateResponse stores the staff reply
func (r *feedbackRepository) UpdateResponse(ctx context.Context, f *domain.Feedback) error {
	q := psql.Update(r.table).
		Set("status", f.Status).
		Set("response", nullIfEmpty(f.Response)).
		Set("responded_at", f.RespondedAt).
		Where(squirrel.Eq{"id": f.ID, "canteen_id": f.CanteenID})

	if _, err := execAffecting(ctx, r.db, q); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("feedback %s: %w", f.ID, err)
		}
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return nil
}
