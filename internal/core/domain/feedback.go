// internal/core/domain/feedback.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus tracks whether staff have answered a review
type FeedbackStatus string

// Feedback status constants
const (
	FeedbackNew       FeedbackStatus = "new"
	FeedbackPending   FeedbackStatus = "pending"
	FeedbackResponded FeedbackStatus = "responded"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a customer review of a canteen
type Feedback struct {
	ID           uuid.UUID      `json:"id"`
	CanteenID    uuid.UUID      `json:"canteen_id"`
	OrderID      *uuid.UUID     `json:"order_id,omitempty"`
	CustomerName string         `json:"customer_name,omitempty"`
	Rating       int            `json:"rating"`
	Comment      string         `json:"comment,omitempty"`
	Status       FeedbackStatus `json:"status"`
	Response     string         `json:"response,omitempty"`
	RespondedAt  *time.Time     `json:"responded_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Validate performs domain validation on the feedback
func (f *Feedback) Validate() error {
	if f.CanteenID == uuid.Nil {
		return invalid("canteen_id is required")
	}
	if f.Rating < MinRating || f.Rating > MaxRating {
		return invalid("rating must be between %d and %d", MinRating, MaxRating)
	}
	if f.Status == "" {
		f.Status = FeedbackNew
	}
	return nil
}

// Respond records a staff reply
func (f *Feedback) Respond(text string, now time.Time) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return invalid("response cannot be empty")
	}
	f.Response = text
	f.Status = FeedbackResponded
	f.RespondedAt = &now
	return nil
}
