// internal/handlers/feedback.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// FeedbackHandler handles customer feedback HTTP requests
type FeedbackHandler struct {
	base
	service ports.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service ports.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		base:    newBase(logger, "feedback"),
		service: service,
	}
}

// ListFeedback handles GET /api/v1/feedback?rating=&status=
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	query := ports.FeedbackQuery{}
	if raw := r.URL.Query().Get("rating"); raw != "" && raw != "all" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "rating must be a number")
			return
		}
		query.Rating = rating
	}
	if status := r.URL.Query().Get("status"); status != "" && status != "all" {
		query.Status = domain.FeedbackStatus(status)
	}

	result, err := h.service.List(r.Context(), canteenID, query)
	if err != nil {
		h.fail(w, r, err, "list feedback")
		return
	}
	if result.Items == nil {
		result.Items = []domain.Feedback{}
	}

	h.respondJSON(w, http.StatusOK, result)
}

// SubmitFeedback handles POST /api/v1/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	var req FeedbackRequest
	if !h.decode(w, r, &req) {
		return
	}

	fb, err := h.service.Submit(r.Context(), canteenID, &domain.Feedback{
		OrderID:      req.OrderID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		h.fail(w, r, err, "submit feedback")
		return
	}

	h.respondJSON(w, http.StatusCreated, fb)
}

// RespondFeedback handles POST /api/v1/feedback/{id}/respond
func (h *FeedbackHandler) RespondFeedback(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	var req FeedbackResponseRequest
	if !h.decode(w, r, &req) {
		return
	}

	fb, err := h.service.Respond(r.Context(), canteenID, id, req.Response)
	if err != nil {
		h.fail(w, r, err, "respond to feedback")
		return
	}

	h.respondJSON(w, http.StatusOK, fb)
}

// FeedbackRequest represents the request body for new feedback
type FeedbackRequest struct {
	OrderID      *uuid.UUID `json:"order_id"`
	CustomerName string     `json:"customer_name" validate:"max=200"`
	Rating       int        `json:"rating" validate:"gte=1,lte=5"`
	Comment      string     `json:"comment" validate:"max=2000"`
}

// FeedbackResponseRequest represents a staff reply
type FeedbackResponseRequest struct {
	Response string `json:"response" validate:"required,max=2000"`
}
