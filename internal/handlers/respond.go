// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

// CanteenHeader carries the tenant of every /api/v1 request
const CanteenHeader = "X-Canteen-ID"

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// base holds the response helpers shared by the resource handlers
type base struct {
	logger *slog.Logger
}

func newBase(logger *slog.Logger, name string) base {
	return base{logger: logger.With(slog.String("handler", name))}
}

func (b base) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (b base) respondError(w http.ResponseWriter, status int, message string) {
	b.respondJSON(w, status, map[string]string{"error": message})
}

// fail maps a service error onto a response. Validation errors carry their
// message to the client; anything unexpected is logged and hidden.
func (b base) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		b.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrNotFound):
		b.respondError(w, http.StatusNotFound, "Resource not found")
	default:
		b.logger.ErrorContext(r.Context(), "failed to "+action,
			slog.String("error", err.Error()))
		b.respondError(w, http.StatusInternalServerError, "Failed to "+action)
	}
}

// canteenID reads the tenant header, answering 400 when it is unusable
func (b base) canteenID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := strings.TrimSpace(r.Header.Get(CanteenHeader))
	if raw == "" {
		b.respondError(w, http.StatusBadRequest, CanteenHeader+" header is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		b.respondError(w, http.StatusBadRequest, "Invalid "+CanteenHeader+" header")
		return uuid.Nil, false
	}
	return id, true
}

// scoped resolves the canteen and the {id} path value together
func (b base) scoped(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	canteenID, ok := b.canteenID(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		b.respondError(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, uuid.Nil, false
	}
	return canteenID, id, true
}

// decode reads a JSON body into dst and runs its validate tags
func (b base) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			b.respondError(w, http.StatusBadRequest, "Request body is required")
			return false
		}
		b.respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			b.respondError(w, http.StatusBadRequest, validationMessage(verrs))
			return false
		}
		b.respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, fieldMessage(e))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "dive":
		return field + " has an invalid entry"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Date accepts either a calendar date or an RFC 3339 timestamp
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

// Ptr returns nil for an absent date
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
