// internal/core/domain/canteen.go
package domain

import (
	"regexp"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Canteen holds a tenant's profile and operating settings
type Canteen struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Address            string    `json:"address,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Email              string    `json:"email,omitempty"`
	Timezone           string    `json:"timezone"`
	Currency           string    `json:"currency"`
	OpenTime           string    `json:"open_time,omitempty"`
	CloseTime          string    `json:"close_time,omitempty"`
	PreparationTime    int       `json:"preparation_time"`
	TableCount         int       `json:"table_count"`
	DineInEnabled      bool      `json:"dine_in_enabled"`
	TakeawayEnabled    bool      `json:"takeaway_enabled"`
	OrderNotifications bool      `json:"order_notifications"`
	LowStockAlerts     bool      `json:"low_stock_alerts"`
	DailyReports       bool      `json:"daily_reports"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Validate performs domain validation on the canteen settings
func (c *Canteen) Validate() error {
	if c.Name == "" {
		return invalid("name is required")
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return invalid("unknown timezone %q", c.Timezone)
	}
	if c.Currency == "" {
		c.Currency = "INR"
	}
	if c.OpenTime != "" && !clockTime.MatchString(c.OpenTime) {
		return invalid("open_time must be HH:MM")
	}
	if c.CloseTime != "" && !clockTime.MatchString(c.CloseTime) {
		return invalid("close_time must be HH:MM")
	}
	if c.PreparationTime < 0 || c.TableCount < 0 {
		return invalid("preparation_time and table_count cannot be negative")
	}
	return nil
}

// Location resolves the canteen time zone, falling back to UTC
func (c *Canteen) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
