// internal/core/domain/export.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExportFormat is the file format of a generated report
type ExportFormat string

// Export format constants
const (
	ExportXLSX ExportFormat = "xlsx"
	ExportJSON ExportFormat = "json"
)

// ContentType returns the MIME type of the format
func (f ExportFormat) ContentType() string {
	if f == ExportJSON {
		return "application/json"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportStatus tracks an export through the worker
type ExportStatus string

// Export status constants
const (
	ExportPending    ExportStatus = "pending"
	ExportProcessing ExportStatus = "processing"
	ExportReady      ExportStatus = "ready"
	ExportFailed     ExportStatus = "failed"
)

// ExportJob describes an asynchronous report export
type ExportJob struct {
	ID          uuid.UUID    `json:"id"`
	CanteenID   uuid.UUID    `json:"canteen_id"`
	Format      ExportFormat `json:"format"`
	Status      ExportStatus `json:"status"`
	ObjectKey   string       `json:"object_key,omitempty"`
	DownloadURL string       `json:"download_url,omitempty"`
	RowCount    int          `json:"row_count"`
	Error       string       `json:"error,omitempty"`
	RequestedAt time.Time    `json:"requested_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// NewExportJob creates a pending export
func NewExportJob(canteenID uuid.UUID, format ExportFormat, now time.Time) (*ExportJob, error) {
	if canteenID == uuid.Nil {
		return nil, invalid("canteen_id is required")
	}
	if format == "" {
		format = ExportXLSX
	}
	if format != ExportXLSX && format != ExportJSON {
		return nil, invalid("unsupported export format %q", format)
	}
	return &ExportJob{
		ID:          uuid.New(),
		CanteenID:   canteenID,
		Format:      format,
		Status:      ExportPending,
		RequestedAt: now,
	}, nil
}

// ObjectKeyFor returns the storage key for the export file
func (e *ExportJob) ObjectKeyFor() string {
	return fmt.Sprintf("exports/%s/inventory_%s_%s.%s",
		e.CanteenID, e.RequestedAt.Format("20060102_150405"), e.ID.String()[:8], e.Format)
}

// Complete marks the export ready
func (e *ExportJob) Complete(key string, rows int, now time.Time) {
	e.Status = ExportReady
	e.ObjectKey = key
	e.RowCount = rows
	e.Error = ""
	e.CompletedAt = &now
}

// Fail marks the export failed with cause
func (e *ExportJob) Fail(cause error, now time.Time) {
	e.Status = ExportFailed
	if cause != nil {
		e.Error = cause.Error()
	}
	e.CompletedAt = &now
}
