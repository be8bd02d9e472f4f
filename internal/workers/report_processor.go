// internal/workers/report_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/core/ports"
)

// ReportProcessor builds asynchronous inventory exports
type ReportProcessor struct {
	reports ports.ReportService
	logger  *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(reports ports.ReportService, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		reports: reports,
		logger:  logger.With(slog.String("processor", "report")),
	}
}

// ProcessTask handles report:inventory_export. The job is marked failed
// once the last retry fails.
func (p *ReportProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.CanteenID == uuid.Nil || payload.ExportID == uuid.Nil {
		return fmt.Errorf("payload has no canteen_id or export_id: %w", asynq.SkipRetry)
	}

	job, err := p.reports.BuildInventoryExport(ctx, payload.CanteenID, payload.ExportID)
	if err == nil {
		p.logger.InfoContext(ctx, "export built",
			slog.String("canteen_id", payload.CanteenID.String()),
			slog.String("export_id", payload.ExportID.String()),
			slog.Int("rows", job.RowCount))
		return nil
	}

	if errors.Is(err, ports.ErrNotFound) {
		// job record expired or never existed
		return fmt.Errorf("export %s: %v: %w", payload.ExportID, err, asynq.SkipRetry)
	}

	if lastAttempt(ctx) {
		if markErr := p.reports.MarkFailed(ctx, payload.CanteenID, payload.ExportID, err); markErr != nil {
			p.logger.ErrorContext(ctx, "failed to mark export failed",
				slog.String("export_id", payload.ExportID.String()),
				slog.String("error", markErr.Error()))
		}
	}
	return fmt.Errorf("failed to build export: %w", err)
}

// lastAttempt reports whether the running task will not be retried after
// a failure. Outside a worker it is always the last attempt.
func lastAttempt(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return true
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return true
	}
	return retried >= maxRetry
}
