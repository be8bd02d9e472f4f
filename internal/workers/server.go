// internal/workers/server.go
package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/pkg/logger"
)

// Processors groups the task handlers the worker serves
type Processors struct {
	Alerts    *StockAlertProcessor
	Dashboard *DashboardProcessor
	Reports   *ReportProcessor
	Cleanup   *CleanupProcessor
	FanOut    *FanOutProcessor
}

// NewServeMux routes every task type to its processor
func NewServeMux(p Processors, log *slog.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Use(loggingMiddleware(log))

	mux.HandleFunc(TypeScanAlerts, p.Alerts.ProcessTask)
	mux.HandleFunc(TypeRefreshDashboard, p.Dashboard.ProcessTask)
	mux.HandleFunc(TypeInventoryExport, p.Reports.ProcessTask)
	mux.HandleFunc(TypePurgeDeleted, p.Cleanup.PurgeDeleted)
	mux.HandleFunc(TypeFanOut, p.FanOut.ProcessTask)
	return mux
}

// loggingMiddleware tags the context with the task type and times each task
func loggingMiddleware(log *slog.Logger) asynq.MiddlewareFunc {
	log = log.With(slog.String("component", "worker"))
	return func(next asynq.Handler) asynq.Handler {
		return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
			ctx = context.WithValue(ctx, logger.ContextKeyTaskType, t.Type())
			start := time.Now()

			err := next.ProcessTask(ctx, t)

			attrs := []any{
				slog.String("task_type", t.Type()),
				slog.Duration("duration", time.Since(start)),
			}
			if id, ok := asynq.GetTaskID(ctx); ok {
				attrs = append(attrs, slog.String("task_id", id))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				log.ErrorContext(ctx, "task failed", attrs...)
				return err
			}
			log.DebugContext(ctx, "task done", attrs...)
			return nil
		})
	}
}
