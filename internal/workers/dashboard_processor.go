// internal/workers/dashboard_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/core/ports"
)

// DashboardProcessor keeps cached dashboards warm
type DashboardProcessor struct {
	dashboard ports.DashboardService
	logger    *slog.Logger
}

// NewDashboardProcessor creates a new dashboard processor
func NewDashboardProcessor(dashboard ports.DashboardService, logger *slog.Logger) *DashboardProcessor {
	return &DashboardProcessor{
		dashboard: dashboard,
		logger:    logger.With(slog.String("processor", "dashboard")),
	}
}

// ProcessTask handles dashboard:refresh
func (p *DashboardProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := decodeCanteenPayload(t)
	if err != nil {
		return err
	}

	d, err := p.dashboard.Refresh(ctx, payload.CanteenID)
	if err != nil {
		return fmt.Errorf("failed to refresh dashboard: %w", err)
	}

	if len(d.Degraded) > 0 {
		// the next run or request rebuilds it
		p.logger.WarnContext(ctx, "dashboard refreshed with missing sections",
			slog.String("canteen_id", payload.CanteenID.String()),
			slog.Any("degraded", d.Degraded))
		return nil
	}

	p.logger.DebugContext(ctx, "dashboard refreshed",
		slog.String("canteen_id", payload.CanteenID.String()))
	return nil
}
