// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
)

// Purger hard-deletes rows soft-deleted before a cutoff
type Purger interface {
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

var (
	_ Purger = (ports.InventoryRepository)(nil)
	_ Purger = (ports.MenuRepository)(nil)
)

// CleanupProcessor handles maintenance tasks
type CleanupProcessor struct {
	purgers   map[string]Purger
	clock     clock.Clock
	retention time.Duration
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor. Soft-deleted rows
// older than retention are removed for good.
func NewCleanupProcessor(inventory ports.InventoryRepository, menu ports.MenuRepository, clk clock.Clock, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	if clk == nil {
		clk = clock.System()
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}
	return &CleanupProcessor{
		purgers: map[string]Purger{
			"inventory_items": inventory,
			"menu_items":      menu,
		},
		clock:     clk,
		retention: retention,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// PurgeDeleted handles maintenance:purge_deleted. Every table is attempted
// even when one fails.
func (p *CleanupProcessor) PurgeDeleted(ctx context.Context, _ *asynq.Task) error {
	cutoff := p.clock.Now().Add(-p.retention)
	p.logger.InfoContext(ctx, "purging soft-deleted rows",
		slog.Time("cutoff", cutoff))

	var firstErr error
	for table, purger := range p.purgers {
		n, err := purger.PurgeDeleted(ctx, cutoff)
		if err != nil {
			p.logger.ErrorContext(ctx, "purge failed",
				slog.String("table", table),
				slog.String("error", err.Error()))
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to purge %s: %w", table, err)
			}
			continue
		}

		p.logger.InfoContext(ctx, "purged soft-deleted rows",
			slog.String("table", table),
			slog.Int64("rows_deleted", n))
	}
	return firstErr
}
