// internal/workers/alert_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/core/ports"
)

// StockAlertProcessor scans a canteen's inventory and raises one warning
// per item and status
type StockAlertProcessor struct {
	alerts    ports.AlertService
	cache     ports.CacheRepository
	dedupeTTL time.Duration
	logger    *slog.Logger
}

// NewStockAlertProcessor creates a new stock alert processor. An item that
// stays in the same status is reported again after dedupeTTL.
func NewStockAlertProcessor(alerts ports.AlertService, cache ports.CacheRepository, dedupeTTL time.Duration, logger *slog.Logger) *StockAlertProcessor {
	if dedupeTTL <= 0 {
		dedupeTTL = 24 * time.Hour
	}
	return &StockAlertProcessor{
		alerts:    alerts,
		cache:     cache,
		dedupeTTL: dedupeTTL,
		logger:    logger.With(slog.String("processor", "stock_alert")),
	}
}

// ProcessTask handles inventory:scan_alerts
func (p *StockAlertProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := decodeCanteenPayload(t)
	if err != nil {
		return err
	}

	digest, err := p.alerts.ScanAlerts(ctx, payload.CanteenID)
	if err != nil {
		return fmt.Errorf("failed to scan alerts: %w", err)
	}
	if !digest.Notify {
		return nil
	}

	raised := 0
	for idx := range digest.Items {
		item := &digest.Items[idx]
		key := ports.CanteenKey(ports.PrefixAlertSent, payload.CanteenID, item.ID.String(), string(item.Status))

		fresh, err := p.cache.SetNX(ctx, key, digest.ScannedAt, p.dedupeTTL)
		if err != nil {
			// unsure whether it was sent; warn anyway
			p.logger.WarnContext(ctx, "failed to record alert",
				slog.String("key", key),
				slog.String("error", err.Error()))
			fresh = true
		}
		if !fresh {
			continue
		}

		raised++
		p.logger.WarnContext(ctx, "inventory item needs attention",
			slog.String("canteen_id", payload.CanteenID.String()),
			slog.String("item_id", item.ID.String()),
			slog.String("name", item.Name),
			slog.String("status", string(item.Status)),
			slog.String("current_stock", item.CurrentStock.String()),
			slog.String("min_stock", item.MinStock.String()))
	}

	p.logger.InfoContext(ctx, "stock alerts processed",
		slog.String("canteen_id", payload.CanteenID.String()),
		slog.Int("attention", len(digest.Items)),
		slog.Int("raised", raised))
	return nil
}
