// internal/core/services/alert.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/classifier"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// AlertService scans inventory for items needing attention
type AlertService struct {
	canteens  ports.CanteenRepository
	inventory ports.InventoryRepository
	cache     ports.CacheRepository
	rt        Runtime
	ttl       time.Duration
	logger    *slog.Logger
}

var _ ports.AlertService = (*AlertService)(nil)

// NewAlertService creates a new alert service. Digests are cached for ttl.
func NewAlertService(canteens ports.CanteenRepository, inventory ports.InventoryRepository, cache ports.CacheRepository, rt Runtime, ttl time.Duration, logger *slog.Logger) *AlertService {
	return &AlertService{
		canteens:  canteens,
		inventory: inventory,
		cache:     cache,
		rt:        rt,
		ttl:       ttl,
		logger:    logger.With(slog.String("service", "alert")),
	}
}

// AlertsKey is the cache key of a canteen's latest alert digest
func AlertsKey(canteenID uuid.UUID) string {
	return ports.CanteenKey(ports.PrefixAlerts, canteenID)
}

// ScanAlerts classifies the canteen's inventory and caches the attention
// digest. Notify is set when the canteen wants stock alerts and something
// needs attention.
func (s *AlertService) ScanAlerts(ctx context.Context, canteenID uuid.UUID) (*ports.AlertDigest, error) {
	canteen, err := s.canteens.FindByID(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get canteen: %w", err)
	}
	rows, err := s.inventory.ListActive(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	now := s.rt.now(ctx, canteenID)
	classified := classifyAllAt(rows, now)
	attention := classifier.NeedingAttention(classified)
	sortByUrgency(attention)

	digest := &ports.AlertDigest{
		CanteenID: canteenID,
		Items:     attention,
		Summary:   report.SummarizeInventory(classified),
		Notify:    canteen.LowStockAlerts && len(attention) > 0,
		ScannedAt: now,
	}

	if err := s.cache.SetWithTTL(ctx, AlertsKey(canteenID), digest, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "failed to cache alert digest",
			slog.String("canteen_id", canteenID.String()),
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "inventory scanned",
		slog.String("canteen_id", canteenID.String()),
		slog.Int("items", len(classified)),
		slog.Int("attention", len(attention)),
		slog.Bool("notify", digest.Notify))
	return digest, nil
}
