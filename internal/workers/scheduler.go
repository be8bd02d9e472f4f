// internal/workers/scheduler.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/core/ports"
)

// ScheduleConfig holds the periodic task intervals. A zero interval turns
// the task off.
type ScheduleConfig struct {
	AlertScanInterval time.Duration
	DashboardInterval time.Duration
	PurgeInterval     time.Duration
}

// RegisterPeriodicTasks adds the fan-out and maintenance entries to s
func RegisterPeriodicTasks(s *asynq.Scheduler, cfg ScheduleConfig) error {
	fanOuts := []struct {
		taskType string
		every    time.Duration
	}{
		{TypeScanAlerts, cfg.AlertScanInterval},
		{TypeRefreshDashboard, cfg.DashboardInterval},
	}
	for _, f := range fanOuts {
		if f.every <= 0 {
			continue
		}
		task, err := NewFanOutTask(f.taskType)
		if err != nil {
			return err
		}
		if _, err := s.Register(everySpec(f.every), task); err != nil {
			return fmt.Errorf("failed to register %s: %w", f.taskType, err)
		}
	}

	if cfg.PurgeInterval > 0 {
		if _, err := s.Register(everySpec(cfg.PurgeInterval), NewPurgeDeletedTask()); err != nil {
			return fmt.Errorf("failed to register %s: %w", TypePurgeDeleted, err)
		}
	}
	return nil
}

func everySpec(d time.Duration) string {
	return "@every " + d.String()
}

// FanOutProcessor enqueues a per-canteen task for every active canteen
type FanOutProcessor struct {
	canteens ports.CanteenService
	enqueuer ports.TaskEnqueuer
	logger   *slog.Logger
}

// NewFanOutProcessor creates a new fan-out processor
func NewFanOutProcessor(canteens ports.CanteenService, enqueuer ports.TaskEnqueuer, logger *slog.Logger) *FanOutProcessor {
	return &FanOutProcessor{
		canteens: canteens,
		enqueuer: enqueuer,
		logger:   logger.With(slog.String("processor", "fan_out")),
	}
}

// ProcessTask handles maintenance:fan_out. Duplicates of tasks still queued
// are skipped.
func (p *FanOutProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload FanOutPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	newTask, ok := perCanteenTasks[payload.TaskType]
	if !ok {
		return fmt.Errorf("unknown per-canteen task %q: %w", payload.TaskType, asynq.SkipRetry)
	}

	ids, err := p.canteens.ActiveIDs(ctx)
	if err != nil {
		return err
	}

	enqueued, skipped := 0, 0
	var errs []error
	for _, id := range ids {
		task, err := newTask(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := p.enqueuer.EnqueueContext(ctx, task); err != nil {
			if errors.Is(err, asynq.ErrDuplicateTask) {
				skipped++
				continue
			}
			errs = append(errs, fmt.Errorf("canteen %s: %w", id, err))
			continue
		}
		enqueued++
	}

	p.logger.InfoContext(ctx, "fanned out task",
		slog.String("task_type", payload.TaskType),
		slog.Int("canteens", len(ids)),
		slog.Int("enqueued", enqueued),
		slog.Int("skipped", skipped))
	return errors.Join(errs...)
}
