// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeScanAlerts       = "inventory:scan_alerts"
	TypeRefreshDashboard = "dashboard:refresh"
	TypeInventoryExport  = "report:inventory_export"
	TypePurgeDeleted     = "maintenance:purge_deleted"
	TypeFanOut           = "maintenance:fan_out"
)

// Queue names, matching ASYNQ_QUEUES
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// CanteenPayload addresses a task to one canteen
type CanteenPayload struct {
	CanteenID uuid.UUID `json:"canteen_id"`
}

// ExportPayload identifies an export job
type ExportPayload struct {
	CanteenID uuid.UUID `json:"canteen_id"`
	ExportID  uuid.UUID `json:"export_id"`
}

// FanOutPayload names the per-canteen task a periodic run enqueues
type FanOutPayload struct {
	TaskType string `json:"task_type"`
}

// NewScanAlertsTask creates an alert scan for one canteen. Scans of the
// same canteen are deduplicated while one is queued.
func NewScanAlertsTask(canteenID uuid.UUID) (*asynq.Task, error) {
	return newCanteenTask(TypeScanAlerts, canteenID,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
		asynq.Unique(10*time.Minute))
}

// NewRefreshDashboardTask creates a dashboard rebuild for one canteen
func NewRefreshDashboardTask(canteenID uuid.UUID) (*asynq.Task, error) {
	return newCanteenTask(TypeRefreshDashboard, canteenID,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(time.Minute),
		asynq.Unique(5*time.Minute))
}

// NewInventoryExportTask creates the build step of an export job
func NewInventoryExportTask(canteenID, exportID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportPayload{CanteenID: canteenID, ExportID: exportID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeInventoryExport, payload,
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
		asynq.TaskID(exportID.String())), nil
}

// NewPurgeDeletedTask creates a purge of soft-deleted rows
func NewPurgeDeletedTask() *asynq.Task {
	return asynq.NewTask(TypePurgeDeleted, nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute))
}

// NewFanOutTask creates the periodic task that enqueues taskType for every
// active canteen
func NewFanOutTask(taskType string) (*asynq.Task, error) {
	if _, ok := perCanteenTasks[taskType]; !ok {
		return nil, fmt.Errorf("task type %q is not per-canteen", taskType)
	}
	payload, err := json.Marshal(FanOutPayload{TaskType: taskType})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeFanOut, payload, asynq.Queue(QueueDefault), asynq.MaxRetry(1)), nil
}

var perCanteenTasks = map[string]func(uuid.UUID) (*asynq.Task, error){
	TypeScanAlerts:       NewScanAlertsTask,
	TypeRefreshDashboard: NewRefreshDashboardTask,
}

func newCanteenTask(typename string, canteenID uuid.UUID, opts ...asynq.Option) (*asynq.Task, error) {
	payload, err := json.Marshal(CanteenPayload{CanteenID: canteenID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(typename, payload, opts...), nil
}

func decodeCanteenPayload(t *asynq.Task) (CanteenPayload, error) {
	var p CanteenPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.CanteenID == uuid.Nil {
		return p, fmt.Errorf("payload has no canteen_id: %w", asynq.SkipRetry)
	}
	return p, nil
}
