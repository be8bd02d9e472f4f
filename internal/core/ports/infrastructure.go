// internal/core/ports/infrastructure.go
package ports

import (
	"context"
	"io"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// ObjectStorage stores generated report files
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error)
}

// TaskEnqueuer is satisfied by *asynq.Client
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// InventoryExport is the content of an inventory export file
type InventoryExport struct {
	CanteenName string                  `json:"canteen_name"`
	GeneratedAt time.Time               `json:"generated_at"`
	Summary     report.InventorySummary `json:"summary"`
	Items       []domain.ClassifiedItem `json:"items"`
}

// ExportEncoder renders an inventory export in a file format
type ExportEncoder interface {
	Encode(w io.Writer, format domain.ExportFormat, export *InventoryExport) error
}
