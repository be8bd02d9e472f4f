// internal/core/services/report.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
)

// ReportConfig holds export settings
type ReportConfig struct {
	JobTTL        time.Duration // how long export jobs stay queryable
	PresignExpiry time.Duration
}

// ReportService builds inventory exports and tracks the asynchronous ones
type ReportService struct {
	canteens  ports.CanteenRepository
	inventory ports.InventoryRepository
	cache     ports.CacheRepository
	storage   ports.ObjectStorage
	encoder   ports.ExportEncoder
	rt        Runtime
	cfg       ReportConfig
	logger    *slog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(
	canteens ports.CanteenRepository,
	inventory ports.InventoryRepository,
	cache ports.CacheRepository,
	storage ports.ObjectStorage,
	encoder ports.ExportEncoder,
	rt Runtime,
	cfg ReportConfig,
	logger *slog.Logger,
) *ReportService {
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 24 * time.Hour
	}
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = 15 * time.Minute
	}
	return &ReportService{
		canteens:  canteens,
		inventory: inventory,
		cache:     cache,
		storage:   storage,
		encoder:   encoder,
		rt:        rt,
		cfg:       cfg,
		logger:    logger.With(slog.String("service", "report")),
	}
}

func exportKey(canteenID, exportID uuid.UUID) string {
	return ports.CanteenKey(ports.PrefixExport, canteenID, exportID.String())
}

// InventoryExport assembles the classified inventory of a canteen
func (s *ReportService) InventoryExport(ctx context.Context, canteenID uuid.UUID) (*ports.InventoryExport, error) {
	canteen, err := s.canteens.FindByID(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get canteen: %w", err)
	}
	rows, err := s.inventory.ListActive(ctx, canteenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}

	now := s.rt.now(ctx, canteenID)
	items := classifyAllAt(rows, now)
	return &ports.InventoryExport{
		CanteenName: canteen.Name,
		GeneratedAt: now,
		Summary:     report.SummarizeInventory(items),
		Items:       items,
	}, nil
}

// CreateInventoryExport records a pending export job. The caller enqueues
// the work.
func (s *ReportService) CreateInventoryExport(ctx context.Context, canteenID uuid.UUID, format domain.ExportFormat) (*domain.ExportJob, error) {
	job, err := domain.NewExportJob(canteenID, format, s.rt.now(ctx, canteenID))
	if err != nil {
		return nil, err
	}
	if err := s.saveJob(ctx, job); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "inventory export requested",
		slog.String("canteen_id", canteenID.String()),
		slog.String("export_id", job.ID.String()),
		slog.String("format", string(job.Format)))
	return job, nil
}

// BuildInventoryExport renders the export file and uploads it. Ready jobs
// are returned untouched so retried tasks do not upload twice.
func (s *ReportService) BuildInventoryExport(ctx context.Context, canteenID, exportID uuid.UUID) (*domain.ExportJob, error) {
	job, err := s.loadJob(ctx, canteenID, exportID)
	if err != nil {
		return nil, err
	}
	if job.Status == domain.ExportReady {
		return job, nil
	}
	if s.storage == nil {
		return nil, errors.New("report storage is not configured")
	}

	job.Status = domain.ExportProcessing
	if err := s.saveJob(ctx, job); err != nil {
		return nil, err
	}

	start := time.Now()
	export, err := s.InventoryExport(ctx, canteenID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, job.Format, export); err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	size := buf.Len()

	key := job.ObjectKeyFor()
	if _, err := s.storage.Upload(ctx, key, &buf, job.Format.ContentType()); err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	job.Complete(key, len(export.Items), s.rt.now(ctx, canteenID))
	if err := s.saveJob(ctx, job); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "inventory export ready",
		slog.String("canteen_id", canteenID.String()),
		slog.String("export_id", exportID.String()),
		slog.String("key", key),
		slog.Int("rows", job.RowCount),
		slog.Int("bytes", size),
		slog.Duration("duration", time.Since(start)))
	return job, nil
}

// MarkFailed records that an export will not complete
func (s *ReportService) MarkFailed(ctx context.Context, canteenID, exportID uuid.UUID, cause error) error {
	job, err := s.loadJob(ctx, canteenID, exportID)
	if err != nil {
		return err
	}
	job.Fail(cause, s.rt.now(ctx, canteenID))
	if err := s.saveJob(ctx, job); err != nil {
		return err
	}

	s.logger.WarnContext(ctx, "inventory export failed",
		slog.String("canteen_id", canteenID.String()),
		slog.String("export_id", exportID.String()),
		slog.String("error", job.Error))
	return nil
}

// ExportStatus reads an export job back, with a download link once ready
func (s *ReportService) ExportStatus(ctx context.Context, canteenID, exportID uuid.UUID) (*domain.ExportJob, error) {
	job, err := s.loadJob(ctx, canteenID, exportID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.ExportReady || s.storage == nil {
		return job, nil
	}

	url, err := s.storage.GetPresignedURL(ctx, job.ObjectKey, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign download url: %w", err)
	}
	job.DownloadURL = url
	return job, nil
}

func (s *ReportService) loadJob(ctx context.Context, canteenID, exportID uuid.UUID) (*domain.ExportJob, error) {
	var job domain.ExportJob
	if err := s.cache.Get(ctx, exportKey(canteenID, exportID), &job); err != nil {
		if errors.Is(err, ports.ErrCacheMiss) {
			return nil, fmt.Errorf("export %s: %w", exportID, ports.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load export: %w", err)
	}
	return &job, nil
}

func (s *ReportService) saveJob(ctx context.Context, job *domain.ExportJob) error {
	if err := s.cache.SetWithTTL(ctx, exportKey(job.CanteenID, job.ID), job, s.cfg.JobTTL); err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}
	return nil
}
