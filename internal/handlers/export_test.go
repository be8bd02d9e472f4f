// internal/handlers/export_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/canteen-be/internal/adapters/spreadsheet"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/handlers"
	"github.com/ammerola/canteen-be/internal/workers"
	"github.com/ammerola/canteen-be/test/helpers"
	"github.com/ammerola/canteen-be/test/mocks"
)

type exportFixture struct {
	canteenID uuid.UUID
	reports   *mocks.MockReportService
	encoder   *mocks.MockExportEncoder
	enqueuer  *mocks.MockTaskEnqueuer
}

func newExportFixture(t *testing.T) *exportFixture {
	ctrl := gomock.NewController(t)
	return &exportFixture{
		canteenID: uuid.New(),
		reports:   mocks.NewMockReportService(ctrl),
		encoder:   mocks.NewMockExportEncoder(ctrl),
		enqueuer:  mocks.NewMockTaskEnqueuer(ctrl),
	}
}

func (f *exportFixture) router(encoder ports.ExportEncoder, enqueuer ports.TaskEnqueuer) *handlers.Router {
	return &handlers.Router{
		Export: handlers.NewExportHandler(f.reports, encoder, enqueuer, helpers.TestLogger()),
	}
}

func (f *exportFixture) export() *ports.InventoryExport {
	item := helpers.CreateTestInventoryItem(f.canteenID)
	item.ID = uuid.New()
	return &ports.InventoryExport{
		CanteenName: "East Wing",
		GeneratedAt: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
		Items:       []domain.ClassifiedItem{*classified(item, domain.StatusGood)},
	}
}

func TestExportHandler_ExportInventory(t *testing.T) {
	t.Run("streams_workbook", func(t *testing.T) {
		f := newExportFixture(t)
		export := f.export()
		f.reports.EXPECT().InventoryExport(gomock.Any(), f.canteenID).Return(export, nil)
		f.encoder.EXPECT().
			Encode(gomock.Any(), domain.ExportXLSX, export).
			DoAndReturn(func(w io.Writer, _ domain.ExportFormat, _ *ports.InventoryExport) error {
				_, err := io.WriteString(w, "sheet-bytes")
				return err
			})

		w := serve(f.router(f.encoder, nil), newRequest(t, http.MethodGet, "/api/v1/inventory/export", f.canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.ExportXLSX.ContentType(), w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="inventory_export_20261015_093000.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "11", w.Header().Get("Content-Length"))
		assert.Equal(t, "sheet-bytes", w.Body.String())
	})

	t.Run("json_format", func(t *testing.T) {
		f := newExportFixture(t)
		f.reports.EXPECT().InventoryExport(gomock.Any(), f.canteenID).Return(f.export(), nil)

		w := serve(f.router(spreadsheet.Encoder{}, nil),
			newRequest(t, http.MethodGet, "/api/v1/inventory/export?format=json", f.canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body ports.InventoryExport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "East Wing", body.CanteenName)
		assert.Len(t, body.Items, 1)
	})

	t.Run("unsupported_format", func(t *testing.T) {
		f := newExportFixture(t)

		w := serve(f.router(f.encoder, nil),
			newRequest(t, http.MethodGet, "/api/v1/inventory/export?format=pdf", f.canteenID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "format must be one of: xlsx, json", errorMessage(t, w))
	})

	t.Run("encoder_failure", func(t *testing.T) {
		f := newExportFixture(t)
		f.reports.EXPECT().InventoryExport(gomock.Any(), f.canteenID).Return(f.export(), nil)
		f.encoder.EXPECT().Encode(gomock.Any(), domain.ExportXLSX, gomock.Any()).Return(errors.New("disk full"))

		w := serve(f.router(f.encoder, nil), newRequest(t, http.MethodGet, "/api/v1/inventory/export", f.canteenID, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to generate export", errorMessage(t, w))
	})

	t.Run("unknown_canteen", func(t *testing.T) {
		f := newExportFixture(t)
		f.reports.EXPECT().
			InventoryExport(gomock.Any(), f.canteenID).
			Return(nil, fmt.Errorf("failed to get canteen: %w", ports.ErrNotFound))

		w := serve(f.router(f.encoder, nil), newRequest(t, http.MethodGet, "/api/v1/inventory/export", f.canteenID, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExportHandler_RequestInventoryExport(t *testing.T) {
	t.Run("queues_build_task", func(t *testing.T) {
		f := newExportFixture(t)
		job, err := domain.NewExportJob(f.canteenID, domain.ExportJSON, time.Now())
		require.NoError(t, err)

		f.reports.EXPECT().CreateInventoryExport(gomock.Any(), f.canteenID, domain.ExportJSON).Return(job, nil)
		f.enqueuer.EXPECT().
			EnqueueContext(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
				assert.Equal(t, workers.TypeInventoryExport, task.Type())

				var payload workers.ExportPayload
				require.NoError(t, json.Unmarshal(task.Payload(), &payload))
				assert.Equal(t, f.canteenID, payload.CanteenID)
				assert.Equal(t, job.ID, payload.ExportID)
				return &asynq.TaskInfo{ID: job.ID.String()}, nil
			})

		w := serve(f.router(f.encoder, f.enqueuer),
			newRequest(t, http.MethodPost, "/api/v1/reports/inventory?format=json", f.canteenID, nil))

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "/api/v1/reports/inventory/"+job.ID.String(), w.Header().Get("Location"))

		var body domain.ExportJob
		decodeBody(t, w, &body)
		assert.Equal(t, domain.ExportPending, body.Status)
	})

	t.Run("enqueue_failure_marks_job_failed", func(t *testing.T) {
		f := newExportFixture(t)
		job, err := domain.NewExportJob(f.canteenID, domain.ExportXLSX, time.Now())
		require.NoError(t, err)
		queueErr := errors.New("redis unavailable")

		f.reports.EXPECT().CreateInventoryExport(gomock.Any(), f.canteenID, domain.ExportXLSX).Return(job, nil)
		f.enqueuer.EXPECT().EnqueueContext(gomock.Any(), gomock.Any()).Return(nil, queueErr)
		f.reports.EXPECT().MarkFailed(gomock.Any(), f.canteenID, job.ID, queueErr).Return(nil)

		w := serve(f.router(f.encoder, f.enqueuer),
			newRequest(t, http.MethodPost, "/api/v1/reports/inventory", f.canteenID, nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Failed to queue export", errorMessage(t, w))
	})

	t.Run("queue_not_configured", func(t *testing.T) {
		f := newExportFixture(t)

		w := serve(f.router(f.encoder, nil),
			newRequest(t, http.MethodPost, "/api/v1/reports/inventory", f.canteenID, nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestExportHandler_ExportStatus(t *testing.T) {
	f := newExportFixture(t)
	exportID := uuid.New()
	target := "/api/v1/reports/inventory/" + exportID.String()

	t.Run("ready_job_has_download_url", func(t *testing.T) {
		f.reports.EXPECT().
			ExportStatus(gomock.Any(), f.canteenID, exportID).
			Return(&domain.ExportJob{
				ID:          exportID,
				CanteenID:   f.canteenID,
				Status:      domain.ExportReady,
				DownloadURL: "https://files.example.com/exports/inventory.xlsx",
			}, nil)

		w := serve(f.router(f.encoder, nil), newRequest(t, http.MethodGet, target, f.canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body domain.ExportJob
		decodeBody(t, w, &body)
		assert.Equal(t, domain.ExportReady, body.Status)
		assert.True(t, strings.HasPrefix(body.DownloadURL, "https://"))
	})

	t.Run("unknown_job", func(t *testing.T) {
		f.reports.EXPECT().
			ExportStatus(gomock.Any(), f.canteenID, exportID).
			Return(nil, ports.ErrNotFound)

		w := serve(f.router(f.encoder, nil), newRequest(t, http.MethodGet, target, f.canteenID, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
