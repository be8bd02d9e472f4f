// internal/handlers/export.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/workers"
)

// ExportHandler handles inventory exports, both streamed and queued
type ExportHandler struct {
	base
	reports  ports.ReportService
	encoder  ports.ExportEncoder
	enqueuer ports.TaskEnqueuer
}

// NewExportHandler creates a new export handler. A nil enqueuer disables
// queued exports.
func NewExportHandler(reports ports.ReportService, encoder ports.ExportEncoder, enqueuer ports.TaskEnqueuer, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		base:     newBase(logger, "export"),
		reports:  reports,
		encoder:  encoder,
		enqueuer: enqueuer,
	}
}

// ExportInventory handles GET /api/v1/inventory/export?format=xlsx|json
func (h *ExportHandler) ExportInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}

	format, ok := h.parseFormat(w, r)
	if !ok {
		return
	}

	export, err := h.reports.InventoryExport(ctx, canteenID)
	if err != nil {
		h.fail(w, r, err, "retrieve inventory data")
		return
	}

	var buf bytes.Buffer
	if err := h.encoder.Encode(&buf, format, export); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode export",
			slog.String("format", string(format)),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("inventory_export_%s.%s", export.GeneratedAt.Format("20060102_150405"), format)
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "inventory export completed",
		slog.String("canteen_id", canteenID.String()),
		slog.Int("total_rows", len(export.Items)),
		slog.String("filename", filename))
}

// RequestInventoryExport handles POST /api/v1/reports/inventory?format=
func (h *ExportHandler) RequestInventoryExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	canteenID, ok := h.canteenID(w, r)
	if !ok {
		return
	}
	if h.enqueuer == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Background exports are not available")
		return
	}

	format, ok := h.parseFormat(w, r)
	if !ok {
		return
	}

	job, err := h.reports.CreateInventoryExport(ctx, canteenID, format)
	if err != nil {
		h.fail(w, r, err, "create export")
		return
	}

	task, err := workers.NewInventoryExportTask(canteenID, job.ID)
	if err == nil {
		_, err = h.enqueuer.EnqueueContext(ctx, task)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue export",
			slog.String("export_id", job.ID.String()),
			slog.String("error", err.Error()))
		if markErr := h.reports.MarkFailed(ctx, canteenID, job.ID, err); markErr != nil {
			h.logger.ErrorContext(ctx, "failed to mark export failed",
				slog.String("export_id", job.ID.String()),
				slog.String("error", markErr.Error()))
		}
		h.respondError(w, http.StatusServiceUnavailable, "Failed to queue export")
		return
	}

	h.logger.InfoContext(ctx, "inventory export queued",
		slog.String("canteen_id", canteenID.String()),
		slog.String("export_id", job.ID.String()),
		slog.String("format", string(job.Format)))

	w.Header().Set("Location", "/api/v1/reports/inventory/"+job.ID.String())
	h.respondJSON(w, http.StatusAccepted, job)
}

// ExportStatus handles GET /api/v1/reports/inventory/{id}
func (h *ExportHandler) ExportStatus(w http.ResponseWriter, r *http.Request) {
	canteenID, id, ok := h.scoped(w, r)
	if !ok {
		return
	}

	job, err := h.reports.ExportStatus(r.Context(), canteenID, id)
	if err != nil {
		h.fail(w, r, err, "load export status")
		return
	}

	h.respondJSON(w, http.StatusOK, job)
}

func (h *ExportHandler) parseFormat(w http.ResponseWriter, r *http.Request) (domain.ExportFormat, bool) {
	format := domain.ExportFormat(r.URL.Query().Get("format"))
	switch format {
	case "":
		return domain.ExportXLSX, true
	case domain.ExportXLSX, domain.ExportJSON:
		return format, true
	default:
		h.respondError(w, http.StatusBadRequest, "format must be one of: xlsx, json")
		return "", false
	}
}
