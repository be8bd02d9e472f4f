package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/core/report"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
	"github.com/ammerola/canteen-be/internal/workers"
	"github.com/ammerola/canteen-be/test/helpers"
	"github.com/ammerola/canteen-be/test/mocks"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func attentionItem(name string, status domain.InventoryStatus) domain.ClassifiedItem {
	item := helpers.CreateTestInventoryItem(uuid.New(), func(i *domain.InventoryItem) {
		i.ID = uuid.New()
		i.Name = name
		i.CurrentStock = decimal.NewFromInt(3)
	})
	return domain.ClassifiedItem{InventoryItem: *item, Status: status}
}

func TestStockAlertProcessor(t *testing.T) {
	canteenID := uuid.New()
	task, err := workers.NewScanAlertsTask(canteenID)
	require.NoError(t, err)

	t.Run("raises_each_item_once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alerts := mocks.NewMockAlertService(ctrl)
		rds := helpers.SetupTestRedis(t)
		p := workers.NewStockAlertProcessor(alerts, rds.Cache, time.Hour, helpers.TestLogger())

		milk := attentionItem("Milk", domain.StatusCritical)
		digest := &ports.AlertDigest{
			CanteenID: canteenID,
			Items:     []domain.ClassifiedItem{milk},
			Notify:    true,
			ScannedAt: testNow,
		}
		alerts.EXPECT().ScanAlerts(gomock.Any(), canteenID).Return(digest, nil).Times(2)

		require.NoError(t, p.ProcessTask(context.Background(), task))
		key := ports.CanteenKey(ports.PrefixAlertSent, canteenID, milk.ID.String(), string(domain.StatusCritical))
		assert.True(t, rds.Server.Exists(key))
		assert.Equal(t, time.Hour, rds.Server.TTL(key))

		// second scan finds the marker and stays quiet
		require.NoError(t, p.ProcessTask(context.Background(), task))
		assert.Len(t, rds.Server.Keys(), 1)
	})

	t.Run("status_change_raises_again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alerts := mocks.NewMockAlertService(ctrl)
		rds := helpers.SetupTestRedis(t)
		p := workers.NewStockAlertProcessor(alerts, rds.Cache, time.Hour, helpers.TestLogger())

		low := attentionItem("Oil", domain.StatusLowStock)
		critical := low
		critical.Status = domain.StatusCritical
		gomock.InOrder(
			alerts.EXPECT().ScanAlerts(gomock.Any(), canteenID).
				Return(&ports.AlertDigest{Items: []domain.ClassifiedItem{low}, Notify: true}, nil),
			alerts.EXPECT().ScanAlerts(gomock.Any(), canteenID).
				Return(&ports.AlertDigest{Items: []domain.ClassifiedItem{critical}, Notify: true}, nil),
		)

		require.NoError(t, p.ProcessTask(context.Background(), task))
		require.NoError(t, p.ProcessTask(context.Background(), task))
		assert.Len(t, rds.Server.Keys(), 2)
	})

	t.Run("notifications_off", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alerts := mocks.NewMockAlertService(ctrl)
		cache := mocks.NewMockCacheRepository(ctrl)
		p := workers.NewStockAlertProcessor(alerts, cache, time.Hour, helpers.TestLogger())

		alerts.EXPECT().ScanAlerts(gomock.Any(), canteenID).Return(&ports.AlertDigest{
			Items: []domain.ClassifiedItem{attentionItem("Milk", domain.StatusCritical)},
		}, nil)

		assert.NoError(t, p.ProcessTask(context.Background(), task))
	})

	t.Run("scan_error_is_retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alerts := mocks.NewMockAlertService(ctrl)
		p := workers.NewStockAlertProcessor(alerts, mocks.NewMockCacheRepository(ctrl), time.Hour, helpers.TestLogger())

		alerts.EXPECT().ScanAlerts(gomock.Any(), canteenID).Return(nil, errors.New("pool exhausted"))

		err := p.ProcessTask(context.Background(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad_payload_is_not_retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		p := workers.NewStockAlertProcessor(mocks.NewMockAlertService(ctrl), mocks.NewMockCacheRepository(ctrl), time.Hour, helpers.TestLogger())

		err := p.ProcessTask(context.Background(), asynq.NewTask(workers.TypeScanAlerts, []byte(`{"canteen_id":""}`)))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestDashboardProcessor(t *testing.T) {
	canteenID := uuid.New()
	task, err := workers.NewRefreshDashboardTask(canteenID)
	require.NoError(t, err)

	t.Run("refreshes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := mocks.NewMockDashboardService(ctrl)
		dashboard.EXPECT().Refresh(gomock.Any(), canteenID).Return(&report.Dashboard{}, nil)

		p := workers.NewDashboardProcessor(dashboard, helpers.TestLogger())
		assert.NoError(t, p.ProcessTask(context.Background(), task))
	})

	t.Run("degraded_is_not_an_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dashboard := mocks.NewMockDashboardService(ctrl)
		dashboard.EXPECT().Refresh(gomock.Any(), canteenID).
			Return(&report.Dashboard{Degraded: []string{report.SectionOrders}}, nil)

		p := workers.NewDashboardProcessor(dashboard, helpers.TestLogger())
		assert.NoError(t, p.ProcessTask(context.Background(), task))
	})
}

func TestReportProcessor(t *testing.T) {
	canteenID, exportID := uuid.New(), uuid.New()
	task, err := workers.NewInventoryExportTask(canteenID, exportID)
	require.NoError(t, err)

	t.Run("builds_export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().BuildInventoryExport(gomock.Any(), canteenID, exportID).
			Return(&domain.ExportJob{ID: exportID, Status: domain.ExportReady, RowCount: 12}, nil)

		p := workers.NewReportProcessor(reports, helpers.TestLogger())
		assert.NoError(t, p.ProcessTask(context.Background(), task))
	})

	t.Run("final_failure_marks_job_failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		buildErr := errors.New("bucket unreachable")
		reports.EXPECT().BuildInventoryExport(gomock.Any(), canteenID, exportID).Return(nil, buildErr)
		reports.EXPECT().MarkFailed(gomock.Any(), canteenID, exportID, buildErr).Return(nil)

		p := workers.NewReportProcessor(reports, helpers.TestLogger())
		err := p.ProcessTask(context.Background(), task)
		assert.ErrorIs(t, err, buildErr)
	})

	t.Run("expired_job_is_not_retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reports := mocks.NewMockReportService(ctrl)
		reports.EXPECT().BuildInventoryExport(gomock.Any(), canteenID, exportID).Return(nil, ports.ErrNotFound)

		p := workers.NewReportProcessor(reports, helpers.TestLogger())
		assert.ErrorIs(t, p.ProcessTask(context.Background(), task), asynq.SkipRetry)
	})
}

func TestCleanupProcessor_PurgeDeleted(t *testing.T) {
	retention := 30 * 24 * time.Hour
	cutoff := testNow.Add(-retention)

	t.Run("purges_every_table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inventory := mocks.NewMockInventoryRepository(ctrl)
		menu := mocks.NewMockMenuRepository(ctrl)
		inventory.EXPECT().PurgeDeleted(gomock.Any(), cutoff).Return(int64(4), nil)
		menu.EXPECT().PurgeDeleted(gomock.Any(), cutoff).Return(int64(1), nil)

		p := workers.NewCleanupProcessor(inventory, menu, clock.Fixed(testNow), retention, helpers.TestLogger())
		assert.NoError(t, p.PurgeDeleted(context.Background(), workers.NewPurgeDeletedTask()))
	})

	t.Run("one_failure_does_not_stop_the_rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inventory := mocks.NewMockInventoryRepository(ctrl)
		menu := mocks.NewMockMenuRepository(ctrl)
		inventory.EXPECT().PurgeDeleted(gomock.Any(), cutoff).Return(int64(0), errors.New("lock timeout"))
		menu.EXPECT().PurgeDeleted(gomock.Any(), cutoff).Return(int64(2), nil)

		p := workers.NewCleanupProcessor(inventory, menu, clock.Fixed(testNow), retention, helpers.TestLogger())
		err := p.PurgeDeleted(context.Background(), workers.NewPurgeDeletedTask())
		assert.ErrorContains(t, err, "inventory_items")
	})
}

func TestFanOutProcessor(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	t.Run("enqueues_per_canteen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		canteens := mocks.NewMockCanteenService(ctrl)
		enqueuer := mocks.NewMockTaskEnqueuer(ctrl)
		canteens.EXPECT().ActiveIDs(gomock.Any()).Return(ids, nil)

		var seen []uuid.UUID
		enqueuer.EXPECT().EnqueueContext(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
				assert.Equal(t, workers.TypeScanAlerts, task.Type())
				var p workers.CanteenPayload
				require.NoError(t, json.Unmarshal(task.Payload(), &p))
				seen = append(seen, p.CanteenID)
				if p.CanteenID == ids[1] {
					return nil, asynq.ErrDuplicateTask
				}
				return &asynq.TaskInfo{}, nil
			}).Times(3)

		fan, err := workers.NewFanOutTask(workers.TypeScanAlerts)
		require.NoError(t, err)

		p := workers.NewFanOutProcessor(canteens, enqueuer, helpers.TestLogger())
		require.NoError(t, p.ProcessTask(context.Background(), fan))
		assert.Equal(t, ids, seen)
	})

	t.Run("enqueue_failure_is_reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		canteens := mocks.NewMockCanteenService(ctrl)
		enqueuer := mocks.NewMockTaskEnqueuer(ctrl)
		canteens.EXPECT().ActiveIDs(gomock.Any()).Return(ids[:1], nil)
		enqueuer.EXPECT().EnqueueContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		fan, err := workers.NewFanOutTask(workers.TypeRefreshDashboard)
		require.NoError(t, err)

		p := workers.NewFanOutProcessor(canteens, enqueuer, helpers.TestLogger())
		assert.ErrorContains(t, p.ProcessTask(context.Background(), fan), "redis down")
	})

	t.Run("only_per_canteen_tasks", func(t *testing.T) {
		_, err := workers.NewFanOutTask(workers.TypePurgeDeleted)
		assert.Error(t, err)
	})
}

func TestNewServeMux_RoutesTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboardService(ctrl)
	canteenID := uuid.New()
	dashboard.EXPECT().Refresh(gomock.Any(), canteenID).Return(&report.Dashboard{}, nil)

	log := helpers.TestLogger()
	mux := workers.NewServeMux(workers.Processors{
		Alerts:    workers.NewStockAlertProcessor(mocks.NewMockAlertService(ctrl), mocks.NewMockCacheRepository(ctrl), time.Hour, log),
		Dashboard: workers.NewDashboardProcessor(dashboard, log),
		Reports:   workers.NewReportProcessor(mocks.NewMockReportService(ctrl), log),
		Cleanup:   workers.NewCleanupProcessor(mocks.NewMockInventoryRepository(ctrl), mocks.NewMockMenuRepository(ctrl), clock.Fixed(testNow), time.Hour, log),
		FanOut:    workers.NewFanOutProcessor(mocks.NewMockCanteenService(ctrl), mocks.NewMockTaskEnqueuer(ctrl), log),
	}, log)

	task, err := workers.NewRefreshDashboardTask(canteenID)
	require.NoError(t, err)
	assert.NoError(t, mux.ProcessTask(context.Background(), task))

	err = mux.ProcessTask(context.Background(), asynq.NewTask("unknown:task", nil))
	assert.Error(t, err)
}
