// internal/handlers/inventory_handler_test.go
package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/internal/handlers"
	"github.com/ammerola/canteen-be/test/helpers"
	"github.com/ammerola/canteen-be/test/mocks"
)

func newInventoryRouter(t *testing.T) (*handlers.Router, *mocks.MockInventoryService) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInventoryService(ctrl)
	return &handlers.Router{
		Inventory: handlers.NewInventoryHandler(service, helpers.TestLogger()),
	}, service
}

func classified(item *domain.InventoryItem, status domain.InventoryStatus) *domain.ClassifiedItem {
	return &domain.ClassifiedItem{InventoryItem: *item, Status: status}
}

func TestInventoryHandler_GetInventory(t *testing.T) {
	canteenID := uuid.New()
	testItem := helpers.CreateTestInventoryItem(canteenID)
	testItem.ID = uuid.New()

	tests := []struct {
		name           string
		itemID         string
		canteenID      uuid.UUID
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:      "successfully_retrieves_inventory_item",
			itemID:    testItem.ID.String(),
			canteenID: canteenID,
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					Get(gomock.Any(), canteenID, testItem.ID).
					Return(classified(testItem, domain.StatusGood), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_canteen_header",
			itemID:         testItem.ID.String(),
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "X-Canteen-ID header is required",
		},
		{
			name:           "invalid_uuid_format",
			itemID:         "not-a-uuid",
			canteenID:      canteenID,
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid ID format",
		},
		{
			name:      "item_not_found",
			itemID:    testItem.ID.String(),
			canteenID: canteenID,
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					Get(gomock.Any(), canteenID, testItem.ID).
					Return(nil, fmt.Errorf("failed to get inventory item: %w", ports.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Resource not found",
		},
		{
			name:      "service_error",
			itemID:    testItem.ID.String(),
			canteenID: canteenID,
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					Get(gomock.Any(), canteenID, testItem.ID).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to retrieve inventory item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newInventoryRouter(t)
			tt.setupMocks(service)

			w := serve(router, newRequest(t, http.MethodGet, "/api/v1/inventory/"+tt.itemID, tt.canteenID, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, w))
				return
			}

			var response domain.ClassifiedItem
			decodeBody(t, w, &response)
			assert.Equal(t, testItem.ID, response.ID)
			assert.Equal(t, testItem.Name, response.Name)
			assert.Equal(t, domain.StatusGood, response.Status)
		})
	}
}

func TestInventoryHandler_ListInventory(t *testing.T) {
	canteenID := uuid.New()

	t.Run("passes_filters_and_paging", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			List(gomock.Any(), canteenID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, params ports.InventoryListParams) (*ports.InventoryListResult, error) {
				assert.Equal(t, "rice", params.Search)
				assert.Empty(t, params.Category)
				assert.Equal(t, domain.StatusCritical, params.Status)
				assert.Equal(t, "stock", params.SortBy)
				assert.Equal(t, "asc", params.SortOrder)
				assert.Equal(t, 2, params.Page)
				assert.Equal(t, 10, params.PageSize)
				return &ports.InventoryListResult{Page: 2, PageSize: 10, TotalCount: 11, TotalPages: 2}, nil
			})

		target := "/api/v1/inventory?search=rice&category=all&status=critical&sort=stock&order=asc&page=2&limit=10"
		w := serve(router, newRequest(t, http.MethodGet, target, canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var result ports.InventoryListResult
		decodeBody(t, w, &result)
		assert.Equal(t, int64(11), result.TotalCount)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("unknown_status_is_a_bad_request", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			List(gomock.Any(), canteenID, gomock.Any()).
			Return(nil, fmt.Errorf("%w: unknown status \"stale\"", domain.ErrValidation))

		w := serve(router, newRequest(t, http.MethodGet, "/api/v1/inventory?status=stale", canteenID, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorMessage(t, w), "unknown status")
	})

	t.Run("invalid_canteen_header", func(t *testing.T) {
		router, _ := newInventoryRouter(t)
		req := newRequest(t, http.MethodGet, "/api/v1/inventory", uuid.Nil, nil)
		req.Header.Set(handlers.CanteenHeader, "canteen-1")

		w := serve(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid X-Canteen-ID header", errorMessage(t, w))
	})
}

func TestInventoryHandler_CreateInventory(t *testing.T) {
	canteenID := uuid.New()

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockInventoryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "creates_item_with_calendar_expiry",
			body: map[string]interface{}{
				"name":          "Milk",
				"category":      "dairy",
				"unit":          "l",
				"current_stock": "12",
				"min_stock":     20,
				"max_stock":     60,
				"unit_cost":     "0.90",
				"retail_price":  "1.40",
				"expiry_date":   "2026-10-20",
			},
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					Create(gomock.Any(), canteenID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, item *domain.InventoryItem) (*domain.ClassifiedItem, error) {
						assert.Equal(t, "Milk", item.Name)
						assert.True(t, item.CurrentStock.Equal(decimal.NewFromInt(12)))
						assert.True(t, item.MinStock.Equal(decimal.NewFromInt(20)))
						require.NotNil(t, item.ExpiryDate)
						assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), *item.ExpiryDate)

						item.ID = uuid.New()
						item.CanteenID = canteenID
						return classified(item, domain.StatusLowStock), nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing_name",
			body:           map[string]interface{}{"current_stock": 5},
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name is required",
		},
		{
			name:           "malformed_json",
			body:           `{"name": `,
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "bad_expiry_date",
			body:           map[string]interface{}{"name": "Milk", "expiry_date": "20/10/2026"},
			setupMocks:     func(m *mocks.MockInventoryService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "domain_validation_error",
			body: map[string]interface{}{"name": "Milk", "current_stock": -1},
			setupMocks: func(m *mocks.MockInventoryService) {
				m.EXPECT().
					Create(gomock.Any(), canteenID, gomock.Any()).
					Return(nil, fmt.Errorf("validation failed: %w", fmt.Errorf("%w: current_stock cannot be negative", domain.ErrValidation)))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newInventoryRouter(t)
			tt.setupMocks(service)

			w := serve(router, newRequest(t, http.MethodPost, "/api/v1/inventory", canteenID, tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, w))
			}
		})
	}
}

func TestInventoryHandler_UpdateAndDelete(t *testing.T) {
	canteenID := uuid.New()
	itemID := uuid.New()

	t.Run("update_replaces_item", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			Update(gomock.Any(), canteenID, itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, id uuid.UUID, item *domain.InventoryItem) (*domain.ClassifiedItem, error) {
				item.ID = id
				return classified(item, domain.StatusGood), nil
			})

		w := serve(router, newRequest(t, http.MethodPut, "/api/v1/inventory/"+itemID.String(), canteenID,
			map[string]interface{}{"name": "Brown Rice", "current_stock": 40}))

		require.Equal(t, http.StatusOK, w.Code)
		var response domain.ClassifiedItem
		decodeBody(t, w, &response)
		assert.Equal(t, itemID, response.ID)
		assert.Equal(t, "Brown Rice", response.Name)
	})

	t.Run("delete_soft_deletes", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().Delete(gomock.Any(), canteenID, itemID).Return(nil)

		w := serve(router, newRequest(t, http.MethodDelete, "/api/v1/inventory/"+itemID.String(), canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]string
		decodeBody(t, w, &response)
		assert.Equal(t, itemID.String(), response["id"])
	})

	t.Run("delete_missing_item", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().Delete(gomock.Any(), canteenID, itemID).Return(ports.ErrNotFound)

		w := serve(router, newRequest(t, http.MethodDelete, "/api/v1/inventory/"+itemID.String(), canteenID, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInventoryHandler_StockActions(t *testing.T) {
	canteenID := uuid.New()
	item := helpers.CreateTestInventoryItem(canteenID)
	item.ID = uuid.New()
	base := "/api/v1/inventory/" + item.ID.String()

	t.Run("restock", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			Restock(gomock.Any(), canteenID, item.ID, decimal.RequireFromString("12.5")).
			Return(classified(item, domain.StatusGood), nil)

		w := serve(router, newRequest(t, http.MethodPost, base+"/restock", canteenID, `{"quantity": "12.5"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("restock_rejected_quantity", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			Restock(gomock.Any(), canteenID, item.ID, gomock.Any()).
			Return(nil, fmt.Errorf("%w: restock quantity must be positive", domain.ErrValidation))

		w := serve(router, newRequest(t, http.MethodPost, base+"/restock", canteenID, `{"quantity": 0}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorMessage(t, w), "must be positive")
	})

	t.Run("set_clearance", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			SetClearance(gomock.Any(), canteenID, item.ID, decimal.RequireFromString("1.10")).
			Return(classified(item, domain.StatusGood), nil)

		w := serve(router, newRequest(t, http.MethodPut, base+"/clearance", canteenID, `{"clearance_price": "1.10"}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("clear_clearance", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().
			ClearClearance(gomock.Any(), canteenID, item.ID).
			Return(classified(item, domain.StatusGood), nil)

		w := serve(router, newRequest(t, http.MethodDelete, base+"/clearance", canteenID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestInventoryHandler_Alerts(t *testing.T) {
	canteenID := uuid.New()

	t.Run("routes_alerts_ahead_of_item_lookup", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		low := helpers.CreateTestInventoryItem(canteenID, func(i *domain.InventoryItem) {
			i.Name = "Milk"
			i.CurrentStock = decimal.NewFromInt(12)
		})
		service.EXPECT().
			Alerts(gomock.Any(), canteenID).
			Return([]domain.ClassifiedItem{*classified(low, domain.StatusLowStock)}, nil)

		w := serve(router, newRequest(t, http.MethodGet, "/api/v1/inventory/alerts", canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Items []domain.ClassifiedItem `json:"items"`
			Count int                     `json:"count"`
		}
		decodeBody(t, w, &response)
		assert.Equal(t, 1, response.Count)
		assert.Equal(t, "Milk", response.Items[0].Name)
	})

	t.Run("no_alerts_is_an_empty_list", func(t *testing.T) {
		router, service := newInventoryRouter(t)
		service.EXPECT().Alerts(gomock.Any(), canteenID).Return(nil, nil)

		w := serve(router, newRequest(t, http.MethodGet, "/api/v1/inventory/alerts", canteenID, nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items": [], "count": 0}`, w.Body.String())
	})
}

func TestInventoryHandler_Clearance(t *testing.T) {
	canteenID := uuid.New()
	router, service := newInventoryRouter(t)
	service.EXPECT().
		Clearance(gomock.Any(), canteenID).
		Return(&ports.ClearanceResult{Items: []domain.ClassifiedItem{}}, nil)

	w := serve(router, newRequest(t, http.MethodGet, "/api/v1/clearance", canteenID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
