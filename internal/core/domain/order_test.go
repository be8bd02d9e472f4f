package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/canteen-be/internal/core/domain"
)

func TestOrder_ValidateAndTotals(t *testing.T) {
	order := &domain.Order{
		CanteenID: uuid.New(),
		Items: []domain.OrderItem{
			{MenuItemID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(120)},
			{MenuItemID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromFloat(35.5)},
		},
	}

	require.NoError(t, order.Validate())
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.OrderDineIn, order.OrderType)

	order.CalculateTotals()
	assert.True(t, decimal.NewFromInt(240).Equal(order.Items[0].TotalPrice))
	assert.True(t, decimal.NewFromFloat(275.5).Equal(order.TotalAmount))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order.PrepareForStorage(now)
	assert.NotEqual(t, uuid.Nil, order.ID)
	for _, line := range order.Items {
		assert.Equal(t, order.ID, line.OrderID)
		assert.NotEqual(t, uuid.Nil, line.ID)
	}
}

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name     string
		order    domain.Order
		errorMsg string
	}{
		{
			name:     "missing_canteen",
			order:    domain.Order{TotalAmount: decimal.NewFromInt(10)},
			errorMsg: "canteen_id is required",
		},
		{
			name:     "no_items_no_total",
			order:    domain.Order{CanteenID: uuid.New()},
			errorMsg: "needs items or a positive total_amount",
		},
		{
			name: "zero_quantity_line",
			order: domain.Order{
				CanteenID: uuid.New(),
				Items:     []domain.OrderItem{{MenuItemID: uuid.New(), Quantity: 0}},
			},
			errorMsg: "items[0].quantity must be positive",
		},
		{
			name:     "unknown_status",
			order:    domain.Order{CanteenID: uuid.New(), Status: "lost", TotalAmount: decimal.NewFromInt(10)},
			errorMsg: "unknown order status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	staff := uuid.New()

	t.Run("completed_stamps_served_by", func(t *testing.T) {
		order := &domain.Order{Status: domain.OrderReady}
		require.NoError(t, order.TransitionTo(domain.OrderCompleted, &staff, now))

		assert.Equal(t, domain.OrderCompleted, order.Status)
		require.NotNil(t, order.ServedBy)
		assert.Equal(t, staff, *order.ServedBy)
		assert.Equal(t, now, order.UpdatedAt)
	})

	t.Run("preparing_ignores_served_by", func(t *testing.T) {
		order := &domain.Order{Status: domain.OrderPending}
		require.NoError(t, order.TransitionTo(domain.OrderPreparing, &staff, now))
		assert.Nil(t, order.ServedBy)
	})

	t.Run("cancelled_is_terminal", func(t *testing.T) {
		order := &domain.Order{Status: domain.OrderCancelled}
		err := order.TransitionTo(domain.OrderPreparing, nil, now)
		require.Error(t, err)
		assert.Equal(t, domain.OrderCancelled, order.Status)
	})

	t.Run("unknown_status", func(t *testing.T) {
		order := &domain.Order{Status: domain.OrderPending}
		assert.Error(t, order.TransitionTo("teleported", nil, now))
	})
}

func TestOrderStatus_Groups(t *testing.T) {
	assert.True(t, domain.OrderPending.IsOpen())
	assert.True(t, domain.OrderPreparing.IsOpen())
	assert.False(t, domain.OrderReady.IsOpen())
	assert.True(t, domain.OrderCompleted.IsFulfilled())
	assert.True(t, domain.OrderDelivered.IsFulfilled())
	assert.False(t, domain.OrderCancelled.IsFulfilled())
}

func TestFeedback_Respond(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fb := &domain.Feedback{CanteenID: uuid.New(), Rating: 4}
	require.NoError(t, fb.Validate())
	assert.Equal(t, domain.FeedbackNew, fb.Status)

	assert.Error(t, fb.Respond("   ", now))

	require.NoError(t, fb.Respond(" Thanks for visiting! ", now))
	assert.Equal(t, "Thanks for visiting!", fb.Response)
	assert.Equal(t, domain.FeedbackResponded, fb.Status)
	require.NotNil(t, fb.RespondedAt)
}

func TestFeedback_ValidateRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		fb := &domain.Feedback{CanteenID: uuid.New(), Rating: rating}
		assert.ErrorIs(t, fb.Validate(), domain.ErrValidation, "rating %d", rating)
	}
}

func TestCanteen_ValidateAndLocation(t *testing.T) {
	c := &domain.Canteen{Name: "Block A Canteen", OpenTime: "07:30", CloseTime: "21:00"}
	require.NoError(t, c.Validate())
	assert.Equal(t, "UTC", c.Timezone)
	assert.Equal(t, time.UTC, c.Location())

	c.Timezone = "Asia/Kolkata"
	require.NoError(t, c.Validate())
	assert.Equal(t, "Asia/Kolkata", c.Location().String())

	c.Timezone = "Mars/Olympus"
	assert.ErrorIs(t, c.Validate(), domain.ErrValidation)
	assert.Equal(t, time.UTC, c.Location())

	c.Timezone = "UTC"
	c.OpenTime = "7:30am"
	assert.ErrorIs(t, c.Validate(), domain.ErrValidation)

	var missing *domain.Canteen
	assert.Equal(t, time.UTC, missing.Location())
}
