package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

func TestInventoryLiveQuery(t *testing.T) {
	r := &inventoryRepository{baseRepository{table: "inventory_items"}}
	canteenID := uuid.New()

	query, args, err := r.live(canteenID).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM inventory_items")
	assert.Contains(t, query, "WHERE canteen_id = $1 AND is_active = $2 AND deleted_at IS NULL")
	assert.Equal(t, []interface{}{canteenID, true}, args)
}

func TestMenuLiveQuery(t *testing.T) {
	r := &menuRepository{baseRepository{table: "menu_items"}}

	query, _, err := r.live(uuid.New()).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM menu_items m LEFT JOIN menu_categories c ON c.id = m.category_id")
	assert.Contains(t, query, "m.deleted_at IS NULL")
}

func TestInventoryOrderBy(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{name: "default", want: "name ASC"},
		{name: "stock_desc", sortBy: "stock", sortOrder: "desc", want: "current_stock DESC"},
		{name: "expiry_nulls_last", sortBy: "expiry", want: "expiry_date ASC NULLS LAST"},
		{name: "value", sortBy: "value", sortOrder: "desc", want: "(current_stock * unit_cost) DESC"},
		{name: "unknown_column_falls_back", sortBy: "1; DROP TABLE x", want: "created_at ASC"},
		{name: "unknown_direction_is_asc", sortBy: "name", sortOrder: "sideways", want: "name ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventoryOrderBy(tt.sortBy, tt.sortOrder))
		})
	}
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	v := nullIfEmpty("north door")
	require.NotNil(t, v)
	assert.Equal(t, "north door", *v)
	assert.Equal(t, "", deref(nil))
	assert.Equal(t, "north door", deref(v))
}

func TestStaffFilteredQuery(t *testing.T) {
	r := &staffRepository{baseRepository{table: "staff_profiles"}}
	canteenID := uuid.New()
	active := false

	query, args, err := r.filtered(canteenID, ports.StaffQuery{
		Role:   domain.RoleChef,
		Active: &active,
		Search: "meera",
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM staff_profiles WHERE canteen_id = $1 AND role = $2 AND is_active = $3")
	assert.Contains(t, query, "(full_name ILIKE $4 OR email ILIKE $5)")
	assert.Contains(t, query, "ORDER BY "+staffRoleOrder+", full_name, email")
	assert.Equal(t, []interface{}{canteenID, domain.RoleChef, false, "%meera%", "%meera%"}, args)

	query, args, err = r.filtered(canteenID, ports.StaffQuery{}).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "ILIKE")
	assert.Equal(t, []interface{}{canteenID}, args)
}
