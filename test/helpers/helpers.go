// test/helpers/helpers.go
package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/canteen-be/internal/adapters/db"
	redis_adapter "github.com/ammerola/canteen-be/internal/adapters/redis_adapter"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/pkg/config"
	"github.com/ammerola/canteen-be/internal/pkg/logger"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
	Cache  *redis_adapter.Cache
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	level := slog.LevelError
	if testing.Verbose() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// TestAppLogger returns the application logger for components that log
// through it rather than a bare slog.Logger
func TestAppLogger() *logger.Logger {
	level := "error"
	if testing.Verbose() {
		level = "debug"
	}
	return logger.NewLogger(&logger.LogConfig{Level: level, Format: "text", Writer: os.Stdout})
}

// SetupTestDB starts a PostgreSQL container and applies the embedded
// migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=canteen_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "canteen_test",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")
	t.Cleanup(database.Close)

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: dbConfig.DSN(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}
	err = db.RunMigrationsWithRetry(context.Background(), migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis starts an in-process Redis and wraps it in the cache adapter
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
		Cache:  redis_adapter.NewCache(client, time.Minute, TestLogger()),
	}
}

// SetupMockDB creates a mock database for unit testing
func SetupMockDB(t *testing.T) (sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create mock DB")

	t.Cleanup(func() {
		db.Close()
	})

	return mock, db
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "canteen-api-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "canteen_test",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			RequestIDHeader:   "X-Request-ID",
			MaxBodyBytes:      1 << 20,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Business: config.BusinessConfig{
			DashboardCacheTTL: 2 * time.Minute,
			AlertScanInterval: 30 * time.Minute,
			DashboardInterval: 5 * time.Minute,
			PurgeRetention:    30 * 24 * time.Hour,
			DefaultTimezone:   "UTC",
		},
	}
}

// Date returns midnight UTC of the given calendar day
func Date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

// CreateTestCanteen creates a test canteen
func CreateTestCanteen(overrides ...func(*domain.Canteen)) *domain.Canteen {
	c := &domain.Canteen{
		ID:              uuid.New(),
		Name:            "Test Canteen",
		Address:         "Block A, Ground Floor",
		Timezone:        "UTC",
		Currency:        "INR",
		OpenTime:        "08:00",
		CloseTime:       "20:00",
		PreparationTime: 15,
		TableCount:      12,
		DineInEnabled:   true,
		TakeawayEnabled: true,
		LowStockAlerts:  true,
		IsActive:        true,
	}
	for _, override := range overrides {
		override(c)
	}
	return c
}

// CreateTestInventoryItem creates a test inventory item in good standing
func CreateTestInventoryItem(canteenID uuid.UUID, overrides ...func(*domain.InventoryItem)) *domain.InventoryItem {
	item := &domain.InventoryItem{
		CanteenID:    canteenID,
		Name:         "Basmati Rice",
		Description:  "Long grain rice, 25kg sacks",
		Category:     "grains",
		Supplier:     "Acme Wholesale",
		Unit:         "kg",
		CurrentStock: decimal.NewFromInt(80),
		MinStock:     decimal.NewFromInt(20),
		MaxStock:     decimal.NewFromInt(100),
		UnitCost:     decimal.RequireFromString("1.50"),
		RetailPrice:  decimal.RequireFromString("2.25"),
		IsActive:     true,
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestInventoryItems creates count items with varied stock levels
func CreateTestInventoryItems(canteenID uuid.UUID, count int) []domain.InventoryItem {
	categories := []string{"grains", "dairy", "produce", "beverages", "bakery"}

	items := make([]domain.InventoryItem, count)
	for i := 0; i < count; i++ {
		items[i] = *CreateTestInventoryItem(canteenID, func(item *domain.InventoryItem) {
			item.Name = fmt.Sprintf("Test Item %d", i+1)
			item.Category = categories[i%len(categories)]
			item.CurrentStock = decimal.NewFromInt(int64(i * 7 % 100))
		})
	}
	return items
}

// CreateTestPromotion creates an active-window percentage promotion
func CreateTestPromotion(canteenID uuid.UUID, overrides ...func(*domain.Promotion)) *domain.Promotion {
	p := &domain.Promotion{
		CanteenID:      canteenID,
		Name:           "Lunch Combo",
		Description:    "10% off lunch orders",
		Type:           domain.PromotionPercentage,
		Value:          decimal.NewFromInt(10),
		MinOrderAmount: decimal.NewFromInt(100),
		StartDate:      Date(2026, time.January, 1),
		EndDate:        Date(2026, time.December, 31),
		Target:         domain.PromotionTarget{Scope: domain.ScopeAllItems},
		IsActive:       true,
	}
	for _, override := range overrides {
		override(p)
	}
	return p
}

// CreateTestMenuItem creates an available menu item
func CreateTestMenuItem(canteenID uuid.UUID, overrides ...func(*domain.MenuItem)) *domain.MenuItem {
	m := &domain.MenuItem{
		CanteenID:       canteenID,
		Name:            "Veg Thali",
		Description:     "Rice, dal, two sabzi, roti",
		Price:           decimal.NewFromInt(120),
		IsAvailable:     true,
		IsActive:        true,
		PreparationTime: 10,
	}
	for _, override := range overrides {
		override(m)
	}
	return m
}

// CreateTestOrder creates a pending order with one line per menu item
func CreateTestOrder(canteenID uuid.UUID, menu []domain.MenuItem, overrides ...func(*domain.Order)) *domain.Order {
	o := &domain.Order{
		CanteenID:     canteenID,
		CustomerName:  "Test Customer",
		Status:        domain.OrderPending,
		OrderType:     domain.OrderDineIn,
		PaymentMethod: "cash",
	}
	for _, m := range menu {
		o.Items = append(o.Items, domain.OrderItem{
			MenuItemID: m.ID,
			Quantity:   2,
			UnitPrice:  m.Price,
		})
	}
	if len(o.Items) == 0 {
		o.TotalAmount = decimal.NewFromInt(250)
	}
	for _, override := range overrides {
		override(o)
	}
	o.CalculateTotals()
	return o
}

// CreateTestFeedback creates new feedback with the given rating
func CreateTestFeedback(canteenID uuid.UUID, rating int, overrides ...func(*domain.Feedback)) *domain.Feedback {
	f := &domain.Feedback{
		CanteenID:    canteenID,
		CustomerName: "Test Customer",
		Rating:       rating,
		Comment:      "Food was warm and on time",
		Status:       domain.FeedbackNew,
	}
	for _, override := range overrides {
		override(f)
	}
	return f
}

// CreateTestStaffProfile creates an active staff member with the given role
func CreateTestStaffProfile(canteenID uuid.UUID, role domain.StaffRole, overrides ...func(*domain.StaffProfile)) *domain.StaffProfile {
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := &domain.StaffProfile{
		ID:        uuid.New(),
		CanteenID: canteenID,
		Email:     string(role) + "-" + uuid.NewString()[:8] + "@example.com",
		FullName:  "Test " + string(role),
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, override := range overrides {
		override(p)
	}
	return p
}

// CompareInventoryItems compares the stored fields of two inventory items
func CompareInventoryItems(t *testing.T, expected, actual *domain.InventoryItem) {
	t.Helper()

	require.Equal(t, expected.CanteenID, actual.CanteenID)
	require.Equal(t, expected.Name, actual.Name)
	require.Equal(t, expected.Description, actual.Description)
	require.Equal(t, expected.Category, actual.Category)
	require.Equal(t, expected.Supplier, actual.Supplier)
	require.Equal(t, expected.Unit, actual.Unit)
	require.True(t, expected.CurrentStock.Equal(actual.CurrentStock))
	require.True(t, expected.MinStock.Equal(actual.MinStock))
	require.True(t, expected.MaxStock.Equal(actual.MaxStock))
	require.True(t, expected.UnitCost.Equal(actual.UnitCost))
	require.True(t, expected.RetailPrice.Equal(actual.RetailPrice))
	require.Equal(t, expected.IsOnClearance, actual.IsOnClearance)
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}

// TruncateAllTables truncates all tables in the test database
func TruncateAllTables(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	tables := []string{
		"staff_profiles",
		"feedback",
		"order_items",
		"orders",
		"menu_items",
		"menu_categories",
		"promotions",
		"inventory_items",
		"canteens",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "Failed to truncate table: %s", table)
	}
}
