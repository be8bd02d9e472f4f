// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/canteen-be/internal/adapters/db"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/services"
	"github.com/ammerola/canteen-be/internal/pkg/clock"
	"github.com/ammerola/canteen-be/internal/pkg/logger"
)

// Catalog is the stock and menu a demo canteen starts with
type Catalog struct {
	Inventory []domain.InventoryItem
	Menu      map[string][]domain.MenuItem // category name -> dishes
}

// defaultCatalog is used when no workbook is given
func defaultCatalog(now time.Time) Catalog {
	day := func(offset int) *time.Time {
		d := time.Date(now.Year(), now.Month(), now.Day()+offset, 0, 0, 0, 0, time.UTC)
		return &d
	}
	stock := func(name, category, unit string, current, minStock, maxStock int64, cost, price string, expiry *time.Time) domain.InventoryItem {
		return domain.InventoryItem{
			Name:         name,
			Category:     category,
			Unit:         unit,
			Supplier:     "City Wholesale",
			CurrentStock: decimal.NewFromInt(current),
			MinStock:     decimal.NewFromInt(minStock),
			MaxStock:     decimal.NewFromInt(maxStock),
			UnitCost:     decimal.RequireFromString(cost),
			RetailPrice:  decimal.RequireFromString(price),
			ExpiryDate:   expiry,
			IsActive:     true,
		}
	}
	dish := func(name, price string, prep int) domain.MenuItem {
		return domain.MenuItem{
			Name:            name,
			Price:           decimal.RequireFromString(price),
			PreparationTime: prep,
			IsAvailable:     true,
			IsActive:        true,
		}
	}

	return Catalog{
		Inventory: []domain.InventoryItem{
			stock("Basmati Rice", "grains", "kg", 80, 20, 100, "1.50", "2.25", nil),
			stock("Toor Dal", "grains", "kg", 12, 15, 60, "1.80", "2.60", nil),
			stock("Whole Milk", "dairy", "l", 40, 10, 60, "0.90", "1.30", day(2)),
			stock("Paneer", "dairy", "kg", 6, 5, 25, "4.20", "6.00", day(5)),
			stock("Tomatoes", "produce", "kg", 0, 10, 50, "0.80", "1.20", day(4)),
			stock("Onions", "produce", "kg", 35, 10, 60, "0.50", "0.80", day(20)),
			stock("Bread Loaf", "bakery", "pcs", 18, 10, 40, "0.70", "1.10", day(-1)),
			stock("Mango Juice", "beverages", "l", 150, 20, 100, "1.10", "1.75", day(60)),
		},
		Menu: map[string][]domain.MenuItem{
			"Meals": {
				dish("Veg Thali", "120", 10),
				dish("Paneer Butter Masala", "160", 15),
			},
			"Snacks": {
				dish("Samosa", "20", 5),
				dish("Veg Sandwich", "45", 7),
			},
			"Beverages": {
				dish("Masala Chai", "15", 3),
				dish("Mango Lassi", "50", 4),
			},
		},
	}
}

// LoadCatalog reads an "Inventory" and a "Menu" sheet from a workbook.
// Inventory columns: name, category, unit, stock, min, max, unit cost,
// retail price, expiry (YYYY-MM-DD). Menu columns: category, name, price,
// preparation minutes.
func LoadCatalog(path string) (Catalog, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to open catalog: %w", err)
	}

	catalog := Catalog{Menu: map[string][]domain.MenuItem{}}

	if sheet, ok := file.Sheet["Inventory"]; ok {
		err := eachDataRow(sheet, func(get func(int) string) error {
			name := get(0)
			if name == "" {
				return nil
			}
			item := domain.InventoryItem{
				Name:         name,
				Category:     get(1),
				Unit:         get(2),
				CurrentStock: parseDecimal(get(3)),
				MinStock:     parseDecimal(get(4)),
				MaxStock:     parseDecimal(get(5)),
				UnitCost:     parseDecimal(get(6)),
				RetailPrice:  parseDecimal(get(7)),
				IsActive:     true,
			}
			if v := get(8); v != "" {
				d, err := time.Parse(time.DateOnly, v)
				if err != nil {
					return fmt.Errorf("item %q: bad expiry %q", name, v)
				}
				item.ExpiryDate = &d
			}
			catalog.Inventory = append(catalog.Inventory, item)
			return nil
		})
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to read inventory sheet: %w", err)
		}
	}

	if sheet, ok := file.Sheet["Menu"]; ok {
		err := eachDataRow(sheet, func(get func(int) string) error {
			category, name := get(0), get(1)
			if name == "" {
				return nil
			}
			prep, _ := strconv.Atoi(get(3))
			catalog.Menu[category] = append(catalog.Menu[category], domain.MenuItem{
				Name:            name,
				Price:           parseDecimal(get(2)),
				PreparationTime: prep,
				IsAvailable:     true,
				IsActive:        true,
			})
			return nil
		})
		if err != nil {
			return Catalog{}, fmt.Errorf("failed to read menu sheet: %w", err)
		}
	}

	return catalog, nil
}

// eachDataRow calls fn for every row after the header
func eachDataRow(sheet *xlsx.Sheet, fn func(get func(int) string) error) error {
	rowIdx := 0
	return sheet.ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		if rowIdx == 1 {
			return nil
		}
		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}
		return fn(get)
	})
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// zoneLocator pins every canteen to one zone
type zoneLocator struct{ loc *time.Location }

func (z zoneLocator) Location(context.Context, uuid.UUID) *time.Location { return z.loc }

// Seeder writes a demo canteen through the application services
type Seeder struct {
	inventory *services.InventoryService
	promos    *services.PromotionService
	menu      *services.MenuService
	orders    *services.OrderService
	feedback  *services.FeedbackService
	saveRaw   func(ctx context.Context, c *domain.Canteen) error
	saveStaff func(ctx context.Context, p *domain.StaffProfile) error
	rng       *rand.Rand
}

// Summary counts what a run created
type Summary struct {
	CanteenID  uuid.UUID
	Inventory  int
	Promotions int
	MenuItems  int
	Orders     int
	Feedback   int
	Staff      int
}

// Run creates the canteen and everything it owns
func (s *Seeder) Run(ctx context.Context, canteen *domain.Canteen, catalog Catalog, orderCount int) (*Summary, error) {
	if err := canteen.Validate(); err != nil {
		return nil, err
	}
	if err := s.saveRaw(ctx, canteen); err != nil {
		return nil, err
	}
	sum := &Summary{CanteenID: canteen.ID}
	id := canteen.ID

	for i := range catalog.Inventory {
		item := catalog.Inventory[i]
		if _, err := s.inventory.Create(ctx, id, &item); err != nil {
			return sum, fmt.Errorf("inventory %q: %w", item.Name, err)
		}
		sum.Inventory++
	}

	for _, p := range demoPromotions() {
		if _, err := s.promos.Create(ctx, id, &p); err != nil {
			return sum, fmt.Errorf("promotion %q: %w", p.Name, err)
		}
		sum.Promotions++
	}

	var dishes []domain.MenuItem
	for categoryName, items := range catalog.Menu {
		var categoryID *uuid.UUID
		if categoryName != "" {
			category, err := s.menu.CreateCategory(ctx, id, &domain.MenuCategory{Name: categoryName})
			if err != nil {
				return sum, fmt.Errorf("category %q: %w", categoryName, err)
			}
			categoryID = &category.ID
		}
		for i := range items {
			item := items[i]
			item.CategoryID = categoryID
			created, err := s.menu.Create(ctx, id, &item)
			if err != nil {
				return sum, fmt.Errorf("menu item %q: %w", item.Name, err)
			}
			dishes = append(dishes, *created)
			sum.MenuItems++
		}
	}

	if len(dishes) > 0 {
		for i := 0; i < orderCount; i++ {
			if _, err := s.orders.Create(ctx, id, s.randomOrder(dishes)); err != nil {
				return sum, fmt.Errorf("order %d: %w", i+1, err)
			}
			sum.Orders++
		}
	}

	comments := []string{"Too salty", "Slow service", "Okay", "Tasty and quick", "Best thali in town"}
	for rating := 1; rating <= 5; rating++ {
		fb := &domain.Feedback{
			CustomerName: fmt.Sprintf("Guest %d", rating),
			Rating:       rating,
			Comment:      comments[rating-1],
		}
		if _, err := s.feedback.Submit(ctx, id, fb); err != nil {
			return sum, fmt.Errorf("feedback: %w", err)
		}
		sum.Feedback++
	}

	if s.saveStaff != nil {
		for _, p := range demoStaff(id, canteen.CreatedAt) {
			if err := s.saveStaff(ctx, &p); err != nil {
				return sum, fmt.Errorf("staff %q: %w", p.Email, err)
			}
			sum.Staff++
		}
	}

	return sum, nil
}

func demoStaff(canteenID uuid.UUID, now time.Time) []domain.StaffProfile {
	people := []struct {
		name string
		role domain.StaffRole
	}{
		{"Ravi Menon", domain.RoleOwner},
		{"Anita Rao", domain.RoleManager},
		{"Suresh Pillai", domain.RoleChef},
		{"Farah Khan", domain.RoleCashier},
	}

	staff := make([]domain.StaffProfile, 0, len(people))
	for _, p := range people {
		email := strings.ToLower(strings.ReplaceAll(p.name, " ", ".")) + "@canteen.example"
		staff = append(staff, domain.StaffProfile{
			ID:        uuid.New(),
			CanteenID: canteenID,
			Email:     email,
			FullName:  p.name,
			Role:      p.role,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return staff
}

func (s *Seeder) randomOrder(dishes []domain.MenuItem) *domain.Order {
	statuses := []domain.OrderStatus{
		domain.OrderPending, domain.OrderPreparing, domain.OrderReady,
		domain.OrderCompleted, domain.OrderCompleted, domain.OrderCompleted, domain.OrderCancelled,
	}
	types := []domain.OrderType{domain.OrderDineIn, domain.OrderTakeaway, domain.OrderDelivery}

	o := &domain.Order{
		CustomerName:  fmt.Sprintf("Customer %03d", s.rng.Intn(1000)),
		Status:        statuses[s.rng.Intn(len(statuses))],
		OrderType:     types[s.rng.Intn(len(types))],
		PaymentMethod: "cash",
	}
	lines := 1 + s.rng.Intn(3)
	for j := 0; j < lines; j++ {
		d := dishes[s.rng.Intn(len(dishes))]
		o.Items = append(o.Items, domain.OrderItem{MenuItemID: d.ID, Quantity: 1 + s.rng.Intn(3)})
	}
	return o
}

func demoPromotions() []domain.Promotion {
	return []domain.Promotion{
		{
			Name:           "Lunch Combo",
			Description:    "10% off orders above 200",
			Type:           domain.PromotionPercentage,
			Value:          decimal.NewFromInt(10),
			MinOrderAmount: decimal.NewFromInt(200),
			Target:         domain.PromotionTarget{Scope: domain.ScopeAllItems},
			IsActive:       true,
		},
		{
			Name:     "Festival Flat Off",
			Type:     domain.PromotionFixedAmount,
			Value:    decimal.NewFromInt(25),
			Target:   domain.PromotionTarget{Scope: domain.ScopeAllItems},
			IsActive: false,
		},
	}
}

func main() {
	var (
		catalogFile = flag.String("catalog", "", "Workbook with Inventory and Menu sheets (built-in demo data when empty)")
		name        = flag.String("name", "Demo Canteen", "Canteen name")
		timezone    = flag.String("timezone", "UTC", "Canteen timezone")
		currency    = flag.String("currency", "INR", "Canteen currency")
		orders      = flag.Int("orders", 25, "Number of demo orders")
		seed        = flag.Int64("seed", 1, "Random seed for demo orders")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Load and validate the catalog without touching the database")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json").Logger

	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		slogger.Error("unknown timezone", slog.String("timezone", *timezone))
		os.Exit(1)
	}

	now := time.Now().UTC()
	catalog := defaultCatalog(now)
	if *catalogFile != "" {
		catalog, err = LoadCatalog(*catalogFile)
		if err != nil {
			slogger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	canteen := &domain.Canteen{
		ID:              uuid.New(),
		Name:            *name,
		Timezone:        loc.String(),
		Currency:        *currency,
		OpenTime:        "08:00",
		CloseTime:       "21:00",
		PreparationTime: 15,
		TableCount:      12,
		DineInEnabled:   true,
		TakeawayEnabled: true,
		LowStockAlerts:  true,
		DailyReports:    true,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for i := range catalog.Inventory {
		row := catalog.Inventory[i]
		row.CanteenID = canteen.ID
		if err := row.Validate(); err != nil {
			slogger.Error("invalid catalog row", slog.String("item", row.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *dryRun {
		menuCount := 0
		for _, items := range catalog.Menu {
			menuCount += len(items)
		}
		fmt.Printf("[DRY RUN] would create %q with %d inventory items and %d menu items\n",
			canteen.Name, len(catalog.Inventory), menuCount)
		return
	}

	ctx := context.Background()
	database, err := db.NewDatabase(ctx, &db.Config{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnv("DB_PORT", "5432"),
		User:           getEnv("DB_USER", "canteen"),
		Password:       getEnv("DB_PASSWORD", "canteen_dev"),
		Database:       getEnv("DB_NAME", "canteen"),
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
		MaxConnections: 4,
		MinConnections: 1,
		ConnectTimeout: 10 * time.Second,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	canteenRepo := db.NewCanteenRepository(database, slogger)
	menuRepo := db.NewMenuRepository(database, slogger)
	rt := services.Runtime{Clock: clock.System(), Locator: zoneLocator{loc: loc}}

	seeder := &Seeder{
		inventory: services.NewInventoryService(db.NewInventoryRepository(database, slogger), rt, slogger),
		promos:    services.NewPromotionService(db.NewPromotionRepository(database, slogger), rt, slogger),
		menu:      services.NewMenuService(menuRepo, rt, slogger),
		orders:    services.NewOrderService(db.NewOrderRepository(database, slogger), menuRepo, rt, slogger),
		feedback:  services.NewFeedbackService(db.NewFeedbackRepository(database, slogger), rt, slogger),
		saveRaw:   canteenRepo.Save,
		saveStaff: db.NewStaffRepository(database, slogger).Save,
		rng:       rand.New(rand.NewSource(*seed)),
	}

	sum, err := seeder.Run(ctx, canteen, catalog, *orders)
	if err != nil {
		slogger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Canteen ID:      %s\n", sum.CanteenID)
	fmt.Printf("Inventory items: %d\n", sum.Inventory)
	fmt.Printf("Promotions:      %d\n", sum.Promotions)
	fmt.Printf("Menu items:      %d\n", sum.MenuItems)
	fmt.Printf("Orders:          %d\n", sum.Orders)
	fmt.Printf("Feedback:        %d\n", sum.Feedback)
	fmt.Printf("Staff:           %d\n", sum.Staff)
	fmt.Printf("\nUse header X-Canteen-ID: %s\n", sum.CanteenID)

	slogger.Info("seed operation completed",
		slog.String("canteen_id", sum.CanteenID.String()),
		slog.Int("inventory", sum.Inventory),
		slog.Int("orders", sum.Orders))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
