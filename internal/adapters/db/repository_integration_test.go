//go:build integration
// +build integration

package db_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ammerola/canteen-be/internal/adapters/db"
	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
	"github.com/ammerola/canteen-be/test/helpers"
)

type RepositorySuite struct {
	suite.Suite
	testDB    *helpers.TestDB
	ctx       context.Context
	now       time.Time
	canteen   *domain.Canteen
	canteens  ports.CanteenRepository
	inventory ports.InventoryRepository
	promos    ports.PromotionRepository
	menu      ports.MenuRepository
	orders    ports.OrderRepository
	feedback  ports.FeedbackRepository
	staff     ports.StaffRepository
}

func (s *RepositorySuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	log := helpers.TestLogger()
	database := s.testDB.Database
	s.canteens = db.NewCanteenRepository(database, log)
	s.inventory = db.NewInventoryRepository(database, log)
	s.promos = db.NewPromotionRepository(database, log)
	s.menu = db.NewMenuRepository(database, log)
	s.orders = db.NewOrderRepository(database, log)
	s.feedback = db.NewFeedbackRepository(database, log)
	s.staff = db.NewStaffRepository(database, log)
}

func (s *RepositorySuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)

	s.now = time.Now().UTC().Truncate(time.Microsecond)
	s.canteen = helpers.CreateTestCanteen(func(c *domain.Canteen) {
		c.CreatedAt = s.now
		c.UpdatedAt = s.now
	})
	s.Require().NoError(s.canteens.Save(s.ctx, s.canteen))
}

func (s *RepositorySuite) saveItem(overrides ...func(*domain.InventoryItem)) *domain.InventoryItem {
	item := helpers.CreateTestInventoryItem(s.canteen.ID, overrides...)
	s.Require().NoError(item.Validate())
	item.PrepareForStorage(s.now)
	s.Require().NoError(s.inventory.Save(s.ctx, item))
	return item
}

func (s *RepositorySuite) saveMenuItem(overrides ...func(*domain.MenuItem)) *domain.MenuItem {
	m := helpers.CreateTestMenuItem(s.canteen.ID, overrides...)
	m.PrepareForStorage(s.now)
	s.Require().NoError(s.menu.Save(s.ctx, m))
	return m
}

func (s *RepositorySuite) TestCanteen_RoundTrip() {
	found, err := s.canteens.FindByID(s.ctx, s.canteen.ID)
	s.Require().NoError(err)
	s.Equal(s.canteen.Name, found.Name)
	s.Equal("08:00", found.OpenTime)
	s.True(found.LowStockAlerts)

	found.Timezone = "Asia/Kolkata"
	found.TableCount = 30
	s.Require().NoError(s.canteens.Update(s.ctx, found))

	updated, err := s.canteens.FindByID(s.ctx, s.canteen.ID)
	s.Require().NoError(err)
	s.Equal("Asia/Kolkata", updated.Timezone)
	s.Equal(30, updated.TableCount)

	ids, err := s.canteens.ListActiveIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{s.canteen.ID}, ids)

	_, err = s.canteens.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *RepositorySuite) TestInventory_SaveAndFind() {
	expiry := helpers.Date(2026, time.November, 2)
	item := s.saveItem(func(i *domain.InventoryItem) { i.ExpiryDate = expiry })

	found, err := s.inventory.FindByID(s.ctx, s.canteen.ID, item.ID)
	s.Require().NoError(err)
	helpers.CompareInventoryItems(s.T(), item, found)
	s.Require().NotNil(found.ExpiryDate)
	s.Equal("2026-11-02", found.ExpiryDate.Format("2006-01-02"))

	s.Run("other_canteen_cannot_see_item", func() {
		_, err := s.inventory.FindByID(s.ctx, uuid.New(), item.ID)
		s.ErrorIs(err, ports.ErrNotFound)
	})
}

func (s *RepositorySuite) TestInventory_Update() {
	item := s.saveItem()

	item.CurrentStock = decimal.NewFromInt(5)
	item.IsOnClearance = true
	item.ClearancePrice = decimal.RequireFromString("1.10")
	item.UpdatedAt = s.now.Add(time.Minute)
	s.Require().NoError(s.inventory.Update(s.ctx, item))

	found, err := s.inventory.FindByID(s.ctx, s.canteen.ID, item.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(5).Equal(found.CurrentStock))
	s.True(found.IsOnClearance)
	s.True(found.UpdatedAt.After(found.CreatedAt))

	missing := *item
	missing.ID = uuid.New()
	s.ErrorIs(s.inventory.Update(s.ctx, &missing), ports.ErrNotFound)
}

func (s *RepositorySuite) TestInventory_FindAll() {
	for i, name := range []string{"Apples", "Bananas", "Cheddar"} {
		s.saveItem(func(it *domain.InventoryItem) {
			it.Name = name
			it.Category = []string{"produce", "produce", "dairy"}[i]
			it.CurrentStock = decimal.NewFromInt(int64(10 * (i + 1)))
		})
	}

	s.Run("category_filter", func() {
		items, total, err := s.inventory.FindAll(s.ctx, s.canteen.ID, ports.InventoryQuery{Category: "produce"})
		s.Require().NoError(err)
		s.Equal(int64(2), total)
		s.Len(items, 2)
	})

	s.Run("search_is_case_insensitive", func() {
		items, _, err := s.inventory.FindAll(s.ctx, s.canteen.ID, ports.InventoryQuery{Search: "ched"})
		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Equal("Cheddar", items[0].Name)
	})

	s.Run("pagination_keeps_total", func() {
		items, total, err := s.inventory.FindAll(s.ctx, s.canteen.ID, ports.InventoryQuery{
			SortBy: "stock", SortOrder: "desc", Limit: 2,
		})
		s.Require().NoError(err)
		s.Equal(int64(3), total)
		s.Require().Len(items, 2)
		s.Equal("Cheddar", items[0].Name)
	})
}

func (s *RepositorySuite) TestInventory_SoftDeleteAndPurge() {
	item := s.saveItem()
	keep := s.saveItem(func(i *domain.InventoryItem) { i.Name = "Keep" })

	s.Require().NoError(s.inventory.SoftDelete(s.ctx, s.canteen.ID, item.ID, s.now))
	s.ErrorIs(s.inventory.SoftDelete(s.ctx, s.canteen.ID, item.ID, s.now), ports.ErrNotFound)

	_, err := s.inventory.FindByID(s.ctx, s.canteen.ID, item.ID)
	s.ErrorIs(err, ports.ErrNotFound)

	active, err := s.inventory.ListActive(s.ctx, s.canteen.ID)
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Equal(keep.ID, active[0].ID)

	purged, err := s.inventory.PurgeDeleted(s.ctx, s.now.Add(-time.Hour))
	s.Require().NoError(err)
	s.Zero(purged)

	purged, err = s.inventory.PurgeDeleted(s.ctx, s.now.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(int64(1), purged)
}

func (s *RepositorySuite) TestPromotions() {
	p := helpers.CreateTestPromotion(s.canteen.ID)
	s.Require().NoError(p.Validate())
	p.PrepareForStorage(s.now)
	s.Require().NoError(s.promos.Save(s.ctx, p))

	open := helpers.CreateTestPromotion(s.canteen.ID, func(p *domain.Promotion) {
		p.Name = "Open Ended"
		p.StartDate = nil
		p.EndDate = nil
	})
	open.PrepareForStorage(s.now)
	s.Require().NoError(s.promos.Save(s.ctx, open))

	all, err := s.promos.FindAll(s.ctx, s.canteen.ID)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(p.ID, all[0].ID, "dated promotions come before open-ended ones")
	s.Nil(all[1].StartDate)

	p.Value = decimal.NewFromInt(15)
	s.Require().NoError(s.promos.Update(s.ctx, p))
	found, err := s.promos.FindByID(s.ctx, s.canteen.ID, p.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(15).Equal(found.Value))

	s.Require().NoError(s.promos.Delete(s.ctx, s.canteen.ID, p.ID))
	s.ErrorIs(s.promos.Delete(s.ctx, s.canteen.ID, p.ID), ports.ErrNotFound)
}

func (s *RepositorySuite) TestMenu() {
	category := &domain.MenuCategory{ID: uuid.New(), CanteenID: s.canteen.ID, Name: "Mains", IsActive: true, CreatedAt: s.now}
	s.Require().NoError(s.menu.SaveCategory(s.ctx, category))

	thali := s.saveMenuItem(func(m *domain.MenuItem) { m.CategoryID = &category.ID })
	soldOut := s.saveMenuItem(func(m *domain.MenuItem) {
		m.Name = "Paneer Tikka"
		m.IsAvailable = false
	})

	all, err := s.menu.FindAll(s.ctx, s.canteen.ID, false)
	s.Require().NoError(err)
	s.Len(all, 2)

	available, err := s.menu.FindAll(s.ctx, s.canteen.ID, true)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("Mains", available[0].CategoryName)

	byIDs, err := s.menu.FindByIDs(s.ctx, s.canteen.ID, []uuid.UUID{thali.ID, soldOut.ID, uuid.New()})
	s.Require().NoError(err)
	s.Len(byIDs, 2)

	none, err := s.menu.FindByIDs(s.ctx, s.canteen.ID, nil)
	s.Require().NoError(err)
	s.Empty(none)

	categories, err := s.menu.Categories(s.ctx, s.canteen.ID)
	s.Require().NoError(err)
	s.Len(categories, 1)

	s.Require().NoError(s.menu.SoftDelete(s.ctx, s.canteen.ID, soldOut.ID, s.now))
	_, err = s.menu.FindByID(s.ctx, s.canteen.ID, soldOut.ID)
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *RepositorySuite) TestOrders() {
	thali := s.saveMenuItem()
	lassi := s.saveMenuItem(func(m *domain.MenuItem) {
		m.Name = "Lassi"
		m.Price = decimal.NewFromInt(40)
	})

	order := helpers.CreateTestOrder(s.canteen.ID, []domain.MenuItem{*thali, *lassi})
	s.Require().NoError(order.Validate())
	order.PrepareForStorage(s.now)
	s.Require().NoError(s.orders.Create(s.ctx, order))
	s.True(decimal.NewFromInt(320).Equal(order.TotalAmount))

	found, err := s.orders.FindByID(s.ctx, s.canteen.ID, order.ID)
	s.Require().NoError(err)
	s.Require().Len(found.Items, 2)
	s.True(order.TotalAmount.Equal(found.TotalAmount))
	names := []string{found.Items[0].MenuItemName, found.Items[1].MenuItemName}
	s.ElementsMatch([]string{"Veg Thali", "Lassi"}, names)

	staff := uuid.New()
	s.Require().NoError(found.TransitionTo(domain.OrderCompleted, &staff, s.now.Add(time.Minute)))
	s.Require().NoError(s.orders.UpdateStatus(s.ctx, found))

	for i := 0; i < 3; i++ {
		o := helpers.CreateTestOrder(s.canteen.ID, nil, func(o *domain.Order) {
			o.CustomerName = fmt.Sprintf("Walk-in %d", i)
		})
		o.PrepareForStorage(s.now.Add(time.Duration(i+1) * time.Second))
		s.Require().NoError(s.orders.Create(s.ctx, o))
	}

	completed, err := s.orders.FindAll(s.ctx, s.canteen.ID, ports.OrderQuery{
		Statuses:  []domain.OrderStatus{domain.OrderCompleted},
		WithItems: true,
	})
	s.Require().NoError(err)
	s.Require().Len(completed, 1)
	s.Require().NotNil(completed[0].ServedBy)
	s.Equal(staff, *completed[0].ServedBy)
	s.Len(completed[0].Items, 2)

	recent, err := s.orders.FindAll(s.ctx, s.canteen.ID, ports.OrderQuery{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal("Walk-in 2", recent[0].CustomerName)
}

func (s *RepositorySuite) TestFeedback() {
	for _, rating := range []int{5, 4, 1} {
		fb := helpers.CreateTestFeedback(s.canteen.ID, rating, func(f *domain.Feedback) {
			f.ID = uuid.New()
			f.CreatedAt = s.now
		})
		s.Require().NoError(s.feedback.Save(s.ctx, fb))
	}

	low, err := s.feedback.FindAll(s.ctx, s.canteen.ID, ports.FeedbackQuery{Rating: 1})
	s.Require().NoError(err)
	s.Require().Len(low, 1)

	s.Require().NoError(low[0].Respond("Sorry, we will do better", s.now))
	s.Require().NoError(s.feedback.UpdateResponse(s.ctx, &low[0]))

	responded, err := s.feedback.FindAll(s.ctx, s.canteen.ID, ports.FeedbackQuery{Status: domain.FeedbackResponded})
	s.Require().NoError(err)
	s.Require().Len(responded, 1)
	s.Equal("Sorry, we will do better", responded[0].Response)
	s.NotNil(responded[0].RespondedAt)
}

func (s *RepositorySuite) TestStaff() {
	owner := helpers.CreateTestStaffProfile(s.canteen.ID, domain.RoleOwner, func(p *domain.StaffProfile) {
		p.FullName = "Ravi Menon"
		p.CreatedAt, p.UpdatedAt = s.now, s.now
	})
	chef := helpers.CreateTestStaffProfile(s.canteen.ID, domain.RoleChef, func(p *domain.StaffProfile) {
		p.FullName = "Meera Nair"
		p.Phone = "+91 98450 11111"
		p.CreatedAt, p.UpdatedAt = s.now, s.now
	})
	for _, p := range []*domain.StaffProfile{owner, chef} {
		s.Require().NoError(s.staff.Save(s.ctx, p))
	}

	dup := helpers.CreateTestStaffProfile(s.canteen.ID, domain.RoleCashier, func(p *domain.StaffProfile) {
		p.Email = strings.ToUpper(chef.Email)
	})
	s.Error(s.staff.Save(s.ctx, dup), "email is unique per canteen regardless of case")

	found, err := s.staff.FindByID(s.ctx, s.canteen.ID, chef.ID)
	s.Require().NoError(err)
	s.Equal("+91 98450 11111", found.Phone)
	s.Equal(domain.RoleChef, found.Role)

	_, err = s.staff.FindByID(s.ctx, uuid.New(), chef.ID)
	s.ErrorIs(err, ports.ErrNotFound)

	matches, err := s.staff.FindAll(s.ctx, s.canteen.ID, ports.StaffQuery{Search: "meera"})
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal(chef.ID, matches[0].ID)

	owners, err := s.staff.CountActiveOwners(s.ctx, s.canteen.ID)
	s.Require().NoError(err)
	s.Equal(1, owners)

	found.IsActive = false
	found.Phone = ""
	found.UpdatedAt = s.now.Add(time.Hour)
	s.Require().NoError(s.staff.Update(s.ctx, found))

	inactive := false
	idle, err := s.staff.FindAll(s.ctx, s.canteen.ID, ports.StaffQuery{Active: &inactive})
	s.Require().NoError(err)
	s.Require().Len(idle, 1)
	s.Empty(idle[0].Phone)

	all, err := s.staff.FindAll(s.ctx, s.canteen.ID, ports.StaffQuery{})
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(domain.RoleOwner, all[0].Role)

	missing := helpers.CreateTestStaffProfile(s.canteen.ID, domain.RoleCashier)
	s.ErrorIs(s.staff.Update(s.ctx, missing), ports.ErrNotFound)
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}
