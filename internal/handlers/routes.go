// internal/handlers/routes.go
package handlers

import "net/http"

const apiV1 = "/api/v1"

// Router groups every HTTP handler the API serves. Nil handlers are
// skipped.
type Router struct {
	Health    *HealthHandler
	Dashboard *DashboardHandler
	Inventory *InventoryHandler
	Export    *ExportHandler
	Promotion *PromotionHandler
	Order     *OrderHandler
	Menu      *MenuHandler
	Feedback  *FeedbackHandler
	Settings  *SettingsHandler
	User      *UserHandler
}

// Register adds the routes to mux using Go 1.22 method patterns
func (rt *Router) Register(mux *http.ServeMux) {
	if h := rt.Health; h != nil {
		mux.HandleFunc("GET /health", h.Health)
		mux.HandleFunc("GET /health/live", h.Liveness)
		mux.HandleFunc("GET /health/ready", h.Readiness)
	}

	if h := rt.Dashboard; h != nil {
		mux.HandleFunc("GET "+apiV1+"/dashboard", h.GetDashboard)
	}

	if h := rt.Inventory; h != nil {
		mux.HandleFunc("GET "+apiV1+"/inventory", h.ListInventory)
		mux.HandleFunc("POST "+apiV1+"/inventory", h.CreateInventory)
		mux.HandleFunc("GET "+apiV1+"/inventory/alerts", h.Alerts)
		mux.HandleFunc("GET "+apiV1+"/inventory/{id}", h.GetInventory)
		mux.HandleFunc("PUT "+apiV1+"/inventory/{id}", h.UpdateInventory)
		mux.HandleFunc("DELETE "+apiV1+"/inventory/{id}", h.DeleteInventory)
		mux.HandleFunc("POST "+apiV1+"/inventory/{id}/restock", h.Restock)
		mux.HandleFunc("PUT "+apiV1+"/inventory/{id}/clearance", h.SetClearance)
		mux.HandleFunc("DELETE "+apiV1+"/inventory/{id}/clearance", h.ClearClearance)
		mux.HandleFunc("GET "+apiV1+"/clearance", h.Clearance)
	}

	if h := rt.Export; h != nil {
		mux.HandleFunc("GET "+apiV1+"/inventory/export", h.ExportInventory)
		mux.HandleFunc("POST "+apiV1+"/reports/inventory", h.RequestInventoryExport)
		mux.HandleFunc("GET "+apiV1+"/reports/inventory/{id}", h.ExportStatus)
	}

	if h := rt.Promotion; h != nil {
		mux.HandleFunc("GET "+apiV1+"/promotions", h.ListPromotions)
		mux.HandleFunc("POST "+apiV1+"/promotions", h.CreatePromotion)
		mux.HandleFunc("GET "+apiV1+"/promotions/{id}", h.GetPromotion)
		mux.HandleFunc("PUT "+apiV1+"/promotions/{id}", h.UpdatePromotion)
		mux.HandleFunc("DELETE "+apiV1+"/promotions/{id}", h.DeletePromotion)
	}

	if h := rt.Order; h != nil {
		mux.HandleFunc("GET "+apiV1+"/orders", h.ListOrders)
		mux.HandleFunc("POST "+apiV1+"/orders", h.CreateOrder)
		mux.HandleFunc("GET "+apiV1+"/orders/{id}", h.GetOrder)
		mux.HandleFunc("PATCH "+apiV1+"/orders/{id}/status", h.UpdateOrderStatus)
		mux.HandleFunc("GET "+apiV1+"/invoices", h.ListInvoices)
		mux.HandleFunc("POST "+apiV1+"/invoices", h.CreateInvoice)
	}

	if h := rt.Menu; h != nil {
		mux.HandleFunc("GET "+apiV1+"/menu/items", h.ListItems)
		mux.HandleFunc("POST "+apiV1+"/menu/items", h.CreateItem)
		mux.HandleFunc("GET "+apiV1+"/menu/items/{id}", h.GetItem)
		mux.HandleFunc("PUT "+apiV1+"/menu/items/{id}", h.UpdateItem)
		mux.HandleFunc("DELETE "+apiV1+"/menu/items/{id}", h.DeleteItem)
		mux.HandleFunc("GET "+apiV1+"/menu/categories", h.ListCategories)
		mux.HandleFunc("POST "+apiV1+"/menu/categories", h.CreateCategory)
	}

	if h := rt.Feedback; h != nil {
		mux.HandleFunc("GET "+apiV1+"/feedback", h.ListFeedback)
		mux.HandleFunc("POST "+apiV1+"/feedback", h.SubmitFeedback)
		mux.HandleFunc("POST "+apiV1+"/feedback/{id}/respond", h.RespondFeedback)
	}

	if h := rt.Settings; h != nil {
		mux.HandleFunc("GET "+apiV1+"/settings", h.GetSettings)
		mux.HandleFunc("PUT "+apiV1+"/settings", h.UpdateSettings)
	}

	if h := rt.User; h != nil {
		mux.HandleFunc("GET "+apiV1+"/users", h.ListUsers)
		mux.HandleFunc("GET "+apiV1+"/users/{id}", h.GetUser)
		mux.HandleFunc("PATCH "+apiV1+"/users/{id}", h.UpdateUser)
	}
}
