package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/optica-pro/internal/application/admin"
	"github.com/tu-usuario/optica-pro/internal/application/auth"
	"github.com/tu-usuario/optica-pro/internal/application/backup"
	"github.com/tu-usuario/optica-pro/internal/application/session"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	Sessions    *session.Store
	StoreUC     *admin.StoreUseCase
	CustomerUC  *tenant.CustomerUseCase
	CheckupUC   *tenant.CheckupUseCase
	OrderUC     *tenant.OrderUseCase
	AggregateUC *admin.AggregationUseCase
	BackupUC    *backup.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. El middleware de autenticación corre
// sobre todo /api: resuelve el principal y sigue; quien corta es la puerta de
// acceso en los casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	// Auth: login público, el resto opera sobre el principal resuelto.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	authGroup.Post("/store/login", authHandler.StoreLogin)
	authGroup.Post("/store/logout", authHandler.StoreLogout)
	authGroup.Post("/store/refresh", authHandler.StoreRefresh)
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/admin/logout", authHandler.AdminLogout)
	authGroup.Post("/admin/refresh", authHandler.AdminRefresh)
	authGroup.Post("/logout", authHandler.LogoutAll)
	authGroup.Get("/status", authHandler.Status)

	// Stores: listado público (selector de login); escrituras del super admin.
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Post("/", storeHandler.Create)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Customers (por tienda)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Checkups (por tienda)
	checkups := api.Group("/checkups")
	checkupHandler := NewCheckupHandler(deps.CheckupUC)
	checkups.Post("/", checkupHandler.Create)
	checkups.Get("/:id", checkupHandler.GetByID)
	checkups.Put("/:id", checkupHandler.Update)
	checkups.Delete("/:id", checkupHandler.Delete)
	customers.Get("/:id/checkups", checkupHandler.ListByCustomer)

	// Orders (por tienda)
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	customers.Get("/:id/orders", orderHandler.ListByCustomer)
	api.Get("/reports/sales", orderHandler.SalesReport)

	// Respaldos
	backupHandler := NewBackupHandler(deps.BackupUC)
	api.Get("/backup/export", backupHandler.ExportStore)

	// Supervisión (super admin)
	adminGroup := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.AggregateUC)
	adminGroup.Get("/customers", adminHandler.Customers)
	adminGroup.Get("/checkups", adminHandler.Checkups)
	adminGroup.Get("/orders", adminHandler.Orders)
	adminGroup.Get("/reports/sales", adminHandler.SalesReport)
	adminGroup.Get("/summary/customers-by-store", adminHandler.CustomersByStore)
	adminGroup.Get("/summary/checkups-by-store", adminHandler.CheckupsByStore)
	adminGroup.Get("/summary/orders-by-store", adminHandler.OrdersByStore)
	adminGroup.Get("/backup/export", backupHandler.ExportAll)
}
