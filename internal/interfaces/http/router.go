package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockms-api/internal/application/analytics"
	"github.com/jhoicas/stockms-api/internal/application/auth"
	"github.com/jhoicas/stockms-api/internal/application/reports"
	"github.com/jhoicas/stockms-api/internal/application/usecase"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	OrderUC     *usecase.OrderUseCase
	UserUC      *usecase.UserUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.UseCase
	Blacklist   auth.Blacklist
	JWTSecret   string
}

// Router registra las rutas de la API.
//
// Acceso por rol (espejo del menú de navegación):
//   - Dashboard y órdenes: todos los roles.
//   - Productos, categorías, proveedores y reportes: Admin y Assistant.
//   - Usuarios y configuración: solo Admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := []string{entity.RoleAdmin, entity.RoleAssistant}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Blacklist))

	// Sesión y perfil (cualquier rol autenticado)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)
	protected.Delete("/auth/session/error", authHandler.ClearError)
	protected.Put("/auth/profile", authHandler.UpdateProfile)

	// Navegación (cualquier rol autenticado)
	navigationHandler := NewNavigationHandler()
	protected.Get("/navigation", navigationHandler.Menu)

	// Dashboard (cualquier rol autenticado)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Products (Admin y Assistant)
	products := protected.Group("/products", RequireRole(staff...))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories (Admin y Assistant)
	categories := protected.Group("/categories", RequireRole(staff...))
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers (Admin y Assistant)
	suppliers := protected.Group("/suppliers", RequireRole(staff...))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Orders (cualquier rol autenticado; el Cashier también vende)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)

	// Reports (Admin y Assistant)
	reportsGroup := protected.Group("/reports", RequireRole(staff...))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/sales/pdf", reportHandler.ExportPDF)

	// Users (solo Admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Settings (solo Admin)
	settings := protected.Group("/settings", RequireRole(entity.RoleAdmin))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
