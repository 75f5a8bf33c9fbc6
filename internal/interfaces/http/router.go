package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/auth"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	StockUC     *usecase.StockUseCase
	CategoryUC  *usecase.CategoryUseCase
	WarehouseUC *usecase.WarehouseUseCase
	BranchUC    *usecase.BranchUseCase
	CommerceUC  *usecase.CommerceUseCase
	CustomerUC  *usecase.CustomerUseCase
	RegisterUC  *usecase.RegisterUseCase
	LocationUC  *usecase.LocationUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRoles(entity.RoleAdministrador)
	managers := RequireRoles(entity.RoleAdministrador, entity.RoleJefeLocal)

	// Auth: login público; el alta de personal exige un admin autenticado.
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido); mutaciones sólo admin y jefes de local
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/image", productHandler.Image)
	products.Post("/", managers, productHandler.Create)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)
	products.Post("/:id/disable", managers, productHandler.Disable)
	products.Post("/:id/enable", managers, stockHandler.Enable)

	// Stock (protegido); los ajustes sólo admin y jefes de local
	stock := protected.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Get("/products/:id", stockHandler.Aggregate)
	stock.Get("/export.csv", stockHandler.ExportCSV)
	stock.Get("/report.pdf", stockHandler.ReportPDF)
	stock.Post("/ajustes", managers, stockHandler.Adjust)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", managers, categoryHandler.Create)
	categories.Put("/:id", managers, categoryHandler.Update)
	categories.Delete("/:id", managers, categoryHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", adminOnly, warehouseHandler.Create)
	warehouses.Put("/:id", adminOnly, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	// Branches (protegido, administración sólo admin)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Post("/:id/manager", adminOnly, branchHandler.AssignManager)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Commerces (protegido, sólo admin)
	commerces := protected.Group("/commerces", adminOnly)
	commerceHandler := NewCommerceHandler(deps.CommerceUC)
	commerces.Get("/", commerceHandler.List)
	commerces.Get("/:id", commerceHandler.GetByID)
	commerces.Post("/", commerceHandler.Create)
	commerces.Put("/:id", commerceHandler.Update)
	commerces.Delete("/:id", commerceHandler.Delete)

	// Customers (protegido, cualquier rol del personal)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", managers, customerHandler.Delete)

	// Cash registers (protegido)
	registers := protected.Group("/registers")
	registerHandler := NewRegisterHandler(deps.RegisterUC)
	registers.Get("/", registerHandler.List)
	registers.Get("/:id", registerHandler.GetByID)
	registers.Post("/", managers, registerHandler.Create)
	registers.Put("/:id", managers, registerHandler.Update)
	registers.Post("/:id/cashier", managers, registerHandler.AssignCashier)
	registers.Delete("/:id", managers, registerHandler.Delete)

	// Users (protegido, sólo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Locations (protegido, referencia geográfica)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/regions", locationHandler.ListRegions)
	locations.Get("/communes", locationHandler.ListCommunes)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
