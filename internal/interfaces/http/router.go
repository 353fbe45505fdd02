package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bwcsoft/zapateria-api/internal/application/analytics"
	"github.com/bwcsoft/zapateria-api/internal/application/auth"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/application/purchasing"
	"github.com/bwcsoft/zapateria-api/internal/application/sales"
	"github.com/bwcsoft/zapateria-api/internal/application/usecase"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	CatalogUC        *usecase.CatalogUseCase
	BranchUC         *usecase.BranchUseCase
	SupplierUC       *usecase.SupplierUseCase
	CustomerUC       *usecase.CustomerUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	InventoryQueries *inventory.QueryUseCase
	ReconcileUC      *inventory.ReconcileUseCase
	PurchaseUC       *purchasing.CreatePurchaseUseCase
	SaleUC           *sales.CreateSaleUseCase
	DashboardUC      *analytics.DashboardUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/users", RequireRole(entity.RoleAdministrador), authHandler.ListUsers)

	// Catálogo (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdministrador), productHandler.Delete)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	brands := protected.Group("/brands")
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/", catalogHandler.ListBrands)
	brands.Put("/:id", catalogHandler.UpdateBrand)
	brands.Delete("/:id", RequireRole(entity.RoleAdministrador), catalogHandler.DeleteBrand)

	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", RequireRole(entity.RoleAdministrador), catalogHandler.DeleteCategory)

	sizes := protected.Group("/sizes")
	sizes.Post("/", catalogHandler.CreateSize)
	sizes.Get("/", catalogHandler.ListSizes)
	sizes.Delete("/:id", RequireRole(entity.RoleAdministrador), catalogHandler.DeleteSize)

	branchHandler := NewBranchHandler(deps.BranchUC)
	branches := protected.Group("/branches")
	branches.Post("/", RequireRole(entity.RoleAdministrador), branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", RequireRole(entity.RoleAdministrador), branchHandler.Update)
	branches.Delete("/:id", RequireRole(entity.RoleAdministrador), branchHandler.Delete)

	// Proveedores y clientes (protegido)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleAdministrador), supplierHandler.Delete)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdministrador), customerHandler.Delete)

	// Inventario: ajustes y traslados para administradores y almacenistas;
	// lecturas para cualquier usuario autenticado.
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryQueries, deps.ReconcileUC)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", RequireRole(entity.RoleAdministrador, entity.RoleAlmacenista), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListRecentMovements)
	invGroup.Get("/movements/product/:id", inventoryHandler.ListMovementsByProduct)
	invGroup.Get("/movements/branch/:id", inventoryHandler.ListMovementsByBranch)
	invGroup.Get("/stock/low", inventoryHandler.ListLowStock)
	invGroup.Get("/stock/branch/:id", inventoryHandler.ListStockByBranch)
	invGroup.Get("/stock/product/:id", inventoryHandler.ListStockByProduct)
	invGroup.Get("/stock/:productId/:branchId", inventoryHandler.GetStock)
	invGroup.Get("/reconciliation", RequireRole(entity.RoleAdministrador), inventoryHandler.Reconcile)

	// Compras (protegido, solo administradores)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases := protected.Group("/purchases", RequireRole(entity.RoleAdministrador))
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Ventas (protegido, administradores y vendedores)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales", RequireRole(entity.RoleAdministrador, entity.RoleVendedor))
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Delete("/:id", RequireRole(entity.RoleAdministrador), saleHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
}
