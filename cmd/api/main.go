package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bwcsoft/zapateria-api/internal/application/analytics"
	"github.com/bwcsoft/zapateria-api/internal/application/auth"
	"github.com/bwcsoft/zapateria-api/internal/application/inventory"
	"github.com/bwcsoft/zapateria-api/internal/application/purchasing"
	"github.com/bwcsoft/zapateria-api/internal/application/sales"
	"github.com/bwcsoft/zapateria-api/internal/application/usecase"
	"github.com/bwcsoft/zapateria-api/internal/infrastructure/postgres"
	httpRouter "github.com/bwcsoft/zapateria-api/internal/interfaces/http"
	"github.com/bwcsoft/zapateria-api/pkg/config"
	"github.com/bwcsoft/zapateria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (lecturas fuera de transacción)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	docStatRepo := postgres.NewDocumentStatusRepository(pool)
	payStatRepo := postgres.NewPaymentStatusRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movRepo := postgres.NewMovementRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, branchRepo, userRepo)
	inventoryQueriesUC := inventory.NewQueryUseCase(stockRepo, movRepo, productRepo, branchRepo)
	reconcileUC := inventory.NewReconcileUseCase(stockRepo, movRepo)
	purchaseUC := purchasing.NewCreatePurchaseUseCase(
		txRunner, supplierRepo, productRepo, branchRepo, userRepo,
		docStatRepo, payStatRepo, purchaseRepo,
	)
	saleUC := sales.NewCreateSaleUseCase(
		txRunner, customerRepo, productRepo, branchRepo, userRepo,
		docStatRepo, saleRepo,
	)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, inventoryQueriesUC)
	productUC := usecase.NewProductUseCase(productRepo, brandRepo, categoryRepo, sizeRepo)
	catalogUC := usecase.NewCatalogUseCase(brandRepo, categoryRepo, sizeRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Zapateria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		CatalogUC:        catalogUC,
		BranchUC:         branchUC,
		SupplierUC:       supplierUC,
		CustomerUC:       customerUC,
		RegisterMovement: registerMovementUC,
		InventoryQueries: inventoryQueriesUC,
		ReconcileUC:      reconcileUC,
		PurchaseUC:       purchaseUC,
		SaleUC:           saleUC,
		DashboardUC:      dashboardUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
