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

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/auth"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/usecase"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/infrastructure/cache"
	infrapdf "github.com/jmcstoltze/aplicacion-pos-on-render/internal/infrastructure/pdf"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/infrastructure/postgres"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/infrastructure/storage"
	httpRouter "github.com/jmcstoltze/aplicacion-pos-on-render/internal/interfaces/http"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/config"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool; el TxRunner ata copias a cada transacción.
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	commerceRepo := postgres.NewCommerceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	registerRepo := postgres.NewRegisterRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	imageStore := storage.NewImageStore(cfg.Media.Root, cfg.Media.MaxImageSize)
	reportGen := infrapdf.NewStockReportGenerator()

	// Caché opcional del dashboard (REDIS_ADDR vacío la deshabilita).
	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		time.Duration(cfg.Redis.TTLSecs)*time.Second, log)
	if redisCache != nil {
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, dashboard sin caché")
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}
	var dashboardCache usecase.DashboardCache
	var summaryInvalidator usecase.SummaryInvalidator
	if dc := cache.NewDashboardCache(redisCache); dc != nil {
		dashboardCache = dc
		summaryInvalidator = dc
	}

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, imageStore, txRunner,
		summaryInvalidator, cfg.Media.MaxImageSize, log)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo, warehouseRepo, commerceRepo,
		txRunner, reportGen, summaryInvalidator, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, branchRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, commerceRepo, locationRepo, userRepo)
	commerceUC := usecase.NewCommerceUseCase(commerceRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, locationRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	registerUC := usecase.NewRegisterUseCase(registerRepo, branchRepo, userRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, stockRepo, warehouseRepo, dashboardCache, log)
	authUC := auth.NewUseCase(userRepo, auth.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    8 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		StockUC:     stockUC,
		CategoryUC:  categoryUC,
		WarehouseUC: warehouseUC,
		BranchUC:    branchUC,
		CommerceUC:  commerceUC,
		CustomerUC:  customerUC,
		RegisterUC:  registerUC,
		LocationUC:  locationUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
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
