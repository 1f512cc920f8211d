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
	"github.com/redis/go-redis/v9"

	"github.com/jcastro/gastro-ops/internal/application/inventory"
	"github.com/jcastro/gastro-ops/internal/application/ports"
	"github.com/jcastro/gastro-ops/internal/application/reports"
	"github.com/jcastro/gastro-ops/internal/application/usecase"
	infrapdf "github.com/jcastro/gastro-ops/internal/infrastructure/pdf"
	"github.com/jcastro/gastro-ops/internal/infrastructure/postgres"
	"github.com/jcastro/gastro-ops/internal/infrastructure/rediscache"
	httpRouter "github.com/jcastro/gastro-ops/internal/interfaces/http"
	"github.com/jcastro/gastro-ops/pkg/config"
	"github.com/jcastro/gastro-ops/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Caché Redis opcional: sin REDIS_ADDR todo funciona contra la base.
	var cache ports.Cache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, caché deshabilitado")
		} else {
			cache = rediscache.New(client)
			defer client.Close()
		}
	}

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, itemRepo, movementRepo, cache)
	itemUC := usecase.NewItemUseCase(itemRepo, movementRepo, cache)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	shiftUC := usecase.NewShiftUseCase(shiftRepo, employeeRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, cache)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	inventoryReportUC := reports.NewInventoryReportUseCase(itemRepo, pdfGenerator)

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
		Title:    "GastroOps API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:          ledgerUC,
		ItemUC:          itemUC,
		EmployeeUC:      employeeUC,
		ShiftUC:         shiftUC,
		SaleUC:          saleUC,
		InventoryReport: inventoryReportUC,
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
