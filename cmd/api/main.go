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

	"github.com/psunilk13/rmc-doctypes/internal/application/accounts"
	"github.com/psunilk13/rmc-doctypes/internal/application/auth"
	"github.com/psunilk13/rmc-doctypes/internal/application/production"
	"github.com/psunilk13/rmc-doctypes/internal/application/rates"
	"github.com/psunilk13/rmc-doctypes/internal/domain/workflow"
	infrapdf "github.com/psunilk13/rmc-doctypes/internal/infrastructure/pdf"
	"github.com/psunilk13/rmc-doctypes/internal/infrastructure/postgres"
	httpRouter "github.com/psunilk13/rmc-doctypes/internal/interfaces/http"
	"github.com/psunilk13/rmc-doctypes/pkg/config"
	"github.com/psunilk13/rmc-doctypes/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	stockRepo := postgres.NewStockEntryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	rateUC := rates.NewUseCase(rateRepo)
	provisioner := accounts.NewProvisioner(companyRepo, accountRepo, log)
	productionUC := production.NewUseCase(
		txRunner, batchRepo, bomRepo, companyRepo, rateUC, provisioner,
		production.Config{
			TransitWarehouse: cfg.RMC.TransitWarehouse,
			Thresholds: workflow.AlertThresholds{
				ProducedHours:  cfg.RMC.ProducedAlertHours,
				InTransitHours: cfg.RMC.InTransitAlertHours,
			},
		},
		log,
	)

	// PDF: remisión de entrega del lote
	docketGenerator := infrapdf.NewMarotoDocketGenerator()
	docketUC := production.NewDocketUseCase(batchRepo, stockRepo, companyRepo, docketGenerator)

	authUC := auth.NewUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "RMC API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		RateUC:       rateUC,
		ProductionUC: productionUC,
		DocketUC:     docketUC,
		Provisioner:  provisioner,
		JWTSecret:    cfg.JWT.Secret,
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
