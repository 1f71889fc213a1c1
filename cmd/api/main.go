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

	"github.com/jhoicas/wms-api/internal/application/auth"
	"github.com/jhoicas/wms-api/internal/application/inventory"
	"github.com/jhoicas/wms-api/internal/application/monitoring"
	"github.com/jhoicas/wms-api/internal/application/navigation"
	"github.com/jhoicas/wms-api/internal/application/ports"
	"github.com/jhoicas/wms-api/internal/application/usecase"
	infraexcel "github.com/jhoicas/wms-api/internal/infrastructure/excel"
	inframail "github.com/jhoicas/wms-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/wms-api/internal/infrastructure/pdf"
	"github.com/jhoicas/wms-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/wms-api/internal/interfaces/http"
	"github.com/jhoicas/wms-api/pkg/config"
	"github.com/jhoicas/wms-api/pkg/idgen"
	"github.com/jhoicas/wms-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	codes, err := idgen.New(cfg.IDs.Node)
	if err != nil {
		log.Fatal().Err(err).Msg("generador de códigos")
	}

	catalog, err := navigation.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de navegación")
	}

	// Notificaciones de alertas por correo; sin SMTP configurado se descartan.
	var notifier ports.Notifier = ports.NopNotifier{}
	var mailer *inframail.Notifier
	if cfg.SMTP.Enabled() {
		mailer = inframail.NewNotifier(cfg.SMTP, cfg.Alerts, log)
		notifier = mailer
		log.Info().Str("smtp", cfg.SMTP.Host).Int("recipients", len(cfg.Alerts.Recipients)).Msg("notificaciones por correo activas")
	}

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	subWarehouseRepo := postgres.NewSubWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	receptionRepo := postgres.NewReceptionRepository(pool)
	replenishmentRepo := postgres.NewReplenishmentRepository(pool)
	readingRepo := postgres.NewTemperatureReadingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	cors, err := httpRouter.CORSMiddleware(cfg.CORS)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración CORS")
	}
	app.Use(cors)
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI: http://localhost:<port>/docs (solo si existe el swagger.json generado)
	if _, err := os.Stat(cfg.Docs.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.File,
			Path:     "docs",
			Title:    "WMS API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.File).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		Navigation:      catalog,
		UserUC:          usecase.NewUserUseCase(userRepo, roleRepo),
		RoleUC:          usecase.NewRoleUseCase(roleRepo),
		SubWarehouseUC:  usecase.NewSubWarehouseUseCase(subWarehouseRepo),
		LocationUC:      usecase.NewLocationUseCase(locationRepo, subWarehouseRepo, inventoryRepo),
		ProductUC:       usecase.NewProductUseCase(productRepo),
		LotUC:           usecase.NewLotUseCase(lotRepo, productRepo, infrapdf.NewLabelGenerator()),
		TaskUC:          usecase.NewTaskUseCase(taskRepo, userRepo, codes),
		AlertUC:         usecase.NewAlertUseCase(alertRepo),
		MovementUC:      inventory.NewMovementUseCase(txRunner, productRepo, lotRepo, locationRepo, movementRepo, notifier, log),
		InventoryQuery:  inventory.NewQueryUseCase(inventoryRepo, infraexcel.NewInventoryExporter()),
		ReceptionUC:     inventory.NewReceptionUseCase(txRunner, productRepo, locationRepo, subWarehouseRepo, receptionRepo, codes, notifier, log),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(txRunner, replenishmentRepo, lotRepo, locationRepo, codes, log),
		TemperatureUC:   monitoring.NewTemperatureUseCase(txRunner, readingRepo, subWarehouseRepo, notifier, log),
		ExpiryUC:        monitoring.NewExpiryUseCase(lotRepo, productRepo, alertRepo, notifier, log),
		JWTSecret:       cfg.JWT.Secret,
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
	if mailer != nil {
		if err := mailer.Close(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("cola de correo no vaciada por completo")
		}
	}

	log.Info().Msg("aplicación detenida")
}
