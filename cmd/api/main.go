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
	"github.com/tu-usuario/optica-pro/internal/application/admin"
	"github.com/tu-usuario/optica-pro/internal/application/auth"
	"github.com/tu-usuario/optica-pro/internal/application/backup"
	"github.com/tu-usuario/optica-pro/internal/application/session"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
	"github.com/tu-usuario/optica-pro/internal/infrastructure/events"
	"github.com/tu-usuario/optica-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/optica-pro/internal/infrastructure/redisstore"
	httpRouter "github.com/tu-usuario/optica-pro/internal/interfaces/http"
	"github.com/tu-usuario/optica-pro/pkg/config"
	"github.com/tu-usuario/optica-pro/pkg/logger"
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migrar esquema")
	}

	rdb, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	// Broker de eventos de pedidos: opcional, sin URL se descartan.
	var publisher tenant.OrderEventPublisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		p, err := events.NewPublisher(cfg.AMQP.URL)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ no disponible, eventos desactivados")
		} else {
			publisher = p
			defer p.Close()
		}
	}

	storeRepo := postgres.NewStoreRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	checkupRepo := postgres.NewCheckupRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	sessionRepo := redisstore.NewSessionRepository(rdb)

	sessions := session.New(sessionRepo, nil)
	authUC := auth.New(storeRepo, sessions,
		auth.SuperAdminCredentials{Username: cfg.SuperAdmin.Username, Password: cfg.SuperAdmin.Password},
		auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
	)
	storeUC := admin.NewStoreUseCase(storeRepo)
	customerUC := tenant.NewCustomerUseCase(customerRepo)
	checkupUC := tenant.NewCheckupUseCase(checkupRepo, customerRepo, orderRepo)
	orderUC := tenant.NewOrderUseCase(orderRepo, customerRepo, checkupRepo, txRunner, publisher, log.Zerolog())
	aggregateUC := admin.NewAggregationUseCase(adminRepo)
	backupUC := backup.NewUseCase(storeRepo, customerRepo, checkupRepo, orderRepo, adminRepo, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
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
		Title:    "Optica Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Sessions:    sessions,
		StoreUC:     storeUC,
		CustomerUC:  customerUC,
		CheckupUC:   checkupUC,
		OrderUC:     orderUC,
		AggregateUC: aggregateUC,
		BackupUC:    backupUC,
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
