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

	"github.com/coopmarket/coopmarket-api/internal/application/auth"
	"github.com/coopmarket/coopmarket-api/internal/application/ports"
	"github.com/coopmarket/coopmarket-api/internal/application/usecase"
	"github.com/coopmarket/coopmarket-api/internal/infrastructure/cache"
	"github.com/coopmarket/coopmarket-api/internal/infrastructure/mailer"
	"github.com/coopmarket/coopmarket-api/internal/infrastructure/postgres"
	"github.com/coopmarket/coopmarket-api/internal/infrastructure/storage"
	httpRouter "github.com/coopmarket/coopmarket-api/internal/interfaces/http"
	"github.com/coopmarket/coopmarket-api/pkg/config"
	"github.com/coopmarket/coopmarket-api/pkg/logger"
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

	// Caché opcional: sin REDIS_ADDR la app sirve featured directo de la DB.
	var featuredCache ports.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		featuredCache = redisCache
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: caché de featured desactivado")
	}

	cooperativeRepo := postgres.NewCooperativeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	images := storage.NewLocalImageStore(cfg.Storage.UploadDir)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	baseURL := cfg.Storage.PublicBaseURL

	cooperativeUC := usecase.NewCooperativeUseCase(cooperativeRepo, images, featuredCache, log, baseURL)
	productUC := usecase.NewProductUseCase(productRepo, cooperativeRepo, images, featuredCache, log, baseURL)
	userUC := usecase.NewUserUseCase(userRepo, images, log, baseURL)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo, userRepo)
	contactUC := usecase.NewContactUseCase(cooperativeRepo, smtpMailer, cfg.SMTP.ContactEmail)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, baseURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    8 * 1024 * 1024,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.InitMetrics()
	app.Use(httpRouter.MetricsMiddleware())
	app.Get("/metrics", httpRouter.MetricsHandler())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CoopMarket API",
	}))

	// Imágenes subidas, servidas estáticamente
	app.Static("/uploads", cfg.Storage.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CooperativeUC: cooperativeUC,
		ProductUC:     productUC,
		UserUC:        userUC,
		DashboardUC:   dashboardUC,
		ContactUC:     contactUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		BaseURL:       baseURL,
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
