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

	appanalytics "github.com/jhoicas/stockms-api/internal/application/analytics"
	"github.com/jhoicas/stockms-api/internal/application/auth"
	"github.com/jhoicas/stockms-api/internal/application/reports"
	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/application/usecase"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
	"github.com/jhoicas/stockms-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockms-api/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/stockms-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockms-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockms-api/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/stockms-api/internal/interfaces/http"
	"github.com/jhoicas/stockms-api/pkg/config"
	"github.com/jhoicas/stockms-api/pkg/logger"
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
		Str("repos", cfg.Store.Repos).
		Str("sessions", cfg.Store.Sessions).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Repositorios: memoria (demo sembrada) o PostgreSQL.
	var (
		userRepo      repository.UserRepository
		productRepo   repository.ProductRepository
		categoryRepo  repository.CategoryRepository
		supplierRepo  repository.SupplierRepository
		orderRepo     repository.OrderRepository
		settingsRepo  repository.SettingsRepository
		analyticsRepo repository.AnalyticsRepository
		txRunner      usecase.OrderTxRunner
	)
	switch cfg.Store.Repos {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
		supplierRepo = postgres.NewSupplierRepository(pool)
		orderRepo = postgres.NewOrderRepository(pool)
		settingsRepo = postgres.NewSettingsRepository(pool)
		analyticsRepo = postgres.NewAnalyticsRepository(pool)
		txRunner = postgres.NewOrderTxRunner(pool)
	default:
		repos, err := memory.NewSeededRepos()
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demostración")
		}
		userRepo = repos.Users
		productRepo = repos.Products
		categoryRepo = repos.Categories
		supplierRepo = repos.Suppliers
		orderRepo = repos.Orders
		settingsRepo = repos.Settings
		analyticsRepo = repos.Analytics
		txRunner = repos.TxRunner
	}

	// Sesiones y blacklist: memoria o Redis compartido entre réplicas.
	var (
		sessionStore session.Store
		blacklist    auth.Blacklist
	)
	switch cfg.Store.Sessions {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		sessionStore = redisstore.NewSessionStore(client)
		blacklist = redisstore.NewBlacklist(client)
	default:
		sessionStore = memory.NewSessionStore()
		blacklist = memory.NewBlacklist()
	}

	sessions := session.NewManager(sessionStore)
	notifier := notify.NewLoggerNotifier(log)

	authUC := auth.NewUseCase(userRepo, sessions, blacklist, notifier, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, settingsRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, settingsRepo)
	reportUC := reports.NewUseCase(analyticsRepo, settingsRepo, infrapdf.NewMarotoReportGenerator())

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
		Title:    "StockMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		OrderUC:     orderUC,
		UserUC:      userUC,
		SettingsUC:  settingsUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		Blacklist:   blacklist,
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
