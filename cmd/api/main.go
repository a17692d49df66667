package main

import (
	"context"
	"net/http"
	"os"

	"github.com/civicworks/civicreport-backend/api/routes"
	"github.com/civicworks/civicreport-backend/internal/auth"
	"github.com/civicworks/civicreport-backend/internal/categories"
	"github.com/civicworks/civicreport-backend/internal/employees"
	"github.com/civicworks/civicreport-backend/internal/reports"
	"github.com/civicworks/civicreport-backend/internal/users"
	"github.com/civicworks/civicreport-backend/pkg/config"
	"github.com/civicworks/civicreport-backend/pkg/db"
	"github.com/civicworks/civicreport-backend/pkg/logger"
	"github.com/civicworks/civicreport-backend/pkg/metrics"
	"github.com/civicworks/civicreport-backend/pkg/migrate"
	"github.com/civicworks/civicreport-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// redis is optional; the categories cache degrades to direct reads
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:  users.NewRepository(dbClient.DB()),
		JWTConfig: cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{
		Repo: users.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	reportsService, err := reports.NewService(reports.ServiceParams{DB: dbClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create reports service", err)
		os.Exit(1)
	}

	employeesService, err := employees.NewService(employees.ServiceParams{
		Repo: employees.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create employees service", err)
		os.Exit(1)
	}

	categoriesParams := categories.ServiceParams{
		Repo:     categories.NewRepository(dbClient.DB()),
		CacheTTL: cfg.Cache.CategoryTTL,
		Logger:   logg,
	}
	if redisClient != nil {
		categoriesParams.Cache = redisClient
	}
	categoriesService, err := categories.NewService(categoriesParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create categories service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:            cfg,
			Logger:            logg,
			DB:                dbClient,
			HTTPMetrics:       httpMetrics,
			AuthService:       authService,
			RegisterService:   registerService,
			UsersService:      usersService,
			ReportsService:    reportsService,
			EmployeesService:  employeesService,
			CategoriesService: categoriesService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
