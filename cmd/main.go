package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	grpcHandler "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/report"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := setupLogger("info", "json")

	cfg := config.LoadConfig(logger)
	configureLogger(logger, cfg.LogLevel, cfg.LogFormat)
	logger.Info("Starting Catalog Service...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	database, err := db.Connect(ctx, cfg.DatabaseURL, db.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		PingTimeout:     cfg.DBQueryTimeout,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	if cfg.DBAutoMigrate {
		if err := db.EnsureSchema(ctx, database); err != nil {
			logger.Fatalf("Failed to prepare database schema: %v", err)
		}
		logger.Info("Database schema ensured.")
	}

	// --- Dependency Injection ---
	categoryRepo := repository.NewPostgresCategoryRepository(database, cfg.DBQueryTimeout, logger)
	productRepo := repository.NewPostgresProductRepository(database, cfg.DBQueryTimeout, logger)

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	dashboardUseCase := usecase.NewDashboardUseCase(categoryRepo, productRepo, logger)
	reportUseCase := usecase.NewReportUseCase(productRepo, report.NewPDFExporter(), cfg.ReportDir, logger)
	logger.Info("Use cases initialized.")

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := delivery.NewRouter(delivery.RouterConfig{
		Categories:   categoryUseCase,
		Products:     productUseCase,
		Dashboard:    dashboardUseCase,
		Reports:      reportUseCase,
		AllowOrigins: cfg.CORSAllowOrigins,
		StaticDir:    cfg.StaticDir,
		Logger:       logger,
	})
	logger.Info("API Routes registered.")

	// --- gRPC health ---
	health := grpcHandler.NewHealthHandler(database, cfg.DBQueryTimeout, logger)
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, health.Server())
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
	}
	go func() {
		logger.Infof("gRPC health server listening on %s", cfg.GrpcPort)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Errorf("gRPC server failed: %v", err)
			stop()
		}
	}()
	go health.Watch(ctx, cfg.HealthCheckInterval)

	// --- HTTP server ---
	srv := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}
	go func() {
		logger.Infof("Starting server on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("HTTP server failed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Warn("Shutdown signal received...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Catalog Service shut down gracefully.")
}

func setupLogger(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	configureLogger(logger, level, format)
	return logger
}

func configureLogger(logger *logrus.Logger, level, format string) {
	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'. Error: %v", level, err)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
}
