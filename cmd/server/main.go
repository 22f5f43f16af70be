package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carwash-backend/internal/auth"
	"carwash-backend/internal/cache"
	"carwash-backend/internal/config"
	"carwash-backend/internal/db"
	"carwash-backend/internal/database"
	"carwash-backend/internal/handlers"
	"carwash-backend/internal/health"
	apphttp "carwash-backend/internal/http"
	"carwash-backend/internal/middleware"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/services"
	"carwash-backend/migrations"
)

func main() {
	cfg := config.Load()

	// Database
	pool, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[DB] Connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("[DB] Connected to PostgreSQL")

	// Migrations
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("[Migrate] Failed: %v", err)
	}

	// Redis is optional; everything degrades to SQL without it
	if err := cache.Init(cfg); err != nil {
		log.Printf("[Cache] Redis unavailable, continuing without it: %v", err)
	} else {
		log.Println("[Cache] Connected to Redis")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	carRepo := repositories.NewCarRepository(pool)
	packageRepo := repositories.NewPackageRepository(pool)
	serviceRecordRepo := repositories.NewServiceRecordRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)

	// Rebuild the paid-services index so it reflects payments recorded
	// while Redis was down
	if paidIDs, err := paymentRepo.PaidServiceIDs(context.Background()); err == nil {
		cache.RebuildPaidServices(context.Background(), paidIDs)
	}

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	userService := services.NewUserService(userRepo, jwtManager)
	carService := services.NewCarService(carRepo)
	packageService := services.NewPackageService(packageRepo)
	serviceRecordService := services.NewServiceRecordService(serviceRecordRepo, carRepo, packageRepo)
	paymentService := services.NewPaymentService(paymentRepo, serviceRecordRepo)
	billingService := services.NewBillingService(serviceRecordRepo, paymentRepo, cfg.Company.Name, cfg.Company.Location)
	reportService := services.NewReportService(paymentRepo, reportRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	carHandler := handlers.NewCarHandler(carService)
	packageHandler := handlers.NewPackageHandler(packageService)
	serviceRecordHandler := handlers.NewServiceRecordHandler(serviceRecordService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, billingService)
	reportHandler := handlers.NewReportHandler(reportService, cfg.Company.Name)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := apphttp.NewRouter(
		authHandler,
		carHandler,
		packageHandler,
		serviceRecordHandler,
		paymentHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.NewCORS(cfg)(router))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[Server] Listening on :%d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] ListenAndServe: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[Server] Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[Server] Shutdown error: %v", err)
	}
	log.Println("[Server] Stopped")
}
