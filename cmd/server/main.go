package main

import (
	"log"
	"net/http"
	"os"

	_ "hrgate/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hrgate/internal/auth"
	"hrgate/internal/cache"
	"hrgate/internal/config"
	"hrgate/internal/db"
	"hrgate/internal/handler"
	"hrgate/internal/identity"
	"hrgate/internal/model"
	"hrgate/internal/repository"
	"hrgate/internal/router"
	"hrgate/internal/service"
)

// @title HR Gate API
// @version 1.0
// @description Employee roster and QR attendance service with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.AttendanceRecord{},
			&model.Employee{},
			&model.Identity{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Identity{},
		&model.Employee{},
		&model.AttendanceRecord{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)
	identityRepo := repository.NewIdentityRepository(gormDB)

	// Initialize auth components
	provider := identity.NewLocalProvider(identityRepo)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(employeeRepo, provider, jwtService, tokenStore)
	rosterService := service.NewRosterService(employeeRepo, identityRepo, provider, cacheClient, cfg.DefaultPassword)
	attendanceService := service.NewAttendanceService(employeeRepo, attendanceRepo)
	statsService := service.NewStatsService(employeeRepo, attendanceRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	rosterHandler := handler.NewRosterHandler(rosterService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		rosterHandler,
		attendanceHandler,
		statsHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
