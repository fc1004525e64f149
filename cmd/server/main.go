package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"arena.backend/internal/config"
	"arena.backend/internal/infrastructure/datasources/postgres"
	"arena.backend/internal/infrastructure/jobs"
	"arena.backend/internal/infrastructure/repositories"
	"arena.backend/internal/interfaces/http/handlers"
	"arena.backend/internal/interfaces/http/middleware"
	"arena.backend/internal/usecases"
	"arena.backend/pkg/jwt"
	"arena.backend/pkg/logger"
	"arena.backend/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = postgres.NewConnection
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	uowFactory := repositories.NewUnitOfWorkFactory(db)

	authUsecase := usecases.NewAuthUsecase(uowFactory, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	tournamentUsecase := usecases.NewTournamentUsecase(uowFactory)
	matchUsecase := usecases.NewMatchUsecase(uowFactory)
	storeUsecase := usecases.NewStoreUsecase(uowFactory)

	authHandler := handlers.NewAuthHandler(authUsecase)
	gameHandler := handlers.NewGameHandler(uowFactory)
	teamHandler := handlers.NewTeamHandler(uowFactory)
	playerHandler := handlers.NewPlayerHandler(uowFactory)
	tournamentHandler := handlers.NewTournamentHandler(tournamentUsecase)
	matchHandler := handlers.NewMatchHandler(matchUsecase)
	newsHandler := handlers.NewNewsHandler(uowFactory)
	productHandler := handlers.NewProductHandler(storeUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Background registration expiry sweep on a long-lived session.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobUow := repositories.NewUnitOfWork(db)
	defer jobUow.Close()
	expiryJob := jobs.NewRegistrationExpiryJob(
		jobUow.Registrations(),
		cfg.Tournament.RegistrationTTL,
		cfg.Tournament.ExpiryInterval,
	)
	go expiryJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		gameHandler:       gameHandler,
		teamHandler:       teamHandler,
		playerHandler:     playerHandler,
		tournamentHandler: tournamentHandler,
		matchHandler:      matchHandler,
		newsHandler:       newsHandler,
		productHandler:    productHandler,
		authMiddleware:    authMiddleware,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "Shutting down server")
		expiryJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "Arena backend starting",
		zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
