package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sheetbase/internal/config"
	"sheetbase/internal/database"
	"sheetbase/internal/handlers"
	"sheetbase/internal/middlewares"
	"sheetbase/internal/repositories"
	"sheetbase/internal/routes"
	"sheetbase/internal/services"
)

func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	cfg := config.Load()

	// pgx pool carries all dynamic-table SQL, the gorm connection the
	// registry models. Both point at the same database.
	pool, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	dsn, err := database.DSN()
	if err != nil {
		log.Fatalf("failed to build database DSN: %v", err)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database via gorm: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// Test Redis connection and fail fast with a clear message
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
		}
		log.Println("Connected to Redis successfully")
	}

	// Dependency injection
	uploadRepo := repositories.NewUploadRepository(db)
	userRepo := repositories.NewUserRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)
	configRepo := repositories.NewConfigRepository(db)
	dynamicRepo := repositories.NewDynamicTableRepository(pool)
	cacheRepo := repositories.NewCacheRepository(rdb)

	schemaService := services.NewSchemaService()
	ingestService := services.NewIngestService(uploadRepo, dynamicRepo, schemaService, cfg.MaxUploadBytes)
	queryService := services.NewQueryService(uploadRepo, dynamicRepo, configRepo, cacheRepo, cfg.PageSize, cfg.PublicSearchLimit)
	fileService := services.NewFileService(uploadRepo, dynamicRepo, configRepo, cacheRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	userService := services.NewUserService(userRepo, cacheRepo)

	authHandler := handlers.NewAuthHandler(userService)
	fileHandler := handlers.NewFileHandler(ingestService, fileService, queryService)
	publicHandler := handlers.NewPublicHandler(queryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	mw := routes.Middlewares{
		Authenticate:         middlewares.Authenticate(cacheRepo),
		OptionalAuthenticate: middlewares.OptionalAuthenticate(cacheRepo),
		RequireManage:        middlewares.RequireManage(userRepo),
		RequireView:          middlewares.RequireView(userRepo, settingsService),
	}

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, mw, authHandler, fileHandler, publicHandler, settingsHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
