package main

import (
  "fmt"
  "os"
  "time"
  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/config"
  "github.com/yungbote/tripwise-backend/internal/db"
  "github.com/yungbote/tripwise-backend/internal/repos"
  redisclient "github.com/yungbote/tripwise-backend/internal/clients/redis"
  "github.com/yungbote/tripwise-backend/internal/services"
  "github.com/yungbote/tripwise-backend/internal/handlers"
  "github.com/yungbote/tripwise-backend/internal/middleware"
  "github.com/yungbote/tripwise-backend/internal/server"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Config
  log.Info("Loading configuration from main...")
  cfg, err := config.Load(log)
  if err != nil {
    log.Error("Could not load config", "error", err)
    os.Exit(1)
  }

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  tripRepo := repos.NewTripRepo(thePG, log)

  // Suggestion cache (optional)
  suggestionCache, err := redisclient.NewSuggestionCache(log)
  if err != nil {
    log.Warn("Suggestion cache unavailable, continuing without it", "error", err)
    suggestionCache = nil
  }

  // Services
  log.Info("Setting up Services from main...")
  geminiClient, err := services.NewGeminiClient(log, cfg.GeminiModel)
  if err != nil {
    log.Error("Could not init GeminiClient", "error", err)
    os.Exit(1)
  }
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, cfg.JWTSecretKey, time.Duration(cfg.AccessTokenTTL)*time.Second, time.Duration(cfg.RefreshTokenTTL)*time.Second)
  userService := services.NewUserService(thePG, log, userRepo)
  tripService := services.NewTripService(thePG, log, tripRepo)
  generationService := services.NewGenerationService(thePG, log, geminiClient, suggestionCache, time.Duration(cfg.SuggestionCacheTTL)*time.Second)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  userHandler := handlers.NewUserHandler(userService)
  tripHandler := handlers.NewTripHandler(log, tripService)
  generateHandler := handlers.NewGenerateHandler(log, generationService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AllowedOrigins:    cfg.AllowedOrigins,
    AuthHandler:       authHandler,
    AuthMiddleware:    authMiddleware,
    UserHandler:       userHandler,
    TripHandler:       tripHandler,
    GenerateHandler:   generateHandler,
  })

  fmt.Printf("Server listening on :%s\n", cfg.Port)
  if err := router.Run(":" + cfg.Port); err != nil {
    log.Warn("Server failed", "error", err)
  }
}
