package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/yungbote/tripwise-backend/internal/handlers"
  "github.com/yungbote/tripwise-backend/internal/middleware"
)

type RouterConfig struct {
  AllowedOrigins    []string
  AuthHandler       *handlers.AuthHandler
  AuthMiddleware    *middleware.AuthMiddleware
  UserHandler       *handlers.UserHandler
  TripHandler       *handlers.TripHandler
  GenerateHandler   *handlers.GenerateHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins:     cfg.AllowedOrigins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  api := router.Group("/api")
  {
    api.POST("/register", cfg.AuthHandler.Register)
    api.POST("/login", cfg.AuthHandler.Login)
  }

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // User
  protected.GET("/user", cfg.UserHandler.GetMe)
  // Trips
  protected.POST("/trips", cfg.TripHandler.CreateTrip)
  protected.GET("/trips", cfg.TripHandler.ListUserTrips)
  protected.GET("/trips/:id", cfg.TripHandler.GetTrip)
  protected.PUT("/trips/:id/checklist", cfg.TripHandler.ReplaceChecklist)
  protected.PATCH("/trips/:id/checklist/toggle", cfg.TripHandler.ToggleChecklistItem)
  protected.DELETE("/trips/:id", cfg.TripHandler.DeleteTrip)
  // Generation
  protected.POST("/gemini", cfg.GenerateHandler.GenerateChecklist)
  protected.POST("/gemini-activities", cfg.GenerateHandler.SuggestActivities)

  return router
}
