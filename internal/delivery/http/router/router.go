// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wellness/config"
	"wellness/internal/delivery/http/middleware"
	"wellness/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	MoodHandler    *handler.MoodHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	basePath       string
	authHandler    *handler.AuthHandler
	moodHandler    *handler.MoodHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		basePath:       params.Config.HTTP.BasePath,
		authHandler:    params.AuthHandler,
		moodHandler:    params.MoodHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/", r.healthHandler.Index)

	api := e.Group(r.basePath)

	api.GET("/mood-types", r.moodHandler.MoodTypes, r.authMiddleware.OptionalAuth)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google-login", r.authHandler.GoogleLogin)

		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PUT("/me", r.authHandler.UpdateMe, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// Mood routes that require authentication
	moodGroup := api.Group("/mood")
	moodGroup.Use(r.authMiddleware.Authenticate)
	{
		moodGroup.GET("", r.moodHandler.List)
		moodGroup.POST("", r.moodHandler.Create)
		moodGroup.GET("/stats", r.moodHandler.Stats)
		moodGroup.PUT("/:id", r.moodHandler.Update)
		moodGroup.DELETE("/:id", r.moodHandler.Delete)
	}
}
