// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"pantry/config"
	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"
	domainerrors "pantry/internal/domain/errors"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes, throttled to slow down credential stuffing
	authGroup := e.Group("/auth")
	if limiter := r.authRateLimiter(); limiter != nil {
		authGroup.Use(limiter)
	}
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
	}
	e.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	// Recipe feed is public, mutations require authentication
	recipeGroup := e.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.GET("/:id", r.recipeHandler.Get)

		recipeGroup.POST("", r.recipeHandler.Create, r.authMiddleware.Authenticate)
		recipeGroup.PUT("/:id", r.recipeHandler.Update, r.authMiddleware.Authenticate)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete, r.authMiddleware.Authenticate)
		recipeGroup.POST("/:id/like", r.recipeHandler.ToggleLike, r.authMiddleware.Authenticate)
	}
}

// authRateLimiter builds a per-IP token bucket limiter for the auth group.
// Returns nil when rate limiting is not configured.
func (r *router) authRateLimiter() echo.MiddlewareFunc {
	limitCfg := r.cfg.RateLimit
	if limitCfg == nil || limitCfg.RequestsPerSecond <= 0 {
		return nil
	}

	burst := limitCfg.Burst
	if burst < 1 {
		burst = 1
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(limitCfg.RequestsPerSecond),
			Burst: burst,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrRateLimitExceeded
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrRateLimitExceeded
		},
	})
}
