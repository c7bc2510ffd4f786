package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/handler"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/provider"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/provider/google"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/auth/token"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/config"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/middleware"
	"github.com/Vindyani1999/snaplytics-auth-backend/internal/transport"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	stateStore, cleanup, err := setupStateStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	codec := token.NewCodec([]byte(cfg.JWTSecret), nil)

	strategy, err := transport.New(cfg.TokenDelivery, cfg.FrontendURL, cfg.CookieSecure)
	if err != nil {
		return nil, nil, err
	}

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleCallbackURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	authHandler := handler.NewHandler(
		registry,
		stateStore,
		codec,
		strategy,
		cfg.CookieSecure,
	)

	authMiddleware := middleware.NewAuthMiddleware(codec, strategy)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Snaplytics Auth Service Running")
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		identity, ok := middleware.IdentityFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": identity})
	})

	return router, cleanup, nil
}
