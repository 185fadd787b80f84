package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhive/accounts-api/docs"
	"github.com/userhive/accounts-api/internal/api/handler"
	"github.com/userhive/accounts-api/internal/api/middleware"
	"github.com/userhive/accounts-api/internal/core/service"
	"github.com/userhive/accounts-api/internal/infrastructure/config"
	mongodb "github.com/userhive/accounts-api/internal/infrastructure/db/mongo"
	"github.com/userhive/accounts-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL, cfg.IsProduction(), log)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes (public) ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/signin", authHandler.Signin)
	e.POST("/signout", authHandler.Signout)

	// --- User resource (authenticated) ---
	users := e.Group("/users", middleware.Auth(tokenService))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update, middleware.RequireSelfOrAdmin("id"))
	users.DELETE("/:id", userHandler.Delete, middleware.RequireSelfOrAdmin("id"))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
