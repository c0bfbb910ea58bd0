package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pradeep1865/websiteFromStitchDesign/docs"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/api/handler"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/api/middleware"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/service"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/config"
	redisdb "github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/db/redis"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/store"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; login throttling is simply disabled then.
func NewRouter(cfg *config.Config, st *store.Store, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	var throttle service.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb)
	}

	authService := service.NewAuthService(st, throttle, log)
	catalogService := service.NewCatalogService(st, log)

	authHandler := handler.NewAuthHandler(authService, cfg.JWTSecret, 24*time.Hour)
	productHandler := handler.NewProductHandler(catalogService)
	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)
	g.GET("/profile", authHandler.Profile, authRequired)

	g.GET("/products", productHandler.List)
	g.GET("/products/:id", productHandler.Get)
	g.POST("/products", productHandler.Create)
	g.PUT("/products/:id", productHandler.Update)
	g.DELETE("/products/:id", productHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(st, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is a backend resolved and reachable?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Storefront static assets ---
	e.Static("/", cfg.StaticDir)

	return e
}
