package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bankcore/client-registry/docs"
	"github.com/bankcore/client-registry/internal/api/handler"
	"github.com/bankcore/client-registry/internal/api/middleware"
	"github.com/bankcore/client-registry/internal/core/service"
	"github.com/bankcore/client-registry/internal/infrastructure/config"
	mongodb "github.com/bankcore/client-registry/internal/infrastructure/db/mongo"
	redisdb "github.com/bankcore/client-registry/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered. Everything
// under /clients requires a bearer token; the login, docs, health and metrics
// endpoints are the public allowlist.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("client_registry"))

	// --- Dependencies ---
	clientRepo := mongodb.NewClientRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	clientCache := redisdb.NewClientCache(rdb, log)
	clientService := service.NewClientService(clientRepo, productRepo, clientCache, log)
	clientHandler := handler.NewClientHandler(clientService)

	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Client routes (bearer token required) ---
	clients := e.Group("/clients", authMiddleware)
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.GetAll)
	clients.GET("/:id", clientHandler.GetByID)
	clients.GET("/producto/:tipoProductoBancario", clientHandler.GetByProductType)
	clients.PUT("/:id", clientHandler.Update)
	clients.PATCH("/:id", clientHandler.PartialUpdate)
	clients.PATCH("/:id/telefono", clientHandler.UpdatePhone)
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
