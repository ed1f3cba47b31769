package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Hritik-Singh067/crm-backend/internal/api/handler"
	"github.com/Hritik-Singh067/crm-backend/internal/api/middleware"
	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
	"github.com/Hritik-Singh067/crm-backend/internal/core/service"
	crmmongo "github.com/Hritik-Singh067/crm-backend/internal/infrastructure/db/mongo"
	crmredis "github.com/Hritik-Singh067/crm-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every route except the liveness string, the login pair, /healthz, and
// /metrics sits behind the session gate.
func NewRouter(db *mongo.Database, rdb *redis.Client, writes ports.WriteQueue, sessionSecret string, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	adminRepo := crmmongo.NewAdminRepository(db)
	clientRepo := crmmongo.NewClientRepository(db)
	txRepo := crmmongo.NewTransactionRepository(db)
	sessions := crmredis.NewSessionStore(rdb, sessionTTL)

	authService := service.NewAuthService(adminRepo, sessions, sessionSecret, sessionTTL, log)
	clientService := service.NewClientService(clientRepo, writes, log)
	txService := service.NewTransactionService(txRepo, writes, log)
	dashService := service.NewDashboardService(txRepo, clientRepo, log)

	authHandler := handler.NewAuthHandler(authService, log)
	clientHandler := handler.NewClientHandler(clientService)
	txHandler := handler.NewTransactionHandler(txService)
	dashHandler := handler.NewDashboardHandler(dashService)
	statusHandler := handler.NewStatusHandler(db, rdb)

	gate := middleware.Session(authService)

	// --- Ungated routes ---
	e.GET("/", statusHandler.Root)
	e.GET("/healthz", statusHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)

	// --- Gated routes ---
	e.GET("/logout", authHandler.Logout, gate)
	e.POST("/register", authHandler.Register, gate)
	e.GET("/dashboard", dashHandler.Stats, gate)

	e.GET("/client", clientHandler.List, gate)
	e.POST("/client", clientHandler.Create, gate)
	e.PATCH("/client", clientHandler.Update, gate)
	e.DELETE("/client", clientHandler.Delete, gate)

	e.GET("/transaction", txHandler.List, gate)
	e.POST("/transaction", txHandler.Create, gate)
	e.PATCH("/transaction", txHandler.Update, gate)
	e.DELETE("/transaction", txHandler.Delete, gate)

	return e
}
