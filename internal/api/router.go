package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/harvestly/farmbook-api/docs"
	"github.com/harvestly/farmbook-api/internal/api/handler"
	"github.com/harvestly/farmbook-api/internal/core/service"
	mongostore "github.com/harvestly/farmbook-api/internal/infrastructure/db/mongo"
	redisdb "github.com/harvestly/farmbook-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the farm cache then degrades to pass-through.
func NewRouter(store *mongostore.Store, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The browsing UI calls the API from the browser; any origin may call
	// these endpoints.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("farmbook"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(store)
	farmRepo := mongostore.NewFarmRepository(store)
	bookingRepo := mongostore.NewBookingRepository(store)
	reviewRepo := mongostore.NewReviewRepository(store)
	farmCache := redisdb.NewFarmCache(rdb, log)

	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, log))
	farmHandler := handler.NewFarmHandler(service.NewFarmService(farmRepo, farmCache, log))
	bookingHandler := handler.NewBookingHandler(service.NewBookingService(bookingRepo, farmRepo, log))
	reviewHandler := handler.NewReviewHandler(service.NewReviewService(reviewRepo, userRepo, log))

	// --- API routes ---
	g := e.Group("/api")
	g.GET("/farms", farmHandler.List)
	g.GET("/farms/:id", farmHandler.Get)
	g.POST("/farms", farmHandler.Create)
	g.POST("/users", userHandler.Create)
	g.POST("/bookings", bookingHandler.Create)
	g.GET("/bookings/user/:userId", bookingHandler.ListForUser)
	g.POST("/reviews", reviewHandler.Create)
	g.GET("/reviews", reviewHandler.List)

	// --- Operational endpoints ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "server is running")
	})
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
