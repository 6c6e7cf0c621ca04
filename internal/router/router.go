package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/railbook/train-booking/internal/config"
	"github.com/railbook/train-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/railbook/train-booking/internal/middleware" // import middleware for JWT authentication, caching and rate limiting
)

// Handlers groups everything the router needs to wire the API.
type Handlers struct {
	Auth    *handler.AuthHandler
	Train   *handler.TrainHandler
	Booking *handler.BookingHandler
}

// RegisterRoutes registers the five API routes plus the health check on the
// provided Echo instance.  The paths (including the trailing slashes on
// /register/ and /login/) are part of the established API contract and must
// not change.  The rate limiter covers every route; the response cache
// covers only the availability query, since its result is the one read-heavy
// payload.  Both degrade to pass-throughs when rdb is nil.
func RegisterRoutes(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheCfg := config.LoadCacheConfig()

	// Health check for load balancers and monitoring systems.
	e.GET("/healthz", handler.Health)

	// User registration and login.
	e.POST("/register/", h.Auth.Register)
	e.POST("/login/", h.Auth.Login)

	// Train creation and the availability query.
	e.POST("/trains/create", h.Train.Create)
	e.GET("/trains/availability", h.Train.Availability,
		middleware.NewRedisCache(cacheCfg, rdb))

	// Booking requires a valid bearer token.  A committed booking changes
	// the advertised seat count, so the invalidator flushes the availability
	// cache whenever the handler succeeds.
	e.POST("/trains/:train_name/book", h.Booking.Book,
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.NewCacheInvalidator(cacheCfg, rdb))
}
