package main // Entry point package

import (
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/railbook/train-booking/internal/config"   // Internal config loader
	"github.com/railbook/train-booking/internal/database" // Database open + schema bootstrap
	"github.com/railbook/train-booking/internal/handler"
	"github.com/railbook/train-booking/internal/queue"
	"github.com/railbook/train-booking/internal/repository"
	"github.com/railbook/train-booking/internal/router" // Internal router setup
	"github.com/railbook/train-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	// Optional Redis: nil disables the response cache and rate limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	trains := repository.NewTrainRepo(db)
	bookings := repository.NewBookingRepo(db)

	var publisher *service.QueuePublisher
	if os.Getenv("QUEUE_ENABLED") != "false" {
		publisher = service.NewQueuePublisher()
		go queue.StartBookingConsumer()
	}

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users),
		Train:   handler.NewTrainHandler(trains),
		Booking: handler.NewBookingHandler(bookings, publisher),
	}

	e := echo.New()
	router.RegisterRoutes(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, driver=%s)", addr, cfg.Env, cfg.DBDriver)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
