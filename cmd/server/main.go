package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-hub/internal/config"
	"github.com/iliyamo/event-hub/internal/database"
	"github.com/iliyamo/event-hub/internal/handler"
	"github.com/iliyamo/event-hub/internal/queue"
	"github.com/iliyamo/event-hub/internal/repository"
	"github.com/iliyamo/event-hub/internal/router"
	"github.com/iliyamo/event-hub/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	authSvc := &service.AuthService{
		Users:       repository.NewUserRepo(db),
		Admins:      repository.NewAdminRepo(db),
		UserTokens:  repository.NewUserTokenRepo(db),
		AdminTokens: repository.NewAdminTokenRepo(db),
		Secret:      cfg.JWTSecret,
		TokenTTL:    time.Duration(cfg.TokenTTLHours) * time.Hour,
		SessionTTL:  time.Duration(cfg.SessionTTLDay) * 24 * time.Hour,
		BcryptCost:  cfg.BcryptCost,
	}
	eventSvc := service.NewEventService(repository.NewEventRepo(db))

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(authSvc), cfg.JWTSecret, rdb)
	router.RegisterEvents(e, handler.NewEventHandler(eventSvc), cfg.JWTSecret, rdb)

	// Audit consumer for event.changed; runs its own reconnect loop.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
