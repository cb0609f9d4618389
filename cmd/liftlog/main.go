package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/terraincognita07/liftlog/internal/api"
	"github.com/terraincognita07/liftlog/internal/config"
	"github.com/terraincognita07/liftlog/internal/db"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg.JWT.Secret, cfg.Cookie.Secure, cfg.JWT.TTL)

	app := fiber.New(fiber.Config{
		AppName:               "LiftLog",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("LiftLog listening on %s (db: %s)", cfg.Server.Address, cfg.Database.Path)
	if err := app.Listen(cfg.Server.Address); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
