package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/todoly/backend/internal/config"
	"github.com/todoly/backend/internal/core/services"
	"github.com/todoly/backend/internal/domain"
	"github.com/todoly/backend/internal/infrastructure/logger"
	transporthttp "github.com/todoly/backend/internal/transport/http"
)

func main() {
	configPath := os.Getenv(config.EnvPrefix + "_CONFIG")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	var seed []domain.Todo
	if cfg.Registry.Seed {
		seed = domain.SeedTodos()
	}

	broker := services.NewTodoBroker(cfg.Stream.BufferSize, log.Component("stream"))
	registry := services.NewTodoRegistry(services.TodoRegistryConfig{
		Seed:   seed,
		Events: broker,
		Logger: log.Component("registry"),
	})
	log.Infow("todo registry ready", "seeded", len(seed))

	app := transporthttp.NewApp(cfg, log, transporthttp.RouterConfig{
		Todos:  registry,
		Events: broker,
		Logger: log.Component("http"),
	})

	addr := cfg.Server.Address()
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	log.Infof("To-Do List API running on http://localhost:%d", cfg.Server.Port)
	for _, route := range transporthttp.Routes {
		log.Infof("route: %s", route)
	}

	gracefulShutdown(app, broker, log)
}

func gracefulShutdown(app *fiber.App, broker *services.TodoBroker, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down server...")

	// Closing the broker ends open websocket streams before fiber waits on them.
	broker.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("server exited gracefully")
}
