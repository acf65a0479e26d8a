package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-pos/internal/config"
	"restaurant-pos/internal/database"
	"restaurant-pos/internal/engine"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/messaging"
	"restaurant-pos/internal/seed"
	"restaurant-pos/internal/server"
	"restaurant-pos/internal/stats"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/store/memory"
	"restaurant-pos/internal/store/postgres"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to configuration file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
		storeKind  = flag.String("store", "postgres", "Backing store: postgres or memory")
		seedDemo   = flag.Bool("seed-demo", false, "Seed the demo dataset on startup")
	)
	flag.Parse()

	log := logger.New("pos-server")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config_load_failed", "startup", "Failed to load configuration", err, nil)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var st store.Store
	var db *database.DB

	switch *storeKind {
	case "postgres":
		db, err = database.New(cfg, log)
		if err != nil {
			log.Error("db_connection_failed", "startup", "Failed to connect to database", err, nil)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.RunMigrations(ctx, "migrations"); err != nil {
			log.Error("migrations_failed", "startup", "Failed to run migrations", err, nil)
			os.Exit(1)
		}
		st = postgres.NewStore(db)
	case "memory":
		st = memory.New()
	default:
		log.Error("invalid_store", "startup", fmt.Sprintf("Unknown store kind %q", *storeKind), nil, nil)
		os.Exit(1)
	}

	// The broker is optional in memory mode so the server can run
	// standalone for local development.
	var events engine.EventPublisher
	conn, err := messaging.New(cfg, log)
	if err != nil {
		if *storeKind == "postgres" {
			log.Error("rabbitmq_connection_failed", "startup", "Failed to connect to RabbitMQ", err, nil)
			os.Exit(1)
		}
		log.Info("rabbitmq_unavailable", "startup", "Running without a message broker", nil)
	} else {
		defer conn.Close()
		events = messaging.NewPublisher(conn, log)
	}

	if *seedDemo {
		if err := seed.Run(ctx, st); err != nil {
			log.Error("seed_failed", "startup", "Failed to seed demo data", err, nil)
			os.Exit(1)
		}
		log.Info("seed_completed", "startup", "Demo dataset seeded", nil)
	}

	eng := engine.New(st, events, log)
	agg := stats.New(st)
	handler := server.New(st, eng, agg, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server_started", "startup", fmt.Sprintf("Listening on %s", srv.Addr), map[string]interface{}{
			"store": *storeKind,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "startup", "HTTP server failed", err, nil)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("shutdown_signal", "shutdown", fmt.Sprintf("Received signal %v", sig), nil)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown_failed", "shutdown", "Graceful shutdown failed", err, nil)
	}
	log.Info("server_stopped", "shutdown", "Server stopped", nil)
}
