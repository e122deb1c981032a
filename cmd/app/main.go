package main

import (
    "context"
    "log"
    "os"
    "os/signal"
    "syscall"

    "InfraPricing/internal/config"
    "InfraPricing/internal/logger"
    "InfraPricing/internal/server"
)

func main() {
    // Load configuration
    cfg, err := config.LoadWithFile()
    if err != nil {
        log.Fatalf("Failed to load configuration: %v", err)
    }

    // Initialize JSON logging
    entry := logger.New(cfg.InstanceName, cfg.LogLevel)
    log.SetFlags(0)
    log.SetOutput(&logger.JSONLogger{Entry: entry})

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    log.Printf("Serving on port %s...", cfg.Port)

    // Create and start server
    srv := server.New(cfg, entry)
    if err := srv.ListenAndServe(ctx); err != nil {
        entry.WithError(err).Fatal("server stopped")
    }
}
