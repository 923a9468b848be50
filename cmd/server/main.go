package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Quentin-Piot/posts-service/internal/app/runtime"
	"github.com/Quentin-Piot/posts-service/internal/config"
	"github.com/Quentin-Piot/posts-service/pkg/logger"
)

func main() {
	_ = godotenv.Load() // allow .env for local runs

	log := logger.NewDefault("main")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("load config")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := runtime.NewApplication(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("initialise application")
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		log.WithError(err).Error("server failed")
	}

	if err := application.Shutdown(context.Background()); err != nil {
		log.WithError(err).Error("shutdown")
		os.Exit(1)
	}
}
