package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/giovan110109-blip/homePageuUni/devserver"
	"github.com/giovan110109-blip/homePageuUni/internal/config"
	"github.com/giovan110109-blip/homePageuUni/internal/logger"
)

func main() {
	log := logger.New("homepage-devserver")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := devserver.Run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("devserver exited with error")
		stop()
		os.Exit(1)
	}
}
