package main

import (
	"context"
	"os"

	"quickchat/config"
	"quickchat/internal/bootstrap"
	"quickchat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.LogMode, logger.WithLevel(cfg.LogLevel), logger.WithService("quickchat"))
	defer l.Sync()
	logger.SetGlobalLogger(l)

	srv, cleanup, err := bootstrap.NewServer(context.Background(), cfg, l)
	if err != nil {
		l.Errorf("Failed to initialize: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited: %v", err)
	}
}
