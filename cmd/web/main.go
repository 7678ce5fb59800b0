package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petwork_backend/internal/app"
	"petwork_backend/internal/logger"
)

func main() {
	application, err := app.New()
	if err != nil {
		logger.Fatal("startup failed", "error", err)
	}

	go func() {
		if err := application.Run(); err != nil {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
