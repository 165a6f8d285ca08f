package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/hugohenrick/food-backoffice/docs"
	"github.com/hugohenrick/food-backoffice/internal/config"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

func main() {
	cfg, envErr := config.Load()
	log := logger.NewLogger(cfg.Log)
	if envErr != nil {
		log.Warn("Arquivo .env não encontrado", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("Erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Servidor encerrado com erro", "error", err)
		}
	case <-ctx.Done():
		log.Info("Sinal recebido, encerrando")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Error("Erro ao encerrar servidor", "error", err)
		os.Exit(1)
	}
}
