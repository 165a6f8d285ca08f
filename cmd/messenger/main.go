package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/food-backoffice/internal/config"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/messaging"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// Consome a fila de avisos ao cliente e entrega cada um pelo gateway de mensagens
func main() {
	cfg, envErr := config.Load()
	log := logger.NewLogger(cfg.Log)
	if envErr != nil {
		log.Warn("Arquivo .env não encontrado", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// sem Redis a deduplicação fica desligada, mas a entrega continua
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis indisponível, seguindo sem deduplicação", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	reader := messaging.NewKafkaReader(cfg.KafkaBrokers, cfg.KafkaMessagesTopic, cfg.KafkaGroupID)
	defer func() {
		if err := reader.Close(); err != nil {
			log.Warn("erro ao fechar consumidor Kafka", "error", err)
		}
	}()

	messenger := messaging.NewHTTPMessenger(cfg.MessengerURL, cfg.MessengerToken, cfg.MessengerTimeout, log)
	dispatcher := messaging.NewDispatcher(reader, messenger, cache.NewRedisCache(redisClient, log), log)

	if err := dispatcher.Run(ctx); err != nil {
		log.Error("Despachante encerrado com erro", "error", err)
		os.Exit(1)
	}
}
