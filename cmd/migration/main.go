package main

import (
	"context"
	"os"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/config"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/database"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// Aplica as migrações do catálogo de planos e cria os índices do MongoDB
func main() {
	cfg, envErr := config.Load()
	log := logger.NewLogger(cfg.Log)
	if envErr != nil {
		log.Warn("Arquivo .env não encontrado", "error", envErr)
	}

	if err := database.RunCatalogMigrations(cfg.Catalog.URL, log); err != nil {
		log.Error("Erro ao executar migrações", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := database.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		log.Error("Erro ao conectar com o MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := database.EnsureIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
		log.Error("Erro ao criar índices", "error", err)
		os.Exit(1)
	}

	log.Info("Migrações executadas com sucesso!")
}
