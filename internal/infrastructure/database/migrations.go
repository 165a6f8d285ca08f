package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// CatalogMigrationsPath é o diretório das migrações do catálogo de planos
var CatalogMigrationsPath = filepath.Join("migrations", "catalog")

// RunCatalogMigrations aplica as migrações pendentes do catálogo de planos
func RunCatalogMigrations(databaseURL string, log logger.Logger) error {
	sourceURL := fmt.Sprintf("file://%s", CatalogMigrationsPath)

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("erro ao ler versão das migrações: %w", err)
	}
	log.Info("Migrações do catálogo aplicadas", "version", version, "dirty", dirty)
	return nil
}
