package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registra el esquema pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/paymojammn/taxmoja-app/pkg/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Direcciones de migración.
const (
	MigrateUp   = "up"
	MigrateDown = "down"
)

// Migrate aplica (up) o revierte (down) las migraciones embebidas. Sin cambios pendientes no es error.
func Migrate(cfg config.DBConfig, direction string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migraciones embebidas: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("inicializar migraciones: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case MigrateUp:
		err = m.Up()
	case MigrateDown:
		err = m.Down()
	default:
		return fmt.Errorf("dirección de migración desconocida: %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrar %s: %w", direction, err)
	}
	return nil
}
