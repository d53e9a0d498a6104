package server

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/mohammad-safakhou/mundial/config"
)

// Migrate applies workflow-store migrations from the given directory.
// dir example: file://migrations
func Migrate(cfg config.PostgresConfig, dir string, direction string, steps int) error {
	if dir == "" {
		dir = "file://migrations"
	}
	dsn := cfg.DSN()
	if cfg.URL == "" && cfg.Host == "" {
		dsn = os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("no postgres configured: set storage.postgres or DATABASE_URL")
		}
	}

	m, err := migrate.New(dir, dsn)
	if err != nil {
		return err
	}
	switch direction {
	case "up":
		if steps > 0 {
			return m.Steps(steps)
		}
		return m.Up()
	case "down":
		if steps > 0 {
			return m.Steps(-steps)
		}
		return m.Down()
	default:
		return fmt.Errorf("unknown direction: %s", direction)
	}
}
