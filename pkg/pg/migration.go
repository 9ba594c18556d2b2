package pg

import (
	"embed"

	_ "github.com/lib/pq"
	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrate applies migrations from dir, or the embedded set when dir is empty.
func Migrate(cfg Config, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := newSqlConnection(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if dir == "" {
		goose.SetBaseFS(embeddedMigrations)
		defer goose.SetBaseFS(nil)
		dir = "migrations"
	}

	logger.Info("running migrations", "dir", dir)
	return goose.Up(db, dir)
}
