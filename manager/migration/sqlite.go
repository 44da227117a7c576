package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

const sqliteMigrationsTable = "schema_migrations"

// RunSQLiteMigration applies every pending schema migration to db. The
// database handle is left open.
func RunSQLiteMigration(db *sql.DB) error {
	src, err := iofs.New(sqliteMigrations, "sqlite")
	if err != nil {
		return fmt.Errorf("load sqlite migrations, err: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{
		MigrationsTable: sqliteMigrationsTable,
	})
	if err != nil {
		return fmt.Errorf("init sqlite migration driver, err: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("init migrate, err: %w", err)
	}
	// m.Close would close db through the driver, so only the source is released.
	defer src.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply sqlite migrations, err: %w", err)
	}
	return nil
}
