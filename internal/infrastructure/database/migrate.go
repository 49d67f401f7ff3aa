package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// sourceURL turns a migrations directory into an absolute file:// source URL.
func sourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("migrations dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("migrations dir %s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// RunMigrations brings the user_preferences schema up to date. A database
// left dirty by a failed migration is reported instead of migrated further.
func RunMigrations(dsn, migrationsPath string) error {
	src, err := sourceURL(migrationsPath)
	if err != nil {
		return err
	}
	m, err := migrate.New(src, dsn)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if version, dirty, err := m.Version(); err == nil && dirty {
		return fmt.Errorf("database is dirty at migration %d, fix it manually", version)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		version, _, _ := m.Version()
		log.Printf("✅ Database schema up to date (version=%d).", version)
	case err != nil:
		return fmt.Errorf("migration up: %w", err)
	default:
		version, _, _ := m.Version()
		log.Printf("✅ Migrations applied (version=%d).", version)
	}
	return nil
}
