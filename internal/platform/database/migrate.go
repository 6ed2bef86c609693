package database

import (
	"fmt"

	"github.com/pressly/goose/v3"

	"contractease/migrations"
)

// Migrate applies all pending schema migrations from the embedded filesystem.
func (p *Pool) Migrate() error {
	if p == nil || p.db == nil {
		return fmt.Errorf("database not configured")
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(p.db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
