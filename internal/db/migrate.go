package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/arcalc/internal/db/migrations"
)

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

// RunMigrations runs goose migrations on the given PostgreSQL DSN.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	return runGoose(ctx, sqlDB, "postgres", migrations.PostgresDir)
}

// RunSQLiteMigrations runs goose migrations on an open SQLite database.
func RunSQLiteMigrations(ctx context.Context, sqlDB *sql.DB) error {
	return runGoose(ctx, sqlDB, "sqlite3", migrations.SQLiteDir)
}

func runGoose(ctx context.Context, sqlDB *sql.DB, dialect, dir string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
