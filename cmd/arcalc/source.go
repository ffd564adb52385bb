package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/arcalc/internal/config"
	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/db"
)

// loadCatalog reads the weapon catalog from the configured source.
func loadCatalog(ctx context.Context, cfg config.DataConfig) (*data.Catalog, error) {
	switch cfg.Source {
	case config.SourceEmbedded:
		return data.LoadDefaultCatalog()
	case config.SourceFile:
		return data.LoadCatalogFile(cfg.File)
	case config.SourcePostgres, config.SourceSQLite:
		repo, closeRepo, err := openRepository(ctx, cfg, cfg.Source)
		if err != nil {
			return nil, err
		}
		defer closeRepo()

		catalog, err := db.LoadCatalog(ctx, repo)
		if err != nil {
			return nil, err
		}
		if catalog.Len() == 0 {
			slog.Warn("weapon database is empty, run arcalc import", "source", cfg.Source)
		}
		return catalog, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
}

// openRepository connects to a database backend and applies migrations.
func openRepository(ctx context.Context, cfg config.DataConfig, backend string) (db.WeaponRepository, func(), error) {
	switch backend {
	case config.SourcePostgres:
		dsn := cfg.Database.DSN()
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx, dsn); err != nil {
			database.Close()
			return nil, nil, err
		}
		slog.Debug("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return database.Weapons(), database.Close, nil

	case config.SourceSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("sqlite opened", "path", cfg.SQLitePath)
		return db.NewSQLiteWeaponRepository(sqlDB), func() { _ = sqlDB.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("%q is not a database backend (want %s or %s)",
			backend, config.SourcePostgres, config.SourceSQLite)
	}
}
