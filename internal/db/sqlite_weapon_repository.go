package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
)

// SQLiteWeaponRepository хранит справочник оружия в локальном файле SQLite.
type SQLiteWeaponRepository struct {
	db *sql.DB
}

// NewSQLiteWeaponRepository wraps a database opened with OpenSQLite.
func NewSQLiteWeaponRepository(db *sql.DB) *SQLiteWeaponRepository {
	return &SQLiteWeaponRepository{db: db}
}

// ReplaceWeapons replaces the whole data set in a single transaction.
func (r *SQLiteWeaponRepository) ReplaceWeapons(ctx context.Context, version string, weapons []*model.Weapon) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM weapons`); err != nil {
		return fmt.Errorf("clearing weapons: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO weapons
		 (name, position, weapon_name, weapon_type, affinity, weight, document)
		 VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("preparing weapon insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range weapons {
		row, err := newWeaponRow(i, w)
		if err != nil {
			return fmt.Errorf("encoding weapon %q: %w", w.Name, err)
		}
		if _, err := stmt.ExecContext(ctx,
			row.name, row.position, row.weaponName, row.weaponType,
			row.affinity, row.weight, string(row.document),
		); err != nil {
			return fmt.Errorf("inserting weapon %q: %w", row.name, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO dataset_meta (id, version, imported_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (id) DO UPDATE SET version=excluded.version, imported_at=CURRENT_TIMESTAMP`,
		version,
	); err != nil {
		return fmt.Errorf("saving dataset version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit weapons: %w", err)
	}

	slog.Info("weapon data set replaced", "backend", "sqlite", "version", version, "count", len(weapons))
	return nil
}

// LoadWeapons возвращает всё оружие в порядке импорта.
func (r *SQLiteWeaponRepository) LoadWeapons(ctx context.Context) ([]*model.Weapon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, document FROM weapons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying weapons: %w", err)
	}
	defer rows.Close()

	var weapons []*model.Weapon
	for rows.Next() {
		var name, doc string
		if err := rows.Scan(&name, &doc); err != nil {
			return nil, fmt.Errorf("scanning weapon row: %w", err)
		}
		w, err := data.DecodeWeapon([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("decoding weapon %q: %w", name, err)
		}
		weapons = append(weapons, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weapon rows: %w", err)
	}
	return weapons, nil
}

// DatasetVersion returns the imported data set version or "" if none.
func (r *SQLiteWeaponRepository) DatasetVersion(ctx context.Context) (string, error) {
	var version string
	err := r.db.QueryRowContext(ctx, `SELECT version FROM dataset_meta WHERE id = 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying dataset version: %w", err)
	}
	return version, nil
}
