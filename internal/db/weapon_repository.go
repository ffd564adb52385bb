package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
)

// PostgresWeaponRepository хранит справочник оружия в PostgreSQL.
type PostgresWeaponRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWeaponRepository создаёт новый PostgresWeaponRepository.
func NewPostgresWeaponRepository(pool *pgxpool.Pool) *PostgresWeaponRepository {
	return &PostgresWeaponRepository{pool: pool}
}

// ReplaceWeapons replaces the whole data set in a single transaction.
func (r *PostgresWeaponRepository) ReplaceWeapons(ctx context.Context, version string, weapons []*model.Weapon) error {
	rows := make([]weaponRow, 0, len(weapons))
	for i, w := range weapons {
		row, err := newWeaponRow(i, w)
		if err != nil {
			return fmt.Errorf("encoding weapon %q: %w", w.Name, err)
		}
		rows = append(rows, row)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM weapons`); err != nil {
		return fmt.Errorf("clearing weapons: %w", err)
	}

	if len(rows) > 0 {
		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(
				`INSERT INTO weapons
				 (name, position, weapon_name, weapon_type, affinity, weight, document)
				 VALUES ($1,$2,$3,$4,$5,$6,$7::jsonb)`,
				row.name, row.position, row.weaponName, row.weaponType,
				row.affinity, row.weight, string(row.document),
			)
		}
		br := tx.SendBatch(ctx, batch)
		for _, row := range rows {
			if _, err := br.Exec(); err != nil {
				br.Close() //nolint:errcheck
				return fmt.Errorf("inserting weapon %q: %w", row.name, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("close weapon batch: %w", err)
		}
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO dataset_meta (id, version, imported_at) VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET version=$1, imported_at=NOW()`,
		version,
	); err != nil {
		return fmt.Errorf("saving dataset version: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit weapons: %w", err)
	}

	slog.Info("weapon data set replaced", "backend", "postgres", "version", version, "count", len(rows))
	return nil
}

// LoadWeapons возвращает всё оружие в порядке импорта.
func (r *PostgresWeaponRepository) LoadWeapons(ctx context.Context) ([]*model.Weapon, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, document::text FROM weapons ORDER BY position`)
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
func (r *PostgresWeaponRepository) DatasetVersion(ctx context.Context) (string, error) {
	var version string
	err := r.pool.QueryRow(ctx, `SELECT version FROM dataset_meta WHERE id = 1`).Scan(&version)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("querying dataset version: %w", err)
	}
	return version, nil
}
