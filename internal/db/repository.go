package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
)

// WeaponRepository хранит справочник оружия.
// Writes replace the whole data set; the catalog built from it is immutable.
type WeaponRepository interface {
	// ReplaceWeapons atomically replaces the stored data set.
	ReplaceWeapons(ctx context.Context, version string, weapons []*model.Weapon) error
	// LoadWeapons returns weapons in import order.
	LoadWeapons(ctx context.Context) ([]*model.Weapon, error)
	// DatasetVersion returns "" when nothing was imported yet.
	DatasetVersion(ctx context.Context) (string, error)
}

// LoadCatalog reads every weapon from repo and builds a Catalog.
func LoadCatalog(ctx context.Context, repo WeaponRepository) (*data.Catalog, error) {
	weapons, err := repo.LoadWeapons(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := data.NewCatalog(weapons)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	version, err := repo.DatasetVersion(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded weapon catalog", "source", "database", "version", version, "count", catalog.Len())
	return catalog, nil
}

// weaponRow — денормализованные колонки + JSON-документ оружия.
type weaponRow struct {
	name       string
	position   int
	weaponName string
	weaponType string
	affinity   string
	weight     float64
	document   []byte
}

func newWeaponRow(position int, w *model.Weapon) (weaponRow, error) {
	doc, err := data.EncodeWeapon(w)
	if err != nil {
		return weaponRow{}, err
	}
	return weaponRow{
		name:       w.Name,
		position:   position,
		weaponName: w.Metadata.WeaponName,
		weaponType: w.WeaponType.String(),
		affinity:   w.Affinity.String(),
		weight:     w.Weight,
		document:   doc,
	}, nil
}

var (
	_ WeaponRepository = (*PostgresWeaponRepository)(nil)
	_ WeaponRepository = (*SQLiteWeaponRepository)(nil)
)
