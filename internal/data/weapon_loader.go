package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"

	"github.com/udisondev/arcalc/internal/model"
)

//go:embed weapons.json
var defaultWeaponsJSON []byte

// DecodeWeapons parses a JSON array of weapon records.
func DecodeWeapons(raw []byte) ([]*model.Weapon, error) {
	var records []WeaponRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding weapon records: %w", err)
	}

	weapons := make([]*model.Weapon, 0, len(records))
	for i := range records {
		w, err := records[i].ToWeapon()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		weapons = append(weapons, w)
	}
	return weapons, nil
}

// DecodeCatalog parses a JSON array of weapon records into a Catalog.
func DecodeCatalog(raw []byte) (*Catalog, error) {
	weapons, err := DecodeWeapons(raw)
	if err != nil {
		return nil, err
	}
	return NewCatalog(weapons)
}

// LoadCatalogFile загружает справочник оружия из JSON-файла.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading weapon data %s: %w", path, err)
	}
	c, err := DecodeCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("loading weapon data %s: %w", path, err)
	}
	slog.Info("loaded weapon catalog", "source", path, "count", c.Len())
	return c, nil
}

// LoadDefaultCatalog загружает встроенный справочник.
func LoadDefaultCatalog() (*Catalog, error) {
	c, err := DecodeCatalog(defaultWeaponsJSON)
	if err != nil {
		return nil, fmt.Errorf("loading embedded weapon data: %w", err)
	}
	slog.Info("loaded weapon catalog", "source", "embedded", "count", c.Len())
	return c, nil
}
