package data

import (
	"errors"
	"fmt"
	"iter"

	"github.com/udisondev/arcalc/internal/model"
)

// ErrWeaponNotFound is returned by Catalog.Lookup for unknown names.
var ErrWeaponNotFound = errors.New("weapon not found")

// Catalog — неизменяемый справочник оружия.
// Создаётся один раз при старте и передаётся во все вычисления.
// Safe for concurrent readers: nothing writes to it after NewCatalog returns.
type Catalog struct {
	weapons []*model.Weapon
	byName  map[string]*model.Weapon
	byBase  map[string][]*model.Weapon
}

// NewCatalog validates every weapon and indexes them by name.
// Source order is kept for iteration.
func NewCatalog(weapons []*model.Weapon) (*Catalog, error) {
	c := &Catalog{
		weapons: make([]*model.Weapon, 0, len(weapons)),
		byName:  make(map[string]*model.Weapon, len(weapons)),
		byBase:  make(map[string][]*model.Weapon),
	}
	for _, w := range weapons {
		if err := w.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[w.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate weapon name %q", model.ErrMalformedWeapon, w.Name)
		}
		c.weapons = append(c.weapons, w)
		c.byName[w.Name] = w
		c.byBase[w.Metadata.WeaponName] = append(c.byBase[w.Metadata.WeaponName], w)
	}
	return c, nil
}

// Len returns the number of weapons.
func (c *Catalog) Len() int { return len(c.weapons) }

// Get returns a weapon by its unique name, or nil.
func (c *Catalog) Get(name string) *model.Weapon { return c.byName[name] }

// Lookup is Get with an error for unknown names.
func (c *Catalog) Lookup(name string) (*model.Weapon, error) {
	w, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWeaponNotFound, name)
	}
	return w, nil
}

// ByBaseName returns every affinity variant of a base weapon.
func (c *Catalog) ByBaseName(weaponName string) []*model.Weapon {
	return append([]*model.Weapon(nil), c.byBase[weaponName]...)
}

// All iterates weapons in source order.
func (c *Catalog) All() iter.Seq[*model.Weapon] {
	return func(yield func(*model.Weapon) bool) {
		for _, w := range c.weapons {
			if !yield(w) {
				return
			}
		}
	}
}

// Weapons returns a copy of the weapon list in source order.
func (c *Catalog) Weapons() []*model.Weapon {
	return append([]*model.Weapon(nil), c.weapons...)
}
