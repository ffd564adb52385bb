package search

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/game/combat"
	"github.com/udisondev/arcalc/internal/model"
)

// NoWeightLimit disables the weight filter.
var NoWeightLimit = math.Inf(1)

// FilterOptions — параметры фильтрации справочника.
type FilterOptions struct {
	UpgradeLevel int
	// WeaponTypes: пустой список — без ограничения.
	WeaponTypes []model.WeaponType
	// Affinities: пустой список — без ограничения.
	Affinities []model.Affinity
	// MaxWeight is inclusive. Use NoWeightLimit for no bound.
	MaxWeight float64
	// EffectiveWith keeps only weapons whose requirements these attributes meet.
	EffectiveWith *model.Attributes
}

// Validate checks the options before any weapon is examined.
func (o FilterOptions) Validate() error {
	if math.IsNaN(o.MaxWeight) || o.MaxWeight < 0 {
		return fmt.Errorf("%w: max weight %v must be >= 0", model.ErrInvalidConfig, o.MaxWeight)
	}
	if o.UpgradeLevel < 0 || o.UpgradeLevel > model.MaxRegularUpgradeLevel {
		return fmt.Errorf("%w: upgrade level %d outside [0, %d]", model.ErrInvalidConfig, o.UpgradeLevel, model.MaxRegularUpgradeLevel)
	}
	if o.EffectiveWith != nil {
		if err := o.EffectiveWith.ValidateRange(model.MinAttributeValue, data.MaxEffectiveAttributeValue); err != nil {
			return fmt.Errorf("%w: effective attributes: %v", model.ErrInvalidConfig, err)
		}
	}
	return nil
}

// FilterWeapons returns the weapons matching opts in source order.
func FilterWeapons(weapons iter.Seq[*model.Weapon], opts FilterOptions) ([]*model.Weapon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var out []*model.Weapon
	for w := range weapons {
		if Match(w, opts) {
			out = append(out, w)
		}
	}
	return out, nil
}

// Match is the per-weapon predicate of FilterWeapons. opts must be valid.
func Match(w *model.Weapon, opts FilterOptions) bool {
	if len(opts.WeaponTypes) > 0 && !slices.Contains(opts.WeaponTypes, w.WeaponType) {
		return false
	}
	if len(opts.Affinities) > 0 && !slices.Contains(opts.Affinities, w.Affinity) {
		return false
	}
	if w.Weight > opts.MaxWeight {
		return false
	}
	if !data.SupportsUpgradeLevel(w, opts.UpgradeLevel) {
		return false
	}
	if opts.EffectiveWith != nil && !combat.IsEffective(w, *opts.EffectiveWith) {
		return false
	}
	return true
}
