package testutil

import (
	"github.com/udisondev/arcalc/internal/model"
)

// WeaponOption настраивает оружие, собираемое NewWeapon.
type WeaponOption func(*weaponSpec)

type weaponSpec struct {
	w       *model.Weapon
	attack  map[model.DamageType]float64
	passive map[model.PassiveType]float64
	rows    int
}

// NewWeapon builds a valid test weapon: a 3.0 weight straight sword with
// 100 physical attack on every regular upgrade row, no requirements and no scaling.
func NewWeapon(name string, opts ...WeaponOption) *model.Weapon {
	s := &weaponSpec{
		w: &model.Weapon{
			Name:             name,
			Metadata:         model.WeaponMetadata{WeaponName: name},
			WeaponType:       model.WeaponTypeStraightSword,
			Affinity:         model.AffinityNone,
			Weight:           3,
			Requirements:     map[model.Attribute]int{},
			AttributeScaling: map[model.Attribute]float64{},
		},
		attack: map[model.DamageType]float64{model.DamageTypePhysical: 100},
		rows:   model.MaxRegularUpgradeLevel + 1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.w.Attack = make([]map[model.DamageType]float64, s.rows)
	for i := range s.w.Attack {
		row := make(map[model.DamageType]float64, len(s.attack))
		for dt, v := range s.attack {
			row[dt] = v
		}
		s.w.Attack[i] = row
	}
	if len(s.passive) > 0 {
		s.w.PassiveBuildup = []map[model.PassiveType]float64{s.passive}
	}
	return s.w
}

// WithType sets the weapon type.
func WithType(t model.WeaponType) WeaponOption {
	return func(s *weaponSpec) { s.w.WeaponType = t }
}

// WithAffinity sets the affinity.
func WithAffinity(a model.Affinity) WeaponOption {
	return func(s *weaponSpec) { s.w.Affinity = a }
}

// WithWeight sets the weight.
func WithWeight(weight float64) WeaponOption {
	return func(s *weaponSpec) { s.w.Weight = weight }
}

// WithRequirement sets a minimum attribute value.
func WithRequirement(attr model.Attribute, value int) WeaponOption {
	return func(s *weaponSpec) { s.w.Requirements[attr] = value }
}

// WithScaling sets a +0 scaling coefficient.
func WithScaling(attr model.Attribute, coef float64) WeaponOption {
	return func(s *weaponSpec) { s.w.AttributeScaling[attr] = coef }
}

// WithAttack sets base attack of a damage type on every row. 0 removes it.
func WithAttack(dt model.DamageType, base float64) WeaponOption {
	return func(s *weaponSpec) {
		if base == 0 {
			delete(s.attack, dt)
			return
		}
		s.attack[dt] = base
	}
}

// WithPassive adds a status buildup.
func WithPassive(pt model.PassiveType, base float64) WeaponOption {
	return func(s *weaponSpec) {
		if s.passive == nil {
			s.passive = make(map[model.PassiveType]float64)
		}
		s.passive[pt] = base
	}
}

// WithSpecialUpgrade makes the weapon somber (11 rows).
func WithSpecialUpgrade() WeaponOption {
	return func(s *weaponSpec) {
		s.w.SpecialUpgrade = true
		s.rows = model.MaxSpecialUpgradeLevel + 1
	}
}

// WithRows limits the number of upgrade rows.
func WithRows(n int) WeaponOption {
	return func(s *weaponSpec) { s.rows = n }
}

// WithScalingAttributes overrides which attributes scale a damage type.
func WithScalingAttributes(dt model.DamageType, attrs ...model.Attribute) WeaponOption {
	return func(s *weaponSpec) {
		if s.w.ScalingAttributes == nil {
			s.w.ScalingAttributes = make(map[model.DamageType][]model.Attribute)
		}
		s.w.ScalingAttributes[dt] = attrs
	}
}

// Attrs returns an attribute vector with every value set to v.
func Attrs(v int) model.Attributes {
	return model.Attributes{Str: v, Dex: v, Int: v, Fai: v, Arc: v}
}
