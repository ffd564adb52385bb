package model

import (
	"cmp"
	"slices"
)

// AttackPower — атака одного типа урона.
//
// Penalty is non-zero only when an attribute scaling this damage type is
// below its requirement; the attack then loses its scaling and Penalty is
// subtracted from Base.
type AttackPower struct {
	Base    float64
	Scaling float64
	Penalty float64
}

// Total returns the displayed attack before flooring.
func (p AttackPower) Total() float64 {
	return p.Base + p.Scaling - p.Penalty
}

// WeaponAttackResult — результат расчёта для одного оружия. Не кэшируется.
type WeaponAttackResult struct {
	UpgradeLevel int

	AttackRating   map[DamageType]AttackPower
	PassiveBuildup map[PassiveType]float64

	// IneffectiveAttributes in canonical attribute order.
	IneffectiveAttributes []Attribute
}

// TotalAttack sums every damage type in canonical order.
func (r WeaponAttackResult) TotalAttack() float64 {
	var total float64
	for _, dt := range AllDamageTypes {
		if p, ok := r.AttackRating[dt]; ok {
			total += p.Total()
		}
	}
	return total
}

// DamageAttack returns the total attack of one damage type, 0 when absent.
func (r WeaponAttackResult) DamageAttack(dt DamageType) float64 {
	return r.AttackRating[dt].Total()
}

// DamageTypes returns the damage types present, in canonical order.
func (r WeaponAttackResult) DamageTypes() []DamageType {
	out := make([]DamageType, 0, len(r.AttackRating))
	for _, dt := range AllDamageTypes {
		if _, ok := r.AttackRating[dt]; ok {
			out = append(out, dt)
		}
	}
	return out
}

// IsIneffective reports whether attr is below the weapon's requirement.
func (r WeaponAttackResult) IsIneffective(attr Attribute) bool {
	return slices.Contains(r.IneffectiveAttributes, attr)
}

// Buildup is one passive effect with its amount.
type Buildup struct {
	Type   PassiveType
	Amount float64
}

// HighestBuildups returns passive buildups sorted from highest to lowest.
// Ties keep canonical passive order.
func (r WeaponAttackResult) HighestBuildups() []Buildup {
	out := make([]Buildup, 0, len(r.PassiveBuildup))
	for _, pt := range AllPassiveTypes {
		if amount, ok := r.PassiveBuildup[pt]; ok {
			out = append(out, Buildup{Type: pt, Amount: amount})
		}
	}
	slices.SortStableFunc(out, func(a, b Buildup) int {
		return cmp.Compare(b.Amount, a.Amount)
	})
	return out
}
