package combat

import (
	"fmt"
	"slices"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
)

// Calculator computes attack rating for weapons. It holds no mutable state
// and may be shared between goroutines.
type Calculator struct {
	rules Rules
}

// NewCalculator creates a calculator with the given rules.
func NewCalculator(rules Rules) (*Calculator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rules: rules}, nil
}

var defaultCalculator = &Calculator{rules: DefaultRules()}

// Rules returns the calculator's rule constants.
func (c *Calculator) Rules() Rules {
	return c.rules
}

// ComputeAttack computes attack rating with the in-game rules.
func ComputeAttack(w *model.Weapon, attrs model.Attributes, upgradeLevel int) (model.WeaponAttackResult, error) {
	return defaultCalculator.ComputeAttack(w, attrs, upgradeLevel)
}

// ComputeAttack computes attack rating, status buildup and ineffective
// attributes of w for already-adjusted attributes at a regular upgrade level.
//
// For each damage type on the selected upgrade row:
//
//	scaling = Σ base × scaling(attr, level) × curve(attrs[attr]) / 100
//
// If any attribute that scales the damage type is below its requirement the
// damage type gets no scaling and loses IneffectivePenalty × base instead.
func (c *Calculator) ComputeAttack(w *model.Weapon, attrs model.Attributes, upgradeLevel int) (model.WeaponAttackResult, error) {
	if err := w.Validate(); err != nil {
		return model.WeaponAttackResult{}, err
	}
	if err := attrs.ValidateRange(model.MinAttributeValue, data.MaxEffectiveAttributeValue); err != nil {
		return model.WeaponAttackResult{}, fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	row, err := data.UpgradeRow(w, upgradeLevel)
	if err != nil {
		return model.WeaponAttackResult{}, err
	}

	ineffective := IneffectiveAttributes(w, attrs)

	result := model.WeaponAttackResult{
		UpgradeLevel:          upgradeLevel,
		AttackRating:          make(map[model.DamageType]model.AttackPower, len(w.Attack[row])),
		PassiveBuildup:        make(map[model.PassiveType]float64),
		IneffectiveAttributes: ineffective,
	}

	attackRow := w.Attack[row]
	for _, dt := range model.AllDamageTypes {
		base := attackRow[dt]
		if base == 0 {
			continue
		}
		result.AttackRating[dt] = c.damageAttack(w, dt, base, attrs, row, ineffective)
	}

	for pt, base := range w.PassiveRow(row) {
		if base == 0 {
			continue
		}
		result.PassiveBuildup[pt] = c.passiveBuildup(w, pt, base, attrs, row, ineffective)
	}

	return result, nil
}

func (c *Calculator) damageAttack(
	w *model.Weapon,
	dt model.DamageType,
	base float64,
	attrs model.Attributes,
	row int,
	ineffective []model.Attribute,
) model.AttackPower {
	power := model.AttackPower{Base: base}
	scalingAttrs := data.ScalingAttributes(w, dt)

	for _, attr := range scalingAttrs {
		if slices.Contains(ineffective, attr) {
			power.Penalty = base * c.rules.IneffectivePenalty
			return power
		}
	}

	curve := data.ScalingCurve(w, dt)
	for _, attr := range scalingAttrs {
		coef := w.ScalingAt(attr, row)
		if coef <= 0 {
			continue
		}
		power.Scaling += base * coef * data.CurveValue(curve, attrs.Get(attr)) / 100
	}
	return power
}

func (c *Calculator) passiveBuildup(
	w *model.Weapon,
	pt model.PassiveType,
	base float64,
	attrs model.Attributes,
	row int,
	ineffective []model.Attribute,
) float64 {
	if !data.IsArcaneScaledPassive(pt) {
		return base
	}
	attr := data.PassiveScalingAttribute
	coef := w.ScalingAt(attr, row)
	if coef <= 0 {
		return base
	}
	if c.rules.GatePassiveScaling && slices.Contains(ineffective, attr) {
		return base
	}
	return base + base*coef*data.CurveValue(data.PassiveScalingCurve, attrs.Get(attr))/100
}

// IneffectiveAttributes returns, in canonical order, every attribute whose
// value is below the weapon's requirement. The weapon filter uses the same
// test for "effective only" searches.
func IneffectiveAttributes(w *model.Weapon, attrs model.Attributes) []model.Attribute {
	var out []model.Attribute
	for _, attr := range model.AllAttributes {
		if attrs.Get(attr) < w.Requirement(attr) {
			out = append(out, attr)
		}
	}
	return out
}

// IsEffective reports whether attrs meet every requirement of w.
func IsEffective(w *model.Weapon, attrs model.Attributes) bool {
	for _, attr := range model.AllAttributes {
		if attrs.Get(attr) < w.Requirement(attr) {
			return false
		}
	}
	return true
}
