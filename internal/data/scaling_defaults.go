package data

import (
	"slices"

	"github.com/udisondev/arcalc/internal/model"
)

// defaultScalingAttributes — какие атрибуты скейлят каждый тип урона,
// если запись оружия не задаёт своё соответствие.
var defaultScalingAttributes = map[model.DamageType][]model.Attribute{
	model.DamageTypePhysical:  {model.AttributeStr, model.AttributeDex, model.AttributeArc},
	model.DamageTypeMagic:     {model.AttributeInt},
	model.DamageTypeFire:      {model.AttributeFai},
	model.DamageTypeLightning: {model.AttributeDex},
	model.DamageTypeHoly:      {model.AttributeFai},
}

// affinityScalingAttributes overrides defaultScalingAttributes per affinity
// (AttackElementCorrectParam of the affinity's reinforcement).
var affinityScalingAttributes = map[model.Affinity]map[model.DamageType][]model.Attribute{
	model.AffinityMagic: {
		model.DamageTypePhysical: {model.AttributeStr, model.AttributeDex, model.AttributeInt},
	},
	model.AffinityCold: {
		model.DamageTypePhysical: {model.AttributeStr, model.AttributeDex, model.AttributeInt},
	},
	model.AffinityFire: {
		model.DamageTypeFire: {model.AttributeStr},
	},
	model.AffinityFlameArt: {
		model.DamageTypePhysical: {model.AttributeStr, model.AttributeDex, model.AttributeFai},
	},
	model.AffinitySacred: {
		model.DamageTypePhysical: {model.AttributeStr, model.AttributeDex, model.AttributeFai},
	},
}

var defaultScalingCurves = map[model.DamageType]int{
	model.DamageTypePhysical:  CurvePhysical,
	model.DamageTypeMagic:     CurveElemental,
	model.DamageTypeFire:      CurveElemental,
	model.DamageTypeLightning: CurveElemental,
	model.DamageTypeHoly:      CurveElemental,
}

// PassiveScalingCurve — кривая скейлинга статусов от Arcane.
const PassiveScalingCurve = CurveStatus

// PassiveScalingAttribute is the only attribute that scales status buildup.
const PassiveScalingAttribute = model.AttributeArc

var arcaneScaledPassives = []model.PassiveType{
	model.PassivePoison,
	model.PassiveBleed,
	model.PassiveSleep,
	model.PassiveMadness,
}

// ScalingAttributes returns the attributes that scale dt for w:
// the weapon's own mapping first, then its affinity's, then the default.
func ScalingAttributes(w *model.Weapon, dt model.DamageType) []model.Attribute {
	if attrs, ok := w.ScalingAttributes[dt]; ok {
		return attrs
	}
	if attrs, ok := affinityScalingAttributes[w.Affinity][dt]; ok {
		return attrs
	}
	return defaultScalingAttributes[dt]
}

// ScalingCurve returns the curve id used for dt on w.
func ScalingCurve(w *model.Weapon, dt model.DamageType) int {
	if id, ok := w.ScalingCurves[dt]; ok {
		return id
	}
	return defaultScalingCurves[dt]
}

// IsArcaneScaledPassive reports whether buildup of pt grows with Arcane.
func IsArcaneScaledPassive(pt model.PassiveType) bool {
	return slices.Contains(arcaneScaledPassives, pt)
}
