package combat

import (
	"fmt"
	"math"

	"github.com/udisondev/arcalc/internal/model"
)

const (
	// TwoHandingMultiplier — бонус к Strength при хвате двумя руками.
	TwoHandingMultiplier = 1.5
	// IneffectivePenalty — доля базовой атаки, теряемая при невыполненном требовании.
	IneffectivePenalty = 0.4
)

// Rules holds the game constants the calculator depends on.
type Rules struct {
	TwoHandingMultiplier float64
	IneffectivePenalty   float64
	// GatePassiveScaling drops Arcane scaling of status buildup when
	// Arcane is below the weapon's requirement.
	GatePassiveScaling bool
}

// DefaultRules returns the in-game constants.
func DefaultRules() Rules {
	return Rules{
		TwoHandingMultiplier: TwoHandingMultiplier,
		IneffectivePenalty:   IneffectivePenalty,
	}
}

// Validate checks the rule constants are usable.
func (r Rules) Validate() error {
	if r.TwoHandingMultiplier < 1 || math.IsNaN(r.TwoHandingMultiplier) || math.IsInf(r.TwoHandingMultiplier, 0) {
		return fmt.Errorf("%w: two-handing multiplier %v must be >= 1", model.ErrInvalidConfig, r.TwoHandingMultiplier)
	}
	if r.IneffectivePenalty < 0 || r.IneffectivePenalty > 1 || math.IsNaN(r.IneffectivePenalty) {
		return fmt.Errorf("%w: ineffective penalty %v outside [0, 1]", model.ErrInvalidConfig, r.IneffectivePenalty)
	}
	return nil
}

// AdjustForTwoHanding returns a copy of attrs with Strength multiplied and floored.
// Other attributes pass through unchanged; attrs itself is not modified.
func (r Rules) AdjustForTwoHanding(attrs model.Attributes) model.Attributes {
	attrs.Str = int(math.Floor(float64(attrs.Str) * r.TwoHandingMultiplier))
	return attrs
}

// AdjustForTwoHanding applies the in-game two-handing bonus.
func AdjustForTwoHanding(attrs model.Attributes) model.Attributes {
	return DefaultRules().AdjustForTwoHanding(attrs)
}
