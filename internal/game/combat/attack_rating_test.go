package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
	"github.com/udisondev/arcalc/internal/testutil"
)

func qualitySword(opts ...testutil.WeaponOption) *model.Weapon {
	base := []testutil.WeaponOption{
		testutil.WithScaling(model.AttributeStr, 0.5),
		testutil.WithScaling(model.AttributeDex, 0.5),
	}
	return testutil.NewWeapon("Quality Sword", append(base, opts...)...)
}

func TestComputeAttack_Scaling(t *testing.T) {
	w := qualitySword()
	attrs := model.Attributes{Str: 18, Dex: 60, Int: 10, Fai: 10, Arc: 10}

	result, err := ComputeAttack(w, attrs, 0)
	require.NoError(t, err)

	phys := result.AttackRating[model.DamageTypePhysical]
	assert.Equal(t, 100.0, phys.Base)
	// 100*0.5*25/100 + 100*0.5*75/100
	assert.InDelta(t, 50, phys.Scaling, 1e-9)
	assert.Zero(t, phys.Penalty)
	assert.InDelta(t, 150, result.TotalAttack(), 1e-9)
	assert.Empty(t, result.IneffectiveAttributes)
	assert.Len(t, result.AttackRating, 1)
}

func TestComputeAttack_IneffectivePenalty(t *testing.T) {
	w := qualitySword(testutil.WithRequirement(model.AttributeStr, 20))
	attrs := model.Attributes{Str: 18, Dex: 60, Int: 10, Fai: 10, Arc: 10}

	result, err := ComputeAttack(w, attrs, 0)
	require.NoError(t, err)

	phys := result.AttackRating[model.DamageTypePhysical]
	assert.Zero(t, phys.Scaling)
	assert.InDelta(t, 40, phys.Penalty, 1e-9)
	assert.InDelta(t, 60, phys.Total(), 1e-9)
	assert.Equal(t, []model.Attribute{model.AttributeStr}, result.IneffectiveAttributes)
	assert.True(t, result.IsIneffective(model.AttributeStr))
}

func TestComputeAttack_PenaltyOnlyHitsScaledDamageTypes(t *testing.T) {
	w := testutil.NewWeapon("Spellblade",
		testutil.WithAttack(model.DamageTypeMagic, 80),
		testutil.WithScaling(model.AttributeStr, 0.3),
		testutil.WithScaling(model.AttributeInt, 0.8),
		testutil.WithRequirement(model.AttributeStr, 20),
	)
	attrs := model.Attributes{Str: 10, Dex: 10, Int: 35, Fai: 10, Arc: 10}

	result, err := ComputeAttack(w, attrs, 0)
	require.NoError(t, err)

	assert.InDelta(t, 40, result.AttackRating[model.DamageTypePhysical].Penalty, 1e-9)

	magic := result.AttackRating[model.DamageTypeMagic]
	assert.Zero(t, magic.Penalty)
	// 80*0.8*60/100
	assert.InDelta(t, 38.4, magic.Scaling, 1e-9)
}

func TestComputeAttack_ScalingMonotonicInAttribute(t *testing.T) {
	w := qualitySword()
	prev := -1.0
	for str := 1; str <= data.MaxEffectiveAttributeValue; str++ {
		attrs := model.Attributes{Str: str, Dex: 10, Int: 10, Fai: 10, Arc: 10}
		result, err := ComputeAttack(w, attrs, 0)
		require.NoError(t, err)
		total := result.TotalAttack()
		require.GreaterOrEqual(t, total, prev, "str=%d", str)
		prev = total
	}
}

func TestComputeAttack_PassiveBuildup(t *testing.T) {
	w := testutil.NewWeapon("Blood Blade",
		testutil.WithScaling(model.AttributeArc, 0.2),
		testutil.WithPassive(model.PassiveBleed, 50),
		testutil.WithPassive(model.PassiveFrost, 40),
	)
	attrs := model.Attributes{Str: 10, Dex: 10, Int: 10, Fai: 10, Arc: 45}

	result, err := ComputeAttack(w, attrs, 0)
	require.NoError(t, err)

	// 50 + 50*0.2*75/100
	assert.InDelta(t, 57.5, result.PassiveBuildup[model.PassiveBleed], 1e-9)
	assert.Equal(t, 40.0, result.PassiveBuildup[model.PassiveFrost], "frost does not scale with arcane")
	_, hasPoison := result.PassiveBuildup[model.PassivePoison]
	assert.False(t, hasPoison)
}

func TestComputeAttack_GatePassiveScaling(t *testing.T) {
	w := testutil.NewWeapon("Blood Blade",
		testutil.WithScaling(model.AttributeArc, 0.2),
		testutil.WithRequirement(model.AttributeArc, 50),
		testutil.WithPassive(model.PassiveBleed, 50),
	)
	attrs := model.Attributes{Str: 10, Dex: 10, Int: 10, Fai: 10, Arc: 45}

	ungated, err := ComputeAttack(w, attrs, 0)
	require.NoError(t, err)
	assert.InDelta(t, 57.5, ungated.PassiveBuildup[model.PassiveBleed], 1e-9)

	rules := DefaultRules()
	rules.GatePassiveScaling = true
	calc, err := NewCalculator(rules)
	require.NoError(t, err)

	gated, err := calc.ComputeAttack(w, attrs, 0)
	require.NoError(t, err)
	assert.Equal(t, 50.0, gated.PassiveBuildup[model.PassiveBleed])
}

func TestComputeAttack_SpecialUpgradeUsesSomberRow(t *testing.T) {
	catalog, err := data.LoadDefaultCatalog()
	require.NoError(t, err)
	moonveil, err := catalog.Lookup("Moonveil")
	require.NoError(t, err)

	attrs := model.Attributes{Str: 12, Dex: 18, Int: 23, Fai: 10, Arc: 10}

	at25, err := ComputeAttack(moonveil, attrs, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, at25.UpgradeLevel)
	assert.Equal(t, moonveil.Attack[10][model.DamageTypePhysical], at25.AttackRating[model.DamageTypePhysical].Base)

	at24, err := ComputeAttack(moonveil, attrs, 24)
	require.NoError(t, err)
	assert.Equal(t, moonveil.Attack[9][model.DamageTypePhysical], at24.AttackRating[model.DamageTypePhysical].Base)
}

func TestComputeAttack_Errors(t *testing.T) {
	w := qualitySword()
	ok := testutil.Attrs(10)

	_, err := ComputeAttack(w, ok, 26)
	assert.ErrorIs(t, err, model.ErrInvalidUpgradeLevel)

	_, err = ComputeAttack(testutil.NewWeapon("Short", testutil.WithRows(11)), ok, 15)
	assert.ErrorIs(t, err, model.ErrInvalidUpgradeLevel)

	_, err = ComputeAttack(w, ok.With(model.AttributeDex, 0), 0)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	_, err = ComputeAttack(w, ok.With(model.AttributeStr, 149), 0)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	_, err = ComputeAttack(&model.Weapon{Name: "Broken"}, ok, 0)
	assert.ErrorIs(t, err, model.ErrMalformedWeapon)
}

func TestComputeAttack_Deterministic(t *testing.T) {
	catalog, err := data.LoadDefaultCatalog()
	require.NoError(t, err)
	attrs := model.Attributes{Str: 30, Dex: 40, Int: 20, Fai: 25, Arc: 35}

	for w := range catalog.All() {
		first, err := ComputeAttack(w, attrs, 10)
		require.NoError(t, err, w.Name)
		for range 5 {
			again, err := ComputeAttack(w, attrs, 10)
			require.NoError(t, err)
			assert.Equal(t, first, again, w.Name)
		}
	}
}

func TestIneffectiveAttributes(t *testing.T) {
	w := testutil.NewWeapon("Sword of Faith",
		testutil.WithRequirement(model.AttributeArc, 20),
		testutil.WithRequirement(model.AttributeStr, 12),
		testutil.WithRequirement(model.AttributeFai, 24),
	)

	got := IneffectiveAttributes(w, model.Attributes{Str: 12, Dex: 1, Int: 1, Fai: 10, Arc: 10})
	assert.Equal(t, []model.Attribute{model.AttributeFai, model.AttributeArc}, got)

	assert.False(t, IsEffective(w, testutil.Attrs(19)))
	assert.True(t, IsEffective(w, testutil.Attrs(24)))
	assert.Empty(t, IneffectiveAttributes(w, testutil.Attrs(24)))
}

func TestComputeAttack_AffinityScalesPhysicalWithCasterStat(t *testing.T) {
	catalog, err := data.LoadDefaultCatalog()
	require.NoError(t, err)

	tests := []struct {
		weapon string
		attr   model.Attribute
	}{
		{"Cold Uchigatana", model.AttributeInt},
		{"Magic Claymore", model.AttributeInt},
		{"Sacred Lordsworn's Straight Sword", model.AttributeFai},
	}

	for _, tt := range tests {
		t.Run(tt.weapon, func(t *testing.T) {
			w, err := catalog.Lookup(tt.weapon)
			require.NoError(t, err)

			low := testutil.Attrs(20)
			high := low.With(tt.attr, 80)

			lowResult, err := ComputeAttack(w, low, 0)
			require.NoError(t, err)
			highResult, err := ComputeAttack(w, high, 0)
			require.NoError(t, err)

			assert.Greater(t,
				highResult.AttackRating[model.DamageTypePhysical].Scaling,
				lowResult.AttackRating[model.DamageTypePhysical].Scaling)
		})
	}
}

func TestComputeAttack_AffinityStatRequirementPenalizesPhysical(t *testing.T) {
	w := testutil.NewWeapon("Cold Sword",
		testutil.WithAffinity(model.AffinityCold),
		testutil.WithAttack(model.DamageTypeMagic, 60),
		testutil.WithScaling(model.AttributeStr, 0.3),
		testutil.WithScaling(model.AttributeInt, 0.3),
		testutil.WithRequirement(model.AttributeInt, 20),
	)

	result, err := ComputeAttack(w, testutil.Attrs(15), 0)
	require.NoError(t, err)

	assert.InDelta(t, 40, result.AttackRating[model.DamageTypePhysical].Penalty, 1e-9)
	assert.InDelta(t, 24, result.AttackRating[model.DamageTypeMagic].Penalty, 1e-9)
}
