package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testWeapon() *Weapon {
	return &Weapon{
		Name:         "Heavy Claymore",
		Metadata:     WeaponMetadata{WeaponName: "Claymore"},
		WeaponType:   WeaponTypeGreatsword,
		Affinity:     AffinityHeavy,
		Weight:       9,
		Requirements: map[Attribute]int{AttributeStr: 16, AttributeDex: 13},
		AttributeScaling: map[Attribute]float64{
			AttributeStr: 0.8,
		},
		Attack: []map[DamageType]float64{
			{DamageTypePhysical: 100},
			{DamageTypePhysical: 110},
		},
		ScalingGrowth: []float64{1, 1.5},
	}
}

func TestWeapon_Accessors(t *testing.T) {
	w := testWeapon()

	assert.Equal(t, 16, w.Requirement(AttributeStr))
	assert.Equal(t, 0, w.Requirement(AttributeArc))
	assert.Equal(t, 0.8, w.Scaling(AttributeStr))
	assert.InDelta(t, 1.2, w.ScalingAt(AttributeStr, 1), 1e-9)
	assert.Equal(t, 0.0, w.ScalingAt(AttributeDex, 1))
	assert.Equal(t, 1, w.MaxRow())
	assert.Equal(t, "https://eldenring.wiki.fextralife.com/Claymore", w.WikiURL())
}

func TestWeapon_PassiveRow(t *testing.T) {
	w := testWeapon()
	assert.Nil(t, w.PassiveRow(0))

	w.PassiveBuildup = []map[PassiveType]float64{{PassiveBleed: 50}}
	assert.Equal(t, 50.0, w.PassiveRow(1)[PassiveBleed], "single row applies to every level")

	w.PassiveBuildup = []map[PassiveType]float64{{PassiveBleed: 50}, {PassiveBleed: 60}}
	assert.Equal(t, 60.0, w.PassiveRow(1)[PassiveBleed])
}

func TestWeapon_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *Weapon)
	}{
		{"empty name", func(w *Weapon) { w.Name = " " }},
		{"negative weight", func(w *Weapon) { w.Weight = -1 }},
		{"no attack", func(w *Weapon) { w.Attack = nil }},
		{"empty attack row", func(w *Weapon) { w.Attack[1] = map[DamageType]float64{} }},
		{"growth length", func(w *Weapon) { w.ScalingGrowth = []float64{1} }},
		{"negative requirement", func(w *Weapon) { w.Requirements[AttributeInt] = -1 }},
		{"negative scaling", func(w *Weapon) { w.AttributeScaling[AttributeDex] = -0.1 }},
		{"too many somber rows", func(w *Weapon) {
			w.SpecialUpgrade = true
			for len(w.Attack) < MaxSpecialUpgradeLevel+2 {
				w.Attack = append(w.Attack, map[DamageType]float64{DamageTypePhysical: 1})
			}
			w.ScalingGrowth = nil
		}},
	}

	assert.NoError(t, testWeapon().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWeapon()
			tt.mutate(w)
			assert.ErrorIs(t, w.Validate(), ErrMalformedWeapon)
		})
	}

	var nilWeapon *Weapon
	assert.ErrorIs(t, nilWeapon.Validate(), ErrMalformedWeapon)
}

func TestWeaponAttackResult(t *testing.T) {
	r := WeaponAttackResult{
		AttackRating: map[DamageType]AttackPower{
			DamageTypeFire:     {Base: 80, Scaling: 20},
			DamageTypePhysical: {Base: 100, Penalty: 40},
		},
		PassiveBuildup: map[PassiveType]float64{
			PassiveBleed:  50,
			PassivePoison: 66,
			PassiveFrost:  50,
		},
		IneffectiveAttributes: []Attribute{AttributeStr},
	}

	assert.InDelta(t, 160, r.TotalAttack(), 1e-9)
	assert.InDelta(t, 60, r.DamageAttack(DamageTypePhysical), 1e-9)
	assert.Equal(t, 0.0, r.DamageAttack(DamageTypeHoly))
	assert.Equal(t, []DamageType{DamageTypePhysical, DamageTypeFire}, r.DamageTypes())
	assert.True(t, r.IsIneffective(AttributeStr))
	assert.False(t, r.IsIneffective(AttributeDex))

	assert.Equal(t, []Buildup{
		{Type: PassivePoison, Amount: 66},
		{Type: PassiveFrost, Amount: 50},
		{Type: PassiveBleed, Amount: 50},
	}, r.HighestBuildups())
}
