package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arcalc/internal/model"
	"github.com/udisondev/arcalc/internal/testutil"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"name", SortKey{Kind: SortByName}},
		{"attack", SortKey{Kind: SortByTotalAttack}},
		{"Attack:Fire", SortKey{Kind: SortByDamageAttack, DamageType: model.DamageTypeFire}},
		{"status", SortKey{Kind: SortByStatus}},
		{"scaling:dex", SortKey{Kind: SortByScaling, Attribute: model.AttributeDex}},
		{"requirement:Strength", SortKey{Kind: SortByRequirement, Attribute: model.AttributeStr}},
	}

	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "weight", "attack:poison", "scaling", "requirement:luck"} {
		_, err := ParseSortKey(bad)
		assert.Error(t, err, bad)
	}

	key, err := ParseSortKey("scaling:arc")
	require.NoError(t, err)
	assert.Equal(t, "scaling:arc", key.String())
}

func row(name string, power model.AttackPower, passives map[model.PassiveType]float64, opts ...testutil.WeaponOption) Row {
	return Row{
		Weapon: testutil.NewWeapon(name, opts...),
		Result: model.WeaponAttackResult{
			AttackRating:   map[model.DamageType]model.AttackPower{model.DamageTypePhysical: power},
			PassiveBuildup: passives,
		},
	}
}

func TestSortRows(t *testing.T) {
	build := func() []Row {
		return []Row{
			row("B", model.AttackPower{Base: 100, Scaling: 20}, nil,
				testutil.WithScaling(model.AttributeDex, 0.5), testutil.WithRequirement(model.AttributeStr, 10)),
			row("A", model.AttackPower{Base: 150}, map[model.PassiveType]float64{model.PassiveBleed: 50},
				testutil.WithScaling(model.AttributeDex, 0.2), testutil.WithRequirement(model.AttributeStr, 30)),
			row("C", model.AttackPower{Base: 100, Scaling: 20}, map[model.PassiveType]float64{
				model.PassiveBleed: 50, model.PassivePoison: 10,
			}),
		}
	}

	tests := []struct {
		name string
		key  SortKey
		desc bool
		want []string
	}{
		{"name", SortKey{Kind: SortByName}, false, []string{"A", "B", "C"}},
		{"attack desc is stable", SortKey{Kind: SortByTotalAttack}, true, []string{"A", "B", "C"}},
		{"attack asc is stable", SortKey{Kind: SortByTotalAttack}, false, []string{"B", "C", "A"}},
		{"status", SortKey{Kind: SortByStatus}, true, []string{"C", "A", "B"}},
		{"scaling", SortKey{Kind: SortByScaling, Attribute: model.AttributeDex}, true, []string{"B", "A", "C"}},
		{"requirement", SortKey{Kind: SortByRequirement, Attribute: model.AttributeStr}, false, []string{"C", "B", "A"}},
		{"damage type", SortKey{Kind: SortByDamageAttack, DamageType: model.DamageTypePhysical}, true, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := build()
			SortRows(rows, tt.key, tt.desc)
			assert.Equal(t, tt.want, rowNames(rows))
		})
	}
}
