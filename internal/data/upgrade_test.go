package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arcalc/internal/model"
)

func TestToSpecialUpgradeLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 2},
		{10, 4},
		{12, 5},
		{24, 9},
		{25, 10},
	}

	for _, tt := range tests {
		got, err := ToSpecialUpgradeLevel(tt.level)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("ToSpecialUpgradeLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestToSpecialUpgradeLevel_Monotonic(t *testing.T) {
	prev := 0
	for level := 0; level <= model.MaxRegularUpgradeLevel; level++ {
		got, err := ToSpecialUpgradeLevel(level)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev, "level %d", level)
		assert.LessOrEqual(t, got-prev, 1, "level %d skips a somber level", level)
		prev = got
	}
}

func TestToSpecialUpgradeLevel_OutOfRange(t *testing.T) {
	for _, level := range []int{-1, 26, 100} {
		_, err := ToSpecialUpgradeLevel(level)
		assert.ErrorIs(t, err, model.ErrInvalidUpgradeLevel, "level %d", level)
	}
}

func TestUpgradeLevelLabel(t *testing.T) {
	assert.Equal(t, "+0 / +0", UpgradeLevelLabel(0))
	assert.Equal(t, "+12 / +5", UpgradeLevelLabel(12))
	assert.Equal(t, "+25 / +10", UpgradeLevelLabel(25))
	assert.Equal(t, "+30", UpgradeLevelLabel(30))
}

func flatWeapon(rows int, special bool) *model.Weapon {
	w := &model.Weapon{Name: "Test", SpecialUpgrade: special}
	for range rows {
		w.Attack = append(w.Attack, map[model.DamageType]float64{model.DamageTypePhysical: 100})
	}
	return w
}

func TestUpgradeRow(t *testing.T) {
	regular := flatWeapon(26, false)
	row, err := UpgradeRow(regular, 17)
	require.NoError(t, err)
	assert.Equal(t, 17, row)

	somber := flatWeapon(11, true)
	row, err = UpgradeRow(somber, 25)
	require.NoError(t, err)
	assert.Equal(t, 10, row)

	short := flatWeapon(11, false)
	_, err = UpgradeRow(short, 12)
	assert.ErrorIs(t, err, model.ErrInvalidUpgradeLevel)
	assert.True(t, SupportsUpgradeLevel(short, 10))
	assert.False(t, SupportsUpgradeLevel(short, 11))

	_, err = UpgradeRow(regular, -1)
	assert.ErrorIs(t, err, model.ErrInvalidUpgradeLevel)
}

func TestMaxUpgradeLevel(t *testing.T) {
	assert.Equal(t, 25, MaxUpgradeLevel(flatWeapon(26, false)))
	assert.Equal(t, 10, MaxUpgradeLevel(flatWeapon(11, false)))
	assert.Equal(t, 25, MaxUpgradeLevel(flatWeapon(11, true)))
	// somber +5 is reached at +14 and lost at +15
	assert.Equal(t, 14, MaxUpgradeLevel(flatWeapon(6, true)))
}
