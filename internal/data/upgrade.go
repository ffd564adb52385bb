package data

import (
	"fmt"

	"github.com/udisondev/arcalc/internal/model"
)

// specialUpgradeLevels — соответствие обычной заточки (+0..+25) особой (+0..+10).
// Breakpoints are uneven, so this stays a table.
var specialUpgradeLevels = [model.MaxRegularUpgradeLevel + 1]int{
	0, 0, 1, 1, 1, // +0..+4
	2, 2, 3, 3, 3, // +5..+9
	4, 4, 5, 5, 5, // +10..+14
	6, 6, 7, 7, 7, // +15..+19
	8, 8, 9, 9, 9, // +20..+24
	10, // +25
}

// ToSpecialUpgradeLevel maps a regular upgrade level to the somber scale.
func ToSpecialUpgradeLevel(level int) (int, error) {
	if level < 0 || level > model.MaxRegularUpgradeLevel {
		return 0, fmt.Errorf("%w: %d outside [0, %d]", model.ErrInvalidUpgradeLevel, level, model.MaxRegularUpgradeLevel)
	}
	return specialUpgradeLevels[level], nil
}

// UpgradeLevelLabel formats a selector label, e.g. "+12 / +5".
func UpgradeLevelLabel(level int) string {
	special, err := ToSpecialUpgradeLevel(level)
	if err != nil {
		return fmt.Sprintf("+%d", level)
	}
	return fmt.Sprintf("+%d / +%d", level, special)
}

// UpgradeRow returns the row of the weapon's tables for a regular upgrade level.
// Somber weapons go through ToSpecialUpgradeLevel.
func UpgradeRow(w *model.Weapon, level int) (int, error) {
	row := level
	if w.SpecialUpgrade {
		special, err := ToSpecialUpgradeLevel(level)
		if err != nil {
			return 0, err
		}
		row = special
	} else if level < 0 || level > model.MaxRegularUpgradeLevel {
		return 0, fmt.Errorf("%w: %d outside [0, %d]", model.ErrInvalidUpgradeLevel, level, model.MaxRegularUpgradeLevel)
	}

	if row > w.MaxRow() {
		return 0, fmt.Errorf("%w: %s supports up to +%d, got +%d",
			model.ErrInvalidUpgradeLevel, w.Name, MaxUpgradeLevel(w), level)
	}
	return row, nil
}

// SupportsUpgradeLevel reports whether UpgradeRow would succeed.
func SupportsUpgradeLevel(w *model.Weapon, level int) bool {
	_, err := UpgradeRow(w, level)
	return err == nil
}

// MaxUpgradeLevel returns the highest regular upgrade level the weapon accepts.
func MaxUpgradeLevel(w *model.Weapon) int {
	if !w.SpecialUpgrade {
		return min(w.MaxRow(), model.MaxRegularUpgradeLevel)
	}
	maxLevel := 0
	for level, special := range specialUpgradeLevels {
		if special <= w.MaxRow() {
			maxLevel = level
		}
	}
	return maxLevel
}
