package model

import (
	"fmt"
	"strings"
)

const (
	// MaxRegularUpgradeLevel — максимум обычной заточки (Smithing Stone).
	MaxRegularUpgradeLevel = 25
	// MaxSpecialUpgradeLevel — максимум особой заточки (Somber Smithing Stone).
	MaxSpecialUpgradeLevel = 10
)

// WeaponMetadata holds source-identifying fields the calculator never reads.
type WeaponMetadata struct {
	// WeaponName — имя базового оружия без аффинити (ключ вики).
	WeaponName string
}

// Weapon — одна запись справочника: конкретное оружие в конкретной аффинити.
// Записи создаются один раз при загрузке справочника и больше не меняются.
type Weapon struct {
	Name       string
	Metadata   WeaponMetadata
	WeaponType WeaponType
	Affinity   Affinity
	Weight     float64

	// Requirements: отсутствующий ключ = 0 (нет требования).
	Requirements map[Attribute]int
	// AttributeScaling — коэффициенты скейлинга на +0 (1.0 = 100%).
	AttributeScaling map[Attribute]float64

	// SpecialUpgrade marks somber weapons: rows follow the 0..10 scale.
	SpecialUpgrade bool

	// Attack — базовая атака по типам урона, строка на уровень заточки.
	Attack []map[DamageType]float64
	// ScalingGrowth — множитель AttributeScaling для каждой строки.
	// Пустой срез означает 1.0 на всех уровнях.
	ScalingGrowth []float64
	// PassiveBuildup — накопление статусов по строкам. Одна строка действует на всех уровнях.
	PassiveBuildup []map[PassiveType]float64

	// ScalingAttributes overrides which attributes scale each damage type.
	ScalingAttributes map[DamageType][]Attribute
	// ScalingCurves overrides the scaling curve id per damage type.
	ScalingCurves map[DamageType]int
}

// Requirement returns the minimum value of attr needed to wield the weapon.
func (w *Weapon) Requirement(attr Attribute) int {
	return w.Requirements[attr]
}

// Scaling returns the base (+0) scaling coefficient for attr.
func (w *Weapon) Scaling(attr Attribute) float64 {
	return w.AttributeScaling[attr]
}

// ScalingAt returns the scaling coefficient for attr at the given table row.
func (w *Weapon) ScalingAt(attr Attribute, row int) float64 {
	coef := w.AttributeScaling[attr]
	if coef == 0 {
		return 0
	}
	if row >= 0 && row < len(w.ScalingGrowth) {
		return coef * w.ScalingGrowth[row]
	}
	return coef
}

// PassiveRow returns the buildup table for a row; nil if the weapon has none.
func (w *Weapon) PassiveRow(row int) map[PassiveType]float64 {
	switch {
	case len(w.PassiveBuildup) == 0:
		return nil
	case len(w.PassiveBuildup) == 1:
		return w.PassiveBuildup[0]
	case row < len(w.PassiveBuildup):
		return w.PassiveBuildup[row]
	default:
		return w.PassiveBuildup[len(w.PassiveBuildup)-1]
	}
}

// MaxRow returns the index of the last upgrade row.
func (w *Weapon) MaxRow() int {
	return len(w.Attack) - 1
}

// WikiURL builds the Fextralife wiki link for the base weapon.
func (w *Weapon) WikiURL() string {
	name := w.Metadata.WeaponName
	if name == "" {
		name = w.Name
	}
	return "https://eldenring.wiki.fextralife.com/" + strings.ReplaceAll(name, " ", "+")
}

// Validate checks the record has everything the calculator needs.
func (w *Weapon) Validate() error {
	if w == nil {
		return fmt.Errorf("%w: nil weapon", ErrMalformedWeapon)
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrMalformedWeapon)
	}
	if w.Weight < 0 {
		return fmt.Errorf("%w: %s: negative weight %.1f", ErrMalformedWeapon, w.Name, w.Weight)
	}
	if len(w.Attack) == 0 {
		return fmt.Errorf("%w: %s: no attack table", ErrMalformedWeapon, w.Name)
	}

	maxRows := MaxRegularUpgradeLevel + 1
	if w.SpecialUpgrade {
		maxRows = MaxSpecialUpgradeLevel + 1
	}
	if len(w.Attack) > maxRows {
		return fmt.Errorf("%w: %s: %d attack rows, at most %d allowed", ErrMalformedWeapon, w.Name, len(w.Attack), maxRows)
	}
	for i, row := range w.Attack {
		if len(row) == 0 {
			return fmt.Errorf("%w: %s: empty attack row %d", ErrMalformedWeapon, w.Name, i)
		}
	}
	if len(w.ScalingGrowth) != 0 && len(w.ScalingGrowth) != len(w.Attack) {
		return fmt.Errorf("%w: %s: %d scaling growth rows for %d attack rows",
			ErrMalformedWeapon, w.Name, len(w.ScalingGrowth), len(w.Attack))
	}
	if n := len(w.PassiveBuildup); n > 1 && n != len(w.Attack) {
		return fmt.Errorf("%w: %s: %d passive rows for %d attack rows",
			ErrMalformedWeapon, w.Name, n, len(w.Attack))
	}
	for attr, req := range w.Requirements {
		if req < 0 {
			return fmt.Errorf("%w: %s: negative %s requirement", ErrMalformedWeapon, w.Name, attr)
		}
	}
	for attr, coef := range w.AttributeScaling {
		if coef < 0 {
			return fmt.Errorf("%w: %s: negative %s scaling", ErrMalformedWeapon, w.Name, attr)
		}
	}
	return nil
}
