package model

import "fmt"

// WeaponType — категория оружия.
type WeaponType int8

const (
	WeaponTypeAxe WeaponType = iota
	WeaponTypeBallista
	WeaponTypeBow
	WeaponTypeClaw
	WeaponTypeColossalSword
	WeaponTypeColossalWeapon
	WeaponTypeCrossbow
	WeaponTypeCurvedGreatsword
	WeaponTypeCurvedSword
	WeaponTypeDagger
	WeaponTypeFist
	WeaponTypeFlail
	WeaponTypeGlintstoneStaff
	WeaponTypeGreataxe
	WeaponTypeGreatbow
	WeaponTypeGreatHammer
	WeaponTypeGreatshield
	WeaponTypeGreatSpear
	WeaponTypeGreatsword
	WeaponTypeHalberd
	WeaponTypeHammer
	WeaponTypeHeavyThrustingSword
	WeaponTypeKatana
	WeaponTypeLightBow
	WeaponTypeMediumShield
	WeaponTypeReaper
	WeaponTypeSacredSeal
	WeaponTypeSmallShield
	WeaponTypeSpear
	WeaponTypeStraightSword
	WeaponTypeThrustingSword
	WeaponTypeTorch
	WeaponTypeTwinblade
	WeaponTypeWhip

	weaponTypeCount
)

var weaponTypeNames = []string{
	"Axe",
	"Ballista",
	"Bow",
	"Claw",
	"Colossal Sword",
	"Colossal Weapon",
	"Crossbow",
	"Curved Greatsword",
	"Curved Sword",
	"Dagger",
	"Fist",
	"Flail",
	"Glintstone Staff",
	"Greataxe",
	"Greatbow",
	"Great Hammer",
	"Greatshield",
	"Great Spear",
	"Greatsword",
	"Halberd",
	"Hammer",
	"Heavy Thrusting Sword",
	"Katana",
	"Light Bow",
	"Medium Shield",
	"Reaper",
	"Sacred Seal",
	"Small Shield",
	"Spear",
	"Straight Sword",
	"Thrusting Sword",
	"Torch",
	"Twinblade",
	"Whip",
}

// AllWeaponTypes returns every weapon type in canonical order.
func AllWeaponTypes() []WeaponType {
	out := make([]WeaponType, weaponTypeCount)
	for i := range out {
		out[i] = WeaponType(i)
	}
	return out
}

func (w WeaponType) String() string {
	if w < 0 || w >= weaponTypeCount {
		return fmt.Sprintf("WeaponType(%d)", w)
	}
	return weaponTypeNames[w]
}

// ParseWeaponType parses "Straight Sword", "katana", etc.
func ParseWeaponType(s string) (WeaponType, error) {
	i, ok := lookupName(s, weaponTypeNames)
	if !ok {
		return 0, fmt.Errorf("unknown weapon type %q", s)
	}
	return WeaponType(i), nil
}

func (w WeaponType) MarshalText() ([]byte, error) {
	if w < 0 || w >= weaponTypeCount {
		return nil, fmt.Errorf("invalid weapon type %d", w)
	}
	return []byte(weaponTypeNames[w]), nil
}

func (w *WeaponType) UnmarshalText(text []byte) error {
	v, err := ParseWeaponType(string(text))
	if err != nil {
		return err
	}
	*w = v
	return nil
}
