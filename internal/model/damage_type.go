package model

import "fmt"

// DamageType — тип урона в attack rating оружия.
type DamageType int8

const (
	DamageTypePhysical DamageType = iota
	DamageTypeMagic
	DamageTypeFire
	DamageTypeLightning
	DamageTypeHoly

	damageTypeCount
)

// AllDamageTypes lists damage types in canonical order.
var AllDamageTypes = []DamageType{
	DamageTypePhysical,
	DamageTypeMagic,
	DamageTypeFire,
	DamageTypeLightning,
	DamageTypeHoly,
}

var damageTypeNames = []string{"physical", "magic", "fire", "lightning", "holy"}

var damageTypeLabels = []string{"Physical", "Magic", "Fire", "Lightning", "Holy"}

func (d DamageType) String() string {
	if d < 0 || d >= damageTypeCount {
		return fmt.Sprintf("DamageType(%d)", d)
	}
	return damageTypeNames[d]
}

// Label returns the capitalized damage type name.
func (d DamageType) Label() string {
	if d < 0 || d >= damageTypeCount {
		return d.String()
	}
	return damageTypeLabels[d]
}

// ParseDamageType parses "physical", "Magic", etc.
func ParseDamageType(s string) (DamageType, error) {
	i, ok := lookupName(s, damageTypeNames)
	if !ok {
		return 0, fmt.Errorf("unknown damage type %q", s)
	}
	return DamageType(i), nil
}

func (d DamageType) MarshalText() ([]byte, error) {
	if d < 0 || d >= damageTypeCount {
		return nil, fmt.Errorf("invalid damage type %d", d)
	}
	return []byte(damageTypeNames[d]), nil
}

func (d *DamageType) UnmarshalText(text []byte) error {
	v, err := ParseDamageType(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
