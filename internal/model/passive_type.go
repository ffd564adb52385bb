package model

import "fmt"

// PassiveType — статусный эффект, накапливаемый ударами оружия.
type PassiveType int8

const (
	PassiveScarletRot PassiveType = iota
	PassiveMadness
	PassiveSleep
	PassiveFrost
	PassivePoison
	PassiveBleed

	passiveTypeCount
)

// AllPassiveTypes lists passive types in canonical order.
var AllPassiveTypes = []PassiveType{
	PassiveScarletRot,
	PassiveMadness,
	PassiveSleep,
	PassiveFrost,
	PassivePoison,
	PassiveBleed,
}

var passiveTypeNames = []string{"Scarlet Rot", "Madness", "Sleep", "Frost", "Poison", "Bleed"}

func (p PassiveType) String() string {
	if p < 0 || p >= passiveTypeCount {
		return fmt.Sprintf("PassiveType(%d)", p)
	}
	return passiveTypeNames[p]
}

// ParsePassiveType parses "Bleed", "scarlet rot", etc.
func ParsePassiveType(s string) (PassiveType, error) {
	i, ok := lookupName(s, passiveTypeNames)
	if !ok {
		return 0, fmt.Errorf("unknown passive type %q", s)
	}
	return PassiveType(i), nil
}

func (p PassiveType) MarshalText() ([]byte, error) {
	if p < 0 || p >= passiveTypeCount {
		return nil, fmt.Errorf("invalid passive type %d", p)
	}
	return []byte(passiveTypeNames[p]), nil
}

func (p *PassiveType) UnmarshalText(text []byte) error {
	v, err := ParsePassiveType(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
