package model

import "fmt"

const (
	// MinAttributeValue and MaxAttributeValue bound a character's raw attributes.
	MinAttributeValue = 1
	MaxAttributeValue = 99
)

// Attributes — вектор характеристик персонажа. Value type: копируется при передаче.
type Attributes struct {
	Str int `yaml:"str" json:"str"`
	Dex int `yaml:"dex" json:"dex"`
	Int int `yaml:"int" json:"int"`
	Fai int `yaml:"fai" json:"fai"`
	Arc int `yaml:"arc" json:"arc"`
}

// Get returns the value of one attribute.
func (a Attributes) Get(attr Attribute) int {
	switch attr {
	case AttributeStr:
		return a.Str
	case AttributeDex:
		return a.Dex
	case AttributeInt:
		return a.Int
	case AttributeFai:
		return a.Fai
	case AttributeArc:
		return a.Arc
	default:
		return 0
	}
}

// With returns a copy of a with attr set to value.
func (a Attributes) With(attr Attribute, value int) Attributes {
	switch attr {
	case AttributeStr:
		a.Str = value
	case AttributeDex:
		a.Dex = value
	case AttributeInt:
		a.Int = value
	case AttributeFai:
		a.Fai = value
	case AttributeArc:
		a.Arc = value
	}
	return a
}

// Validate checks raw character attributes are within [1, 99].
func (a Attributes) Validate() error {
	return a.ValidateRange(MinAttributeValue, MaxAttributeValue)
}

// ValidateRange checks every attribute lies within [lo, hi].
// Two-handed vectors exceed 99, so callers pass the wider bound for them.
func (a Attributes) ValidateRange(lo, hi int) error {
	for _, attr := range AllAttributes {
		v := a.Get(attr)
		if v < lo || v > hi {
			return fmt.Errorf("%w: %s=%d outside [%d, %d]", ErrInvalidAttributes, attr, v, lo, hi)
		}
	}
	return nil
}

func (a Attributes) String() string {
	return fmt.Sprintf("str=%d dex=%d int=%d fai=%d arc=%d", a.Str, a.Dex, a.Int, a.Fai, a.Arc)
}
