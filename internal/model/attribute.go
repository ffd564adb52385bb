package model

import (
	"fmt"
	"strings"
)

// Attribute — характеристика персонажа, влияющая на требования и скейлинг оружия.
type Attribute int8

const (
	AttributeStr Attribute = iota
	AttributeDex
	AttributeInt
	AttributeFai
	AttributeArc

	attributeCount
)

// AllAttributes lists attributes in canonical order.
// Calculations iterate this slice, never a map, so results are reproducible.
var AllAttributes = []Attribute{AttributeStr, AttributeDex, AttributeInt, AttributeFai, AttributeArc}

var attributeNames = [attributeCount]string{"str", "dex", "int", "fai", "arc"}

var attributeLabels = [attributeCount]string{"Strength", "Dexterity", "Intelligence", "Faith", "Arcane"}

// String returns the short attribute key ("str", "dex", ...).
func (a Attribute) String() string {
	if a < 0 || a >= attributeCount {
		return fmt.Sprintf("Attribute(%d)", a)
	}
	return attributeNames[a]
}

// Label returns the full attribute name shown to players.
func (a Attribute) Label() string {
	if a < 0 || a >= attributeCount {
		return a.String()
	}
	return attributeLabels[a]
}

// ParseAttribute accepts both the short key and the full label, case-insensitive.
func ParseAttribute(s string) (Attribute, error) {
	s = strings.TrimSpace(s)
	for i := range attributeCount {
		if strings.EqualFold(s, attributeNames[i]) || strings.EqualFold(s, attributeLabels[i]) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute %q", s)
}

func (a Attribute) MarshalText() ([]byte, error) {
	if a < 0 || a >= attributeCount {
		return nil, fmt.Errorf("invalid attribute %d", a)
	}
	return []byte(attributeNames[a]), nil
}

func (a *Attribute) UnmarshalText(text []byte) error {
	v, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
