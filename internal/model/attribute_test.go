package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		in   string
		want Attribute
	}{
		{"str", AttributeStr},
		{"Strength", AttributeStr},
		{" DEX ", AttributeDex},
		{"intelligence", AttributeInt},
		{"fai", AttributeFai},
		{"Arcane", AttributeArc},
	}

	for _, tt := range tests {
		got, err := ParseAttribute(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAttribute("luck")
	assert.Error(t, err)
}

func TestEnumsParseTheirOwnNames(t *testing.T) {
	for _, a := range AllAffinities() {
		got, err := ParseAffinity(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	for _, wt := range AllWeaponTypes() {
		got, err := ParseWeaponType(wt.String())
		require.NoError(t, err)
		assert.Equal(t, wt, got)
	}
	for _, pt := range AllPassiveTypes {
		got, err := ParsePassiveType(pt.String())
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
	for _, dt := range AllDamageTypes {
		got, err := ParseDamageType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	flameArt, err := ParseAffinity("flame art")
	require.NoError(t, err)
	assert.Equal(t, AffinityFlameArt, flameArt)
}

func TestEnumsFromYAML(t *testing.T) {
	var doc struct {
		Types      []WeaponType `yaml:"types"`
		Affinities []Affinity   `yaml:"affinities"`
	}
	err := yaml.Unmarshal([]byte("types: [Katana, \"Straight Sword\"]\naffinities: [Keen, blood]\n"), &doc)
	require.NoError(t, err)

	assert.Equal(t, []WeaponType{WeaponTypeKatana, WeaponTypeStraightSword}, doc.Types)
	assert.Equal(t, []Affinity{AffinityKeen, AffinityBlood}, doc.Affinities)

	err = yaml.Unmarshal([]byte("types: [Spoon]\n"), &doc)
	assert.Error(t, err)
}

func TestAttributes_Validate(t *testing.T) {
	valid := Attributes{Str: 1, Dex: 99, Int: 10, Fai: 10, Arc: 10}
	assert.NoError(t, valid.Validate())

	tests := []Attributes{
		{Str: 0, Dex: 10, Int: 10, Fai: 10, Arc: 10},
		{Str: 10, Dex: 100, Int: 10, Fai: 10, Arc: 10},
		{Str: 10, Dex: 10, Int: 10, Fai: 10, Arc: -5},
	}
	for _, attrs := range tests {
		assert.ErrorIs(t, attrs.Validate(), ErrInvalidAttributes, attrs.String())
	}

	twoHanded := Attributes{Str: 148, Dex: 10, Int: 10, Fai: 10, Arc: 10}
	assert.Error(t, twoHanded.Validate())
	assert.NoError(t, twoHanded.ValidateRange(1, 148))
}

func TestAttributes_GetWith(t *testing.T) {
	base := Attributes{Str: 1, Dex: 2, Int: 3, Fai: 4, Arc: 5}
	for i, attr := range AllAttributes {
		assert.Equal(t, i+1, base.Get(attr))
	}

	changed := base.With(AttributeFai, 40)
	assert.Equal(t, 40, changed.Fai)
	assert.Equal(t, 4, base.Fai, "With must not modify the receiver")
}

func TestScalingGrade(t *testing.T) {
	tests := []struct {
		scaling float64
		want    string
	}{
		{0, "-"},
		{0.01, "E"},
		{0.24, "E"},
		{0.25, "D"},
		{0.6, "C"},
		{0.89, "C"},
		{0.9, "B"},
		{1.4, "A"},
		{1.75, "A"},
		{1.76, "S"},
	}

	for _, tt := range tests {
		if got := ScalingGrade(tt.scaling); got != tt.want {
			t.Errorf("ScalingGrade(%v) = %q, want %q", tt.scaling, got, tt.want)
		}
	}
}
