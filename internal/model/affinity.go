package model

import "fmt"

// Affinity — вариант заточки (пепел войны), меняющий скейлинг и тип урона.
type Affinity int8

const (
	AffinityNone Affinity = iota
	AffinityHeavy
	AffinityKeen
	AffinityQuality
	AffinityMagic
	AffinityCold
	AffinityFire
	AffinityFlameArt
	AffinityLightning
	AffinitySacred
	AffinityPoison
	AffinityBlood
	AffinityOccult

	affinityCount
)

var affinityNames = []string{
	"None",
	"Heavy",
	"Keen",
	"Quality",
	"Magic",
	"Cold",
	"Fire",
	"Flame Art",
	"Lightning",
	"Sacred",
	"Poison",
	"Blood",
	"Occult",
}

// AllAffinities returns every affinity in canonical order.
func AllAffinities() []Affinity {
	out := make([]Affinity, affinityCount)
	for i := range out {
		out[i] = Affinity(i)
	}
	return out
}

func (a Affinity) String() string {
	if a < 0 || a >= affinityCount {
		return fmt.Sprintf("Affinity(%d)", a)
	}
	return affinityNames[a]
}

// ParseAffinity parses "Flame Art", "flame art", etc.
func ParseAffinity(s string) (Affinity, error) {
	i, ok := lookupName(s, affinityNames)
	if !ok {
		return 0, fmt.Errorf("unknown affinity %q", s)
	}
	return Affinity(i), nil
}

func (a Affinity) MarshalText() ([]byte, error) {
	if a < 0 || a >= affinityCount {
		return nil, fmt.Errorf("invalid affinity %d", a)
	}
	return []byte(affinityNames[a]), nil
}

func (a *Affinity) UnmarshalText(text []byte) error {
	v, err := ParseAffinity(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
