package data

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/udisondev/arcalc/internal/model"
)

// WeaponRecord — запись оружия в JSON-формате справочника.
//
// Attack tables come either explicitly (AttackTable, one row per level) or as
// a +0 row (Attack) expanded through a Reinforce table.
type WeaponRecord struct {
	Name             string             `json:"name"`
	WeaponName       string             `json:"weaponName,omitempty"`
	WeaponType       string             `json:"weaponType"`
	Affinity         string             `json:"affinity"`
	Weight           float64            `json:"weight"`
	Requirements     map[string]int     `json:"requirements,omitempty"`
	AttributeScaling map[string]float64 `json:"attributeScaling,omitempty"`
	SpecialUpgrade   bool               `json:"specialUpgrade,omitempty"`

	Reinforce     string                 `json:"reinforce,omitempty"`
	Attack        map[string]float64     `json:"attack,omitempty"`
	AttackTable   []map[string]float64   `json:"attackTable,omitempty"`
	ScalingGrowth []float64              `json:"scalingGrowth,omitempty"`
	Passives      map[string]float64     `json:"passives,omitempty"`
	PassiveTable  []map[string]float64   `json:"passiveTable,omitempty"`

	ScalingAttributes map[string][]string `json:"scalingAttributes,omitempty"`
	ScalingCurves     map[string]int      `json:"scalingCurves,omitempty"`
}

// ToWeapon converts a wire record into a validated model.Weapon.
func (r *WeaponRecord) ToWeapon() (*model.Weapon, error) {
	w := &model.Weapon{
		Name:           r.Name,
		Metadata:       model.WeaponMetadata{WeaponName: r.WeaponName},
		Weight:         r.Weight,
		SpecialUpgrade: r.SpecialUpgrade,
	}
	if w.Metadata.WeaponName == "" {
		w.Metadata.WeaponName = r.Name
	}

	var err error
	if w.WeaponType, err = model.ParseWeaponType(r.WeaponType); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedWeapon, r.Name, err)
	}
	affinity := r.Affinity
	if affinity == "" {
		affinity = model.AffinityNone.String()
	}
	if w.Affinity, err = model.ParseAffinity(affinity); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedWeapon, r.Name, err)
	}

	if w.Requirements, err = parseAttributeMap(r.Requirements); err != nil {
		return nil, fmt.Errorf("%w: %s: requirements: %v", model.ErrMalformedWeapon, r.Name, err)
	}
	if w.AttributeScaling, err = parseAttributeMap(r.AttributeScaling); err != nil {
		return nil, fmt.Errorf("%w: %s: scaling: %v", model.ErrMalformedWeapon, r.Name, err)
	}

	if err := r.fillTables(w); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrMalformedWeapon, r.Name, err)
	}

	if len(r.ScalingAttributes) > 0 {
		w.ScalingAttributes = make(map[model.DamageType][]model.Attribute, len(r.ScalingAttributes))
		for key, names := range r.ScalingAttributes {
			dt, err := model.ParseDamageType(key)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: scaling attributes: %v", model.ErrMalformedWeapon, r.Name, err)
			}
			attrs := make([]model.Attribute, 0, len(names))
			for _, name := range names {
				attr, err := model.ParseAttribute(name)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: scaling attributes: %v", model.ErrMalformedWeapon, r.Name, err)
				}
				attrs = append(attrs, attr)
			}
			w.ScalingAttributes[dt] = attrs
		}
	}
	if len(r.ScalingCurves) > 0 {
		w.ScalingCurves = make(map[model.DamageType]int, len(r.ScalingCurves))
		for key, id := range r.ScalingCurves {
			dt, err := model.ParseDamageType(key)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: scaling curves: %v", model.ErrMalformedWeapon, r.Name, err)
			}
			if !HasCurve(id) {
				return nil, fmt.Errorf("%w: %s: unknown scaling curve %d", model.ErrMalformedWeapon, r.Name, id)
			}
			w.ScalingCurves[dt] = id
		}
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WeaponRecord) fillTables(w *model.Weapon) error {
	switch {
	case len(r.AttackTable) > 0:
		w.Attack = make([]map[model.DamageType]float64, len(r.AttackTable))
		for i, row := range r.AttackTable {
			parsed, err := parseDamageMap(row)
			if err != nil {
				return fmt.Errorf("attack row %d: %v", i, err)
			}
			w.Attack[i] = parsed
		}
		w.ScalingGrowth = append([]float64(nil), r.ScalingGrowth...)

	case len(r.Attack) > 0:
		id := r.Reinforce
		if id == "" {
			id = ReinforceStandard
			if r.SpecialUpgrade {
				id = ReinforceSomber
			}
		}
		reinforce, err := GetReinforce(id)
		if err != nil {
			return err
		}
		base, err := parseDamageMap(r.Attack)
		if err != nil {
			return fmt.Errorf("attack: %v", err)
		}
		w.Attack = make([]map[model.DamageType]float64, reinforce.Rows())
		for level := range w.Attack {
			row := make(map[model.DamageType]float64, len(base))
			for dt, v := range base {
				row[dt] = v * reinforce.AttackRate[level]
			}
			w.Attack[level] = row
		}
		w.ScalingGrowth = append([]float64(nil), reinforce.ScalingRate...)

	default:
		return fmt.Errorf("no attack table")
	}

	switch {
	case len(r.PassiveTable) > 0:
		w.PassiveBuildup = make([]map[model.PassiveType]float64, len(r.PassiveTable))
		for i, row := range r.PassiveTable {
			parsed, err := parsePassiveMap(row)
			if err != nil {
				return fmt.Errorf("passive row %d: %v", i, err)
			}
			w.PassiveBuildup[i] = parsed
		}
	case len(r.Passives) > 0:
		parsed, err := parsePassiveMap(r.Passives)
		if err != nil {
			return fmt.Errorf("passives: %v", err)
		}
		w.PassiveBuildup = []map[model.PassiveType]float64{parsed}
	}
	return nil
}

// NewWeaponRecord converts a model.Weapon back into the wire format.
// Tables are always written explicitly.
func NewWeaponRecord(w *model.Weapon) *WeaponRecord {
	r := &WeaponRecord{
		Name:           w.Name,
		WeaponName:     w.Metadata.WeaponName,
		WeaponType:     w.WeaponType.String(),
		Affinity:       w.Affinity.String(),
		Weight:         w.Weight,
		SpecialUpgrade: w.SpecialUpgrade,
		ScalingGrowth:  append([]float64(nil), w.ScalingGrowth...),
	}
	if len(w.Requirements) > 0 {
		r.Requirements = make(map[string]int, len(w.Requirements))
		for attr, v := range w.Requirements {
			r.Requirements[attr.String()] = v
		}
	}
	if len(w.AttributeScaling) > 0 {
		r.AttributeScaling = make(map[string]float64, len(w.AttributeScaling))
		for attr, v := range w.AttributeScaling {
			r.AttributeScaling[attr.String()] = v
		}
	}
	r.AttackTable = make([]map[string]float64, len(w.Attack))
	for i, row := range w.Attack {
		out := make(map[string]float64, len(row))
		for dt, v := range row {
			out[dt.String()] = v
		}
		r.AttackTable[i] = out
	}
	if len(w.PassiveBuildup) > 0 {
		r.PassiveTable = make([]map[string]float64, len(w.PassiveBuildup))
		for i, row := range w.PassiveBuildup {
			out := make(map[string]float64, len(row))
			for pt, v := range row {
				out[pt.String()] = v
			}
			r.PassiveTable[i] = out
		}
	}
	if len(w.ScalingAttributes) > 0 {
		r.ScalingAttributes = make(map[string][]string, len(w.ScalingAttributes))
		for dt, attrs := range w.ScalingAttributes {
			names := make([]string, len(attrs))
			for i, attr := range attrs {
				names[i] = attr.String()
			}
			r.ScalingAttributes[dt.String()] = names
		}
	}
	if len(w.ScalingCurves) > 0 {
		r.ScalingCurves = make(map[string]int, len(w.ScalingCurves))
		for dt, id := range w.ScalingCurves {
			r.ScalingCurves[dt.String()] = id
		}
	}
	return r
}

// EncodeWeapon serializes a weapon as one JSON document.
// ConfigStd sorts map keys, so equal weapons encode to equal bytes.
func EncodeWeapon(w *model.Weapon) ([]byte, error) {
	doc, err := sonic.ConfigStd.Marshal(NewWeaponRecord(w))
	if err != nil {
		return nil, fmt.Errorf("encoding weapon %s: %w", w.Name, err)
	}
	return doc, nil
}

// DecodeWeapon parses one JSON weapon document.
func DecodeWeapon(doc []byte) (*model.Weapon, error) {
	var r WeaponRecord
	if err := sonic.Unmarshal(doc, &r); err != nil {
		return nil, fmt.Errorf("%w: decoding weapon: %v", model.ErrMalformedWeapon, err)
	}
	return r.ToWeapon()
}

func parseAttributeMap[V int | float64](in map[string]V) (map[model.Attribute]V, error) {
	out := make(map[model.Attribute]V, len(in))
	for key, v := range in {
		attr, err := model.ParseAttribute(key)
		if err != nil {
			return nil, err
		}
		if v != 0 {
			out[attr] = v
		}
	}
	return out, nil
}

func parseDamageMap(in map[string]float64) (map[model.DamageType]float64, error) {
	out := make(map[model.DamageType]float64, len(in))
	for key, v := range in {
		dt, err := model.ParseDamageType(key)
		if err != nil {
			return nil, err
		}
		if v != 0 {
			out[dt] = v
		}
	}
	return out, nil
}

func parsePassiveMap(in map[string]float64) (map[model.PassiveType]float64, error) {
	out := make(map[model.PassiveType]float64, len(in))
	for key, v := range in {
		pt, err := model.ParsePassiveType(key)
		if err != nil {
			return nil, err
		}
		if v != 0 {
			out[pt] = v
		}
	}
	return out, nil
}
