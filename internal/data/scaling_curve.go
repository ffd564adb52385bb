package data

import (
	"fmt"
	"math"
)

// MaxCurveAttributeValue — верхняя граница таблиц кривых.
// Two-handed strength reaches floor(99*1.5) = 148; strength-scaled curves go to 150,
// the elemental and status ones flatten after 99.
const MaxCurveAttributeValue = 150

// MaxEffectiveAttributeValue is the largest attribute value the calculator accepts
// (two-handed 99 strength).
const MaxEffectiveAttributeValue = 148

// CurvePoint — точка ступенчатой кривой скейлинга (CalcCorrectGraph).
// Exponent shapes the segment from this point to the next one:
//
//	exp > 0: ratio^exp
//	exp < 0: 1 - (1-ratio)^-exp
type CurvePoint struct {
	Attribute int
	Growth    float64
	Exponent  float64
}

// Scaling curve ids used by weapon data.
const (
	CurvePhysical        = 0
	CurvePhysicalEarly   = 1
	CurveElemental       = 4
	CurveStatus          = 6
	CurveElementalStr    = 7
	CurvePhysicalLowBase = 8
)

// scalingCurveStages — опубликованные таблицы CalcCorrectGraph.
// Growth is a percentage of the weapon's base attack at full scaling.
var scalingCurveStages = map[int][]CurvePoint{
	CurvePhysical: {
		{Attribute: 1, Growth: 0, Exponent: 1.2},
		{Attribute: 18, Growth: 25, Exponent: -1.2},
		{Attribute: 60, Growth: 75, Exponent: 1},
		{Attribute: 80, Growth: 90, Exponent: 1},
		{Attribute: 150, Growth: 110},
	},
	CurvePhysicalEarly: {
		{Attribute: 1, Growth: 0, Exponent: 1.2},
		{Attribute: 20, Growth: 35, Exponent: -1.2},
		{Attribute: 60, Growth: 75, Exponent: 1},
		{Attribute: 80, Growth: 90, Exponent: 1},
		{Attribute: 150, Growth: 110},
	},
	CurveElemental: {
		{Attribute: 1, Growth: 0, Exponent: 1},
		{Attribute: 20, Growth: 40, Exponent: 1},
		{Attribute: 50, Growth: 80, Exponent: 1},
		{Attribute: 80, Growth: 95, Exponent: 1},
		{Attribute: 99, Growth: 100},
	},
	CurveStatus: {
		{Attribute: 1, Growth: 0, Exponent: 1},
		{Attribute: 25, Growth: 10, Exponent: 1},
		{Attribute: 45, Growth: 75, Exponent: 1},
		{Attribute: 60, Growth: 90, Exponent: 1},
		{Attribute: 99, Growth: 100},
	},
	CurveElementalStr: {
		{Attribute: 1, Growth: 0, Exponent: 1.2},
		{Attribute: 20, Growth: 35, Exponent: -1.2},
		{Attribute: 60, Growth: 75, Exponent: 1},
		{Attribute: 80, Growth: 90, Exponent: 1},
		{Attribute: 150, Growth: 110},
	},
	CurvePhysicalLowBase: {
		{Attribute: 1, Growth: 0, Exponent: 1.2},
		{Attribute: 16, Growth: 25, Exponent: -1.2},
		{Attribute: 60, Growth: 65, Exponent: 1},
		{Attribute: 80, Growth: 90, Exponent: 1},
		{Attribute: 150, Growth: 110},
	},
}

// CurveTable — значения кривой для каждого значения атрибута 0..150.
type CurveTable [MaxCurveAttributeValue + 1]float64

// Value returns the curve value with bounds checking:
// values outside [0..150] return the boundary entry.
func (t *CurveTable) Value(attr int) float64 {
	if attr < 0 {
		return t[0]
	}
	if attr > MaxCurveAttributeValue {
		return t[MaxCurveAttributeValue]
	}
	return t[attr]
}

// NewCurveTable precomputes a curve for every attribute value.
func NewCurveTable(points []CurvePoint) (*CurveTable, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("curve needs at least 2 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Attribute <= points[i-1].Attribute {
			return nil, fmt.Errorf("curve points must be strictly increasing: %d after %d",
				points[i].Attribute, points[i-1].Attribute)
		}
	}

	var t CurveTable
	for v := 0; v <= MaxCurveAttributeValue; v++ {
		t[v] = curveValue(points, v)
	}
	return &t, nil
}

func curveValue(points []CurvePoint, v int) float64 {
	first, last := points[0], points[len(points)-1]
	if v <= first.Attribute {
		return first.Growth
	}
	if v >= last.Attribute {
		return last.Growth
	}

	i := 0
	for v > points[i+1].Attribute {
		i++
	}
	lo, hi := points[i], points[i+1]

	ratio := float64(v-lo.Attribute) / float64(hi.Attribute-lo.Attribute)
	switch {
	case lo.Exponent > 0:
		ratio = math.Pow(ratio, lo.Exponent)
	case lo.Exponent < 0:
		ratio = 1 - math.Pow(1-ratio, -lo.Exponent)
	}
	return lo.Growth + (hi.Growth-lo.Growth)*ratio
}

var curveTables = mustBuildCurveTables(scalingCurveStages)

func mustBuildCurveTables(stages map[int][]CurvePoint) map[int]*CurveTable {
	tables := make(map[int]*CurveTable, len(stages))
	for id, points := range stages {
		t, err := NewCurveTable(points)
		if err != nil {
			panic(fmt.Sprintf("scaling curve %d: %v", id, err))
		}
		tables[id] = t
	}
	return tables
}

// HasCurve reports whether a curve id is known.
func HasCurve(id int) bool {
	_, ok := curveTables[id]
	return ok
}

// CurveValue returns the growth percentage of curve id at attr.
// Unknown ids fall back to the physical curve.
func CurveValue(id, attr int) float64 {
	t, ok := curveTables[id]
	if !ok {
		t = curveTables[CurvePhysical]
	}
	return t.Value(attr)
}

// CurveStages returns a copy of the stage table of curve id.
func CurveStages(id int) []CurvePoint {
	points := scalingCurveStages[id]
	out := make([]CurvePoint, len(points))
	copy(out, points)
	return out
}
