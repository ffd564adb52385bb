package search

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/udisondev/arcalc/internal/model"
)

// SortKind — колонка таблицы, по которой сортируются строки.
type SortKind int

const (
	SortByName SortKind = iota
	SortByTotalAttack
	SortByDamageAttack
	SortByStatus
	SortByScaling
	SortByRequirement
)

// SortKey selects a column; DamageType and Attribute qualify the per-type columns.
type SortKey struct {
	Kind       SortKind
	DamageType model.DamageType
	Attribute  model.Attribute
}

func (k SortKey) String() string {
	switch k.Kind {
	case SortByName:
		return "name"
	case SortByTotalAttack:
		return "attack"
	case SortByDamageAttack:
		return "attack:" + k.DamageType.String()
	case SortByStatus:
		return "status"
	case SortByScaling:
		return "scaling:" + k.Attribute.String()
	case SortByRequirement:
		return "requirement:" + k.Attribute.String()
	default:
		return fmt.Sprintf("SortKind(%d)", k.Kind)
	}
}

// ParseSortKey parses "name", "attack", "attack:fire", "status",
// "scaling:dex" or "requirement:str".
func ParseSortKey(s string) (SortKey, error) {
	column, qualifier, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch column {
	case "name":
		return SortKey{Kind: SortByName}, nil
	case "attack":
		if qualifier == "" {
			return SortKey{Kind: SortByTotalAttack}, nil
		}
		dt, err := model.ParseDamageType(qualifier)
		if err != nil {
			return SortKey{}, fmt.Errorf("sort key %q: %w", s, err)
		}
		return SortKey{Kind: SortByDamageAttack, DamageType: dt}, nil
	case "status":
		return SortKey{Kind: SortByStatus}, nil
	case "scaling", "requirement":
		attr, err := model.ParseAttribute(qualifier)
		if err != nil {
			return SortKey{}, fmt.Errorf("sort key %q: %w", s, err)
		}
		kind := SortByScaling
		if column == "requirement" {
			kind = SortByRequirement
		}
		return SortKey{Kind: kind, Attribute: attr}, nil
	default:
		return SortKey{}, fmt.Errorf("unknown sort key %q", s)
	}
}

// SortRows sorts rows in place. The sort is stable: equal rows keep filter order.
func SortRows(rows []Row, key SortKey, descending bool) {
	compare := rowComparator(key)
	slices.SortStableFunc(rows, func(a, b Row) int {
		if descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

func rowComparator(key SortKey) func(a, b Row) int {
	switch key.Kind {
	case SortByTotalAttack:
		return func(a, b Row) int {
			return cmp.Compare(a.Result.TotalAttack(), b.Result.TotalAttack())
		}
	case SortByDamageAttack:
		return func(a, b Row) int {
			return cmp.Compare(a.Result.DamageAttack(key.DamageType), b.Result.DamageAttack(key.DamageType))
		}
	case SortByStatus:
		return compareBuildups
	case SortByScaling:
		return func(a, b Row) int {
			return cmp.Compare(a.Weapon.Scaling(key.Attribute), b.Weapon.Scaling(key.Attribute))
		}
	case SortByRequirement:
		return func(a, b Row) int {
			return cmp.Compare(a.Weapon.Requirement(key.Attribute), b.Weapon.Requirement(key.Attribute))
		}
	default:
		return func(a, b Row) int {
			return cmp.Compare(a.Weapon.Name, b.Weapon.Name)
		}
	}
}

// compareBuildups orders by the highest buildup, then the next highest, and so on.
// A missing buildup counts as 0.
func compareBuildups(a, b Row) int {
	ba, bb := a.Result.HighestBuildups(), b.Result.HighestBuildups()
	n := max(len(ba), len(bb))
	for i := range n {
		var va, vb float64
		if i < len(ba) {
			va = ba[i].Amount
		}
		if i < len(bb) {
			vb = bb[i].Amount
		}
		if c := cmp.Compare(va, vb); c != 0 {
			return c
		}
	}
	return 0
}
