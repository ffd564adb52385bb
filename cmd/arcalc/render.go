package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/game/search"
	"github.com/udisondev/arcalc/internal/model"
)

// ineffectiveMark follows a requirement the character does not meet.
const ineffectiveMark = "!"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// displayValue floors the way the game shows attack and buildup.
func displayValue(v float64) int {
	return int(math.Floor(v))
}

func statusCell(result model.WeaponAttackResult) string {
	buildups := result.HighestBuildups()
	if len(buildups) == 0 {
		return "-"
	}
	parts := make([]string, len(buildups))
	for i, b := range buildups {
		parts[i] = fmt.Sprintf("%s %d", b.Type, displayValue(b.Amount))
	}
	return strings.Join(parts, ", ")
}

// attributeCell renders "grade requirement" for one attribute, e.g. "C 18!".
func attributeCell(w *model.Weapon, result model.WeaponAttackResult, attr model.Attribute) string {
	grade := model.ScalingGrade(w.Scaling(attr))
	req := w.Requirement(attr)
	if req == 0 {
		return grade
	}
	cell := fmt.Sprintf("%s %d", grade, req)
	if result.IsIneffective(attr) {
		cell += ineffectiveMark
	}
	return cell
}

func attackCell(result model.WeaponAttackResult, dt model.DamageType) string {
	if _, ok := result.AttackRating[dt]; !ok {
		return "-"
	}
	return fmt.Sprint(displayValue(result.DamageAttack(dt)))
}

// renderRows prints the search table. splitDamage shows one column per damage type.
func renderRows(out io.Writer, rows []search.Row, splitDamage bool) error {
	tw := newTable(out)

	header := []string{"Weapon", "Type", "Affinity", "Weight"}
	if splitDamage {
		for _, dt := range model.AllDamageTypes {
			header = append(header, dt.Label())
		}
	} else {
		header = append(header, "Attack")
	}
	header = append(header, "Status")
	for _, attr := range model.AllAttributes {
		header = append(header, attr.Label()[:3])
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		w, result := row.Weapon, row.Result
		cells := []string{w.Name, w.WeaponType.String(), w.Affinity.String(), fmt.Sprintf("%.1f", w.Weight)}
		if splitDamage {
			for _, dt := range model.AllDamageTypes {
				cells = append(cells, attackCell(result, dt))
			}
		} else {
			cells = append(cells, fmt.Sprint(displayValue(result.TotalAttack())))
		}
		cells = append(cells, statusCell(result))
		for _, attr := range model.AllAttributes {
			cells = append(cells, attributeCell(w, result, attr))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// renderWeapon prints the per-damage-type breakdown of one weapon.
func renderWeapon(out io.Writer, w *model.Weapon, attrs model.Attributes, result model.WeaponAttackResult) error {
	fmt.Fprintf(out, "%s (%s, %s) %s, weight %.1f\n",
		w.Name, w.WeaponType, w.Affinity, data.UpgradeLevelLabel(result.UpgradeLevel), w.Weight)
	fmt.Fprintln(out, w.WikiURL())
	fmt.Fprintf(out, "Attributes: %s\n\n", attrs)

	tw := newTable(out)
	fmt.Fprintln(tw, "Damage\tBase\tScaling\tPenalty\tTotal")
	for _, dt := range result.DamageTypes() {
		p := result.AttackRating[dt]
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%d\n", dt.Label(), p.Base, p.Scaling, p.Penalty, displayValue(p.Total()))
	}
	fmt.Fprintf(tw, "Total\t\t\t\t%d\n", displayValue(result.TotalAttack()))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nStatus: %s\n\n", statusCell(result))

	tw = newTable(out)
	fmt.Fprintln(tw, "Attribute\tScaling\tRequirement")
	for _, attr := range model.AllAttributes {
		req := fmt.Sprint(w.Requirement(attr))
		if result.IsIneffective(attr) {
			req += ineffectiveMark
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", attr.Label(), model.ScalingGrade(w.Scaling(attr)), req)
	}
	return tw.Flush()
}

func renderLevels(out io.Writer) error {
	tw := newTable(out)
	fmt.Fprintln(tw, "Regular\tSomber\tLabel")
	for level := 0; level <= model.MaxRegularUpgradeLevel; level++ {
		special, err := data.ToSpecialUpgradeLevel(level)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "+%d\t+%d\t%s\n", level, special, data.UpgradeLevelLabel(level))
	}
	return tw.Flush()
}
