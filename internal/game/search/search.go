package search

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/arcalc/internal/game/combat"
	"github.com/udisondev/arcalc/internal/model"
)

// Query — всё, что пользователь задаёт на экране поиска.
type Query struct {
	Attributes    model.Attributes
	TwoHanding    bool
	UpgradeLevel  int
	WeaponTypes   []model.WeaponType
	Affinities    []model.Affinity
	MaxWeight     float64
	EffectiveOnly bool
	// Workers bounds concurrent evaluation; <= 0 means GOMAXPROCS.
	Workers int
}

// Row pairs a weapon with its computed attack.
type Row struct {
	Weapon *model.Weapon
	Result model.WeaponAttackResult
}

// Run filters weapons and computes attack for every match.
//
// Attributes are adjusted for two-handing first; the adjusted vector is both
// the "effective only" filter input and the calculator input. Rows come back
// in filter order regardless of evaluation order.
func Run(ctx context.Context, weapons iter.Seq[*model.Weapon], calc *combat.Calculator, q Query) ([]Row, error) {
	if err := q.Attributes.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}

	attrs := q.Attributes
	if q.TwoHanding {
		attrs = calc.Rules().AdjustForTwoHanding(attrs)
	}

	opts := FilterOptions{
		UpgradeLevel: q.UpgradeLevel,
		WeaponTypes:  q.WeaponTypes,
		Affinities:   q.Affinities,
		MaxWeight:    q.MaxWeight,
	}
	if q.EffectiveOnly {
		opts.EffectiveWith = &attrs
	}

	filtered, err := FilterWeapons(weapons, opts)
	if err != nil {
		return nil, err
	}

	rows, err := Evaluate(ctx, calc, filtered, attrs, q.UpgradeLevel, q.Workers)
	if err != nil {
		return nil, err
	}

	slog.Debug("search finished",
		"attributes", attrs.String(),
		"two_handing", q.TwoHanding,
		"upgrade_level", q.UpgradeLevel,
		"rows", len(rows))
	return rows, nil
}

// Evaluate computes attack for each weapon concurrently, keeping input order.
func Evaluate(ctx context.Context, calc *combat.Calculator, weapons []*model.Weapon, attrs model.Attributes, upgradeLevel, workers int) ([]Row, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make([]Row, len(weapons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, w := range weapons {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := calc.ComputeAttack(w, attrs, upgradeLevel)
			if err != nil {
				return fmt.Errorf("computing attack for %s: %w", w.Name, err)
			}
			rows[i] = Row{Weapon: w, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
