package main

import (
	"context"
	"fmt"
	"math"

	"github.com/udisondev/arcalc/internal/game/search"
	"github.com/udisondev/arcalc/internal/model"
)

func runSearch(ctx context.Context, a *app, args []string) error {
	def := a.cfg.Search

	fs := newFlagSet("search", a.out)
	attrs := bindAttributes(fs, def.Attributes)
	level := fs.Int("level", def.UpgradeLevel, "regular upgrade level 0..25")
	twoHanding := fs.Bool("two-handing", def.TwoHanding, "wield with both hands (Strength x1.5)")
	types := fs.String("types", joinNames(def.WeaponTypes), "comma-separated weapon types")
	affinities := fs.String("affinities", joinNames(def.Affinities), "comma-separated affinities")
	maxWeight := fs.Float64("max-weight", def.MaxWeight, "maximum weight, 0 for no limit")
	effective := fs.Bool("effective", def.EffectiveOnly, "only weapons whose requirements are met")
	sortBy := fs.String("sort", def.SortBy, "name | attack[:type] | status | scaling:attr | requirement:attr")
	desc := fs.Bool("desc", def.Descending, "sort descending")
	split := fs.Bool("split", def.SplitDamage, "one column per damage type")
	limit := fs.Int("limit", 0, "print at most N rows, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	weaponTypes, err := parseList(*types, model.ParseWeaponType)
	if err != nil {
		return err
	}
	affinityList, err := parseList(*affinities, model.ParseAffinity)
	if err != nil {
		return err
	}
	sortKey, err := search.ParseSortKey(*sortBy)
	if err != nil {
		return err
	}
	weight := *maxWeight
	if weight == 0 {
		weight = math.Inf(1)
	}

	catalog, err := loadCatalog(ctx, a.cfg.Data)
	if err != nil {
		return err
	}

	rows, err := search.Run(ctx, catalog.All(), a.calc, search.Query{
		Attributes:    *attrs,
		TwoHanding:    *twoHanding,
		UpgradeLevel:  *level,
		WeaponTypes:   weaponTypes,
		Affinities:    affinityList,
		MaxWeight:     weight,
		EffectiveOnly: *effective,
		Workers:       def.Workers,
	})
	if err != nil {
		return err
	}

	search.SortRows(rows, sortKey, *desc)
	if *limit > 0 && len(rows) > *limit {
		rows = rows[:*limit]
	}

	if len(rows) == 0 {
		fmt.Fprintln(a.out, "no weapons match")
		return nil
	}
	return renderRows(a.out, rows, *split)
}
