package main

import (
	"context"
	"errors"
)

func runWeapon(ctx context.Context, a *app, args []string) error {
	def := a.cfg.Search

	fs := newFlagSet("weapon", a.out)
	name := fs.String("name", "", "weapon name, e.g. \"Heavy Claymore\"")
	attrs := bindAttributes(fs, def.Attributes)
	level := fs.Int("level", def.UpgradeLevel, "regular upgrade level 0..25")
	twoHanding := fs.Bool("two-handing", def.TwoHanding, "wield with both hands (Strength x1.5)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}
	if err := attrs.Validate(); err != nil {
		return err
	}

	catalog, err := loadCatalog(ctx, a.cfg.Data)
	if err != nil {
		return err
	}
	w, err := catalog.Lookup(*name)
	if err != nil {
		return err
	}

	effective := *attrs
	if *twoHanding {
		effective = a.calc.Rules().AdjustForTwoHanding(effective)
	}

	result, err := a.calc.ComputeAttack(w, effective, *level)
	if err != nil {
		return err
	}
	return renderWeapon(a.out, w, effective, result)
}
