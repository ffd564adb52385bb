package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/arcalc/internal/charts"
	"github.com/udisondev/arcalc/internal/data"
	"github.com/udisondev/arcalc/internal/model"
)

func runChart(ctx context.Context, a *app, args []string) error {
	def := a.cfg.Search

	fs := newFlagSet("chart", a.out)
	name := fs.String("name", "", "weapon name")
	attribute := fs.String("attribute", "str", "attribute on the X axis")
	attrs := bindAttributes(fs, def.Attributes)
	level := fs.Int("level", def.UpgradeLevel, "regular upgrade level 0..25")
	maxValue := fs.Int("max", model.MaxAttributeValue, "last attribute value on the X axis")
	out := fs.String("out", a.cfg.Chart.Output, "output HTML file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("-name is required")
	}
	attr, err := model.ParseAttribute(*attribute)
	if err != nil {
		return err
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

	curve, err := charts.ComputeAttackCurve(a.calc, w, *attrs, attr, *level, *maxValue)
	if err != nil {
		return err
	}

	chartCfg := charts.DefaultChartConfig()
	chartCfg.Width = a.cfg.Chart.Width
	chartCfg.Height = a.cfg.Chart.Height
	chartCfg.Theme = a.cfg.Chart.Theme
	chartCfg.Title = w.Name
	chartCfg.Subtitle = fmt.Sprintf("%s, %s", data.UpgradeLevelLabel(*level), attrs)

	if err := charts.RenderAttackCurveFile(curve, chartCfg, *out); err != nil {
		return err
	}
	slog.Info("chart written", "weapon", w.Name, "attribute", attr, "path", *out)
	fmt.Fprintln(a.out, *out)
	return nil
}
