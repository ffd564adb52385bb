package charts

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/udisondev/arcalc/internal/game/combat"
	"github.com/udisondev/arcalc/internal/model"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title      string
	Subtitle   string
	Width      string // e.g. "900px"
	Height     string
	Theme      string
	ShowLegend bool
	Smooth     bool
	Colors     []string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:      "900px",
		Height:     "500px",
		Theme:      "light",
		ShowLegend: true,
		Colors:     []string{"#5470C6", "#3BA272", "#EE6666", "#FAC858", "#9A60B4", "#73C0DE"},
	}
}

// SeriesData — одна линия графика.
type SeriesData struct {
	Name   string
	Values []float64
}

// AttackCurve holds attack rating sampled over one attribute.
type AttackCurve struct {
	Attribute model.Attribute
	Values    []int // attribute values on the X axis
	Series    []SeriesData
}

// ComputeAttackCurve evaluates w for every value of attr from 1 up to maxValue,
// keeping the other attributes fixed. The first series is the total; damage
// types follow in canonical order when the weapon has more than one.
func ComputeAttackCurve(
	calc *combat.Calculator,
	w *model.Weapon,
	base model.Attributes,
	attr model.Attribute,
	upgradeLevel int,
	maxValue int,
) (AttackCurve, error) {
	if maxValue < model.MinAttributeValue {
		return AttackCurve{}, fmt.Errorf("%w: chart max value %d", model.ErrInvalidConfig, maxValue)
	}

	curve := AttackCurve{Attribute: attr}
	total := SeriesData{Name: "Total"}
	perType := make(map[model.DamageType][]float64)

	for v := model.MinAttributeValue; v <= maxValue; v++ {
		result, err := calc.ComputeAttack(w, base.With(attr, v), upgradeLevel)
		if err != nil {
			return AttackCurve{}, err
		}
		curve.Values = append(curve.Values, v)
		total.Values = append(total.Values, result.TotalAttack())
		for _, dt := range model.AllDamageTypes {
			if _, ok := result.AttackRating[dt]; ok {
				perType[dt] = append(perType[dt], result.DamageAttack(dt))
			}
		}
	}

	curve.Series = append(curve.Series, total)
	for _, dt := range model.AllDamageTypes {
		if values, ok := perType[dt]; ok && len(perType) > 1 {
			curve.Series = append(curve.Series, SeriesData{Name: dt.Label(), Values: values})
		}
	}
	return curve, nil
}

// RenderAttackCurve writes an interactive line chart to out.
func RenderAttackCurve(curve AttackCurve, config ChartConfig, out io.Writer) error {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: curve.Attribute.Label(),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Attack Rating",
		}),
		charts.WithColorsOpts(opts.Colors(config.Colors)),
	)

	xLabels := make([]string, len(curve.Values))
	for i, v := range curve.Values {
		xLabels[i] = strconv.Itoa(v)
	}
	line.SetXAxis(xLabels)

	for _, s := range curve.Series {
		yData := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			yData[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, yData)
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(config.Smooth),
		}),
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(false),
		}),
	)

	if err := line.Render(out); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderAttackCurveFile creates an HTML file with the chart.
func RenderAttackCurveFile(curve AttackCurve, config ChartConfig, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return RenderAttackCurve(curve, config, f)
}
