// Package chart renders utility sweeps as HTML line charts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var ErrNoSeries = errors.New("chart: nothing to plot")

// Series is one line: the utility of a start state for every gamma.
type Series struct {
	Name   string
	Values []float64
}

// Render writes a page with one line per series over the gamma axis.
func Render(w io.Writer, title string, gammas []float64, series ...Series) error {
	if len(gammas) == 0 || len(series) == 0 {
		return ErrNoSeries
	}
	for _, s := range series {
		if len(s.Values) != len(gammas) {
			return fmt.Errorf("chart: series %q has %d values for %d gammas", s.Name, len(s.Values), len(gammas))
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "gamma",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "utility",
		}),
	)

	var xs []string
	for _, g := range gammas {
		xs = append(xs, fmt.Sprintf("%.2f", g))
	}
	line = line.SetXAxis(xs)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// WriteFile renders into path, creating its directory.
func WriteFile(path, title string, gammas []float64, series ...Series) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	if err := Render(f, title, gammas, series...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
