// Package viz renders the class-distribution visualization.
package viz

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dgallion1/evaldash/internal/report"
)

// ErrNoDistribution means the report carries no class counts; the caller
// skips the chart and warns instead of failing the page.
var ErrNoDistribution = errors.New("class distribution data missing")

// datasets in display order, paired with their report keys.
var datasets = []struct {
	key   string
	label string
}{
	{report.KeyTrainSet, "Train Set"},
	{report.KeyTestSet, "Test Set"},
	{report.KeySMOTETrainSet, "SMOTE Train Set"},
}

// One fill color per class label, cycled.
var classPalette = []drawing.Color{
	{R: 0x44, G: 0x01, B: 0x54, A: 255},
	{R: 0x2a, G: 0x78, B: 0x8e, A: 255},
	{R: 0x35, G: 0xb7, B: 0x79, A: 255},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 255},
}

// Bar is one bar of the grouped distribution chart.
type Bar struct {
	Dataset string
	Class   int
	Count   int
}

// DistributionBars flattens the report's class counts into grouped bars:
// datasets in fixed order, class labels ascending within each group.
// Absent datasets are skipped.
func DistributionBars(rep report.Report) []Bar {
	var bars []Bar
	for _, ds := range datasets {
		counts, ok := rep.Distributions[ds.key]
		if !ok {
			continue
		}
		labels := make([]int, 0, len(counts))
		for label := range counts {
			labels = append(labels, label)
		}
		sort.Ints(labels)
		for _, label := range labels {
			bars = append(bars, Bar{Dataset: ds.label, Class: label, Count: counts[label]})
		}
	}
	return bars
}

// RenderDistributionPNG writes the grouped bar chart as a PNG.
func RenderDistributionPNG(w io.Writer, rep report.Report, width, height int) error {
	bars := DistributionBars(rep)
	if len(bars) == 0 {
		return ErrNoDistribution
	}

	values := make([]chart.Value, 0, len(bars))
	for _, b := range bars {
		color := classPalette[b.Class%len(classPalette)]
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %d", b.Dataset, b.Class),
			Value: float64(b.Count),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}

	bc := chart.BarChart{
		Title:      "Class Distribution Across Datasets",
		Width:      width,
		Height:     height,
		BarWidth:   40,
		BarSpacing: 24,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Bars: values,
	}
	return bc.Render(chart.PNG, w)
}
