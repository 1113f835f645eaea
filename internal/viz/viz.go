// Package viz computes chart data for a single column and renders it
// to an image: value frequencies for bar and pie charts, fixed-width
// bins for histograms. The rendered image is shown in its own window
// and holds no reference back to the dataset.
package viz

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"sort"

	"csvscope/domain/table"
	"csvscope/internal/errors"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChartKind selects the chart to draw.
type ChartKind string

const (
	BarChart  ChartKind = "Bar Chart"
	PieChart  ChartKind = "Pie Chart"
	Histogram ChartKind = "Histogram"
)

// Kinds returns the chart kinds in menu order.
func Kinds() []string {
	return []string{string(BarChart), string(PieChart), string(Histogram)}
}

// Options configures chart geometry and plotting limits.
type Options struct {
	Width         int
	Height        int
	HistogramBins int
	MaxCategories int
}

// Renderer renders one chart per call; it holds no state between
// requests.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options) *Renderer {
	if opts.HistogramBins < 1 {
		opts.HistogramBins = 10
	}
	if opts.MaxCategories < 1 {
		opts.MaxCategories = 50
	}
	return &Renderer{opts: opts}
}

// Render draws the requested chart for the column.
func (r *Renderer) Render(col *table.Column, kind ChartKind) (image.Image, error) {
	title := fmt.Sprintf("%s of %s", kind, col.Name)
	switch kind {
	case BarChart:
		counts, err := r.valueCounts(col)
		if err != nil {
			return nil, err
		}
		return r.renderBars(title, counts)
	case PieChart:
		counts, err := r.valueCounts(col)
		if err != nil {
			return nil, err
		}
		return r.renderPie(title, counts)
	case Histogram:
		bins, err := r.histogramBins(col)
		if err != nil {
			return nil, err
		}
		return r.renderBars(title, bins)
	}
	return nil, errors.ChartInvalid(fmt.Sprintf("unknown chart kind %q", kind))
}

// valueCount pairs one distinct value with its frequency.
type valueCount struct {
	Label string
	Count float64
}

// valueCounts computes the frequency of each distinct non-missing
// value, most frequent first. Ties keep first-seen order.
func (r *Renderer) valueCounts(col *table.Column) ([]valueCount, error) {
	freq := make(map[string]int)
	var order []string
	for _, cell := range col.Cells {
		if cell.Missing {
			continue
		}
		if _, ok := freq[cell.Raw]; !ok {
			order = append(order, cell.Raw)
		}
		freq[cell.Raw]++
	}
	if len(order) == 0 {
		return nil, errors.ChartInvalid(fmt.Sprintf("column %q has no values to plot", col.Name))
	}
	if len(order) > r.opts.MaxCategories {
		return nil, errors.ChartInvalid(fmt.Sprintf(
			"column %q has %d distinct values, more than the %d a bar or pie chart can show",
			col.Name, len(order), r.opts.MaxCategories))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})

	counts := make([]valueCount, len(order))
	for i, v := range order {
		counts[i] = valueCount{Label: v, Count: float64(freq[v])}
	}
	return counts, nil
}

// histogramBins buckets the column's numeric values into fixed-width
// bins. Requires a numeric column with at least one value.
func (r *Renderer) histogramBins(col *table.Column) ([]valueCount, error) {
	if !col.IsNumeric() {
		return nil, errors.ChartInvalid(fmt.Sprintf("histogram requires a numeric column, %q is %s", col.Name, col.Kind))
	}
	values := col.Floats()
	if len(values) == 0 {
		return nil, errors.ChartInvalid(fmt.Sprintf("column %q has no numeric values to plot", col.Name))
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		max = min + 1
	}

	dividers := make([]float64, r.opts.HistogramBins+1)
	floats.Span(dividers, min, max)
	// stat.Histogram treats bins as half-open; nudge the last divider
	// so the maximum value lands in the final bin.
	dividers[len(dividers)-1] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	bins := make([]valueCount, len(counts))
	for i, c := range counts {
		bins[i] = valueCount{
			Label: fmt.Sprintf("%.2f-%.2f", dividers[i], dividers[i+1]),
			Count: c,
		}
	}
	return bins, nil
}

func (r *Renderer) renderBars(title string, counts []valueCount) (image.Image, error) {
	bars := make([]chart.Value, len(counts))
	for i, vc := range counts {
		bars[i] = chart.Value{Label: vc.Label, Value: vc.Count}
	}

	barWidth := r.opts.Width / (2 * len(bars))
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 60 {
		barWidth = 60
	}

	ch := chart.BarChart{
		Title:    title,
		Width:    r.opts.Width,
		Height:   r.opts.Height,
		BarWidth: barWidth,
		Bars:     bars,
	}
	return renderToImage(func(buf *bytes.Buffer) error {
		return ch.Render(chart.PNG, buf)
	})
}

func (r *Renderer) renderPie(title string, counts []valueCount) (image.Image, error) {
	total := 0.0
	for _, vc := range counts {
		total += vc.Count
	}

	values := make([]chart.Value, len(counts))
	for i, vc := range counts {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", vc.Label, 100*vc.Count/total),
			Value: vc.Count,
		}
	}

	ch := chart.PieChart{
		Title:  title,
		Width:  r.opts.Width,
		Height: r.opts.Height,
		Values: values,
	}
	return renderToImage(func(buf *bytes.Buffer) error {
		return ch.Render(chart.PNG, buf)
	})
}

func renderToImage(render func(*bytes.Buffer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, errors.Wrap(err, "chart rendering failed")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "chart decoding failed")
	}
	return img, nil
}
