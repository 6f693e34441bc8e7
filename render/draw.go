package render

import (
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	figureWidth  = 640
	figureHeight = 480
	// pie charts get a square canvas so the slices form a circle
	pieSize = 512

	tickRotation = 45.0
)

// figure is the drawable built for one call; go-chart's Chart, BarChart and
// PieChart all satisfy it.
type figure interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func buildFigure(k Kind, req ChartRequest) (figure, error) {
	switch k.Name {
	case Bar.Name:
		return barFigure(req)
	case Line.Name:
		return lineFigure(req)
	case Pie.Name:
		return pieFigure(req)
	}
	return nil, fmt.Errorf("unknown chart kind %q", k.Name)
}

func barFigure(req ChartRequest) (figure, error) {
	bars := make([]chart.Value, len(req.Labels))
	for i, label := range req.Labels {
		bars[i] = chart.Value{
			Label: label,
			Value: req.Values[i],
			Style: chart.Style{
				FillColor:   fillColor(0),
				StrokeColor: strokeColor(0),
				StrokeWidth: 1,
			},
		}
	}

	lo, hi, err := valueRange(req.Values, true)
	if err != nil {
		return nil, err
	}
	return chart.BarChart{
		Title:  req.Title,
		Width:  figureWidth,
		Height: figureHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: bottomPadding(req.Labels)},
		},
		XAxis: chart.Style{TextRotationDegrees: tickRotation},
		YAxis: chart.YAxis{
			Name:  "Values",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}, nil
}

func lineFigure(req ChartRequest) (figure, error) {
	n := len(req.Labels)
	xs := make([]float64, n)
	// blank ticks half a step outside the data keep a margin at both ends
	// and give a single point a non-zero x range
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, label := range req.Labels {
		xs[i] = float64(i)
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.5})

	lo, hi, err := valueRange(req.Values, false)
	if err != nil {
		return nil, err
	}
	return chart.Chart{
		Title:  req.Title,
		Width:  figureWidth,
		Height: figureHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: bottomPadding(req.Labels)},
		},
		XAxis: chart.XAxis{
			Name:      "Labels",
			Range:     &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Ticks:     ticks,
			TickStyle: chart.Style{TextRotationDegrees: tickRotation},
		},
		YAxis: chart.YAxis{
			Name:  "Values",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    req.Title,
				XValues: xs,
				YValues: req.Values,
				Style: chart.Style{
					StrokeColor: strokeColor(0),
					StrokeWidth: 2,
					DotColor:    strokeColor(0),
					DotWidth:    4,
				},
			},
		},
	}, nil
}

func pieFigure(req ChartRequest) (figure, error) {
	shares, total := pieShares(req.Values)
	if total <= 0 {
		return nil, ErrEmptyPie
	}

	slices := make([]chart.Value, len(req.Labels))
	for i, label := range req.Labels {
		slices[i] = chart.Value{
			Label: percentLabel(label, shares[i], total),
			Value: shares[i],
			Style: chart.Style{
				FillColor:   fillColor(i),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 1,
			},
		}
	}

	return chart.PieChart{
		Title:  req.Title,
		Width:  pieSize,
		Height: pieSize,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		Values: slices,
	}, nil
}

// pieShares scales sizes by the largest one so their sum cannot overflow.
// Proportions are unchanged.
func pieShares(sizes []float64) ([]float64, float64) {
	largest := 0.0
	for _, v := range sizes {
		largest = math.Max(largest, v)
	}
	shares := make([]float64, len(sizes))
	if largest == 0 {
		return shares, 0
	}
	var total float64
	for i, v := range sizes {
		shares[i] = v / largest
		total += shares[i]
	}
	return shares, total
}

func percentLabel(label string, v, total float64) string {
	return fmt.Sprintf("%s %.1f%%", label, v/total*100)
}

// valueRange returns y-axis bounds covering every value. Bars always include
// the zero baseline; lines get a small margin. The range is never empty, and
// a range wider than float64 can hold is rejected with ErrValueRange.
func valueRange(values []float64, withZero bool) (float64, float64, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if withZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	} else {
		pad := (hi - lo) * 0.05
		lo -= pad
		hi += pad
	}
	if math.IsInf(hi-lo, 0) {
		return 0, 0, ErrValueRange
	}
	if hi-lo == 0 {
		lo, hi = lo-1, hi+1
	}
	return lo, hi, nil
}

// bottomPadding leaves room for rotated x tick labels.
func bottomPadding(labels []string) int {
	longest := 0
	for _, l := range labels {
		longest = max(longest, len([]rune(l)))
	}
	return min(30+longest*6, 180)
}
