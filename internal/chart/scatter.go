package chart

import (
	"fmt"
	"math"

	"NobelDashboard/internal/models"

	"gonum.org/v1/gonum/stat"
)

const (
	ScatterTitle   = "Age of Nobel Prize Winners by Year"
	scatterColor   = "#BA68C8"
	scatterOpacity = 0.65
)

// Fit is an ordinary least squares line age = Intercept + Slope*year.
type Fit struct {
	Intercept float64
	Slope     float64
	RSquared  float64
	N         int
}

func (f Fit) At(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// FitOLS fits y against x. It needs at least two points and two distinct x
// values; otherwise ok is false.
func FitOLS(x, y []float64) (Fit, bool) {
	if len(x) < 2 || len(x) != len(y) {
		return Fit{}, false
	}
	if stat.Variance(x, nil) == 0 {
		return Fit{}, false
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return Fit{}, false
	}
	return Fit{
		Intercept: alpha,
		Slope:     beta,
		RSquared:  stat.RSquared(x, y, nil, alpha, beta),
		N:         len(x),
	}, true
}

// BuildScatter plots year against age with an OLS trend line. Records need
// a numeric year and an age to be plotted; when none has both the
// placeholder figure is returned.
func BuildScatter(records []models.AwardRecord) Figure {
	var xs, ys []float64
	for _, r := range records {
		if !r.Year.Valid || r.Age == nil {
			continue
		}
		xs = append(xs, r.Year.Value)
		ys = append(ys, float64(*r.Age))
	}
	if len(xs) == 0 {
		return Figure{}
	}

	traces := []Trace{{
		Type:          "scatter",
		Mode:          "markers",
		Name:          "winners",
		X:             xs,
		Y:             ys,
		Marker:        &Marker{Color: scatterColor, Opacity: scatterOpacity},
		HoverTemplate: "year=%{x}<br>age=%{y}<extra></extra>",
	}}

	if fit, ok := FitOLS(xs, ys); ok {
		lo, hi := minMax(xs)
		traces = append(traces, Trace{
			Type: "scatter",
			Mode: "lines",
			Name: "OLS trendline",
			X:    []float64{lo, hi},
			Y:    []float64{fit.At(lo), fit.At(hi)},
			Line: &Line{Color: scatterColor},
			HoverTemplate: fmt.Sprintf(
				"<b>OLS trendline</b><br>age = %.4g * year + %.4g<br>R<sup>2</sup>=%.6f<extra></extra>",
				fit.Slope, fit.Intercept, fit.RSquared,
			),
		})
	}

	return Figure{
		Data: traces,
		Layout: &Layout{
			Title: title(ScatterTitle),
			XAxis: &Axis{Title: title("year")},
			YAxis: &Axis{Title: title("age")},
		},
	}
}

func minMax(xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}
