package linear

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
)

// OverlayStat names the statistic an overlay line traces through the
// scatter points.
type OverlayStat int

const (
	// OverlayMedian connects the per-x median of the y values.
	OverlayMedian OverlayStat = iota
	// OverlayMean connects the per-x mean of the y values.
	OverlayMean
)

// Aes is the aesthetic mapping of a plot: the axis labels for the x and y
// dimensions of the point set.
type Aes struct {
	X string
	Y string
}

// PlotDescriptor is a renderable description of one diagnostic plot. It
// carries data only; rendering is left to an external plotting layer such
// as the plotting package.
type PlotDescriptor struct {
	Title       string
	Aes         Aes
	Points      plotter.XYs
	Overlay     plotter.XYs
	OverlayStat OverlayStat
}

// DiagnosticPlots returns the two diagnostic plot descriptors, in order:
//
//  1. "Residuals vs Fitted": residuals against fitted values, with a line
//     through the per-x median of the residuals.
//  2. "Sqrt Standardized residuals vs Fitted": the square root of
//     |residual|/sqrt(residualVariance) against fitted values, with a line
//     through the per-x mean.
func (m *Model) DiagnosticPlots() []PlotDescriptor {
	residVsFitted := PlotDescriptor{
		Title:       "Residuals vs Fitted",
		Aes:         Aes{X: "Fitted values", Y: "Residuals"},
		Points:      makeXYs(m.FittedValues, m.Residuals),
		OverlayStat: OverlayMedian,
	}
	residVsFitted.Overlay = overlayLine(residVsFitted.Points, OverlayMedian)

	scale := math.Sqrt(m.ResidualVariance)
	sqrtStd := make([]float64, len(m.Residuals))
	for i, r := range m.Residuals {
		sqrtStd[i] = math.Sqrt(math.Abs(r) / scale)
	}

	scaleLocation := PlotDescriptor{
		Title:       "Sqrt Standardized residuals vs Fitted",
		Aes:         Aes{X: "Fitted values", Y: "Sqrt standardized residuals"},
		Points:      makeXYs(m.FittedValues, sqrtStd),
		OverlayStat: OverlayMean,
	}
	scaleLocation.Overlay = overlayLine(scaleLocation.Points, OverlayMean)

	return []PlotDescriptor{residVsFitted, scaleLocation}
}

func makeXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// overlayLine collapses the points to one (x, stat(ys)) pair per distinct
// x, sorted by x, so a line through the result traces the chosen statistic
// across the scatter.
func overlayLine(points plotter.XYs, overlay OverlayStat) plotter.XYs {
	groups := make(map[float64][]float64)
	for _, pt := range points {
		groups[pt.X] = append(groups[pt.X], pt.Y)
	}

	xs := make([]float64, 0, len(groups))
	for x := range groups {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	line := make(plotter.XYs, len(xs))
	for i, x := range xs {
		ys := groups[x]
		sort.Float64s(ys)
		switch overlay {
		case OverlayMean:
			line[i] = plotter.XY{X: x, Y: stat.Mean(ys, nil)}
		default:
			line[i] = plotter.XY{X: x, Y: median(ys)}
		}
	}
	return line
}

// median of a sorted slice, averaging the two central values for even
// lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
