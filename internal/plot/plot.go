// Package plot samples an integrand and rasterizes it for the terminal,
// shading the region between the curve and the x-axis over the
// integration bounds.
package plot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/integrals/internal/symbolic"
	"github.com/abhisek/integrals/internal/ui/theme"
)

const (
	// DefaultSamples is the number of points sampled across the domain.
	DefaultSamples = 300

	DefaultWidth  = 60
	DefaultHeight = 14

	// Margin is how far the domain extends past each bound.
	Margin = 1
)

var (
	// ErrNoFiniteSamples is returned when every sample is NaN or ±Inf.
	ErrNoFiniteSamples = errors.New("no finite samples to plot")

	// ErrInvalidSpec is returned for empty or inverted plot specs.
	ErrInvalidSpec = errors.New("invalid plot spec")
)

// Sampler evaluates an expression over a grid of x values.
type Sampler interface {
	Sample(expr symbolic.Expr, xs []float64) []float64
}

// PointSampler evaluates Expr.Eval at each point.
type PointSampler struct{}

var _ Sampler = PointSampler{}

// Sample returns expr(x) for every x; undefined points stay non-finite.
func (PointSampler) Sample(expr symbolic.Expr, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = expr.Eval(x)
	}
	return ys
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// Spec describes what to plot.
type Spec struct {
	Expr    symbolic.Expr
	Lower   int
	Upper   int
	Samples int
	Width   int
	Height  int
}

// Plot is a sampled integrand ready to render.
type Plot struct {
	Spec   Spec
	Xs     []float64
	Ys     []float64
	Shaded []bool
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64
	Title  string
}

// New samples spec.Expr over [Lower-Margin, Upper+Margin].
func New(spec Spec, sampler Sampler) (*Plot, error) {
	if spec.Expr == nil || spec.Lower >= spec.Upper {
		return nil, fmt.Errorf("plot %v over [%d, %d]: %w", spec.Expr, spec.Lower, spec.Upper, ErrInvalidSpec)
	}
	if spec.Samples <= 1 {
		spec.Samples = DefaultSamples
	}
	if spec.Width <= 0 {
		spec.Width = DefaultWidth
	}
	if spec.Height <= 0 {
		spec.Height = DefaultHeight
	}
	if sampler == nil {
		sampler = PointSampler{}
	}

	p := &Plot{
		Spec:  spec,
		XMin:  float64(spec.Lower - Margin),
		XMax:  float64(spec.Upper + Margin),
		Title: fmt.Sprintf("∫_{%d}^{%d} %s dx", spec.Lower, spec.Upper, spec.Expr),
	}
	p.Xs = Linspace(p.XMin, p.XMax, spec.Samples)
	p.Ys = sampler.Sample(spec.Expr, p.Xs)

	p.Shaded = make([]bool, len(p.Xs))
	lo, hi := float64(spec.Lower), float64(spec.Upper)
	for i, x := range p.Xs {
		p.Shaded[i] = x >= lo && x <= hi
	}

	finite := 0
	p.YMin, p.YMax = 0, 0
	for _, y := range p.Ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		finite++
		p.YMin = math.Min(p.YMin, y)
		p.YMax = math.Max(p.YMax, y)
	}
	if finite == 0 {
		return nil, fmt.Errorf("plot %s: %w", spec.Expr, ErrNoFiniteSamples)
	}
	if p.YMax == p.YMin {
		p.YMax = p.YMin + 1
	}
	return p, nil
}

type cell uint8

const (
	cellEmpty cell = iota
	cellAxis
	cellBound
	cellShade
	cellCurve
)

// raster maps the samples onto a Height x Width grid, row 0 at the top.
func (p *Plot) raster() [][]cell {
	w, h := p.Spec.Width, p.Spec.Height
	grid := make([][]cell, h)
	for r := range grid {
		grid[r] = make([]cell, w)
	}

	axis := p.row(0)
	for c := 0; c < w; c++ {
		grid[axis][c] = cellAxis
	}
	for _, b := range []int{p.Spec.Lower, p.Spec.Upper} {
		col := p.col(float64(b))
		for r := 0; r < h; r++ {
			grid[r][col] = cellBound
		}
	}

	for i, x := range p.Xs {
		y := p.Ys[i]
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		col, row := p.col(x), p.row(y)
		if p.Shaded[i] {
			from, to := row, axis
			if from > to {
				from, to = to, from
			}
			for r := from; r <= to; r++ {
				if grid[r][col] != cellCurve {
					grid[r][col] = cellShade
				}
			}
		}
		grid[row][col] = cellCurve
	}
	return grid
}

func (p *Plot) col(x float64) int {
	w := p.Spec.Width
	c := int(math.Round((x - p.XMin) / (p.XMax - p.XMin) * float64(w-1)))
	return clamp(c, 0, w-1)
}

func (p *Plot) row(y float64) int {
	h := p.Spec.Height
	r := int(math.Round((p.YMax - y) / (p.YMax - p.YMin) * float64(h-1)))
	return clamp(r, 0, h-1)
}

// Render draws the plot with a title, y-range labels and x-range labels.
func (p *Plot) Render() string {
	grid := p.raster()

	yTop := fmt.Sprintf("%.2f", p.YMax)
	yBottom := fmt.Sprintf("%.2f", p.YMin)
	gutter := max(len(yTop), len(yBottom)) + 1

	var b strings.Builder
	b.WriteString(theme.Formula.Render(p.Title))
	b.WriteString("\n")

	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = yTop
		case len(grid) - 1:
			label = yBottom
		}
		b.WriteString(theme.PlotAxis.Render(fmt.Sprintf("%*s", gutter, label)))
		b.WriteString(theme.PlotAxis.Render("│"))
		for _, c := range row {
			b.WriteString(renderCell(c))
		}
		b.WriteString("\n")
	}

	left := fmt.Sprintf("%g", p.XMin)
	right := fmt.Sprintf("%g", p.XMax)
	pad := p.Spec.Width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(strings.Repeat(" ", gutter+1))
	b.WriteString(theme.PlotAxis.Render(left + strings.Repeat(" ", pad) + right))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", gutter+1))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		theme.PlotCurve.Render("• f(x) = "+p.Spec.Expr.String()),
		"   ",
		theme.PlotShade.Render(fmt.Sprintf("░ [%d, %d]", p.Spec.Lower, p.Spec.Upper)),
	))
	return b.String()
}

func renderCell(c cell) string {
	switch c {
	case cellCurve:
		return theme.PlotCurve.Render("•")
	case cellShade:
		return theme.PlotShade.Render("░")
	case cellBound:
		return theme.PlotBound.Render("┆")
	case cellAxis:
		return theme.PlotAxis.Render("─")
	}
	return " "
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
