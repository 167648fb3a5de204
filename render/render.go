// Package render draws the suite's figures with gonum/plot. It is the
// presentation collaborator for the math packages: geometry in, styled
// plots out, no numerics of its own beyond histogram binning.
package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"quasilab.cc/torus/flattorus"
	"quasilab.cc/torus/quasicrystal"
	"quasilab.cc/torus/torus"
)

// Stock colors; periodic orbits draw red, dense orbits green, matching
// the classification text shown beside them.
var (
	PeriodicColor = colornames.Red
	DenseColor    = colornames.Green
	MarkerColor   = colornames.Blue
	FrameColor    = colornames.Black
)

// ColorFor maps a slope classification to its trace color.
func ColorFor(c flattorus.Classification) color.RGBA {
	if c.Rational {
		return PeriodicColor
	}
	return DenseColor
}

// Plot wraps a gonum plot with series bookkeeping.
type Plot struct {
	*plot.Plot
	nseries int
}

// New returns an empty titled plot with a background grid.
func New(title string) *Plot {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())
	return &Plot{Plot: p}
}

// NewUnit returns a plot framed on the unit square: the flat torus
// fundamental domain with a small margin, square boundary drawn.
func NewUnit(title string) (*Plot, error) {
	p := New(title)
	p.X.Min, p.X.Max = -0.05, 1.05
	p.Y.Min, p.Y.Max = -0.05, 1.05
	p.X.Label.Text = "x (mod 1)"
	p.Y.Label.Text = "y (mod 1)"
	if err := p.Frame(); err != nil {
		return nil, err
	}
	return p, nil
}

// Frame draws the unit square boundary.
func (p *Plot) Frame() error {
	ln, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	ln.Color = FrameColor
	ln.Width = vg.Points(2)
	p.Add(ln)
	return nil
}

// Geodesic draws a wrapped line one polyline per segment, entering the
// legend once.
func (p *Plot) Geodesic(wl flattorus.Line, c color.Color, label string) error {
	for i, seg := range wl.Segments {
		xys := make(plotter.XYs, len(seg))
		for j, pt := range seg {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		ln.Color = c
		ln.Width = vg.Points(1.5)
		p.Add(ln)
		if i == 0 && label != "" {
			p.Legend.Add(label, ln)
		}
	}
	return nil
}

// Marker draws a single emphasized point, typically the trace start.
func (p *Plot) Marker(pt flattorus.Point, label string) error {
	sc, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = MarkerColor
	sc.GlyphStyle.Radius = vg.Points(4)
	p.Add(sc)
	if label != "" {
		p.Legend.Add(label, sc)
	}
	return nil
}

// Curve draws a plain series with the next color in the cycle.
func (p *Plot) Curve(xs, ys []float64, label string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("render: curve length mismatch %d != %d", len(xs), len(ys))
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	ln.Color = plotutil.Color(p.nseries)
	p.nseries++
	p.Add(ln)
	if label != "" {
		p.Legend.Add(label, ln)
	}
	return nil
}

// Crossings scatters Poincare section passes in the angle square.
func (p *Plot) Crossings(cs []torus.Crossing, c color.Color, label string) error {
	xys := make(plotter.XYs, len(cs))
	for i, cr := range cs {
		xys[i].X, xys[i].Y = cr.Theta, cr.Phi
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)
	if label != "" {
		p.Legend.Add(label, sc)
	}
	return nil
}

// Points scatters lattice coordinates.
func (p *Plot) Points(xs, ys []float64, c color.Color, r vg.Length, label string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("render: points length mismatch %d != %d", len(xs), len(ys))
	}
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = r
	p.Add(sc)
	if label != "" {
		p.Legend.Add(label, sc)
	}
	return nil
}

// Tiles draws Penrose triangles as filled polygons, red and blue by
// kind.
func (p *Plot) Tiles(ts []quasicrystal.Tile) error {
	fill := map[quasicrystal.TileKind]color.Color{
		quasicrystal.Red:  color.NRGBA{R: 255, G: 100, B: 100, A: 153},
		quasicrystal.Blue: color.NRGBA{R: 100, G: 100, B: 255, A: 153},
	}
	for _, tile := range ts {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: tile.A.X, Y: tile.A.Y},
			{X: tile.B.X, Y: tile.B.Y},
			{X: tile.C.X, Y: tile.C.Y},
		})
		if err != nil {
			return err
		}
		poly.Color = fill[tile.Kind]
		poly.LineStyle.Color = FrameColor
		poly.LineStyle.Width = vg.Points(0.25)
		p.Add(poly)
	}
	return nil
}

// DensityGrid bins the wrapped points of a line into a bins^2 histogram
// over the unit square, normalized to [0, 1]. It implements the GridXYZ
// interface of gonum/plot's heat map plotter. Dense orbits flatten out
// as bins fill evenly; periodic orbits stay concentrated on their track.
type DensityGrid struct {
	bins int
	v    []float64
}

func NewDensityGrid(wl flattorus.Line, bins int) (*DensityGrid, error) {
	if bins < 2 {
		return nil, fmt.Errorf("render: density bins %d < 2", bins)
	}
	g := &DensityGrid{bins: bins, v: make([]float64, bins*bins)}
	for _, pt := range wl.Points() {
		ix := int(pt.X * float64(bins))
		iy := int(pt.Y * float64(bins))
		if ix >= bins {
			ix = bins - 1
		}
		if iy >= bins {
			iy = bins - 1
		}
		g.v[iy*bins+ix]++
	}
	if max := floats.Max(g.v); max > 0 {
		floats.Scale(1/max, g.v)
	}
	return g, nil
}

func (g *DensityGrid) Dims() (c, r int) { return g.bins, g.bins }
func (g *DensityGrid) X(c int) float64  { return (float64(c) + 0.5) / float64(g.bins) }
func (g *DensityGrid) Y(r int) float64  { return (float64(r) + 0.5) / float64(g.bins) }
func (g *DensityGrid) Z(c, r int) float64 {
	return g.v[r*g.bins+c]
}

// Heatmap plots g with the given palette in a fresh square figure.
func Heatmap(g plotter.GridXYZ, title string, pal palette.Palette) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewHeatMap(g, pal))
	return p
}

// Contour plots the level curves of g, a 2D stand-in for the 3D level
// set surfaces the math packages sample.
func Contour(g plotter.GridXYZ, levels []float64, title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewContour(g, levels, DivergingPalette(12)))
	return p
}

// HeatPalette is the palette used for diffraction intensity figures.
func HeatPalette(n int) palette.Palette { return palette.Heat(n, 1) }

// DivergingPalette is the blue-red palette used for signed fields.
func DivergingPalette(n int) palette.Palette { return moreland.SmoothBlueRed().Palette(n) }

// Save writes the figure at a square size.
func (p *Plot) Save(size vg.Length, fname string) error {
	return p.Plot.Save(size, size, fname)
}
