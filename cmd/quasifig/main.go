// Command quasifig writes the aperiodic pattern figure set: Penrose
// tilings, the cut-and-project construction, quasiperiodic wave
// fields, minimal surface slices, and supersampled diffraction
// images.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jbeda/geom"
	"github.com/nfnt/resize"
	"gonum.org/v1/plot/vg"

	"quasilab.cc/torus/internal/figures"
	"quasilab.cc/torus/quasicrystal"
	"quasilab.cc/torus/render"
	"quasilab.cc/torus/surface"
)

var (
	flagOut    = flag.String("out", "output", "directory for figures")
	flagIter   = flag.Int("iter", 6, "Penrose subdivision iterations")
	flagFolds  = flag.Int("folds", 5, "diffraction rotational symmetry")
	flagPx     = flag.Int("px", 800, "diffraction image size in pixels")
	flagSuper  = flag.Int("super", 3, "diffraction supersampling factor")
	flagExtent = flag.Float64("extent", 10, "field extent in wavelengths")
	flagRes    = flag.Int("res", 200, "field grid resolution")
	flagSize   = flag.Float64("size", 8, "figure size in inches")
)

func init() {
	flag.Parse()
}

func main() {
	if err := os.MkdirAll(*flagOut, 0755); err != nil {
		panic(err)
	}
	size := vg.Length(*flagSize) * vg.Inch

	penrose(size)
	cutproject(size)
	waves(size)
	slices(size)
	diffraction()
}

func penrose(size vg.Length) {
	ts, err := quasicrystal.Penrose(*flagIter, 1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("penrose: %d tiles after %d iterations\n", len(ts), *flagIter)

	p := render.New("Penrose tiling")
	p.X.Min, p.X.Max = -1.05, 1.05
	p.Y.Min, p.Y.Max = -1.05, 1.05
	if err := p.Tiles(ts); err != nil {
		panic(err)
	}
	save(p, size, "penrose.png")

	// Zoomed quadrant, only tiles entirely inside the window.
	window := geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 0.5, Y: 0.5}}
	q := render.New("Penrose tiling, quadrant detail")
	q.X.Min, q.X.Max = 0, 0.5
	q.Y.Min, q.Y.Max = 0, 0.5
	if err := q.Tiles(quasicrystal.Cull(ts, window)); err != nil {
		panic(err)
	}
	save(q, size, "penrose_detail.png")
}

func cutproject(size vg.Length) {
	pr, err := quasicrystal.CutProject(math.Phi, 900, 0.5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("cut-and-project: %d of %d lattice points accepted\n",
		len(pr.Accepted), len(pr.Lattice))

	p := render.New("cut and project, slope phi")
	xs, ys := split(pr.Lattice)
	if err := p.Points(xs, ys, color.Gray{Y: 200}, vg.Points(1), "lattice"); err != nil {
		panic(err)
	}
	ax, ay := split(pr.Accepted)
	if err := p.Points(ax, ay, render.MarkerColor, vg.Points(2), "accepted"); err != nil {
		panic(err)
	}

	// The accepted points land on the cut line at their projected
	// parameter.
	sin, cos := math.Sincos(math.Atan(pr.Slope))
	px := make([]float64, len(pr.Projected))
	py := make([]float64, len(pr.Projected))
	for i, t := range pr.Projected {
		px[i], py[i] = t*cos, t*sin
	}
	if err := p.Points(px, py, render.PeriodicColor, vg.Points(1.5), "projected"); err != nil {
		panic(err)
	}
	save(p, size, "cutproject.png")
}

func waves(size vg.Length) {
	g, err := quasicrystal.Quasiperiodic2D(quasicrystal.PentagonalFreqs(), *flagExtent, *flagRes)
	if err != nil {
		panic(err)
	}
	p := render.Heatmap(g, "quasiperiodic wave field", render.DivergingPalette(16))
	saveRaw(p.Save(size, size, filepath.Join(*flagOut, "quasiperiodic.png")), "quasiperiodic.png")
}

func slices(size vg.Length) {
	for _, k := range surface.Kinds() {
		g, err := surface.Slice(k, 0, -math.Pi, math.Pi, *flagRes)
		if err != nil {
			panic(err)
		}
		p := render.Contour(g, []float64{-2, -1, -0.5, 0, 0.5, 1, 2},
			fmt.Sprintf("%s level curves, z = 0", k))
		name := fmt.Sprintf("surface_%s.png", k)
		saveRaw(p.Save(size, size, filepath.Join(*flagOut, name)), name)
	}
}

// diffraction renders the interference intensity at super times the
// output resolution, one goroutine per row, then downscales with a
// Lanczos kernel.
func diffraction() {
	n := *flagPx * *flagSuper
	g, err := quasicrystal.Diffraction(*flagFolds, n, 3)
	if err != nil {
		panic(err)
	}
	max := g.Max()
	pal := render.HeatPalette(256).Colors()

	m := image.NewRGBA(image.Rect(0, 0, n, n))
	progress := figures.Monitor(uint64(n))

	var wg sync.WaitGroup
	for y := 0; y < n; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			for x := 0; x < n; x++ {
				i := int(g.Z(x, y) / max * 255)
				if i > 255 {
					i = 255
				}
				m.Set(x, n-1-y, pal[i])
			}
			atomic.AddUint64(progress, 1)
		}(y)
	}
	wg.Wait()

	small := resize.Resize(uint(*flagPx), uint(*flagPx), m, resize.Lanczos3)
	fname := filepath.Join(*flagOut, fmt.Sprintf("diffraction_%dfold.png", *flagFolds))
	if err := figures.SavePNG(small, fname); err != nil {
		panic(err)
	}
	fmt.Println(fname)
}

func split(cs []geom.Coord) (xs, ys []float64) {
	xs = make([]float64, len(cs))
	ys = make([]float64, len(cs))
	for i, c := range cs {
		xs[i], ys[i] = c.X, c.Y
	}
	return xs, ys
}

func save(p *render.Plot, size vg.Length, name string) {
	fname := filepath.Join(*flagOut, name)
	if err := p.Save(size, fname); err != nil {
		panic(err)
	}
	fmt.Println(fname)
}

func saveRaw(err error, name string) {
	if err != nil {
		panic(err)
	}
	fmt.Println(filepath.Join(*flagOut, name))
}
