// Command torusfig writes the flat torus figure set: wrapped geodesics
// for a stock of rational and irrational slopes, an orbit density
// heat map, Poincare sections, and optionally a numbered frame
// sequence suitable for assembling into an animation.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"quasilab.cc/torus/flattorus"
	"quasilab.cc/torus/internal/figures"
	"quasilab.cc/torus/quasicrystal"
	"quasilab.cc/torus/render"
	"quasilab.cc/torus/torus"
)

var (
	flagOut     = flag.String("out", "output", "directory for figures")
	flagSamples = flag.Int("samples", 20000, "samples per geodesic")
	flagTmax    = flag.Float64("tmax", 30, "parameter range for dense orbits")
	flagBins    = flag.Int("bins", 100, "density histogram bins per axis")
	flagFrames  = flag.Int("frames", 0, "number of animation frames; 0 disables")
	flagSize    = flag.Float64("size", 8, "figure size in inches")
)

func init() {
	flag.Parse()
}

func main() {
	if err := os.MkdirAll(*flagOut, 0755); err != nil {
		panic(err)
	}
	size := vg.Length(*flagSize) * vg.Inch

	slopes := []struct {
		name  string
		value float64
		tmax  float64
	}{
		{"1_2", 0.5, 2},
		{"2_3", 2.0 / 3, 3},
		{"3_7", 3.0 / 7, 7},
		{"5_1", 5, 1},
		{"sqrt2", math.Sqrt2, *flagTmax},
		{"phi", math.Phi, *flagTmax},
		{"pi", math.Pi, *flagTmax},
	}

	for i, s := range slopes {
		cls, err := flattorus.Classify(flattorus.SlopeOf(s.value))
		if err != nil {
			panic(err)
		}
		ln, err := flattorus.Generate(flattorus.Point{}, flattorus.SlopeOf(s.value), s.tmax, *flagSamples)
		if err != nil {
			panic(err)
		}

		p, err := render.NewUnit(cls.Description)
		if err != nil {
			panic(err)
		}
		if err := p.Geodesic(ln, render.ColorFor(cls), ""); err != nil {
			panic(err)
		}
		if err := p.Marker(flattorus.Point{}, "start"); err != nil {
			panic(err)
		}

		fname := filepath.Join(*flagOut, fmt.Sprintf("geodesic_%s.png", s.name))
		if err := p.Save(size, fname); err != nil {
			panic(err)
		}
		fmt.Printf("[%v/%v] %s wraps=%d segments=%d\n",
			i+1, len(slopes), fname, ln.Wraps, len(ln.Segments))
	}

	vertical(size)
	density(size)
	sections(size)

	if *flagFrames > 0 {
		frames(*flagFrames, size)
	}
}

// vertical draws the degenerate infinite-slope orbit.
func vertical(size vg.Length) {
	ln, err := flattorus.Generate(flattorus.Point{X: 0.5}, flattorus.VerticalSlope(), 3, *flagSamples)
	if err != nil {
		panic(err)
	}
	cls, err := flattorus.Classify(flattorus.VerticalSlope())
	if err != nil {
		panic(err)
	}
	p, err := render.NewUnit(cls.Description)
	if err != nil {
		panic(err)
	}
	if err := p.Geodesic(ln, render.PeriodicColor, ""); err != nil {
		panic(err)
	}
	save(p, size, "geodesic_vertical.png")
}

// density contrasts a filling orbit with a closing one as histograms.
func density(size vg.Length) {
	for _, s := range []struct {
		name  string
		value float64
		tmax  float64
	}{
		{"sqrt2", math.Sqrt2, 20 * *flagTmax},
		{"2_3", 2.0 / 3, 20 * *flagTmax},
	} {
		ln, err := flattorus.Generate(flattorus.Point{}, flattorus.SlopeOf(s.value), s.tmax, 20**flagSamples)
		if err != nil {
			panic(err)
		}
		g, err := render.NewDensityGrid(ln, *flagBins)
		if err != nil {
			panic(err)
		}
		p := render.Heatmap(g, fmt.Sprintf("orbit density, slope %s", s.name), render.HeatPalette(16))
		fname := filepath.Join(*flagOut, fmt.Sprintf("density_%s.png", s.name))
		if err := p.Save(size, size, fname); err != nil {
			panic(err)
		}
		fmt.Println(fname)
	}
}

// sections draws Poincare crossings for each stock winding number.
func sections(size vg.Length) {
	p := render.New("Poincare section phi = 0")
	p.X.Label.Text = "theta (mod 2 pi)"
	p.Y.Label.Text = "phi (mod 2 pi)"
	for i, ir := range quasicrystal.Irrationals()[:3] {
		cs, err := torus.Poincare(ir.Value, 0, 200*math.Pi, 10**flagSamples)
		if err != nil {
			panic(err)
		}
		if err := p.Crossings(cs, plotutil.Color(i), "alpha = "+ir.Name); err != nil {
			panic(err)
		}
	}
	save(p, size, "poincare.png")
}

// frames writes numbered growth figures of the golden-ratio orbit, one
// goroutine per frame.
func frames(n int, size vg.Length) {
	fs, err := flattorus.Frames(flattorus.Point{}, flattorus.SlopeOf(math.Phi-1), n, 2)
	if err != nil {
		panic(err)
	}

	progress := figures.Monitor(uint64(n))
	var wg sync.WaitGroup
	for i, fr := range fs {
		wg.Add(1)
		go func(i int, fr flattorus.Frame) {
			defer wg.Done()
			p, err := render.NewUnit(fmt.Sprintf("t = %d wraps", 2*(i+1)))
			if err != nil {
				panic(err)
			}
			if err := p.Geodesic(fr.Line, render.DenseColor, ""); err != nil {
				panic(err)
			}
			if err := p.Marker(fr.Current, ""); err != nil {
				panic(err)
			}
			fname := filepath.Join(*flagOut, fmt.Sprintf("%04v_orbit.png", i))
			if err := p.Save(size, fname); err != nil {
				panic(err)
			}
			atomic.AddUint64(progress, 1)
		}(i, fr)
	}
	wg.Wait()
}

func save(p *render.Plot, size vg.Length, name string) {
	fname := filepath.Join(*flagOut, name)
	if err := p.Save(size, fname); err != nil {
		panic(err)
	}
	fmt.Println(fname)
}
