package flattorus

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// torusDist is the distance between a and b on the unit circle R/Z.
func torusDist(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func TestWrap(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{0, 0},
		{1, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-3.5, 0.5},
		{2.75, 0.75},
		{-1e-17, 0},
	} {
		if got := Wrap(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// A negative remainder smaller than the float spacing below 1 must not
// round up to 1 when shifted into range.
func TestWrapNearInteger(t *testing.T) {
	for _, v := range []float64{-1e-17, -1e-300, math.Nextafter(0, -1), 3 - 1e-16} {
		if got := Wrap(v); got < 0 || got >= 1 {
			t.Errorf("Wrap(%g) = %v, outside [0, 1)", v, got)
		}
	}

	ln, err := Generate(Point{X: 0, Y: -1e-17}, SlopeOf(0), 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range ln.Points() {
		if p.Y < 0 || p.Y >= 1 {
			t.Fatalf("wrapped y %v outside [0, 1)", p.Y)
		}
	}
	if len(ln.Segments) != 1 || ln.Wraps != 0 {
		t.Errorf("horizontal line split: %d segments, %d wraps", len(ln.Segments), ln.Wraps)
	}
}

func TestWrapRange(t *testing.T) {
	slopes := []Slope{
		SlopeOf(2.0 / 3.0),
		SlopeOf(math.Sqrt2 - 1),
		SlopeOf(-1.75),
		SlopeOf(math.Phi - 1),
		VerticalSlope(),
	}
	for _, s := range slopes {
		ln, err := Generate(Point{0.3, -2.7}, s, 25, 5000)
		if err != nil {
			t.Fatal(err)
		}
		for _, seg := range ln.Segments {
			for _, p := range seg {
				if p.X < 0 || p.X >= 1 || p.Y < 0 || p.Y >= 1 {
					t.Fatalf("slope %s: point (%v, %v) outside [0,1)", s, p.X, p.Y)
				}
			}
		}
	}
}

func TestSegmentContinuity(t *testing.T) {
	ln, err := Generate(Point{}, SlopeOf(math.Phi-1), 40, 8000)
	if err != nil {
		t.Fatal(err)
	}
	for i, seg := range ln.Segments {
		if len(seg) < 2 {
			t.Fatalf("segment %d has %d points", i, len(seg))
		}
		for j := 1; j < len(seg); j++ {
			if wrapped(seg[j-1], seg[j]) {
				t.Fatalf("segment %d: internal jump at %d", i, j)
			}
		}
		if i > 0 {
			prev := ln.Segments[i-1]
			if !wrapped(prev[len(prev)-1], seg[0]) {
				t.Fatalf("segments %d and %d join without a wrap", i-1, i)
			}
		}
	}
}

// The wrap count must match the discontinuities visible in the
// concatenated trace.
func TestWrapCountInvariant(t *testing.T) {
	for _, s := range []Slope{SlopeOf(2.0 / 3.0), SlopeOf(math.Sqrt2 - 1), SlopeOf(-0.4)} {
		ln, err := Generate(Point{0.1, 0.2}, s, 12, 4000)
		if err != nil {
			t.Fatal(err)
		}
		ps := ln.Points()
		n := 0
		for i := 1; i < len(ps); i++ {
			if wrapped(ps[i-1], ps[i]) {
				n++
			}
		}
		if n != ln.Wraps {
			t.Errorf("slope %s: %d transitions in trace, Wraps = %d", s, n, ln.Wraps)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a, err := Generate(Point{0.25, 0.5}, SlopeOf(math.Pi), 17, 3000)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Generate(Point{0.25, 0.5}, SlopeOf(math.Pi), 17, 3000)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different lines")
	}
}

// Slope 2/3 over t in [0, 3] closes: the trace returns to the origin
// after 3 horizontal wraps.
func TestPeriodicClosure(t *testing.T) {
	ln, err := Generate(Point{0, 0}, SlopeOf(2.0/3.0), 3, 10000)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("wraps: %d, segments: %d, end: (%v, %v)", ln.Wraps, len(ln.Segments), ln.End.X, ln.End.Y)
	if ln.Wraps != 3 {
		t.Errorf("wraps = %d, want 3", ln.Wraps)
	}
	if torusDist(ln.End.X, 0) > 1e-9 || torusDist(ln.End.Y, 0) > 1e-9 {
		t.Errorf("end (%v, %v) does not close on (0, 0)", ln.End.X, ln.End.Y)
	}
}

func TestVerticalLine(t *testing.T) {
	ln, err := Generate(Point{0.5, 0}, VerticalSlope(), 2.5, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if ln.Wraps != 2 {
		t.Errorf("wraps = %d, want 2", ln.Wraps)
	}
	for _, seg := range ln.Segments {
		for _, p := range seg {
			if p.X != 0.5 {
				t.Fatalf("vertical line drifted to x = %v", p.X)
			}
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	cases := []struct {
		name    string
		start   Point
		slope   Slope
		tmax    float64
		samples int
	}{
		{"zero tmax", Point{}, SlopeOf(1), 0, 100},
		{"negative tmax", Point{}, SlopeOf(1), -1, 100},
		{"one sample", Point{}, SlopeOf(1), 1, 1},
		{"nan slope", Point{}, SlopeOf(math.NaN()), 1, 100},
		{"inf slope", Point{}, SlopeOf(math.Inf(1)), 1, 100},
		{"nan start", Point{math.NaN(), 0}, SlopeOf(1), 1, 100},
	}
	for _, tt := range cases {
		if _, err := Generate(tt.start, tt.slope, tt.tmax, tt.samples); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", tt.name, err)
		}
	}
}

func TestSlopeBetween(t *testing.T) {
	if s := SlopeBetween(Point{0, 0}, Point{0.5, 0.25}); s.Vertical || math.Abs(s.Value-0.5) > 1e-12 {
		t.Errorf("SlopeBetween = %s, want 0.5", s)
	}
	if s := SlopeBetween(Point{0.5, 0}, Point{0.5, 1}); !s.Vertical {
		t.Errorf("SlopeBetween = %s, want vertical", s)
	}
}

func TestFrames(t *testing.T) {
	fs, err := Frames(Point{0.2, 0.8}, SlopeOf(math.Sqrt2-1), 20, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 20 {
		t.Fatalf("got %d frames, want 20", len(fs))
	}
	prev := -1
	for i, f := range fs {
		if f.Current.X < 0 || f.Current.X >= 1 || f.Current.Y < 0 || f.Current.Y >= 1 {
			t.Fatalf("frame %d: current (%v, %v) outside [0,1)", i, f.Current.X, f.Current.Y)
		}
		if f.Line.Wraps < prev {
			t.Fatalf("frame %d: wrap count fell from %d to %d", i, prev, f.Line.Wraps)
		}
		prev = f.Line.Wraps
	}
}

func TestFramesInvalid(t *testing.T) {
	if _, err := Frames(Point{}, SlopeOf(1), 0, 0.1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nframes 0: err = %v", err)
	}
	if _, err := Frames(Point{}, SlopeOf(1), 10, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("wrapsPerFrame 0: err = %v", err)
	}
}

func BenchmarkGenerate(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, _ = Generate(Point{}, SlopeOf(math.Phi-1), 100, 10000)
	}
}
