// Package flattorus traces geodesic lines on the flat torus, the unit
// square with opposite edges identified.
package flattorus

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument reports a caller error: a non-positive parameter
// range, too few samples, or a non-finite input.
var ErrInvalidArgument = errors.New("flattorus: invalid argument")

// Point is a location on the plane; after wrapping both coordinates lie
// in [0, 1).
type Point struct {
	X, Y float64
}

// Segment is a non-empty run of wrapped points that never crosses a
// square edge between consecutive points.
type Segment []Point

// Line is a wrapped geodesic: its segments in trace order plus the
// number of edge crossings encountered. End is the final wrapped sample
// of the trace; it is retained even when its run was too short to keep
// as a segment, so periodic closure remains observable.
type Line struct {
	Segments []Segment
	Wraps    int
	End      Point
}

// Points concatenates all segments in trace order.
func (l Line) Points() []Point {
	var n int
	for _, s := range l.Segments {
		n += len(s)
	}
	ps := make([]Point, 0, n)
	for _, s := range l.Segments {
		ps = append(ps, s...)
	}
	return ps
}

// Slope is a finite slope or the vertical sentinel.
type Slope struct {
	Value    float64
	Vertical bool
}

// SlopeOf returns a finite slope.
func SlopeOf(v float64) Slope { return Slope{Value: v} }

// VerticalSlope returns the vertical sentinel, a line of infinite slope.
func VerticalSlope() Slope { return Slope{Vertical: true} }

// SlopeBetween returns the slope of the line through p1 and p2, vertical
// if the horizontal separation is negligible.
func SlopeBetween(p1, p2 Point) Slope {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	if math.Abs(dx) < 1e-10 {
		return VerticalSlope()
	}
	return SlopeOf(dy / dx)
}

func (s Slope) String() string {
	if s.Vertical {
		return "vertical"
	}
	return fmt.Sprintf("%v", s.Value)
}

// Wrap reduces v modulo 1 into [0, 1); the remainder is non-negative
// regardless of the sign of v. For a tiny negative remainder the +1
// adjustment rounds to exactly 1, which must fold back to 0 to keep
// the half-open range.
func Wrap(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	if v >= 1 {
		v = 0
	}
	return v
}

// Generate traces the line through start with the given slope over the
// parameter range [0, tmax] at samples uniform steps, wraps each raw
// point into the unit square and splits the trace into segments at each
// edge crossing. Runs of fewer than two points are dropped; they carry
// no drawable information. The result is deterministic for identical
// inputs.
func Generate(start Point, slope Slope, tmax float64, samples int) (Line, error) {
	if !(tmax > 0) {
		return Line{}, fmt.Errorf("%w: tmax %v", ErrInvalidArgument, tmax)
	}
	if samples < 2 {
		return Line{}, fmt.Errorf("%w: samples %d", ErrInvalidArgument, samples)
	}
	if math.IsNaN(start.X) || math.IsNaN(start.Y) {
		return Line{}, fmt.Errorf("%w: start (%v, %v)", ErrInvalidArgument, start.X, start.Y)
	}
	if !slope.Vertical && (math.IsNaN(slope.Value) || math.IsInf(slope.Value, 0)) {
		return Line{}, fmt.Errorf("%w: slope %v", ErrInvalidArgument, slope.Value)
	}

	ts := floats.Span(make([]float64, samples), 0, tmax)
	ps := make([]Point, samples)
	for i, t := range ts {
		if slope.Vertical {
			ps[i] = Point{Wrap(start.X), Wrap(start.Y + t)}
		} else {
			ps[i] = Point{Wrap(start.X + t), Wrap(start.Y + slope.Value*t)}
		}
	}
	return split(ps), nil
}

// wrapped reports an edge crossing between consecutive wrapped points:
// a jump above 0.5 on either axis signals a modulo wrap rather than
// continuous motion.
func wrapped(p, q Point) bool {
	return math.Abs(p.X-q.X) > 0.5 || math.Abs(p.Y-q.Y) > 0.5
}

// split folds the wrapped trace into maximal continuous runs, dropping
// runs shorter than two points. Wraps counts the crossings between
// consecutive points of the kept segments, so the count always matches
// what a reader of the concatenated trace would see.
func split(ps []Point) Line {
	var segs []Segment
	seg := Segment{ps[0]}
	for i := 1; i < len(ps); i++ {
		if wrapped(ps[i-1], ps[i]) {
			if len(seg) >= 2 {
				segs = append(segs, seg)
			}
			seg = Segment{ps[i]}
		} else {
			seg = append(seg, ps[i])
		}
	}
	if len(seg) >= 2 {
		segs = append(segs, seg)
	}

	ln := Line{Segments: segs, End: ps[len(ps)-1]}
	var last Point
	for i, s := range segs {
		if i > 0 && wrapped(last, s[0]) {
			ln.Wraps++
		}
		last = s[len(s)-1]
	}
	return ln
}
