package flattorus

import (
	"fmt"
	"math"
)

// Category of a classified slope; the set is closed.
type Category string

const (
	Periodic Category = "Periodic"
	Dense    Category = "Dense"
	Vertical Category = "Vertical"
)

// Defaults for Classify.
const (
	DefaultTolerance      = 1e-6
	DefaultMaxDenominator = 10000
)

// Classification is the rational/irrational verdict for a slope. P/Q is
// the best rational approximation with denominator bounded by the
// classifier's maxDen; Rational holds when the approximation error is
// below tolerance. The test is numeric, not algebraic: an irrational
// slope lying within tolerance of a low-denominator rational reads as
// Periodic.
type Classification struct {
	Slope       Slope
	Rational    bool
	P, Q        int
	Category    Category
	Description string
}

// Approx formats the approximating fraction.
func (c Classification) Approx() string {
	if c.Category == Vertical {
		return "1/0"
	}
	return fmt.Sprintf("%d/%d", c.P, c.Q)
}

// Classify is ClassifyTol with the default tolerance and denominator
// bound.
func Classify(slope Slope) (Classification, error) {
	return ClassifyTol(slope, DefaultTolerance, DefaultMaxDenominator)
}

// ClassifyTol classifies slope as Periodic, Dense or Vertical. The best
// rational approximation p/q with q <= maxDen comes from the continued
// fraction expansion of the slope, convergents and semiconvergents
// included. NaN slopes are rejected; their rationality is undefined.
func ClassifyTol(slope Slope, tol float64, maxDen int) (Classification, error) {
	if slope.Vertical {
		return Classification{
			Slope:       slope,
			Rational:    true,
			P:           1,
			Q:           0,
			Category:    Vertical,
			Description: "Vertical line - wraps horizontally",
		}, nil
	}
	if math.IsNaN(slope.Value) || math.IsInf(slope.Value, 0) {
		return Classification{}, fmt.Errorf("%w: slope %v", ErrInvalidArgument, slope.Value)
	}
	if !(tol > 0) || maxDen < 1 {
		return Classification{}, fmt.Errorf("%w: tol %v maxDen %d", ErrInvalidArgument, tol, maxDen)
	}

	p, q := BestRational(slope.Value, maxDen)
	c := Classification{Slope: slope, P: p, Q: q}
	c.Rational = math.Abs(slope.Value-float64(p)/float64(q)) < tol
	if c.Rational {
		c.Category = Periodic
		c.Description = fmt.Sprintf("Rational slope %d/%d - closes after %d wraps", p, q, q)
	} else {
		c.Category = Dense
		c.Description = fmt.Sprintf("Irrational slope %.6f - never closes, fills the square densely", slope.Value)
	}
	return c, nil
}

// BestRational returns the fraction p/q with 1 <= q <= maxDen closest
// to x, found by walking the continued fraction expansion of x and
// finishing with the best semiconvergent that still fits the bound.
func BestRational(x float64, maxDen int) (p, q int) {
	// Convergents h/k satisfy h_n = a_n*h_n-1 + h_n-2 and likewise
	// for k. Iteration stops when the next denominator would exceed
	// maxDen or the remainder is exhausted.
	p0, q0 := 0, 1
	p1, q1 := 1, 0
	v := x
	for i := 0; i < 64; i++ {
		a := math.Floor(v)
		q2 := int(a)*q1 + q0
		if q1 > 0 && (q2 > maxDen || q2 < 0) {
			break
		}
		p0, q0, p1, q1 = p1, q1, int(a)*p1+p0, q2
		rem := v - a
		if rem < 1e-12 {
			return p1, q1
		}
		v = 1 / rem
	}

	// Semiconvergent between the last two convergents.
	k := (maxDen - q0) / q1
	sp, sq := p0+k*p1, q0+k*q1
	if sq >= 1 && math.Abs(x-float64(sp)/float64(sq)) < math.Abs(x-float64(p1)/float64(q1)) {
		return sp, sq
	}
	return p1, q1
}
