// Package torus samples trajectories winding around the 2-torus
// embedded in 3-space. A winding number alpha sets the ratio of
// toroidal to poloidal angular velocity: rational alpha closes the
// orbit, irrational alpha fills the surface densely.
package torus

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument reports a caller error in sampling parameters.
var ErrInvalidArgument = errors.New("torus: invalid argument")

// Mesh is a sampled torus surface. Grids are row-major with the
// poloidal index fastest: X[i*NTheta+j] is the point at phi_i, theta_j.
type Mesh struct {
	NTheta, NPhi int
	X, Y, Z      []float64
}

// At returns the surface point at poloidal index j, toroidal index i.
func (m *Mesh) At(i, j int) (x, y, z float64) {
	k := i*m.NTheta + j
	return m.X[k], m.Y[k], m.Z[k]
}

// Surface samples the parametric torus with major radius R and minor
// radius r over a full revolution in both angles.
func Surface(R, r float64, nTheta, nPhi int) (*Mesh, error) {
	if !(R > 0) || !(r > 0) {
		return nil, fmt.Errorf("%w: radii R=%v r=%v", ErrInvalidArgument, R, r)
	}
	if nTheta < 2 || nPhi < 2 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidArgument, nTheta, nPhi)
	}

	theta := floats.Span(make([]float64, nTheta), 0, 2*math.Pi)
	phi := floats.Span(make([]float64, nPhi), 0, 2*math.Pi)

	m := &Mesh{
		NTheta: nTheta, NPhi: nPhi,
		X: make([]float64, nTheta*nPhi),
		Y: make([]float64, nTheta*nPhi),
		Z: make([]float64, nTheta*nPhi),
	}
	for i, p := range phi {
		sinp, cosp := math.Sincos(p)
		for j, th := range theta {
			sint, cost := math.Sincos(th)
			k := i*nTheta + j
			m.X[k] = (R + r*cost) * cosp
			m.Y[k] = (R + r*cost) * sinp
			m.Z[k] = r * sint
		}
	}
	return m, nil
}

// Path3 is a sampled space curve.
type Path3 struct {
	T       []float64
	X, Y, Z []float64
}

// Trajectory samples the orbit theta=t, phi=alpha*t on the torus over
// [0, tmax]. For alpha = p/q the orbit closes after q poloidal loops.
func Trajectory(alpha, R, r, tmax float64, n int) (*Path3, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: alpha %v", ErrInvalidArgument, alpha)
	}
	if !(R > 0) || !(r > 0) {
		return nil, fmt.Errorf("%w: radii R=%v r=%v", ErrInvalidArgument, R, r)
	}
	if !(tmax > 0) || n < 2 {
		return nil, fmt.Errorf("%w: tmax %v n %d", ErrInvalidArgument, tmax, n)
	}

	p := &Path3{
		T: floats.Span(make([]float64, n), 0, tmax),
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
	}
	for i, t := range p.T {
		sint, cost := math.Sincos(t)
		sinp, cosp := math.Sincos(alpha * t)
		p.X[i] = (R + r*cost) * cosp
		p.Y[i] = (R + r*cost) * sinp
		p.Z[i] = r * sint
	}
	return p, nil
}

// Crossing is a trajectory pass through the Poincare section plane,
// with both angles reduced to [0, 2pi).
type Crossing struct {
	Theta, Phi float64
}

// Poincare samples the orbit with winding number alpha over [0, tmax]
// and reports the crossings of the plane phi = sectionAngle, detected
// as sign changes of the reduced toroidal angle against the section.
func Poincare(alpha, sectionAngle, tmax float64, n int) ([]Crossing, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: alpha %v", ErrInvalidArgument, alpha)
	}
	if !(tmax > 0) || n < 2 {
		return nil, fmt.Errorf("%w: tmax %v n %d", ErrInvalidArgument, tmax, n)
	}

	ts := floats.Span(make([]float64, n), 0, tmax)
	var cs []Crossing
	prev := math.Signbit(mod2pi(alpha*ts[0]) - sectionAngle)
	for _, t := range ts[1:] {
		cur := math.Signbit(mod2pi(alpha*t) - sectionAngle)
		if cur != prev {
			cs = append(cs, Crossing{Theta: mod2pi(t), Phi: mod2pi(alpha * t)})
		}
		prev = cur
	}
	return cs, nil
}

func mod2pi(v float64) float64 {
	v = math.Mod(v, 2*math.Pi)
	if v < 0 {
		v += 2 * math.Pi
	}
	return v
}
