package descent

import (
	"errors"
	"fmt"
	"math"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

const (
	// DefaultSteps is the step budget.
	DefaultSteps = 50

	// DefaultDt is the base step size.
	DefaultDt = 0.001

	// DefaultMomentum is the velocity carry-over μ.
	DefaultMomentum = 0.9

	// DefaultTolerance is the displacement norm below which the walk has converged.
	DefaultTolerance = 1e-6

	// DefaultEpsilon is the central-difference step for ∇R.
	DefaultEpsilon = 1e-5

	// TargetWindow is how close R₀ must get to a requested target to stop.
	TargetWindow = 0.01

	// bounceDamping scales a velocity component after a reflection.
	bounceDamping = -0.5
)

// ErrBadOptions is returned for step budgets, sizes or tolerances that make no sense.
var ErrBadOptions = errors.New("descent: invalid options")

// Field is the scalar curvature the walk descends.
type Field interface {
	RicciScalarAt(x [phase.Dim]float64) float64
}

// Options configures Descend.
//
// Fields:
//   - Steps    : maximum number of steps (≥ 0); Steps=0 returns [start].
//   - Dt       : base step size (> 0).
//   - Momentum : velocity carry-over μ ∈ [0, 1).
//   - Tolerance: convergence threshold on displacement (≥ 0).
//   - Target   : optional curvature to approach; nil descends |R|.
//   - Epsilon  : finite-difference step (> 0).
type Options struct {
	Steps     int
	Dt        float64
	Momentum  float64
	Tolerance float64
	Target    *float64
	Epsilon   float64
}

// DefaultOptions returns the documented defaults with no target.
func DefaultOptions() Options {
	return Options{
		Steps:     DefaultSteps,
		Dt:        DefaultDt,
		Momentum:  DefaultMomentum,
		Tolerance: DefaultTolerance,
		Epsilon:   DefaultEpsilon,
	}
}

// WithTarget returns a copy of o that approaches target.
func (o Options) WithTarget(target float64) Options {
	o.Target = &target

	return o
}

// Validate reports whether o is usable, wrapping ErrBadOptions.
func (o Options) Validate() error {
	switch {
	case o.Steps < 0:
		return fmt.Errorf("%w: Steps=%d must be ≥ 0", ErrBadOptions, o.Steps)
	case !finite(o.Dt) || o.Dt <= 0:
		return fmt.Errorf("%w: Dt=%v must be finite and > 0", ErrBadOptions, o.Dt)
	case !finite(o.Momentum) || o.Momentum < 0 || o.Momentum >= 1:
		return fmt.Errorf("%w: Momentum=%v must lie in [0, 1)", ErrBadOptions, o.Momentum)
	case !finite(o.Tolerance) || o.Tolerance < 0:
		return fmt.Errorf("%w: Tolerance=%v must be finite and ≥ 0", ErrBadOptions, o.Tolerance)
	case !finite(o.Epsilon) || o.Epsilon <= 0:
		return fmt.Errorf("%w: Epsilon=%v must be finite and > 0", ErrBadOptions, o.Epsilon)
	case o.Target != nil && !finite(*o.Target):
		return fmt.Errorf("%w: Target=%v must be finite", ErrBadOptions, *o.Target)
	}

	return nil
}

// Descend runs the momentum walk from start over f. A nil opts uses
// DefaultOptions. Only invalid options produce an error.
func Descend(f Field, start phase.Coordinate, opts *Options) (phase.Trajectory, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	var target float64
	if o.Target != nil {
		target = *o.Target
	}

	var (
		x        = start.Tuple()
		v        [phase.Dim]float64
		prev     [phase.Dim]float64
		prevNorm float64
		traj     = make(phase.Trajectory, 1, o.Steps+1)
	)
	traj[0] = start

	for step := 0; step < o.Steps; step++ {
		// D.1: current curvature; target stop
		r0 := f.RicciScalarAt(x)
		if o.Target != nil && math.Abs(r0-target) < TargetWindow {
			break
		}

		// D.2: central-difference gradient and adaptive step
		grad := Gradient(f, x, o.Epsilon)
		gnorm := norm(grad)
		scale := 1.0
		if prevNorm > 0 && gnorm > 0 {
			scale = math.Min(1, prevNorm/gnorm)
		}
		prevNorm = gnorm
		dir := sign(r0 - target)

		// D.3: momentum update
		prev = x
		for i := 0; i < phase.Dim; i++ {
			v[i] = o.Momentum*v[i] - o.Dt*scale*dir*grad[i]
			if !finite(v[i]) {
				v[i] = 0
			}
			x[i] += v[i]
		}

		// D.4: reflect into the box
		reflect(&x, &v)
		traj = append(traj, phase.FromTuple(x))

		// D.5: convergence
		var moved float64
		for i := 0; i < phase.Dim; i++ {
			d := x[i] - prev[i]
			moved += d * d
		}
		if math.Sqrt(moved) < o.Tolerance {
			break
		}
	}

	return traj, nil
}

// Gradient differences f centrally at x with step eps along every axis.
func Gradient(f Field, x [phase.Dim]float64, eps float64) [phase.Dim]float64 {
	var g [phase.Dim]float64
	for i := 0; i < phase.Dim; i++ {
		hi, lo := x, x
		hi[i] += eps
		lo[i] -= eps
		g[i] = (f.RicciScalarAt(hi) - f.RicciScalarAt(lo)) / (2 * eps)
	}

	return g
}

// reflect mirrors every out-of-range component of x back into the box and
// damps the matching velocity component.
func reflect(x, v *[phase.Dim]float64) {
	for i := 0; i < phase.Dim; i++ {
		ax := phase.Axis(i)
		lo, hi := phase.Lower(ax), phase.Upper(ax)
		if x[i] > hi {
			x[i] = 2*hi - x[i]
			v[i] *= bounceDamping
		}
		if x[i] < lo {
			x[i] = 2*lo - x[i]
			v[i] *= bounceDamping
		}
		x[i] = phase.Clamp(ax, x[i])
	}
}

func norm(g [phase.Dim]float64) float64 {
	var s float64
	for _, c := range g {
		s += c * c
	}

	return math.Sqrt(s)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}

	return 0
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
