package geodesic

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

const (
	// DefaultPoints is the number of samples returned by Path.
	DefaultPoints = 21

	// DefaultEventTolerance is the distance to the end point that terminates integration.
	DefaultEventTolerance = 0.01

	// DefaultMaxParameter bounds the integration parameter range.
	DefaultMaxParameter = 10.0

	// DefaultRelTol and DefaultAbsTol drive the adaptive step controller.
	DefaultRelTol = 1e-6
	DefaultAbsTol = 1e-9

	// DefaultMaxSteps bounds attempted integrator steps per pass.
	DefaultMaxSteps = 10000

	// DefaultInitialStep is the first trial step size.
	DefaultInitialStep = 0.01

	// degenerateDistance short-circuits start ≈ end.
	degenerateDistance = 1e-12
)

var (
	// ErrBadOptions is returned by Solve for unusable options.
	ErrBadOptions = errors.New("geodesic: invalid options")

	// ErrStepCeiling means the integrator used up MaxSteps.
	ErrStepCeiling = errors.New("geodesic: step ceiling reached")

	// ErrStepUnderflow means the adaptive step fell below the minimum.
	ErrStepUnderflow = errors.New("geodesic: step size underflow")

	// ErrNonFinite means the state left the representable range.
	ErrNonFinite = errors.New("geodesic: non-finite state")

	// ErrNoEvent means MaxParameter elapsed without reaching the end point.
	ErrNoEvent = errors.New("geodesic: end point never reached")
)

// Accelerator supplies the geodesic acceleration; *field.Model implements it.
type Accelerator interface {
	Acceleration(x, v [phase.Dim]float64) [phase.Dim]float64
}

// Method records how a Result was produced.
type Method int

const (
	// Integrated means the ODE reached the end point and was sampled.
	Integrated Method = iota

	// LinearFallback means integration failed and the path is a straight line.
	LinearFallback

	// Degenerate means start and end coincide; the path is [start].
	Degenerate
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Integrated:
		return "integrated"
	case LinearFallback:
		return "linear"
	case Degenerate:
		return "degenerate"
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// Options configures Solve.
type Options struct {
	Points         int
	EventTolerance float64
	MaxParameter   float64
	RelTol         float64
	AbsTol         float64
	MaxSteps       int
	InitialStep    float64

	// Logger receives one line per fallback; nil is silent.
	Logger *log.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Points:         DefaultPoints,
		EventTolerance: DefaultEventTolerance,
		MaxParameter:   DefaultMaxParameter,
		RelTol:         DefaultRelTol,
		AbsTol:         DefaultAbsTol,
		MaxSteps:       DefaultMaxSteps,
		InitialStep:    DefaultInitialStep,
	}
}

// Validate reports whether o is usable, wrapping ErrBadOptions.
func (o Options) Validate() error {
	positive := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s=%v must be finite and > 0", ErrBadOptions, name, v)
		}

		return nil
	}
	if o.Points < 1 {
		return fmt.Errorf("%w: Points=%d must be ≥ 1", ErrBadOptions, o.Points)
	}
	if o.MaxSteps < 1 {
		return fmt.Errorf("%w: MaxSteps=%d must be ≥ 1", ErrBadOptions, o.MaxSteps)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"EventTolerance", o.EventTolerance},
		{"MaxParameter", o.MaxParameter},
		{"RelTol", o.RelTol},
		{"AbsTol", o.AbsTol},
		{"InitialStep", o.InitialStep},
	} {
		if err := positive(f.name, f.v); err != nil {
			return err
		}
	}

	return nil
}

// Result is a solved path and how it was obtained.
type Result struct {
	Path   phase.Trajectory
	Method Method

	// EventParameter is the parameter at which the end point was reached
	// (Integrated only).
	EventParameter float64

	// Err is the integration failure behind a LinearFallback.
	Err error
}

// Solve integrates the geodesic from start toward end under a.
//
// Implementation:
//   - Stage 1: |end − start| < 1e-12 ⇒ Degenerate, Path = [start].
//   - Stage 2: v₀ = unit vector start→end; integrate (x, v) with
//     Dormand–Prince 5(4) until ‖x − end‖ ≤ EventTolerance (bisection).
//   - Stage 3: re-integrate [0, t_event] and sample Points evenly spaced
//     parameters; the final sample is the located event state.
//   - Any failure ⇒ log once, LinearFallback with Points samples.
//
// Only invalid options return an error; a nil opts uses DefaultOptions.
func Solve(a Accelerator, start, end phase.Coordinate, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}

	// Stage 1: degenerate
	dist := start.DistanceTo(end)
	if dist < degenerateDistance {
		return Result{Path: phase.Trajectory{start}, Method: Degenerate}, nil
	}
	if dist <= o.EventTolerance {
		return fallback(o, start, end, fmt.Errorf("start already within %v of end", o.EventTolerance)), nil
	}

	path, tEvent, err := integrate(a, start, end, o)
	if err != nil {
		return fallback(o, start, end, err), nil
	}

	return Result{Path: path, Method: Integrated, EventParameter: tEvent}, nil
}

// Path is Solve with default options and n samples (DefaultPoints when n < 1).
func Path(a Accelerator, start, end phase.Coordinate, n int) phase.Trajectory {
	o := DefaultOptions()
	if n >= 1 {
		o.Points = n
	}
	res, _ := Solve(a, start, end, &o)

	return res.Path
}

func fallback(o Options, start, end phase.Coordinate, cause error) Result {
	if o.Logger != nil {
		o.Logger.Printf("geodesic: %s → %s: %v; using linear interpolation", start, end, cause)
	}

	return Result{Path: phase.Linear(start, end, o.Points), Method: LinearFallback, Err: cause}
}

func integrate(a Accelerator, start, end phase.Coordinate, o Options) (phase.Trajectory, float64, error) {
	var (
		s, e = start.Tuple(), end.Tuple()
		y0   state
		dist = start.DistanceTo(end)
	)
	for i := 0; i < phase.Dim; i++ {
		y0[i] = s[i]
		y0[phase.Dim+i] = (e[i] - s[i]) / dist
	}
	rhs := func(y state) state {
		var x, v [phase.Dim]float64
		copy(x[:], y[:phase.Dim])
		copy(v[:], y[phase.Dim:])
		acc := a.Acceleration(x, v)
		var dy state
		copy(dy[:phase.Dim], v[:])
		copy(dy[phase.Dim:], acc[:])

		return dy
	}
	event := func(y state) float64 {
		var d2 float64
		for i := 0; i < phase.Dim; i++ {
			d := y[i] - e[i]
			d2 += d * d
		}

		return math.Sqrt(d2) - o.EventTolerance
	}

	// Stage 2: event pass
	in := &integrator{f: rhs, rtol: o.RelTol, atol: o.AbsTol, maxSteps: o.MaxSteps}
	yEv, tEv, _, fired, err := in.advance(y0, 0, o.MaxParameter, o.InitialStep, event)
	if err != nil {
		return nil, 0, err
	}
	if !fired {
		return nil, 0, ErrNoEvent
	}

	// Stage 3: sampling pass
	path := make(phase.Trajectory, 0, o.Points)
	path = append(path, start)
	if o.Points == 1 {
		return path, tEv, nil
	}
	in = &integrator{f: rhs, rtol: o.RelTol, atol: o.AbsTol, maxSteps: o.MaxSteps}
	var (
		y = y0
		t float64
		h = o.InitialStep
	)
	for j := 1; j < o.Points-1; j++ {
		tj := tEv * float64(j) / float64(o.Points-1)
		if y, t, h, _, err = in.advance(y, t, tj, h, nil); err != nil {
			return nil, 0, err
		}
		path = append(path, position(y))
	}
	path = append(path, position(yEv))

	return path, tEv, nil
}

func position(y state) phase.Coordinate {
	var x [phase.Dim]float64
	copy(x[:], y[:phase.Dim])

	return phase.FromTuple(x)
}
