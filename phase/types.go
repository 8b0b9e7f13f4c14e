package phase

import (
	"errors"
	"math"
	"strconv"
)

// Dim is the dimensionality of the phase space.
const Dim = 5

// Axis indexes one dimension of a Coordinate.
type Axis int

const (
	// Participation runs from objective (0) through participatory (0.5) to self-referential (1).
	Participation Axis = iota

	// Plasticity runs from rigid (0) to plastic (1.5); the only axis wider than [0,1].
	Plasticity

	// Substrate runs from quantum (0) through biological (0.5) to semantic (1).
	Substrate

	// Temporal runs from linear (0) through branching (0.5) to recursive (1).
	Temporal

	// Generative runs from descriptive (0) through constructive (0.5) to autopoietic (1).
	Generative
)

// upper holds the inclusive upper bound of each axis. Lower bounds are all 0.
var upper = [Dim]float64{1.0, 1.5, 1.0, 1.0, 1.0}

var axisNames = [Dim]string{"participation", "plasticity", "substrate", "temporal", "generative"}

// ErrDimension is returned when a slice does not hold exactly Dim values.
var ErrDimension = errors.New("phase: expected exactly 5 components")

// ErrEmpty is returned by aggregate helpers given no coordinates.
var ErrEmpty = errors.New("phase: no coordinates")

// String returns the lower-case axis name, or "axis(N)" for invalid values.
func (a Axis) String() string {
	if a < 0 || int(a) >= Dim {
		return "axis(" + strconv.Itoa(int(a)) + ")"
	}

	return axisNames[a]
}

// Lower returns the inclusive lower bound of axis a (always 0).
func Lower(a Axis) float64 { return 0 }

// Upper returns the inclusive upper bound of axis a.
// Invalid axes report 0 so that clamping into them collapses to the origin.
func Upper(a Axis) float64 {
	if a < 0 || int(a) >= Dim {
		return 0
	}

	return upper[a]
}

// Clamp normalizes v into the bounds of axis a. NaN maps to the lower bound.
func Clamp(a Axis, v float64) float64 {
	hi := Upper(a)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}

	return v
}
