package phase

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coordinate is an immutable point of the bounded phase space.
// The zero value is the origin, which is a valid point.
// Coordinates are comparable with ==.
type Coordinate struct {
	v [Dim]float64 // clamped components in Axis order
}

// New builds a Coordinate from its five components, clamping each into its axis bounds.
// Malformed input is normalized silently; New never fails.
func New(participation, plasticity, substrate, temporal, generative float64) Coordinate {
	return FromTuple([Dim]float64{participation, plasticity, substrate, temporal, generative})
}

// FromTuple builds a Coordinate from an ordered tuple, clamping every component.
func FromTuple(t [Dim]float64) Coordinate {
	var c Coordinate
	for i := 0; i < Dim; i++ {
		c.v[i] = Clamp(Axis(i), t[i])
	}

	return c
}

// FromSlice is FromTuple for slices. It returns ErrDimension when len(s) != Dim.
func FromSlice(s []float64) (Coordinate, error) {
	if len(s) != Dim {
		return Coordinate{}, fmt.Errorf("FromSlice: got %d values: %w", len(s), ErrDimension)
	}
	var t [Dim]float64
	copy(t[:], s)

	return FromTuple(t), nil
}

// Tuple returns the components in Axis order.
func (c Coordinate) Tuple() [Dim]float64 { return c.v }

// Slice returns the components as a freshly allocated slice.
func (c Coordinate) Slice() []float64 {
	out := make([]float64, Dim)
	copy(out, c.v[:])

	return out
}

// At returns the component on axis a, or 0 for an invalid axis.
func (c Coordinate) At(a Axis) float64 {
	if a < 0 || int(a) >= Dim {
		return 0
	}

	return c.v[a]
}

// With returns a copy of c whose axis a is replaced by v (clamped).
func (c Coordinate) With(a Axis, v float64) Coordinate {
	if a < 0 || int(a) >= Dim {
		return c
	}
	c.v[a] = Clamp(a, v)

	return c
}

func (c Coordinate) Participation() float64 { return c.v[Participation] }
func (c Coordinate) Plasticity() float64    { return c.v[Plasticity] }
func (c Coordinate) Substrate() float64     { return c.v[Substrate] }
func (c Coordinate) Temporal() float64      { return c.v[Temporal] }
func (c Coordinate) Generative() float64    { return c.v[Generative] }

// DistanceSquared returns Σ (cᵢ − oᵢ)².
func (c Coordinate) DistanceSquared(o Coordinate) float64 {
	var sum, d float64
	for i := 0; i < Dim; i++ {
		d = c.v[i] - o.v[i]
		sum += d * d
	}

	return sum
}

// DistanceTo returns the Euclidean distance between c and o.
func (c Coordinate) DistanceTo(o Coordinate) float64 {
	return math.Sqrt(c.DistanceSquared(o))
}

// ApproxEqual reports whether every component of c and o differs by at most eps.
func (c Coordinate) ApproxEqual(o Coordinate, eps float64) bool {
	for i := 0; i < Dim; i++ {
		if math.Abs(c.v[i]-o.v[i]) > eps {
			return false
		}
	}

	return true
}

// Lerp returns the point (1−t)·c + t·o, clamped.
func (c Coordinate) Lerp(o Coordinate, t float64) Coordinate {
	var out [Dim]float64
	for i := 0; i < Dim; i++ {
		out[i] = c.v[i] + (o.v[i]-c.v[i])*t
	}

	return FromTuple(out)
}

// Coherence measures how balanced the five components are:
// 1 / (1 + 10·Var), with Var the population variance of the tuple.
// A perfectly balanced point scores 1.
func (c Coordinate) Coherence() float64 {
	var mean, variance, d float64
	for i := 0; i < Dim; i++ {
		mean += c.v[i]
	}
	mean /= Dim
	for i := 0; i < Dim; i++ {
		d = c.v[i] - mean
		variance += d * d
	}
	variance /= Dim

	return 1.0 / (1.0 + variance*10)
}

// String renders c as (p, pl, s, t, g) with four decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f, %.4f, %.4f)", c.v[0], c.v[1], c.v[2], c.v[3], c.v[4])
}

// MarshalJSON encodes c as a 5-element array.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.v)
}

// UnmarshalJSON decodes a 5-element array, clamping every component.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("Coordinate.UnmarshalJSON: %w", err)
	}
	parsed, err := FromSlice(raw)
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Centroid returns the component-wise mean of cs, or ErrEmpty.
func Centroid(cs []Coordinate) (Coordinate, error) {
	if len(cs) == 0 {
		return Coordinate{}, ErrEmpty
	}
	var sum [Dim]float64
	var i int
	for _, c := range cs {
		for i = 0; i < Dim; i++ {
			sum[i] += c.v[i]
		}
	}
	n := float64(len(cs))
	for i = 0; i < Dim; i++ {
		sum[i] /= n
	}

	return FromTuple(sum), nil
}

// Center returns the midpoint of the bounding box.
func Center() Coordinate {
	var t [Dim]float64
	for i := 0; i < Dim; i++ {
		t[i] = upper[i] / 2
	}

	return FromTuple(t)
}
