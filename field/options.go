// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"math"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// Defaults.
const (
	// DefaultScale is the curvature scale k.
	DefaultScale = 1.0

	// DefaultExponentCap bounds −2Ω before exponentiation; e^600 is still finite.
	DefaultExponentCap = 600.0
)

// ErrNoAttractor is returned by NewModel when neither an attractor nor a
// coordinate source was supplied.
var ErrNoAttractor = errors.New("field: no attractor and no coordinate source")

const (
	panicScaleInvalid = "field: WithScale: k must be finite and > 0"
	panicCapInvalid   = "field: WithExponentCap: cap must be finite and > 0"
	panicNilSource    = "field: WithCentroidOf: source must not be nil"
)

// CoordinateSource lists reference coordinates; framework.Registry satisfies it.
type CoordinateSource interface {
	Coordinates() []phase.Coordinate
}

// Option configures a Model. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	k         float64
	expCap    float64
	attractor *phase.Coordinate
	source    CoordinateSource
}

func defaultOptions() options {
	return options{k: DefaultScale, expCap: DefaultExponentCap}
}

// WithScale sets the curvature scale k.
func WithScale(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
		panic(panicScaleInvalid)
	}

	return func(o *options) { o.k = k }
}

// WithAttractor fixes the attractor eagerly. It takes precedence over WithCentroidOf.
func WithAttractor(a phase.Coordinate) Option {
	return func(o *options) { o.attractor = &a }
}

// WithCentroidOf resolves the attractor lazily, on first use, as the centroid
// of src. An empty source yields the centre of the box.
func WithCentroidOf(src CoordinateSource) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *options) { o.source = src }
}

// WithExponentCap overrides DefaultExponentCap.
func WithExponentCap(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit <= 0 {
		panic(panicCapInvalid)
	}

	return func(o *options) { o.expCap = limit }
}
