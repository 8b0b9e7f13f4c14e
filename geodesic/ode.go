package geodesic

import (
	"math"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// state is (x, v) ∈ ℝ¹⁰.
type state [2 * phase.Dim]float64

// Dormand–Prince 5(4) tableau.
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	dpB5 = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	dpB4 = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

const (
	// minStep is the step size below which the integrator gives up.
	minStep = 1e-12

	// step controller
	safety     = 0.9
	growMax    = 5.0
	shrinkMin  = 0.2
	errorOrder = 1.0 / 5

	// bisectIters bounds event location; 60 halvings reach float64 resolution.
	bisectIters = 60
)

// integrator is an adaptive Dormand–Prince 5(4) solver for an autonomous
// system y' = f(y). It counts attempted steps against maxSteps.
type integrator struct {
	f        func(y state) state
	rtol     float64
	atol     float64
	maxSteps int
	steps    int
}

// step takes one trial step of size h from y and returns the fifth-order
// solution with its scaled error norm.
func (in *integrator) step(y state, h float64) (state, float64) {
	var k [7]state
	k[0] = in.f(y)
	for s := 1; s < 7; s++ {
		var ys state
		for i := range ys {
			acc := y[i]
			for j := 0; j < s; j++ {
				acc += h * dpA[s][j] * k[j][i]
			}
			ys[i] = acc
		}
		k[s] = in.f(ys)
	}

	var (
		next state
		sum  float64
	)
	for i := range next {
		var hi, lo float64
		for s := 0; s < 7; s++ {
			hi += dpB5[s] * k[s][i]
			lo += dpB4[s] * k[s][i]
		}
		next[i] = y[i] + h*hi
		scale := in.atol + in.rtol*math.Max(math.Abs(y[i]), math.Abs(next[i]))
		e := h * (hi - lo) / scale
		sum += e * e
	}

	return next, math.Sqrt(sum / float64(len(next)))
}

// advance integrates from (t, y) toward tEnd with initial trial step h.
// When event is non-nil, integration stops at the first accepted step where
// event crosses from > 0 to ≤ 0; the crossing is located by bisection and
// the returned state satisfies event ≤ 0.
func (in *integrator) advance(
	y state, t, tEnd, h float64, event func(state) float64,
) (yOut state, tOut, hOut float64, fired bool, err error) {
	for t < tEnd {
		if in.steps >= in.maxSteps {
			return y, t, h, false, ErrStepCeiling
		}
		in.steps++

		// O.1: never overshoot the interval end
		trial := h
		last := h >= tEnd-t
		if last {
			h = tEnd - t
		}
		if h < minStep && !last {
			return y, t, h, false, ErrStepUnderflow
		}

		// O.2: trial step and controller
		next, errNorm := in.step(y, h)
		if !finiteState(next) || math.IsNaN(errNorm) {
			h *= shrinkMin
			if h < minStep {
				return y, t, h, false, ErrNonFinite
			}
			continue
		}
		factor := growMax
		if errNorm > 0 {
			factor = math.Min(growMax, math.Max(shrinkMin, safety*math.Pow(errNorm, -errorOrder)))
		}
		if errNorm > 1 {
			h *= factor
			continue
		}

		// O.3: event detection on the accepted step
		if event != nil && event(y) > 0 && event(next) <= 0 {
			yEv, theta := in.bisect(y, h, event)
			return yEv, t + theta*h, h, true, nil
		}

		y = next
		if last {
			t, h = tEnd, math.Max(h*factor, trial)
			continue
		}
		t += h
		h *= factor
	}

	return y, t, h, false, nil
}

// bisect finds the smallest fraction θ ∈ (0, 1] of the step h from y for
// which event ≤ 0, re-stepping from y each time.
func (in *integrator) bisect(y state, h float64, event func(state) float64) (state, float64) {
	lo, hi := 0.0, 1.0
	yHi, _ := in.step(y, h)
	for i := 0; i < bisectIters && (hi-lo)*h > minStep; i++ {
		mid := (lo + hi) / 2
		yMid, _ := in.step(y, mid*h)
		if event(yMid) <= 0 {
			hi, yHi = mid, yMid
		} else {
			lo = mid
		}
	}

	return yHi, hi
}

func finiteState(y state) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
