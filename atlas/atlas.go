// Package atlas surveys the geodesics between every pair of catalog
// frameworks and annotates each route with the curvature along it.
package atlas

import (
	"context"
	"fmt"

	"github.com/GhostMeshIO/SillyAxioms/field"
	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/geodesic"
	"github.com/GhostMeshIO/SillyAxioms/golden"
	"github.com/GhostMeshIO/SillyAxioms/phase"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrent geodesic solves.
const DefaultWorkers = 4

// Field is what a survey needs from the conformal model.
type Field interface {
	geodesic.Accelerator
	Curvature(c phase.Coordinate) field.Curvature
	RicciComponents(c phase.Coordinate) [phase.Dim]float64
}

// Options configures Survey.
type Options struct {
	Workers  int
	Geodesic geodesic.Options
}

// DefaultOptions returns DefaultWorkers and geodesic.DefaultOptions.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers, Geodesic: geodesic.DefaultOptions()}
}

// Route is the solved path between two frameworks.
type Route struct {
	From   string           `json:"from"`
	To     string           `json:"to"`
	Method string           `json:"method"`
	Path   phase.Trajectory `json:"path"`
	Length float64          `json:"length"`

	// Ricci holds the scalar curvature at every path point.
	Ricci []float64 `json:"ricci"`

	// Golden lists path indices classified golden.
	Golden []int `json:"golden,omitempty"`
}

// Survey solves a geodesic for every unordered pair of frameworks in reg,
// in catalog order (i < j), using up to opts.Workers goroutines. The result
// order is deterministic. A nil opts uses DefaultOptions.
func Survey(ctx context.Context, reg framework.Registry, f Field, opts *Options) ([]Route, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("Survey: workers=%d: %w", o.Workers, geodesic.ErrBadOptions)
	}
	if err := o.Geodesic.Validate(); err != nil {
		return nil, fmt.Errorf("Survey: %w", err)
	}

	// Stage 1: snapshot the catalog
	names := reg.Names()
	coords := make([]phase.Coordinate, len(names))
	for i, name := range names {
		coords[i] = reg.Get(name).Coordinate
	}
	type pair struct{ i, j int }
	var pairs []pair
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	// Stage 2: fan out
	routes := make([]Route, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for n, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			route, err := solve(f, names[p.i], names[p.j], coords[p.i], coords[p.j], o.Geodesic)
			if err != nil {
				return err
			}
			routes[n] = route

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Survey: %w", err)
	}

	return routes, nil
}

func solve(f Field, from, to string, a, b phase.Coordinate, o geodesic.Options) (Route, error) {
	res, err := geodesic.Solve(f, a, b, &o)
	if err != nil {
		return Route{}, err
	}
	route := Route{
		From:   from,
		To:     to,
		Method: res.Method.String(),
		Path:   res.Path,
		Length: res.Path.Length(),
		Ricci:  make([]float64, len(res.Path)),
	}
	for i, c := range res.Path {
		r := f.Curvature(c).RicciScalar
		route.Ricci[i] = r
		comps := f.RicciComponents(c)
		if golden.IsGolden(r, comps[:]...) {
			route.Golden = append(route.Golden, i)
		}
	}

	return route, nil
}
