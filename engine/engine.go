// Package engine wires the catalog, the conformal field and the solvers into
// one façade for callers.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/GhostMeshIO/SillyAxioms/atlas"
	"github.com/GhostMeshIO/SillyAxioms/config"
	"github.com/GhostMeshIO/SillyAxioms/descent"
	"github.com/GhostMeshIO/SillyAxioms/field"
	"github.com/GhostMeshIO/SillyAxioms/framework"
	"github.com/GhostMeshIO/SillyAxioms/framework/sqlitestore"
	"github.com/GhostMeshIO/SillyAxioms/geodesic"
	"github.com/GhostMeshIO/SillyAxioms/golden"
	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// ErrNoStore is returned by Persist when no store path was configured.
var ErrNoStore = errors.New("engine: no framework store configured")

// Engine is safe for concurrent use.
type Engine struct {
	cfg     config.Config
	logger  *log.Logger
	catalog *framework.Catalog
	model   *field.Model
	store   *sqlitestore.Store
}

// Open loads the catalog named by cfg (or the built-in one), restores stored
// frameworks when cfg.StorePath is set and builds the field model whose
// attractor is the catalog centroid.
func Open(ctx context.Context, cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	logger := cfg.Logger()
	catalog, err := framework.LoadFile(cfg.CatalogPath, logger)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}

	var store *sqlitestore.Store
	if cfg.StorePath != "" {
		if store, err = sqlitestore.Open(cfg.StorePath); err != nil {
			return nil, fmt.Errorf("Open: %w", err)
		}
		n, err := catalog.Restore(ctx, store)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("Open: %w", err)
		}
		if logger != nil && n > 0 {
			logger.Printf("restored %d frameworks from %s", n, cfg.StorePath)
		}
	}

	e, err := New(catalog, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	e.store = store

	return e, nil
}

// New builds an Engine over an existing catalog without persistence.
func New(catalog *framework.Catalog, cfg config.Config) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("New: %w", framework.ErrEmptyCatalog)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	model, err := field.NewModel(field.WithCentroidOf(catalog), field.WithScale(cfg.CurvatureScale))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Engine{cfg: cfg, logger: cfg.Logger(), catalog: catalog, model: model}, nil
}

// Model exposes the field model.
func (e *Engine) Model() *field.Model { return e.model }

// Catalog exposes the framework catalog.
func (e *Engine) Catalog() *framework.Catalog { return e.catalog }

// Curvature evaluates the field at c.
func (e *Engine) Curvature(c phase.Coordinate) field.Curvature { return e.model.Curvature(c) }

// Descend walks from start; nil opts uses the configured descent settings.
func (e *Engine) Descend(start phase.Coordinate, opts *descent.Options) (phase.Trajectory, error) {
	if opts == nil {
		o := e.cfg.DescentOptions()
		opts = &o
	}

	return descent.Descend(e.model, start, opts)
}

// Geodesic returns n samples from start toward end (configured count when n < 1).
// It never fails: integration problems fall back to a straight line.
func (e *Engine) Geodesic(start, end phase.Coordinate, n int) phase.Trajectory {
	res := e.SolveGeodesic(start, end, n)

	return res.Path
}

// SolveGeodesic is Geodesic with the solver metadata.
func (e *Engine) SolveGeodesic(start, end phase.Coordinate, n int) geodesic.Result {
	o := e.cfg.GeodesicOptions(e.logger)
	if n >= 1 {
		o.Points = n
	}
	res, err := geodesic.Solve(e.model, start, end, &o)
	if err != nil {
		// configuration was validated; only a bad n could get here
		return geodesic.Result{Path: phase.Linear(start, end, o.Points), Method: geodesic.LinearFallback, Err: err}
	}

	return res
}

// NearestFramework names the framework closest to c.
func (e *Engine) NearestFramework(c phase.Coordinate) string { return e.catalog.Nearest(c) }

// IsGolden classifies a curvature value and optional components.
func (e *Engine) IsGolden(ricci float64, components ...float64) bool {
	return golden.IsGolden(ricci, components...)
}

// IsGoldenPoint classifies c by its scalar curvature and Ricci components.
func (e *Engine) IsGoldenPoint(c phase.Coordinate) bool {
	comps := e.model.RicciComponents(c)

	return golden.IsGolden(e.model.Curvature(c).RicciScalar, comps[:]...)
}

// Framework returns the named framework or the catalog default.
func (e *Engine) Framework(name string) framework.Framework { return e.catalog.Get(name) }

// AddFramework inserts or overwrites f. The attractor is not recomputed.
func (e *Engine) AddFramework(f framework.Framework) error { return e.catalog.Add(f) }

// AddHybrid blends two catalog frameworks, adds the hybrid and returns it.
func (e *Engine) AddHybrid(a, b string, rng *rand.Rand) (framework.Framework, error) {
	h := framework.Blend(e.catalog.Get(a), e.catalog.Get(b), rng)
	if err := e.catalog.Add(h); err != nil {
		return framework.Framework{}, fmt.Errorf("AddHybrid: %w", err)
	}

	return h, nil
}

// Persist flushes runtime additions to the configured store.
func (e *Engine) Persist(ctx context.Context) error {
	if e.store == nil {
		return ErrNoStore
	}

	return e.catalog.Persist(ctx, e.store)
}

// Survey solves geodesics between every pair of frameworks.
func (e *Engine) Survey(ctx context.Context) ([]atlas.Route, error) {
	return atlas.Survey(ctx, e.catalog, e.model, &atlas.Options{
		Workers:  e.cfg.SurveyWorkers,
		Geodesic: e.cfg.GeodesicOptions(e.logger),
	})
}

// Summary describes the named framework.
func (e *Engine) Summary(name string) framework.Summary {
	return framework.Summarize(e.catalog.Get(name))
}

// Dynamics runs the metric-driven field simulation for the named framework.
func (e *Engine) Dynamics(name string, steps int, rng *rand.Rand) field.Dynamics {
	return field.SimulateDynamics(e.catalog.Get(name), steps, rng)
}

// Close persists pending additions (when a store is configured) and
// releases the store.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	err := e.catalog.Persist(context.Background(), e.store)

	return errors.Join(err, e.store.Close())
}
