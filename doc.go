// Package sillyaxioms is a small engine for walking a five-dimensional
// phase space of theoretical frameworks under a conformally flat metric.
//
// 🚀 What is inside?
//
//	• Coordinates: bounded 5-vectors (participation, plasticity,
//	  substrate, temporal, generative) with clamping and distances
//	• Framework registry: named anchor points, YAML catalogs, hybrids
//	  and an optional SQLite store for runtime additions
//	• Conformal field: Ω = −k‖x−a‖², Ricci scalar, Christoffel symbols
//	• Curvature descent: momentum walk on the Ricci scalar with a
//	  reflecting box
//	• Geodesics: adaptive Dormand–Prince integration with a straight-line
//	  fallback
//	• Golden-ratio classifier over curvature values
//
// ✨ Layout
//
//	phase/       Coordinate, Trajectory, interpolation
//	matrix/      dense 5×5 helpers (Hessian, Ricci tensor, eigenvalues)
//	golden/      φ-proximity classifier
//	framework/   Framework, Catalog, YAML loading, summaries, hybrids
//	framework/sqlitestore/  persisted runtime frameworks
//	field/       conformal model and metric-driven dynamics
//	descent/     curvature-descent integrator
//	geodesic/    geodesic solver
//	atlas/       concurrent all-pairs geodesic survey
//	config/      environment configuration
//	engine/      façade wiring all of the above
//	cmd/phasewalk/  command-line front end
//
// Quick start:
//
//	e, err := engine.Open(ctx, config.Default())
//	if err != nil { ... }
//	path := e.Geodesic(e.Framework("SEMANTIC_GRAVITY").Coordinate,
//		e.Framework("THERMODYNAMIC_EPISTEMIC").Coordinate, 21)
//
//	go install github.com/GhostMeshIO/SillyAxioms/cmd/phasewalk@latest
package sillyaxioms
