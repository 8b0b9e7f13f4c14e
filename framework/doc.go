// Package framework holds the catalog of named reference points ("frameworks")
// that anchor the phase space.
//
// 🚀 What is a framework?
//
//	A Framework is a named phase.Coordinate carrying descriptive metadata:
//	core pattern, mechanisms, equations, signature metrics (including the
//	optional signature curvature "ricci_scalar"), seed keywords and, for
//	hybrids, the names of its parents.
//
// ✨ Key features:
//   - Catalog: insertion-ordered, RWMutex-guarded, keyed by name (last write wins)
//   - Get never fails: unknown names resolve to the default framework
//   - Nearest: O(n) squared-distance scan, ties go to the first entry
//   - LoadFile / Catalog.Reload: YAML or JSON sources, list or map layout
//   - Embedded defaults: five built-in frameworks, never an empty catalog
//   - Persist / Restore through any Persister (see framework/sqlitestore)
//   - Summarize and Blend: region labels and elegance-weighted hybrids
//
// ⚙️ Usage:
//
//	cat, err := framework.LoadFile(path, log.Default())
//	name := cat.Nearest(phase.New(0.88, 0.79, 0.94, 0.41, 0.84))
//	fw := cat.Get(name)
//
// The numeric engine depends only on the Registry interface; file and
// database I/O stay in loaders and adapters.
package framework
