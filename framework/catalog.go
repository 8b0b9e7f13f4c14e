package framework

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/GhostMeshIO/SillyAxioms/phase"
)

// Catalog is the thread-safe, insertion-ordered implementation of Registry.
//
// All methods take mu; reads use RLock so Get and Nearest can run from many
// goroutines while the generation layer adds dynamic frameworks.
type Catalog struct {
	mu     sync.RWMutex
	order  []string             // names in first-insertion order
	byName map[string]Framework // entries, deep-copied on the way in and out
	dirty  map[string]struct{}  // names added since the last Persist
}

var _ Registry = (*Catalog)(nil)

// NewCatalog builds a catalog from fs. Later entries overwrite earlier ones
// with the same name. Returns ErrEmptyCatalog when fs is empty and
// ErrEmptyName for unnamed entries.
func NewCatalog(fs ...Framework) (*Catalog, error) {
	if len(fs) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		byName: make(map[string]Framework, len(fs)),
		dirty:  make(map[string]struct{}),
	}
	if err := c.merge(fs); err != nil {
		return nil, err
	}

	return c, nil
}

// merge inserts fs without marking them dirty. Caller must hold mu or own c.
func (c *Catalog) merge(fs []Framework) error {
	for _, f := range fs {
		if err := validate(f); err != nil {
			return err
		}
	}
	for _, f := range fs {
		c.put(f)
	}

	return nil
}

func (c *Catalog) put(f Framework) {
	if _, ok := c.byName[f.Name]; !ok {
		c.order = append(c.order, f.Name)
	}
	c.byName[f.Name] = f.Clone()
}

func validate(f Framework) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}

	return nil
}

// defaultNameLocked resolves the default framework. Caller holds mu.
func (c *Catalog) defaultNameLocked() string {
	if _, ok := c.byName[DefaultName]; ok {
		return DefaultName
	}

	return c.order[0]
}

// DefaultName returns the name Get falls back to.
func (c *Catalog) DefaultName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.defaultNameLocked()
}

// Get returns the named framework, or the default framework when name is unknown.
// Absence is not an error.
func (c *Catalog) Get(name string) Framework {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if f, ok := c.byName[name]; ok {
		return f.Clone()
	}

	return c.byName[c.defaultNameLocked()].Clone()
}

// Lookup returns the named framework and whether it exists.
func (c *Catalog) Lookup(name string) (Framework, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.byName[name]
	if !ok {
		return Framework{}, false
	}

	return f.Clone(), true
}

// Nearest returns the name of the framework whose coordinate minimizes the
// squared Euclidean distance to q. Ties resolve to the first in catalog order.
// Complexity: O(n).
func (c *Catalog) Nearest(q phase.Coordinate) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var (
		best    = c.defaultNameLocked()
		minDist = math.Inf(1)
		d       float64
	)
	for _, name := range c.order {
		d = q.DistanceSquared(c.byName[name].Coordinate)
		if d < minDist {
			minDist, best = d, name
		}
	}

	return best
}

// Add inserts or overwrites f and marks it dirty for the next Persist.
// An overwrite keeps the entry's original position.
func (c *Catalog) Add(f Framework) error {
	if err := validate(f); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.put(f)
	c.dirty[f.Name] = struct{}{}

	return nil
}

// Names lists framework names in catalog order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.order)
}

// Len returns the number of frameworks.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Coordinates lists reference coordinates in catalog order.
func (c *Catalog) Coordinates() []phase.Coordinate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]phase.Coordinate, len(c.order))
	for i, name := range c.order {
		out[i] = c.byName[name].Coordinate
	}

	return out
}

// Frameworks returns deep copies of all entries in catalog order.
func (c *Catalog) Frameworks() []Framework {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Framework, len(c.order))
	for i, name := range c.order {
		out[i] = c.byName[name].Clone()
	}

	return out
}

// Dirty lists, in catalog order, the names added since the last Persist.
func (c *Catalog) Dirty() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.dirtyLocked()
}

func (c *Catalog) dirtyLocked() []string {
	out := make([]string, 0, len(c.dirty))
	for _, name := range c.order {
		if _, ok := c.dirty[name]; ok {
			out = append(out, name)
		}
	}

	return out
}

// Persist writes every dirty framework through p and clears the dirty set on success.
// Entries added while the save is in flight stay dirty.
func (c *Catalog) Persist(ctx context.Context, p Persister) error {
	if p == nil {
		return ErrNilPersister
	}
	c.mu.RLock()
	names := c.dirtyLocked()
	batch := make([]Framework, len(names))
	for i, name := range names {
		batch[i] = c.byName[name].Clone()
	}
	c.mu.RUnlock()

	if len(batch) == 0 {
		return nil
	}
	if err := p.SaveFrameworks(ctx, batch); err != nil {
		return fmt.Errorf("Persist: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range batch {
		// only clear entries that were not overwritten during the save
		if cur, ok := c.byName[f.Name]; ok && sameEntry(cur, f) {
			delete(c.dirty, f.Name)
		}
	}

	return nil
}

// Restore merges every framework stored behind p and returns how many were read.
// Restored entries are not dirty.
func (c *Catalog) Restore(ctx context.Context, p Persister) (int, error) {
	if p == nil {
		return 0, ErrNilPersister
	}
	fs, err := p.LoadFrameworks(ctx)
	if err != nil {
		return 0, fmt.Errorf("Restore: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err = c.merge(fs); err != nil {
		return 0, fmt.Errorf("Restore: %w", err)
	}

	return len(fs), nil
}

func sameEntry(a, b Framework) bool {
	return a.Name == b.Name &&
		a.Coordinate == b.Coordinate &&
		a.CorePattern == b.CorePattern &&
		slices.Equal(a.Mechanisms, b.Mechanisms) &&
		slices.Equal(a.Equations, b.Equations) &&
		slices.Equal(a.Keywords, b.Keywords) &&
		slices.Equal(a.Parents, b.Parents) &&
		maps.Equal(a.Metrics, b.Metrics)
}
