package framework

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/GhostMeshIO/SillyAxioms/phase"
	"gopkg.in/yaml.v3"
)

// record is the on-disk shape of one framework. Field names follow the
// historical JSON pool layout so existing files load unchanged.
type record struct {
	Name        string             `yaml:"name"`
	Coordinates []float64          `yaml:"coordinates"`
	CorePattern string             `yaml:"core_pattern"`
	Mechanisms  []string           `yaml:"mechanisms"`
	Equations   []string           `yaml:"equations"`
	Metrics     map[string]float64 `yaml:"signature_metrics"`
	Keywords    []string           `yaml:"seed_keywords"`
	Parents     []string           `yaml:"parent_frameworks"`
}

func (r record) framework() (Framework, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Framework{}, ErrEmptyName
	}
	coord, err := phase.FromSlice(r.Coordinates)
	if err != nil {
		return Framework{}, fmt.Errorf("framework %q: %w", name, err)
	}

	return Framework{
		Name:        name,
		Coordinate:  coord,
		CorePattern: r.CorePattern,
		Mechanisms:  r.Mechanisms,
		Equations:   r.Equations,
		Metrics:     r.Metrics,
		Keywords:    r.Keywords,
		Parents:     r.Parents,
	}, nil
}

// Decode parses a catalog source. YAML and JSON are both accepted, in either
// of two layouts:
//
//	frameworks:            # list layout
//	  - name: A
//	    coordinates: [...]
//
//	{"A": {"coordinates": [...]}}   # map layout, keyed by name
//
// Map layout preserves document order. Decode is strict: any malformed
// entry fails the whole source with ErrMalformedSource.
func Decode(r io.Reader) ([]Framework, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty source: %w", ErrMalformedSource)
		}
		return nil, fmt.Errorf("Decode: %v: %w", err, ErrMalformedSource)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("Decode: top level must be a mapping: %w", ErrMalformedSource)
	}
	root := doc.Content[0]

	var recs []record
	if list := mappingValue(root, "frameworks"); list != nil {
		if list.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("Decode: frameworks must be a list: %w", ErrMalformedSource)
		}
		if err := list.Decode(&recs); err != nil {
			return nil, fmt.Errorf("Decode: %v: %w", err, ErrMalformedSource)
		}
	} else {
		for i := 0; i+1 < len(root.Content); i += 2 {
			var rec record
			if err := root.Content[i+1].Decode(&rec); err != nil {
				return nil, fmt.Errorf("Decode: %s: %v: %w", root.Content[i].Value, err, ErrMalformedSource)
			}
			rec.Name = root.Content[i].Value
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("Decode: %w", ErrEmptyCatalog)
	}

	out := make([]Framework, 0, len(recs))
	for _, rec := range recs {
		f, err := rec.framework()
		if err != nil {
			return nil, fmt.Errorf("Decode: %v: %w", err, ErrMalformedSource)
		}
		out = append(out, f)
	}

	return out, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}

	return nil
}

// Encode writes fs in the list layout accepted by Decode.
func Encode(w io.Writer, fs []Framework) error {
	recs := make([]record, len(fs))
	for i, f := range fs {
		recs[i] = record{
			Name:        f.Name,
			Coordinates: f.Coordinate.Slice(),
			CorePattern: f.CorePattern,
			Mechanisms:  f.Mechanisms,
			Equations:   f.Equations,
			Metrics:     f.Metrics,
			Keywords:    f.Keywords,
			Parents:     f.Parents,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Frameworks []record `yaml:"frameworks"`
	}{recs}); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// LoadFile builds a catalog from the file at path. An empty path, a missing
// file or an unparseable file degrade to Default() and are reported on logger
// (nil silences them). The returned error is non-nil only when no catalog at
// all could be produced.
func LoadFile(path string, logger *log.Logger) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logf(logger, "framework: read %s: %v; using built-in catalog", path, err)

		return Default()
	}
	fs, err := Decode(bytes.NewReader(data))
	if err != nil {
		logf(logger, "framework: decode %s: %v; using built-in catalog", path, err)

		return Default()
	}

	return NewCatalog(fs...)
}

// Reload decodes r and merges its frameworks into c, last write wins.
// On error c is left unchanged. Reloaded entries are not marked dirty.
func (c *Catalog) Reload(r io.Reader) error {
	fs, err := Decode(r)
	if err != nil {
		return fmt.Errorf("Reload: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.merge(fs)
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger != nil {
		logger.Printf(format, args...)
	}
}
