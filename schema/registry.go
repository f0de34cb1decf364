package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/dual/daplug-base/ir"
	"github.com/dual/daplug-base/logging"
)

// Registry holds named schema documents loaded from disk. A schema is
// named by its top-level "name" field when present, otherwise by its
// file stem. Registries are read-only after loading and safe for
// concurrent lookup.
type Registry struct {
	log     *logging.Logger
	schemas map[string]*ir.Node
}

func NewRegistry(log *logging.Logger) *Registry {
	if log == nil {
		log = logging.Nop()
	}
	return &Registry{
		log:     log.Named("schema"),
		schemas: map[string]*ir.Node{},
	}
}

// LoadDir loads every .json, .yaml and .yml file in dir. Files that do
// not parse are an error; unknown extensions are skipped.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading schema dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		switch ext {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := r.LoadFile(path); err != nil {
			return err
		}
	}
	r.log.Info("schemas loaded",
		zap.String("dir", dir),
		zap.Int("count", len(r.schemas)),
	)
	return nil
}

// LoadFile loads a single schema document.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading schema %q: %w", path, err)
	}
	var v any
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, &v)
	default:
		err = yaml.Unmarshal(data, &v)
	}
	if err != nil {
		return fmt.Errorf("parsing schema %q: %w", path, err)
	}
	node, err := ir.FromJSONAny(v)
	if err != nil {
		return fmt.Errorf("schema %q: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if n := ir.Get(node, "name"); n != nil && n.Type == ir.StringType {
		name = n.String
	}
	r.schemas[name] = node
	r.log.Debug("loaded schema",
		zap.String("name", name),
		zap.String("file", path),
	)
	return nil
}

// Add registers a schema document programmatically.
func (r *Registry) Add(name string, schema *ir.Node) {
	r.schemas[name] = schema
}

// Lookup returns the raw (unresolved) schema document.
func (r *Registry) Lookup(name string) (*ir.Node, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	return s, nil
}

// Resolved returns the schema with all references dereferenced, ready
// for Project.
func (r *Registry) Resolved(name string) (*ir.Node, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Resolve(s)
}

// Names lists registered schema names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
