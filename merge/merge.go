// Package merge implements the deep merge engine over ir node trees.
//
// Merge reconciles a base document with an incoming partial update under
// a per-call Config. Both inputs are left untouched; the result shares
// no nodes with either input.
package merge

import (
	"github.com/dual/daplug-base/debug"
	"github.com/dual/daplug-base/ir"
)

// Merge combines base and incoming under cfg. The runtime kind of
// incoming drives the recursion at each path:
//
//   - object over object: per-key by cfg.Dicts
//   - array over array: by cfg.Lists
//   - anything else (scalars, kind mismatch): incoming wins outright
//
// Keys present only in base and never touched by incoming are preserved.
// A nil input is treated as null.
func Merge(base, incoming *ir.Node, cfg Config) (*ir.Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if incoming == nil {
		incoming = ir.Null()
	}
	if base == nil {
		base = ir.Null()
	}
	return doMerge(base, incoming, cfg), nil
}

func doMerge(base, incoming *ir.Node, cfg Config) *ir.Node {
	if debug.Merge() {
		debug.Logf("merge %s onto %s at %s\n", incoming.Type, base.Type, base.Path())
	}
	switch {
	case base.Type == ir.ObjectType && incoming.Type == ir.ObjectType:
		return mergeObjects(base, incoming, cfg)
	case base.Type == ir.ArrayType && incoming.Type == ir.ArrayType:
		return mergeArrays(base, incoming, cfg)
	default:
		// Terminal case: scalar on either side or mismatched kinds.
		return incoming.Clone()
	}
}

func mergeObjects(base, incoming *ir.Node, cfg Config) *ir.Node {
	switch cfg.Dicts {
	case DictRemove:
		removed := make(map[string]bool, len(incoming.Fields))
		for _, f := range incoming.Fields {
			removed[f.String] = true
		}
		dst := make(map[string]*ir.Node, len(base.Fields))
		for i, f := range base.Fields {
			if removed[f.String] {
				continue
			}
			dst[f.String] = base.Values[i].Clone()
		}
		return ir.FromMap(dst)
	default: // DictUpsert
		incomingMap := ir.ToMap(incoming)
		dst := make(map[string]*ir.Node, len(base.Fields)+len(incoming.Fields))
		for i, f := range base.Fields {
			iv, present := incomingMap[f.String]
			if !present {
				dst[f.String] = base.Values[i].Clone()
				continue
			}
			dst[f.String] = doMerge(base.Values[i], iv, cfg)
			delete(incomingMap, f.String)
		}
		for k, iv := range incomingMap {
			dst[k] = iv.Clone()
		}
		return ir.FromMap(dst)
	}
}

func mergeArrays(base, incoming *ir.Node, cfg Config) *ir.Node {
	switch cfg.Lists {
	case ListReplace:
		return incoming.Clone()
	case ListRemove:
		kept := make([]*ir.Node, 0, len(base.Values))
		for _, bv := range base.Values {
			if containsEqual(incoming.Values, bv) {
				continue
			}
			kept = append(kept, bv.Clone())
		}
		return ir.FromSlice(kept)
	default: // ListAdd
		out := make([]*ir.Node, 0, len(base.Values)+len(incoming.Values))
		for _, bv := range base.Values {
			out = append(out, bv.Clone())
		}
		for _, iv := range incoming.Values {
			if containsEqual(base.Values, iv) {
				continue
			}
			out = append(out, iv.Clone())
		}
		return ir.FromSlice(out)
	}
}

// containsEqual tests membership by deep structural equality, not
// identity.
func containsEqual(values []*ir.Node, n *ir.Node) bool {
	for _, v := range values {
		if ir.Equal(v, n) {
			return true
		}
	}
	return false
}
