package schema

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/dual/daplug-base/debug"
	"github.com/dual/daplug-base/ir"
)

// Resolve dereferences every "$ref" node in a schema document against
// the document's top-level "definitions" object and returns the fully
// resolved tree. The projector never resolves references itself; callers
// resolve first, project second.
//
// A reference value is either a JSON-pointer-style "#/definitions/name"
// or a bare expression over the definition environment ("name",
// "name.field", ...). Expressions are evaluated with expr-lang, so a
// definition body can be addressed at any depth.
//
// Reference chains that re-enter themselves are an error naming the
// cycle. The input is never mutated.
func Resolve(doc *ir.Node) (*ir.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil schema document")
	}
	r := &resolver{active: map[string]bool{}}
	if defs := ir.Get(doc, "definitions"); defs != nil && defs.Type == ir.ObjectType {
		r.env, _ = ir.ToJSONAny(defs).(map[string]any)
	}
	return r.resolve(doc)
}

type resolver struct {
	env    map[string]any
	active map[string]bool
	stack  []string
}

func (r *resolver) resolve(n *ir.Node) (*ir.Node, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Type {
	case ir.ObjectType:
		if ref := ir.Get(n, "$ref"); ref != nil && ref.Type == ir.StringType {
			return r.deref(ref.String)
		}
		out := make(map[string]*ir.Node, len(n.Fields))
		for i, f := range n.Fields {
			rv, err := r.resolve(n.Values[i])
			if err != nil {
				return nil, err
			}
			out[f.String] = rv
		}
		res := ir.FromMap(out)
		res.Tag = n.Tag
		return res, nil
	case ir.ArrayType:
		out := make([]*ir.Node, len(n.Values))
		for i, v := range n.Values {
			rv, err := r.resolve(v)
			if err != nil {
				return nil, err
			}
			out[i] = rv
		}
		res := ir.FromSlice(out)
		res.Tag = n.Tag
		return res, nil
	default:
		return n.Clone(), nil
	}
}

func (r *resolver) deref(ref string) (*ir.Node, error) {
	name := strings.TrimPrefix(ref, "#/definitions/")
	name = strings.ReplaceAll(name, "/", ".")
	if debug.Resolve() {
		debug.Logf("deref %q as %q\n", ref, name)
	}
	if r.active[name] {
		return nil, fmt.Errorf("reference cycle %s -> %s", strings.Join(r.stack, " -> "), name)
	}
	if r.env == nil {
		return nil, fmt.Errorf("reference %q with no definitions", ref)
	}
	v, err := expr.Eval(name, r.env)
	if err != nil {
		return nil, fmt.Errorf("resolving reference %q: %w", ref, err)
	}
	if v == nil {
		return nil, fmt.Errorf("reference %q not found in definitions", ref)
	}
	node, err := ir.FromJSONAny(v)
	if err != nil {
		return nil, fmt.Errorf("resolving reference %q: %w", ref, err)
	}
	r.active[name] = true
	r.stack = append(r.stack, name)
	res, err := r.resolve(node)
	r.stack = r.stack[:len(r.stack)-1]
	delete(r.active, name)
	return res, err
}
