// Package daplug ties the shaping components into the typical pipeline:
// a registry resolves a named schema, the projector shapes a payload
// against it, the merge engine optionally folds in an overlay, and the
// result is optionally handed to a transport publisher.
//
// The sub-packages are independent; use them directly when the pipeline
// shape does not fit.
package daplug

import (
	"context"
	"fmt"

	"github.com/dual/daplug-base/ir"
	"github.com/dual/daplug-base/merge"
	"github.com/dual/daplug-base/publish"
	"github.com/dual/daplug-base/schema"
)

type Pipeline struct {
	// Registry supplies named schema documents.
	Registry *schema.Registry
	// Merge configures overlay reconciliation. The zero value applies
	// the defaults (list add, dict upsert).
	Merge merge.Config
	// Notifier, when set, receives the shaped result.
	Notifier *publish.Notifier
}

// Run resolves schemaName, projects payload against it, merges overlay
// into the projection when overlay is non-nil, and publishes the result
// when a Notifier is configured. The shaped node is returned in all
// non-error cases.
func (p *Pipeline) Run(ctx context.Context, schemaName string, payload, overlay *ir.Node) (*ir.Node, error) {
	if p.Registry == nil {
		return nil, fmt.Errorf("pipeline has no schema registry")
	}
	resolved, err := p.Registry.Resolved(schemaName)
	if err != nil {
		return nil, err
	}
	out := schema.Project(payload, resolved)
	if overlay != nil {
		out, err = merge.Merge(out, overlay, p.Merge)
		if err != nil {
			return nil, err
		}
	}
	if p.Notifier != nil {
		if err := p.Notifier.NotifyNode(ctx, schemaName, out, nil); err != nil {
			return nil, err
		}
	}
	return out, nil
}
