package daplug

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dual/daplug-base/ir"
)

// Diff produces a succinct comparison of from and to. If there are no
// differences, Diff returns nil.
//
// Differences are indicated by tags:
//
//   - a node whose types or scalar values differ becomes
//     !replace {from: ..., to: ...}
//   - for objects, a field only in from is tagged !delete, a field only
//     in to is tagged !insert, and shared differing fields hold their
//     own diff; equal fields are absent
//   - for arrays, the result is an !array object keyed by index holding
//     per-element diffs, with !insert/!delete for length changes
//   - multiline strings diff as a !strdiff patch text
func Diff(from, to *ir.Node) *ir.Node {
	return doDiff(from, to)
}

func doDiff(from, to *ir.Node) *ir.Node {
	if from.Type != to.Type {
		return makeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(from, to)
	case ir.ArrayType:
		return diffArray(from, to)
	case ir.StringType:
		return diffString(from, to)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return makeDiff(from, to)
	}
}

func makeDiff(from, to *ir.Node) *ir.Node {
	return ir.FromMap(map[string]*ir.Node{
		"from": from.Clone(),
		"to":   to.Clone(),
	}).WithTag("!replace")
}

func diffObject(from, to *ir.Node) *ir.Node {
	toMap := ir.ToMap(to)
	out := map[string]*ir.Node{}
	for i, f := range from.Fields {
		tv, ok := toMap[f.String]
		if !ok {
			out[f.String] = from.Values[i].Clone().WithTag("!delete")
			continue
		}
		delete(toMap, f.String)
		if d := doDiff(from.Values[i], tv); d != nil {
			out[f.String] = d
		}
	}
	for k, tv := range toMap {
		out[k] = tv.Clone().WithTag("!insert")
	}
	if len(out) == 0 {
		return nil
	}
	return ir.FromMap(out)
}

func diffArray(from, to *ir.Node) *ir.Node {
	out := map[string]*ir.Node{}
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		if d := doDiff(from.Values[i], to.Values[i]); d != nil {
			out[strconv.Itoa(i)] = d
		}
	}
	for i := n; i < len(from.Values); i++ {
		out[strconv.Itoa(i)] = from.Values[i].Clone().WithTag("!delete")
	}
	for i := n; i < len(to.Values); i++ {
		out[strconv.Itoa(i)] = to.Values[i].Clone().WithTag("!insert")
	}
	if len(out) == 0 {
		return nil
	}
	return ir.FromMap(out).WithTag("!array")
}

func diffString(from, to *ir.Node) *ir.Node {
	if from.String == to.String {
		return nil
	}
	if !strings.Contains(from.String, "\n") && !strings.Contains(to.String, "\n") {
		return makeDiff(from, to)
	}
	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(from.String, to.String)
	return ir.FromString(dmp.PatchToText(patches)).WithTag("!strdiff")
}
