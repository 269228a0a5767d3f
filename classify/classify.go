// Package classify determines whether edge endpoints denote ontology
// classes or data instances, from declared kind tags and an explicit
// namespace prefix table.
package classify

import (
	"fmt"

	"github.com/TTa77/PheKnowLator/errors"
)

// KindClass is the declared-kind tag marking an endpoint as an ontology
// class. Any other tag ("subclass", "instance", ...) classifies the endpoint
// as a data instance.
const KindClass = "class"

// EdgeInfo describes the two endpoints of one edge: each endpoint's declared
// kind tag, its raw local identifier, and the namespace prefix to prepend.
// Prefixes come from the caller's configuration; nothing here consults
// ambient state.
type EdgeInfo struct {
	Kinds    []string
	Locals   []string
	Prefixes []string
}

// NodeTypes holds the classification result for one edge. Classes fill the
// Cls slots in endpoint order and instances fill the Ent slots in endpoint
// order; slots with no value are nil.
type NodeTypes struct {
	Cls1 *string
	Cls2 *string
	Ent1 *string
	Ent2 *string
}

// Classes returns the non-nil class URIs in slot order.
func (nt NodeTypes) Classes() []string {
	var out []string
	if nt.Cls1 != nil {
		out = append(out, *nt.Cls1)
	}
	if nt.Cls2 != nil {
		out = append(out, *nt.Cls2)
	}
	return out
}

// Entities returns the non-nil instance URIs in slot order.
func (nt NodeTypes) Entities() []string {
	var out []string
	if nt.Ent1 != nil {
		out = append(out, *nt.Ent1)
	}
	if nt.Ent2 != nil {
		out = append(out, *nt.Ent2)
	}
	return out
}

// FindNodeType classifies both endpoints of an edge. For each endpoint
// independently, a "class" kind yields prefix+local under the next class
// slot; any other kind yields prefix+local under the next entity slot. Pure
// data transformation: order-preserving, no side effects, and it never fails
// for well-formed input.
func FindNodeType(info EdgeInfo) (NodeTypes, error) {
	if len(info.Kinds) < 2 || len(info.Locals) < 2 || len(info.Prefixes) < 2 {
		return NodeTypes{}, errors.WrapInvalid(
			fmt.Errorf("%w: edge requires 2 endpoints, got kinds=%d locals=%d prefixes=%d",
				errors.ErrMalformedInput, len(info.Kinds), len(info.Locals), len(info.Prefixes)),
			"classify", "FindNodeType", "validate edge info")
	}

	var nt NodeTypes
	cls := []**string{&nt.Cls1, &nt.Cls2}
	ent := []**string{&nt.Ent1, &nt.Ent2}
	clsIdx, entIdx := 0, 0

	for i := 0; i < 2; i++ {
		uri := info.Prefixes[i] + info.Locals[i]
		if info.Kinds[i] == KindClass {
			*cls[clsIdx] = &uri
			clsIdx++
		} else {
			*ent[entIdx] = &uri
			entIdx++
		}
	}
	return nt, nil
}
