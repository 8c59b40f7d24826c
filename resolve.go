package jsonschemair

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SchemaDictionary maps a schema's absolute URI string to its
// SchemaDefinition — the system's top-level state (spec.md §3), built once
// during parsing and read-only during emission.
type SchemaDictionary = *orderedmap.OrderedMap[string, *SchemaDefinition]

// UnresolvedReason distinguishes why Resolve failed to find a node.
type UnresolvedReason int

const (
	ReasonNotFound UnresolvedReason = iota
	ReasonCyclic
)

// ResolveResult is the outcome of Resolve: either a concrete Node (and the
// SchemaDefinition that owns it, which may differ from current when the
// identifier crossed a schema boundary), or an Unresolved marker carrying
// why.
type ResolveResult struct {
	Node       Node
	Schema     *SchemaDefinition
	Unresolved bool
	Reason     UnresolvedReason
}

// Resolve chases an Identifier (Path or URI) to the concrete IR node it
// denotes, following TypeReference chains, per spec.md §4.5.
func Resolve(id Identifier, current *SchemaDefinition, schemaDict SchemaDictionary) ResolveResult {
	return resolveVisited(id, current, schemaDict, make(map[string]bool))
}

func resolveVisited(id Identifier, current *SchemaDefinition, schemaDict SchemaDictionary, visited map[string]bool) ResolveResult {
	visitKey := visitKeyFor(id, current)
	if visited[visitKey] {
		return ResolveResult{Unresolved: true, Reason: ReasonCyclic}
	}
	visited[visitKey] = true

	if p, ok := id.AsPath(); ok {
		node, found := current.Types.Get(p.String())
		if !found {
			return ResolveResult{Unresolved: true, Reason: ReasonNotFound}
		}
		if ref, isRef := node.(*TypeReference); isRef {
			return resolveVisited(ref.Target, current, schemaDict, visited)
		}
		return ResolveResult{Node: node, Schema: current}
	}

	u, _ := id.AsURI()
	base := u.Base()
	schema, found := schemaDict.Get(base)
	if !found {
		return ResolveResult{Unresolved: true, Reason: ReasonNotFound}
	}

	key := base
	if u.Fragment() != "" {
		key = base + "#" + u.Fragment()
	}
	node, found := schema.Types.Get(key)
	if !found {
		return ResolveResult{Unresolved: true, Reason: ReasonNotFound}
	}
	if ref, isRef := node.(*TypeReference); isRef {
		return resolveVisited(ref.Target, schema, schemaDict, visited)
	}
	return ResolveResult{Node: node, Schema: schema}
}

// visitKeyFor scopes a Path identifier's visited-set key to the schema it is
// being resolved within, so an unrelated "#/point" reached via two different
// schemas in one resolution chain isn't mistaken for a cycle.
func visitKeyFor(id Identifier, current *SchemaDefinition) string {
	if uri, ok := id.AsURI(); ok {
		return uri.String()
	}
	return current.ID + "|" + id.String()
}
