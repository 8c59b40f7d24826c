package jsonschemair

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the tag of the closed IR variant described in spec.md §3.
type Kind int

const (
	KindPrimitive Kind = iota
	KindEnum
	KindObject
	KindArray
	KindTuple
	KindUnion
	KindOneOf
	KindAnyOf
	KindAllOf
	KindTypeReference
	KindDefinitions
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindEnum:
		return "Enum"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindTuple:
		return "Tuple"
	case KindUnion:
		return "Union"
	case KindOneOf:
		return "OneOf"
	case KindAnyOf:
		return "AnyOf"
	case KindAllOf:
		return "AllOf"
	case KindTypeReference:
		return "TypeReference"
	case KindDefinitions:
		return "Definitions"
	default:
		return "Unknown"
	}
}

// IsComposition reports whether k is one of the three composition kinds.
func (k Kind) IsComposition() bool {
	return k == KindOneOf || k == KindAnyOf || k == KindAllOf
}

// Node is the common interface implemented by every IR variant. Dispatch
// over Node is exhaustive by Kind(); no open inheritance is needed (spec.md
// §9 "Polymorphism over IR kinds").
type Node interface {
	Kind() Kind
	Path() Path
	Name() string
}

// nodeBase is embedded by every concrete node and supplies the identity
// fields common to all of them (spec.md §3 invariants 1 and 2).
type nodeBase struct {
	path Path
}

func (b nodeBase) Path() Path { return b.path }

func (b nodeBase) Name() string {
	if b.path.IsRoot() {
		return "#"
	}
	return b.path.Name()
}

// Primitive is a leaf scalar type.
type Primitive struct {
	nodeBase
	BaseType BaseType
}

func (*Primitive) Kind() Kind { return KindPrimitive }

// Enum is a primitive constrained to an ordered, distinct set of literal
// values.
type Enum struct {
	nodeBase
	BaseType BaseType
	Values   []string
}

func (*Enum) Kind() Kind { return KindEnum }

// Object is a record type. Properties holds only Paths to child types, never
// inlined nodes, so the IR stays a forest by ownership (spec.md §9).
type Object struct {
	nodeBase
	Required   map[string]bool
	Properties *orderedmap.OrderedMap[string, Path]
}

func (*Object) Kind() Kind { return KindObject }

// PropertyNames returns property names in declaration order, the order
// Properties itself preserves. Both emitters render record/struct fields in
// this order; they do not sort fields by name, whatever Config.EmitSort is.
func (o *Object) PropertyNames() []string {
	names := make([]string, 0, o.Properties.Len())
	for pair := o.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Array is a homogeneous list type.
type Array struct {
	nodeBase
	Item Path
}

func (*Array) Kind() Kind { return KindArray }

// Tuple is a fixed-length, heterogeneous list type.
type Tuple struct {
	nodeBase
	Items []Path
}

func (*Tuple) Kind() Kind { return KindTuple }

// Union is a value that may be any of several primitive base types
// (JSON Schema's "type": [...] form applied to a leaf).
type Union struct {
	nodeBase
	Bases []BaseType
}

func (*Union) Kind() Kind { return KindUnion }

// Composition represents allOf/anyOf/oneOf: an ordered list of alternative
// types. Which of the three JSON Schema keywords produced it is recorded in
// CompositionKind.
type Composition struct {
	nodeBase
	CompositionKind Kind // one of KindOneOf, KindAnyOf, KindAllOf
	Alternatives    []Path
}

func (c *Composition) Kind() Kind { return c.CompositionKind }

// TypeReference points at another IR node by Path or URI. It produces no
// declarations of its own; the emitter follows it to its target's name.
type TypeReference struct {
	nodeBase
	Target Identifier
}

func (*TypeReference) Kind() Kind { return KindTypeReference }

// Definitions is a transparent grouping node: its children are registered in
// the type dictionary, but the node itself carries no emitted output.
type Definitions struct {
	nodeBase
	Children []Path
}

func (*Definitions) Kind() Kind { return KindDefinitions }
