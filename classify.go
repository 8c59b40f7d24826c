package jsonschemair

import "fmt"

// classify decides, from the shape of a schema node, which IR kind it
// represents. The order below is fixed (spec.md §4.2) so ambiguous nodes
// resolve deterministically: a node with both "enum" and "oneOf" is a
// composition, not an enum, because composition is checked first.
func classify(raw *RawSchema, isRoot bool) (Kind, error) {
	switch {
	case len(raw.AllOf) > 0:
		return KindAllOf, nil
	case len(raw.AnyOf) > 0:
		return KindAnyOf, nil
	case len(raw.OneOf) > 0:
		return KindOneOf, nil
	case len(raw.Enum) > 0:
		return KindEnum, nil
	case raw.Type.Is(TypeArray) && raw.Items != nil:
		if raw.Items.IsTuple() {
			return KindTuple, nil
		}
		return KindArray, nil
	case raw.Type.Is(TypeObject) || (raw.Properties != nil && raw.Properties.Len() > 0):
		return KindObject, nil
	case raw.Type.IsMulti():
		return KindUnion, nil
	default:
		if _, ok := raw.Type.SinglePrimitive(); ok {
			return KindPrimitive, nil
		}
		if raw.Ref != "" {
			return KindTypeReference, nil
		}
		if isRoot && raw.Definitions != nil && raw.Definitions.Len() > 0 {
			return KindDefinitions, nil
		}
		return 0, fmt.Errorf("unknown_node_type")
	}
}

func classificationDiagnostic(identifier, name string) Diagnostic {
	return newDiagnostic(UnknownNodeType, identifier,
		"could not classify schema node %q: none of the recognized shapes (composition, enum, array, tuple, object, union, primitive, $ref, definitions) matched", name)
}
