package jsonschemair

import "strconv"

// parseComposition builds an allOf/anyOf/oneOf node. Children are named by
// positional index, matching parseTuple.
func parseComposition(raw *RawSchema, ctx parseContext, kind Kind) (Node, ParserResult) {
	var alternatives []*RawSchema
	switch kind {
	case KindAllOf:
		alternatives = raw.AllOf
	case KindAnyOf:
		alternatives = raw.AnyOf
	default:
		alternatives = raw.OneOf
	}

	result := newParserResult()
	paths := make([]Path, 0, len(alternatives))
	for i, alt := range alternatives {
		altCtx := ctx.child(strconv.Itoa(i))
		_, childResult := parseNode(alt, altCtx)
		result.merge(childResult)
		paths = append(paths, altCtx.path)
	}

	node := &Composition{
		nodeBase:        nodeBase{path: ctx.path},
		CompositionKind: kind,
		Alternatives:    paths,
	}
	return node, result
}
