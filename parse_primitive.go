package jsonschemair

// parsePrimitive builds a Primitive node. Primitives have no children.
func parsePrimitive(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	baseType, _ := raw.Type.SinglePrimitive()
	node := &Primitive{
		nodeBase: nodeBase{path: ctx.path},
		BaseType: baseType,
	}
	return node, newParserResult()
}

// parseUnion builds a Union node from a "type" array of primitive bases.
// Like Primitive, a Union is a leaf: it has no children to recurse into.
func parseUnion(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	node := &Union{
		nodeBase: nodeBase{path: ctx.path},
		Bases:    append([]BaseType(nil), raw.Type.Values...),
	}
	return node, newParserResult()
}
