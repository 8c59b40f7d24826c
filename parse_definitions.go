package jsonschemair

// parseDefinitionsChildren registers each member of raw.Definitions into the
// dictionary without producing a Definitions node itself. Used when a node's
// primary classification is something other than Definitions but it still
// carries a sibling "definitions" block (the common "type": "object" root
// that also hosts $ref targets).
func parseDefinitionsChildren(raw *RawSchema, ctx parseContext) ParserResult {
	result := newParserResult()
	definitionsCtx := ctx.child("definitions")
	for pair := raw.Definitions.Oldest(); pair != nil; pair = pair.Next() {
		_, childResult := parseNode(pair.Value, definitionsCtx.child(pair.Key))
		result.merge(childResult)
	}
	return result
}

// parseDefinitions builds a Definitions node: a transparent grouping whose
// children are registered but which itself carries no emitted output
// (spec.md §3). This only happens when "definitions" is a node's sole
// content (spec.md §4.2 step 8); the mixed case is handled by
// parseDefinitionsChildren instead.
func parseDefinitions(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	result := newParserResult()
	definitionsCtx := ctx.child("definitions")
	children := make([]Path, 0, raw.Definitions.Len())
	for pair := raw.Definitions.Oldest(); pair != nil; pair = pair.Next() {
		childCtx := definitionsCtx.child(pair.Key)
		_, childResult := parseNode(pair.Value, childCtx)
		result.merge(childResult)
		children = append(children, childCtx.path)
	}

	node := &Definitions{
		nodeBase: nodeBase{path: ctx.path},
		Children: children,
	}
	return node, result
}
