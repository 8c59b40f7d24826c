package jsonschemair

// parseContext threads identity (inherited parent URI and current path) down
// the tree, per spec.md §4.3.
type parseContext struct {
	parentURI URI
	path      Path
	isRoot    bool
}

func (c parseContext) child(name string) parseContext {
	return parseContext{parentURI: c.parentURI, path: c.path.AddChild(name), isRoot: false}
}

// resolveIdentity applies the id-resolution rules every sub-parser follows
// before recursing (spec.md §4.3):
//
//   - if the node carries an id, parse it as a URI. A urn-scheme id is used
//     as-is; any other scheme is merged onto the inherited parent URI via
//     RFC 3986 reference resolution.
//   - if absent, the node inherits the parent URI unchanged.
//   - the parent URI passed to children is the node's own id if it has one
//     with a non-urn scheme; otherwise it is the inherited parent URI
//     unchanged (a urn id is not propagated down as a base for merging).
func resolveIdentity(raw *RawSchema, ctx parseContext) (ownURI, childParentURI URI, diags []Diagnostic) {
	idStr := raw.EffectiveID()
	if idStr == "" {
		return ctx.parentURI, ctx.parentURI, nil
	}

	parsed, err := ParseURI(idStr)
	if err != nil {
		diags = append(diags, newDiagnostic(InvalidIDURI, ctx.path.String(),
			"id %q is not a valid URI: %v", idStr, err))
		return ctx.parentURI, ctx.parentURI, diags
	}

	if parsed.IsURN() {
		return parsed, ctx.parentURI, nil
	}

	merged := ctx.parentURI.ResolveReference(parsed)
	return merged, merged, nil
}

// parseNode is the single entry point every sub-parser recurses through. It
// classifies the node, resolves its identity, dispatches to the
// kind-specific sub-parser, and registers the resulting node under its Path
// key and (when an id is in effect) its absolute-URI alias.
func parseNode(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	kind, err := classify(raw, ctx.isRoot)
	if err != nil {
		result := newParserResult()
		result.Errors = append(result.Errors, classificationDiagnostic(ctx.path.String(), ctx.path.Name()))
		return nil, result
	}

	ownURI, childParentURI, idDiags := resolveIdentity(raw, ctx)
	childCtx := parseContext{parentURI: childParentURI, path: ctx.path, isRoot: ctx.isRoot}

	var node Node
	var children ParserResult
	switch kind {
	case KindPrimitive:
		node, children = parsePrimitive(raw, childCtx)
	case KindEnum:
		node, children = parseEnum(raw, childCtx)
	case KindObject:
		node, children = parseObject(raw, childCtx)
	case KindArray:
		node, children = parseArray(raw, childCtx)
	case KindTuple:
		node, children = parseTuple(raw, childCtx)
	case KindUnion:
		node, children = parseUnion(raw, childCtx)
	case KindOneOf, KindAnyOf, KindAllOf:
		node, children = parseComposition(raw, childCtx, kind)
	case KindTypeReference:
		node, children = parseTypeReference(raw, childCtx)
	case KindDefinitions:
		node, children = parseDefinitions(raw, childCtx)
	}

	result := newParserResult()
	result.merge(children)
	result.Errors = append(result.Errors, idDiags...)

	// A node's own kind may not be Definitions even though it carries a
	// sibling "definitions" block (the common "type": "object" root that
	// also hosts $ref targets). Those children are registered regardless of
	// the node's primary kind; spec.md §4.2 step 8 only covers the case
	// where definitions is the node's *sole* content.
	if kind != KindDefinitions && raw.Definitions != nil && raw.Definitions.Len() > 0 {
		result.merge(parseDefinitionsChildren(raw, childCtx))
	}

	if node != nil {
		result.register(ctx.path.String(), node)
		if ownURI.HasScheme() {
			result.register(aliasKey(ownURI, ctx), node)
		}
	}
	return node, result
}

func aliasKey(ownURI URI, ctx parseContext) string {
	if ctx.isRoot {
		return ownURI.Base()
	}
	return ownURI.Base() + "#" + ctx.path.Name()
}
