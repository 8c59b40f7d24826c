package jsonschemair

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// parseObject builds an Object node. Properties are parsed as child nodes
// named after the property key; the IR holds only their Paths, never the
// inlined child node values (spec.md §4.3).
func parseObject(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	result := newParserResult()

	properties := orderedmap.New[string, Path]()
	if raw.Properties != nil {
		for pair := raw.Properties.Oldest(); pair != nil; pair = pair.Next() {
			propCtx := ctx.child(pair.Key)
			_, childResult := parseNode(pair.Value, propCtx)
			result.merge(childResult)
			properties.Set(pair.Key, propCtx.path)
		}
	}

	required := make(map[string]bool, len(raw.Required))
	for _, name := range raw.Required {
		required[name] = true
		if _, ok := properties.Get(name); !ok {
			result.Errors = append(result.Errors, newDiagnostic(MissingRequiredPropertyTarget, ctx.path.String(),
				"required property %q is not declared in properties", name))
		}
	}

	node := &Object{
		nodeBase:   nodeBase{path: ctx.path},
		Required:   required,
		Properties: properties,
	}
	return node, result
}
