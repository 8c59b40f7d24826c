package jsonschemair

import "net/url"

// parseTypeReference builds a TypeReference node. It has no children; the
// "$ref" string is stored as a URI if it has a scheme, else as a Path
// (spec.md §4.3).
func parseTypeReference(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	var target Identifier
	if parsed, err := url.Parse(raw.Ref); err == nil && parsed.Scheme != "" {
		u, _ := ParseURI(raw.Ref)
		target = URIIdentifier(u)
	} else if p, err := PathFromString(raw.Ref); err == nil {
		target = PathIdentifier(p)
	} else {
		// Not shaped like "#/a/b" and not scheme-qualified. Keep it as a
		// literal path forest node anyway; resolution reports
		// unresolved_reference rather than this sub-parser crashing
		// (spec.md §3 invariant 3).
		target = PathIdentifier(pathFromSegments(splitNonEmpty(raw.Ref, '/')))
	}

	node := &TypeReference{
		nodeBase: nodeBase{path: ctx.path},
		Target:   target,
	}
	return node, newParserResult()
}

func splitNonEmpty(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
