package jsonschemair

import (
	"encoding/json"
	"fmt"
)

// parseEnum builds an Enum node. Per spec.md §4.3, enum children are NOT
// recursed into — the primitive base and the raw value list are captured
// directly from the "enum" array.
func parseEnum(raw *RawSchema, ctx parseContext) (Node, ParserResult) {
	result := newParserResult()

	baseType := TypeString
	if single, ok := raw.Type.SinglePrimitive(); ok {
		baseType = single
	}

	values := make([]string, 0, len(raw.Enum))
	seen := make(map[string]bool, len(raw.Enum))
	for _, rawVal := range raw.Enum {
		literal, mismatch := decodeEnumLiteral(rawVal, baseType)
		if mismatch {
			result.Errors = append(result.Errors, newDiagnostic(InvalidEnumValue, ctx.path.String(),
				"enum value %s does not match declared base type %q", string(rawVal), baseType))
		}
		if seen[literal] {
			continue // invariant 5 (pairwise distinct): first occurrence wins
		}
		seen[literal] = true
		values = append(values, literal)
	}

	node := &Enum{
		nodeBase: nodeBase{path: ctx.path},
		BaseType: baseType,
		Values:   values,
	}
	return node, result
}

// decodeEnumLiteral renders a raw enum entry as its canonical string form
// and reports whether its runtime JSON type mismatches base.
func decodeEnumLiteral(raw json.RawMessage, base BaseType) (literal string, mismatch bool) {
	switch base {
	case TypeString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw), true
		}
		return s, false
	case TypeInteger:
		var n int64
		if err := json.Unmarshal(raw, &n); err != nil {
			return string(raw), true
		}
		return fmt.Sprintf("%d", n), false
	case TypeNumber:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return string(raw), true
		}
		return fmt.Sprintf("%g", f), false
	case TypeBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return string(raw), true
		}
		return fmt.Sprintf("%t", b), false
	case TypeNull:
		if string(raw) != "null" {
			return string(raw), true
		}
		return "null", false
	default:
		return string(raw), false
	}
}
