package elm

import (
	"fmt"
	"strings"

	"github.com/jsonschemair/jsonschemair"
)

func decoderName(typeName string) string {
	return jsonschemair.FieldName(typeName, false) + "Decoder"
}

// baseDecoder returns the elm/json Decoder expression for a primitive base.
func baseDecoder(b jsonschemair.BaseType) string {
	switch b {
	case jsonschemair.TypeString:
		return "Decode.string"
	case jsonschemair.TypeInteger:
		return "Decode.int"
	case jsonschemair.TypeNumber:
		return "Decode.float"
	case jsonschemair.TypeBoolean:
		return "Decode.bool"
	case jsonschemair.TypeNull:
		return "(Decode.null ())"
	default:
		return "Decode.value"
	}
}

// decoderExpr renders the Decoder expression for a use site (as opposed to
// a top-level "name : Decoder T" declaration), resolving id within current.
func (e *renderer) decoderExpr(current *jsonschemair.SchemaDefinition, id jsonschemair.Identifier) string {
	result := jsonschemair.Resolve(id, current, e.schemaDict)
	if result.Unresolved {
		return "Decode.value"
	}
	return e.decoderExprForNode(result.Schema, result.Node)
}

func (e *renderer) decoderExprForNode(schema *jsonschemair.SchemaDefinition, node jsonschemair.Node) string {
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return baseDecoder(n.BaseType)
	case *jsonschemair.Array:
		return "(Decode.list " + parenIfNeeded(e.decoderExpr(schema, jsonschemair.PathIdentifier(n.Item))) + ")"
	case *jsonschemair.TypeReference:
		return e.decoderExpr(schema, n.Target)
	default:
		return e.moduleQualify(schema, decoderName(e.nameFor(schema, node)))
	}
}

// renderDecoder renders the top-level "xDecoder : Decoder X" declaration for
// one dictionary entry, in the elm-json-decode-pipeline idiom the Elm
// ecosystem's NoRedInk package established.
func (e *renderer) renderDecoder(name string, node jsonschemair.Node) string {
	fn := decoderName(name)
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return fmt.Sprintf("%s : Decoder %s\n%s =\n    %s\n", fn, name, fn, baseDecoder(n.BaseType))

	case *jsonschemair.Enum:
		return e.renderEnumDecoder(fn, name, n)

	case *jsonschemair.Object:
		return e.renderObjectDecoder(fn, name, n)

	case *jsonschemair.Array:
		elem := e.decoderExpr(e.schema, jsonschemair.PathIdentifier(n.Item))
		return fmt.Sprintf("%s : Decoder %s\n%s =\n    Decode.list %s\n", fn, name, fn, parenIfNeeded(elem))

	case *jsonschemair.Tuple:
		return e.renderTupleDecoder(fn, name, n)

	case *jsonschemair.Union:
		return e.renderUnionDecoder(fn, name, n.Bases)

	case *jsonschemair.Composition:
		return e.renderCompositionDecoder(fn, name, n)

	default:
		return ""
	}
}

func (e *renderer) renderEnumDecoder(fn, name string, n *jsonschemair.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : Decoder %s\n%s =\n    Decode.string\n        |> Decode.andThen\n            (\\raw ->\n                case raw of\n", fn, name, fn)
	for i, v := range n.Values {
		fmt.Fprintf(&b, "                    %q ->\n                        Decode.succeed %s\n\n", v, variantName(name, i, v))
	}
	b.WriteString("                    _ ->\n                        Decode.fail (\"Unknown " + strings.ToLower(n.Name()) + " type: \" ++ raw)\n            )\n")
	return b.String()
}

func (e *renderer) renderObjectDecoder(fn, name string, n *jsonschemair.Object) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : Decoder %s\n%s =\n    Decode.succeed %s\n", fn, name, fn, name)
	for _, propName := range n.PropertyNames() {
		fieldPath, _ := n.Properties.Get(propName)
		fieldDecoder := e.decoderExpr(e.schema, jsonschemair.PathIdentifier(fieldPath))
		if n.Required[propName] {
			fmt.Fprintf(&b, "        |> required %q %s\n", propName, parenIfNeeded(fieldDecoder))
		} else {
			fmt.Fprintf(&b, "        |> optional %q (Decode.map Just %s) Nothing\n", propName, parenIfNeeded(fieldDecoder))
		}
	}
	return b.String()
}

func (e *renderer) renderTupleDecoder(fn, name string, n *jsonschemair.Tuple) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : Decoder %s\n%s =\n    Decode.map%d\n", fn, name, fn, len(n.Items))
	tupleCtor := "(\\" + strings.Join(indexNames(len(n.Items)), " ") + " -> ( " + strings.Join(indexNames(len(n.Items)), ", ") + " ))"
	if len(n.Items) > 3 {
		fields := make([]string, len(n.Items))
		for i := range n.Items {
			fields[i] = fmt.Sprintf("item%d = %s", i, indexNames(len(n.Items))[i])
		}
		tupleCtor = "(\\" + strings.Join(indexNames(len(n.Items)), " ") + " -> { " + strings.Join(fields, ", ") + " })"
	}
	fmt.Fprintf(&b, "        %s\n", tupleCtor)
	for i, item := range n.Items {
		fmt.Fprintf(&b, "        (Decode.index %d %s)\n", i, parenIfNeeded(e.decoderExpr(e.schema, jsonschemair.PathIdentifier(item))))
	}
	return b.String()
}

func indexNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("v%d", i)
	}
	return out
}

func (e *renderer) renderUnionDecoder(fn, name string, bases []jsonschemair.BaseType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : Decoder %s\n%s =\n    Decode.oneOf\n", fn, name, fn)
	for i, base := range bases {
		fmt.Fprintf(&b, "        [ Decode.map %s %s\n", variantName(name, i, string(base)), baseDecoder(base))
	}
	b.WriteString("        ]\n")
	return b.String()
}

func (e *renderer) renderCompositionDecoder(fn, name string, n *jsonschemair.Composition) string {
	if n.CompositionKind == jsonschemair.KindAllOf {
		return fmt.Sprintf("%s : Decoder %s\n%s =\n    Decode.succeed %s\n", fn, name, fn, name) +
			e.allOfDecoderPipeline(name, n)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s : Decoder %s\n%s =\n    Decode.oneOf\n", fn, name, fn)
	for i, alt := range n.Alternatives {
		altDecoder := e.decoderExpr(e.schema, jsonschemair.PathIdentifier(alt))
		open := "["
		if i > 0 {
			open = ","
		}
		fmt.Fprintf(&b, "        %s Decode.map %s %s\n", open, variantName(name, i, ""), parenIfNeeded(altDecoder))
	}
	b.WriteString("        ]\n")
	return b.String()
}

func (e *renderer) allOfDecoderPipeline(name string, n *jsonschemair.Composition) string {
	var b strings.Builder
	for _, alt := range n.Alternatives {
		result := jsonschemair.Resolve(jsonschemair.PathIdentifier(alt), e.schema, e.schemaDict)
		obj, ok := result.Node.(*jsonschemair.Object)
		if result.Unresolved || !ok {
			continue
		}
		for _, propName := range obj.PropertyNames() {
			fieldPath, _ := obj.Properties.Get(propName)
			fieldDecoder := e.decoderExpr(result.Schema, jsonschemair.PathIdentifier(fieldPath))
			if obj.Required[propName] {
				fmt.Fprintf(&b, "        |> required %q %s\n", propName, parenIfNeeded(fieldDecoder))
			} else {
				fmt.Fprintf(&b, "        |> optional %q (Decode.map Just %s) Nothing\n", propName, parenIfNeeded(fieldDecoder))
			}
		}
	}
	return b.String()
}
