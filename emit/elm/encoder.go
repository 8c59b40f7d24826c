package elm

import (
	"fmt"
	"strings"

	"github.com/jsonschemair/jsonschemair"
)

func encoderName(typeName string) string {
	return "encode" + typeName
}

func baseEncoder(b jsonschemair.BaseType) string {
	switch b {
	case jsonschemair.TypeString:
		return "Encode.string"
	case jsonschemair.TypeInteger:
		return "Encode.int"
	case jsonschemair.TypeNumber:
		return "Encode.float"
	case jsonschemair.TypeBoolean:
		return "Encode.bool"
	case jsonschemair.TypeNull:
		return "(\\_ -> Encode.null)"
	default:
		return "Encode.null"
	}
}

// encoderExpr resolves id within current and renders the "T -> Value"
// encoder function expression at a use site.
func (e *renderer) encoderExpr(current *jsonschemair.SchemaDefinition, id jsonschemair.Identifier) string {
	result := jsonschemair.Resolve(id, current, e.schemaDict)
	if result.Unresolved {
		return "(\\_ -> Encode.null)"
	}
	return e.encoderExprForNode(result.Schema, result.Node)
}

// encoderExprForNode renders the "T -> Value" encoder function expression
// for a node owned by schema, module-qualified when schema is not the one
// currently being rendered.
func (e *renderer) encoderExprForNode(schema *jsonschemair.SchemaDefinition, node jsonschemair.Node) string {
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return baseEncoder(n.BaseType)
	case *jsonschemair.Array:
		return "(Encode.list " + parenIfNeeded(e.encoderExpr(schema, jsonschemair.PathIdentifier(n.Item))) + ")"
	case *jsonschemair.TypeReference:
		return e.encoderExpr(schema, n.Target)
	default:
		return e.moduleQualify(schema, encoderName(e.nameFor(schema, node)))
	}
}

// renderEncoder renders the top-level "encodeX : X -> Value" declaration.
func (e *renderer) renderEncoder(name string, node jsonschemair.Node) string {
	fn := encoderName(name)
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return fmt.Sprintf("%s : %s -> Value\n%s value =\n    %s value\n", fn, name, fn, baseEncoder(n.BaseType))

	case *jsonschemair.Enum:
		return e.renderEnumEncoder(fn, name, n)

	case *jsonschemair.Object:
		return e.renderObjectEncoder(fn, name, n)

	case *jsonschemair.Array:
		elemEncoder := e.encoderExpr(e.schema, jsonschemair.PathIdentifier(n.Item))
		return fmt.Sprintf("%s : %s -> Value\n%s value =\n    Encode.list %s value\n", fn, name, fn, parenIfNeeded(elemEncoder))

	case *jsonschemair.Tuple:
		return e.renderTupleEncoder(fn, name, n)

	case *jsonschemair.Union:
		return e.renderUnionEncoder(fn, name, n.Bases)

	case *jsonschemair.Composition:
		return e.renderCompositionEncoder(fn, name, n)

	default:
		return ""
	}
}

func (e *renderer) renderEnumEncoder(fn, name string, n *jsonschemair.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s -> Value\n%s value =\n    Encode.string\n        (case value of\n", fn, name, fn)
	for i, v := range n.Values {
		fmt.Fprintf(&b, "            %s ->\n                %q\n\n", variantName(name, i, v), v)
	}
	b.WriteString("        )\n")
	return b.String()
}

func (e *renderer) renderObjectEncoder(fn, name string, n *jsonschemair.Object) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s -> Value\n%s value =\n    Encode.object\n", fn, name, fn)
	names := n.PropertyNames()
	for i, propName := range names {
		open := "["
		if i > 0 {
			open = ","
		}
		fieldPath, _ := n.Properties.Get(propName)
		fieldEncoder := e.encoderExpr(e.schema, jsonschemair.PathIdentifier(fieldPath))
		field := jsonschemair.FieldName(propName, false)
		if n.Required[propName] {
			fmt.Fprintf(&b, "        %s ( %q, %s value.%s )\n", open, propName, parenIfNeeded(fieldEncoder), field)
		} else {
			fmt.Fprintf(&b, "        %s ( %q, value.%s |> Maybe.map %s |> Maybe.withDefault Encode.null )\n", open, propName, field, parenIfNeeded(fieldEncoder))
		}
	}
	if len(names) == 0 {
		b.WriteString("        [\n")
	}
	b.WriteString("        ]\n")
	return b.String()
}

func (e *renderer) renderTupleEncoder(fn, name string, n *jsonschemair.Tuple) string {
	var b strings.Builder
	if len(n.Items) <= 3 {
		names := indexNames(len(n.Items))
		fmt.Fprintf(&b, "%s : %s -> Value\n%s ( %s ) =\n    Encode.list identity\n", fn, name, fn, strings.Join(names, ", "))
		b.WriteString("        [")
		for i, item := range n.Items {
			sep := ""
			if i > 0 {
				sep = ","
			}
			itemEncoder := e.encoderExpr(e.schema, jsonschemair.PathIdentifier(item))
			fmt.Fprintf(&b, " %s %s %s", sep, parenIfNeeded(itemEncoder), names[i])
		}
		b.WriteString(" ]\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%s : %s -> Value\n%s value =\n    Encode.list identity\n        [", fn, name, fn)
	for i, item := range n.Items {
		sep := ""
		if i > 0 {
			sep = ","
		}
		itemEncoder := e.encoderExpr(e.schema, jsonschemair.PathIdentifier(item))
		fmt.Fprintf(&b, " %s %s value.item%d", sep, parenIfNeeded(itemEncoder), i)
	}
	b.WriteString(" ]\n")
	return b.String()
}

func (e *renderer) renderUnionEncoder(fn, name string, bases []jsonschemair.BaseType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s -> Value\n%s value =\n    case value of\n", fn, name, fn)
	for i, base := range bases {
		fmt.Fprintf(&b, "        %s inner ->\n            %s inner\n\n", variantName(name, i, string(base)), baseEncoder(base))
	}
	return b.String()
}

func (e *renderer) renderCompositionEncoder(fn, name string, n *jsonschemair.Composition) string {
	if n.CompositionKind == jsonschemair.KindAllOf {
		return e.renderAllOfEncoder(fn, name, n)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s -> Value\n%s value =\n    case value of\n", fn, name, fn)
	for i, alt := range n.Alternatives {
		altEncoder := e.encoderExpr(e.schema, jsonschemair.PathIdentifier(alt))
		fmt.Fprintf(&b, "        %s inner ->\n            %s inner\n\n", variantName(name, i, ""), parenIfNeeded(altEncoder))
	}
	return b.String()
}

func (e *renderer) renderAllOfEncoder(fn, name string, n *jsonschemair.Composition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s : %s -> Value\n%s value =\n    Encode.object\n", fn, name, fn)
	wrote := false
	for _, alt := range n.Alternatives {
		result := jsonschemair.Resolve(jsonschemair.PathIdentifier(alt), e.schema, e.schemaDict)
		obj, ok := result.Node.(*jsonschemair.Object)
		if result.Unresolved || !ok {
			continue
		}
		for _, propName := range obj.PropertyNames() {
			open := "["
			if wrote {
				open = ","
			}
			fieldPath, _ := obj.Properties.Get(propName)
			fieldEncoder := e.encoderExpr(result.Schema, jsonschemair.PathIdentifier(fieldPath))
			field := jsonschemair.FieldName(propName, false)
			fmt.Fprintf(&b, "        %s ( %q, %s value.%s )\n", open, propName, parenIfNeeded(fieldEncoder), field)
			wrote = true
		}
	}
	if !wrote {
		b.WriteString("        [\n")
	}
	b.WriteString("        ]\n")
	return b.String()
}
