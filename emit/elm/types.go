package elm

import (
	"fmt"
	"strings"

	"github.com/jsonschemair/jsonschemair"
)

// baseType maps a JSON Schema primitive base to its Elm core type.
func baseType(b jsonschemair.BaseType) string {
	switch b {
	case jsonschemair.TypeString:
		return "String"
	case jsonschemair.TypeInteger:
		return "Int"
	case jsonschemair.TypeNumber:
		return "Float"
	case jsonschemair.TypeBoolean:
		return "Bool"
	case jsonschemair.TypeNull:
		return "()"
	default:
		return "Value"
	}
}

// typeRefExpr renders the Elm type expression used at a use site (a record
// field, a list element, a tuple slot) for the node named by id, resolved
// within current: either the declared type name of the node id resolves to
// (module-qualified per spec.md §4.6 when it lives in another schema), or a
// degraded "Value" placeholder with an unresolved_reference diagnostic
// (cyclic_reference when the chain loops) (spec.md §7).
func (e *renderer) typeRefExpr(current *jsonschemair.SchemaDefinition, id jsonschemair.Identifier) string {
	result := jsonschemair.Resolve(id, current, e.schemaDict)
	if result.Unresolved {
		kind := jsonschemair.UnresolvedReference
		if result.Reason == jsonschemair.ReasonCyclic {
			kind = jsonschemair.CyclicReference
		}
		e.diag(kind, id.String(), "could not resolve %q while rendering a use site; emitting Value placeholder", id.String())
		return "Value"
	}
	return e.typeExprForNode(result.Schema, result.Node)
}

// typeExprForNode renders the Elm type expression a node owned by schema
// denotes at a use site. Named (dictionary-registered) nodes use their
// declared type name, module-qualified when schema is not the one currently
// being rendered. Primitives map to their Elm core type and arrays are
// rendered inline as "List <element>"; unions, tuples and every other kind
// use their declared name.
func (e *renderer) typeExprForNode(schema *jsonschemair.SchemaDefinition, node jsonschemair.Node) string {
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return baseType(n.BaseType)
	case *jsonschemair.Array:
		return "List " + parenIfNeeded(e.typeRefExpr(schema, jsonschemair.PathIdentifier(n.Item)))
	case *jsonschemair.Union:
		return e.qualifiedName(schema, node)
	case *jsonschemair.TypeReference:
		return e.typeRefExpr(schema, n.Target)
	default:
		// Enum, Object, Tuple, Composition are always named declarations.
		return e.qualifiedName(schema, node)
	}
}

func parenIfNeeded(s string) string {
	if strings.Contains(s, " ") {
		return "(" + s + ")"
	}
	return s
}

// nameFor returns the bare (unqualified) declared Elm type name for a
// dictionary-registered node owned by schema, preferring schema's title when
// node is that schema's root.
func (e *renderer) nameFor(schema *jsonschemair.SchemaDefinition, node jsonschemair.Node) string {
	title := ""
	if node.Path().Equal(jsonschemair.RootPath()) {
		title = schema.Title
	}
	return jsonschemair.TypeName(node.Path(), title)
}

// qualifiedName returns node's declared Elm type name, module-qualified
// (spec.md §4.6: "<root>.<schema title>.<type name>") when node is owned by
// a schema other than the one currently being rendered. Qualifying a
// cross-schema name records the owning module as an import.
func (e *renderer) qualifiedName(schema *jsonschemair.SchemaDefinition, node jsonschemair.Node) string {
	return e.moduleQualify(schema, e.nameFor(schema, node))
}

// moduleQualify prefixes ident with schema's module name and records the
// import, unless schema is the schema currently being rendered.
func (e *renderer) moduleQualify(schema *jsonschemair.SchemaDefinition, ident string) string {
	if schema == e.schema {
		return ident
	}
	module := ModuleName(schema, e.cfg.RootModule)
	e.addImport(module)
	return module + "." + ident
}

// addImport records module in first-occurrence order, deduplicated.
func (e *renderer) addImport(module string) {
	for _, m := range e.imports {
		if m == module {
			return
		}
	}
	e.imports = append(e.imports, module)
}

// renderTypeDecl renders the top-level type alias or custom type
// declaration for one dictionary entry (spec.md §4.6).
func (e *renderer) renderTypeDecl(name string, node jsonschemair.Node) string {
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return fmt.Sprintf("type alias %s =\n    %s\n", name, baseType(n.BaseType))

	case *jsonschemair.Enum:
		return e.renderEnum(name, n)

	case *jsonschemair.Object:
		return e.renderObject(name, n)

	case *jsonschemair.Array:
		return fmt.Sprintf("type alias %s =\n    List %s\n", name, parenIfNeeded(e.typeRefExpr(e.schema, jsonschemair.PathIdentifier(n.Item))))

	case *jsonschemair.Tuple:
		return e.renderTuple(name, n)

	case *jsonschemair.Union:
		return e.renderUnion(name, n.Bases)

	case *jsonschemair.Composition:
		return e.renderComposition(name, n)

	case *jsonschemair.TypeReference, *jsonschemair.Definitions:
		return ""

	default:
		return ""
	}
}

func variantName(typeName string, i int, label string) string {
	if label == "" {
		label = fmt.Sprintf("Case%d", i+1)
	}
	return typeName + jsonschemair.TypeName(jsonschemair.RootPath(), label)
}

func (e *renderer) renderEnum(name string, n *jsonschemair.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s\n", name)
	for i, v := range n.Values {
		sep := "="
		if i > 0 {
			sep = "|"
		}
		fmt.Fprintf(&b, "    %s %s\n", sep, variantName(name, i, v))
	}
	return b.String()
}

func (e *renderer) renderObject(name string, n *jsonschemair.Object) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type alias %s =\n", name)
	names := n.PropertyNames()
	for i, propName := range names {
		sep := "{"
		if i > 0 {
			sep = ","
		}
		fieldPath, _ := n.Properties.Get(propName)
		typeExpr := e.typeRefExpr(e.schema, jsonschemair.PathIdentifier(fieldPath))
		if !n.Required[propName] {
			typeExpr = "Maybe " + parenIfNeeded(typeExpr)
		}
		fmt.Fprintf(&b, "    %s %s : %s\n", sep, jsonschemair.FieldName(propName, false), typeExpr)
	}
	if len(names) == 0 {
		b.WriteString("    {\n")
	}
	b.WriteString("    }\n")
	return b.String()
}

func (e *renderer) renderTuple(name string, n *jsonschemair.Tuple) string {
	elems := make([]string, len(n.Items))
	for i, item := range n.Items {
		elems[i] = e.typeRefExpr(e.schema, jsonschemair.PathIdentifier(item))
	}
	if len(elems) <= 3 {
		return fmt.Sprintf("type alias %s =\n    ( %s )\n", name, strings.Join(elems, ", "))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "type alias %s =\n", name)
	for i, elem := range elems {
		sep := "{"
		if i > 0 {
			sep = ","
		}
		fmt.Fprintf(&b, "    %s item%d : %s\n", sep, i, elem)
	}
	b.WriteString("    }\n")
	return b.String()
}

func (e *renderer) renderUnion(name string, bases []jsonschemair.BaseType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s\n", name)
	for i, base := range bases {
		sep := "="
		if i > 0 {
			sep = "|"
		}
		fmt.Fprintf(&b, "    %s %s %s\n", sep, variantName(name, i, string(base)), baseType(base))
	}
	return b.String()
}

func (e *renderer) renderComposition(name string, n *jsonschemair.Composition) string {
	if n.CompositionKind == jsonschemair.KindAllOf {
		return e.renderAllOf(name, n)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "type %s\n", name)
	for i, alt := range n.Alternatives {
		sep := "="
		if i > 0 {
			sep = "|"
		}
		typeExpr := e.typeRefExpr(e.schema, jsonschemair.PathIdentifier(alt))
		fmt.Fprintf(&b, "    %s %s %s\n", sep, variantName(name, i, ""), parenIfNeeded(typeExpr))
	}
	return b.String()
}

// renderAllOf merges every alternative's fields into a single record, since
// allOf's intersection semantics have no natural sum-type rendering.
func (e *renderer) renderAllOf(name string, n *jsonschemair.Composition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type alias %s =\n", name)
	wrote := false
	for _, alt := range n.Alternatives {
		result := jsonschemair.Resolve(jsonschemair.PathIdentifier(alt), e.schema, e.schemaDict)
		if result.Unresolved {
			e.diag(jsonschemair.UnresolvedReference, alt.String(), "allOf member %q did not resolve; dropped from merged record", alt.String())
			continue
		}
		obj, ok := result.Node.(*jsonschemair.Object)
		if !ok {
			e.diag(jsonschemair.UnresolvedReference, alt.String(), "allOf member %q is not an object; dropped from merged record", alt.String())
			continue
		}
		for _, propName := range obj.PropertyNames() {
			sep := "{"
			if wrote {
				sep = ","
			}
			fieldPath, _ := obj.Properties.Get(propName)
			typeExpr := e.typeRefExpr(result.Schema, jsonschemair.PathIdentifier(fieldPath))
			if !obj.Required[propName] {
				typeExpr = "Maybe " + parenIfNeeded(typeExpr)
			}
			fmt.Fprintf(&b, "    %s %s : %s\n", sep, jsonschemair.FieldName(propName, false), typeExpr)
			wrote = true
		}
	}
	if !wrote {
		b.WriteString("    {\n")
	}
	b.WriteString("    }\n")
	return b.String()
}
