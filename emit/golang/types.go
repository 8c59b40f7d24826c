package golang

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/jsonschemair/jsonschemair"
)

func baseGoType(b jsonschemair.BaseType) string {
	switch b {
	case jsonschemair.TypeString:
		return "string"
	case jsonschemair.TypeInteger:
		return "int"
	case jsonschemair.TypeNumber:
		return "float64"
	case jsonschemair.TypeBoolean:
		return "bool"
	default:
		return "any"
	}
}

// typeExprForID renders the Go type expression used at a use site for the
// node id resolves to, degrading to "any" with an unresolved_reference
// diagnostic (cyclic_reference when the chain loops) when it doesn't
// (spec.md §7).
func (r *renderer) typeExprForID(id jsonschemair.Identifier) jen.Code {
	result := jsonschemair.Resolve(id, r.schema, r.schemaDict)
	if result.Unresolved {
		kind := jsonschemair.UnresolvedReference
		if result.Reason == jsonschemair.ReasonCyclic {
			kind = jsonschemair.CyclicReference
		}
		r.diag(kind, id.String(), "could not resolve %q while rendering a use site; emitting any placeholder", id.String())
		return jen.Id("any")
	}
	return r.typeExprForNode(result.Node)
}

func (r *renderer) typeExprForNode(node jsonschemair.Node) jen.Code {
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return jen.Id(baseGoType(n.BaseType))
	case *jsonschemair.Array:
		return jen.Index().Add(r.typeExprForID(jsonschemair.PathIdentifier(n.Item)))
	case *jsonschemair.Union:
		return jen.Id("any")
	case *jsonschemair.TypeReference:
		return r.typeExprForID(n.Target)
	default:
		return jen.Id(r.nameFor(node))
	}
}

// renderTypeDecl renders the top-level declaration for one dictionary entry.
func (r *renderer) renderTypeDecl(name string, node jsonschemair.Node) jen.Code {
	switch n := node.(type) {
	case *jsonschemair.Primitive:
		return jen.Type().Id(name).Id(baseGoType(n.BaseType)).Line()

	case *jsonschemair.Enum:
		return r.renderEnum(name, n)

	case *jsonschemair.Object:
		return r.renderObject(name, n)

	case *jsonschemair.Array:
		elem := r.typeExprForID(jsonschemair.PathIdentifier(n.Item))
		return jen.Type().Id(name).Index().Add(elem).Line()

	case *jsonschemair.Tuple:
		return r.renderTuple(name, n)

	case *jsonschemair.Union:
		return jen.Commentf("%s is one of: %s", name, basesList(n.Bases)).Line().
			Type().Id(name).Id("any").Line()

	case *jsonschemair.Composition:
		return r.renderComposition(name, n)

	case *jsonschemair.TypeReference, *jsonschemair.Definitions:
		return nil

	default:
		return nil
	}
}

func basesList(bases []jsonschemair.BaseType) string {
	s := ""
	for i, b := range bases {
		if i > 0 {
			s += ", "
		}
		s += baseGoType(b)
	}
	return s
}

func (r *renderer) renderEnum(name string, n *jsonschemair.Enum) jen.Code {
	stmt := jen.Type().Id(name).Id(baseGoType(n.BaseType)).Line().Line()

	constValues := make([]jen.Code, 0, len(n.Values))
	for _, v := range n.Values {
		constName := name + jsonschemair.TypeName(jsonschemair.RootPath(), v)
		constValues = append(constValues, jen.Id(constName).Id(name).Op("=").Lit(v))
	}
	stmt.Const().Defs(constValues...)
	return stmt
}

func (r *renderer) renderObject(name string, n *jsonschemair.Object) jen.Code {
	fields := make([]jen.Code, 0, n.Properties.Len())
	for _, propName := range n.PropertyNames() {
		fieldPath, _ := n.Properties.Get(propName)
		fieldType := r.typeExprForID(jsonschemair.PathIdentifier(fieldPath))
		fieldName := jsonschemair.TypeName(jsonschemair.RootPath(), propName)

		jsonTag := fmt.Sprintf("%s,omitempty", propName)
		if n.Required[propName] {
			jsonTag = propName
			fields = append(fields, jen.Id(fieldName).Add(fieldType).Tag(map[string]string{"json": jsonTag}))
			continue
		}
		fields = append(fields, jen.Id(fieldName).Op("*").Add(fieldType).Tag(map[string]string{"json": jsonTag}))
	}
	return jen.Type().Id(name).Struct(fields...).Line()
}

func (r *renderer) renderTuple(name string, n *jsonschemair.Tuple) jen.Code {
	fields := make([]jen.Code, len(n.Items))
	for i, item := range n.Items {
		itemType := r.typeExprForID(jsonschemair.PathIdentifier(item))
		fields[i] = jen.Id(fmt.Sprintf("Item%d", i)).Add(itemType).Tag(map[string]string{"json": fmt.Sprintf("%d", i)})
	}
	return jen.Type().Id(name).Struct(fields...).Line()
}

func (r *renderer) renderComposition(name string, n *jsonschemair.Composition) jen.Code {
	if n.CompositionKind == jsonschemair.KindAllOf {
		return r.renderAllOf(name, n)
	}
	return jen.Commentf("%s is one of %d alternative shapes", name, len(n.Alternatives)).Line().
		Type().Id(name).Id("any").Line()
}

// renderAllOf merges every alternative's fields into one struct, mirroring
// the elm emitter's treatment of allOf's intersection semantics.
func (r *renderer) renderAllOf(name string, n *jsonschemair.Composition) jen.Code {
	var fields []jen.Code
	for _, alt := range n.Alternatives {
		result := jsonschemair.Resolve(jsonschemair.PathIdentifier(alt), r.schema, r.schemaDict)
		if result.Unresolved {
			r.diag(jsonschemair.UnresolvedReference, alt.String(), "allOf member %q did not resolve; dropped from merged struct", alt.String())
			continue
		}
		obj, ok := result.Node.(*jsonschemair.Object)
		if !ok {
			r.diag(jsonschemair.UnresolvedReference, alt.String(), "allOf member %q is not an object; dropped from merged struct", alt.String())
			continue
		}
		for _, propName := range obj.PropertyNames() {
			fieldPath, _ := obj.Properties.Get(propName)
			fieldType := r.typeExprForID(jsonschemair.PathIdentifier(fieldPath))
			fieldName := jsonschemair.TypeName(jsonschemair.RootPath(), propName)
			jsonTag := fmt.Sprintf("%s,omitempty", propName)
			if obj.Required[propName] {
				fields = append(fields, jen.Id(fieldName).Add(fieldType).Tag(map[string]string{"json": propName}))
				continue
			}
			fields = append(fields, jen.Id(fieldName).Op("*").Add(fieldType).Tag(map[string]string{"json": jsonTag}))
		}
	}
	return jen.Type().Id(name).Struct(fields...).Line()
}
