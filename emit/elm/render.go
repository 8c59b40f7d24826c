package elm

import (
	"fmt"
	"strings"

	"github.com/jsonschemair/jsonschemair"
)

// renderer carries the per-call state RenderSchema's helper methods share:
// the schema being rendered, the dictionary it resolves references against,
// the cross-schema imports collected so far (first-occurrence order), and
// the diagnostics collected so far.
type renderer struct {
	schema     *jsonschemair.SchemaDefinition
	schemaDict jsonschemair.SchemaDictionary
	cfg        jsonschemair.Config
	imports    []string
	diags      []jsonschemair.Diagnostic
}

func (e *renderer) diag(kind jsonschemair.DiagnosticKind, identifier, format string, args ...any) {
	e.diags = append(e.diags, jsonschemair.Diagnostic{
		Kind:       kind,
		Identifier: identifier,
		Message:    fmt.Sprintf(format, args...),
	})
}

// RenderSchema implements jsonschemair.Emitter. It walks schema's type
// dictionary in the configured order, rendering one Elm type declaration
// plus a JSON decoder and encoder per declared node, and assembles the
// result into a single module body (spec.md §4.6).
func (Emitter) RenderSchema(schema *jsonschemair.SchemaDefinition, schemaDict jsonschemair.SchemaDictionary, cfg jsonschemair.Config) (string, []jsonschemair.Diagnostic) {
	e := &renderer{
		schema:     schema,
		schemaDict: schemaDict,
		cfg:        cfg,
	}

	keys := schema.SortedKeys(cfg)

	var types, decoders, encoders strings.Builder
	for _, key := range keys {
		node, ok := schema.Types.Get(key)
		if !ok {
			continue
		}
		if node.Kind() == jsonschemair.KindDefinitions {
			continue
		}
		name := e.nameFor(schema, node)

		decl := e.renderTypeDecl(name, node)
		if decl == "" {
			continue
		}
		types.WriteString(decl)
		types.WriteString("\n")

		decoders.WriteString(e.renderDecoder(name, node))
		decoders.WriteString("\n")

		encoders.WriteString(e.renderEncoder(name, node))
		encoders.WriteString("\n")
	}

	var out strings.Builder
	fmt.Fprintf(&out, "module %s exposing (..)\n\n", ModuleName(schema, cfg.RootModule))
	for _, module := range e.imports {
		fmt.Fprintf(&out, "import %s\n", module)
	}
	out.WriteString("import Json.Decode as Decode exposing (Decoder, Value)\n")
	out.WriteString("import Json.Decode.Pipeline exposing (required, optional)\n")
	out.WriteString("import Json.Encode as Encode\n\n")
	out.WriteString(types.String())
	out.WriteString(decoders.String())
	out.WriteString(encoders.String())

	return out.String(), e.diags
}
