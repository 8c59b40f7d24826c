// Package elm renders a jsonschemair type dictionary into Elm source: a
// type alias or custom type per declared node, paired with
// elm/json-decode-pipeline-style decoders and encoders (spec.md §4.6,
// canonical target).
package elm

import (
	"fmt"
	"path"
	"strings"

	"github.com/jsonschemair/jsonschemair"
)

// Emitter implements jsonschemair.Emitter for the Elm target.
type Emitter struct{}

// ModuleName derives the dotted Elm module path for a schema: the
// configured root module prefix followed by one PascalCase segment taken
// from the schema's title, else from the last path segment of its id (file
// extension stripped), falling back to "Schema" for an untitled, id-less
// document.
func ModuleName(schema *jsonschemair.SchemaDefinition, rootModule string) string {
	base := schema.Title
	if base == "" {
		base = lastPathSegment(schema.ID)
	}
	if base == "" {
		base = "Schema"
	}
	name := jsonschemair.TypeName(jsonschemair.RootPath(), base)

	if rootModule == "" {
		return name
	}
	return rootModule + "." + name
}

func lastPathSegment(id string) string {
	if id == "" {
		return ""
	}
	trimmed := strings.TrimRight(id, "/")
	base := path.Base(trimmed)
	base = strings.TrimSuffix(base, path.Ext(base))
	return base
}

// FileNameOf returns the module's file path, matching Elm's module-path-is-
// file-path convention (e.g. "My.Module" -> "src/My/Module.elm").
func (Emitter) FileNameOf(schema *jsonschemair.SchemaDefinition, rootModule string) string {
	module := ModuleName(schema, rootModule)
	return fmt.Sprintf("src/%s.elm", strings.ReplaceAll(module, ".", "/"))
}
