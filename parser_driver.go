package jsonschemair

import (
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParseSchema parses one JSON Schema document, recursively classifying every
// node, assigning canonical Paths, and building its type dictionary
// (spec.md §4.4). documentURI is used as the schema's id when the document
// itself carries no "id"/"$id".
func ParseSchema(data []byte, documentURI string) (*SchemaDefinition, []Diagnostic, error) {
	var raw RawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("jsonschemair: decoding schema document %q: %w", documentURI, err)
	}

	var baseURI URI
	idStr := raw.EffectiveID()
	if idStr == "" {
		idStr = documentURI
	}
	var idDiags []Diagnostic
	if idStr != "" {
		parsed, err := ParseURI(idStr)
		if err != nil {
			idDiags = append(idDiags, newDiagnostic(InvalidIDURI, RootPath().String(),
				"document id %q is not a valid URI: %v", idStr, err))
		} else {
			baseURI = parsed
		}
	}

	ctx := parseContext{parentURI: baseURI, path: RootPath(), isRoot: true}
	_, result := parseNode(&raw, ctx)

	def := &SchemaDefinition{
		ID:          baseURI.String(),
		Title:       raw.Title,
		Description: raw.Description,
		Types:       result.Types,
	}

	diags := make([]Diagnostic, 0, len(idDiags)+len(result.Errors)+len(result.Warnings))
	diags = append(diags, idDiags...)
	diags = append(diags, result.Errors...)
	diags = append(diags, result.Warnings...)
	return def, diags, nil
}

// ParseSchemas runs ParseSchema over every document, accumulating a
// SchemaDictionary (spec.md §3) keyed by absolute schema URI. When two
// documents assert the same id, the first-seen schema is retained and
// exactly one duplicate_type_key diagnostic is recorded (spec.md §8
// scenario 6).
func ParseSchemas(documents []RawDocument) (SchemaDictionary, []Diagnostic) {
	dict := orderedmap.New[string, *SchemaDefinition]()
	var diags []Diagnostic

	for _, doc := range documents {
		def, parseDiags, err := ParseSchema(doc.Data, doc.URI)
		if err != nil {
			diags = append(diags, newDiagnostic(UnknownNodeType, doc.URI, "%v", err))
			continue
		}
		diags = append(diags, parseDiags...)

		key := def.ID
		if key == "" {
			key = doc.URI
		}
		if _, exists := dict.Get(key); exists {
			diags = append(diags, newDiagnostic(DuplicateTypeKey, key,
				"schema with id %q already registered; keeping the first-seen definition", key))
			continue
		}
		dict.Set(key, def)
	}

	return dict, diags
}
