package jsonschemair

// Emitter renders one parsed SchemaDefinition's type dictionary into
// target-language source, per spec.md §4.6. A target language implements
// this interface once; the Driver supplies the rest of the pipeline.
type Emitter interface {
	// FileNameOf returns the output file path for a schema, given the
	// configured root module prefix.
	FileNameOf(schema *SchemaDefinition, rootModule string) string

	// RenderSchema renders every declared type in schema's dictionary into
	// one source-file body, resolving TypeReferences against schemaDict.
	// Diagnostics raised while resolving or rendering are returned alongside
	// the text produced so far; RenderSchema itself never fails outright —
	// unresolved references degrade to a documented placeholder instead
	// (spec.md §7).
	RenderSchema(schema *SchemaDefinition, schemaDict SchemaDictionary, cfg Config) (string, []Diagnostic)
}

// SchemaResult is the output of a full parse-and-emit run: one rendered file
// per input schema, plus every diagnostic collected along the way.
type SchemaResult struct {
	Files    map[string]string
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Driver wires an Emitter to a Config and runs the full pipeline described in
// spec.md §4: parse every document into a SchemaDictionary, then render each
// schema with the chosen Emitter.
type Driver struct {
	Emitter Emitter
	Config  Config
}

// ParseAndEmit parses documents into a SchemaDictionary and renders each
// resulting schema with d.Emitter. When d.Config.Strict is set, every
// warning collected during the run is escalated to an error and the
// corresponding file is dropped from the result's Files map — a strict run
// produces either complete output or none for a given schema, never a
// silently degraded one.
func (d Driver) ParseAndEmit(documents []RawDocument) SchemaResult {
	schemaDict, parseDiags := ParseSchemas(documents)

	result := SchemaResult{Files: make(map[string]string)}
	result.Errors = append(result.Errors, parseDiags...)

	for pair := schemaDict.Oldest(); pair != nil; pair = pair.Next() {
		schema := pair.Value
		body, diags := d.Emitter.RenderSchema(schema, schemaDict, d.Config)

		var hardFailure bool
		for _, diag := range diags {
			if d.Config.Strict {
				result.Errors = append(result.Errors, diag)
				hardFailure = true
				continue
			}
			result.Warnings = append(result.Warnings, diag)
		}
		if hardFailure {
			continue
		}

		name := d.Emitter.FileNameOf(schema, d.Config.RootModule)
		result.Files[name] = body
	}

	return result
}
