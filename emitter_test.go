package jsonschemair_test

import (
	"strings"
	"testing"

	"github.com/jsonschemair/jsonschemair"
)

// stubEmitter always reports one warning, letting emitter_test.go exercise
// Driver's Strict-escalation path without depending on either concrete
// emitter package.
type stubEmitter struct{}

func (stubEmitter) FileNameOf(schema *jsonschemair.SchemaDefinition, rootModule string) string {
	return schema.ID + ".out"
}

func (stubEmitter) RenderSchema(schema *jsonschemair.SchemaDefinition, _ jsonschemair.SchemaDictionary, _ jsonschemair.Config) (string, []jsonschemair.Diagnostic) {
	return "rendered:" + schema.ID, []jsonschemair.Diagnostic{
		{Kind: jsonschemair.UnresolvedReference, Identifier: "#/missing", Message: "stub warning"},
	}
}

func TestDriverParseAndEmitNonStrict(t *testing.T) {
	driver := jsonschemair.Driver{Emitter: stubEmitter{}, Config: jsonschemair.DefaultConfig()}
	result := driver.ParseAndEmit([]jsonschemair.RawDocument{
		{URI: "http://example.com/a.json", Data: []byte(`{"type":"string"}`)},
	})

	if len(result.Files) != 1 {
		t.Fatalf("len(Files) = %d, want 1", len(result.Files))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
	}
	if len(result.Errors) != 0 {
		t.Fatalf("len(Errors) = %d, want 0: %v", len(result.Errors), result.Errors)
	}
	for name, body := range result.Files {
		if !strings.HasSuffix(name, ".out") {
			t.Errorf("file name %q missing .out suffix", name)
		}
		if !strings.HasPrefix(body, "rendered:") {
			t.Errorf("file body %q missing rendered: prefix", body)
		}
	}
}

func TestDriverParseAndEmitStrictEscalates(t *testing.T) {
	cfg := jsonschemair.DefaultConfig()
	cfg.Strict = true
	driver := jsonschemair.Driver{Emitter: stubEmitter{}, Config: cfg}
	result := driver.ParseAndEmit([]jsonschemair.RawDocument{
		{URI: "http://example.com/a.json", Data: []byte(`{"type":"string"}`)},
	})

	if len(result.Files) != 0 {
		t.Fatalf("len(Files) = %d, want 0 under strict mode", len(result.Files))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(result.Errors))
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("len(Warnings) = %d, want 0", len(result.Warnings))
	}
}
