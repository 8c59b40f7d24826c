package golang_test

import (
	"strings"
	"testing"

	"github.com/jsonschemair/jsonschemair"
	"github.com/jsonschemair/jsonschemair/emit/golang"
)

func TestRenderSchemaObject(t *testing.T) {
	doc := `{
		"title": "Person",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		},
		"required": ["name"]
	}`
	def, diags, err := jsonschemair.ParseSchema([]byte(doc), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	body, renderDiags := golang.Emitter{PackageName: "model"}.RenderSchema(def, nil, jsonschemair.DefaultConfig())
	if len(renderDiags) != 0 {
		t.Fatalf("unexpected render diagnostics: %v", renderDiags)
	}

	for _, want := range []string{
		"package model",
		"type Person struct",
		`json:"name"`,
		`json:"age,omitempty"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered body missing %q:\n%s", want, body)
		}
	}
}

func TestFileNameOf(t *testing.T) {
	def := &jsonschemair.SchemaDefinition{Title: "Person"}
	name := golang.Emitter{}.FileNameOf(def, "internal/model")
	if want := "internal/model/person.go"; name != want {
		t.Errorf("FileNameOf = %q, want %q", name, want)
	}
}
