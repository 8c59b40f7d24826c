package elm_test

import (
	"strings"
	"testing"

	"github.com/jsonschemair/jsonschemair"
	"github.com/jsonschemair/jsonschemair/emit/elm"
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

	body, renderDiags := elm.Emitter{}.RenderSchema(def, nil, jsonschemair.DefaultConfig())
	if len(renderDiags) != 0 {
		t.Fatalf("unexpected render diagnostics: %v", renderDiags)
	}

	for _, want := range []string{
		"module Person exposing (..)",
		"type alias Person =",
		"name : String",
		"age : Maybe Int",
		"personDecoder : Decoder Person",
		"encodePerson : Person -> Value",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderSchemaEnum(t *testing.T) {
	doc := `{"title":"Color","type":"string","enum":["red","green","blue"]}`
	def, _, err := jsonschemair.ParseSchema([]byte(doc), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	body, _ := elm.Emitter{}.RenderSchema(def, nil, jsonschemair.DefaultConfig())

	for _, want := range []string{"type Color", "ColorRed", "ColorGreen", "ColorBlue"} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered body missing %q:\n%s", want, body)
		}
	}
}
