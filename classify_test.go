package jsonschemair

import (
	"encoding/json"
	"testing"
)

func mustRawSchema(t *testing.T, doc string) *RawSchema {
	t.Helper()
	var raw RawSchema
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return &raw
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		isRoot bool
		want   Kind
	}{
		{name: "primitive string", doc: `{"type":"string"}`, want: KindPrimitive},
		{name: "enum", doc: `{"type":"string","enum":["a","b"]}`, want: KindEnum},
		{name: "object by type", doc: `{"type":"object","properties":{}}`, want: KindObject},
		{name: "object by properties alone", doc: `{"properties":{"a":{"type":"string"}}}`, want: KindObject},
		{name: "array", doc: `{"type":"array","items":{"type":"string"}}`, want: KindArray},
		{name: "tuple", doc: `{"type":"array","items":[{"type":"string"},{"type":"integer"}]}`, want: KindTuple},
		{name: "union", doc: `{"type":["string","integer"]}`, want: KindUnion},
		{name: "oneOf", doc: `{"oneOf":[{"type":"string"},{"type":"integer"}]}`, want: KindOneOf},
		{name: "anyOf", doc: `{"anyOf":[{"type":"string"}]}`, want: KindAnyOf},
		{name: "allOf", doc: `{"allOf":[{"type":"object"}]}`, want: KindAllOf},
		{name: "typeReference", doc: `{"$ref":"#/definitions/Foo"}`, want: KindTypeReference},
		{name: "root definitions only", doc: `{"definitions":{"Foo":{"type":"string"}}}`, isRoot: true, want: KindDefinitions},
		{name: "composition beats enum", doc: `{"enum":["a"],"oneOf":[{"type":"string"}]}`, want: KindOneOf},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mustRawSchema(t, tc.doc)
			got, err := classify(raw, tc.isRoot)
			if err != nil {
				t.Fatalf("classify(%s): unexpected error: %v", tc.doc, err)
			}
			if got != tc.want {
				t.Errorf("classify(%s) = %v, want %v", tc.doc, got, tc.want)
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	raw := mustRawSchema(t, `{"description":"no recognizable shape"}`)
	if _, err := classify(raw, false); err == nil {
		t.Fatal("classify: expected error for an unclassifiable node, got nil")
	}
}
