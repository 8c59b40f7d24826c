package jsonschemair

import "testing"

func TestParseSchemaPrimitive(t *testing.T) {
	def, diags, err := ParseSchema([]byte(`{"type":"string"}`), "http://example.com/name.json")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("ParseSchema: unexpected diagnostics: %v", diags)
	}

	node, ok := def.Types.Get("#")
	if !ok {
		t.Fatal("ParseSchema: root node not registered under \"#\"")
	}
	prim, ok := node.(*Primitive)
	if !ok {
		t.Fatalf("root node is %T, want *Primitive", node)
	}
	if prim.BaseType != TypeString {
		t.Errorf("BaseType = %q, want %q", prim.BaseType, TypeString)
	}
}

func TestParseSchemaEnumRoundTrip(t *testing.T) {
	def, diags, err := ParseSchema([]byte(`{"type":"string","enum":["red","green","blue"]}`), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	node, _ := def.Types.Get("#")
	enum, ok := node.(*Enum)
	if !ok {
		t.Fatalf("root node is %T, want *Enum", node)
	}
	want := []string{"red", "green", "blue"}
	if len(enum.Values) != len(want) {
		t.Fatalf("Values = %v, want %v", enum.Values, want)
	}
	for i, v := range want {
		if enum.Values[i] != v {
			t.Errorf("Values[%d] = %q, want %q", i, enum.Values[i], v)
		}
	}
}

func TestParseSchemaObjectRequiredAndOptional(t *testing.T) {
	doc := `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer"}
		},
		"required": ["name"]
	}`
	def, diags, err := ParseSchema([]byte(doc), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	node, _ := def.Types.Get("#")
	obj, ok := node.(*Object)
	if !ok {
		t.Fatalf("root node is %T, want *Object", node)
	}
	if !obj.Required["name"] {
		t.Error("\"name\" should be required")
	}
	if obj.Required["age"] {
		t.Error("\"age\" should not be required")
	}

	namePath, ok := obj.Properties.Get("name")
	if !ok {
		t.Fatal("properties missing \"name\"")
	}
	if got, want := namePath.String(), "#/name"; got != want {
		t.Errorf("name property path = %q, want %q", got, want)
	}
}

func TestParseSchemaMissingRequiredTarget(t *testing.T) {
	doc := `{"type":"object","properties":{},"required":["missing"]}`
	_, diags, err := ParseSchema([]byte(doc), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}

	var found bool
	for _, d := range diags {
		if d.Kind == MissingRequiredPropertyTarget {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a %s diagnostic, got %v", MissingRequiredPropertyTarget, diags)
	}
}

func TestParseSchemaDanglingReference(t *testing.T) {
	doc := `{"type":"object","properties":{"self":{"$ref":"#/definitions/Missing"}}}`
	def, diags, err := ParseSchema([]byte(doc), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("parsing itself should not flag a dangling $ref: %v", diags)
	}

	node, found := def.Types.Get(RootPath().AddChild("self").String())
	if !found {
		t.Fatal("expected the TypeReference itself to be registered under #/self")
	}
	ref, ok := node.(*TypeReference)
	if !ok {
		t.Fatalf("node is %T, want *TypeReference", node)
	}
	targetResult := Resolve(ref.Target, def, nil)
	if !targetResult.Unresolved || targetResult.Reason != ReasonNotFound {
		t.Errorf("expected the $ref target to be unresolved/not-found, got %+v", targetResult)
	}
}

func TestParseSchemaDefinitionsSiblingToObject(t *testing.T) {
	doc := `{
		"type": "object",
		"definitions": {
			"Point": {"type": "object", "properties": {"x": {"type": "integer"}}}
		},
		"properties": {
			"origin": {"$ref": "#/definitions/Point"}
		}
	}`
	def, diags, err := ParseSchema([]byte(doc), "#")
	if err != nil {
		t.Fatalf("ParseSchema: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if _, ok := def.Types.Get("#/definitions/Point"); !ok {
		t.Fatal("expected #/definitions/Point to be registered even though the root is an Object, not Definitions")
	}
	if root, _ := def.Types.Get("#"); root.Kind() != KindObject {
		t.Errorf("root kind = %v, want %v", root.Kind(), KindObject)
	}
}

func TestParseSchemasDuplicateID(t *testing.T) {
	documents := []RawDocument{
		{URI: "http://example.com/schema.json", Data: []byte(`{"$id":"http://example.com/schema.json","type":"string"}`)},
		{URI: "http://example.com/schema.json#again", Data: []byte(`{"$id":"http://example.com/schema.json","type":"integer"}`)},
	}
	dict, diags := ParseSchemas(documents)

	if dict.Len() != 1 {
		t.Fatalf("dict.Len() = %d, want 1", dict.Len())
	}
	var found bool
	for _, d := range diags {
		if d.Kind == DuplicateTypeKey {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a %s diagnostic, got %v", DuplicateTypeKey, diags)
	}

	kept, _ := dict.Get("http://example.com/schema.json")
	node, _ := kept.Types.Get("#")
	if node.(*Primitive).BaseType != TypeString {
		t.Error("the first-seen schema should be retained")
	}
}
