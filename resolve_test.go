package jsonschemair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCrossSchemaReference(t *testing.T) {
	documents := []RawDocument{
		{URI: "http://example.com/main.json", Data: []byte(
			`{"$id":"http://example.com/main.json","type":"object","properties":{"home":{"$ref":"http://example.com/definitions.json#point"}}}`,
		)},
		{URI: "http://example.com/definitions.json", Data: []byte(
			`{"$id":"http://example.com/definitions.json","definitions":{"point":{"type":"object","properties":{"x":{"type":"integer"},"y":{"type":"integer"}}}}}`,
		)},
	}

	dict, diags := ParseSchemas(documents)
	assert.Empty(t, diags, "parsing two well-formed linked documents should produce no diagnostics")

	main, ok := dict.Get("http://example.com/main.json")
	require.True(t, ok, "main schema not registered")

	homePath := RootPath().AddChild("home")
	homeNode, ok := main.Types.Get(homePath.String())
	require.True(t, ok, "home property node not registered under %q", homePath.String())
	ref, ok := homeNode.(*TypeReference)
	require.True(t, ok, "home node is %T, want *TypeReference", homeNode)

	result := Resolve(ref.Target, main, dict)
	require.False(t, result.Unresolved, "expected cross-schema reference to resolve, got unresolved (reason=%v)", result.Reason)
	obj, ok := result.Node.(*Object)
	require.True(t, ok, "resolved node is %T, want *Object", result.Node)

	_, ok = obj.Properties.Get("x")
	assert.True(t, ok, "resolved point object missing property \"x\"")
}

func TestResolveCyclicReference(t *testing.T) {
	doc := `{
		"type": "object",
		"definitions": {
			"Node": {"type":"object","properties":{"next":{"$ref":"#/definitions/Node"}}}
		},
		"properties": {"root": {"$ref": "#/definitions/Node"}}
	}`
	def, diags, err := ParseSchema([]byte(doc), "#")
	require.NoError(t, err)
	assert.Empty(t, diags)

	nodePath, err := PathFromString("#/definitions/Node")
	require.NoError(t, err)

	result := Resolve(PathIdentifier(nodePath), def, nil)
	require.False(t, result.Unresolved, "expected #/definitions/Node itself to resolve, got unresolved")
	node, ok := result.Node.(*Object)
	require.True(t, ok, "node is %T, want *Object", result.Node)

	nextPath, ok := node.Properties.Get("next")
	require.True(t, ok, "Node object missing \"next\" property")

	nextResult := Resolve(PathIdentifier(nextPath), def, nil)
	require.False(t, nextResult.Unresolved, "the \"next\" field's TypeReference should itself resolve to the Node object, not be cyclic")
	_, ok = nextResult.Node.(*Object)
	assert.True(t, ok, "next resolves to %T, want *Object", nextResult.Node)
}
