package jsonschemair

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RawSchema is the typed decode target for one JSON Schema node, covering
// the keyword subset spec.md §3 requires. It mirrors the teacher's flat
// Schema struct, generalized: "type" accepts a string or array, "items"
// accepts an object or array, and map-valued keywords preserve their JSON
// declaration order instead of Go's unspecified map iteration order.
type RawSchema struct {
	Title       string            `json:"title,omitempty"`
	ID          string            `json:"id,omitempty"`
	IDAlt       string            `json:"$id,omitempty"`
	Description string            `json:"description,omitempty"`
	Type        *TypeField        `json:"type,omitempty"`
	Definitions *OrderedSchemaMap `json:"definitions,omitempty"`
	Properties  *OrderedSchemaMap `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
	Items       *ItemsField       `json:"items,omitempty"`
	Ref         string            `json:"$ref,omitempty"`
	Enum        []json.RawMessage `json:"enum,omitempty"`
	OneOf       []*RawSchema      `json:"oneOf,omitempty"`
	AnyOf       []*RawSchema      `json:"anyOf,omitempty"`
	AllOf       []*RawSchema      `json:"allOf,omitempty"`
}

// EffectiveID returns the node's own id, preferring the Draft 2019-09+ "$id"
// keyword over the Draft-04 "id" keyword when both are present.
func (r *RawSchema) EffectiveID() string {
	if r.IDAlt != "" {
		return r.IDAlt
	}
	return r.ID
}

// ItemsField decodes JSON Schema's "items" keyword, which is an object when
// it describes a single homogeneous element type (classifies as Array) or
// an array of schemas when it describes a fixed, heterogeneous tuple
// (classifies as Tuple).
type ItemsField struct {
	Single *RawSchema
	Multi  []*RawSchema
}

// UnmarshalJSON implements [json.Unmarshaler] for ItemsField.
func (i *ItemsField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &i.Multi)
	}
	var single RawSchema
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("jsonschemair: \"items\" must be an object or array of objects: %w", err)
	}
	i.Single = &single
	return nil
}

// IsTuple reports whether items named a fixed sequence of element schemas.
func (i *ItemsField) IsTuple() bool {
	return i != nil && i.Multi != nil
}

// OrderedSchemaMap decodes a JSON object whose values are schemas
// ("definitions", "properties") while preserving the source document's key
// order — Go's map[string]T loses it, but spec.md §4.3 requires children be
// "named by their map keys" in a way the emitter can later walk
// deterministically under either sort mode, which needs the original order
// as well as the ability to re-sort it.
type OrderedSchemaMap struct {
	*orderedmap.OrderedMap[string, *RawSchema]
}

// UnmarshalJSON implements [json.Unmarshaler] for OrderedSchemaMap by
// walking the raw token stream instead of decoding into a Go map.
func (m *OrderedSchemaMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("jsonschemair: expected JSON object, got %v", tok)
	}

	om := orderedmap.New[string, *RawSchema]()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("jsonschemair: expected object key, got %v", keyTok)
		}
		var val RawSchema
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("jsonschemair: decoding %q: %w", key, err)
		}
		om.Set(key, &val)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return err
	}
	m.OrderedMap = om
	return nil
}
