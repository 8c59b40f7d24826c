package jsonschemair

import (
	"encoding/json"
	"fmt"
)

// BaseType is a JSON Schema "type" value. It covers both the five primitive
// bases usable in Primitive/Enum/Union nodes and the two container markers
// ("object", "array") the classifier inspects but which never themselves
// appear as a Primitive's BaseType.
type BaseType string

const (
	TypeString  BaseType = "string"
	TypeInteger BaseType = "integer"
	TypeNumber  BaseType = "number"
	TypeBoolean BaseType = "boolean"
	TypeNull    BaseType = "null"
	TypeObject  BaseType = "object"
	TypeArray   BaseType = "array"
)

// IsPrimitive reports whether b is one of the five scalar bases a Primitive,
// Enum, or Union node may carry.
func (b BaseType) IsPrimitive() bool {
	switch b {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeNull:
		return true
	default:
		return false
	}
}

func (b BaseType) valid() bool {
	switch b {
	case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeNull, TypeObject, TypeArray:
		return true
	default:
		return false
	}
}

// TypeField decodes JSON Schema's "type" keyword, which may be absent, a
// single string, or an array of strings. It always normalizes to Values: a
// bare string becomes a single-element slice, mirroring the
// StringOrStrings pattern used for "type"-like multi-valued keywords
// elsewhere in the ecosystem.
type TypeField struct {
	Values []BaseType
}

// UnmarshalJSON implements [json.Unmarshaler] for TypeField.
func (t *TypeField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		t.Values = []BaseType{BaseType(single)}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("jsonschemair: \"type\" must be a string or array of strings: %w", err)
	}
	t.Values = make([]BaseType, len(list))
	for i, v := range list {
		t.Values[i] = BaseType(v)
	}
	return nil
}

// Is reports whether the field was present and its only value equals b.
func (t *TypeField) Is(b BaseType) bool {
	return t != nil && len(t.Values) == 1 && t.Values[0] == b
}

// IsMulti reports whether the field names more than one base type, the shape
// that classifies as a Union node.
func (t *TypeField) IsMulti() bool {
	return t != nil && len(t.Values) > 1
}

// SinglePrimitive returns the sole base type and true when the field names
// exactly one of the five scalar bases (the shape that classifies as a
// Primitive node).
func (t *TypeField) SinglePrimitive() (BaseType, bool) {
	if t == nil || len(t.Values) != 1 {
		return "", false
	}
	if !t.Values[0].IsPrimitive() {
		return "", false
	}
	return t.Values[0], true
}
