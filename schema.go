package jsonschemair

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SchemaDefinition is one parsed JSON Schema document: its absolute URI id,
// descriptive metadata, and its type dictionary (spec.md §3).
type SchemaDefinition struct {
	ID          string
	Title       string
	Description string
	Types       *orderedmap.OrderedMap[string, Node]
}

// SortedKeys returns the type dictionary's declared-Path keys — i.e. the
// keys equal to some node's own Path, skipping URI aliases — in the order
// cfg.EmitSort selects. This is what spec.md §4.6 step 3 calls "walks the
// type dictionary in deterministic order... skipping URI aliases so nothing
// is emitted twice".
func (s *SchemaDefinition) SortedKeys(cfg Config) []string {
	declOrder := make([]string, 0, s.Types.Len())
	for pair := s.Types.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == pair.Value.Path().String() {
			declOrder = append(declOrder, pair.Key)
		}
	}
	if cfg.EmitSort == SortDeclarationOrder {
		return declOrder
	}
	sort.Strings(declOrder)
	return declOrder
}

// RawDocument is one input to the parser: a source URI paired with the raw
// JSON bytes of its schema document. ParseSchema decodes Data itself with
// encoding/json; the core does not accept an already-decoded value.
type RawDocument struct {
	URI  string
	Data []byte
}
