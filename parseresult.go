package jsonschemair

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParserResult is the uniform output of every sub-parser (spec.md §4.3): a
// type dictionary fragment produced by this node and its descendants, plus
// ordered warnings and errors. Results from siblings merge by dictionary
// union (a colliding key is a duplicate_type_key error) and list
// concatenation.
type ParserResult struct {
	Types    *orderedmap.OrderedMap[string, Node]
	Warnings []Diagnostic
	Errors   []Diagnostic
}

func newParserResult() ParserResult {
	return ParserResult{Types: orderedmap.New[string, Node]()}
}

// register adds node under key, appending a duplicate_type_key error instead
// of overwriting if the key is already taken.
func (r *ParserResult) register(key string, node Node) {
	if _, exists := r.Types.Get(key); exists {
		r.Errors = append(r.Errors, newDiagnostic(DuplicateTypeKey, key,
			"a type is already registered under key %q", key))
		return
	}
	r.Types.Set(key, node)
}

// merge folds other into r in place: dictionary union (duplicate key becomes
// an error on r, first registration wins), warnings and errors concatenated
// in argument order.
func (r *ParserResult) merge(other ParserResult) {
	if other.Types != nil {
		for pair := other.Types.Oldest(); pair != nil; pair = pair.Next() {
			r.register(pair.Key, pair.Value)
		}
	}
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Errors = append(r.Errors, other.Errors...)
}

func mergeResults(results ...ParserResult) ParserResult {
	merged := newParserResult()
	for _, res := range results {
		merged.merge(res)
	}
	return merged
}
