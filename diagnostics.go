package jsonschemair

import "fmt"

// DiagnosticKind enumerates the recoverable failure modes of the parser and
// emitter, per spec.md §7. These are data, not error values: a run that
// produces diagnostics still produces a usable, partial result.
type DiagnosticKind string

const (
	// UnknownNodeType: the classifier could not match a schema node against
	// any of the kinds in spec.md §4.2's fixed order.
	UnknownNodeType DiagnosticKind = "unknown_node_type"
	// DuplicateTypeKey: two IR nodes would register under the same
	// dictionary key.
	DuplicateTypeKey DiagnosticKind = "duplicate_type_key"
	// UnresolvedReference: the resolver could not find an identifier.
	UnresolvedReference DiagnosticKind = "unresolved_reference"
	// CyclicReference: the resolver detected a reference cycle.
	CyclicReference DiagnosticKind = "cyclic_reference"
	// InvalidEnumValue: an enum entry's runtime type mismatches the
	// declared base type.
	InvalidEnumValue DiagnosticKind = "invalid_enum_value"
	// InvalidIDURI: an "id"/"$id" field did not parse as a URI.
	InvalidIDURI DiagnosticKind = "invalid_id_uri"
	// MissingRequiredPropertyTarget: a name in "required" is not present in
	// "properties".
	MissingRequiredPropertyTarget DiagnosticKind = "missing_required_property_target"
)

// Diagnostic is the tuple (kind, identifier string, human-readable message)
// spec.md §7 specifies as the user-visible diagnostic format.
type Diagnostic struct {
	Kind       DiagnosticKind
	Identifier string
	Message    string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Kind, d.Identifier, d.Message)
}

func newDiagnostic(kind DiagnosticKind, identifier, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Identifier: identifier, Message: fmt.Sprintf(format, args...)}
}
