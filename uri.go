package jsonschemair

import (
	"fmt"
	"net/url"
)

// URI identifies a schema document, or a named fragment within one, by
// scheme + authority + path + fragment. A URI with only a fragment ("#point")
// denotes a name inside the current document rather than a separate schema.
type URI struct {
	u *url.URL
}

// ParseURI parses s as a URI. It returns invalid_id_uri-shaped errors for
// anything net/url itself rejects; callers decide whether that is fatal.
func ParseURI(s string) (URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return URI{}, fmt.Errorf("jsonschemair: invalid URI %q: %w", s, err)
	}
	return URI{u: u}, nil
}

// String renders the full URI, including fragment.
func (u URI) String() string {
	if u.u == nil {
		return ""
	}
	return u.u.String()
}

// Base returns the URI with its fragment stripped — the part that identifies
// the schema document itself, used as a schema dictionary key.
func (u URI) Base() string {
	if u.u == nil {
		return ""
	}
	base := *u.u
	base.Fragment = ""
	base.RawFragment = ""
	return base.String()
}

// Fragment returns the fragment component, without the leading "#".
func (u URI) Fragment() string {
	if u.u == nil {
		return ""
	}
	return u.u.Fragment
}

// Scheme returns the URI scheme, empty if none.
func (u URI) Scheme() string {
	if u.u == nil {
		return ""
	}
	return u.u.Scheme
}

// IsURN reports whether the URI uses the "urn" scheme. Per spec.md §4.3,
// urn-scheme ids are used as-is rather than merged onto a parent.
func (u URI) IsURN() bool {
	return u.Scheme() == "urn"
}

// HasScheme reports whether the URI carries a scheme component at all.
func (u URI) HasScheme() bool {
	return u.Scheme() != ""
}

// IsZero reports whether u is the zero value (no URI in effect).
func (u URI) IsZero() bool {
	return u.u == nil
}

// ResolveReference merges ref onto u per RFC 3986, the way a browser resolves
// a relative link against a base page. This is the "standard RFC 3986 merge"
// spec.md §4.3 calls for when a node's own id lacks an absolute scheme.
func (u URI) ResolveReference(ref URI) URI {
	if u.u == nil {
		return ref
	}
	if ref.u == nil {
		return u
	}
	return URI{u: u.u.ResolveReference(ref.u)}
}
