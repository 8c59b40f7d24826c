package jsonschemair

import (
	"fmt"
	"slices"
	"strings"
)

// Path is a JSON-pointer-like sequence of segments identifying a node within
// one schema document. The first segment is always the document root marker
// "#". Segments are compared as raw strings; no percent-decoding is
// performed since JSON Schema keys are assumed literal.
type Path struct {
	segments []string
}

// RootPath returns the path of the document root, "#".
func RootPath() Path {
	return Path{segments: []string{"#"}}
}

// PathFromString parses a string of the form "#/a/b" into a Path. The
// round-trip law PathFromString(p.String()) == p holds for any Path p built
// from RootPath or PathFromString (not for the rootless paths
// pathFromSegments may build).
func PathFromString(s string) (Path, error) {
	if s == "" {
		return Path{}, fmt.Errorf("jsonschemair: empty path string")
	}
	parts := strings.Split(s, "/")
	if parts[0] != "#" {
		return Path{}, fmt.Errorf("jsonschemair: path %q does not start with root marker \"#\"", s)
	}
	return Path{segments: parts}, nil
}

// String renders the path back to its canonical "#/a/b" form.
func (p Path) String() string {
	if len(p.segments) == 0 {
		return "#"
	}
	return strings.Join(p.segments, "/")
}

// AddChild returns a new Path with name appended as the last segment.
func (p Path) AddChild(name string) Path {
	child := make([]string, len(p.segments), len(p.segments)+1)
	copy(child, p.segments)
	child = append(child, name)
	return Path{segments: child}
}

// Parent returns the path one segment shorter, or ok=false if p is already
// the root.
func (p Path) Parent() (parent Path, ok bool) {
	if len(p.segments) <= 1 {
		return Path{}, false
	}
	return Path{segments: p.segments[:len(p.segments)-1]}, true
}

// Name returns the last segment of the path, "#" for the root path itself.
func (p Path) Name() string {
	if len(p.segments) == 0 {
		return "#"
	}
	return p.segments[len(p.segments)-1]
}

// IsRoot reports whether p is the document root path.
func (p Path) IsRoot() bool {
	return len(p.segments) == 1 && p.segments[0] == "#"
}

// Equal reports whether p and o denote the same path.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p.segments, o.segments)
}

// Depth returns the number of segments, including the root marker.
func (p Path) Depth() int {
	return len(p.segments)
}

// pathFromSegments builds a Path directly from already-split segments,
// bypassing the "#"-prefix validation PathFromString enforces. Used only for
// best-effort recovery from malformed $ref strings.
func pathFromSegments(segments []string) Path {
	return Path{segments: segments}
}
