package jsonschemair

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// acronymReplacements lists initialisms every target-language emitter
// corrects the casing of after strcase runs, independent of target syntax.
var acronymReplacements = map[string]string{
	"Id":    "ID",
	"Http":  "HTTP",
	"Https": "HTTPS",
	"Api":   "API",
	"Url":   "URL",
	"Json":  "JSON",
	"Xml":   "XML",
	"Html":  "HTML",
}

// TypeName derives an exported, PascalCase type name for a node from its
// Path, preferring an explicit title when the source schema supplied one
// (spec.md §4.6: "the emitter derives a name from title, else the
// dictionary key's final segment").
func TypeName(p Path, title string) string {
	word := title
	if word == "" {
		word = p.Name()
	}
	if word == "" || word == "#" {
		word = "Root"
	}

	name := strcase.ToCamel(word)
	for bad, good := range acronymReplacements {
		if strings.HasSuffix(name, bad) {
			name = strings.TrimSuffix(name, bad) + good
		}
	}
	for bad, good := range acronymReplacements {
		if strings.HasPrefix(name, bad) {
			name = good + strings.TrimPrefix(name, bad)
		}
	}
	return name
}

// FieldName derives a field/property name from a JSON property key, used by
// struct- and record-shaped emitters alike. exported controls the leading
// letter case (Go wants exported fields, Elm record fields are lowercase).
func FieldName(key string, exported bool) string {
	if exported {
		return TypeName(Path{}, key)
	}
	camel := strcase.ToLowerCamel(key)
	return camel
}

// Pluralize is a best-effort English pluralizer: it appends "es" to a word
// ending in "s" and "s" otherwise. The emitters do not call it; Array and
// Tuple type names come from their Path like every other node's.
func Pluralize(word string) string {
	if word == "" {
		return word
	}
	if strings.HasSuffix(word, "s") {
		return word + "es"
	}
	return word + "s"
}

// IsTitleWord reports whether s is already rendered in Title-case by the
// language-neutral caser, i.e. strcase would not need to touch it further.
func IsTitleWord(s string) bool {
	return titleCaser.String(s) == s
}
