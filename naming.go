package jsonapi

import (
	"strings"

	"github.com/aarondl/strmangle"
)

// TypeNamer derives the resource type name of a related resource from its
// relation name. The default pluralizes the last hyphen-separated segment;
// pass WithTypeNamer to install a different convention.
type TypeNamer func(relation string) string

// KebabPlural pluralizes the final segment of a kebab-cased relation name,
// e.g. "related-model" -> "related-models", "category" -> "categories".
func KebabPlural(relation string) string {
	if relation == "" {
		return relation
	}
	segments := strings.Split(relation, "-")
	segments[len(segments)-1] = strmangle.Plural(segments[len(segments)-1])
	return strings.Join(segments, "-")
}
