package practice

import (
	"strings"

	"github.com/practicehub/backend/internal/models"
)

// Resolved is the canonical identity of a topic reference
type Resolved struct {
	Name string
	Slug string
}

// Canonicalize lowercases and trims s, joins whitespace-separated words with single hyphens
// and drops every character outside [a-z0-9-].
//
// The result is idempotent: Canonicalize(Canonicalize(s)) == Canonicalize(s).
func Canonicalize(s string) string {
	joined := strings.Join(strings.Fields(strings.ToLower(s)), "-")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve maps a topic reference to its display name and canonical slug.
//
// A structured reference with a slug is trusted verbatim.
// Anything else is treated as a display name and its slug is derived with Canonicalize.
// An empty Slug in the result means "no topic".
func Resolve(ref models.TopicRef) Resolved {
	if ref.Slug != "" {
		name := ref.Name
		if name == "" {
			name = ref.Slug
		}
		return Resolved{Name: name, Slug: ref.Slug}
	}
	return Resolved{Name: ref.Name, Slug: Canonicalize(ref.Name)}
}

// ResolveName resolves a bare topic string
func ResolveName(name string) Resolved {
	return Resolve(models.TopicRef{Name: name})
}
