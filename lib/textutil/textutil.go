package textutil

import (
	"regexp"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/gosimple/slug"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.TrimSpace(name)
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// Slug lowercases `s`, transliterates it to ASCII and joins the remaining
// alphanumeric runs with hyphens. "Bad Vöslau" -> "bad-voslau".
func Slug(s string) string {
	return slug.Make(s)
}

// FuzzyThreshold is the minimum Jaro-Winkler similarity for two names to be
// considered the same.
const FuzzyThreshold = 0.92

// MatchName reports whether `name` matches any of `matchers`, either exactly
// after normalization or by Jaro-Winkler similarity, so "badenbeiwien"
// and "Baden bei Wien" or "Traiskirchn" and "Traiskirchen" both match.
func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		m = NormalizeName(m)
		if m == "" {
			continue
		}
		if m == name {
			return true
		}
		if matchr.JaroWinkler(name, m, false) >= FuzzyThreshold {
			return true
		}
	}
	return false
}
