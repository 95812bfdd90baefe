package config

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics removes diacritical marks from a string (e.g., "Pohlednice Žlutá" -> "Pohlednice Zluta").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// normalizeName folds a preset name for lookup: no diacritics, lowercase,
// dashes and underscores as spaces, "×" as "x".
func normalizeName(name string) string {
	name = removeDiacritics(name)
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("-", " ", "_", " ", "×", "x").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}

// sameName reports whether two preset names refer to the same preset.
func sameName(a, b string) bool {
	return normalizeName(a) == normalizeName(b)
}
