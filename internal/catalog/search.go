package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold приводит строку к виду для сравнения: без регистра и диакритики
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(strings.TrimSpace(stripped))
}

// Search returns items whose name, category, location or description contain
// every word of query. Matching ignores case and diacritics.
// Name matches are listed before other matches.
func (c *Catalog) Search(query string) []Item {
	words := strings.Fields(fold(query))
	if len(words) == 0 {
		return nil
	}

	var byName, other []Item
	for _, item := range c.items {
		name := fold(item.Name)
		haystack := strings.Join([]string{name, fold(item.Category), fold(item.Location), fold(item.Description)}, " ")

		if !containsAll(haystack, words) {
			continue
		}
		if containsAll(name, words) {
			byName = append(byName, item.Clone())
		} else {
			other = append(other, item.Clone())
		}
	}

	return append(byName, other...)
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}
	return true
}
