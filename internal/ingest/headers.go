package ingest

import (
	"regexp"
	"strings"
)

// ColumnMap binds canonical column names to the header strings actually
// observed in one uploaded file. A canonical column with no matching
// header is simply absent; requiredness is judged by the classifier.
type ColumnMap map[string]string

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeKey lowercases, trims, and collapses internal whitespace
// runs to a single underscore, so "Order Date", "order_date" and
// " ORDER  DATE " all normalize identically.
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRe.ReplaceAllString(s, "_")
}

// FindColumn returns the first observed header satisfying the first
// matching alias. A header matches an alias when their normalized forms
// are equal, or become equal once underscores are stripped from both
// ("OrderDate" vs "order_date").
func FindColumn(headers []string, aliases []string) (string, bool) {
	type observed struct {
		orig string
		key  string
	}
	normalized := make([]observed, 0, len(headers))
	for _, h := range headers {
		normalized = append(normalized, observed{orig: h, key: NormalizeKey(h)})
	}
	for _, alias := range aliases {
		a := NormalizeKey(alias)
		aFlat := strings.ReplaceAll(a, "_", "")
		for _, n := range normalized {
			if n.key == a || strings.ReplaceAll(n.key, "_", "") == aFlat {
				return n.orig, true
			}
		}
	}
	return "", false
}

// ResolveColumns builds the ColumnMap for one upload. Resolution is
// per-column independent, so alias table iteration order is irrelevant.
func ResolveColumns(headers []string, aliases map[string][]string) ColumnMap {
	cols := make(ColumnMap, len(aliases))
	for column, list := range aliases {
		if h, ok := FindColumn(headers, list); ok {
			cols[column] = h
		}
	}
	return cols
}

// NormalizeRowKeys rewrites a row's keys to their normalized form. Used
// by the ratings path, which reads canonical keys directly instead of
// going through a ColumnMap.
func NormalizeRowKeys(row RawRow) RawRow {
	out := make(RawRow, len(row))
	for k, v := range row {
		out[NormalizeKey(k)] = v
	}
	return out
}
