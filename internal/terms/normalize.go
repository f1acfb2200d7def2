// SPDX-License-Identifier: AGPL-3.0-or-later
package terms

import (
	"regexp"
	"strings"

	"github.com/bartekus/vocabrecon/internal/cell"
)

// placeholder matches the filler values curators put in term columns.
var placeholder = regexp.MustCompile(`(?i)^\s*(\?|TBD|N\.A\.|N\.A\.\?|eh\?|not_needed)\s*$`)

// IsPlaceholder reports whether s is a placeholder token rather than a term.
func IsPlaceholder(s string) bool {
	return placeholder.MatchString(s)
}

// Normalize turns one raw column into a canonical term set.
//
// Null and NaN cells are skipped. Every other cell is stringified from its
// value (numbers lose signs and leading zeros), stripped
// of double quotes and cut at the first '+'. Empty results and placeholder
// tokens are dropped. Normalize never fails; the output is a fixed point.
func Normalize(values []cell.Cell) Set {
	out := make(Set)
	for _, v := range values {
		if v.IsNull() || v.IsNaN() {
			continue
		}
		term, ok := Clean(v.Value())
		if !ok {
			continue
		}
		out.Add(term)
	}
	return out
}

// NormalizeStrings is Normalize over plain strings.
func NormalizeStrings(values []string) Set {
	cells := make([]cell.Cell, len(values))
	for i, v := range values {
		cells[i] = cell.Text(v)
	}
	return Normalize(cells)
}

// Clean normalizes a single value. ok is false when nothing usable remains.
func Clean(raw string) (term string, ok bool) {
	if IsPlaceholder(raw) {
		return "", false
	}
	s := strings.ReplaceAll(raw, `"`, "")
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" || IsPlaceholder(s) {
		return "", false
	}
	return s, true
}
