// SPDX-License-Identifier: AGPL-3.0-or-later
package cell

import (
	"math"
	"strings"
)

var truthyWords = map[string]struct{}{
	"true": {}, "t": {}, "yes": {}, "y": {}, "1": {},
}

// Truthy interprets a cell as a flag. It fails closed: anything not
// explicitly truthy is false.
func Truthy(c Cell) bool {
	switch c.kind {
	case KindBool:
		return c.boolean
	case KindNull:
		return false
	case KindNumber:
		if math.IsNaN(c.number) {
			return false
		}
		if c.integer {
			return c.number == 1
		}
		return truthyText(c.Value())
	case KindText:
		return truthyText(c.raw)
	default:
		return false
	}
}

func truthyText(s string) bool {
	_, ok := truthyWords[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Mask applies Truthy to every cell of a column.
func Mask(column []Cell) []bool {
	out := make([]bool, len(column))
	for i, c := range column {
		out[i] = Truthy(c)
	}
	return out
}
