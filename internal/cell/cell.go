// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cell models one value of a tabular source as a tagged variant
// and interprets it as a boolean flag.
package cell

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Cell.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Cell is a single spreadsheet value. The zero value is Null.
type Cell struct {
	kind    Kind
	boolean bool
	number  float64
	integer bool
	raw     string // original text, if the cell came from Parse
}

// Null returns a missing value.
func Null() Cell { return Cell{} }

// Bool returns a boolean cell.
func Bool(b bool) Cell { return Cell{kind: KindBool, boolean: b} }

// Int returns an integer-valued number cell.
func Int(n int64) Cell { return Cell{kind: KindNumber, number: float64(n), integer: true} }

// Float returns a floating point number cell. NaN is allowed.
func Float(f float64) Cell { return Cell{kind: KindNumber, number: f} }

// Text returns a string cell. The string is kept verbatim.
func Text(s string) Cell { return Cell{kind: KindText, raw: s} }

// Kind returns the variant tag.
func (c Cell) Kind() Kind { return c.kind }

// IsNull reports whether the cell is missing.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// IsNaN reports whether the cell is a NaN number.
func (c Cell) IsNaN() bool { return c.kind == KindNumber && math.IsNaN(c.number) }

// IsInteger reports whether the cell is an integer number.
func (c Cell) IsInteger() bool { return c.kind == KindNumber && c.integer }

// BoolValue returns the boolean payload and whether the cell is a Bool.
func (c Cell) BoolValue() (bool, bool) { return c.boolean, c.kind == KindBool }

// NumberValue returns the numeric payload and whether the cell is a Number.
func (c Cell) NumberValue() (float64, bool) { return c.number, c.kind == KindNumber }

// TextValue returns the string payload and whether the cell is Text.
func (c Cell) TextValue() (string, bool) {
	if c.kind != KindText {
		return "", false
	}
	return c.raw, true
}

// Value renders the parsed value rather than its source spelling: "+5"
// and "007" read as 5 and 7, "TRUE" reads as True.
func (c Cell) Value() string {
	if c.kind != KindText {
		c.raw = ""
	}
	return c.String()
}

// String renders the cell the way it appeared in the source. Null renders
// as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindNull:
		return ""
	case KindBool:
		if c.raw != "" {
			return c.raw
		}
		if c.boolean {
			return "True"
		}
		return "False"
	case KindNumber:
		if c.raw != "" {
			return c.raw
		}
		if math.IsNaN(c.number) {
			return "NaN"
		}
		if c.integer {
			return strconv.FormatInt(int64(c.number), 10)
		}
		s := strconv.FormatFloat(c.number, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eInf") {
			s += ".0"
		}
		return s
	default:
		return c.raw
	}
}

// naMarkers are the strings read as NaN at ingestion.
var naMarkers = map[string]struct{}{
	"NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NA": {}, "N/A": {}, "n/a": {}, "#N/A": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {},
}

// Parse converts one raw CSV field into a Cell.
func Parse(raw string) Cell {
	if raw == "" {
		return Null()
	}
	if _, ok := naMarkers[raw]; ok {
		c := Float(math.NaN())
		c.raw = raw
		return c
	}

	switch raw {
	case "True", "TRUE", "true":
		return Cell{kind: KindBool, boolean: true, raw: raw}
	case "False", "FALSE", "false":
		return Cell{kind: KindBool, boolean: false, raw: raw}
	}

	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		c := Int(n)
		c.raw = raw
		return c
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !strings.ContainsAny(trimmed, "xXpP_") && !isSpecialFloat(trimmed) {
		c := Float(f)
		c.raw = raw
		return c
	}
	return Text(raw)
}

// isSpecialFloat keeps words strconv accepts, like "Inf" or "NAN", as text.
func isSpecialFloat(s string) bool {
	s = strings.TrimLeft(strings.ToLower(s), "+-")
	return s == "inf" || s == "infinity" || s == "nan"
}
