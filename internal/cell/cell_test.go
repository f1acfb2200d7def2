// SPDX-License-Identifier: AGPL-3.0-or-later
package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw      string
		kind     Kind
		isNaN    bool
		integer  bool
		rendered string
	}{
		{raw: "", kind: KindNull, rendered: ""},
		{raw: "NaN", kind: KindNumber, isNaN: true, rendered: "NaN"},
		{raw: "N/A", kind: KindNumber, isNaN: true, rendered: "N/A"},
		{raw: "TRUE", kind: KindBool, rendered: "TRUE"},
		{raw: "false", kind: KindBool, rendered: "false"},
		{raw: "1", kind: KindNumber, integer: true, rendered: "1"},
		{raw: " 42 ", kind: KindNumber, integer: true, rendered: " 42 "},
		{raw: "1.0", kind: KindNumber, rendered: "1.0"},
		{raw: "Inf", kind: KindText, rendered: "Inf"},
		{raw: "NAN", kind: KindText, rendered: "NAN"},
		{raw: "N.A.", kind: KindText, rendered: "N.A."},
		{raw: "depth", kind: KindText, rendered: "depth"},
		{raw: " yes ", kind: KindText, rendered: " yes "},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := Parse(tt.raw)
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.isNaN, c.IsNaN())
			assert.Equal(t, tt.integer, c.IsInteger())
			assert.Equal(t, tt.rendered, c.String())
		})
	}
}

func TestConstructedCellsRender(t *testing.T) {
	assert.Equal(t, "True", Bool(true).String())
	assert.Equal(t, "False", Bool(false).String())
	assert.Equal(t, "7", Int(7).String())
	assert.Equal(t, "2.5", Float(2.5).String())
	assert.Equal(t, "3.0", Float(3).String())
	assert.Equal(t, "NaN", Float(math.NaN()).String())
	assert.Equal(t, "", Null().String())
	assert.True(t, Cell{}.IsNull())
}

func TestValueIgnoresSourceSpelling(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"+5", "5"},
		{"007", "7"},
		{" 12 ", "12"},
		{"-0", "0"},
		{"1.50", "1.5"},
		{"+2.0", "2.0"},
		{"TRUE", "True"},
		{"false", "False"},
		{" temp ", " temp "},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c := Parse(tt.raw)
			assert.Equal(t, tt.want, c.Value())
			assert.Equal(t, tt.raw, c.String(), "String keeps the source text")
		})
	}
}

func TestAccessors(t *testing.T) {
	b, ok := Bool(true).BoolValue()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = Text("x").NumberValue()
	assert.False(t, ok)

	s, ok := Text(" x ").TextValue()
	assert.True(t, ok)
	assert.Equal(t, " x ", s)

	_, ok = Int(1).TextValue()
	assert.False(t, ok)
}
