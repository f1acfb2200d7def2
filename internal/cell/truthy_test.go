// SPDX-License-Identifier: AGPL-3.0-or-later
package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   Cell
		want bool
	}{
		{"bool true", Bool(true), true},
		{"bool false", Bool(false), false},
		{"null", Null(), false},
		{"nan", Float(math.NaN()), false},
		{"int one", Int(1), true},
		{"int zero", Int(0), false},
		{"int two", Int(2), false},
		{"int minus one", Int(-1), false},
		{"float one", Float(1), false},
		{"parsed float 1.0", Parse("1.0"), false},
		{"text yes padded", Text("  Yes "), true},
		{"text y", Text("y"), true},
		{"text T", Text("T"), true},
		{"text 1", Text("1"), true},
		{"text no", Text("no"), false},
		{"text empty", Text(""), false},
		{"text question", Text("?"), false},
		{"parsed TRUE", Parse("TRUE"), true},
		{"parsed 1", Parse("1"), true},
		{"parsed 0", Parse("0"), false},
		{"unknown kind", Cell{kind: Kind(99)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.in))
		})
	}
}

func TestTruthyFailsClosed(t *testing.T) {
	inputs := []string{"", "NaN", "maybe", "1.5", "-1", "yes please", "Inf", "真", "\x00"}
	for _, raw := range inputs {
		assert.NotPanics(t, func() { _ = Truthy(Parse(raw)) })
		assert.False(t, Truthy(Parse(raw)), "raw=%q", raw)
	}
}

func TestMask(t *testing.T) {
	got := Mask([]Cell{Text("yes"), Null(), Int(1), Text("no")})
	assert.Equal(t, []bool{true, false, true, false}, got)
}
