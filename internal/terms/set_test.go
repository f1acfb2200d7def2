// SPDX-License-Identifier: AGPL-3.0-or-later
package terms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSetAlgebra(t *testing.T) {
	a := NewSet("temp", "ph", "depth")
	b := NewSet("temp", "salinity")

	tests := []struct {
		name string
		got  Set
		want []string
	}{
		{"intersect", a.Intersect(b), []string{"temp"}},
		{"intersect commutes", b.Intersect(a), []string{"temp"}},
		{"a minus b", a.Difference(b), []string{"depth", "ph"}},
		{"b minus a", b.Difference(a), []string{"salinity"}},
		{"union", a.Union(b), []string{"depth", "ph", "salinity", "temp"}},
		{"empty intersect", a.Intersect(NewSet()), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Sorted()); diff != "" {
				t.Errorf("members mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetEqualAndHas(t *testing.T) {
	assert.True(t, NewSet("a", "b").Equal(NewSet("b", "a", "a")))
	assert.False(t, NewSet("a").Equal(NewSet("a", "b")))
	assert.False(t, NewSet("a", "c").Equal(NewSet("a", "b")))

	s := NewSet()
	s.Add("x")
	assert.True(t, s.Has("x"))
	assert.False(t, s.Has("X"))
	assert.Equal(t, 1, s.Len())
	assert.NotNil(t, NewSet().Sorted())
}
