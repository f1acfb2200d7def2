// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terms cleans raw vocabulary columns into canonical term sets and
// provides the set algebra used to compare them.
package terms

import (
	"sort"
)

// Set is an unordered set of canonical term strings.
type Set map[string]struct{}

// NewSet builds a Set from the given members verbatim (no normalization).
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts a member.
func (s Set) Add(item string) { s[item] = struct{}{} }

// Has reports membership.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Sorted returns the members in lexicographic order. Never nil.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for k := range small {
		if large.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Difference returns s − o.
func (s Set) Difference(o Set) Set {
	out := make(Set)
	for k := range s {
		if !o.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for k := range s {
		out.Add(k)
	}
	for k := range o {
		out.Add(k)
	}
	return out
}

// Equal reports whether both sets hold exactly the same members.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for k := range s {
		if !o.Has(k) {
			return false
		}
	}
	return true
}
