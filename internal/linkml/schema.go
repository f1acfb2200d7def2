// SPDX-License-Identifier: AGPL-3.0-or-later

// Package linkml loads LinkML schema YAML, with helpers for the MIxS
// checklist schema.
package linkml

import (
	"regexp"
	"slices"
	"strings"
)

var (
	termURI     = regexp.MustCompile(`^MIXS:[0-9]`)
	proposedURI = regexp.MustCompile(`^MIXS:9`)
)

// SlotKind classifies a slot by its URI.
type SlotKind string

const (
	SlotTerm       SlotKind = "term"
	SlotCollection SlotKind = "collection"
)

// Slot is one entry of the schema's slots mapping.
type Slot struct {
	Name        string
	Title       string
	Description string
	SlotURI     string
	MixsID      string
}

// Kind reports whether the slot is a MIxS term or a collection.
func (s Slot) Kind() SlotKind {
	if termURI.MatchString(s.SlotURI) {
		return SlotTerm
	}
	return SlotCollection
}

// IsProposedTerm reports whether the slot is a term in the MIXS:9 range.
func (s Slot) IsProposedTerm() bool { return proposedURI.MatchString(s.SlotURI) }

// IsDataSlot reports whether the slot name ends in "_data"; such slots
// are not fields.
func (s Slot) IsDataSlot() bool { return strings.HasSuffix(s.Name, "_data") }

type Class struct {
	Name        string
	Description string
	IsA         string
	Slots       []string
}

// Schema is a loaded LinkML document. Slots, Classes and Subsets keep
// document order.
type Schema struct {
	ID          string
	Name        string
	Description string
	Version     string
	Comments    []string
	Slots       []Slot
	Classes     []Class
	Subsets     []string

	byTitle  map[string]int
	byMixsID map[string]int
}

func (s *Schema) index() {
	s.byTitle = make(map[string]int, len(s.Slots))
	s.byMixsID = make(map[string]int)
	for i, slot := range s.Slots {
		if slot.Title != "" {
			s.byTitle[slot.Title] = i
		}
		if slot.MixsID != "" {
			s.byMixsID[slot.MixsID] = i
		}
	}
}

// SlotByTitle returns the last slot carrying title.
func (s *Schema) SlotByTitle(title string) (Slot, bool) {
	i, ok := s.byTitle[title]
	if !ok {
		return Slot{}, false
	}
	return s.Slots[i], true
}

// SlotByMixsID returns the last slot carrying the given mixs_id.
func (s *Schema) SlotByMixsID(id string) (Slot, bool) {
	i, ok := s.byMixsID[id]
	if !ok {
		return Slot{}, false
	}
	return s.Slots[i], true
}

// TermSlots returns the sorted names of term slots.
func (s *Schema) TermSlots() []string {
	return s.names(func(sl Slot) bool { return sl.Kind() == SlotTerm })
}

// ProposedTermSlots returns the sorted names of proposed term slots.
func (s *Schema) ProposedTermSlots() []string {
	return s.names(Slot.IsProposedTerm)
}

// CollectionSlots returns the sorted names of collection slots.
func (s *Schema) CollectionSlots() []string {
	return s.names(func(sl Slot) bool { return sl.Kind() == SlotCollection })
}

func (s *Schema) names(keep func(Slot) bool) []string {
	out := []string{}
	for _, sl := range s.Slots {
		if keep(sl) {
			out = append(out, sl.Name)
		}
	}
	slices.Sort(out)
	return out
}

// FieldNames returns slot names in document order, skipping data slots.
func (s *Schema) FieldNames() []string {
	out := []string{}
	for _, sl := range s.Slots {
		if !sl.IsDataSlot() {
			out = append(out, sl.Name)
		}
	}
	return out
}

// FieldTitles returns the titles matching FieldNames, position for position.
func (s *Schema) FieldTitles() []string {
	out := []string{}
	for _, sl := range s.Slots {
		if !sl.IsDataSlot() {
			out = append(out, sl.Title)
		}
	}
	return out
}

// Overview summarises a schema.
type Overview struct {
	Name          string
	ID            string
	Version       string
	Description   string
	Comments      []string
	SlotCount     int
	ClassCount    int
	SubsetCount   int
	Subsets       []string
	TitleIndex    int
	MixsIDIndex   int
	FieldCount    int
	TermCount     int
	ProposedCount int
	FieldSample   []string
	TitleSample   []string
}

// Overview computes summary counts; samples hold up to sample entries.
func (s *Schema) Overview(sample int) Overview {
	fields, titles := s.FieldNames(), s.FieldTitles()
	return Overview{
		Name:          s.Name,
		ID:            s.ID,
		Version:       s.Version,
		Description:   s.Description,
		Comments:      s.Comments,
		SlotCount:     len(s.Slots),
		ClassCount:    len(s.Classes),
		SubsetCount:   len(s.Subsets),
		Subsets:       s.Subsets,
		TitleIndex:    len(s.byTitle),
		MixsIDIndex:   len(s.byMixsID),
		FieldCount:    len(fields),
		TermCount:     len(s.TermSlots()),
		ProposedCount: len(s.ProposedTermSlots()),
		FieldSample:   head(fields, sample),
		TitleSample:   head(titles, sample),
	}
}

func head(in []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(in) {
		n = len(in)
	}
	return in[:n]
}
