// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reconcile compares two canonical term sets against the ENA
// baselines. It performs no I/O; callers format and write the Report.
package reconcile

import (
	"github.com/bartekus/vocabrecon/internal/terms"
)

// Input is everything Compute needs.
type Input struct {
	// A is the draft checklist's terms, B the ENA upload sheet's terms.
	A, B terms.Set
	// NewTermMarked holds the B terms flagged as needing a new ENA term.
	NewTermMarked terms.Set

	Mandatory     terms.Set
	ExperimentAll terms.Set

	// Registry is the registry's field labels. Nil skips the registry check.
	Registry terms.Set
}

// Report is the outcome of a reconciliation. All lists are sorted.
type Report struct {
	ACount int `json:"a_count"`
	BCount int `json:"b_count"`

	Common                   []string `json:"common"`
	NewOnA                   []string `json:"new_on_a"`
	AOnly                    []string `json:"a_only"`
	BOnly                    []string `json:"b_only"`
	AOnlyExcludingExperiment []string `json:"a_only_excluding_experiment"`

	MandatoryTotal   int      `json:"mandatory_total"`
	MandatoryCovered []string `json:"mandatory_covered"`
	MandatoryMissing []string `json:"mandatory_missing"`

	RegistryChecked bool     `json:"registry_checked"`
	ANotInRegistry  []string `json:"a_not_in_registry,omitempty"`
}

// Coverage is the share of mandatory fields present in B, in [0, 1].
// An empty baseline counts as fully covered.
func (r Report) Coverage() float64 {
	if r.MandatoryTotal == 0 {
		return 1
	}
	return float64(len(r.MandatoryCovered)) / float64(r.MandatoryTotal)
}

// Compute runs the set comparisons. Equality is exact and case-sensitive.
func Compute(in Input) Report {
	a, b := orEmpty(in.A), orEmpty(in.B)
	mandatory := orEmpty(in.Mandatory)
	aOnly := a.Difference(b)

	r := Report{
		ACount: a.Len(),
		BCount: b.Len(),

		Common:                   a.Intersect(b).Sorted(),
		NewOnA:                   a.Intersect(orEmpty(in.NewTermMarked)).Sorted(),
		AOnly:                    aOnly.Sorted(),
		BOnly:                    b.Difference(a).Sorted(),
		AOnlyExcludingExperiment: aOnly.Difference(orEmpty(in.ExperimentAll)).Sorted(),

		MandatoryTotal:   mandatory.Len(),
		MandatoryCovered: mandatory.Intersect(b).Sorted(),
		MandatoryMissing: mandatory.Difference(b).Sorted(),
	}

	if in.Registry != nil {
		r.RegistryChecked = true
		r.ANotInRegistry = a.Difference(in.Registry).Sorted()
	}
	return r
}

func orEmpty(s terms.Set) terms.Set {
	if s == nil {
		return terms.Set{}
	}
	return s
}
