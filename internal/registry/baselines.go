// SPDX-License-Identifier: AGPL-3.0-or-later
package registry

import "github.com/bartekus/vocabrecon/internal/terms"

// Baselines are the hand-curated field sets compared against sheet terms.
type Baselines struct {
	// Mandatory lists the ENA sample fields every checklist must carry.
	Mandatory terms.Set
	// ExperimentAll lists every field of the ENA experiment checklist.
	ExperimentAll terms.Set
	// ExperimentMandatory lists the mandatory experiment fields.
	ExperimentMandatory terms.Set
}

// DefaultBaselines returns fresh copies of the ENA baselines.
func DefaultBaselines() Baselines {
	return Baselines{
		Mandatory: terms.NewSet(
			"tax_id",
			"collection date",
			"sample_alias",
			"sample_description",
			"sample_title",
			"scientific_name",
			"geographic location (country and/or sea)",
		),
		ExperimentMandatory: terms.NewSet(
			"platform",
			"instrument_model",
			"library_strategy",
			"library_source",
			"library_selection",
			"library_name",
			"library_layout",
		),
		ExperimentAll: terms.NewSet(
			"design_description",
			"library_layout",
			"library_strategy",
			"library_source",
			"library_selection",
			"library_name",
			"library_description",
			"insert_size",
			"platform",
			"instrument_model",
			"instrument_metadata",
			"sequencing_protocol",
		),
	}
}

func (b Baselines) clone() Baselines {
	return Baselines{
		Mandatory:           b.Mandatory.Union(nil),
		ExperimentAll:       b.ExperimentAll.Union(nil),
		ExperimentMandatory: b.ExperimentMandatory.Union(nil),
	}
}
