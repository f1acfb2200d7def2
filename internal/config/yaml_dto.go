// SPDX-License-Identifier: AGPL-3.0-or-later
package config

// YAMLConfig mirrors the on-disk config file. Empty values keep defaults.
type YAMLConfig struct {
	Timeout  string       `yaml:"timeout"`
	Registry YAMLRegistry `yaml:"registry"`
	Sheets   YAMLSheets   `yaml:"sheets"`
	Columns  YAMLColumns  `yaml:"columns"`
	Output   YAMLOutput   `yaml:"output"`
}

type YAMLRegistry struct {
	URL      string `yaml:"url"`
	PageSize int    `yaml:"page_size"`
}

type YAMLSheets struct {
	URL string `yaml:"url"`
	A   string `yaml:"a"`
	B   string `yaml:"b"`
}

type YAMLColumns struct {
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	NewTerm string `yaml:"new_term"`
}

type YAMLOutput struct {
	ChecklistDir string `yaml:"checklist_dir"`
	TermSlots    string `yaml:"term_slots"`
	SnapshotDir  string `yaml:"snapshot_dir"`
}
