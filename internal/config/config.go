// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves runtime settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/vocabrecon/internal/domain"
	"github.com/bartekus/vocabrecon/internal/registry"
	"github.com/bartekus/vocabrecon/internal/sheets"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "vocabrecon.yaml"

const (
	EnvRegistryURL = "VOCABRECON_REGISTRY_URL"
	EnvSheetsURL   = "VOCABRECON_SHEETS_URL"
	EnvTimeout     = "VOCABRECON_TIMEOUT"
)

// Default sheets: AEGIS_plus_draft_checklist (A) and AEGIS_ENA_upload (B).
const (
	DefaultSheetA = "https://docs.google.com/spreadsheets/d/1EWNjbSQYVs-mnsysTYpWs-l1QoiE4nbPTQyXmCWli5Y/edit?gid=143021854"
	DefaultSheetB = "https://docs.google.com/spreadsheets/d/1C9Zzsa_27GjdIirOL3IwBBV9FvWudJXpfNP8PfYuWKM/edit?gid=0"
)

type Columns struct {
	A       string
	B       string
	NewTerm string
}

type Output struct {
	ChecklistDir string
	TermSlots    string
	SnapshotDir  string
}

// Config is the resolved configuration. It is read-only once loaded.
type Config struct {
	RegistryURL string
	PageSize    int
	Timeout     time.Duration
	SheetsURL   string
	SheetA      string
	SheetB      string
	Columns     Columns
	Output      Output

	// Source is the file the config was read from, empty for none.
	Source string
}

func Default() Config {
	return Config{
		RegistryURL: registry.DefaultBaseURL,
		PageSize:    registry.DefaultPageSize,
		Timeout:     30 * time.Second,
		SheetsURL:   sheets.DefaultBaseURL,
		SheetA:      DefaultSheetA,
		SheetB:      DefaultSheetB,
		Columns: Columns{
			A:       "ENA wish",
			B:       "ENA recommended",
			NewTerm: "Needs New Term in ENA",
		},
		Output: Output{
			ChecklistDir: "data/checklist",
			TermSlots:    "data/output/term_slots.txt",
		},
	}
}

// Source selects where Load reads from.
type Source struct {
	// Path is an explicit config file; it must exist when set.
	Path string
	// Lookup reads environment variables; nil means os.LookupEnv.
	Lookup func(string) (string, bool)
}

// Load builds a Config: defaults, then the YAML file, then the environment.
// Flags are applied by the caller on top of the result.
func Load(src Source) (Config, error) {
	cfg := Default()

	path, required := src.Path, src.Path != ""
	if !required {
		path = DefaultFile
	}

	b, err := os.ReadFile(path) //nolint:gosec // operator supplied config path
	switch {
	case err == nil:
		var dto YAMLConfig
		if err := yaml.Unmarshal(b, &dto); err != nil {
			return Config{}, &domain.OpError{Op: "config.load", Kind: domain.KindInvalidInput, Path: path, Cause: err}
		}
		if err := apply(&cfg, path, dto); err != nil {
			return Config{}, err
		}
		cfg.Source = path
	case required || !errors.Is(err, os.ErrNotExist):
		return Config{}, &domain.OpError{Op: "config.load", Kind: domain.KindIO, Path: path, Cause: err}
	}

	lookup := src.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func apply(cfg *Config, path string, dto YAMLConfig) error {
	if dto.Timeout != "" {
		d, err := ParseTimeout(dto.Timeout)
		if err != nil {
			return invalidField(path, "timeout", err.Error())
		}
		cfg.Timeout = d
	}
	if dto.Registry.PageSize != 0 {
		cfg.PageSize = dto.Registry.PageSize
	}

	setString(&cfg.RegistryURL, dto.Registry.URL)
	setString(&cfg.SheetsURL, dto.Sheets.URL)
	setString(&cfg.SheetA, dto.Sheets.A)
	setString(&cfg.SheetB, dto.Sheets.B)
	setString(&cfg.Columns.A, dto.Columns.A)
	setString(&cfg.Columns.B, dto.Columns.B)
	setString(&cfg.Columns.NewTerm, dto.Columns.NewTerm)
	setString(&cfg.Output.ChecklistDir, dto.Output.ChecklistDir)
	setString(&cfg.Output.TermSlots, dto.Output.TermSlots)
	setString(&cfg.Output.SnapshotDir, dto.Output.SnapshotDir)
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRegistryURL); ok {
		setString(&cfg.RegistryURL, v)
	}
	if v, ok := lookup(EnvSheetsURL); ok {
		setString(&cfg.SheetsURL, v)
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			return invalidField(EnvTimeout, "timeout", err.Error())
		}
		cfg.Timeout = d
	}
	return nil
}

// ParseTimeout accepts a Go duration ("45s") or a whole number of seconds.
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

// Validate checks the resolved values.
func (c Config) Validate() error {
	path := c.Source
	if err := checkURL(c.RegistryURL); err != nil {
		return invalidField(path, "registry.url", err.Error())
	}
	if err := checkURL(c.SheetsURL); err != nil {
		return invalidField(path, "sheets.url", err.Error())
	}
	if c.PageSize <= 0 {
		return invalidField(path, "registry.page_size", "must be positive")
	}
	if c.Timeout <= 0 {
		return invalidField(path, "timeout", "must be positive")
	}
	return nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:    "config.validate",
		Kind:  domain.KindInvalidInput,
		Path:  path,
		Cause: fmt.Errorf("%s: %s: %w", field, msg, domain.ErrInvalidInput),
	}
}
