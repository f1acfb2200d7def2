// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checklist writes draft checklist markdown from an annotated sheet.
package checklist

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/internal/cell"
	"github.com/bartekus/vocabrecon/internal/domain"
	"github.com/bartekus/vocabrecon/internal/render"
	"github.com/bartekus/vocabrecon/internal/sheets"
)

const (
	HighConfidenceFile = "ENA_AEGIS_draft_checklists_high_confidence.md"
	AllConfidencesFile = "ENA_AEGIS_draft_checklists_all_confidences.md"

	ConfidenceColumn = "Confidence to add"
)

// OutputColumns are the sheet columns copied into the draft checklists.
var OutputColumns = []string{
	"ENA recommended",
	"field description(current or prospective)",
	"Needs New Term in ENA",
	"AEGIS term",
}

// Result describes what Write produced.
type Result struct {
	HighConfidencePath string
	HighConfidenceRows int
	AllConfidencesPath string
	AllConfidencesRows int
}

// IsHighConfidence accepts text confidences starting with "high", ignoring
// case and surrounding whitespace.
func IsHighConfidence(c cell.Cell) bool {
	s, ok := c.TextValue()
	return ok && strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "high")
}

// IsRated accepts text confidences that are not marked uncertain with "?".
func IsRated(c cell.Cell) bool {
	s, ok := c.TextValue()
	return ok && !strings.HasPrefix(strings.TrimSpace(s), "?")
}

// Build filters t by keep on the confidence column and renders the
// projection onto OutputColumns as a markdown table.
func Build(t *sheets.Table, keep func(cell.Cell) bool) (string, int, error) {
	filtered, err := t.Filter(ConfidenceColumn, keep)
	if err != nil {
		return "", 0, err
	}
	projected, err := filtered.Select(OutputColumns...)
	if err != nil {
		return "", 0, err
	}
	return render.Table(projected.Header, displayRows(projected)), projected.Len(), nil
}

// Write renders both draft checklists into outDir.
func Write(t *sheets.Table, outDir string, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var res Result
	outputs := []struct {
		name string
		keep func(cell.Cell) bool
		path *string
		rows *int
	}{
		{HighConfidenceFile, IsHighConfidence, &res.HighConfidencePath, &res.HighConfidenceRows},
		{AllConfidencesFile, IsRated, &res.AllConfidencesPath, &res.AllConfidencesRows},
	}

	for _, o := range outputs {
		md, n, err := Build(t, o.keep)
		if err != nil {
			return res, err
		}
		path := filepath.Join(outDir, o.name)
		log.Debug("writing draft checklist", zap.String("path", path), zap.Int("rows", n))
		if err := render.AtomicWrite(path, []byte(md)); err != nil {
			return res, &domain.OpError{Op: "checklist.write", Kind: domain.KindIO, Path: path, Cause: err}
		}
		*o.path, *o.rows = path, n
	}
	return res, nil
}

// displayRows stringifies cells; Null and NaN render empty.
func displayRows(t *sheets.Table) [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			if c.IsNull() || c.IsNaN() {
				continue
			}
			out[i][j] = c.String()
		}
	}
	return out
}
