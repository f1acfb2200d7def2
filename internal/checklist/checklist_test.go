// SPDX-License-Identifier: AGPL-3.0-or-later
package checklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/vocabrecon/internal/cell"
	"github.com/bartekus/vocabrecon/internal/domain"
	"github.com/bartekus/vocabrecon/internal/sheets"
	"github.com/bartekus/vocabrecon/internal/testutil/golden"
)

func loadSheet(t *testing.T) *sheets.Table {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "aegis_sheet.csv"))
	require.NoError(t, err)
	tbl, err := sheets.ParseCSV(data)
	require.NoError(t, err)
	return tbl
}

func TestConfidencePredicates(t *testing.T) {
	tests := []struct {
		name  string
		in    cell.Cell
		high  bool
		rated bool
	}{
		{"high", cell.Text("high"), true, true},
		{"padded mixed case", cell.Text("  High - agreed"), true, true},
		{"medium", cell.Text("medium"), false, true},
		{"question", cell.Text(" ? unsure"), false, false},
		{"empty text", cell.Text(""), false, true},
		{"null", cell.Null(), false, false},
		{"number", cell.Int(1), false, false},
		{"bool", cell.Bool(true), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.high, IsHighConfidence(tt.in))
			assert.Equal(t, tt.rated, IsRated(tt.in))
		})
	}
}

func TestWrite_Golden(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "checklist")

	res, err := Write(loadSheet(t), outDir, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.HighConfidenceRows)
	assert.Equal(t, 5, res.AllConfidencesRows)

	for name, path := range map[string]string{
		"high_confidence": res.HighConfidencePath,
		"all_confidences": res.AllConfidencesPath,
	} {
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		golden.Assert(t, name, string(got))
	}

	assert.Equal(t, filepath.Join(outDir, HighConfidenceFile), res.HighConfidencePath)
	assert.Equal(t, filepath.Join(outDir, AllConfidencesFile), res.AllConfidencesPath)
}

func TestBuild_MissingColumn(t *testing.T) {
	tbl, err := sheets.ParseCSV([]byte("ENA recommended,Confidence to add\ntemp,high\n"))
	require.NoError(t, err)

	_, _, err = Build(tbl, IsHighConfidence)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	noConfidence, err := sheets.ParseCSV([]byte("ENA recommended\ntemp\n"))
	require.NoError(t, err)
	_, err = Write(noConfidence, t.TempDir(), nil)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}
