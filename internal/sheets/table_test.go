// SPDX-License-Identifier: AGPL-3.0-or-later
package sheets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/vocabrecon/internal/cell"
	"github.com/bartekus/vocabrecon/internal/domain"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "ena_upload.csv"))
	require.NoError(t, err)
	table, err := ParseCSV(data)
	require.NoError(t, err)
	return table
}

func TestParseCSVCells(t *testing.T) {
	table := loadFixture(t)

	flags, err := table.Column("Needs New Term in ENA")
	require.NoError(t, err)
	require.Len(t, flags, 6)

	assert.Equal(t, cell.KindBool, flags[0].Kind())
	assert.Equal(t, cell.KindBool, flags[1].Kind())
	assert.True(t, flags[2].IsNull())
	assert.Equal(t, cell.KindText, flags[3].Kind())
	assert.True(t, flags[4].IsInteger())

	assert.Equal(t, []bool{false, true, false, true, true, true}, cell.Mask(flags))

	desc, err := table.Column("field description(current or prospective)")
	require.NoError(t, err)
	assert.Equal(t, "radiocarbon age, calibrated", desc[5].String())
}

func TestRaggedRowsArePadded(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("a,b,c\n1\n1,2,3,4\n"))
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Len(t, table.Rows[0], 3)
	assert.True(t, table.Rows[0][2].IsNull())
	assert.Len(t, table.Rows[1], 3)
}

func TestEmptyCSV(t *testing.T) {
	table, err := ParseCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Header)
}

func TestFilterSelectHead(t *testing.T) {
	table := loadFixture(t)

	flagged, err := table.Filter("Needs New Term in ENA", cell.Truthy)
	require.NoError(t, err)
	assert.Equal(t, 4, flagged.Len())

	projected, err := flagged.Select("AEGIS term", "ENA recommended")
	require.NoError(t, err)
	assert.Equal(t, []string{"AEGIS term", "ENA recommended"}, projected.Header)
	assert.Equal(t, []string{"depth", "depth + unit"}, projected.Strings()[0])

	assert.Equal(t, 2, table.Head(2).Len())
	assert.Equal(t, 6, table.Head(100).Len())
	assert.Equal(t, 0, table.Head(-1).Len())
}

func TestMissingColumn(t *testing.T) {
	table := loadFixture(t)

	_, err := table.Column("ENA wish")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = table.Select("ENA recommended", "nope")
	assert.Error(t, err)

	_, err = table.Filter("nope", cell.Truthy)
	assert.Error(t, err)
}
