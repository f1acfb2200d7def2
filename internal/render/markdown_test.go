// SPDX-License-Identifier: AGPL-3.0-or-later
package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "report.md")

	require.NoError(t, AtomicWrite(target, []byte("first")))
	require.NoError(t, AtomicWrite(target, []byte("second")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestTable(t *testing.T) {
	got := Table(
		[]string{"term", "description"},
		[][]string{
			{"depth", "a | b"},
			{"temp"},
			{"ph", "line one\nline two"},
		},
	)

	want := strings.Join([]string{
		"| term | description |",
		"| --- | --- |",
		`| depth | a \| b |`,
		"| temp |  |",
		"| ph | line one<br>line two |",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestListAndHeader(t *testing.T) {
	assert.Equal(t, "- a\n- b\n", List([]string{"a", "b"}))
	assert.Equal(t, "_none_\n", List(nil))
	assert.Equal(t, "## Common\n\n", Header(2, "Common"))
	assert.Equal(t, "# Top\n\n", Header(0, "Top"))
}

func TestPreview(t *testing.T) {
	out := Preview("Sheet A", []string{"term", "note"}, [][]string{{"temperature", "x"}}, 5)

	assert.Contains(t, out, "Sheet A")
	assert.Contains(t, out, "term")
	assert.Contains(t, out, "temp…")
	assert.NotContains(t, out, "temperature")
}
