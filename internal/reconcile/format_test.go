// SPDX-License-Identifier: AGPL-3.0-or-later
package reconcile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/vocabrecon/internal/terms"
	"github.com/bartekus/vocabrecon/internal/testutil/golden"
)

func sampleReport() Report {
	return Compute(Input{
		A:             terms.NewSet("temp", "ph", "library_layout"),
		B:             terms.NewSet("temp", "depth"),
		NewTermMarked: terms.NewSet("depth"),
		Mandatory:     terms.NewSet("temp", "tax_id"),
		ExperimentAll: terms.NewSet("library_layout"),
		Registry:      terms.NewSet("temp"),
	})
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteText(&buf))

	want := `sheet A terms: 3
sheet B terms: 2
common total=1: [temp]
new ENA terms wished on A total=0: []
A - B total=2: [library_layout, ph]
  excluding experiment fields total=1: [ph]
B - A total=1: [depth]
1/2 mandatory fields in B, remaining: [tax_id]
A terms not in registry total=2: [library_layout, ph]
`
	assert.Equal(t, want, buf.String())
}

func TestWriteText_NoRegistry(t *testing.T) {
	r := sampleReport()
	r.RegistryChecked = false

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.NotContains(t, buf.String(), "registry")
}

func TestMarkdown_Golden(t *testing.T) {
	golden.Assert(t, "report", sampleReport().Markdown())
}
