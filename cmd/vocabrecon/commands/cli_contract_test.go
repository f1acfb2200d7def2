// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/vocabrecon/cmd/vocabrecon/internal/clierr"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	out := b.String()

	requiredCommands := []string{
		"checklist",
		"completion",
		"help",
		"reconcile",
		"registry",
		"schema",
		"sheets",
		"version",
	}
	for _, c := range requiredCommands {
		assert.Contains(t, out, c, "expected top-level command %q in root help", c)
	}

	for _, flag := range []string{"--verbose", "--config", "--registry-url", "--timeout"} {
		assert.Contains(t, out, flag)
	}
}

func TestSubcommandTree(t *testing.T) {
	root := NewRootCmd()

	paths := [][]string{
		{"registry", "list-field-names"},
		{"registry", "latest-field"},
		{"registry", "list-schemas"},
		{"sheets", "preview"},
		{"reconcile"},
		{"checklist", "write"},
		{"schema", "terms"},
		{"schema", "overview"},
		{"schema", "fields"},
	}
	for _, p := range paths {
		t.Run(strings.Join(p, " "), func(t *testing.T) {
			found, rest, err := root.Find(p)
			require.NoError(t, err)
			assert.Empty(t, rest)
			assert.Equal(t, p[len(p)-1], found.Name())
		})
	}
}

func TestVersion_IgnoresBrokenConfig(t *testing.T) {
	t.Setenv("VOCABRECON_VERSION", "1.2.3")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vocabrecon.yaml"), []byte("timeout: soon\n"), 0o600))
	t.Chdir(dir)

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("version")
	require.NoError(t, err)
	assert.Equal(t, "vocabrecon version 1.2.3\n", out)

	_, err = run("registry", "list-schemas")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
}

func TestVersion(t *testing.T) {
	t.Setenv("VOCABRECON_VERSION", "1.2.3")
	f := newFakeUpstream(t)

	out, _, err := f.run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vocabrecon version 1.2.3\n", out)
}
