// SPDX-License-Identifier: AGPL-3.0-or-later

// Package golden compares rendered output with files under testdata/.
// Run tests with -update to rewrite them.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

var Update = flag.Bool("update", false, "update golden files")

func callerTestdata(t *testing.T) string {
	t.Helper()
	// 0 is this function, 1 is Assert, 2 is the test.
	_, filename, _, ok := runtime.Caller(2)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Assert compares got with testdata/<name>.golden next to the caller,
// rewriting the file first when -update is set.
func Assert(t *testing.T, name, got string) {
	t.Helper()
	dir := callerTestdata(t)
	if *Update {
		Write(t, dir, name, got)
	}
	want := Read(t, dir, name)
	if want != got {
		t.Errorf("%s.golden mismatch\n--- want\n%s\n--- got\n%s", name, want, got)
	}
}

// Read returns the golden content, or "" when the file does not exist.
func Read(t *testing.T, testdataDir, name string) string {
	t.Helper()
	safeName(t, name)

	path := filepath.Join(testdataDir, name+".golden")
	data, err := os.ReadFile(path) //nolint:gosec // testdata path controlled by test
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read golden %s: %v", path, err)
	}
	return normalize(string(data))
}

func Write(t *testing.T, testdataDir, name, content string) {
	t.Helper()
	safeName(t, name)

	if err := os.MkdirAll(testdataDir, 0o750); err != nil {
		t.Fatalf("mkdir testdata: %v", err)
	}
	path := filepath.Join(testdataDir, name+".golden")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write golden %s: %v", path, err)
	}
}

// normalize folds CRLF checkouts back to LF.
func normalize(s string) string { return strings.ReplaceAll(s, "\r\n", "\n") }

func safeName(t *testing.T, name string) {
	t.Helper()
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
}
