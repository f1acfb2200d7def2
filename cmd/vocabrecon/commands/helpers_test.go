// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeUpstream serves sheet exports and the schema store from testdata.
type fakeUpstream struct {
	t        *testing.T
	registry bool
	srv      *httptest.Server
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{t: t, registry: true}

	mux := http.NewServeMux()
	mux.HandleFunc("/spreadsheets/d/sheetA/export", f.file("sheet_a.csv", "text/csv"))
	mux.HandleFunc("/spreadsheets/d/sheetB/export", f.file("sheet_b.csv", "text/csv"))
	mux.HandleFunc("/spreadsheets/d/private/export", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})
	mux.HandleFunc("/api/fields", f.registryFile("fields.json"))
	mux.HandleFunc("/api/schemas/list", f.registryFile("schemas.json"))

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeUpstream) file(name, contentType string) http.HandlerFunc {
	data := readTestdata(f.t, name)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "csv" {
			http.Error(w, "format", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}
}

func (f *fakeUpstream) registryFile(name string) http.HandlerFunc {
	data := readTestdata(f.t, name)
	return func(w http.ResponseWriter, _ *http.Request) {
		if !f.registry {
			http.Error(w, "down", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}

// testdataRoot is resolved at package init, before run changes directory.
var testdataRoot = func() string {
	p, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	return p
}()

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(testdataPath(t, name))
	require.NoError(t, err)
	return data
}

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(testdataRoot, name)
}

// run executes the root command against the fake upstream from a scratch
// working directory.
func (f *fakeUpstream) run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("VOCABRECON_SHEETS_URL", f.srv.URL)
	t.Setenv("VOCABRECON_REGISTRY_URL", f.srv.URL+"/api")
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
