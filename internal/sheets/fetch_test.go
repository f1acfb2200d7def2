// SPDX-License-Identifier: AGPL-3.0-or-later
package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/vocabrecon/internal/domain"
	"github.com/bartekus/vocabrecon/internal/httpclient"
)

func newSheetServer(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/spreadsheets/d/public/export":
			assert.Equal(t, "csv", r.URL.Query().Get("format"))
			assert.Equal(t, "7", r.URL.Query().Get("gid"))
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write(body)
		case "/spreadsheets/d/private/export":
			http.Error(w, "forbidden", http.StatusForbidden)
		case "/spreadsheets/d/broken/export":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestFetcher(server *httptest.Server) *Fetcher {
	return NewFetcher(
		WithBaseURL(server.URL),
		WithExecutor(httpclient.NewExecutor(httpclient.WithClient(server.Client()))),
	)
}

func TestFetchTable(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "ena_upload.csv"))
	require.NoError(t, err)

	f := newTestFetcher(newSheetServer(t, append([]byte{0xEF, 0xBB, 0xBF}, body...)))
	table, raw, err := f.FetchTable(context.Background(), Ref{ID: "public", GID: "7"})
	require.NoError(t, err)

	assert.NotEmpty(t, raw)
	assert.Equal(t, "ENA recommended", table.Header[0])
	assert.Equal(t, 6, table.Len())
}

func TestFetchExportUnavailable(t *testing.T) {
	f := newTestFetcher(newSheetServer(t, nil))
	ctx := context.Background()

	tests := []struct {
		id       string
		wantHint bool
	}{
		{"private", true},
		{"missing", true},
		{"broken", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, err := f.Fetch(ctx, Ref{ID: tt.id})
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindSheetExportUnavailable))
			assert.ErrorIs(t, err, domain.ErrSheetExportUnavailable)
			if tt.wantHint {
				assert.Equal(t, ExportHint, domain.HintOf(err))
			} else {
				assert.Empty(t, domain.HintOf(err))
			}
		})
	}
}
