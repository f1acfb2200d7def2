// SPDX-License-Identifier: AGPL-3.0-or-later
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/bartekus/vocabrecon/internal/domain"
	"github.com/bartekus/vocabrecon/internal/httpclient"
)

// ExportHint is shown when the export endpoint refuses a sheet.
const ExportHint = "If export fails with HTTP 403/404, the sheet may not be shared for public export. " +
	"Check File > Share settings or Publish to web, or download it as CSV manually."

// Fetcher downloads CSV exports.
type Fetcher struct {
	baseURL string
	exec    *httpclient.Executor
	log     *zap.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithBaseURL overrides the spreadsheet host.
func WithBaseURL(u string) FetcherOption {
	return func(f *Fetcher) { f.baseURL = strings.TrimRight(u, "/") }
}

// WithExecutor sets the HTTP executor.
func WithExecutor(e *httpclient.Executor) FetcherOption {
	return func(f *Fetcher) { f.exec = e }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) FetcherOption {
	return func(f *Fetcher) { f.log = log }
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(f)
	}
	if f.log == nil {
		f.log = zap.NewNop()
	}
	if f.exec == nil {
		f.exec = httpclient.NewExecutor(httpclient.WithLogger(f.log))
	}
	return f
}

// Fetch returns the raw CSV bytes of ref's export.
func (f *Fetcher) Fetch(ctx context.Context, ref Ref) ([]byte, error) {
	const op = "sheets.fetch"
	endpoint := ref.ExportURL(f.baseURL)
	f.log.Info("fetching csv export", zap.String("url", endpoint))

	resp, err := f.exec.Get(ctx, endpoint, "text/csv")
	if err != nil {
		return nil, &domain.OpError{
			Op:    op,
			Kind:  domain.KindSheetExportUnavailable,
			Path:  endpoint,
			Cause: err,
		}
	}

	if !resp.OK() {
		oe := &domain.OpError{
			Op:    op,
			Kind:  domain.KindSheetExportUnavailable,
			Path:  endpoint,
			Cause: fmt.Errorf("unexpected status %d", resp.Status),
		}
		if resp.Status == http.StatusForbidden || resp.Status == http.StatusNotFound {
			oe.Hint = ExportHint
		}
		return nil, oe
	}
	return resp.Body, nil
}

// FetchTable fetches ref and parses it.
func (f *Fetcher) FetchTable(ctx context.Context, ref Ref) (*Table, []byte, error) {
	raw, err := f.Fetch(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	t, err := ParseCSV(raw)
	if err != nil {
		return nil, raw, err
	}
	return t, raw, nil
}
