// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sheets fetches spreadsheet CSV exports and loads them into tables
// of typed cells.
package sheets

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/bartekus/vocabrecon/internal/domain"
)

// DefaultBaseURL is the public spreadsheet host.
const DefaultBaseURL = "https://docs.google.com"

var (
	sheetIDPattern  = regexp.MustCompile(`/spreadsheets/d/([\w-]+)`)
	fragmentPattern = regexp.MustCompile(`gid=(\d+)`)
)

// Ref identifies one worksheet of a spreadsheet. GID may be empty, in which
// case the export uses the first worksheet.
type Ref struct {
	ID  string
	GID string
}

func (r Ref) String() string {
	if r.GID == "" {
		return r.ID
	}
	return r.ID + "#gid=" + r.GID
}

// ParseRef accepts a full spreadsheet URL or a bare spreadsheet ID.
func ParseRef(urlOrID string) (Ref, error) {
	in := strings.TrimSpace(urlOrID)
	if in == "" {
		return Ref{}, invalidRef(urlOrID, "empty sheet reference")
	}

	if !strings.HasPrefix(in, "http://") && !strings.HasPrefix(in, "https://") {
		return Ref{ID: in}, nil
	}

	u, err := url.Parse(in)
	if err != nil {
		return Ref{}, invalidRef(urlOrID, err.Error())
	}

	m := sheetIDPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return Ref{}, invalidRef(urlOrID, "no /spreadsheets/d/<id> segment in URL")
	}
	ref := Ref{ID: m[1]}

	ref.GID = u.Query().Get("gid")
	if ref.GID == "" && u.Fragment != "" {
		if fm := fragmentPattern.FindStringSubmatch(u.Fragment); fm != nil {
			ref.GID = fm[1]
		}
	}
	return ref, nil
}

// ExportURL builds the CSV export URL on base (DefaultBaseURL when empty).
func (r Ref) ExportURL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	out := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv", strings.TrimRight(base, "/"), url.PathEscape(r.ID))
	if r.GID != "" {
		out += "&gid=" + url.QueryEscape(r.GID)
	}
	return out
}

func invalidRef(in, reason string) error {
	return &domain.OpError{
		Op:    "sheets.parse_ref",
		Kind:  domain.KindInvalidInput,
		Path:  in,
		Cause: fmt.Errorf("%s: %w", reason, domain.ErrInvalidInput),
	}
}
