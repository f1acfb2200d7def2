// SPDX-License-Identifier: AGPL-3.0-or-later
package sheets

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/bartekus/vocabrecon/internal/cell"
	"github.com/bartekus/vocabrecon/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a header row plus data rows. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]cell.Cell
}

// ParseCSV parses CSV bytes into a Table.
func ParseCSV(data []byte) (*Table, error) {
	return ReadCSV(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
}

// ReadCSV reads CSV from r. The first record is the header; ragged rows
// are padded with Null or truncated to the header width.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, csvError(err)
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		row := make([]cell.Cell, len(header))
		for i := range row {
			if i < len(rec) {
				row[i] = cell.Parse(rec[i])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func csvError(err error) error {
	return &domain.OpError{Op: "sheets.read_csv", Kind: domain.KindInvalidInput, Cause: err}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the index of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, &domain.OpError{
		Op:    "sheets.column",
		Kind:  domain.KindInvalidInput,
		Cause: fmt.Errorf("column %q not found: %w", name, domain.ErrInvalidInput),
	}
}

// Column returns every cell of the named column.
func (t *Table) Column(name string) ([]cell.Cell, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]cell.Cell, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Filter keeps the rows whose cell in column satisfies keep.
func (t *Table) Filter(column string, keep func(cell.Cell) bool) (*Table, error) {
	idx, err := t.ColumnIndex(column)
	if err != nil {
		return nil, err
	}
	out := &Table{Header: t.Header}
	for _, row := range t.Rows {
		if keep(row[idx]) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out, nil
}

// Select projects the table onto the named columns, in the given order.
func (t *Table) Select(columns ...string) (*Table, error) {
	idxs := make([]int, len(columns))
	for i, name := range columns {
		idx, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idxs[i] = idx
	}
	out := &Table{Header: append([]string(nil), columns...)}
	for _, row := range t.Rows {
		projected := make([]cell.Cell, len(idxs))
		for i, idx := range idxs {
			projected[i] = row[idx]
		}
		out.Rows = append(out.Rows, projected)
	}
	return out, nil
}

// Head returns the first n rows (all rows if n exceeds Len).
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{Header: t.Header, Rows: t.Rows[:n]}
}

// Strings renders every row as strings, for display.
func (t *Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = c.String()
		}
	}
	return out
}
