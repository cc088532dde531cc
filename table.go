/*
Copyright © 2026 the TRIFetch authors.
This file is part of TRIFetch.

TRIFetch is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TRIFetch is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TRIFetch.  If not, see <http://www.gnu.org/licenses/>.
*/

package trifetch

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/tealeg/xlsx"
)

// Table holds tabular query results: a header row and the data rows
// below it. All rows have len(Columns) fields.
type Table struct {
	Columns []string
	Rows    [][]string
}

// readTable decodes CSV text into a Table. Each line is parsed as its
// own record: a row with an unterminated quote would otherwise make
// encoding/csv consume everything after it as one field, losing the
// rest of the page. Rows that fail to parse or that have a different
// number of fields than the header are dropped rather than causing
// the whole page to fail; the Envirofacts service occasionally emits
// such rows and the original downloader skipped them too.
func readTable(r io.Reader) (*Table, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("trifetch: reading CSV body: %v", err)
	}
	lines := strings.Split(string(b), "\n")
	if len(lines) == 0 || strings.TrimSuffix(lines[0], "\r") == "" {
		return nil, fmt.Errorf("trifetch: reading CSV header: empty body")
	}
	header, err := parseRecord(lines[0])
	if err != nil {
		return nil, fmt.Errorf("trifetch: reading CSV header: %v", err)
	}
	t := &Table{Columns: header}
	for _, line := range lines[1:] {
		if strings.TrimSuffix(line, "\r") == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil || len(rec) != len(header) {
			continue // malformed row; drop it
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// parseRecord parses a single CSV line.
func parseRecord(line string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	return cr.Read()
}

// NRows returns the number of data rows in the table, not counting the
// header.
func (t *Table) NRows() int {
	return len(t.Rows)
}

// ColIndex returns the index of the column with the given name.
func (t *Table) ColIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("trifetch: table has no column %s", name)
}

// concatTables concatenates pages into a single table in one pass. The
// first page supplies the header; rows from later pages whose field
// count doesn't match it are dropped.
func concatTables(pages []*Table) *Table {
	if len(pages) == 0 {
		return &Table{}
	}
	n := 0
	for _, p := range pages {
		n += p.NRows()
	}
	t := &Table{
		Columns: pages[0].Columns,
		Rows:    make([][]string, 0, n),
	}
	for _, p := range pages {
		for _, row := range p.Rows {
			if len(row) != len(t.Columns) {
				continue
			}
			t.Rows = append(t.Rows, row)
		}
	}
	return t
}

// WriteCSV writes the table in CSV format, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("trifetch: writing CSV header: %v", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("trifetch: writing CSV rows: %v", err)
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX saves the table as a Microsoft Excel workbook with a
// single sheet.
func (t *Table) WriteXLSX(filename string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("TRI Data")
	if err != nil {
		return fmt.Errorf("trifetch: creating xlsx sheet: %v", err)
	}
	hr := sheet.AddRow()
	for _, c := range t.Columns {
		hr.AddCell().SetString(c)
	}
	for _, row := range t.Rows {
		r := sheet.AddRow()
		for _, v := range row {
			r.AddCell().SetString(v)
		}
	}
	if err := f.Save(filename); err != nil {
		return fmt.Errorf("trifetch: saving %s: %v", filename, err)
	}
	return nil
}
