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

// Package trifetch downloads records from the EPA Envirofacts Toxic
// Release Inventory (TRI) RESTful data service. Queries are expressed
// as positional URL path segments, results arrive as CSV pages, and the
// total number of matching records is reported by a separate count
// directive that is used to page through the full result set.
package trifetch

import (
	"fmt"
	"strconv"
)

const (
	// DefaultBaseURL is the root of the Envirofacts data service.
	DefaultBaseURL = "https://data.epa.gov/efservice/"

	// DefaultChunkSize is the number of rows requested per page after
	// the first page, which has a server-determined size.
	DefaultChunkSize = 100000

	// outputFormat is the directive appended to data requests so that
	// the service returns CSV instead of XML.
	outputFormat = "CSV"
)

// Query specifies a TRI query joining three Envirofacts tables,
// optionally restricted by location and reporting year.
type Query struct {
	// Table1, Table2, and Table3 are the names of the Envirofacts
	// tables to be joined, in the order they appear in the query path.
	// Typically these are TRI_FACILITY, TRI_REPORTING_FORM, and
	// TRI_TRANSFER_QTY.
	Table1, Table2, Table3 string

	// State is an optional two-letter state abbreviation (e.g. "TX")
	// restricting results to facilities in that state.
	State string

	// County is an optional county name restricting results to
	// facilities in that county.
	County string

	// ZIPCode is an optional postal code restricting results to
	// facilities in that ZIP code.
	ZIPCode string

	// Year optionally restricts results by reporting year. It may hold
	// zero elements (no restriction), one element (a single year), or
	// two elements (an inclusive [start, end] range).
	Year []int

	// ChunkSize is the number of rows to request per page after the
	// first page. If zero, DefaultChunkSize is used by NewQuery.
	ChunkSize int
}

// NewQuery creates a Query joining the three given tables, with no
// filters and the default chunk size.
func NewQuery(table1, table2, table3 string) *Query {
	return &Query{
		Table1:    table1,
		Table2:    table2,
		Table3:    table3,
		ChunkSize: DefaultChunkSize,
	}
}

// Validate checks that the query can be rendered as an Envirofacts
// query path.
func (q *Query) Validate() error {
	if q.Table1 == "" || q.Table2 == "" || q.Table3 == "" {
		return fmt.Errorf("trifetch: query requires three table names; have %q, %q, %q",
			q.Table1, q.Table2, q.Table3)
	}
	if len(q.Year) > 2 {
		return fmt.Errorf("trifetch: year must be a single year or a [start, end] pair; have %v", q.Year)
	}
	if len(q.Year) == 2 && q.Year[0] > q.Year[1] {
		return fmt.Errorf("trifetch: year range start %d is after end %d", q.Year[0], q.Year[1])
	}
	if q.ChunkSize <= 0 {
		return fmt.Errorf("trifetch: chunk size must be positive; have %d", q.ChunkSize)
	}
	return nil
}

// path renders the query as a positional Envirofacts path, not
// including the base URL or any trailing directive. The segment order
// is fixed by the service: table1, then the optional state, county,
// and ZIP code filters, then table2, then the optional reporting year,
// then table3.
func (q *Query) path() string {
	p := q.Table1 + "/"
	if q.State != "" {
		p += "state_abbr/=/" + q.State + "/"
	}
	if q.County != "" {
		p += "county_name/" + q.County + "/"
	}
	if q.ZIPCode != "" {
		p += "zip_code/" + q.ZIPCode + "/"
	}
	p += q.Table2 + "/"
	switch len(q.Year) {
	case 1:
		p += "reporting_year/" + strconv.Itoa(q.Year[0]) + "/"
	case 2:
		p += "reporting_year/" + strconv.Itoa(q.Year[0]) + "/" + strconv.Itoa(q.Year[1]) + "/"
	}
	p += q.Table3 + "/"
	return p
}

// countPath returns the query path with the record count directive
// appended.
func (q *Query) countPath() string {
	return q.path() + "count/"
}

// csvPath returns the query path requesting the first page of results
// in CSV format.
func (q *Query) csvPath() string {
	return q.path() + outputFormat
}

// rowsPath returns the query path requesting rows [start, end) in CSV
// format.
func (q *Query) rowsPath(start, end int) string {
	return q.path() + fmt.Sprintf("rows/%d:%d/", start, end) + outputFormat
}
