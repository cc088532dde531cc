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

import "testing"

func TestQueryPath(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "no filters",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY"},
			want:  "TRI_FACILITY/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/",
		},
		{
			name: "state",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY",
				State: "TX"},
			want: "TRI_FACILITY/state_abbr/=/TX/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/",
		},
		{
			name: "county",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY",
				County: "HARRIS"},
			want: "TRI_FACILITY/county_name/HARRIS/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/",
		},
		{
			name: "zip",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY",
				ZIPCode: "77002"},
			want: "TRI_FACILITY/zip_code/77002/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/",
		},
		{
			name: "single year",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY",
				Year: []int{2017}},
			want: "TRI_FACILITY/TRI_REPORTING_FORM/reporting_year/2017/TRI_TRANSFER_QTY/",
		},
		{
			name: "year range keeps start before end",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY",
				Year: []int{2015, 2018}},
			want: "TRI_FACILITY/TRI_REPORTING_FORM/reporting_year/2015/2018/TRI_TRANSFER_QTY/",
		},
		{
			name: "all filters in fixed order",
			query: Query{Table1: "TRI_FACILITY", Table2: "TRI_REPORTING_FORM", Table3: "TRI_TRANSFER_QTY",
				State: "TX", County: "HARRIS", ZIPCode: "77002", Year: []int{2015, 2018}},
			want: "TRI_FACILITY/state_abbr/=/TX/county_name/HARRIS/zip_code/77002/" +
				"TRI_REPORTING_FORM/reporting_year/2015/2018/TRI_TRANSFER_QTY/",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if p := test.query.path(); p != test.want {
				t.Errorf("path = %s; want %s", p, test.want)
			}
		})
	}
}

func TestQueryDirectives(t *testing.T) {
	q := NewQuery("TRI_FACILITY", "TRI_REPORTING_FORM", "TRI_TRANSFER_QTY")
	if p := q.countPath(); p != "TRI_FACILITY/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/count/" {
		t.Errorf("countPath = %s", p)
	}
	if p := q.csvPath(); p != "TRI_FACILITY/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/CSV" {
		t.Errorf("csvPath = %s", p)
	}
	if p := q.rowsPath(100000, 200000); p != "TRI_FACILITY/TRI_REPORTING_FORM/TRI_TRANSFER_QTY/rows/100000:200000/CSV" {
		t.Errorf("rowsPath = %s", p)
	}
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name  string
		query *Query
		ok    bool
	}{
		{"defaults", NewQuery("A", "B", "C"), true},
		{"missing table", NewQuery("A", "", "C"), false},
		{"three years", &Query{Table1: "A", Table2: "B", Table3: "C", Year: []int{1, 2, 3}, ChunkSize: 1}, false},
		{"reversed year range", &Query{Table1: "A", Table2: "B", Table3: "C", Year: []int{2018, 2015}, ChunkSize: 1}, false},
		{"zero chunk size", &Query{Table1: "A", Table2: "B", Table3: "C"}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.query.Validate()
			if test.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.ok && err == nil {
				t.Error("expected an error")
			}
		})
	}
}
