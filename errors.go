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

import "fmt"

// TransportError reports a failed HTTP request. No retry is attempted;
// a single failed request aborts the whole download.
type TransportError struct {
	// URL is the request that failed.
	URL string

	// StatusCode is the HTTP status code, if a response was received.
	StatusCode int

	// Err is the underlying error, if the request never completed.
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("trifetch: requesting %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("trifetch: requesting %s: status %d", e.URL, e.StatusCode)
}

// ParseError reports a count response that could not be turned into a
// positive record count.
type ParseError struct {
	// URL is the count request whose response could not be parsed.
	URL string

	// Msg describes the problem.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("trifetch: parsing count response from %s: %s", e.URL, e.Msg)
}

// CountMismatchError reports that paging stopped short of the
// authoritative record count because a page contributed no new rows.
// The rows retrieved so far are still returned alongside this error.
type CountMismatchError struct {
	// Got is the number of rows actually retrieved.
	Got int

	// Want is the record count reported by the count directive.
	Want int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("trifetch: retrieved %d of %d reported records before the service stopped returning rows", e.Got, e.Want)
}
