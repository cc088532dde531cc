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
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
)

// Version gives the version number of this version of TRIFetch.
const Version = "1.0.0"

// Client retrieves TRI records from the Envirofacts service. The zero
// value is ready to use and queries the public EPA endpoint. Requests
// are issued sequentially: the service is not designed for concurrent
// chunked requests.
type Client struct {
	// HTTPClient is the client used for requests. If nil,
	// http.DefaultClient is used.
	HTTPClient *http.Client

	// BaseURL is the root of the data service. If empty,
	// DefaultBaseURL is used.
	BaseURL string

	// Progress, if non-nil, is called after each page with the number
	// of rows retrieved so far and the authoritative total.
	Progress func(fetched, total int)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) progress(fetched, total int) {
	if c.Progress != nil {
		c.Progress(fetched, total)
	}
}

// get performs a single GET request and returns the response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode}
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return body, nil
}

// Count requests the authoritative number of records matching q from
// the count directive of the data service.
func (c *Client) Count(ctx context.Context, q *Query) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	url := c.baseURL() + q.countPath()
	body, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	return parseRecordCount(url, body)
}

// parseRecordCount extracts the requestrecordcount element from a
// count response. The service labels the response as XML but the
// element case varies, so elements are matched case-insensitively.
func parseRecordCount(url string, body []byte) (int, error) {
	d := xml.NewDecoder(bytes.NewReader(body))
	d.Strict = false
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, &ParseError{URL: url, Msg: fmt.Sprintf("reading response: %v", err)}
		}
		se, ok := tok.(xml.StartElement)
		if !ok || !strings.EqualFold(se.Name.Local, "requestrecordcount") {
			continue
		}
		var v string
		if err := d.DecodeElement(&v, &se); err != nil {
			return 0, &ParseError{URL: url, Msg: fmt.Sprintf("reading requestrecordcount: %v", err)}
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &ParseError{URL: url, Msg: fmt.Sprintf("record count %q is not a number", v)}
		}
		if n <= 0 {
			return 0, &ParseError{URL: url, Msg: fmt.Sprintf("record count is %d", n)}
		}
		return n, nil
	}
	return 0, &ParseError{URL: url, Msg: "response has no requestrecordcount element"}
}

// Download retrieves every record matching q and returns them as a
// single table, with waste management method codes replaced by their
// descriptions when that column is present.
//
// The record count is requested first, then the first page (whose size
// the server chooses), then row-range pages of q.ChunkSize rows each
// until the accumulated row count reaches the reported total. If a
// page contributes no new rows before the total is reached, the rows
// retrieved so far are returned together with a *CountMismatchError
// rather than re-requesting the same range forever.
func (c *Client) Download(ctx context.Context, q *Query) (*Table, error) {
	total, err := c.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, c.baseURL()+q.csvPath())
	if err != nil {
		return nil, err
	}
	first, err := readTable(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	pages := []*Table{first}
	got := first.NRows()
	c.progress(got, total)

	for got < total {
		body, err := c.get(ctx, c.baseURL()+q.rowsPath(got, got+q.ChunkSize))
		if err != nil {
			return nil, err
		}
		page, err := readTable(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		if page.NRows() == 0 {
			t := concatTables(pages)
			t.DescribeWasteManagement()
			return t, &CountMismatchError{Got: got, Want: total}
		}
		pages = append(pages, page)
		got += page.NRows()
		c.progress(got, total)
	}

	t := concatTables(pages)
	t.DescribeWasteManagement()
	return t, nil
}
