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

package trifetchutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chepyle/trifetch"
)

// saveTable writes the table to the given file, choosing the format
// from the file extension.
func saveTable(t *trifetch.Table, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("trifetch: creating %s: %v", filename, err)
		}
		if err := t.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return t.WriteXLSX(filename)
	default:
		return fmt.Errorf("trifetch: unsupported output format %q", filepath.Ext(filename))
	}
}
