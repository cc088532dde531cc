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

// Command trifetch is a command-line interface for downloading EPA
// Toxic Release Inventory records.
package main

import (
	"fmt"
	"os"

	"github.com/chepyle/trifetch/trifetchutil"
)

func main() {
	if err := trifetchutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
