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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chepyle/trifetch"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// queryFromConfig builds a TRI query from the configuration.
func queryFromConfig(cfg *viper.Viper) (*trifetch.Query, error) {
	q := trifetch.NewQuery(
		os.ExpandEnv(cfg.GetString("Table1")),
		os.ExpandEnv(cfg.GetString("Table2")),
		os.ExpandEnv(cfg.GetString("Table3")),
	)
	q.State = cfg.GetString("state")
	q.County = cfg.GetString("county")
	q.ZIPCode = cfg.GetString("zip")
	year, err := toIntSliceE(cfg.Get("year"))
	if err != nil {
		return nil, fmt.Errorf("trifetch: reading 'year': %v", err)
	}
	q.Year = year
	if c := cfg.GetInt("chunksize"); c != 0 {
		q.ChunkSize = c
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// toIntSliceE converts the 'year' configuration value to a slice of
// integers. A value bound to an unset pflag int-slice flag comes back
// as its string representation (for example "[]" or "[2016,2017]"),
// which is parsed as JSON.
func toIntSliceE(s interface{}) ([]int, error) {
	if str, ok := s.(string); ok {
		if str == "" {
			return nil, nil
		}
		var o []int
		if err := json.Unmarshal([]byte(str), &o); err != nil {
			return nil, err
		}
		return o, nil
	}
	return cast.ToIntSliceE(s)
}

// checkOutputFile makes sure that the output file has a supported
// extension and that its directory exists, and expands any environment
// variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="tri_output.csv")`)
	}
	f = os.ExpandEnv(f)
	ext := strings.ToLower(filepath.Ext(f))
	if ext != ".csv" && ext != ".xlsx" {
		return f, fmt.Errorf("trifetch: the OutputFile extension must be .csv or .xlsx; have %q", filepath.Ext(f))
	}
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("trifetch: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}
