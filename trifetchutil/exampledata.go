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
	"math/rand"
	"os"
	"path/filepath"

	"github.com/chepyle/trifetch/exampledata"
	"github.com/lnashier/viper"
)

// GenerateExampleData simulates the configured experiments and writes
// one workbook per experiment to the configured output directory.
// Messages are sent to c as files are written.
func GenerateExampleData(cfg *viper.Viper, c chan string) error {
	dir := os.ExpandEnv(cfg.GetString("ExampleData.OutputDir"))
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("trifetch: the ExampleData.OutputDir directory doesn't exist: %v", err)
	}

	experiments := exampledata.DefaultExperiments()
	if infoFile := os.ExpandEnv(cfg.GetString("ExampleData.InfoFile")); infoFile != "" {
		var err error
		experiments, err = exampledata.ReadExperimentInfo(infoFile)
		if err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(int64(cfg.GetInt("ExampleData.Seed"))))
	var lastTimes, lastResponses []float64
	for _, e := range experiments {
		times, responses := e.Generate(rng)
		fname := filepath.Join(dir, e.WorkbookName())
		if err := exampledata.WriteExperiment(fname, times, responses); err != nil {
			return err
		}
		c <- fmt.Sprintf("Wrote %s.\n", fname)
		lastTimes, lastResponses = times, responses
	}

	if plotFile := os.ExpandEnv(cfg.GetString("ExampleData.PlotFile")); plotFile != "" && lastTimes != nil {
		if err := exampledata.PlotResponse(plotFile, lastTimes, lastResponses); err != nil {
			return err
		}
		c <- fmt.Sprintf("Wrote %s.\n", plotFile)
	}
	return nil
}
