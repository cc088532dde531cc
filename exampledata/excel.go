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

package exampledata

import (
	"fmt"

	"github.com/tealeg/xlsx"
)

// ReadExperimentInfo reads an experiment roster from a Microsoft Excel
// workbook. The first sheet must have Experiment, Temperature,
// Pressure, and Concentration columns.
func ReadExperimentInfo(filename string) ([]Experiment, error) {
	f, err := xlsx.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("exampledata: opening %s: %v", filename, err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("exampledata: %s has no sheets", filename)
	}
	s := f.Sheets[0]
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("exampledata: %s has no header row", filename)
	}
	cols := map[string]int{}
	for i, cell := range s.Rows[0].Cells {
		cols[cell.Value] = i
	}
	for _, name := range []string{"Experiment", "Temperature", "Pressure", "Concentration"} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("exampledata: %s has no %s column", filename, name)
		}
	}
	var experiments []Experiment
	for ir, row := range s.Rows[1:] {
		if len(row.Cells) < len(cols) {
			continue
		}
		num, err := row.Cells[cols["Experiment"]].Int()
		if err != nil {
			return nil, fmt.Errorf("exampledata: reading %s row %d: %v", filename, ir+2, err)
		}
		temp, err := row.Cells[cols["Temperature"]].Float()
		if err != nil {
			return nil, fmt.Errorf("exampledata: reading %s row %d: %v", filename, ir+2, err)
		}
		pres, err := row.Cells[cols["Pressure"]].Float()
		if err != nil {
			return nil, fmt.Errorf("exampledata: reading %s row %d: %v", filename, ir+2, err)
		}
		conc, err := row.Cells[cols["Concentration"]].Float()
		if err != nil {
			return nil, fmt.Errorf("exampledata: reading %s row %d: %v", filename, ir+2, err)
		}
		experiments = append(experiments, Experiment{
			Number:      num,
			Temperature: temp,
			Pressure:    pres,
			InitialConc: conc,
		})
	}
	return experiments, nil
}

// WriteExperimentInfo saves an experiment roster in the format read by
// ReadExperimentInfo.
func WriteExperimentInfo(filename string, experiments []Experiment) error {
	f := xlsx.NewFile()
	s, err := f.AddSheet("Sheet1")
	if err != nil {
		return fmt.Errorf("exampledata: creating sheet: %v", err)
	}
	hr := s.AddRow()
	for _, name := range []string{"Experiment", "Temperature", "Pressure", "Concentration"} {
		hr.AddCell().SetString(name)
	}
	for _, e := range experiments {
		r := s.AddRow()
		r.AddCell().SetInt(e.Number)
		r.AddCell().SetFloat(e.Temperature)
		r.AddCell().SetFloat(e.Pressure)
		r.AddCell().SetFloat(e.InitialConc)
	}
	if err := f.Save(filename); err != nil {
		return fmt.Errorf("exampledata: saving %s: %v", filename, err)
	}
	return nil
}

// WriteExperiment saves the simulated times and responses of one
// experiment as a workbook with Time and Response columns.
func WriteExperiment(filename string, times, responses []float64) error {
	f := xlsx.NewFile()
	s, err := f.AddSheet("Sheet1")
	if err != nil {
		return fmt.Errorf("exampledata: creating sheet: %v", err)
	}
	hr := s.AddRow()
	hr.AddCell().SetString("Time")
	hr.AddCell().SetString("Response")
	for i := range times {
		r := s.AddRow()
		r.AddCell().SetFloat(times[i])
		r.AddCell().SetFloat(responses[i])
	}
	if err := f.Save(filename); err != nil {
		return fmt.Errorf("exampledata: saving %s: %v", filename, err)
	}
	return nil
}
