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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotResponse saves a scatter plot of response against time. The
// output format is chosen from the file extension (for example .png
// or .pdf).
func PlotResponse(filename string, times, responses []float64) error {
	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("exampledata: creating plot: %v", err)
	}
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Response"

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = responses[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("exampledata: creating scatter plot: %v", err)
	}
	p.Add(s)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("exampledata: saving %s: %v", filename, err)
	}
	return nil
}
