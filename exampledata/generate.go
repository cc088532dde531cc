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

// Package exampledata simulates simple kinetics experiments and saves
// the results as Excel workbooks, for use as synthetic test input for
// data analysis pipelines.
package exampledata

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Sampling times for the simulated measurements.
const (
	sampleInterval = 5.0
	nSamples       = 6
	rk4Step        = 0.01
)

// Experiment describes one synthetic kinetics experiment: an
// isothermal batch reaction at the given temperature and pressure
// starting from the given concentration.
type Experiment struct {
	// Number identifies the experiment and names its output workbook.
	Number int

	// Temperature is the reaction temperature in °C.
	Temperature float64

	// Pressure is the reaction pressure.
	Pressure float64

	// InitialConc is the starting concentration of the reactant.
	InitialConc float64
}

// DefaultExperiments returns the built-in experiment roster used when
// no experiment info workbook is supplied.
func DefaultExperiments() []Experiment {
	return []Experiment{
		{Number: 1, Temperature: 25, Pressure: 1, InitialConc: 1},
		{Number: 2, Temperature: 35, Pressure: 1, InitialConc: 1.5},
		{Number: 3, Temperature: 45, Pressure: 2, InitialConc: 1},
		{Number: 4, Temperature: 55, Pressure: 2, InitialConc: 2},
		{Number: 5, Temperature: 65, Pressure: 3, InitialConc: 1.5},
	}
}

// rate is the reaction rate law: first order in concentration and
// pressure with an Arrhenius temperature dependence referenced to
// 300 K.
func rate(conc, pressure, tempC float64) float64 {
	return -0.1 * pressure * math.Exp(5000*(-1/(tempC+273.15)+1/300.0)) * conc
}

// Generate simulates the experiment and returns the sampling times and
// the noisy measured responses. The concentration profile is
// integrated with fixed-step fourth-order Runge-Kutta, and the
// response at each sampling time is the amount converted scaled by a
// uniform random factor between 0.1 and 0.12 and rounded to one
// decimal place.
func (e Experiment) Generate(rng *rand.Rand) (times, responses []float64) {
	times = floats.Span(make([]float64, nSamples), 0, sampleInterval*(nSamples-1))
	responses = make([]float64, nSamples)

	conc := e.InitialConc
	t := 0.0
	for i, ts := range times {
		for t < ts-rk4Step/2 {
			conc = stepRK4(conc, e.Pressure, e.Temperature, rk4Step)
			t += rk4Step
		}
		u := 0.1 + 0.02*rng.Float64()
		responses[i] = math.Round((e.InitialConc-conc)*u*10) / 10
	}
	return times, responses
}

// stepRK4 advances the concentration by one Runge-Kutta step of size h.
func stepRK4(conc, pressure, tempC, h float64) float64 {
	k1 := rate(conc, pressure, tempC)
	k2 := rate(conc+h/2*k1, pressure, tempC)
	k3 := rate(conc+h/2*k2, pressure, tempC)
	k4 := rate(conc+h*k3, pressure, tempC)
	return conc + h/6*(k1+2*k2+2*k3+k4)
}

// WorkbookName returns the file name of the experiment's output
// workbook, matching the "experiment <n>.xlsx" convention of the
// datasets this package replaces.
func (e Experiment) WorkbookName() string {
	return fmt.Sprintf("experiment %d.xlsx", e.Number)
}
