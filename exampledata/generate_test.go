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
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerate(t *testing.T) {
	e := Experiment{Number: 1, Temperature: 45, Pressure: 2, InitialConc: 1}
	times, responses := e.Generate(rand.New(rand.NewSource(8675309)))

	wantTimes := []float64{0, 5, 10, 15, 20, 25}
	if !reflect.DeepEqual(times, wantTimes) {
		t.Errorf("times = %v; want %v", times, wantTimes)
	}
	if len(responses) != len(times) {
		t.Fatalf("%d responses for %d times", len(responses), len(times))
	}
	if responses[0] != 0 {
		t.Errorf("response at t=0 is %v; want 0", responses[0])
	}
	for i, r := range responses {
		if r < 0 {
			t.Errorf("response %d is negative: %v", i, r)
		}
		// The response can never exceed complete conversion times the
		// maximum noise factor.
		if r > e.InitialConc*0.12 {
			t.Errorf("response %d is too large: %v", i, r)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	e := Experiment{Number: 1, Temperature: 55, Pressure: 2, InitialConc: 2}
	_, r1 := e.Generate(rand.New(rand.NewSource(42)))
	_, r2 := e.Generate(rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("same seed gave different responses: %v != %v", r1, r2)
	}
}

func TestGenerateConversionIncreasesWithTemperature(t *testing.T) {
	// Compare noise-free conversion by integrating directly.
	conv := func(tempC float64) float64 {
		conc := 1.0
		for t := 0.0; t < 25; t += rk4Step {
			conc = stepRK4(conc, 1, tempC, rk4Step)
		}
		return 1 - conc
	}
	if cold, hot := conv(25), conv(65); hot <= cold {
		t.Errorf("conversion at 65°C (%v) should exceed conversion at 25°C (%v)", hot, cold)
	}
}

func TestRate(t *testing.T) {
	// At the 300 K reference temperature the Arrhenius factor is one.
	if r := rate(1, 1, 300-273.15); math.Abs(r+0.1) > 1e-12 {
		t.Errorf("rate at reference temperature = %v; want -0.1", r)
	}
	if r := rate(0, 2, 45); r != 0 {
		t.Errorf("rate at zero concentration = %v; want 0", r)
	}
}
