/*
Copyright © 2026 the OttoSim authors.
This file is part of OttoSim.

OttoSim is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OttoSim is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OttoSim.  If not, see <http://www.gnu.org/licenses/>.
*/

package engine

import (
	"math"
	"testing"
)

// exampleGeometry resolves the square 250 cm³ engine with a 12:1
// compression ratio and rod length three times the crank radius.
func exampleGeometry(t *testing.T) map[string]float64 {
	t.Helper()
	g, status := SolveGeometry(map[string]float64{
		KeyCompRatio:  12.0,
		KeyUnitDispl:  250e-6,
		KeyBoreStroke: 1.0,
	}, 1e-6)
	if status != StatusConsistent {
		t.Fatalf("first pass: status %v", status)
	}
	r, ok := g[KeyCrank]
	if !ok {
		t.Fatal("first pass did not resolve the crank radius")
	}
	g[KeyRod] = 3 * r
	g, status = SolveGeometry(g, 1e-6)
	if status != StatusConsistent {
		t.Fatalf("second pass: status %v", status)
	}
	return g
}

func TestSolveGeometryExample(t *testing.T) {
	g := exampleGeometry(t)
	if err := Complete(g); err != nil {
		t.Fatal(err)
	}

	if got := g[KeyTotalVol] - g[KeyClearance]; math.Abs(got-g[KeyUnitDispl]) > 1e-9 {
		t.Errorf("V_1 - V_2: got %v, want %v", got, g[KeyUnitDispl])
	}
	if got := g[KeyStroke]; math.Abs(got-2*g[KeyCrank]) > 1e-9 {
		t.Errorf("stroke: got %v, want 2r = %v", got, 2*g[KeyCrank])
	}
	if got := g[KeyTotalVol] / g[KeyClearance]; math.Abs(got-12) > 1e-6 {
		t.Errorf("compression ratio: got %v, want 12", got)
	}
	// Square engine: bore equals stroke.
	if math.Abs(g[KeyBore]-g[KeyStroke]) > 1e-9 {
		t.Errorf("bore %v differs from stroke %v", g[KeyBore], g[KeyStroke])
	}
	// V_du = π D² S / 4 must close the loop.
	if got := math.Pi * g[KeyBore] * g[KeyBore] * g[KeyStroke] / 4; math.Abs(got-250e-6) > 1e-9 {
		t.Errorf("swept volume: got %v, want 250e-6", got)
	}
}

func TestSolveGeometryInvalidInput(t *testing.T) {
	if _, status := SolveGeometry(nil, 1e-6); status != StatusInvalid {
		t.Errorf("nil input: got %v, want %v", status, StatusInvalid)
	}
	if _, status := SolveGeometry(map[string]float64{}, 1e-6); status != StatusInvalid {
		t.Errorf("empty input: got %v, want %v", status, StatusInvalid)
	}
}

func TestSolveGeometryInconsistent(t *testing.T) {
	// V_1/V_2 contradicts the stated compression ratio.
	_, status := SolveGeometry(map[string]float64{
		KeyCompRatio: 12.0,
		KeyTotalVol:  300e-6,
		KeyClearance: 50e-6,
	}, 1e-6)
	if status != StatusInconsistent {
		t.Errorf("got %v, want %v", status, StatusInconsistent)
	}
}

func TestSolveGeometryDoesNotMutateInput(t *testing.T) {
	in := map[string]float64{
		KeyCompRatio:  12.0,
		KeyUnitDispl:  250e-6,
		KeyBoreStroke: 1.0,
	}
	out, status := SolveGeometry(in, 1e-6)
	if status != StatusConsistent {
		t.Fatalf("status %v", status)
	}
	if len(in) != 3 {
		t.Errorf("input record was mutated: %v", in)
	}
	if len(out) <= 3 {
		t.Errorf("no new parameters resolved: %v", out)
	}
}

func TestComplete(t *testing.T) {
	if err := Complete(map[string]float64{KeyBore: 0.06}); err == nil {
		t.Error("incomplete record: got nil error")
	}
}

func TestStatusString(t *testing.T) {
	for status, want := range map[Status]string{
		StatusConsistent:   "consistent",
		StatusInconsistent: "inconsistent",
		StatusInvalid:      "invalid input",
	} {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String(): got %q, want %q", int(status), got, want)
		}
	}
}
