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

package ottosim

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

var testResults = CycleResults{
	Efficiency: 0.35,
	NetWork:    0.4,
	WorkRatio:  0.2,
	WorkIn:     0.1,
	WorkOut:    0.5,
	HeatIn:     1.142857,
	HeatOut:    0.1,
	Zeta:       0.0633,
}

func TestOutputterEval(t *testing.T) {
	o, err := NewOutputter(map[string]string{
		"EtaPct":     "Efficiency * 100",
		"Check":      "Wnet / Qin",
		"AbsNeg":     "abs(0 - Wnet)",
		"LargerWork": "max(Win, Wout)",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	vals, err := o.Eval(testResults)
	if err != nil {
		t.Fatal(err)
	}
	if got := vals["EtaPct"]; math.Abs(got-35) > 1e-12 {
		t.Errorf("EtaPct: got %v, want 35", got)
	}
	if got, want := vals["Check"], 0.4/1.142857; math.Abs(got-want) > 1e-12 {
		t.Errorf("Check: got %v, want %v", got, want)
	}
	if got := vals["AbsNeg"]; math.Abs(got-0.4) > 1e-12 {
		t.Errorf("AbsNeg: got %v, want 0.4", got)
	}
	if got := vals["LargerWork"]; got != 0.5 {
		t.Errorf("LargerWork: got %v, want 0.5", got)
	}
}

func TestOutputterUnknownVariable(t *testing.T) {
	_, err := NewOutputter(map[string]string{"Bad": "Efficiency + Torque"}, nil)
	if err == nil {
		t.Fatal("unknown variable: got nil error")
	}
	if !strings.Contains(err.Error(), "Torque") {
		t.Errorf("error does not name the unknown variable: %v", err)
	}
	if !strings.Contains(err.Error(), "Efficiency") {
		t.Errorf("error does not list valid names: %v", err)
	}
}

func TestOutputterBadExpression(t *testing.T) {
	if _, err := NewOutputter(map[string]string{"Bad": "Efficiency +* 2"}, nil); err == nil {
		t.Error("malformed expression: got nil error")
	}
}

func TestOutputterWrite(t *testing.T) {
	o, err := NewOutputter(map[string]string{
		"B_Wnet": "Wnet",
		"A_Eta":  "Efficiency",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := o.Write(&buf, testResults); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	// Rows are sorted by name.
	if !strings.HasPrefix(lines[0], "A_Eta") || !strings.HasPrefix(lines[1], "B_Wnet") {
		t.Errorf("rows not sorted: %q", out)
	}
}
