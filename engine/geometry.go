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

// Package engine resolves reciprocating-engine geometry from a partial
// parameter set and provides crank-slider kinematics.
package engine

import (
	"fmt"
	"math"
)

// Status reports the outcome of a geometry resolution.
type Status int

const (
	// StatusConsistent means no fully-determined relation failed its
	// consistency check; the returned record may contain new values.
	StatusConsistent Status = iota
	// StatusInconsistent means the input values violate at least one
	// geometric relation beyond the given tolerance.
	StatusInconsistent
	// StatusInvalid means the input record was nil or empty.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusConsistent:
		return "consistent"
	case StatusInconsistent:
		return "inconsistent"
	case StatusInvalid:
		return "invalid input"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Geometry parameter keys. Volumes are in m³, lengths in m; r_v, r_s
// and z are dimensionless.
const (
	KeyBore       = "D"    // cylinder bore
	KeyStroke     = "S"    // piston stroke
	KeyCrank      = "r"    // crank radius
	KeyRod        = "L"    // connecting-rod length
	KeyUnitDispl  = "V_du" // displaced volume per cylinder
	KeyDispl      = "V_d"  // total displaced volume
	KeyTotalVol   = "V_1"  // total volume at bottom dead center
	KeyClearance  = "V_2"  // clearance volume
	KeyCompRatio  = "r_v"  // compression ratio V_1/V_2
	KeyBoreStroke = "r_s"  // bore/stroke ratio
	KeyCylinders  = "z"    // cylinder count
)

// relation is one closed-form geometric identity. vars lists the
// parameters it couples; residual evaluates lhs−rhs when all are
// known; solve maps each parameter to the closed form that isolates
// it in terms of the others.
type relation struct {
	vars     []string
	residual func(g map[string]float64) float64
	solve    map[string]func(g map[string]float64) float64
}

// relations is the fixed identity network tying the geometry
// parameters together. Several parameters appear in more than one
// identity, which is what lets a handful of inputs determine the
// whole record.
var relations = []relation{
	{ // V_du = V_1 − V_2
		vars: []string{KeyUnitDispl, KeyTotalVol, KeyClearance},
		residual: func(g map[string]float64) float64 {
			return g[KeyUnitDispl] - (g[KeyTotalVol] - g[KeyClearance])
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyUnitDispl: func(g map[string]float64) float64 { return g[KeyTotalVol] - g[KeyClearance] },
			KeyTotalVol:  func(g map[string]float64) float64 { return g[KeyUnitDispl] + g[KeyClearance] },
			KeyClearance: func(g map[string]float64) float64 { return g[KeyTotalVol] - g[KeyUnitDispl] },
		},
	},
	{ // V_du = π D² S / 4
		vars: []string{KeyUnitDispl, KeyBore, KeyStroke},
		residual: func(g map[string]float64) float64 {
			return g[KeyUnitDispl] - math.Pi*g[KeyBore]*g[KeyBore]*g[KeyStroke]/4
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyUnitDispl: func(g map[string]float64) float64 {
				return math.Pi * g[KeyBore] * g[KeyBore] * g[KeyStroke] / 4
			},
			KeyBore: func(g map[string]float64) float64 {
				return math.Sqrt(4 * g[KeyUnitDispl] / (math.Pi * g[KeyStroke]))
			},
			KeyStroke: func(g map[string]float64) float64 {
				return 4 * g[KeyUnitDispl] / (math.Pi * g[KeyBore] * g[KeyBore])
			},
		},
	},
	{ // V_d = z V_du
		vars: []string{KeyDispl, KeyCylinders, KeyUnitDispl},
		residual: func(g map[string]float64) float64 {
			return g[KeyDispl] - g[KeyCylinders]*g[KeyUnitDispl]
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyDispl:     func(g map[string]float64) float64 { return g[KeyCylinders] * g[KeyUnitDispl] },
			KeyCylinders: func(g map[string]float64) float64 { return g[KeyDispl] / g[KeyUnitDispl] },
			KeyUnitDispl: func(g map[string]float64) float64 { return g[KeyDispl] / g[KeyCylinders] },
		},
	},
	{ // r_v = V_1 / V_2
		vars: []string{KeyCompRatio, KeyTotalVol, KeyClearance},
		residual: func(g map[string]float64) float64 {
			return g[KeyCompRatio] - g[KeyTotalVol]/g[KeyClearance]
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyCompRatio: func(g map[string]float64) float64 { return g[KeyTotalVol] / g[KeyClearance] },
			KeyTotalVol:  func(g map[string]float64) float64 { return g[KeyCompRatio] * g[KeyClearance] },
			KeyClearance: func(g map[string]float64) float64 { return g[KeyTotalVol] / g[KeyCompRatio] },
		},
	},
	{ // r_v = 1 + V_du / V_2, the expanded form above
		vars: []string{KeyCompRatio, KeyUnitDispl, KeyClearance},
		residual: func(g map[string]float64) float64 {
			return g[KeyCompRatio] - (1 + g[KeyUnitDispl]/g[KeyClearance])
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyCompRatio: func(g map[string]float64) float64 { return 1 + g[KeyUnitDispl]/g[KeyClearance] },
			KeyUnitDispl: func(g map[string]float64) float64 { return (g[KeyCompRatio] - 1) * g[KeyClearance] },
			KeyClearance: func(g map[string]float64) float64 { return g[KeyUnitDispl] / (g[KeyCompRatio] - 1) },
		},
	},
	{ // S = 2r
		vars: []string{KeyStroke, KeyCrank},
		residual: func(g map[string]float64) float64 {
			return g[KeyStroke] - 2*g[KeyCrank]
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyStroke: func(g map[string]float64) float64 { return 2 * g[KeyCrank] },
			KeyCrank:  func(g map[string]float64) float64 { return g[KeyStroke] / 2 },
		},
	},
	{ // r_s = D / S
		vars: []string{KeyBoreStroke, KeyBore, KeyStroke},
		residual: func(g map[string]float64) float64 {
			return g[KeyBoreStroke] - g[KeyBore]/g[KeyStroke]
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyBoreStroke: func(g map[string]float64) float64 { return g[KeyBore] / g[KeyStroke] },
			KeyBore:       func(g map[string]float64) float64 { return g[KeyBoreStroke] * g[KeyStroke] },
			KeyStroke:     func(g map[string]float64) float64 { return g[KeyBore] / g[KeyBoreStroke] },
		},
	},
	{ // V_du = π (r_s S)² S / 4; the real root of the cubic in S
		vars: []string{KeyUnitDispl, KeyBoreStroke, KeyStroke},
		residual: func(g map[string]float64) float64 {
			rs := g[KeyBoreStroke]
			s := g[KeyStroke]
			return g[KeyUnitDispl] - math.Pi*rs*rs*s*s*s/4
		},
		solve: map[string]func(g map[string]float64) float64{
			KeyUnitDispl: func(g map[string]float64) float64 {
				rs := g[KeyBoreStroke]
				s := g[KeyStroke]
				return math.Pi * rs * rs * s * s * s / 4
			},
			KeyStroke: func(g map[string]float64) float64 {
				rs := g[KeyBoreStroke]
				return math.Cbrt(4 * g[KeyUnitDispl] / (math.Pi * rs * rs))
			},
			KeyBoreStroke: func(g map[string]float64) float64 {
				s := g[KeyStroke]
				return math.Sqrt(4 * g[KeyUnitDispl] / (math.Pi * s * s * s))
			},
		},
	},
}

// SolveGeometry resolves as many unknown geometry parameters as the
// relation network allows, starting from the partial record. The
// input is not modified. Any relation whose parameters are all known
// is checked against eps; a violation yields StatusInconsistent
// together with the record resolved so far. A nil or empty input
// yields StatusInvalid.
func SolveGeometry(partial map[string]float64, eps float64) (map[string]float64, Status) {
	if len(partial) == 0 {
		return partial, StatusInvalid
	}
	g := make(map[string]float64, len(partial))
	for k, v := range partial {
		g[k] = v
	}

	if !check(g, eps) {
		return g, StatusInconsistent
	}

	for {
		progressed := false
		for _, r := range relations {
			unknown, n := "", 0
			for _, v := range r.vars {
				if _, ok := g[v]; !ok {
					unknown, n = v, n+1
				}
			}
			if n != 1 {
				continue
			}
			g[unknown] = r.solve[unknown](g)
			progressed = true
		}
		if !progressed {
			break
		}
	}

	if !check(g, eps) {
		return g, StatusInconsistent
	}
	return g, StatusConsistent
}

// check evaluates every fully-determined relation against eps.
func check(g map[string]float64, eps float64) bool {
	for _, r := range relations {
		known := true
		for _, v := range r.vars {
			if _, ok := g[v]; !ok {
				known = false
				break
			}
		}
		if known && math.Abs(r.residual(g)) >= eps {
			return false
		}
	}
	return true
}

// cycleKeys are the parameters the cycle engine needs resolved.
var cycleKeys = []string{KeyBore, KeyRod, KeyCrank, KeyTotalVol, KeyClearance, KeyCompRatio}

// Complete reports whether g carries every parameter the cycle engine
// needs, returning an error naming the first missing one.
func Complete(g map[string]float64) error {
	for _, k := range cycleKeys {
		if _, ok := g[k]; !ok {
			return fmt.Errorf("engine: geometry record is missing %q", k)
		}
	}
	return nil
}
