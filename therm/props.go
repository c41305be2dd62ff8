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

// Package therm implements the ideal-gas-mixture model with constant
// specific heats: bulk mixture chemistry, fuel properties, and the
// combustion-mixture engine that tracks compositions and heat release
// between the unburnt and fully burnt states.
package therm

import "fmt"

// PropValue is an optionally-available table entry; the CRC table does
// not list every property for every phase.
type PropValue struct {
	Value float64
	OK    bool
}

// PhaseProps holds the standard-state properties of a substance in one
// phase.
type PhaseProps struct {
	Hf0 PropValue // formation enthalpy [kJ/mol]
	Gf0 PropValue // formation Gibbs energy [kJ/mol]
	S0  PropValue // standard entropy [J/(mol·K)]
	Cp  PropValue // specific heat at constant pressure [J/(mol·K)]
}

// Substance is one row of the standard-state property table.
type Substance struct {
	Name   string
	Solid  PhaseProps
	Liquid PhaseProps
	Gas    PhaseProps
}

// Std looks up the property-table row for a chemical formula.
func Std(formula string) (Substance, bool) {
	s, ok := stdProps[formula]
	return s, ok
}

// GasCp returns the constant-pressure specific heat of a substance in
// kJ/(mol·K), preferring the gas-phase value and falling back to the
// liquid phase. A substance with neither value is a fatal
// configuration error: the mixture model cannot proceed without it.
func GasCp(formula string) (float64, error) {
	s, ok := stdProps[formula]
	if !ok {
		return 0, fmt.Errorf("therm: substance %q is not in the property table", formula)
	}
	if s.Gas.Cp.OK {
		return s.Gas.Cp.Value / 1000.0, nil
	}
	if s.Liquid.Cp.OK {
		return s.Liquid.Cp.Value / 1000.0, nil
	}
	return 0, fmt.Errorf("therm: no gas or liquid specific heat tabulated for %q (%s)", formula, s.Name)
}

// GasHf0 returns the gas-phase formation enthalpy of a substance in
// kJ/mol.
func GasHf0(formula string) (float64, error) {
	s, ok := stdProps[formula]
	if !ok {
		return 0, fmt.Errorf("therm: substance %q is not in the property table", formula)
	}
	if !s.Gas.Hf0.OK {
		return 0, fmt.Errorf("therm: no gas-phase formation enthalpy tabulated for %q (%s)", formula, s.Name)
	}
	return s.Gas.Hf0.Value, nil
}
