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

package therm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/thermomodel/ottosim/chem"
)

// Fuel is a single fuel species: its parsed molecule plus the
// standard-state formation enthalpy.
type Fuel struct {
	chem.Molecule
	Hf0 float64 // gas-phase formation enthalpy [kJ/mol]
}

// NewFuel builds a fuel from its chemical formula. The formula must be
// present in the standard property table.
func NewFuel(formula string) (Fuel, error) {
	mol, err := chem.NewMolecule(formula)
	if err != nil {
		return Fuel{}, err
	}
	hf0, err := GasHf0(formula)
	if err != nil {
		return Fuel{}, fmt.Errorf("therm: fuel %q: %w", formula, err)
	}
	return Fuel{Molecule: mol, Hf0: hf0}, nil
}

// Epsilon is the inverse of the stoichiometric molar air requirement
// of the fuel: 1/(nC + nH/4 − nO/2). Octane gives exactly 0.08.
func (f Fuel) Epsilon() float64 {
	return 1.0 / (f.AtomCount("C") + f.AtomCount("H")/4.0 - f.AtomCount("O")/2.0)
}

// FuelBlend is one or more fuels mixed in molar proportions.
type FuelBlend struct {
	Fuels []Fuel
	Props []float64 // molar proportions, normalized to sum to one
}

// NewFuelBlend builds a blend from parallel formula and proportion
// slices. Proportions need not sum to one; they are normalized.
func NewFuelBlend(formulas []string, props []float64) (*FuelBlend, error) {
	if len(formulas) == 0 {
		return nil, fmt.Errorf("therm: fuel blend needs at least one fuel")
	}
	if len(formulas) != len(props) {
		return nil, fmt.Errorf("therm: %d fuels but %d proportions", len(formulas), len(props))
	}
	total := floats.Sum(props)
	if total <= 0 {
		return nil, fmt.Errorf("therm: fuel proportions must sum to a positive value")
	}
	b := &FuelBlend{
		Fuels: make([]Fuel, len(formulas)),
		Props: make([]float64, len(props)),
	}
	for i, formula := range formulas {
		f, err := NewFuel(formula)
		if err != nil {
			return nil, err
		}
		b.Fuels[i] = f
		b.Props[i] = props[i] / total
	}
	return b, nil
}

// AtomTotals returns the summed C, H, O and N atom counts over the
// blend's fuel formulas.
func (b *FuelBlend) AtomTotals() (nc, nh, no, nn float64) {
	for _, f := range b.Fuels {
		nc += f.AtomCount("C")
		nh += f.AtomCount("H")
		no += f.AtomCount("O")
		nn += f.AtomCount("N")
	}
	return nc, nh, no, nn
}

// Epsilon is the inverse stoichiometric air requirement of the blend,
// computed from the summed atom counts.
func (b *FuelBlend) Epsilon() float64 {
	nc, nh, no, _ := b.AtomTotals()
	return 1.0 / (nc + nh/4.0 - no/2.0)
}

// FormationEnthalpy is the proportion-weighted formation enthalpy of
// the blend in kJ/mol.
func (b *FuelBlend) FormationEnthalpy() float64 {
	var h float64
	for i, f := range b.Fuels {
		h += b.Props[i] * f.Hf0
	}
	return h
}

// Formulas returns the fuel formulas in blend order.
func (b *FuelBlend) Formulas() []string {
	out := make([]string, len(b.Fuels))
	for i, f := range b.Fuels {
		out[i] = f.Formula
	}
	return out
}
