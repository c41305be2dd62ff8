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

// Package chem holds the static chemical reference data and the
// molecular utilities used by the thermodynamic model: isotopic
// element data, chemical-formula parsing, molar masses, and the
// composition of air.
package chem

import (
	"fmt"
	"sort"
)

// Isotope holds the atomic mass and terrestrial abundance of a single
// isotope.
type Isotope struct {
	Mass      float64 // unified atomic mass units
	Abundance float64 // percent; meaningful only when Known is true
	Known     bool    // false for isotopes with no natural occurrence
}

// Element is one entry of the isotope table.
type Element struct {
	Symbol   string
	Isotopes map[int]Isotope // keyed by mass number
}

// AtomicNumbers returns the atomic numbers present in the element
// table, in increasing order.
func AtomicNumbers() []int {
	zs := make([]int, 0, len(elements))
	for z := range elements {
		zs = append(zs, z)
	}
	sort.Ints(zs)
	return zs
}

// Symbols returns the element symbols in order of atomic number.
func Symbols() []string {
	zs := AtomicNumbers()
	syms := make([]string, len(zs))
	for i, z := range zs {
		syms[i] = elements[z].Symbol
	}
	return syms
}

// ElementBySymbol returns the atomic number and table entry for the
// given element symbol.
func ElementBySymbol(sym string) (int, Element, error) {
	for z, e := range elements {
		if e.Symbol == sym {
			return z, e, nil
		}
	}
	return 0, Element{}, fmt.Errorf("chem: element %q not in the isotope table", sym)
}

// IsotopesOf returns the mass numbers of the isotopes of the given
// element symbol, in increasing order.
func IsotopesOf(sym string) ([]int, error) {
	_, e, err := ElementBySymbol(sym)
	if err != nil {
		return nil, err
	}
	as := make([]int, 0, len(e.Isotopes))
	for a := range e.Isotopes {
		as = append(as, a)
	}
	sort.Ints(as)
	return as, nil
}

// meanMass is the abundance-weighted mean of the isotope masses.
// Isotopes with unknown abundance contribute nothing when at least one
// abundance is known; when none are known all isotopes weigh equally.
func meanMass(isos map[int]Isotope) float64 {
	var anyKnown bool
	for _, iso := range isos {
		if iso.Known {
			anyKnown = true
			break
		}
	}
	var mass, wsum float64
	for _, iso := range isos {
		w := 1.0
		if anyKnown {
			w = 0.0
			if iso.Known {
				w = iso.Abundance
			}
		}
		mass += iso.Mass * w
		wsum += w
	}
	return mass / wsum
}

// AtomicMass returns the standard atomic mass of the element with the
// given symbol, in g/mol.
func AtomicMass(sym string) (float64, error) {
	_, e, err := ElementBySymbol(sym)
	if err != nil {
		return 0, err
	}
	return meanMass(e.Isotopes), nil
}

// AtomicMassZ is AtomicMass keyed by atomic number.
func AtomicMassZ(z int) (float64, error) {
	e, ok := elements[z]
	if !ok {
		return 0, fmt.Errorf("chem: no element with atomic number %d in the isotope table", z)
	}
	return meanMass(e.Isotopes), nil
}
