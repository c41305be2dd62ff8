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

package chem

import (
	"fmt"
	"regexp"
	"strconv"
)

var formulaRe = regexp.MustCompile(`([A-Z][a-z]?)([0-9]*)`)

// Atomize parses a chemical formula such as "C8H18" into a map from
// element symbol to atom count. Repeated element groups accumulate.
func Atomize(formula string) map[string]int {
	atoms := make(map[string]int)
	for _, m := range formulaRe.FindAllStringSubmatch(formula, -1) {
		n := 1
		if m[2] != "" {
			n, _ = strconv.Atoi(m[2])
		}
		atoms[m[1]] += n
	}
	return atoms
}

// checkFormula returns an error when any part of the formula is not
// an element group, such as a lowercase symbol or a leading digit.
func checkFormula(formula string) error {
	pos := 0
	for _, m := range formulaRe.FindAllStringIndex(formula, -1) {
		if m[0] != pos {
			break
		}
		pos = m[1]
	}
	if pos != len(formula) {
		return fmt.Errorf("chem: malformed formula %q at %q", formula, formula[pos:])
	}
	return nil
}

// MolarMass returns the molar mass of the given formula in g/mol,
// computed from the abundance-weighted atomic masses of its elements.
func MolarMass(formula string) (float64, error) {
	if err := checkFormula(formula); err != nil {
		return 0, err
	}
	var mass float64
	for sym, n := range Atomize(formula) {
		m, err := AtomicMass(sym)
		if err != nil {
			return 0, fmt.Errorf("chem: molar mass of %q: %w", formula, err)
		}
		mass += float64(n) * m
	}
	return mass, nil
}

// Molecule caches the parsed composition and molar mass of a single
// chemical formula.
type Molecule struct {
	Formula string
	Atoms   map[string]int
	M       float64 // molar mass [g/mol]
}

// NewMolecule parses the formula and computes its molar mass.
func NewMolecule(formula string) (Molecule, error) {
	if formula == "" {
		return Molecule{}, fmt.Errorf("chem: empty chemical formula")
	}
	m, err := MolarMass(formula)
	if err != nil {
		return Molecule{}, err
	}
	return Molecule{Formula: formula, Atoms: Atomize(formula), M: m}, nil
}

// AtomCount returns the number of atoms of the given element in the
// molecule, zero if the element does not occur.
func (m Molecule) AtomCount(sym string) float64 {
	return float64(m.Atoms[sym])
}

// Mass returns the mass in grams of n moles of the substance.
func (m Molecule) Mass(n float64) float64 {
	return n * m.M
}
