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
	"math"
	"reflect"
	"testing"
)

func TestAir(t *testing.T) {
	a := NewAir()
	if a.Psi != 3.76 {
		t.Errorf("default psi: got %g, want 3.76", a.Psi)
	}
	frac := a.Fractions()
	if want := 1 / (1 + 3.76); frac["O2"] != want {
		t.Errorf("O2 fraction: got %g, want %g", frac["O2"], want)
	}
	if want := 3.76 / (1 + 3.76); frac["N2"] != want {
		t.Errorf("N2 fraction: got %g, want %g", frac["N2"], want)
	}
	if got := a.Species(); !reflect.DeepEqual(got, []string{"O2", "N2"}) {
		t.Errorf("species: got %v", got)
	}
}

func TestElementTable(t *testing.T) {
	z, carbon, err := ElementBySymbol("C")
	if err != nil {
		t.Fatal(err)
	}
	if z != 6 {
		t.Errorf("carbon atomic number: got %d, want 6", z)
	}
	c12, ok := carbon.Isotopes[12]
	if !ok {
		t.Fatal("carbon-12 missing from the table")
	}
	if c12.Mass != 12.0 {
		t.Errorf("carbon-12 mass: got %g, want 12.0", c12.Mass)
	}
	if !c12.Known || c12.Abundance != 98.938 {
		t.Errorf("carbon-12 abundance: got %g (known=%v), want 98.938", c12.Abundance, c12.Known)
	}

	if _, _, err := ElementBySymbol("Xx"); err == nil {
		t.Error("unknown symbol: got nil error")
	}
}

func TestAtomicNumbersSorted(t *testing.T) {
	zs := AtomicNumbers()
	if len(zs) == 0 {
		t.Fatal("empty element table")
	}
	if zs[0] != 1 {
		t.Errorf("first atomic number: got %d, want 1", zs[0])
	}
	for i := 1; i < len(zs); i++ {
		if zs[i] <= zs[i-1] {
			t.Fatalf("atomic numbers not increasing at index %d: %d then %d", i, zs[i-1], zs[i])
		}
	}
}

func TestIsotopesOf(t *testing.T) {
	iso, err := IsotopesOf("H")
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(iso, want) {
		t.Errorf("hydrogen isotopes: got %v, want %v", iso, want)
	}
}

func TestAtomize(t *testing.T) {
	tests := []struct {
		formula string
		want    map[string]int
	}{
		{"C8H18", map[string]int{"C": 8, "H": 18}},
		{"H2", map[string]int{"H": 2}},
		{"CH4O", map[string]int{"C": 1, "H": 4, "O": 1}},
		{"N2", map[string]int{"N": 2}},
	}
	for _, test := range tests {
		if got := Atomize(test.formula); !reflect.DeepEqual(got, test.want) {
			t.Errorf("Atomize(%q): got %v, want %v", test.formula, got, test.want)
		}
	}
}

func TestMolarMass(t *testing.T) {
	m, err := MolarMass("C8H18")
	if err != nil {
		t.Fatal(err)
	}
	if want := 114.22946172503093; math.Abs(m-want) > 1e-9 {
		t.Errorf("octane molar mass: got %v, want %v", m, want)
	}

	if _, err := MolarMass("ZzQq"); err == nil {
		t.Error("unknown element: got nil error")
	}
}

func TestMolarMassMalformedFormula(t *testing.T) {
	for _, formula := range []string{"c8h18", "C8h18", "8CH"} {
		if _, err := MolarMass(formula); err == nil {
			t.Errorf("MolarMass(%q): got nil error", formula)
		}
	}
	if _, err := NewMolecule("c8h18"); err == nil {
		t.Error("NewMolecule(\"c8h18\"): got nil error")
	}
}

func TestMolecule(t *testing.T) {
	mol, err := NewMolecule("C8H18")
	if err != nil {
		t.Fatal(err)
	}
	if got := mol.AtomCount("C"); got != 8 {
		t.Errorf("carbon count: got %g, want 8", got)
	}
	if got := mol.AtomCount("S"); got != 0 {
		t.Errorf("absent element count: got %g, want 0", got)
	}
	// Mass of 2 mol in grams.
	if want := 2 * 114.22946172503093; math.Abs(mol.Mass(2)-want) > 1e-9 {
		t.Errorf("mass of 2 mol: got %v, want %v", mol.Mass(2), want)
	}
}
