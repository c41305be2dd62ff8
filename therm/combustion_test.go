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
	"errors"
	"math"
	"testing"
)

// leanOctane is a phi = 0.5 octane charge at 100 kPa, 300 K.
func leanOctane(t *testing.T) *CombustionMix {
	t.Helper()
	c, err := NewCombustionMix([]string{"C8H18"}, []float64{1}, 0.5, 100, 300, 0.00057142857, 0)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func richOctane(t *testing.T) *CombustionMix {
	t.Helper()
	c, err := NewCombustionMix([]string{"C8H18"}, []float64{1}, 1.2, 100, 300, 0.00057142857, 0)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// atomTotals counts C/H/O/N atoms in a product composition plus the
// unreacted fuel and air amounts it carries.
func atomTotals(c *CombustionMix, x Composition) (nc, nh, no, nn float64) {
	nc = 8*x.Fuel + x.CO2 + x.CO
	nh = 18*x.Fuel + 2*x.H2O + 2*x.H2
	no = 2*x.CO2 + x.H2O + x.CO + 2*x.O2
	nn = 2 * x.N2
	return
}

func TestLeanBurntComposition(t *testing.T) {
	c := leanOctane(t)
	b, err := c.BurntComposition()
	if err != nil {
		t.Fatal(err)
	}
	if b["CO"] != 0 || b["H2"] != 0 {
		t.Errorf("lean mixture must burn completely: CO=%g, H2=%g", b["CO"], b["H2"])
	}
	// Reference value for this charge.
	if got := b["O2"]; math.Abs(got-0.002386) > 5e-7 {
		t.Errorf("excess O2: got %v, want 0.002386", got)
	}
}

func TestLeanAtomConservation(t *testing.T) {
	c := leanOctane(t)
	x, err := c.Chi(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	nc, nh, no, nn := atomTotals(c, x)
	psi := c.Psi()
	wantC := 8 * c.FuelMoles()
	wantH := 18 * c.FuelMoles()
	wantO := 2 * c.AirMoles() / (1 + psi)
	wantN := 2 * c.AirMoles() * psi / (1 + psi)
	for _, test := range []struct {
		el        string
		got, want float64
	}{
		{"C", nc, wantC}, {"H", nh, wantH}, {"O", no, wantO}, {"N", nn, wantN},
	} {
		if math.Abs(test.got-test.want) > 1e-9*math.Max(test.want, 1) {
			t.Errorf("%s atoms: got %v, want %v", test.el, test.got, test.want)
		}
	}
}

func TestRichBurntComposition(t *testing.T) {
	c := richOctane(t)
	b, err := c.BurntComposition()
	if err != nil {
		t.Fatal(err)
	}
	if b["CO"] < 0 {
		t.Errorf("CO amount must be non-negative, got %v", b["CO"])
	}
	if b["O2"] != 0 {
		t.Errorf("rich mixture must consume all O2, got %v", b["O2"])
	}
	if b["H2"] <= 0 {
		t.Errorf("rich mixture must leave unburnt hydrogen, got H2=%v", b["H2"])
	}
	// Atom conservation is asserted inside BurntComposition; a nil
	// error means it held. Cross-check carbon and hydrogen explicitly.
	if got, want := b["CO2"]+b["CO"], 8*c.FuelMoles(); math.Abs(got-want) > 1e-9 {
		t.Errorf("carbon balance: got %v, want %v", got, want)
	}
	if got, want := 2*(b["H2O"]+b["H2"]), 18*c.FuelMoles(); math.Abs(got-want) > 1e-9 {
		t.Errorf("hydrogen balance: got %v, want %v", got, want)
	}
	// The CO root must satisfy the water-gas equilibrium it was
	// solved from.
	if got := b["CO"] * b["H2O"] / (b["CO2"] * b["H2"]); math.Abs(got-c.K) > 1e-6*c.K {
		t.Errorf("equilibrium ratio: got %v, want %v", got, c.K)
	}
	// Reference CO amount for this charge.
	if got := b["CO"]; math.Abs(got-1.3159e-3) > 5e-7 {
		t.Errorf("CO: got %v, want 1.3159e-3", got)
	}
}

func TestBurntCompositionCached(t *testing.T) {
	c := leanOctane(t)
	b1, err := c.BurntComposition()
	if err != nil {
		t.Fatal(err)
	}
	b2, err := c.BurntComposition()
	if err != nil {
		t.Fatal(err)
	}
	for sp, v := range b1 {
		if b2[sp] != v {
			t.Errorf("cached %s changed: %v then %v", sp, v, b2[sp])
		}
	}
}

func TestMassConserved(t *testing.T) {
	c := leanOctane(t)
	in, err := c.Mass()
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.BurntMass()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(in-out) > 1e-12 {
		t.Errorf("mass: %v in, %v out", in, out)
	}
}

func TestChiEndpoints(t *testing.T) {
	c := leanOctane(t)
	x0, err := c.Chi(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x0.Fuel-c.FuelMoles()) > 1e-15 {
		t.Errorf("chi(0, 0) fuel: got %v, want %v", x0.Fuel, c.FuelMoles())
	}
	if x0.CO2 != 0 || x0.H2O != 0 {
		t.Errorf("chi(0, 0) has products: CO2=%v, H2O=%v", x0.CO2, x0.H2O)
	}

	x1, err := c.Chi(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.BurntComposition()
	if err != nil {
		t.Fatal(err)
	}
	if x1.Fuel != 0 {
		t.Errorf("chi(1, 0) fuel: got %v, want 0", x1.Fuel)
	}
	if math.Abs(x1.CO2-b["CO2"]) > 1e-15 || math.Abs(x1.O2-b["O2"]) > 1e-12 {
		t.Errorf("chi(1, 0) products differ from burnt composition: CO2 %v vs %v, O2 %v vs %v",
			x1.CO2, b["CO2"], x1.O2, b["O2"])
	}
}

func TestChiMonotonicInY(t *testing.T) {
	c := leanOctane(t)
	prevFuel := math.Inf(1)
	prevCO2 := -1.0
	for _, y := range []float64{0, 0.25, 0.5, 0.75, 1} {
		x, err := c.Chi(y, 0.05)
		if err != nil {
			t.Fatal(err)
		}
		if x.Fuel > prevFuel {
			t.Errorf("fuel not decreasing at y=%g: %v then %v", y, prevFuel, x.Fuel)
		}
		if x.CO2 < prevCO2 {
			t.Errorf("CO2 not increasing at y=%g: %v then %v", y, prevCO2, x.CO2)
		}
		prevFuel, prevCO2 = x.Fuel, x.CO2
	}
}

func TestHeatReleaseAdditivity(t *testing.T) {
	c := leanOctane(t)
	const zeta = 0.06
	for _, ys := range [][3]float64{
		{0, 0.5, 1},
		{0.1, 0.2, 0.9},
		{0, 0.05, 0.1},
	} {
		y0, y1, y2 := ys[0], ys[1], ys[2]
		q02, err := c.HeatRelease(y0, y2, zeta)
		if err != nil {
			t.Fatal(err)
		}
		q01, err := c.HeatRelease(y0, y1, zeta)
		if err != nil {
			t.Fatal(err)
		}
		q12, err := c.HeatRelease(y1, y2, zeta)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(q02-(q01+q12)) > 1e-12 {
			t.Errorf("additivity over [%g, %g, %g]: %v != %v + %v", y0, y1, y2, q02, q01, q12)
		}
	}
}

func TestTotalHeat(t *testing.T) {
	c := leanOctane(t)
	q, err := c.TotalHeat(0)
	if err != nil {
		t.Fatal(err)
	}
	// Reference value for this charge.
	if math.Abs(q-0.9766) > 5e-5 {
		t.Errorf("total heat: got %v, want 0.9766", q)
	}

	// The full burn releases the same heat.
	q01, err := c.HeatRelease(0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(q-q01) > 1e-9 {
		t.Errorf("total heat %v differs from full-burn release %v", q, q01)
	}
}

func TestCvAtEndpoints(t *testing.T) {
	c := leanOctane(t)
	// At y = 1 the instantaneous cv equals the fully-burnt cv.
	cvAt, err := c.CvAt(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	cvBurnt, err := c.BurntCvMolar()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cvAt-cvBurnt) > 1e-12 {
		t.Errorf("cv at y=1: got %v, want burnt cv %v", cvAt, cvBurnt)
	}

	// At y = 0 with zeta = 0 it equals the unreacted cv.
	cvAt0, err := c.CvAt(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	cvFresh, err := c.CvMolar()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cvAt0-cvFresh) > 1e-12 {
		t.Errorf("cv at y=0: got %v, want fresh cv %v", cvAt0, cvFresh)
	}
}

func TestHeatCapacityVAtEndpoint(t *testing.T) {
	c := leanOctane(t)
	cv1, err := c.HeatCapacityVAt(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	cvBurnt, err := c.BurntHeatCapacityV()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cv1-cvBurnt) > 1e-12 {
		t.Errorf("extensive CV at y=1: got %v, want %v", cv1, cvBurnt)
	}
}

func TestMoleFractionsAtSumToOne(t *testing.T) {
	c := richOctane(t)
	for _, y := range []float64{0, 0.3, 1} {
		xi, err := c.MoleFractionsAt(y, 0.05)
		if err != nil {
			t.Fatal(err)
		}
		var sum float64
		for _, x := range xi {
			sum += x
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("mole fractions at y=%g sum to %v", y, sum)
		}
	}
}

func TestInfeasibleRichMixture(t *testing.T) {
	c, err := NewCombustionMix([]string{"C8H18"}, []float64{1}, 1.2, 100, 300, 0.00057142857, 0)
	if err != nil {
		t.Fatal(err)
	}
	// At k = -1 this charge has no real CO root: the discriminant is
	// about -4.4e-5.
	c.K = -1
	if _, err := c.BurntComposition(); !errors.Is(err, ErrInfeasibleMixture) {
		t.Errorf("got %v, want ErrInfeasibleMixture", err)
	}
}

func TestNewCombustionMixValidation(t *testing.T) {
	if _, err := NewCombustionMix([]string{"C8H18"}, []float64{1}, -0.1, 100, 300, 1e-4, 0); err == nil {
		t.Error("negative phi: got nil error")
	}
	if _, err := NewCombustionMix([]string{"C8H18"}, []float64{1}, 1, 100, 300, 0, 0); err == nil {
		t.Error("zero volume: got nil error")
	}
	if _, err := NewCombustionMix(nil, nil, 1, 100, 300, 1e-4, 0); err == nil {
		t.Error("no fuels: got nil error")
	}
}
