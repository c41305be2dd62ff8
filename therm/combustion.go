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
	"fmt"
	"math"

	"github.com/thermomodel/ottosim/chem"
)

// DefaultEquilibriumK is the water-gas equilibrium constant used to
// split CO/CO2 and H2/H2O in rich mixtures. The value is empirical;
// it can be overridden through the K field before the burnt
// composition is first computed.
const DefaultEquilibriumK = 3.5

// ErrInfeasibleMixture is returned when the rich-combustion quadratic
// has no real root: the requested stoichiometry cannot be satisfied
// for the configured equilibrium constant.
var ErrInfeasibleMixture = errors.New("therm: rich-mixture stoichiometry is infeasible")

// burntSpecies lists the combustion product species in table order.
var burntSpecies = []string{"CO2", "H2O", "CO", "H2", "O2", "N2"}

// Composition is an instantaneous species inventory in moles. Fuel is
// the total unreacted fuel amount across the blend.
type Composition struct {
	Fuel float64
	CO2  float64
	H2O  float64
	CO   float64
	H2   float64
	O2   float64
	N2   float64
}

// Total returns the total mole count of the composition.
func (x Composition) Total() float64 {
	return x.Fuel + x.CO2 + x.H2O + x.CO + x.H2 + x.O2 + x.N2
}

// CombustionMix models a fuel-in-air charge as an ideal-gas mixture
// and supplies both bulk (unburnt and fully burnt) and instantaneous
// (partially reacted) thermodynamic properties. The embedded GasState
// holds the full unreacted fuel+air mixture at the reference state.
type CombustionMix struct {
	*GasState

	// K is the rich-combustion equilibrium constant. It must be set
	// before the first call that needs the burnt composition; changing
	// it afterwards has no effect because the composition is cached.
	K float64

	blend *FuelBlend
	air   chem.Air
	phi   float64
	qext  float64 // external heat addition [kJ/kg], used when phi = 0

	nAir  float64
	nFuel float64

	p0, t0, v0, u0 float64
	mass           float64 // unreacted charge mass [kg]

	nc, nh, no, nn float64 // atom counts over the fuel formulas

	hfCO2, hfH2O, hfCO float64

	burnt map[string]float64 // cached product moles, nil until computed
}

// NewCombustionMix builds a combustion mixture in standard air. Fuels
// and proportions are parallel slices; phi is the equivalence ratio;
// p [kPa], t [K] and v [m³] give the reference state; qext [kJ/kg] is
// an external heat source used when phi is zero.
func NewCombustionMix(fuels []string, props []float64, phi, p, t, v, qext float64) (*CombustionMix, error) {
	return NewCombustionMixInAir(chem.NewAir(), fuels, props, phi, p, t, v, qext)
}

// NewCombustionMixInAir is NewCombustionMix with an explicit oxidizer
// composition.
func NewCombustionMixInAir(air chem.Air, fuels []string, props []float64, phi, p, t, v, qext float64) (*CombustionMix, error) {
	if phi < 0 {
		return nil, fmt.Errorf("therm: negative equivalence ratio %g", phi)
	}
	if v <= 0 {
		return nil, fmt.Errorf("therm: non-positive chamber volume %g m³", v)
	}
	blend, err := NewFuelBlend(fuels, props)
	if err != nil {
		return nil, err
	}

	eps := blend.Epsilon()
	psi := air.Psi
	nAir := (p * v / (Ru * t)) / (1.0 + phi*eps/(1.0+psi))
	nFuel := nAir * phi * eps / (1.0 + psi)

	// Full unreacted charge: the fuels plus the O2/N2 split of the air.
	frac := air.Fractions()
	species := append(blend.Formulas(), "O2", "N2")
	moles := make([]float64, 0, len(species))
	for _, prop := range blend.Props {
		moles = append(moles, nFuel*prop)
	}
	moles = append(moles, frac["O2"]*nAir, frac["N2"]*nAir)

	gs, err := NewGasState(species, moles, p, t)
	if err != nil {
		return nil, err
	}
	gs.V = v

	c := &CombustionMix{
		GasState: gs,
		K:        DefaultEquilibriumK,
		blend:    blend,
		air:      air,
		phi:      phi,
		qext:     qext,
		nAir:     nAir,
		nFuel:    nFuel,
		p0:       p,
		t0:       t,
		v0:       v,
	}
	c.nc, c.nh, c.no, c.nn = blend.AtomTotals()

	for formula, dst := range map[string]*float64{"CO2": &c.hfCO2, "H2O": &c.hfH2O, "CO": &c.hfCO} {
		hf, err := GasHf0(formula)
		if err != nil {
			return nil, err
		}
		*dst = hf
	}
	cv, err := gs.HeatCapacityV()
	if err != nil {
		return nil, err
	}
	c.u0 = InternalEnergy(cv, t)
	if c.mass, err = gs.Mass(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reference-state accessors.
func (c *CombustionMix) P0() float64 { return c.p0 }
func (c *CombustionMix) T0() float64 { return c.t0 }
func (c *CombustionMix) V0() float64 { return c.v0 }
func (c *CombustionMix) U0() float64 { return c.u0 }

// Phi returns the equivalence ratio.
func (c *CombustionMix) Phi() float64 { return c.phi }

// Psi returns the nitrogen-to-oxygen ratio of the oxidizer.
func (c *CombustionMix) Psi() float64 { return c.air.Psi }

// AirMoles returns the mole amount of air in the unreacted charge.
func (c *CombustionMix) AirMoles() float64 { return c.nAir }

// FuelMoles returns the mole amount of fuel in the unreacted charge.
func (c *CombustionMix) FuelMoles() float64 { return c.nFuel }

// BurntComposition returns the product moles of CO2, H2O, CO, H2, O2
// and N2 after complete combustion. The composition is computed once
// and cached: the combustion regime is fixed for the life of the
// mixture. Lean charges (phi ≤ 1) split directly by atom balance;
// rich charges require solving a quadratic for the CO amount.
func (c *CombustionMix) BurntComposition() (map[string]float64, error) {
	if c.burnt != nil {
		return c.burnt, nil
	}

	psi := c.air.Psi
	nF := c.nFuel
	o2InAir := c.nAir / (1.0 + psi)

	b := make(map[string]float64, len(burntSpecies))
	b["N2"] = c.nAir*psi/(1.0+psi) + c.nn*nF/2.0

	if c.phi <= 1.0 {
		b["CO2"] = c.nc * nF
		b["H2O"] = c.nh * nF / 2.0
		b["CO"] = 0.0
		b["H2"] = 0.0
		b["O2"] = o2InAir + c.no*nF/2.0 - c.nc*nF - c.nh*nF/4.0
	} else {
		k := c.K
		aa := k - 1.0
		bb := 2.0*(c.nc*nF-o2InAir) +
			k*(2.0*o2InAir-(3.0*c.nc+c.nh/2.0-c.no)*nF) -
			c.no*nF
		cc := k * c.nc * nF * (2.0*c.nc*nF + c.nh*nF/2.0 - c.no*nF - 2.0*o2InAir)
		disc := bb*bb - 4.0*aa*cc
		if disc < 0 {
			return nil, fmt.Errorf("%w: phi=%g, k=%g (negative discriminant %g)",
				ErrInfeasibleMixture, c.phi, k, disc)
		}
		nCO := (-bb - math.Sqrt(disc)) / (2.0 * aa)
		if nCO < 0 {
			nCO = (-bb + math.Sqrt(disc)) / (2.0 * aa)
		}
		b["CO"] = nCO
		b["CO2"] = c.nc*nF - nCO
		b["H2O"] = 2.0*(o2InAir+c.no*nF/2.0-c.nc*nF) + nCO
		b["H2"] = c.nh*nF/2.0 - b["H2O"]
		b["O2"] = 0.0
	}

	if err := c.checkAtomBalance(b); err != nil {
		return nil, err
	}
	c.burnt = b
	return c.burnt, nil
}

// checkAtomBalance verifies that C, H, O and N atoms are conserved
// between the unreacted charge and the burnt products.
func (c *CombustionMix) checkAtomBalance(b map[string]float64) error {
	psi := c.air.Psi
	before := map[string]float64{
		"C": c.nc * c.nFuel,
		"H": c.nh * c.nFuel,
		"O": c.no*c.nFuel + 2.0*c.nAir/(1.0+psi),
		"N": c.nn*c.nFuel + 2.0*c.nAir*psi/(1.0+psi),
	}
	after := map[string]float64{
		"C": b["CO2"] + b["CO"],
		"H": 2.0*b["H2O"] + 2.0*b["H2"],
		"O": 2.0*b["CO2"] + b["H2O"] + b["CO"] + 2.0*b["O2"],
		"N": 2.0 * b["N2"],
	}
	for _, el := range []string{"C", "H", "O", "N"} {
		diff := math.Abs(before[el] - after[el])
		scale := math.Max(math.Abs(before[el]), 1.0)
		if diff > 1e-9*scale {
			return fmt.Errorf("therm: %s atoms not conserved in combustion: %g before, %g after",
				el, before[el], after[el])
		}
	}
	return nil
}

// BurntTotalMoles returns the total product mole count.
func (c *CombustionMix) BurntTotalMoles() (float64, error) {
	b, err := c.BurntComposition()
	if err != nil {
		return 0, err
	}
	var n float64
	for _, sp := range burntSpecies {
		n += b[sp]
	}
	return n, nil
}

// BurntMoleFractions returns the mole fraction of each product.
func (c *CombustionMix) BurntMoleFractions() (map[string]float64, error) {
	b, err := c.BurntComposition()
	if err != nil {
		return nil, err
	}
	n, err := c.BurntTotalMoles()
	if err != nil {
		return nil, err
	}
	xi := make(map[string]float64, len(burntSpecies))
	for _, sp := range burntSpecies {
		xi[sp] = b[sp] / n
	}
	return xi, nil
}

// BurntMolarMass returns the molar mass of the product mixture in
// kg/mol.
func (c *CombustionMix) BurntMolarMass() (float64, error) {
	xi, err := c.BurntMoleFractions()
	if err != nil {
		return 0, err
	}
	var mm float64
	for _, sp := range burntSpecies {
		m, err := chem.MolarMass(sp)
		if err != nil {
			return 0, err
		}
		mm += xi[sp] * m / 1000.0
	}
	return mm, nil
}

// BurntMass returns the mass of the product mixture in kg.
func (c *CombustionMix) BurntMass() (float64, error) {
	mm, err := c.BurntMolarMass()
	if err != nil {
		return 0, err
	}
	n, err := c.BurntTotalMoles()
	if err != nil {
		return 0, err
	}
	return n * mm, nil
}

// burntCvI returns cv of each product species in kJ/(mol·K).
func (c *CombustionMix) burntCvI() (map[string]float64, error) {
	cv := make(map[string]float64, len(burntSpecies))
	for _, sp := range burntSpecies {
		cp, err := GasCp(sp)
		if err != nil {
			return nil, err
		}
		cv[sp] = cp - Ru
	}
	return cv, nil
}

// BurntCvMolar returns the mole-fraction-weighted cv of the product
// mixture in kJ/(mol·K).
func (c *CombustionMix) BurntCvMolar() (float64, error) {
	xi, err := c.BurntMoleFractions()
	if err != nil {
		return 0, err
	}
	cv, err := c.burntCvI()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, sp := range burntSpecies {
		sum += xi[sp] * cv[sp]
	}
	return sum, nil
}

// BurntCpMolar returns the mole-fraction-weighted cp of the product
// mixture in kJ/(mol·K).
func (c *CombustionMix) BurntCpMolar() (float64, error) {
	cv, err := c.BurntCvMolar()
	if err != nil {
		return 0, err
	}
	return cv + Ru, nil
}

// BurntHeatCapacityV returns the extensive constant-volume heat
// capacity of the products in kJ/K.
func (c *CombustionMix) BurntHeatCapacityV() (float64, error) {
	b, err := c.BurntComposition()
	if err != nil {
		return 0, err
	}
	cv, err := c.burntCvI()
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, sp := range burntSpecies {
		sum += cv[sp] * b[sp]
	}
	return sum, nil
}

// Chi returns the instantaneous composition at burned fraction
// y ∈ [0,1] with residual-gas fraction zeta ∈ [0,1]: the unreacted
// charge scales by (1−y)(1−zeta), the products by zeta+(1−zeta)y. The
// residual term represents combustion products trapped from the
// previous cycle, present even before ignition.
func (c *CombustionMix) Chi(y, zeta float64) (Composition, error) {
	b, err := c.BurntComposition()
	if err != nil {
		return Composition{}, err
	}
	psi := c.air.Psi
	fresh := (1.0 - y) * (1.0 - zeta)
	reacted := zeta + (1.0-zeta)*y
	air := fresh * c.nAir
	return Composition{
		Fuel: fresh * c.nFuel,
		CO2:  reacted * b["CO2"],
		H2O:  reacted * b["H2O"],
		CO:   reacted * b["CO"],
		H2:   reacted * b["H2"],
		O2:   reacted*b["O2"] + air/(1.0+psi),
		N2:   reacted*b["N2"] + air*psi/(1.0+psi),
	}, nil
}

// MolesAt returns the total mole count at burned fraction y.
func (c *CombustionMix) MolesAt(y, zeta float64) (float64, error) {
	x, err := c.Chi(y, zeta)
	if err != nil {
		return 0, err
	}
	return x.Total(), nil
}

// MoleFractionsAt returns the mole fraction of every species present
// at burned fraction y, with the fuel total split by blend proportion.
func (c *CombustionMix) MoleFractionsAt(y, zeta float64) (map[string]float64, error) {
	x, err := c.Chi(y, zeta)
	if err != nil {
		return nil, err
	}
	n := x.Total()
	xi := map[string]float64{
		"CO2": x.CO2 / n,
		"H2O": x.H2O / n,
		"CO":  x.CO / n,
		"H2":  x.H2 / n,
		"O2":  x.O2 / n,
		"N2":  x.N2 / n,
	}
	for i, f := range c.blend.Fuels {
		xi[f.Formula] = x.Fuel * c.blend.Props[i] / n
	}
	return xi, nil
}

// HeatRelease returns the heat liberated when the burned fraction
// advances from y1 to y2 [kJ], weighted by formation enthalpies of the
// products and the fuels, plus the external heat contribution
// proportional to (y2−y1). It is additive over subdivisions of the
// burn interval.
func (c *CombustionMix) HeatRelease(y1, y2, zeta float64) (float64, error) {
	b, err := c.BurntComposition()
	if err != nil {
		return 0, err
	}
	products := b["CO2"]*c.hfCO2 + b["H2O"]*c.hfH2O + b["CO"]*c.hfCO
	q := (zeta+(1.0-zeta)*y1)*products - (zeta+(1.0-zeta)*y2)*products +
		c.qext*(y2-y1)*c.mass
	for i, f := range c.blend.Fuels {
		nf := c.nFuel * c.blend.Props[i]
		q += (1.0-y1)*(1.0-zeta)*nf*f.Hf0 - (1.0-y2)*(1.0-zeta)*nf*f.Hf0
	}
	return q, nil
}

// TotalHeat returns the heat liberated by complete combustion of the
// fresh charge [kJ], reduced by the residual-gas fraction.
func (c *CombustionMix) TotalHeat(zeta float64) (float64, error) {
	b, err := c.BurntComposition()
	if err != nil {
		return 0, err
	}
	q := c.nFuel*c.blend.FormationEnthalpy() -
		c.hfCO*b["CO"] - c.hfH2O*b["H2O"] - c.hfCO2*b["CO2"] +
		c.qext*c.mass
	return q * (1.0 - zeta), nil
}

// CvAt returns the molar cv of the instantaneous mixture at burned
// fraction y in kJ/(mol·K).
func (c *CombustionMix) CvAt(y, zeta float64) (float64, error) {
	xi, err := c.MoleFractionsAt(y, zeta)
	if err != nil {
		return 0, err
	}
	cvb, err := c.burntCvI()
	if err != nil {
		return 0, err
	}
	var cv float64
	for _, sp := range burntSpecies {
		cv += cvb[sp] * xi[sp]
	}
	for _, f := range c.blend.Fuels {
		cp, err := GasCp(f.Formula)
		if err != nil {
			return 0, err
		}
		cv += (cp - Ru) * xi[f.Formula]
	}
	return cv, nil
}

// HeatCapacityVAt returns the extensive constant-volume heat capacity
// of the instantaneous mixture at burned fraction y in kJ/K.
func (c *CombustionMix) HeatCapacityVAt(y, zeta float64) (float64, error) {
	x, err := c.Chi(y, zeta)
	if err != nil {
		return 0, err
	}
	cvb, err := c.burntCvI()
	if err != nil {
		return 0, err
	}
	cv := x.CO2*cvb["CO2"] + x.H2O*cvb["H2O"] + x.CO*cvb["CO"] +
		x.H2*cvb["H2"] + x.O2*cvb["O2"] + x.N2*cvb["N2"]
	for i, f := range c.blend.Fuels {
		cp, err := GasCp(f.Formula)
		if err != nil {
			return 0, err
		}
		cv += (cp - Ru) * x.Fuel * c.blend.Props[i]
	}
	return cv, nil
}
