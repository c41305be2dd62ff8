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

// Ru is the universal gas constant [kJ/(mol·K)].
const Ru = 8.3144598e-3

// Mixture is an ordered set of chemical species with mole amounts.
// Derived quantities (fractions, masses, specific heats) are computed
// on each call rather than cached, so they always reflect the current
// composition.
type Mixture struct {
	species []string
	moles   []float64
}

// NewMixture builds a mixture from parallel species and mole-amount
// slices. The slices must be non-empty and of equal length, and mole
// amounts must be non-negative.
func NewMixture(species []string, moles []float64) (*Mixture, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("therm: mixture needs at least one species")
	}
	if len(species) != len(moles) {
		return nil, fmt.Errorf("therm: %d species but %d mole amounts", len(species), len(moles))
	}
	seen := make(map[string]bool, len(species))
	for i, sp := range species {
		if seen[sp] {
			return nil, fmt.Errorf("therm: species %q listed twice", sp)
		}
		seen[sp] = true
		if moles[i] < 0 {
			return nil, fmt.Errorf("therm: negative mole amount %g for %q", moles[i], sp)
		}
	}
	m := &Mixture{
		species: append([]string(nil), species...),
		moles:   append([]float64(nil), moles...),
	}
	return m, nil
}

// Species returns the species formulas in their construction order.
func (m *Mixture) Species() []string {
	return append([]string(nil), m.species...)
}

// Moles returns the mole amounts in species order.
func (m *Mixture) Moles() []float64 {
	return append([]float64(nil), m.moles...)
}

// TotalMoles returns the total mole count of the mixture.
func (m *Mixture) TotalMoles() float64 {
	return floats.Sum(m.moles)
}

// MoleFractions returns the mole fraction of each species. The
// fractions sum to one.
func (m *Mixture) MoleFractions() map[string]float64 {
	n := m.TotalMoles()
	xi := make(map[string]float64, len(m.species))
	for i, sp := range m.species {
		xi[sp] = m.moles[i] / n
	}
	return xi
}

// MolarMasses returns the molar mass of each species in kg/mol.
func (m *Mixture) MolarMasses() (map[string]float64, error) {
	mm := make(map[string]float64, len(m.species))
	for _, sp := range m.species {
		v, err := chem.MolarMass(sp)
		if err != nil {
			return nil, err
		}
		mm[sp] = v / 1000.0
	}
	return mm, nil
}

// MolarMass returns the mole-fraction-weighted molar mass of the
// mixture in kg/mol.
func (m *Mixture) MolarMass() (float64, error) {
	mm, err := m.MolarMasses()
	if err != nil {
		return 0, err
	}
	var sum float64
	for sp, xi := range m.MoleFractions() {
		sum += xi * mm[sp]
	}
	return sum, nil
}

// Mass returns the total mass of the mixture in kg.
func (m *Mixture) Mass() (float64, error) {
	mm, err := m.MolarMass()
	if err != nil {
		return 0, err
	}
	return m.TotalMoles() * mm, nil
}

// MassFractions returns the mass fraction of each species.
func (m *Mixture) MassFractions() (map[string]float64, error) {
	mm, err := m.MolarMasses()
	if err != nil {
		return nil, err
	}
	mTot, err := m.MolarMass()
	if err != nil {
		return nil, err
	}
	w := make(map[string]float64, len(m.species))
	for sp, xi := range m.MoleFractions() {
		w[sp] = xi * mm[sp] / mTot
	}
	return w, nil
}

// MassOf returns the mass in kg of one species in the mixture.
func (m *Mixture) MassOf(species string) (float64, error) {
	w, err := m.MassFractions()
	if err != nil {
		return 0, err
	}
	frac, ok := w[species]
	if !ok {
		return 0, fmt.Errorf("therm: species %q not in mixture", species)
	}
	mass, err := m.Mass()
	if err != nil {
		return 0, err
	}
	return frac * mass, nil
}

// PartialPressures applies Dalton's law: each species contributes its
// mole fraction of the total pressure p [kPa].
func (m *Mixture) PartialPressures(p float64) map[string]float64 {
	pi := make(map[string]float64, len(m.species))
	for sp, xi := range m.MoleFractions() {
		pi[sp] = xi * p
	}
	return pi
}

// PartialVolumes applies Amagat's law: each species occupies its mole
// fraction of the total volume v [m³].
func (m *Mixture) PartialVolumes(v float64) map[string]float64 {
	vi := make(map[string]float64, len(m.species))
	for sp, xi := range m.MoleFractions() {
		vi[sp] = xi * v
	}
	return vi
}

// CpI returns the constant-pressure specific heat of each species in
// kJ/(mol·K).
func (m *Mixture) CpI() (map[string]float64, error) {
	cp := make(map[string]float64, len(m.species))
	for _, sp := range m.species {
		v, err := GasCp(sp)
		if err != nil {
			return nil, err
		}
		cp[sp] = v
	}
	return cp, nil
}

// CvI returns the constant-volume specific heat of each species in
// kJ/(mol·K), using cv = cp − Ru.
func (m *Mixture) CvI() (map[string]float64, error) {
	cp, err := m.CpI()
	if err != nil {
		return nil, err
	}
	cv := make(map[string]float64, len(cp))
	for sp, v := range cp {
		cv[sp] = v - Ru
	}
	return cv, nil
}

// CpMolar returns the mole-fraction-weighted cp of the mixture in
// kJ/(mol·K).
func (m *Mixture) CpMolar() (float64, error) {
	cp, err := m.CpI()
	if err != nil {
		return 0, err
	}
	var sum float64
	for sp, xi := range m.MoleFractions() {
		sum += xi * cp[sp]
	}
	return sum, nil
}

// CvMolar returns the mole-fraction-weighted cv of the mixture in
// kJ/(mol·K).
func (m *Mixture) CvMolar() (float64, error) {
	cp, err := m.CpMolar()
	if err != nil {
		return 0, err
	}
	return cp - Ru, nil
}

// HeatCapacityP returns the extensive constant-pressure heat capacity
// of the mixture in kJ/K.
func (m *Mixture) HeatCapacityP() (float64, error) {
	cp, err := m.CpI()
	if err != nil {
		return 0, err
	}
	var sum float64
	for i, sp := range m.species {
		sum += cp[sp] * m.moles[i]
	}
	return sum, nil
}

// HeatCapacityV returns the extensive constant-volume heat capacity of
// the mixture in kJ/K.
func (m *Mixture) HeatCapacityV() (float64, error) {
	cv, err := m.CvI()
	if err != nil {
		return 0, err
	}
	var sum float64
	for i, sp := range m.species {
		sum += cv[sp] * m.moles[i]
	}
	return sum, nil
}

// CpMass returns the mass-specific cp of the mixture in kJ/(kg·K).
func (m *Mixture) CpMass() (float64, error) {
	cp, err := m.HeatCapacityP()
	if err != nil {
		return 0, err
	}
	mass, err := m.Mass()
	if err != nil {
		return 0, err
	}
	return cp / mass, nil
}

// CvMass returns the mass-specific cv of the mixture in kJ/(kg·K).
func (m *Mixture) CvMass() (float64, error) {
	cv, err := m.HeatCapacityV()
	if err != nil {
		return 0, err
	}
	mass, err := m.Mass()
	if err != nil {
		return 0, err
	}
	return cv / mass, nil
}

// GasState couples a mixture to a pressure [kPa] and temperature [K];
// the volume [m³] follows from the ideal-gas law.
type GasState struct {
	*Mixture
	P float64 // kPa
	T float64 // K
	V float64 // m³
}

// NewGasState builds a mixture at the given pressure and temperature
// and derives its volume from PV = nRuT.
func NewGasState(species []string, moles []float64, p, t float64) (*GasState, error) {
	if p <= 0 || t <= 0 {
		return nil, fmt.Errorf("therm: non-positive state (p=%g kPa, t=%g K)", p, t)
	}
	m, err := NewMixture(species, moles)
	if err != nil {
		return nil, err
	}
	return &GasState{
		Mixture: m,
		P:       p,
		T:       t,
		V:       m.TotalMoles() * Ru * t / p,
	}, nil
}

// R returns the specific gas constant of the mixture in kJ/(kg·K).
func (g *GasState) R() (float64, error) {
	mm, err := g.MolarMass()
	if err != nil {
		return 0, err
	}
	return Ru / mm, nil
}

// InternalEnergy returns U = CV·T [kJ] for an extensive heat capacity
// CV [kJ/K].
func InternalEnergy(cv, t float64) float64 {
	return cv * t
}

// TemperatureOf inverts InternalEnergy: T = U/CV.
func TemperatureOf(cv, u float64) float64 {
	return u / cv
}

// PressureOf solves the ideal-gas law for pressure [kPa].
func PressureOf(n, v, t float64) float64 {
	return n * Ru * t / v
}

// TemperatureFrom solves the ideal-gas law for temperature [K].
func TemperatureFrom(n, v, p float64) float64 {
	return p * v / (n * Ru)
}

// VolumeOf solves the ideal-gas law for volume [m³].
func VolumeOf(n, t, p float64) float64 {
	return n * Ru * t / p
}
