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

// DefaultPsi is the molar nitrogen-to-oxygen ratio of standard air
// (79% N2, 21% O2).
const DefaultPsi = 3.76

// Air models the oxidizer as an ideal O2/N2 blend with a configurable
// nitrogen-to-oxygen molar ratio.
type Air struct {
	Psi float64
}

// NewAir returns standard air (psi = 3.76).
func NewAir() Air {
	return Air{Psi: DefaultPsi}
}

// Fractions returns the mole fractions of O2 and N2.
func (a Air) Fractions() map[string]float64 {
	return map[string]float64{
		"O2": 1.0 / (1.0 + a.Psi),
		"N2": a.Psi / (1.0 + a.Psi),
	}
}

// Species returns the component species of air in a fixed order.
func (a Air) Species() []string {
	return []string{"O2", "N2"}
}
