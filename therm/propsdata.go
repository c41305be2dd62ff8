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

// Standard-state thermodynamic properties of combustion-relevant
// substances, from the CRC Handbook of Chemistry and Physics, Internet
// Version 2005. Formation enthalpies and Gibbs energies are in kJ/mol;
// entropies and specific heats are in J/(mol·K). The table has holes:
// not every property is tabulated for every phase.
var stdProps = map[string]Substance{
	"C": {
		Name:   "Carbon",
		Solid:  PhaseProps{Hf0: PropValue{Value: 0.0, OK: true}, S0: PropValue{Value: 5.7, OK: true}, Cp: PropValue{Value: 8.5, OK: true}},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 716.7, OK: true}, Gf0: PropValue{Value: 671.3, OK: true}, S0: PropValue{Value: 158.1, OK: true}, Cp: PropValue{Value: 20.8, OK: true}},
	},
	"CO": {
		Name:   "Carbon monoxide",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: -110.5, OK: true}, Gf0: PropValue{Value: -137.2, OK: true}, S0: PropValue{Value: 197.7, OK: true}, Cp: PropValue{Value: 29.1, OK: true}},
	},
	"CO2": {
		Name:   "Carbon dioxide",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: -393.5, OK: true}, Gf0: PropValue{Value: -394.4, OK: true}, S0: PropValue{Value: 213.8, OK: true}, Cp: PropValue{Value: 37.1, OK: true}},
	},
	"N": {
		Name:   "Nitrogen (atomic)",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 472.7, OK: true}, Gf0: PropValue{Value: 455.5, OK: true}, S0: PropValue{Value: 153.3, OK: true}, Cp: PropValue{Value: 20.8, OK: true}},
	},
	"NO": {
		Name:   "Nitric oxide",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 91.3, OK: true}, Gf0: PropValue{Value: 87.6, OK: true}, S0: PropValue{Value: 210.8, OK: true}, Cp: PropValue{Value: 29.9, OK: true}},
	},
	"NO2": {
		Name:   "Nitrogen dioxide",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 33.2, OK: true}, Gf0: PropValue{Value: 51.3, OK: true}, S0: PropValue{Value: 240.1, OK: true}, Cp: PropValue{Value: 37.2, OK: true}},
	},
	"N2": {
		Name:   "Nitrogen",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 0.0, OK: true}, S0: PropValue{Value: 191.6, OK: true}, Cp: PropValue{Value: 29.1, OK: true}},
	},
	"O2": {
		Name:   "Oxygen",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 0.0, OK: true}, S0: PropValue{Value: 205.2, OK: true}, Cp: PropValue{Value: 29.4, OK: true}},
	},
	"H2": {
		Name:   "Hydrogen",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 0.0, OK: true}, S0: PropValue{Value: 130.7, OK: true}, Cp: PropValue{Value: 28.8, OK: true}},
	},
	"HO": {
		Name:   "Hydroxyl",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: 39.0, OK: true}, Gf0: PropValue{Value: 34.2, OK: true}, S0: PropValue{Value: 183.7, OK: true}, Cp: PropValue{Value: 29.9, OK: true}},
	},
	"H2O": {
		Name:   "Water",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -285.8, OK: true}, Gf0: PropValue{Value: -237.1, OK: true}, S0: PropValue{Value: 70.0, OK: true}, Cp: PropValue{Value: 75.3, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -241.8, OK: true}, Gf0: PropValue{Value: -228.6, OK: true}, S0: PropValue{Value: 188.8, OK: true}, Cp: PropValue{Value: 33.6, OK: true}},
	},
	"H4N2": {
		Name:   "Hydrazine",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: 50.6, OK: true}, Gf0: PropValue{Value: 149.3, OK: true}, S0: PropValue{Value: 121.2, OK: true}, Cp: PropValue{Value: 98.9, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: 95.4, OK: true}, Gf0: PropValue{Value: 159.4, OK: true}, S0: PropValue{Value: 238.5, OK: true}, Cp: PropValue{Value: 48.4, OK: true}},
	},
	"CH4": {
		Name:   "Methane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: -74.6, OK: true}, Gf0: PropValue{Value: -50.5, OK: true}, S0: PropValue{Value: 186.3, OK: true}, Cp: PropValue{Value: 35.7, OK: true}},
	},
	"C2H6": {
		Name:   "Ethane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{Hf0: PropValue{Value: -84.0, OK: true}, Gf0: PropValue{Value: -32.0, OK: true}, S0: PropValue{Value: 229.2, OK: true}, Cp: PropValue{Value: 52.5, OK: true}},
	},
	"C3H8": {
		Name:   "Propane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -120.9, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -103.8, OK: true}, Gf0: PropValue{Value: -23.4, OK: true}, S0: PropValue{Value: 270.3, OK: true}, Cp: PropValue{Value: 73.6, OK: true}},
	},
	"C4H10": {
		Name:   "Butane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -147.3, OK: true}, Cp: PropValue{Value: 140.9, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -125.7, OK: true}, Cp: PropValue{Value: 99.7, OK: true}},
	},
	"C5H12": {
		Name:   "Pentane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -173.5, OK: true}, Cp: PropValue{Value: 167.2, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -146.9, OK: true}},
	},
	"C6H14": {
		Name:   "Hexane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -198.7, OK: true}, Cp: PropValue{Value: 195.6, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -166.9, OK: true}},
	},
	"C7H16": {
		Name:   "Heptane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -224.2, OK: true}, Cp: PropValue{Value: 224.7, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -187.6, OK: true}},
	},
	"C8H18": {
		Name:   "Octane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -250.1, OK: true}, Cp: PropValue{Value: 254.6, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -208.5, OK: true}, Cp: PropValue{Value: 195.5, OK: true}},
	},
	"C9H20": {
		Name:   "Nonane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -274.7, OK: true}, Cp: PropValue{Value: 284.4, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -228.2, OK: true}},
	},
	"C10H22": {
		Name:   "Decane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -300.9, OK: true}, Cp: PropValue{Value: 314.4, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -249.5, OK: true}},
	},
	"C11H24": {
		Name:   "Undecane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -327.2, OK: true}, Cp: PropValue{Value: 344.9, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -270.8, OK: true}},
	},
	"C12H26": {
		Name:   "Dodecane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -350.9, OK: true}, Cp: PropValue{Value: 375.8, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -289.4, OK: true}},
	},
	"C13H28": {
		Name:   "Tridecane",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Cp: PropValue{Value: 406.7, OK: true}},
		Gas:    PhaseProps{},
	},
	"CH4O": {
		Name:   "Methanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -239.2, OK: true}, Gf0: PropValue{Value: -166.6, OK: true}, S0: PropValue{Value: 126.8, OK: true}, Cp: PropValue{Value: 81.1, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -201.0, OK: true}, Gf0: PropValue{Value: -162.3, OK: true}, S0: PropValue{Value: 239.9, OK: true}, Cp: PropValue{Value: 44.1, OK: true}},
	},
	"C2H6O": {
		Name:   "Ethanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -277.6, OK: true}, Gf0: PropValue{Value: -174.8, OK: true}, S0: PropValue{Value: 160.7, OK: true}, Cp: PropValue{Value: 112.3, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -234.8, OK: true}, Gf0: PropValue{Value: -167.9, OK: true}, S0: PropValue{Value: 281.6, OK: true}, Cp: PropValue{Value: 65.6, OK: true}},
	},
	"C3H8O": {
		Name:   "1-Propanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -302.6, OK: true}, S0: PropValue{Value: 193.6, OK: true}, Cp: PropValue{Value: 143.9, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -255.1, OK: true}, S0: PropValue{Value: 322.6, OK: true}, Cp: PropValue{Value: 85.6, OK: true}},
	},
	"C4H10O": {
		Name:   "2-Butanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -342.6, OK: true}, S0: PropValue{Value: 214.9, OK: true}, Cp: PropValue{Value: 196.9, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -292.8, OK: true}, S0: PropValue{Value: 359.5, OK: true}, Cp: PropValue{Value: 112.7, OK: true}},
	},
	"C5H12O": {
		Name:   "1-Pentanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -351.6, OK: true}, Cp: PropValue{Value: 208.1, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -294.6, OK: true}},
	},
	"C6H14O": {
		Name:   "1-Hexanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -377.5, OK: true}, S0: PropValue{Value: 287.4, OK: true}, Cp: PropValue{Value: 240.4, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -315.9, OK: true}},
	},
	"C7H16O": {
		Name:   "1-Heptanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -403.3, OK: true}, Cp: PropValue{Value: 272.1, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -336.5, OK: true}},
	},
	"C8H18O": {
		Name:   "1-Octanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -426.5, OK: true}, Cp: PropValue{Value: 305.2, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -355.6, OK: true}},
	},
	"C9H20O": {
		Name:   "1-Nonanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -453.4, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -376.5, OK: true}},
	},
	"C10H22O": {
		Name:   "1-Decanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -478.1, OK: true}, Cp: PropValue{Value: 370.6, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -396.6, OK: true}},
	},
	"C11H24O": {
		Name:   "1-Undecanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -504.8, OK: true}},
		Gas:    PhaseProps{},
	},
	"C12H26O": {
		Name:   "1-Dodecanol",
		Solid:  PhaseProps{},
		Liquid: PhaseProps{Hf0: PropValue{Value: -528.5, OK: true}, Cp: PropValue{Value: 438.1, OK: true}},
		Gas:    PhaseProps{Hf0: PropValue{Value: -436.6, OK: true}},
	},
	"C13H28O": {
		Name:   "1-Tridecanol",
		Solid:  PhaseProps{Hf0: PropValue{Value: -599.4, OK: true}},
		Liquid: PhaseProps{},
		Gas:    PhaseProps{},
	},
}
