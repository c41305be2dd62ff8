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

// Isotopic composition of the elements, from the CRC Handbook of
// Chemistry and Physics, Internet Version 2005. Masses are in unified
// atomic mass units; abundances are terrestrial percentages. Isotopes
// produced only artificially have no abundance entry.
var elements = map[int]Element{
	1: {
		Symbol: "H",
		Isotopes: map[int]Isotope{
			1: {Mass: 1.007825032071, Abundance: 99.98857, Known: true},
			2: {Mass: 2.01410177784, Abundance: 0.01157, Known: true},
			3: {Mass: 3.016049277725},
		},
	},
	2: {
		Symbol: "He",
		Isotopes: map[int]Isotope{
			3: {Mass: 3.01602930979, Abundance: 0.0001373, Known: true},
			4: {Mass: 4.00260324971, Abundance: 99.9998633, Known: true},
		},
	},
	3: {
		Symbol: "Li",
		Isotopes: map[int]Isotope{
			6: {Mass: 6.01512235, Abundance: 7.594, Known: true},
			7: {Mass: 7.01600405, Abundance: 92.414, Known: true},
		},
	},
	4: {
		Symbol: "Be",
		Isotopes: map[int]Isotope{
			9: {Mass: 9.01218214, Abundance: 100.0, Known: true},
		},
	},
	5: {
		Symbol: "B",
		Isotopes: map[int]Isotope{
			10: {Mass: 10.01293704, Abundance: 19.97, Known: true},
			11: {Mass: 11.00930555, Abundance: 80.17, Known: true},
		},
	},
	6: {
		Symbol: "C",
		Isotopes: map[int]Isotope{
			12: {Mass: 12.0, Abundance: 98.938, Known: true},
			13: {Mass: 13.00335483781, Abundance: 1.078, Known: true},
		},
	},
	7: {
		Symbol: "N",
		Isotopes: map[int]Isotope{
			14: {Mass: 14.00307400529, Abundance: 99.6327, Known: true},
			15: {Mass: 15.00010889849, Abundance: 0.3687, Known: true},
		},
	},
	8: {
		Symbol: "O",
		Isotopes: map[int]Isotope{
			16: {Mass: 15.994914622115, Abundance: 99.75716, Known: true},
			17: {Mass: 16.9991315022, Abundance: 0.0381, Known: true},
			18: {Mass: 17.99916049, Abundance: 0.20514, Known: true},
		},
	},
	9: {
		Symbol: "F",
		Isotopes: map[int]Isotope{
			19: {Mass: 18.998403207, Abundance: 100.0, Known: true},
		},
	},
	10: {
		Symbol: "Ne",
		Isotopes: map[int]Isotope{
			20: {Mass: 19.99244017592, Abundance: 90.483, Known: true},
			21: {Mass: 20.993846744, Abundance: 0.271, Known: true},
			22: {Mass: 21.9913855123, Abundance: 9.253, Known: true},
		},
	},
	14: {
		Symbol: "Si",
		Isotopes: map[int]Isotope{
			28: {Mass: 27.976926532519, Abundance: 92.22319, Known: true},
			29: {Mass: 28.97649470022, Abundance: 4.6858, Known: true},
			30: {Mass: 29.973770173, Abundance: 3.09211, Known: true},
		},
	},
	15: {
		Symbol: "P",
		Isotopes: map[int]Isotope{
			31: {Mass: 30.973761632, Abundance: 100.0, Known: true},
			32: {Mass: 31.973907272},
		},
	},
	16: {
		Symbol: "S",
		Isotopes: map[int]Isotope{
			32: {Mass: 31.9720710015, Abundance: 94.9926, Known: true},
			33: {Mass: 32.9714587615, Abundance: 0.752, Known: true},
			34: {Mass: 33.9678669012, Abundance: 4.2524, Known: true},
			35: {Mass: 34.9690321611},
			36: {Mass: 35.967080762, Abundance: 0.011, Known: true},
		},
	},
	17: {
		Symbol: "Cl",
		Isotopes: map[int]Isotope{
			35: {Mass: 34.968852684, Abundance: 75.761, Known: true},
			37: {Mass: 36.965902595, Abundance: 24.241, Known: true},
		},
	},
	18: {
		Symbol: "Ar",
		Isotopes: map[int]Isotope{
			36: {Mass: 35.96754510629, Abundance: 0.33653, Known: true},
			38: {Mass: 37.96273244, Abundance: 0.06325, Known: true},
			40: {Mass: 39.962383122529, Abundance: 99.60033, Known: true},
		},
	},
	33: {
		Symbol: "As",
		Isotopes: map[int]Isotope{
			75: {Mass: 74.92159652, Abundance: 100.0, Known: true},
		},
	},
	34: {
		Symbol: "Se",
		Isotopes: map[int]Isotope{
			74: {Mass: 73.922476418, Abundance: 0.894, Known: true},
			75: {Mass: 74.922523418},
			76: {Mass: 75.919213618, Abundance: 9.3729, Known: true},
			77: {Mass: 76.919914018, Abundance: 7.6316, Known: true},
			78: {Mass: 77.917309118, Abundance: 23.7728, Known: true},
			79: {Mass: 78.918499118},
			80: {Mass: 79.916521321, Abundance: 49.6141, Known: true},
			82: {Mass: 81.916699422, Abundance: 8.7322, Known: true},
		},
	},
	35: {
		Symbol: "Br",
		Isotopes: map[int]Isotope{
			79: {Mass: 78.918337122, Abundance: 50.697, Known: true},
			81: {Mass: 80.916290621, Abundance: 49.317, Known: true},
		},
	},
	36: {
		Symbol: "Kr",
		Isotopes: map[int]Isotope{
			78: {Mass: 77.920364812, Abundance: 0.3353, Known: true},
			80: {Mass: 79.916379016, Abundance: 2.2861, Known: true},
			82: {Mass: 81.913483619, Abundance: 11.59331, Known: true},
			83: {Mass: 82.9141363, Abundance: 11.50019, Known: true},
			84: {Mass: 83.9115073, Abundance: 56.98715, Known: true},
			86: {Mass: 85.9106107311, Abundance: 17.27941, Known: true},
		},
	},
	52: {
		Symbol: "Te",
		Isotopes: map[int]Isotope{
			120: {Mass: 119.9040201, Abundance: 0.091, Known: true},
			122: {Mass: 121.903043916, Abundance: 2.5512, Known: true},
			123: {Mass: 122.904270016, Abundance: 0.893, Known: true},
			124: {Mass: 123.902817916, Abundance: 4.7414, Known: true},
			125: {Mass: 124.904430716, Abundance: 7.0715, Known: true},
			126: {Mass: 125.903311716, Abundance: 18.8425, Known: true},
			128: {Mass: 127.904463119, Abundance: 31.748, Known: true},
			130: {Mass: 129.9062224421, Abundance: 34.0862, Known: true},
		},
	},
	53: {
		Symbol: "I",
		Isotopes: map[int]Isotope{
			123: {Mass: 122.9055894},
			125: {Mass: 124.904630216},
			127: {Mass: 126.9044734, Abundance: 100.0, Known: true},
			129: {Mass: 128.9049883},
			131: {Mass: 130.906124612},
		},
	},
	54: {
		Symbol: "Xe",
		Isotopes: map[int]Isotope{
			124: {Mass: 123.90589302, Abundance: 0.09523, Known: true},
			126: {Mass: 125.9042747, Abundance: 0.08902, Known: true},
			128: {Mass: 127.903531315, Abundance: 1.91028, Known: true},
			129: {Mass: 128.90477948, Abundance: 26.400682, Known: true},
			130: {Mass: 129.90350808, Abundance: 4.071013, Known: true},
			131: {Mass: 130.90508241, Abundance: 21.23243, Known: true},
			132: {Mass: 131.90415351, Abundance: 26.908633, Known: true},
			134: {Mass: 133.90539459, Abundance: 10.435721, Known: true},
			136: {Mass: 135.9072198, Abundance: 8.857344, Known: true},
		},
	},
	85: {
		Symbol: "At",
		Isotopes: map[int]Isotope{
			210: {Mass: 209.9871488},
			211: {Mass: 210.98749633},
		},
	},
	86: {
		Symbol: "Rn",
		Isotopes: map[int]Isotope{
			211: {Mass: 210.9906017},
			220: {Mass: 220.011394024},
			222: {Mass: 222.017577725},
		},
	},
}
