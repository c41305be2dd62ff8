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

package engine

import (
	"fmt"
	"math"
)

// CrankRod is a crank-slider mechanism for one cylinder. All lengths
// are in m and volumes in m³. Crank angle alpha is measured from top
// dead center, so Volume(0) = Vmin.
type CrankRod struct {
	Bore  float64 // cylinder bore D
	Rod   float64 // connecting-rod length L
	Crank float64 // crank radius r
	Vmin  float64 // clearance volume
}

// NewCrankRod builds a CrankRod from a complete geometry record.
func NewCrankRod(g map[string]float64) (CrankRod, error) {
	if err := Complete(g); err != nil {
		return CrankRod{}, err
	}
	cr := CrankRod{
		Bore:  g[KeyBore],
		Rod:   g[KeyRod],
		Crank: g[KeyCrank],
		Vmin:  g[KeyClearance],
	}
	if cr.Rod < cr.Crank {
		return CrankRod{}, fmt.Errorf("engine: rod length %g m shorter than crank radius %g m", cr.Rod, cr.Crank)
	}
	return cr, nil
}

// Position returns the piston displacement from top dead center at
// crank angle alpha [rad].
func (cr CrankRod) Position(alpha float64) float64 {
	sin := math.Sin(alpha) * cr.Crank / cr.Rod
	return cr.Crank*(1-math.Cos(alpha)) + cr.Rod*(1-math.Sqrt(1-sin*sin))
}

// Volume returns the instantaneous in-cylinder volume at crank angle
// alpha [rad].
func (cr CrankRod) Volume(alpha float64) float64 {
	return cr.Position(alpha)*math.Pi*cr.Bore*cr.Bore/4 + cr.Vmin
}

// DisplacedVolume returns the swept volume of one stroke.
func (cr CrankRod) DisplacedVolume() float64 {
	return cr.Crank * math.Pi * cr.Bore * cr.Bore / 2
}

// CompressionRatio returns the volumetric compression ratio.
func (cr CrankRod) CompressionRatio() float64 {
	return 1 + cr.DisplacedVolume()/cr.Vmin
}

// Velocity returns the piston speed at crank angle alpha [rad] for a
// constant crankshaft angular speed omega [rad/s].
func (cr CrankRod) Velocity(alpha, omega float64) float64 {
	lr := cr.Crank / cr.Rod
	sin, cos := math.Sin(alpha), math.Cos(alpha)
	root := math.Sqrt(1 - lr*lr*sin*sin)
	return omega * cr.Crank * sin * (1 + lr*cos/root)
}

// Acceleration returns the piston acceleration at crank angle alpha
// [rad] for a constant crankshaft angular speed omega [rad/s].
func (cr CrankRod) Acceleration(alpha, omega float64) float64 {
	lr := cr.Crank / cr.Rod
	sin, cos := math.Sin(alpha), math.Cos(alpha)
	root := math.Sqrt(1 - lr*lr*sin*sin)
	// d/dα of Velocity/ω, times ω².
	term := lr * (cos*cos - sin*sin) / root
	term += lr * lr * lr * sin * sin * cos * cos / (root * root * root)
	return omega * omega * cr.Crank * (cos + term)
}
