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

// Package ottosim solves a finite-time air-fuel heat-addition Otto
// cycle for reciprocating internal-combustion engines. The cycle is
// discretized over a crank-angle grid spanning one compression and
// one expansion stroke; combustion is modeled as heat addition over a
// finite crank-angle window with the chemistry supplied by package
// therm. Each angle step is solved as a polytropic process whose
// exponent is found by fixed-point iteration.
package ottosim

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"github.com/thermomodel/ottosim/engine"
	"github.com/thermomodel/ottosim/therm"
)

// DefaultExhaustPressure is the exhaust back-pressure assumed by the
// residual-gas correlation when no measured value is available [kPa].
const DefaultExhaustPressure = 101.325

// maxWorkIterations bounds the per-step polytropic fixed point.
// Physically valid inputs converge in a handful of iterations;
// hitting the cap means the step oscillates or diverges.
const maxWorkIterations = 100

// ErrNoConvergence is returned when a per-step work iteration fails
// to settle within maxWorkIterations.
var ErrNoConvergence = errors.New("ottosim: work iteration did not converge")

// SolveConfig collects everything needed to set up a cycle solution.
type SolveConfig struct {
	// Geometry is a complete engine geometry record, normally the
	// output of engine.SolveGeometry.
	Geometry map[string]float64

	Na int // step count for each of compression and expansion
	Nc int // step count for combustion

	Theta float64 // ignition angle [rad], conventionally negative
	Delta float64 // combustion duration [rad]

	Fuels []string  // fuel formulas
	Props []float64 // molar proportions, parallel to Fuels

	Phi float64 // equivalence ratio
	P0  float64 // charge pressure at intake valve close [kPa]
	T0  float64 // charge temperature at intake valve close [K]

	EV float64 // isochoric volume tolerance [m³]
	EW float64 // work convergence tolerance [kJ]

	QExt float64 // external heat addition [kJ/kg], for Phi = 0
	K    float64 // rich equilibrium constant; 0 selects the default
}

// Solve holds the state of one cycle solution. It owns the cycle
// arrays exclusively; accessors hand out copies. A Solve is not safe
// for concurrent use, but independent instances are.
type Solve struct {
	geom  map[string]float64
	cr    engine.CrankRod
	state *therm.CombustionMix

	na, nc int
	theta  float64
	delta  float64
	eV, eW float64

	// States, indexed 0..2Na+Nc with [0] the intake-valve-close
	// reference.
	alpha []float64
	y     []float64
	vol   []float64
	p     []float64
	t     []float64
	u     []float64
	cv    []float64

	// Transitions, one fewer than states.
	q []float64
	w []float64
}

// NewSolve validates cfg and builds the crank-angle grid, the
// burned-fraction schedule, the volume trace and the combustion
// mixture at the reference state.
func NewSolve(cfg SolveConfig) (*Solve, error) {
	if err := engine.Complete(cfg.Geometry); err != nil {
		return nil, err
	}
	if cfg.Na <= 0 || cfg.Nc <= 0 {
		return nil, fmt.Errorf("ottosim: step counts must be positive (Na=%d, Nc=%d)", cfg.Na, cfg.Nc)
	}
	if cfg.Delta <= 0 {
		return nil, fmt.Errorf("ottosim: combustion duration must be positive (%g rad)", cfg.Delta)
	}
	if cfg.Theta < -math.Pi || cfg.Theta+cfg.Delta > math.Pi {
		return nil, fmt.Errorf("ottosim: combustion window [%g, %g] rad exceeds [-π, π]",
			cfg.Theta, cfg.Theta+cfg.Delta)
	}
	if cfg.P0 <= 0 || cfg.T0 <= 0 {
		return nil, fmt.Errorf("ottosim: non-positive reference state (P0=%g kPa, T0=%g K)", cfg.P0, cfg.T0)
	}
	if cfg.EV <= 0 || cfg.EW <= 0 {
		return nil, fmt.Errorf("ottosim: tolerances must be positive (EV=%g m³, EW=%g kJ)", cfg.EV, cfg.EW)
	}

	cr, err := engine.NewCrankRod(cfg.Geometry)
	if err != nil {
		return nil, err
	}
	state, err := therm.NewCombustionMix(cfg.Fuels, cfg.Props, cfg.Phi,
		cfg.P0, cfg.T0, cfg.Geometry[engine.KeyTotalVol], cfg.QExt)
	if err != nil {
		return nil, err
	}
	if cfg.K > 0 {
		state.K = cfg.K
	}

	s := &Solve{
		geom:  cfg.Geometry,
		cr:    cr,
		state: state,
		na:    cfg.Na,
		nc:    cfg.Nc,
		theta: cfg.Theta,
		delta: cfg.Delta,
		eV:    cfg.EV,
		eW:    cfg.EW,
	}

	na, nc := cfg.Na, cfg.Nc
	nStates := 2*na + nc + 1
	s.alpha = make([]float64, nStates)
	for j := range s.alpha {
		switch {
		case j < na:
			s.alpha[j] = -math.Pi + float64(j)*(cfg.Theta+math.Pi)/float64(na)
		case j <= na+nc:
			s.alpha[j] = cfg.Theta + float64(j-na)*cfg.Delta/float64(nc)
		default:
			s.alpha[j] = cfg.Theta + cfg.Delta +
				float64(j-na-nc)*(math.Pi-cfg.Theta-cfg.Delta)/float64(na)
		}
	}

	s.y = make([]float64, nStates)
	for j, a := range s.alpha {
		switch {
		case a < cfg.Theta:
			s.y[j] = 0
		case a <= cfg.Theta+cfg.Delta:
			s.y[j] = 0.5 - 0.5*math.Cos(math.Pi*(a-cfg.Theta)/cfg.Delta)
		default:
			s.y[j] = 1
		}
	}

	s.vol = make([]float64, nStates)
	for j, a := range s.alpha {
		s.vol[j] = cr.Volume(a)
	}

	s.p = make([]float64, nStates)
	s.t = make([]float64, nStates)
	s.u = make([]float64, nStates)
	s.cv = make([]float64, nStates)
	s.q = make([]float64, nStates-1)
	s.w = make([]float64, nStates-1)
	return s, nil
}

// State returns the combustion mixture the cycle is solved with.
func (s *Solve) State() *therm.CombustionMix { return s.state }

// Zeta returns the residual-gas fraction for the exhaust
// back-pressure p [kPa], from an empirical correlation in the
// compression ratio. Pass DefaultExhaustPressure when no measurement
// is available.
func (s *Solve) Zeta(p float64) float64 {
	rv := s.geom[engine.KeyCompRatio]
	gr := (5.25 - 0.5*rv) * math.Exp(8.5-rv)
	pct := 17.80689929 +
		6.42331483*gr -
		(0.21709256+0.09426031*gr)*p +
		(1.02837062+0.44882466*gr)*1e-3*p*p
	return pct / 100
}

// Prim seeds the reference state and fills the heat-capacity and
// heat-release schedules for the residual-gas fraction zeta. It is
// idempotent and always recomputes from scratch.
func (s *Solve) Prim(zeta float64) error {
	s.t[0] = s.state.T0()
	s.p[0] = s.state.P0()
	s.u[0] = s.state.U0()
	for j := range s.cv {
		cv, err := s.state.HeatCapacityVAt(s.y[j], zeta)
		if err != nil {
			return err
		}
		s.cv[j] = cv
	}
	for j := range s.q {
		q, err := s.state.HeatRelease(s.y[j], s.y[j+1], zeta)
		if err != nil {
			return err
		}
		s.q[j] = q
	}
	return nil
}

// polyWork is the closed-form polytropic work integral from v0 to v1
// at initial pressure p and exponent n.
func polyWork(p, v0, v1, n float64) float64 {
	return (p / (1 - n)) * (v0 - math.Pow(v0, n)/math.Pow(v1, n-1))
}

// Iterate solves the cycle step by step for the residual-gas fraction
// zeta, filling the pressure, temperature, internal-energy and work
// arrays. Steps whose volume change is below the isochoric tolerance
// get a direct constant-volume update with exactly zero work; all
// others run the polytropic fixed-point iteration.
func (s *Solve) Iterate(zeta float64) error {
	if err := s.Prim(zeta); err != nil {
		return err
	}
	for j := range s.q {
		if math.Abs(s.vol[j+1]-s.vol[j]) < s.eV {
			s.u[j+1] = s.u[j] + s.q[j]
			s.t[j+1] = s.t[j] + s.q[j]/s.cv[j]
			nm, err := s.state.MolesAt(s.y[j+1], zeta)
			if err != nil {
				return err
			}
			s.p[j+1] = therm.PressureOf(nm, s.vol[j+1], s.t[j+1])
			s.w[j] = 0
			continue
		}

		cvm, err := s.state.CvAt(s.y[j], zeta)
		if err != nil {
			return err
		}
		n := 1 + therm.Ru/cvm
		w := polyWork(s.p[j], s.vol[j], s.vol[j+1], n)
		converged := false
		for k := 0; k < maxWorkIterations; k++ {
			s.u[j+1] = s.u[j] + s.q[j] + w
			s.t[j+1] = therm.TemperatureOf(s.cv[j+1], s.u[j+1])
			nm, err := s.state.MolesAt(s.y[j+1], zeta)
			if err != nil {
				return err
			}
			s.p[j+1] = therm.PressureOf(nm, s.vol[j+1], s.t[j+1])
			if s.p[j+1] <= 0 {
				return fmt.Errorf("ottosim: non-physical pressure %g kPa at step %d", s.p[j+1], j)
			}
			n = math.Log(s.p[j+1]/s.p[j]) / math.Log(s.vol[j]/s.vol[j+1])
			wNext := polyWork(s.p[j], s.vol[j], s.vol[j+1], n)
			if math.Abs(wNext-w) <= s.eW {
				w = wNext
				converged = true
				break
			}
			w = wNext
		}
		if !converged {
			return fmt.Errorf("%w: step %d (α=%g rad) after %d iterations",
				ErrNoConvergence, j, s.alpha[j], maxWorkIterations)
		}

		// Final update with the converged work value.
		s.u[j+1] = s.u[j] + s.q[j] + w
		s.t[j+1] = therm.TemperatureOf(s.cv[j+1], s.u[j+1])
		nm, err := s.state.MolesAt(s.y[j+1], zeta)
		if err != nil {
			return err
		}
		s.p[j+1] = therm.PressureOf(nm, s.vol[j+1], s.t[j+1])
		s.w[j] = w
	}
	return nil
}

// CycleResults is the scalar outcome of one cycle solution.
type CycleResults struct {
	Efficiency float64 `desc:"Thermal efficiency, net work over heat in" units:"fraction"`
	NetWork    float64 `desc:"Net work per cycle" units:"kJ"`
	WorkRatio  float64 `desc:"Back work ratio, work in over work out" units:"fraction"`
	WorkIn     float64 `desc:"Work absorbed by the charge" units:"kJ"`
	WorkOut    float64 `desc:"Work delivered by the charge" units:"kJ"`
	HeatIn     float64 `desc:"Heat added to the charge" units:"kJ"`
	HeatOut    float64 `desc:"Heat rejected by the charge" units:"kJ"`
	Zeta       float64 `desc:"Residual gas fraction" units:"fraction"`
}

// Vars returns the results as a name-to-value map for use in output
// expressions.
func (r CycleResults) Vars() map[string]interface{} {
	return map[string]interface{}{
		"Efficiency": r.Efficiency,
		"Wnet":       r.NetWork,
		"WorkRatio":  r.WorkRatio,
		"Win":        r.WorkIn,
		"Wout":       r.WorkOut,
		"Qin":        r.HeatIn,
		"Qout":       r.HeatOut,
		"Zeta":       r.Zeta,
	}
}

// NetWorkUnit returns the net work as a dimensioned quantity in
// Joules.
func (r CycleResults) NetWorkUnit() *unit.Unit {
	return unit.New(r.NetWork*1000, unit.Joule)
}

// Results runs the full cycle solution for the residual-gas fraction
// zeta and aggregates the per-step work and heat into efficiency, net
// work and work ratio. The solution always runs from scratch, so
// repeated calls with different zeta values are independent.
func (s *Solve) Results(zeta float64) (CycleResults, error) {
	if err := s.Iterate(zeta); err != nil {
		return CycleResults{}, err
	}
	var win, wout, qin, qout float64
	for j := range s.w {
		if s.w[j] >= 0 {
			win += s.w[j]
		} else {
			wout -= s.w[j]
		}
		if s.q[j] >= 0 {
			qin += s.q[j]
		} else {
			qout -= s.q[j]
		}
	}
	if qin == 0 {
		return CycleResults{}, errors.New("ottosim: no heat added to the cycle")
	}
	if wout == 0 {
		return CycleResults{}, errors.New("ottosim: cycle delivers no work")
	}
	wnet := wout - win
	return CycleResults{
		Efficiency: wnet / qin,
		NetWork:    wnet,
		WorkRatio:  win / wout,
		WorkIn:     win,
		WorkOut:    wout,
		HeatIn:     qin,
		HeatOut:    qout,
		Zeta:       zeta,
	}, nil
}

// ResultsDefault is Results with the residual-gas fraction from the
// default exhaust back-pressure.
func (s *Solve) ResultsDefault() (CycleResults, error) {
	return s.Results(s.Zeta(DefaultExhaustPressure))
}

func copyOf(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	return out
}

// Angles returns a copy of the crank-angle grid [rad].
func (s *Solve) Angles() []float64 { return copyOf(s.alpha) }

// BurnedFractions returns a copy of the burned-fraction schedule.
func (s *Solve) BurnedFractions() []float64 { return copyOf(s.y) }

// Volumes returns a copy of the in-cylinder volume trace [m³].
func (s *Solve) Volumes() []float64 { return copyOf(s.vol) }

// Pressures returns a copy of the pressure trace [kPa], valid after
// Iterate or Results.
func (s *Solve) Pressures() []float64 { return copyOf(s.p) }

// Temperatures returns a copy of the temperature trace [K], valid
// after Iterate or Results.
func (s *Solve) Temperatures() []float64 { return copyOf(s.t) }

// Works returns a copy of the per-transition work values [kJ], valid
// after Iterate or Results.
func (s *Solve) Works() []float64 { return copyOf(s.w) }

// Heats returns a copy of the per-transition heat values [kJ], valid
// after Prim, Iterate or Results.
func (s *Solve) Heats() []float64 { return copyOf(s.q) }
