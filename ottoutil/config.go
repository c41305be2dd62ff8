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

// Package ottoutil holds the configuration and command-line plumbing
// for the ottosim binary.
package ottoutil

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/thermomodel/ottosim"
	"github.com/thermomodel/ottosim/engine"
)

// Config is the TOML configuration of one simulation.
type Config struct {
	// Engine is a partial geometry record, resolved by the relation
	// network before the cycle runs. Keys follow the engine package
	// parameter names (D, S, r, L, V_du, V_d, V_1, V_2, r_v, r_s, z).
	Engine map[string]float64

	// LOverR sets the connecting-rod length as a multiple of the
	// crank radius when L is not given directly. Applied after a
	// first resolution pass has determined r.
	LOverR float64

	// GeometryEps is the consistency tolerance for the geometry
	// solver.
	GeometryEps float64

	Na int // compression/expansion step count
	Nc int // combustion step count

	ThetaDeg float64 // ignition angle [degrees]
	DeltaDeg float64 // combustion duration [degrees]

	Fuels []string  // fuel formulas
	Props []float64 // molar proportions

	Phi float64 // equivalence ratio
	P0  float64 // initial pressure [kPa]
	T0  float64 // initial temperature [K]

	EV float64 // isochoric volume tolerance [m³]
	EW float64 // work convergence tolerance [kJ]

	QExt float64 // external heat addition [kJ/kg]
	K    float64 // rich equilibrium constant; 0 selects the default

	// ExhaustPressure overrides the residual-gas correlation's
	// default exhaust back-pressure [kPa].
	ExhaustPressure float64

	// OutputVariables maps output names to expressions over the
	// cycle results, e.g. EtaPct = "Efficiency * 100".
	OutputVariables map[string]string

	// Plot file paths; empty disables the respective diagram.
	PVPlot   string
	PVLogLog string
	TVPlot   string
	TVLogLog string
}

// defaults from the package example.
func defaultConfig() Config {
	return Config{
		GeometryEps: 1e-6,
		Na:          25,
		Nc:          25,
		ThetaDeg:    -30,
		DeltaDeg:    60,
		Fuels:       []string{"C8H18"},
		Props:       []float64{1},
		Phi:         1,
		P0:          100,
		T0:          300,
		EV:          1e-8,
		EW:          1e-8,
		OutputVariables: map[string]string{
			"Efficiency": "Efficiency",
			"Wnet":       "Wnet",
			"WorkRatio":  "WorkRatio",
		},
	}
}

// ReadConfig decodes the TOML file at path over the built-in
// defaults.
func ReadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("ottoutil: reading config %s: %v", path, err)
		}
	}
	return &cfg, nil
}

// Geometry resolves the config's partial engine record into a
// complete one, honoring LOverR.
func (cfg *Config) Geometry() (map[string]float64, error) {
	g, status := engine.SolveGeometry(cfg.Engine, cfg.GeometryEps)
	if status != engine.StatusConsistent {
		return nil, fmt.Errorf("ottoutil: engine geometry is %v", status)
	}
	if _, ok := g[engine.KeyRod]; !ok && cfg.LOverR > 0 {
		r, ok := g[engine.KeyCrank]
		if !ok {
			return nil, fmt.Errorf("ottoutil: LOverR given but crank radius could not be resolved")
		}
		g[engine.KeyRod] = cfg.LOverR * r
		if g, status = engine.SolveGeometry(g, cfg.GeometryEps); status != engine.StatusConsistent {
			return nil, fmt.Errorf("ottoutil: engine geometry is %v", status)
		}
	}
	if err := engine.Complete(g); err != nil {
		return nil, err
	}
	return g, nil
}

// SolveConfig resolves the geometry and assembles the cycle solver
// configuration.
func (cfg *Config) SolveConfig() (ottosim.SolveConfig, error) {
	g, err := cfg.Geometry()
	if err != nil {
		return ottosim.SolveConfig{}, err
	}
	return ottosim.SolveConfig{
		Geometry: g,
		Na:       cfg.Na,
		Nc:       cfg.Nc,
		Theta:    cfg.ThetaDeg * math.Pi / 180,
		Delta:    cfg.DeltaDeg * math.Pi / 180,
		Fuels:    cfg.Fuels,
		Props:    cfg.Props,
		Phi:      cfg.Phi,
		P0:       cfg.P0,
		T0:       cfg.T0,
		EV:       cfg.EV,
		EW:       cfg.EW,
		QExt:     cfg.QExt,
		K:        cfg.K,
	}, nil
}

// exhaustPressure returns the configured exhaust back-pressure or the
// correlation default.
func (cfg *Config) exhaustPressure() float64 {
	if cfg.ExhaustPressure > 0 {
		return cfg.ExhaustPressure
	}
	return ottosim.DefaultExhaustPressure
}
