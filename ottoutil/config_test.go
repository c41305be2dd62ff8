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

package ottoutil

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/thermomodel/ottosim/engine"
)

const testConfig = `
LOverR = 3.0
Phi = 0.9
T0 = 320.0

[Engine]
r_v = 12.0
V_du = 250e-6
r_s = 1.0

[OutputVariables]
EtaPct = "Efficiency * 100"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := ReadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Na != 25 || cfg.Nc != 25 {
		t.Errorf("default step counts: got Na=%d, Nc=%d, want 25/25", cfg.Na, cfg.Nc)
	}
	if cfg.ThetaDeg != -30 || cfg.DeltaDeg != 60 {
		t.Errorf("default combustion window: got %g..%g deg", cfg.ThetaDeg, cfg.ThetaDeg+cfg.DeltaDeg)
	}
	if cfg.Phi != 1 || cfg.P0 != 100 || cfg.T0 != 300 {
		t.Errorf("default charge: phi=%g, P0=%g, T0=%g", cfg.Phi, cfg.P0, cfg.T0)
	}
}

func TestReadConfigFile(t *testing.T) {
	cfg, err := ReadConfig(writeTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Phi != 0.9 {
		t.Errorf("phi: got %g, want 0.9", cfg.Phi)
	}
	if cfg.T0 != 320 {
		t.Errorf("T0: got %g, want 320", cfg.T0)
	}
	// Values absent from the file keep their defaults.
	if cfg.P0 != 100 {
		t.Errorf("P0: got %g, want default 100", cfg.P0)
	}
	if cfg.Engine[engine.KeyCompRatio] != 12 {
		t.Errorf("engine r_v: got %g, want 12", cfg.Engine[engine.KeyCompRatio])
	}
	if got := cfg.OutputVariables["EtaPct"]; got != "Efficiency * 100" {
		t.Errorf("output variable: got %q", got)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig("/does/not/exist.toml"); err == nil {
		t.Error("missing file: got nil error")
	}
}

func TestGeometryResolution(t *testing.T) {
	cfg, err := ReadConfig(writeTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	g, err := cfg.Geometry()
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.Complete(g); err != nil {
		t.Fatal(err)
	}
	// LOverR fixes the rod length after the crank radius resolves.
	if got, want := g[engine.KeyRod], 3*g[engine.KeyCrank]; math.Abs(got-want) > 1e-12 {
		t.Errorf("rod length: got %v, want %v", got, want)
	}
}

func TestSolveConfig(t *testing.T) {
	cfg, err := ReadConfig(writeTestConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := cfg.SolveConfig()
	if err != nil {
		t.Fatal(err)
	}
	if want := -30 * math.Pi / 180; math.Abs(sc.Theta-want) > 1e-12 {
		t.Errorf("theta: got %v rad, want %v", sc.Theta, want)
	}
	if want := 60 * math.Pi / 180; math.Abs(sc.Delta-want) > 1e-12 {
		t.Errorf("delta: got %v rad, want %v", sc.Delta, want)
	}
	if sc.Phi != 0.9 {
		t.Errorf("phi: got %g, want 0.9", sc.Phi)
	}
}

func TestExhaustPressureDefault(t *testing.T) {
	cfg := defaultConfig()
	if got := cfg.exhaustPressure(); got != 101.325 {
		t.Errorf("default exhaust pressure: got %g, want 101.325", got)
	}
	cfg.ExhaustPressure = 95
	if got := cfg.exhaustPressure(); got != 95 {
		t.Errorf("configured exhaust pressure: got %g, want 95", got)
	}
}
