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
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thermomodel/ottosim"
)

var log = logrus.New()

// Root is the main command of the ottosim binary.
var Root = &cobra.Command{
	Use:   "ottosim",
	Short: "ottosim simulates a finite-time heat-addition Otto cycle",
	Long: `ottosim solves a finite-time air-fuel heat-addition Otto cycle
model for reciprocating internal-combustion engines, reporting thermal
efficiency, net work and back work ratio.`,
	SilenceUsage: true,
}

var (
	cfgPath         string
	engineOverrides []string
)

func init() {
	Root.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to the TOML configuration file")
	Root.PersistentFlags().StringArrayVar(&engineOverrides, "engine", nil,
		"engine geometry override as key=value, e.g. --engine r_v=12 (repeatable)")

	for _, fs := range []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()} {
		addChargeFlags(fs)
	}
	sweepCmd.Flags().String("var", "phi", "parameter to sweep: phi, p0 or t0")
	sweepCmd.Flags().Float64("from", 0.6, "sweep range start")
	sweepCmd.Flags().Float64("to", 1.4, "sweep range end")
	sweepCmd.Flags().Int("steps", 17, "number of sweep steps")

	Root.AddCommand(runCmd, sweepCmd)
}

// addChargeFlags registers the charge-parameter overrides shared by
// the run and sweep commands.
func addChargeFlags(fs *pflag.FlagSet) {
	fs.Float64("phi", 0, "equivalence ratio override")
	fs.Float64("p0", 0, "initial pressure override [kPa]")
	fs.Float64("t0", 0, "initial temperature override [K]")
	fs.Float64("k", 0, "rich equilibrium constant override")
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := ReadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if cfg.Engine == nil {
		cfg.Engine = make(map[string]float64)
	}
	for _, o := range engineOverrides {
		key, val, ok := strings.Cut(o, "=")
		if !ok {
			return nil, fmt.Errorf("ottoutil: engine override %q is not key=value", o)
		}
		f, err := cast.ToFloat64E(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("ottoutil: engine override %q: %v", o, err)
		}
		cfg.Engine[strings.TrimSpace(key)] = f
	}
	for flag, dst := range map[string]*float64{
		"phi": &cfg.Phi, "p0": &cfg.P0, "t0": &cfg.T0, "k": &cfg.K,
	} {
		if cmd.Flags().Changed(flag) {
			v, err := cmd.Flags().GetFloat64(flag)
			if err != nil {
				return nil, err
			}
			*dst = v
		}
	}
	return cfg, nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "solve one cycle and report results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sc, err := cfg.SolveConfig()
		if err != nil {
			return err
		}
		s, err := ottosim.NewSolve(sc)
		if err != nil {
			return err
		}
		zeta := s.Zeta(cfg.exhaustPressure())
		log.WithFields(logrus.Fields{
			"fuels": cfg.Fuels,
			"phi":   cfg.Phi,
			"zeta":  zeta,
		}).Info("solving cycle")

		r, err := s.Results(zeta)
		if err != nil {
			return err
		}
		o, err := ottosim.NewOutputter(cfg.OutputVariables, nil)
		if err != nil {
			return err
		}
		if err := o.Write(os.Stdout, r); err != nil {
			return err
		}
		log.WithField("W_net", r.NetWorkUnit()).Info("cycle solved")

		for path, plot := range map[string]func(string) error{
			cfg.PVPlot:   s.PVPlot,
			cfg.PVLogLog: s.PVLogLog,
			cfg.TVPlot:   s.TVPlot,
			cfg.TVLogLog: s.TVLogLog,
		} {
			if path == "" {
				continue
			}
			if err := plot(path); err != nil {
				return err
			}
			log.WithField("path", path).Info("diagram saved")
		}
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "solve the cycle across a parameter range",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sc, err := cfg.SolveConfig()
		if err != nil {
			return err
		}
		sweepVar, err := cmd.Flags().GetString("var")
		if err != nil {
			return err
		}
		from, err := cmd.Flags().GetFloat64("from")
		if err != nil {
			return err
		}
		to, err := cmd.Flags().GetFloat64("to")
		if err != nil {
			return err
		}
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"var": sweepVar, "from": from, "to": to, "steps": steps,
		}).Info("starting sweep")
		sum, err := ottosim.Sweep(sc, ottosim.SweepVar(sweepVar), from, to, steps)
		if err != nil {
			return err
		}
		for _, p := range sum.Points {
			if p.Err != nil {
				log.WithField(sweepVar, p.Value).Warn(p.Err)
				continue
			}
			fmt.Printf("%s=%g\tEfficiency=%.5f\tWnet=%.5f kJ\tWorkRatio=%.5f\n",
				sweepVar, p.Value, p.Results.Efficiency, p.Results.NetWork, p.Results.WorkRatio)
		}
		fmt.Printf("Efficiency: mean=%.5f stdev=%.5f min=%.5f max=%.5f\n",
			sum.EfficiencyMean, sum.EfficiencyStdev, sum.EfficiencyMin, sum.EfficiencyMax)
		fmt.Printf("Net work [kJ]: mean=%.5f stdev=%.5f min=%.5f max=%.5f\n",
			sum.NetWorkMean, sum.NetWorkStdev, sum.NetWorkMin, sum.NetWorkMax)
		if sum.Failed > 0 {
			log.WithField("failed", sum.Failed).Warn("some sweep steps failed")
		}
		return nil
	},
}
