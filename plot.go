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

package ottosim

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// diagram draws ys against xs as a single line and saves to path. The
// image format follows the file extension (.png, .svg, .pdf).
func diagram(xs, ys []float64, title, xlabel, ylabel, path string, logScale bool) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("ottosim: diagram axis lengths differ (%d and %d)", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	if logScale {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: 2}
		p.Y.Tick.Marker = plot.LogTicks{Prec: 2}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("ottosim: %v", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("ottosim: saving diagram: %v", err)
	}
	return nil
}

// PVPlot saves a pressure-volume diagram of the solved cycle, valid
// after Iterate or Results.
func (s *Solve) PVPlot(path string) error {
	return diagram(s.vol, s.p, "P-V diagram", "Volume [m³]", "Pressure [kPa]", path, false)
}

// PVLogLog is PVPlot on log-log axes.
func (s *Solve) PVLogLog(path string) error {
	return diagram(s.vol, s.p, "P-V diagram (log-log)", "Volume [m³]", "Pressure [kPa]", path, true)
}

// TVPlot saves a temperature-volume diagram of the solved cycle,
// valid after Iterate or Results.
func (s *Solve) TVPlot(path string) error {
	return diagram(s.vol, s.t, "T-V diagram", "Volume [m³]", "Temperature [K]", path, false)
}

// TVLogLog is TVPlot on log-log axes.
func (s *Solve) TVLogLog(path string) error {
	return diagram(s.vol, s.t, "T-V diagram (log-log)", "Volume [m³]", "Temperature [K]", path, true)
}
