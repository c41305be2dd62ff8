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
	"runtime"
	"sync"

	"github.com/GaryBoone/GoStats/stats"
)

// SweepVar selects which configuration parameter a sweep varies.
type SweepVar string

const (
	SweepPhi SweepVar = "phi" // equivalence ratio
	SweepP0  SweepVar = "p0"  // initial pressure
	SweepT0  SweepVar = "t0"  // initial temperature
)

// SweepPoint is the outcome of one sweep step.
type SweepPoint struct {
	Value   float64 // the swept parameter value
	Results CycleResults
	Err     error
}

// SweepSummary aggregates sweep outcomes. Failed points are excluded
// from the statistics.
type SweepSummary struct {
	Points []SweepPoint

	EfficiencyMean  float64
	EfficiencyStdev float64
	EfficiencyMin   float64
	EfficiencyMax   float64

	NetWorkMean  float64
	NetWorkStdev float64
	NetWorkMin   float64
	NetWorkMax   float64

	Failed int
}

// Sweep solves the cycle at steps evenly spaced values of v in
// [from, to], each with its own Solve instance. Instances are
// independent, so they run on a bounded worker pool; the per-step
// iteration inside each instance stays sequential. A step that fails
// is recorded in its SweepPoint and excluded from the statistics.
func Sweep(cfg SolveConfig, v SweepVar, from, to float64, steps int) (*SweepSummary, error) {
	if steps < 2 {
		return nil, fmt.Errorf("ottosim: sweep needs at least 2 steps, got %d", steps)
	}
	switch v {
	case SweepPhi, SweepP0, SweepT0:
	default:
		return nil, fmt.Errorf("ottosim: unknown sweep variable %q", v)
	}

	points := make([]SweepPoint, steps)
	jobs := make(chan int)
	var wg sync.WaitGroup
	nWorkers := runtime.GOMAXPROCS(-1)
	if nWorkers > steps {
		nWorkers = steps
	}
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				val := from + float64(i)*(to-from)/float64(steps-1)
				c := cfg
				switch v {
				case SweepPhi:
					c.Phi = val
				case SweepP0:
					c.P0 = val
				case SweepT0:
					c.T0 = val
				}
				points[i] = SweepPoint{Value: val}
				s, err := NewSolve(c)
				if err != nil {
					points[i].Err = err
					continue
				}
				r, err := s.ResultsDefault()
				if err != nil {
					points[i].Err = err
					continue
				}
				points[i].Results = r
			}
		}()
	}
	for i := 0; i < steps; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sum := &SweepSummary{Points: points}
	var eta, wnet []float64
	for _, p := range points {
		if p.Err != nil {
			sum.Failed++
			continue
		}
		eta = append(eta, p.Results.Efficiency)
		wnet = append(wnet, p.Results.NetWork)
	}
	if len(eta) == 0 {
		return sum, fmt.Errorf("ottosim: all %d sweep steps failed, first error: %v",
			steps, firstErr(points))
	}
	sum.EfficiencyMean = stats.StatsMean(eta)
	sum.EfficiencyMin = stats.StatsMin(eta)
	sum.EfficiencyMax = stats.StatsMax(eta)
	sum.NetWorkMean = stats.StatsMean(wnet)
	sum.NetWorkMin = stats.StatsMin(wnet)
	sum.NetWorkMax = stats.StatsMax(wnet)
	if len(eta) > 1 {
		sum.EfficiencyStdev = stats.StatsSampleStandardDeviation(eta)
		sum.NetWorkStdev = stats.StatsSampleStandardDeviation(wnet)
	}
	return sum, nil
}

func firstErr(points []SweepPoint) error {
	for _, p := range points {
		if p.Err != nil {
			return p.Err
		}
	}
	return nil
}
