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
	"io"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/Knetic/govaluate"
)

// Outputter evaluates user-defined output variables over the scalar
// cycle results. Each output variable is an expression over the
// built-in result names (Efficiency, Wnet, WorkRatio, Win, Wout, Qin,
// Qout, Zeta) and the built-in functions.
type Outputter struct {
	outputVariables map[string]string
	outputFunctions map[string]govaluate.ExpressionFunction
	expressions     map[string]*govaluate.EvaluableExpression
}

// NewOutputter compiles the given name-to-expression map and adds a
// set of default functions:
//
// 'exp(x)' applies the exponential function e^x.
//
// 'abs(x)' takes the absolute value of x.
//
// 'min(x, y)' and 'max(x, y)' select between two values.
func NewOutputter(outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	defaultOutputFuncs := map[string]govaluate.ExpressionFunction{
		"exp": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("ottosim: got %d arguments for function 'exp', but needs 1", len(arg))
			}
			return math.Exp(arg[0].(float64)), nil
		},
		"abs": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("ottosim: got %d arguments for function 'abs', but needs 1", len(arg))
			}
			return math.Abs(arg[0].(float64)), nil
		},
		"min": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 2 {
				return nil, fmt.Errorf("ottosim: got %d arguments for function 'min', but needs 2", len(arg))
			}
			return math.Min(arg[0].(float64), arg[1].(float64)), nil
		},
		"max": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 2 {
				return nil, fmt.Errorf("ottosim: got %d arguments for function 'max', but needs 2", len(arg))
			}
			return math.Max(arg[0].(float64), arg[1].(float64)), nil
		},
	}
	for key, val := range outputFunctions {
		defaultOutputFuncs[key] = val
	}

	o := &Outputter{
		outputVariables: outputVariables,
		outputFunctions: defaultOutputFuncs,
		expressions:     make(map[string]*govaluate.EvaluableExpression, len(outputVariables)),
	}

	valid := CycleResults{}.Vars()
	for key, val := range outputVariables {
		expression, err := govaluate.NewEvaluableExpressionWithFunctions(val, o.outputFunctions)
		if err != nil {
			return nil, fmt.Errorf("ottosim: output variable %q: %v", key, err)
		}
		for _, v := range expression.Vars() {
			if _, ok := valid[v]; !ok {
				return nil, fmt.Errorf("ottosim: output variable %q: undefined variable name %q (valid names: %v)",
					key, v, sortedNames(valid))
			}
		}
		o.expressions[key] = expression
	}
	return o, nil
}

func sortedNames(m map[string]interface{}) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Eval evaluates every output variable against the given results,
// returning a name-to-value map.
func (o *Outputter) Eval(r CycleResults) (map[string]float64, error) {
	vars := r.Vars()
	out := make(map[string]float64, len(o.expressions))
	for key, expression := range o.expressions {
		v, err := expression.Evaluate(vars)
		if err != nil {
			return nil, fmt.Errorf("ottosim: output variable %q: %v", key, err)
		}
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("ottosim: output variable %q: expression result %v is not a number", key, v)
		}
		out[key] = f
	}
	return out, nil
}

// Write evaluates the output variables against r and writes them as
// an aligned name/value table, sorted by name.
func (o *Outputter) Write(w io.Writer, r CycleResults) error {
	vals, err := o.Eval(r)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(vals))
	for n := range vals {
		names = append(names, n)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t%g\n", n, vals[n])
	}
	return tw.Flush()
}
