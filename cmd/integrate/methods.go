// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/integrate/gauss"
	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/rule2d"
	"github.com/katalvlaran/integrate/seq"
)

var (
	errUnknownMethod = errors.New("integrate: unrecognized integration method")
	errUnsupported2D = errors.New("integrate: method not available in 2D")
)

// method names with their --list descriptions, in matching priority.
var methods = []struct {
	name, about string
}{
	{"riemann", "simple riemann sum"},
	{"trapezoid", "trapezoid rule"},
	{"simpson", "simpson's rule (quadratic fit per sample triple)"},
	{"gauss-legendre", "gauss-legendre quadrature of a natural cubic spline (1D only)"},
}

// integrator1D integrates samples between logical indices ai and bi.
type integrator1D func(x, y seq.Sequence[float64], ai, bi int) (float64, error)

// integrator2D integrates a grid sampled at (x_i, y_j).
type integrator2D func(x, y seq.Sequence[float64], f seq.Grid[float64]) (float64, error)

// matchMethod resolves a possibly abbreviated method name: the first method
// that starts with prefix wins.
func matchMethod(prefix string) (string, error) {
	for _, m := range methods {
		if strings.HasPrefix(m.name, prefix) {
			return m.name, nil
		}
	}

	return "", fmt.Errorf("%q: %w", prefix, errUnknownMethod)
}

func newIntegrator1D(prefix string) (integrator1D, error) {
	name, err := matchMethod(prefix)
	if err != nil {
		return nil, err
	}
	switch name {
	case "riemann":
		return rule.NewRiemann[float64]().DiscreteRange, nil
	case "trapezoid":
		return rule.NewTrapezoid[float64]().DiscreteRange, nil
	case "simpson":
		return rule.NewSimpson[float64]().DiscreteRange, nil
	}

	return gauss.Interpolated[float64], nil
}

func newIntegrator2D(prefix string, workers int) (integrator2D, error) {
	name, err := matchMethod(prefix)
	if err != nil {
		return nil, err
	}
	opt := rule2d.WithWorkers(workers)
	switch name {
	case "riemann":
		return rule2d.NewRiemann[float64](opt).Discrete, nil
	case "trapezoid":
		return rule2d.NewTrapezoid[float64](opt).Discrete, nil
	case "simpson":
		return rule2d.NewSimpson[float64](opt).Discrete, nil
	}

	return nil, fmt.Errorf("%q: %w", name, errUnsupported2D)
}
