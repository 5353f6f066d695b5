// SPDX-License-Identifier: MIT

package rule_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// ExampleTrapezoid_Integrate integrates 2x+3 over [2,5]. The trapezoid rule
// is exact on linear functions, so two subintervals suffice.
func ExampleTrapezoid_Integrate() {
	trap := rule.NewTrapezoid[float64]()
	area, err := trap.Integrate(func(x float64) float64 { return 2*x + 3 }, 2, 5, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.1f\n", area)
	// Output: 30.0
}

// ExampleSimpson_Discrete integrates non-uniform samples of x². An even
// sample count leaves a trailing interval, closed by a quadratic fit.
func ExampleSimpson_Discrete() {
	x := seq.Slice[float64]{0, 0.5, 2, 3}
	y := seq.Slice[float64]{0, 0.25, 4, 9}

	area, err := rule.NewSimpson[float64]().Discrete(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", area)
	// Output: 9.0000
}

// ExampleCumulative tabulates the running integral of sin on [0, π].
func ExampleCumulative() {
	x := seq.Linspace(0.0, math.Pi, 4)
	y := seq.NewLazy(func(i int) float64 { return math.Sin(x.At(i)) }, x.Len)

	table, err := rule.Cumulative[float64](rule.NewTrapezoid[float64](), x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, v := range table {
		fmt.Printf("%.3f ", v)
	}
	fmt.Println()
	// Output: 0.278 0.948 1.618 1.896
}
