// SPDX-License-Identifier: MIT

package gauss_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/integrate/gauss"
)

// ExampleLegendre_Integrate integrates the exponential density e^{−x} over
// [0, 10] with a 16-point rule.
func ExampleLegendre_Integrate() {
	g, err := gauss.New[float64](16)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	mass := g.Integrate(func(x float64) float64 { return math.Exp(-x) }, 0, 10)
	fmt.Printf("%.6f\n", mass)
	// Output: 0.999955
}

// ExampleLegendre2D_Integrate integrates sin(x)·sin(y) over [0, π/2]².
func ExampleLegendre2D_Integrate() {
	g, err := gauss.New2D[float64](16, gauss.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	v := g.Integrate(func(x, y float64) float64 { return math.Sin(x) * math.Sin(y) }, 0, math.Pi/2, 0, math.Pi/2)
	fmt.Printf("%.8f\n", v)
	// Output: 1.00000000
}
