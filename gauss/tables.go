// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

// Orders lists the supported rule orders in ascending order.
var Orders = [...]int{8, 16, 32, 64}

// Table holds the nodes and weights of one rule on the reference interval
// [-1, 1]. Tables are shared; callers must not modify X or W.
type Table struct {
	Order int
	X     []float64 // nodes, symmetric about 0
	W     []float64 // weights, Σ W = 2
}

type lazyTable struct {
	once sync.Once
	t    Table
}

var tables [len(Orders)]lazyTable

// Lookup returns the table for order, building it on first use.
//
// Errors: ErrUnsupportedOrder.
func Lookup(order int) (Table, error) {
	for i, o := range Orders {
		if o == order {
			lt := &tables[i]
			lt.once.Do(func() { lt.t = buildTable(order) })
			return lt.t, nil
		}
	}

	return Table{}, fmt.Errorf("Lookup(%d): %w", order, ErrUnsupportedOrder)
}

// buildTable computes the Legendre nodes and weights on [-1, 1].
func buildTable(order int) Table {
	t := Table{
		Order: order,
		X:     make([]float64, order),
		W:     make([]float64, order),
	}
	quad.Legendre{}.FixedLocations(t.X, t.W, -1, 1)

	return t
}

// OrderFor picks the smallest supported order not below points, capped at
// the largest table.
//
//	points ≤ 8 → 8, ≤ 16 → 16, ≤ 32 → 32, otherwise 64.
func OrderFor(points int) int {
	for _, o := range Orders {
		if points <= o {
			return o
		}
	}

	return Orders[len(Orders)-1]
}
