// SPDX-License-Identifier: MIT

// Command integrate reads gnuplot-style data and integrates it.
//
//	integrate [flags] [FILE|-]
//
// One-dimensional data (y, or x y per line) is integrated over all samples,
// or cumulatively with --indefinite. Three-column data (x y z) is integrated
// over the (x, y) grid with --dimensions=2.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("integrate failed")
		os.Exit(1)
	}
}
