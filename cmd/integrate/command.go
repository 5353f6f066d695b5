// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/integrate/gnuplot"
	"github.com/katalvlaran/integrate/seq"
)

var (
	errDimensions   = errors.New("integrate: dimensions must be 1 or 2")
	errIndefinite2D = errors.New("integrate: indefinite integrals are not supported in 2D")
	errWorkers      = errors.New("integrate: workers must be >= 0")
)

type integrateOpts struct {
	method     string
	dimensions int
	indefinite bool
	list       bool
	verbose    bool
	workers    int
}

func newRootCommand() *cobra.Command {
	o := integrateOpts{}

	cmd := &cobra.Command{
		Use:   "integrate [FILE|-]",
		Short: "Integrate gnuplot-style data read from a file or stdin",
		Long: `Reads a function from a gnuplot-style text file and integrates it.

Each line holds one sample separated by white space: "y", "x y" or, for
two-dimensional data, "x y z". Lines starting with '#' are comments.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(cmd.ErrOrStderr())
			if o.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if o.list {
				for _, m := range methods {
					fmt.Fprintf(cmd.OutOrStdout(), "\t'%s' : %s\n", m.name, m.about)
				}
				return nil
			}
			if o.workers < 0 {
				return fmt.Errorf("%d: %w", o.workers, errWorkers)
			}
			in, name, closeFn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			logrus.WithField("input", name).Debug("loading data")
			points, err := gnuplot.Read(in)
			if err != nil {
				return err
			}
			logrus.Debugf("loaded %d points", len(points))

			switch o.dimensions {
			case 1:
				return o.run1D(cmd.OutOrStdout(), points)
			case 2:
				return o.run2D(cmd.OutOrStdout(), points)
			}

			return fmt.Errorf("%d: %w", o.dimensions, errDimensions)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.method, "method", "m", "riemann", "integration method (prefix match; see --list)")
	flags.IntVarP(&o.dimensions, "dimensions", "d", 1, "number of dimensions (1 or 2)")
	flags.BoolVarP(&o.indefinite, "indefinite", "i", false, "print the running integral g(x_n) = ∫_{x_0}^{x_n} f")
	flags.BoolVarP(&o.list, "list", "l", false, "list available integration methods")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
	flags.IntVar(&o.workers, "workers", 1, "goroutines integrating 2D rows")

	return cmd
}

// openInput returns the data stream: the named file, or stdin for "-" or no
// argument.
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "-", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("could not open file: %w", err)
	}

	return f, args[0], func() { _ = f.Close() }, nil
}

func (o integrateOpts) run1D(out io.Writer, points []gnuplot.Point) error {
	integrate, err := newIntegrator1D(o.method)
	if err != nil {
		return err
	}
	xs, ys, err := gnuplot.Extract1D(points)
	if err != nil {
		return err
	}
	x, y := seq.Slice[float64](xs), seq.Slice[float64](ys)

	if !o.indefinite {
		sum, err := integrate(x, y, 0, -1)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g\n", sum)
		return nil
	}

	for n := 1; n < len(xs); n++ {
		sum, err := integrate(x, y, 0, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g %g\n", xs[n], sum)
	}

	return nil
}

func (o integrateOpts) run2D(out io.Writer, points []gnuplot.Point) error {
	if o.indefinite {
		return errIndefinite2D
	}
	integrate, err := newIntegrator2D(o.method, o.workers)
	if err != nil {
		return err
	}
	xs, ys, z, err := gnuplot.Extract2D(points)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"nx": len(xs), "ny": len(ys)}).Debug("grid extracted")
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("z grid (rows follow x):\n%s", z)
	}

	sum, err := integrate(seq.Slice[float64](xs), seq.Slice[float64](ys), seq.FromMatrix[float64](z))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%g\n", sum)

	return nil
}
