// SPDX-License-Identifier: MIT

package gnuplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned by the extractors when no point carries the
// requested coordinates.
var ErrNoData = errors.New("gnuplot: no usable data points")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Point is one parsed line. Cols tells which coordinates are present:
// 2 for (X, Y), 3 for (X, Y, Z), 0 for none.
type Point struct {
	X, Y, Z float64
	Cols    int
}

// Read parses r until EOF.
//
// Errors: read errors from r, wrapped.
// Complexity: O(bytes).
func Read(r io.Reader) ([]Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		points []Point
		index  int // x for single-column lines
	)
	for sc.Scan() {
		line := strings.TrimLeft(sc.Text(), " \t")
		if line == "" || line[0] == '#' {
			continue
		}
		values := parseLine(line)
		if len(values) == 0 {
			continue
		}

		var p Point
		switch len(values) {
		case 1:
			p = Point{X: float64(index), Y: values[0], Cols: 2}
			index++
		case 2:
			p = Point{X: values[0], Y: values[1], Cols: 2}
		case 3:
			p = Point{X: values[0], Y: values[1], Z: values[2], Cols: 3}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return points, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// parseLine returns the leading run of numeric fields.
func parseLine(line string) []float64 {
	fields := strings.Fields(line)
	values := make([]float64, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			break
		}
		values = append(values, v)
	}

	return values
}
