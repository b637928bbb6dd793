package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/graph"
)

// readEdges parses one "from to weight" edge per line. Blank lines and
// lines starting with '#' are skipped. The vertex count is one more than
// the largest id seen.
func readEdges(r io.Reader) (int, []core.Weighted[float64], error) {
	var (
		edges    []core.Weighted[float64]
		vertices int
		line     int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return 0, nil, errors.Errorf("line %d: want \"from to weight\", got %q", line, text)
		}
		from, err := parseVertex(fields[0])
		if err != nil {
			return 0, nil, errors.Wrapf(err, "line %d", line)
		}
		to, err := parseVertex(fields[1])
		if err != nil {
			return 0, nil, errors.Wrapf(err, "line %d", line)
		}
		weight, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, nil, errors.Wrapf(err, "line %d: weight", line)
		}

		edges = append(edges, core.NewWeighted(from, to, weight))
		vertices = max(vertices, from+1, to+1)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, errors.Wrap(err, "read edges")
	}

	return vertices, edges, nil
}

func parseVertex(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "vertex")
	}
	if v < 0 {
		return 0, errors.Errorf("vertex %d is negative", v)
	}

	return v, nil
}

// writeForest prints the forest edges, their total weight and the time
// taken, followed by a blank line.
func writeForest(w io.Writer, forest []core.Weighted[float64], took time.Duration) error {
	bw := bufio.NewWriter(w)
	for _, e := range forest {
		fmt.Fprintf(bw, "%d %d  %v\n", e.From(), e.To(), e.Weight())
	}
	fmt.Fprintf(bw, "Total weight: %v\n", graph.Sum(forest))
	fmt.Fprintf(bw, "Took %d ms\n\n", took.Milliseconds())

	return bw.Flush()
}

// writeEdges prints edges in the format readEdges accepts.
func writeEdges(w io.Writer, edges []core.Weighted[float64]) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %v\n", e.From(), e.To(), e.Weight())
	}

	return bw.Flush()
}
