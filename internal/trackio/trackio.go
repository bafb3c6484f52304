// Package trackio reads and writes track files: one "row col" line per
// coordinate, in drawing order. This is the format the table firmware
// consumes.
package trackio

import (
	"bufio"
	"fmt"
	"io"

	"table-tracer/pkg/grid"
)

// Write emits one "r c" line per track point.
func Write(w io.Writer, pts []grid.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%d %d\n", p.R, p.C); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses a track file written by Write.
func Read(r io.Reader) ([]grid.Point, error) {
	var pts []grid.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			continue
		}
		var p grid.Point
		if _, err := fmt.Sscanf(text, "%d %d", &p.R, &p.C); err != nil {
			return nil, fmt.Errorf("trackio: line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}
