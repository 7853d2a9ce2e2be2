package main

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/0x0FACED/go-tessellate/pkg/voronoi"
)

// generateRandStations scatters n stations uniformly over the field.
func generateRandStations(rng *rand.Rand, n int, width, height int) []voronoi.Vertex {
	stations := make([]voronoi.Vertex, n)
	for i := 0; i < n; i++ {
		stations[i] = voronoi.Vertex{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return stations
}

// generateFixStations lays n stations on a grid, filling rows bottom-up.
func generateFixStations(n int, width, height int) []voronoi.Vertex {
	stations := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// the last row may be partial
			if len(stations) == n {
				break
			}
			stations = append(stations, voronoi.Vertex{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}

	return stations
}

// readSites parses one site per line as "x y" or "x,y". Blank lines and
// lines starting with '#' are skipped.
func readSites(r io.Reader) ([]voronoi.Vertex, error) {
	var sites []voronoi.Vertex
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, errors.Newf("line %d: want 2 coordinates, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		sites = append(sites, voronoi.Vertex{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading sites")
	}
	return sites, nil
}

// parseBounds reads "minX,minY,maxX,maxY".
func parseBounds(s string) (voronoi.BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return voronoi.BoundingBox{}, errors.Newf("bounds %q: want minX,minY,maxX,maxY", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return voronoi.BoundingBox{}, errors.Wrapf(err, "bounds %q", s)
		}
		v[i] = f
	}
	b := voronoi.NewBoundingBox(v[0], v[1], v[2], v[3])
	return b, b.Validate()
}
