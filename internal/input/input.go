// Package input reads sites for the command line tool.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
)

// Read newline separated sites in the form "x y". Blank lines and lines
// starting with '#' are skipped.
func ReadText(in io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading sites")
	}
	return points, nil
}

func parsePoint(fields []string) (internal.Point, error) {
	if len(fields) != 2 {
		return internal.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return internal.Pt(x, y), nil
}

// Read sites from an SVG document. This is not a full (or even correct) SVG
// reader: the centers of <circle> elements and the vertices of <polygon>
// elements become sites, in document order per element type, and transforms
// are ignored.
func ReadSVG(in io.Reader) ([]internal.Point, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []internal.Point
	for _, circle := range root.FindAll("circle") {
		point, err := parsePoint([]string{circle.Attributes["cx"], circle.Attributes["cy"]})
		if err != nil {
			return nil, errors.Wrap(err, "circle")
		}
		points = append(points, point)
	}
	for _, polygon := range root.FindAll("polygon") {
		fields := strings.FieldsFunc(polygon.Attributes["points"], func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})
		if len(fields)%2 != 0 {
			return nil, errors.Errorf("polygon has an odd number of coordinates: %d", len(fields))
		}
		for i := 0; i < len(fields); i += 2 {
			point, err := parsePoint(fields[i : i+2])
			if err != nil {
				return nil, errors.Wrap(err, "polygon")
			}
			points = append(points, point)
		}
	}
	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found in svg")
	}
	return points, nil
}
