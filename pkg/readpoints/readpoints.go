package readpoints

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Point is a coordinate pair typed in by the user.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LineResult is the outcome of parsing one input line.
type LineResult struct {
	Line  int
	Point Point
	Err   error
}

// ParseLine parses "x,y". Whitespace around either number is allowed; anything
// other than exactly two finite numbers is rejected.
func ParseLine(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Point{}, eris.Errorf("expected 2 comma-separated values, got %d", len(fields))
	}

	var coords [2]float64
	for i, field := range fields {
		val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Point{}, eris.Wrapf(err, "column %d", i+1)
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return Point{}, eris.Errorf("column %d: non-finite value %q", i+1, field)
		}
		coords[i] = val
	}

	return Point{X: coords[0], Y: coords[1]}, nil
}

// ParseLines parses every line of text and reports each outcome in order.
func ParseLines(text string) []LineResult {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	res := make([]LineResult, len(lines))
	for i, line := range lines {
		p, err := ParseLine(line)
		res[i] = LineResult{Line: i + 1, Point: p, Err: err}
	}
	return res
}

// Valid keeps the successfully parsed points, in input order.
func Valid(results []LineResult) []Point {
	points := make([]Point, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			points = append(points, r.Point)
		}
	}
	return points
}

// ParsePoints returns the valid points of text; malformed lines are dropped.
func ParsePoints(text string) []Point {
	return Valid(ParseLines(text))
}

// ReadLines parses every line read from r. Only read failures are errors;
// malformed lines are reported in the results.
func ReadLines(r io.Reader) ([]LineResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, eris.Wrap(err, "readpoints: read")
	}
	return ParseLines(string(data)), nil
}

// ReadFile is ReadLines over the named file.
func ReadFile(filename string) ([]LineResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "readpoints: open %s", filename)
	}
	defer f.Close()

	return ReadLines(f)
}
