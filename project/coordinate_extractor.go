package project

import (
	"regexp"
	"strconv"

	"g2rapid/common/logger"
)

const numberPattern = `([-+]?(?:\d*\.\d+|\d+))`

// Matches the [[x,y,z] opening of a robtarget or a declaration frame.
var robtargetPattern = regexp.MustCompile(`\[\[` + numberPattern + `,` + numberPattern + `,` + numberPattern + `\]`)

// TraceExtractor recovers a position trace from program text.
type TraceExtractor interface {
	Extract(text string) []Position
}

// CoordinateExtractor reads positions back from text in the shape FormatMoveL,
// FormatToolData and FormatWorkobjData emit. It does not understand RAPID.
type CoordinateExtractor struct{}

var _ TraceExtractor = CoordinateExtractor{}

// Extract takes the first [[x,y,z] on each line. Lines without one are
// skipped; a match that does not parse is logged and skipped. No match at all
// gives an empty, non-nil trace.
func (CoordinateExtractor) Extract(text string) []Position {
	positions := []Position{}
	for i, line := range splitLines(text) {
		match := robtargetPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		var values [3]float64
		var err error
		for j := range values {
			values[j], err = strconv.ParseFloat(match[j+1], 64)
			if err != nil {
				break
			}
		}
		if err != nil {
			logger.Errorf("Error extracting coordinates from RAPID line %d: %q, Error: %v", i+1, line, err)
			continue
		}
		positions = append(positions, Position{X: values[0], Y: values[1], Z: values[2]})
	}
	return positions
}

func ExtractCoordinatesFromRapid(text string) []Position {
	return CoordinateExtractor{}.Extract(text)
}
