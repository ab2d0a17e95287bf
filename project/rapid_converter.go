package project

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"g2rapid/common/logger"

	"go.uber.org/multierr"
)

// SafeStart is the first trace entry of every converter: a retract height
// below the work object, never written as an instruction.
var SafeStart = Position{X: 0, Y: 0, Z: -10}

// maxFeedSpeed keeps speeds taken from F within a 32-bit speed token.
const maxFeedSpeed = math.MaxInt32

var motionCommands = map[string]bool{
	"G0":  true,
	"G1":  true,
	"G00": true,
	"G01": true,
}

// moveState is the modal memory of the converter. X/Y/Z survive between
// GcodeToRapid calls; the feed rate is forgotten at the start of each call.
type moveState struct {
	X    float64
	Y    float64
	Z    float64
	F    float64
	HasF bool
}

type moveCommand struct {
	Params map[byte]float64
}

func (m moveCommand) get(axis byte) (float64, bool) {
	v, ok := m.Params[axis]
	return v, ok
}

// RAPIDConverter translates G-code text into MoveL lines and records the
// visited positions. One instance serves one caller at a time.
type RAPIDConverter struct {
	state     moveState
	positions []Position
}

func NewRAPIDConverter() *RAPIDConverter {
	self := &RAPIDConverter{}
	self.Reset()
	return self
}

// Reset returns the converter to its just-constructed state: axes at 0, no
// feed rate, trace holding only SafeStart.
func (self *RAPIDConverter) Reset() {
	self.state = moveState{}
	self.positions = []Position{SafeStart}
}

// Positions returns a copy of the accumulated trace, SafeStart first.
func (self *RAPIDConverter) Positions() []Position {
	return append([]Position{}, self.positions...)
}

func (self *RAPIDConverter) CurrentPosition() Position {
	return Position{X: self.state.X, Y: self.state.Y, Z: self.state.Z}
}

// GcodeToRapid converts one block of G-code. The returned text holds one MoveL
// per resolved motion line joined by newlines. Per-line failures are collected
// into the returned error without stopping the pass, so the text is usable
// even when err != nil. Only a nil settings value aborts.
func (self *RAPIDConverter) GcodeToRapid(gcodeText string, settings *AppSettings) (string, error) {
	if settings == nil {
		return "", ErrNilSettings
	}
	params := settings.Parameters()
	conversion := settings.Conversion()
	q := settings.TCPObject().Orientation.Quaternion()

	self.state.F, self.state.HasF = 0, false

	var rapidLines []string
	var errs error
	for i, line := range splitLines(gcodeText) {
		if idx := strings.Index(line, ";"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		cmd := tokens[0]
		mv := parseMoveCommand(tokens, i+1)
		self.applyModal(mv)

		if !motionCommands[cmd] {
			continue
		}

		speed := conversion.ArmSpeed
		if speed == 0 {
			var cause error
			speed, cause = self.feedSpeed()
			if cause != nil {
				err := &LineError{Line: i + 1, Text: line, Err: cause}
				logger.Errorf("Skipping motion: %v", err)
				errs = multierr.Append(errs, err)
				continue
			}
		}

		target := self.CurrentPosition()
		rapidLines = append(rapidLines, FormatMoveL(target, q, speed, conversion.Zone, params.ToolName, params.WorkobjName))
		self.positions = append(self.positions, target)
	}

	return strings.Join(rapidLines, "\n"), errs
}

// feedSpeed turns the modal feed rate into a speed value, truncated toward
// zero. It must be non-negative and fit maxFeedSpeed.
func (self *RAPIDConverter) feedSpeed() (int, error) {
	if !self.state.HasF {
		return 0, ErrMissingFeedRate
	}
	f := self.state.F
	if math.IsNaN(f) || f < 0 || f >= maxFeedSpeed+1 {
		return 0, fmt.Errorf("F%s: %w", strconv.FormatFloat(f, 'g', -1, 64), ErrInvalidFeedRate)
	}
	return int(f), nil
}

func (self *RAPIDConverter) applyModal(mv moveCommand) {
	if f, ok := mv.get('F'); ok {
		self.state.F, self.state.HasF = f, true
	}
	if x, ok := mv.get('X'); ok {
		self.state.X = x
	}
	if y, ok := mv.get('Y'); ok {
		self.state.Y = y
	}
	if z, ok := mv.get('Z'); ok {
		self.state.Z = z
	}
}

// parseMoveCommand reads every <letter><number> token after the mnemonic. A
// token whose number is not a finite decimal is logged and dropped; the rest
// of the line still counts.
func parseMoveCommand(tokens []string, lineNo int) moveCommand {
	mv := moveCommand{Params: make(map[byte]float64)}
	for _, token := range tokens[1:] {
		r, size := utf8.DecodeRuneInString(token)
		if len(token) <= size || !unicode.IsLetter(r) {
			continue
		}
		number := token[size:]
		val, err := strconv.ParseFloat(number, 64)
		if err != nil || math.IsNaN(val) || math.IsInf(val, 0) || strings.ContainsAny(number, "xXpP") {
			logger.Infof("Ignoring non-numeric value %q on line %d", token, lineNo)
			continue
		}
		if r < utf8.RuneSelf {
			mv.Params[byte(r)] = val
		}
	}
	return mv
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.ReplaceAll(text, "\r", "\n"), "\n")
}
