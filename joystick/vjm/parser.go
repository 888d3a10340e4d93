// This file is part of Joyport.
//
// Joyport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Joyport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Joyport.  If not, see <https://www.gnu.org/licenses/>.

package vjm

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/logger"
	"github.com/merrilees/joyport/ports"
)

// parser is the state of one load operation. It owns its line buffer
// exclusively for the duration of the load; there are no package level
// variables involved anywhere.
type parser struct {
	file *File

	// base name of the file, for diagnostics
	name string

	// the current line and a cursor through it
	line    string
	lineNum int
	pos     int

	// 1-based column of the most recently read token
	tokCol int
}

// Parse a mapping file from the reader. The name argument is used for
// the Path field of the File and, reduced to its base name, for
// diagnostics.
func Parse(r io.Reader, name string) (*File, error) {
	p := &parser{
		file: &File{Path: name},
		name: filepath.Base(name),
	}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			p.lineNum++
			p.line = strings.TrimRight(line, " \t\r\n")
			p.pos = 0
			if perr := p.directive(); perr != nil {
				return nil, perr
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, curated.Errorf(FileError, err)
		}
	}

	return p.file, nil
}

// errorAt creates a positioned parse error at the most recent token.
func (p *parser) errorAt(msg string, args ...interface{}) error {
	return curated.Errorf(ParseError, p.name, p.lineNum, p.tokCol, fmt.Sprintf(msg, args...))
}

// warnAt logs a positioned parse warning at the most recent token.
func (p *parser) warnAt(msg string, args ...interface{}) {
	logger.Logf("vjm", "%s:%d:%d: %s", p.name, p.lineNum, p.tokCol, fmt.Sprintf(msg, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.line) && (p.line[p.pos] == ' ' || p.line[p.pos] == '\t') {
		p.pos++
	}
}

// more returns true if anything other than a comment remains on the
// line.
func (p *parser) more() bool {
	p.skipSpace()
	return p.pos < len(p.line) && p.line[p.pos] != '#'
}

// word returns the next whitespace-delimited token.
func (p *parser) word() (string, error) {
	if !p.more() {
		p.tokCol = p.pos + 1
		return "", p.errorAt("unexpected end of line")
	}

	p.tokCol = p.pos + 1
	start := p.pos
	for p.pos < len(p.line) && p.line[p.pos] != ' ' && p.line[p.pos] != '\t' {
		p.pos++
	}
	return p.line[start:p.pos], nil
}

// quoted returns the content of a double-quoted string. Backslash is a
// generic escape: the following character is taken literally, including
// another backslash or quote.
func (p *parser) quoted() (string, error) {
	if !p.more() {
		p.tokCol = p.pos + 1
		return "", p.errorAt("unexpected end of line")
	}

	p.tokCol = p.pos + 1
	if p.line[p.pos] != '"' {
		return "", p.errorAt("expected quoted string")
	}
	p.pos++

	s := strings.Builder{}
	for p.pos < len(p.line) {
		c := p.line[p.pos]
		p.pos++

		switch c {
		case '"':
			return s.String(), nil
		case '\\':
			if p.pos >= len(p.line) {
				return "", p.errorAt("unterminated string")
			}
			s.WriteByte(p.line[p.pos])
			p.pos++
		default:
			s.WriteByte(c)
		}
	}

	return "", p.errorAt("unterminated string")
}

// nameOrQuoted accepts either a bare identifier or a quoted string.
func (p *parser) nameOrQuoted() (string, error) {
	if !p.more() {
		p.tokCol = p.pos + 1
		return "", p.errorAt("unexpected end of line")
	}
	if p.line[p.pos] == '"' {
		return p.quoted()
	}
	return p.word()
}

// integer returns the next token parsed as an integer and checked
// against the inclusive range. All the numeric literal dialects are
// accepted: decimal, hexadecimal (0x or $ prefix) and binary (0b or %
// prefix), optionally signed.
func (p *parser) integer(min, max int64) (int64, error) {
	tok, err := p.word()
	if err != nil {
		return 0, err
	}

	v, perr := parseInt(tok)
	if perr != nil {
		return 0, p.errorAt("malformed integer %q", tok)
	}

	if v < min || v > max {
		return 0, p.errorAt("integer %s out of range [%d, %d]", tok, min, max)
	}

	return v, nil
}

func parseInt(s string) (int64, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		base = 16
		s = s[2:]
	case strings.HasPrefix(s, "$"):
		base = 16
		s = s[1:]
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		base = 2
		s = s[2:]
	case strings.HasPrefix(s, "%"):
		base = 2
		s = s[1:]
	}

	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// endOfLine checks that nothing but whitespace or a comment follows the
// directive.
func (p *parser) endOfLine() error {
	if p.more() {
		p.tokCol = p.pos + 1
		return p.errorAt("unexpected text after directive")
	}
	return nil
}

// directive parses one line.
func (p *parser) directive() error {
	if !p.more() {
		return nil
	}

	keyword, err := p.word()
	if err != nil {
		return err
	}

	switch keyword {
	case "vjm-version":
		if err := p.version(); err != nil {
			return err
		}

	case "device-name":
		s, err := p.quoted()
		if err != nil {
			return err
		}
		p.file.DeviceName = s
		p.file.hasName = true

	case "device-vendor":
		v, err := p.integer(0, 0xffff)
		if err != nil {
			return err
		}
		p.file.Vendor = uint16(v)
		p.file.hasVendor = true

	case "device-product":
		v, err := p.integer(0, 0xffff)
		if err != nil {
			return err
		}
		p.file.Product = uint16(v)
		p.file.hasProduct = true

	case "device-version":
		v, err := p.integer(0, 0xffff)
		if err != nil {
			return err
		}
		p.file.Version = uint16(v)
		p.file.hasVersion = true

	case "map":
		if err := p.mapping(); err != nil {
			return err
		}

	case "calibrate":
		if err := p.calibrate(); err != nil {
			return err
		}

	default:
		return p.errorAt("unknown directive %q", keyword)
	}

	return p.endOfLine()
}

// version parses the INT.INT argument of the vjm-version directive. Any
// major.minor that parses is accepted; there is no compatibility policy
// beyond that.
func (p *parser) version() error {
	tok, err := p.word()
	if err != nil {
		return err
	}

	parts := strings.SplitN(tok, ".", 2)
	if len(parts) != 2 {
		return p.errorAt("malformed version %q", tok)
	}

	major, merr := strconv.Atoi(parts[0])
	minor, nerr := strconv.Atoi(parts[1])
	if merr != nil || nerr != nil || major < 0 || minor < 0 {
		return p.errorAt("malformed version %q", tok)
	}

	p.file.Major = major
	p.file.Minor = minor
	return nil
}

func (p *parser) mapping() error {
	kind, err := p.word()
	if err != nil {
		return err
	}

	var m joystick.Mapping

	switch kind {
	case "pin":
		pin, err := p.integer(0, 0xff)
		if err != nil {
			return err
		}
		m = joystick.PinMapping(int(pin))

	case "key":
		row, err := p.integer(0, 0xff)
		if err != nil {
			return err
		}
		col, err := p.integer(0, 0xff)
		if err != nil {
			return err
		}
		mod, err := p.integer(0, 0xff)
		if err != nil {
			return err
		}
		m = joystick.KeyMapping(uint8(row), uint8(col), ports.KeyMod(mod))

	case "action":
		name, err := p.nameOrQuoted()
		if err != nil {
			return err
		}
		if name == "activate" {
			m = joystick.Mapping{Action: joystick.ActionUIActivate}
		} else if id, ok := ports.UIActionFromName(name); ok {
			m = joystick.Mapping{Action: joystick.ActionUI, UI: id}
		} else {
			// a recognised directive naming an action this build does
			// not know. warn and skip the line
			p.warnAt("unknown action %q ignored", name)
			p.pos = len(p.line)
			return nil
		}

	case "pot":
		// recognised but not yet actionable
		p.warnAt("pot mappings are not supported and have been ignored")
		p.pos = len(p.line)
		return nil

	default:
		return p.errorAt("unknown mapping type %q", kind)
	}

	ref, err := p.inputRef()
	if err != nil {
		return err
	}

	p.file.Entries = append(p.file.Entries, Entry{Map: m, Ref: ref})
	return nil
}

func (p *parser) inputRef() (InputRef, error) {
	class, err := p.word()
	if err != nil {
		return InputRef{}, err
	}

	switch class {
	case "axis", "button", "hat":
	default:
		return InputRef{}, p.errorAt("unknown input class %q", class)
	}

	name, err := p.quoted()
	if err != nil {
		return InputRef{}, err
	}

	switch class {
	case "axis":
		dir, err := p.axisDirection()
		if err != nil {
			return InputRef{}, err
		}
		return InputRef{Class: InputAxis, Name: name, Dir: dir}, nil

	case "hat":
		dir, err := p.hatDirection()
		if err != nil {
			return InputRef{}, err
		}
		return InputRef{Class: InputHat, Name: name, HatDir: dir}, nil
	}

	return InputRef{Class: InputButton, Name: name}, nil
}

func (p *parser) axisDirection() (joystick.Direction, error) {
	tok, err := p.word()
	if err != nil {
		return joystick.DirCentered, err
	}

	switch tok {
	case "negative":
		return joystick.DirNegative, nil
	case "positive":
		return joystick.DirPositive, nil
	}

	return joystick.DirCentered, p.errorAt("unknown axis direction %q", tok)
}

func (p *parser) hatDirection() (joystick.HatDir, error) {
	tok, err := p.word()
	if err != nil {
		return joystick.HatCentered, err
	}

	switch tok {
	case "up", "north":
		return joystick.HatUp, nil
	case "down", "south":
		return joystick.HatDown, nil
	case "left", "west":
		return joystick.HatLeft, nil
	case "right", "east":
		return joystick.HatRight, nil
	case "northeast", "southeast", "southwest", "northwest":
		return joystick.HatCentered, p.errorAt("diagonal direction %q cannot be mapped", tok)
	}

	return joystick.HatCentered, p.errorAt("unknown hat direction %q", tok)
}

func (p *parser) calibrate() error {
	class, err := p.word()
	if err != nil {
		return err
	}
	if class != "axis" {
		return p.errorAt("calibrate expects an axis, not %q", class)
	}

	name, err := p.quoted()
	if err != nil {
		return err
	}

	dir, err := p.axisDirection()
	if err != nil {
		return err
	}

	keyword, err := p.word()
	if err != nil {
		return err
	}
	if keyword != "threshold" {
		return p.errorAt("unknown calibration parameter %q", keyword)
	}

	v, err := p.integer(-0x80000000, 0x7fffffff)
	if err != nil {
		return err
	}

	p.file.Calibrations = append(p.file.Calibrations, CalibrationEntry{
		AxisName:  name,
		Dir:       dir,
		Threshold: int32(v),
	})
	return nil
}
