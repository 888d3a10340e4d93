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
	"os"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/logger"
)

// error patterns for the vjm package.
const (
	// positioned parse diagnostic: file, line, column, message.
	ParseError = "vjm: %s:%d:%d: %s"

	// file level problems (open failure etc).
	FileError = "vjm: %v"
)

// the format version this package writes.
const (
	CurrentMajor = 2
	CurrentMinor = 0
)

// InputClass discriminates the three kinds of physical input a mapping
// can refer to.
type InputClass int

// List of InputClass values.
const (
	InputAxis InputClass = iota
	InputButton
	InputHat
)

// InputRef identifies a physical input, or one direction of it, by the
// input's display name.
type InputRef struct {
	Class InputClass
	Name  string

	// for axis refs: DirNegative or DirPositive. unused for buttons
	Dir joystick.Direction

	// for hat refs: exactly one of the four direction bits
	HatDir joystick.HatDir
}

// Entry pairs a parsed mapping with the input it applies to.
type Entry struct {
	Map joystick.Mapping
	Ref InputRef
}

// CalibrationEntry is a parsed "calibrate" directive.
type CalibrationEntry struct {
	AxisName  string
	Dir       joystick.Direction
	Threshold int32
}

// File is the parsed form of one mapping file. Create with Load() or
// Parse(). A File is exclusively owned; it must not be shared between
// concurrent loads or applies.
type File struct {
	Path string

	// declared format version
	Major int
	Minor int

	// declared target device identity, used to validate the file against
	// a live device. each field is optional
	DeviceName  string
	Vendor      uint16
	Product     uint16
	Version     uint16
	hasName     bool
	hasVendor   bool
	hasProduct  bool
	hasVersion  bool

	Entries      []Entry
	Calibrations []CalibrationEntry
}

// Load a mapping file from disk. The file handle is held only for the
// duration of the call. On any parse error the returned File is nil;
// no partially built state survives.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Apply the parsed mappings to a live device. Input names that do not
// exist on the device and a mismatched declared device identity are
// warnings in the central log, not errors.
func (fl *File) Apply(d *joystick.Device) error {
	if d == nil {
		return curated.Errorf(FileError, "cannot apply mappings to nil device")
	}

	fl.checkIdentity(d)

	for _, e := range fl.Entries {
		if !fl.applyEntry(d, e) {
			logger.Logf("vjm", "%s: device has no %s named %q", fl.Path, e.Ref.Class, e.Ref.Name)
		}
	}

	for _, c := range fl.Calibrations {
		a := findAxis(d, c.AxisName)
		if a == nil {
			logger.Logf("vjm", "%s: device has no axis named %q", fl.Path, c.AxisName)
			continue
		}
		if c.Dir == joystick.DirNegative {
			a.Neg.Calib.Threshold = c.Threshold
		} else {
			a.Pos.Calib.Threshold = c.Threshold
		}
	}

	return nil
}

func (fl *File) checkIdentity(d *joystick.Device) {
	if fl.hasName && fl.DeviceName != d.Name {
		logger.Logf("vjm", "%s: device name mismatch (%q in file, %q on device)", fl.Path, fl.DeviceName, d.Name)
	}
	if fl.hasVendor && fl.Vendor != d.Vendor {
		logger.Logf("vjm", "%s: vendor mismatch (%04x in file, %04x on device)", fl.Path, fl.Vendor, d.Vendor)
	}
	if fl.hasProduct && fl.Product != d.Product {
		logger.Logf("vjm", "%s: product mismatch (%04x in file, %04x on device)", fl.Path, fl.Product, d.Product)
	}
	if fl.hasVersion && fl.Version != d.Version {
		logger.Logf("vjm", "%s: version mismatch (%04x in file, %04x on device)", fl.Path, fl.Version, d.Version)
	}
}

func (fl *File) applyEntry(d *joystick.Device, e Entry) bool {
	switch e.Ref.Class {
	case InputAxis:
		a := findAxis(d, e.Ref.Name)
		if a == nil {
			return false
		}

		// an axis mapping replaces the action but keeps whatever
		// calibration the axis already has
		if e.Ref.Dir == joystick.DirNegative {
			calib := a.Neg.Calib
			a.Neg = e.Map
			a.Neg.Calib = calib
		} else {
			calib := a.Pos.Calib
			a.Pos = e.Map
			a.Pos.Calib = calib
		}
		return true

	case InputButton:
		for i := range d.Buttons {
			if d.Buttons[i].Name == e.Ref.Name {
				d.Buttons[i].Map = e.Map
				return true
			}
		}

	case InputHat:
		for i := range d.Hats {
			if d.Hats[i].Name != e.Ref.Name {
				continue
			}
			switch e.Ref.HatDir {
			case joystick.HatUp:
				d.Hats[i].Up = e.Map
			case joystick.HatDown:
				d.Hats[i].Down = e.Map
			case joystick.HatLeft:
				d.Hats[i].Left = e.Map
			case joystick.HatRight:
				d.Hats[i].Right = e.Map
			}
			return true
		}
	}

	return false
}

func findAxis(d *joystick.Device, name string) *joystick.Axis {
	for i := range d.Axes {
		if d.Axes[i].Name == name {
			return &d.Axes[i]
		}
	}
	return nil
}

func (c InputClass) String() string {
	switch c {
	case InputAxis:
		return "axis"
	case InputButton:
		return "button"
	case InputHat:
		return "hat"
	}
	return "input"
}
