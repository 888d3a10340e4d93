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

package joystick

// Direction is the logical value of an axis.
type Direction int

// List of Direction values. The numeric values are chosen so that the
// sign of a Direction matches the sign of the raw values it represents.
const (
	DirNegative Direction = iota - 1
	DirCentered
	DirPositive
)

func (dir Direction) String() string {
	switch dir {
	case DirNegative:
		return "negative"
	case DirPositive:
		return "positive"
	}
	return "centered"
}

// Axis is a single-dimension input on a physical device. The axis code
// is platform-defined and opaque, the core only ever compares it for
// equality.
type Axis struct {
	Code uint32
	Name string

	// logical range of raw values. Min <= Max always
	Min int32
	Max int32

	// noise and granularity information reported by the platform. purely
	// informational, except as input to the LikelyDigital() heuristic
	Fuzz       int32
	Flat       int32
	Resolution int32

	// a digital axis only ever reports discrete extreme values and is
	// classified by sign rather than by calibrated thresholds
	Digital bool

	// the last classified logical value
	Prev Direction

	// one mapping for each direction of travel, each with its own
	// calibration
	Neg Mapping
	Pos Mapping
}

// Value classifies a raw sample into a logical axis value. For a digital
// axis classification is by sign. For an analog axis the calibrated
// thresholds decide.
func (a *Axis) Value(raw int32) Direction {
	if a.Digital {
		switch {
		case raw < 0:
			return DirNegative
		case raw > 0:
			return DirPositive
		}
		return DirCentered
	}

	switch {
	case raw <= a.Neg.Calib.Threshold:
		return DirNegative
	case raw >= a.Pos.Calib.Threshold:
		return DirPositive
	}
	return DirCentered
}

// AutoCalibrate computes the default calibration for the axis from its
// logical range: a dead zone covering the middle half of the range with
// a quarter-range active zone at either extreme. This is a deliberate,
// overridable default and not a hardware-derived value.
func (a *Axis) AutoCalibrate() {
	center := a.Min + (a.Max-a.Min)/2

	a.Neg.Calib.Threshold = a.Min + (center-a.Min)/2
	a.Neg.Calib.Deadzone = a.Min
	a.Neg.Calib.Fuzz = 0

	a.Pos.Calib.Threshold = a.Max - (a.Max-center)/2
	a.Pos.Calib.Deadzone = a.Max
	a.Pos.Calib.Fuzz = 0
}

// LikelyDigital is a heuristic for whether an axis only ever reports
// discrete extreme values. An axis whose range is exactly [-1, 1] is
// definitely digital. An axis that reports no noise parameters at all is
// probably digital, but analog triggers on some controllers report this
// way too, so the Digital flag must remain overridable per device.
func (a *Axis) LikelyDigital() bool {
	if a.Min == -1 && a.Max == 1 {
		return true
	}
	return a.Fuzz == 0 && a.Flat == 0 && a.Resolution == 0
}
