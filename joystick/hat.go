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

import "strings"

// HatDir is a bitmask of the four hat directions.
type HatDir uint8

// List of HatDir bits. More than one bit can be set at once, for the
// diagonals.
const (
	HatCentered HatDir = 0x00
	HatUp       HatDir = 0x01
	HatDown     HatDir = 0x02
	HatLeft     HatDir = 0x04
	HatRight    HatDir = 0x08
)

func (dir HatDir) String() string {
	if dir == HatCentered {
		return "centered"
	}

	s := []string{}
	if dir&HatUp == HatUp {
		s = append(s, "up")
	}
	if dir&HatDown == HatDown {
		s = append(s, "down")
	}
	if dir&HatLeft == HatLeft {
		s = append(s, "left")
	}
	if dir&HatRight == HatRight {
		s = append(s, "right")
	}
	return strings.Join(s, "+")
}

// Compass indexes the nine states a hat can be in when the platform
// reports it as one compound value.
type Compass int

// List of Compass values.
const (
	CompassCentered Compass = iota
	CompassNorth
	CompassNorthEast
	CompassEast
	CompassSouthEast
	CompassSouth
	CompassSouthWest
	CompassWest
	CompassNorthWest
	NumCompassStates
)

// DefaultHatLUT is the direction lookup table used by drivers whose
// compound hat states follow the compass ordering directly.
func DefaultHatLUT() [NumCompassStates]HatDir {
	return [NumCompassStates]HatDir{
		CompassCentered:  HatCentered,
		CompassNorth:     HatUp,
		CompassNorthEast: HatUp | HatRight,
		CompassEast:      HatRight,
		CompassSouthEast: HatDown | HatRight,
		CompassSouth:     HatDown,
		CompassSouthWest: HatDown | HatLeft,
		CompassWest:      HatLeft,
		CompassNorthWest: HatUp | HatLeft,
	}
}

// Hat is a discrete directional input on a physical device. Platforms
// report hats in one of two ways and the Hat type covers both: as a
// single compound value translated through a lookup table; or as a pair
// of absolute axes, in which case the TwoAxis field is set and the
// embedded X and Y records describe the two channels.
type Hat struct {
	Code uint32
	Name string

	// compound form
	LUT [NumCompassStates]HatDir

	// two-axis form
	TwoAxis bool
	X       Axis
	Y       Axis

	// one mapping per direction
	Up    Mapping
	Down  Mapping
	Left  Mapping
	Right Mapping

	// the last decoded direction bitmask
	Prev HatDir

	// the remembered contribution of each channel of a two-axis hat.
	// either channel can update the compound direction without losing
	// the other channel's last known state
	xdir HatDir
	ydir HatDir
}

// DecodeState translates a compound hat state through the lookup table.
// An out of range state decodes to centered.
func (h *Hat) DecodeState(state Compass) HatDir {
	if state < 0 || state >= NumCompassStates {
		return HatCentered
	}
	return h.LUT[state]
}

// DecodeAxis folds a raw sample from one channel of a two-axis hat into
// the compound direction. The boolean return value is false if the axis
// code matches neither channel, in which case the sample is ignored.
func (h *Hat) DecodeAxis(code uint32, raw int32) (HatDir, bool) {
	switch code {
	case h.X.Code:
		switch h.X.Value(raw) {
		case DirNegative:
			h.xdir = HatLeft
		case DirPositive:
			h.xdir = HatRight
		default:
			h.xdir = HatCentered
		}

	case h.Y.Code:
		switch h.Y.Value(raw) {
		case DirNegative:
			h.ydir = HatUp
		case DirPositive:
			h.ydir = HatDown
		default:
			h.ydir = HatCentered
		}

	default:
		return HatCentered, false
	}

	return h.xdir | h.ydir, true
}

// hundredths of a degree in a full circle and in one hat sector.
const (
	fullCircle = 36000
	hatSector  = 4500
)

// DecodeAngle translates a hat angle, expressed in hundredths of a
// degree clockwise from north, into a direction bitmask. The circle is
// divided into eight sectors centered on the eight compass points, so
// the sector boundaries fall at odd multiples of 22.5 degrees. A
// negative angle is the platform's "centered" sentinel and any other
// out of range value also decodes to centered.
func DecodeAngle(angle int32) HatDir {
	if angle < 0 || angle >= fullCircle {
		return HatCentered
	}

	switch ((angle + hatSector/2) / hatSector) % 8 {
	case 0:
		return HatUp
	case 1:
		return HatUp | HatRight
	case 2:
		return HatRight
	case 3:
		return HatDown | HatRight
	case 4:
		return HatDown
	case 5:
		return HatDown | HatLeft
	case 6:
		return HatLeft
	case 7:
		return HatUp | HatLeft
	}

	return HatCentered
}
