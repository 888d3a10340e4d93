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

package joystick_test

import (
	"testing"

	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/test"
)

func TestDecodeAngle(t *testing.T) {
	test.Equate(t, uint8(joystick.DecodeAngle(0)), uint8(joystick.HatUp))
	test.Equate(t, uint8(joystick.DecodeAngle(4500)), uint8(joystick.HatUp|joystick.HatRight))
	test.Equate(t, uint8(joystick.DecodeAngle(9000)), uint8(joystick.HatRight))
	test.Equate(t, uint8(joystick.DecodeAngle(13500)), uint8(joystick.HatDown|joystick.HatRight))
	test.Equate(t, uint8(joystick.DecodeAngle(18000)), uint8(joystick.HatDown))
	test.Equate(t, uint8(joystick.DecodeAngle(22500)), uint8(joystick.HatDown|joystick.HatLeft))
	test.Equate(t, uint8(joystick.DecodeAngle(27000)), uint8(joystick.HatLeft))
	test.Equate(t, uint8(joystick.DecodeAngle(31500)), uint8(joystick.HatUp|joystick.HatLeft))

	// sector boundaries fall at odd multiples of 22.5 degrees
	test.Equate(t, uint8(joystick.DecodeAngle(2249)), uint8(joystick.HatUp))
	test.Equate(t, uint8(joystick.DecodeAngle(2250)), uint8(joystick.HatUp|joystick.HatRight))
	test.Equate(t, uint8(joystick.DecodeAngle(35999)), uint8(joystick.HatUp))

	// centered sentinel and out of range values
	test.Equate(t, uint8(joystick.DecodeAngle(-1)), uint8(joystick.HatCentered))
	test.Equate(t, uint8(joystick.DecodeAngle(36000)), uint8(joystick.HatCentered))
	test.Equate(t, uint8(joystick.DecodeAngle(40000)), uint8(joystick.HatCentered))
}

func mkTwoAxisHat() *joystick.Hat {
	h := &joystick.Hat{
		TwoAxis: true,
		X:       joystick.Axis{Code: 16, Min: -1, Max: 1, Digital: true},
		Y:       joystick.Axis{Code: 17, Min: -1, Max: 1, Digital: true},
	}
	return h
}

func TestTwoAxisCombination(t *testing.T) {
	// feeding X then Y gives the same result as Y then X
	h := mkTwoAxisHat()
	dir, ok := h.DecodeAxis(16, -1)
	test.ExpectSuccess(t, ok)
	test.Equate(t, uint8(dir), uint8(joystick.HatLeft))
	dir, ok = h.DecodeAxis(17, -1)
	test.ExpectSuccess(t, ok)
	test.Equate(t, uint8(dir), uint8(joystick.HatLeft|joystick.HatUp))

	h = mkTwoAxisHat()
	dir, _ = h.DecodeAxis(17, -1)
	test.Equate(t, uint8(dir), uint8(joystick.HatUp))
	dir, _ = h.DecodeAxis(16, -1)
	test.Equate(t, uint8(dir), uint8(joystick.HatLeft|joystick.HatUp))

	// centering one channel preserves the other channel's state
	dir, _ = h.DecodeAxis(17, 0)
	test.Equate(t, uint8(dir), uint8(joystick.HatLeft))

	// a sample for an unknown axis code is ignored
	_, ok = h.DecodeAxis(99, -1)
	test.ExpectFailure(t, ok)
}

func TestDecodeState(t *testing.T) {
	h := &joystick.Hat{LUT: joystick.DefaultHatLUT()}

	test.Equate(t, uint8(h.DecodeState(joystick.CompassCentered)), uint8(joystick.HatCentered))
	test.Equate(t, uint8(h.DecodeState(joystick.CompassNorth)), uint8(joystick.HatUp))
	test.Equate(t, uint8(h.DecodeState(joystick.CompassSouthWest)), uint8(joystick.HatDown|joystick.HatLeft))

	// out of range states decode to centered
	test.Equate(t, uint8(h.DecodeState(joystick.Compass(100))), uint8(joystick.HatCentered))
	test.Equate(t, uint8(h.DecodeState(joystick.Compass(-1))), uint8(joystick.HatCentered))
}
