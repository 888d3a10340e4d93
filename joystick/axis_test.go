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

func TestAutoCalibrate(t *testing.T) {
	a := joystick.Axis{Min: -32768, Max: 32767}
	a.AutoCalibrate()

	// thresholds at the quarter points of the range. the range is not
	// symmetric around zero so the negative threshold lands one below
	// the "obvious" value
	test.Equate(t, a.Neg.Calib.Threshold, -16385)
	test.Equate(t, a.Pos.Calib.Threshold, 16383)

	// deadzone endpoints pinned to the axis extremes
	test.Equate(t, a.Neg.Calib.Deadzone, -32768)
	test.Equate(t, a.Pos.Calib.Deadzone, 32767)
	test.Equate(t, a.Neg.Calib.Fuzz, 0)
	test.Equate(t, a.Pos.Calib.Fuzz, 0)
}

func TestAnalogValue(t *testing.T) {
	a := joystick.Axis{Min: -32768, Max: 32767}
	a.AutoCalibrate()

	test.Equate(t, a.Value(-32768) == joystick.DirNegative, true)
	test.Equate(t, a.Value(-16385) == joystick.DirNegative, true)
	test.Equate(t, a.Value(-16384) == joystick.DirCentered, true)
	test.Equate(t, a.Value(0) == joystick.DirCentered, true)
	test.Equate(t, a.Value(16382) == joystick.DirCentered, true)
	test.Equate(t, a.Value(16383) == joystick.DirPositive, true)
	test.Equate(t, a.Value(32767) == joystick.DirPositive, true)
}

func TestDigitalValue(t *testing.T) {
	a := joystick.Axis{Min: -1, Max: 1, Digital: true}

	test.Equate(t, a.Value(-1) == joystick.DirNegative, true)
	test.Equate(t, a.Value(0) == joystick.DirCentered, true)
	test.Equate(t, a.Value(1) == joystick.DirPositive, true)
}

// classification is monotonic: walking the raw range from minimum to
// maximum never moves from positive back to negative, or from either
// extreme back through the other, without passing through centered.
func TestValueMonotonic(t *testing.T) {
	a := joystick.Axis{Min: -1000, Max: 1000}
	a.AutoCalibrate()

	prev := joystick.DirNegative
	for raw := int32(-1000); raw <= 1000; raw++ {
		v := a.Value(raw)
		if v < prev {
			t.Fatalf("classification not monotonic at %d (%v -> %v)", raw, prev, v)
		}
		prev = v
	}
	test.Equate(t, prev == joystick.DirPositive, true)
}

func TestLikelyDigital(t *testing.T) {
	// range [-1, 1] is definitely digital
	a := joystick.Axis{Min: -1, Max: 1, Fuzz: 16}
	test.ExpectSuccess(t, a.LikelyDigital())

	// no noise parameters is probably digital
	a = joystick.Axis{Min: -32768, Max: 32767}
	test.ExpectSuccess(t, a.LikelyDigital())

	// an axis reporting noise parameters is analog
	a = joystick.Axis{Min: -32768, Max: 32767, Fuzz: 16, Flat: 128}
	test.ExpectFailure(t, a.LikelyDigital())
}
