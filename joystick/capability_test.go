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

// build a device with the specified number of anonymous inputs.
func mkDevice(axes, buttons, hats int) *joystick.Device {
	d := &joystick.Device{Name: "test device", Node: "test"}
	d.Axes = make([]joystick.Axis, axes)
	d.Buttons = make([]joystick.Button, buttons)
	d.Hats = make([]joystick.Hat, hats)
	return d
}

func TestClassify(t *testing.T) {
	// five buttons and nothing else is enough for a joystick but not for
	// a mouse
	d := mkDevice(0, 5, 0)
	joystick.Classify(d)
	test.ExpectSuccess(t, d.Caps&joystick.CapJoystick == joystick.CapJoystick)
	test.ExpectFailure(t, d.Caps&joystick.CapMouse == joystick.CapMouse)

	// one axis and one button is a paddle and only a paddle
	d = mkDevice(1, 1, 0)
	joystick.Classify(d)
	test.ExpectSuccess(t, d.Caps == joystick.CapPaddle)

	// a typical gamepad is everything at once
	d = mkDevice(4, 10, 1)
	joystick.Classify(d)
	test.ExpectSuccess(t, d.Caps&joystick.CapPaddle == joystick.CapPaddle)
	test.ExpectSuccess(t, d.Caps&joystick.CapMouse == joystick.CapMouse)
	test.ExpectSuccess(t, d.Caps&joystick.CapKoala == joystick.CapKoala)
	test.ExpectSuccess(t, d.Caps&joystick.CapJoystick == joystick.CapJoystick)

	// mouse and koala pad are granted together
	d = mkDevice(2, 2, 0)
	joystick.Classify(d)
	test.ExpectSuccess(t, d.Caps&joystick.CapMouse == joystick.CapMouse)
	test.ExpectSuccess(t, d.Caps&joystick.CapKoala == joystick.CapKoala)

	// a hat and a button is a joystick
	d = mkDevice(0, 1, 1)
	joystick.Classify(d)
	test.ExpectSuccess(t, d.Caps&joystick.CapJoystick == joystick.CapJoystick)

	// nothing useful at all
	d = mkDevice(1, 0, 0)
	joystick.Classify(d)
	test.ExpectSuccess(t, d.Caps == joystick.CapNone)
	test.ExpectFailure(t, d.Usable())
}

func TestClassifyNilDevice(t *testing.T) {
	// a nil device is a caller contract violation but must not panic
	joystick.Classify(nil)
}
