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

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/ports"
	"github.com/merrilees/joyport/test"
)

var testDPad = joystick.DPadButtons{Up: 544, Down: 545, Left: 546, Right: 547}

func TestDefaultMappingHat(t *testing.T) {
	d := mkDevice(2, 2, 1)
	test.ExpectSuccess(t, d.DefaultMapping(testDPad, true))

	// the hat takes precedence over the axes
	test.Equate(t, int(d.Hats[0].Up.Action), int(joystick.ActionPin))
	test.Equate(t, d.Hats[0].Up.Pin, ports.PinUp)
	test.Equate(t, d.Hats[0].Down.Pin, ports.PinDown)
	test.Equate(t, d.Hats[0].Left.Pin, ports.PinLeft)
	test.Equate(t, d.Hats[0].Right.Pin, ports.PinRight)
	test.Equate(t, int(d.Axes[0].Neg.Action), int(joystick.ActionNone))

	// first button is fire
	test.Equate(t, int(d.Buttons[0].Map.Action), int(joystick.ActionPin))
	test.Equate(t, d.Buttons[0].Map.Pin, ports.PinFire)
}

func TestDefaultMappingDPadButtons(t *testing.T) {
	d := mkDevice(0, 0, 0)
	d.Buttons = []joystick.Button{
		{Code: 304}, {Code: 544}, {Code: 545}, {Code: 546}, {Code: 547},
	}
	test.ExpectSuccess(t, d.DefaultMapping(testDPad, true))

	test.Equate(t, d.Buttons[1].Map.Pin, ports.PinUp)
	test.Equate(t, d.Buttons[2].Map.Pin, ports.PinDown)
	test.Equate(t, d.Buttons[3].Map.Pin, ports.PinLeft)
	test.Equate(t, d.Buttons[4].Map.Pin, ports.PinRight)
	test.Equate(t, d.Buttons[0].Map.Pin, ports.PinFire)

	// an incomplete d-pad set does not count
	d = mkDevice(0, 0, 0)
	d.Buttons = []joystick.Button{{Code: 544}, {Code: 545}, {Code: 546}}
	err := d.DefaultMapping(testDPad, true)
	test.ExpectFailure(t, err)
}

func TestDefaultMappingAxes(t *testing.T) {
	d := mkDevice(2, 1, 0)
	test.ExpectSuccess(t, d.DefaultMapping(joystick.DPadButtons{}, false))

	test.Equate(t, d.Axes[0].Neg.Pin, ports.PinLeft)
	test.Equate(t, d.Axes[0].Pos.Pin, ports.PinRight)
	test.Equate(t, d.Axes[1].Neg.Pin, ports.PinUp)
	test.Equate(t, d.Axes[1].Pos.Pin, ports.PinDown)
	test.Equate(t, d.Buttons[0].Map.Pin, ports.PinFire)
}

func TestDefaultMappingFailure(t *testing.T) {
	// one axis and one button: no directional input but the fire button
	// is still mapped
	d := mkDevice(1, 1, 0)
	err := d.DefaultMapping(joystick.DPadButtons{}, false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, joystick.NoDefaultMapping))
	test.Equate(t, d.Buttons[0].Map.Pin, ports.PinFire)
}
