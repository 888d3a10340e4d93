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

import (
	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/ports"
)

// DPadButtons is the platform-defined set of four button codes that
// together make up a D-pad reported as individual buttons, in the order
// up, down, left, right. Supplied by the driver; a driver with no such
// convention returns ok == false.
type DPadButtons struct {
	Up    uint32
	Down  uint32
	Left  uint32
	Right uint32
}

// DefaultMapping assigns a best-effort mapping to a classified device
// with no user-supplied mapping file. Directional input comes from the
// first source available, in order of preference: a hat; the platform's
// D-pad-as-buttons set, if the device exposes all four codes; the first
// two axes. Whatever happens with directional input, the first button is
// mapped to fire if the device has any button at all.
//
// If the device has no suitable directional input the error has the
// NoDefaultMapping pattern and the device is left without directional
// control. Callers must not assume a device has a usable default
// mapping.
func (d *Device) DefaultMapping(dpad DPadButtons, haveDPad bool) error {
	mapped := false

	if len(d.Hats) > 0 {
		h := &d.Hats[0]
		h.Up = PinMapping(ports.PinUp)
		h.Down = PinMapping(ports.PinDown)
		h.Left = PinMapping(ports.PinLeft)
		h.Right = PinMapping(ports.PinRight)
		mapped = true
	} else if haveDPad && d.mapDPadButtons(dpad) {
		mapped = true
	} else if len(d.Axes) >= 2 {
		d.Axes[0].Neg = PinMapping(ports.PinLeft)
		d.Axes[0].Pos = PinMapping(ports.PinRight)
		d.Axes[1].Neg = PinMapping(ports.PinUp)
		d.Axes[1].Pos = PinMapping(ports.PinDown)
		mapped = true
	}

	if len(d.Buttons) > 0 {
		d.Buttons[0].Map = PinMapping(ports.PinFire)
	}

	if !mapped {
		return curated.Errorf(NoDefaultMapping, d.Node)
	}

	return nil
}

// mapDPadButtons maps the four D-pad button codes to the directional
// pins. Returns false, mapping nothing, unless the device exposes the
// full set.
func (d *Device) mapDPadButtons(dpad DPadButtons) bool {
	find := func(code uint32) *Button {
		for i := range d.Buttons {
			if d.Buttons[i].Code == code {
				return &d.Buttons[i]
			}
		}
		return nil
	}

	up := find(dpad.Up)
	down := find(dpad.Down)
	left := find(dpad.Left)
	right := find(dpad.Right)

	if up == nil || down == nil || left == nil || right == nil {
		return false
	}

	up.Map = PinMapping(ports.PinUp)
	down.Map = PinMapping(ports.PinDown)
	left.Map = PinMapping(ports.PinLeft)
	right.Map = PinMapping(ports.PinRight)

	return true
}
