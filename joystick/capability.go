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
	"strings"

	"github.com/merrilees/joyport/logger"
)

// Capability is a bitmask of the emulated device classes a physical
// device can plausibly drive.
type Capability uint8

// List of Capability bits.
const (
	CapNone     Capability = 0x00
	CapPaddle   Capability = 0x01
	CapMouse    Capability = 0x02
	CapKoala    Capability = 0x04
	CapJoystick Capability = 0x08
)

func (c Capability) String() string {
	if c == CapNone {
		return "none"
	}

	s := []string{}
	if c&CapJoystick == CapJoystick {
		s = append(s, "joystick")
	}
	if c&CapPaddle == CapPaddle {
		s = append(s, "paddle")
	}
	if c&CapMouse == CapMouse {
		s = append(s, "mouse")
	}
	if c&CapKoala == CapKoala {
		s = append(s, "koala pad")
	}
	return strings.Join(s, ", ")
}

// Classify derives the capability bitmask for the device from its input
// counts. Multiple classes can be granted at once. A device that is
// granted no class at all is unusable; it remains in the device list but
// must be rejected from interactive selection.
func Classify(d *Device) {
	if d == nil {
		logger.Log("joystick", "Classify: nil device")
		return
	}

	axes := len(d.Axes)
	buttons := len(d.Buttons)
	hats := len(d.Hats)

	caps := CapNone

	if axes >= 1 && buttons >= 1 {
		caps |= CapPaddle
	}

	// mouse and koala pad are granted together. both are driven by a
	// pair of analog axes and a couple of buttons
	if axes >= 2 && buttons >= 2 {
		caps |= CapMouse | CapKoala
	}

	if (axes >= 2 && buttons >= 1) || (hats >= 1 && buttons >= 1) || buttons >= 5 {
		caps |= CapJoystick
	}

	d.Caps = caps
}
