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
	"github.com/merrilees/joyport/logger"
	"github.com/merrilees/joyport/ports"
)

// AxisEvent is called by the driver with the classified logical value of
// a new axis sample. If the value differs from the previous one, the
// mapping for the previously active direction is released and the mapping
// for the newly active direction is pressed. A centered value never fires
// a mapping directly; it only causes the release of whichever side was
// active.
//
// Calling AxisEvent twice with the same value is a no-op on the second
// call.
func (dv *Devices) AxisEvent(d *Device, a *Axis, value Direction) error {
	if d == nil || a == nil {
		logger.Log("joystick", "AxisEvent: nil device or axis")
		return nil
	}

	if value == a.Prev {
		return nil
	}

	var err error

	// release the previously active side before pressing the new one
	switch a.Prev {
	case DirNegative:
		err = dv.perform(d, a.Neg, 0)
	case DirPositive:
		err = dv.perform(d, a.Pos, 0)
	}

	var perr error
	switch value {
	case DirNegative:
		perr = dv.perform(d, a.Neg, 1)
	case DirPositive:
		perr = dv.perform(d, a.Pos, 1)
	}
	if err == nil {
		err = perr
	}

	a.Prev = value

	return err
}

// ButtonEvent fires the button's mapping with the new value. There is no
// edge detection here: the driver is expected to call this only when the
// physical state changes, and a redundant re-fire is harmless to every
// defined mapping kind.
func (dv *Devices) ButtonEvent(d *Device, b *Button, value uint8) error {
	if d == nil || b == nil {
		logger.Log("joystick", "ButtonEvent: nil device or button")
		return nil
	}

	b.Prev = value
	return dv.perform(d, b.Map, value)
}

// HatEvent is called by the driver with the decoded direction bitmask of
// a new hat sample. Each of the four directions is edge-detected
// independently: a direction whose bit has changed fires its mapping
// with 1 if the bit is now set and 0 if now cleared. The firing order
// across directions is up, down, left, right.
func (dv *Devices) HatEvent(d *Device, h *Hat, value HatDir) error {
	if d == nil || h == nil {
		logger.Log("joystick", "HatEvent: nil device or hat")
		return nil
	}

	if value == h.Prev {
		return nil
	}

	diff := value ^ h.Prev
	h.Prev = value

	fire := func(m Mapping, bit HatDir) error {
		if diff&bit == 0 {
			return nil
		}
		if value&bit == bit {
			return dv.perform(d, m, 1)
		}
		return dv.perform(d, m, 0)
	}

	if err := fire(h.Up, HatUp); err != nil {
		return err
	}
	if err := fire(h.Down, HatDown); err != nil {
		return err
	}
	if err := fire(h.Left, HatLeft); err != nil {
		return err
	}
	return fire(h.Right, HatRight)
}

// perform dispatches a fired mapping to the session handler. The "none"
// mapping and a release of a UI-activate mapping are silently ignored, as
// is everything when no handler is attached.
func (dv *Devices) perform(d *Device, m Mapping, value uint8) error {
	if dv.Handler == nil {
		return nil
	}

	switch m.Action {
	case ActionPin:
		return dv.Handler.HandleEvent(d.Port, ports.PinEvent(m.Pin), value != 0)

	case ActionKey:
		ev := ports.KeyMatrixUp
		if value != 0 {
			ev = ports.KeyMatrixDown
		}
		return dv.Handler.HandleEvent(d.Port, ev, m.Key)

	case ActionPot:
		// recognized but unsupported. how pot events should be generated
		// from a mapped input has not been established
		logger.Logf("joystick", "%s: pot mapping is not supported", d.Node)

	case ActionUI:
		return dv.Handler.HandleEvent(d.Port, ports.UIAction,
			ports.UIActionState{ID: m.UI, Pressed: value != 0})

	case ActionUIActivate:
		if value != 0 {
			return dv.Handler.HandleEvent(d.Port, ports.UIActivate, nil)
		}
	}

	return nil
}
