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
	"fmt"

	"github.com/merrilees/joyport/ports"
)

// Action is the discriminator for the Mapping type.
type Action int

// List of Action values.
const (
	ActionNone Action = iota
	ActionPin
	ActionKey
	ActionPot
	ActionUI
	ActionUIActivate
)

func (act Action) String() string {
	switch act {
	case ActionNone:
		return "none"
	case ActionPin:
		return "pin"
	case ActionKey:
		return "key"
	case ActionPot:
		return "pot"
	case ActionUI:
		return "action"
	case ActionUIActivate:
		return "activate"
	}
	return "unknown"
}

// Calibration of one direction of an analog axis. Threshold is the raw
// value at which the direction is considered active. Only meaningful when
// the axis is not digital.
type Calibration struct {
	Threshold int32
	Deadzone  int32
	Fuzz      int32
	Inverted  bool
}

// Mapping assigns a physical input, or one direction of a physical
// input, to an emulated action. The zero value is the "none" mapping,
// which is valid and fires nothing.
type Mapping struct {
	Action Action

	// which field is meaningful depends on the Action value
	Pin int
	Key ports.KeyPress
	Pot ports.PotAxis
	UI  int

	// calibration is only used by mappings attached to an axis direction
	Calib Calibration
}

func (m Mapping) String() string {
	switch m.Action {
	case ActionPin:
		return fmt.Sprintf("pin %d", m.Pin)
	case ActionKey:
		return fmt.Sprintf("key %d %d %d", m.Key.Row, m.Key.Column, m.Key.Mod)
	case ActionPot:
		if m.Pot == ports.PotX {
			return "pot x"
		}
		return "pot y"
	case ActionUI:
		return fmt.Sprintf("action %d", m.UI)
	case ActionUIActivate:
		return "activate"
	}
	return "none"
}

// PinMapping is a convenience constructor for a Mapping with the
// ActionPin action.
func PinMapping(pin int) Mapping {
	return Mapping{Action: ActionPin, Pin: pin}
}

// KeyMapping is a convenience constructor for a Mapping with the
// ActionKey action.
func KeyMapping(row, column uint8, mod ports.KeyMod) Mapping {
	return Mapping{Action: ActionKey, Key: ports.KeyPress{Row: row, Column: column, Mod: mod}}
}
