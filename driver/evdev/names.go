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

//go:build linux

package evdev

import (
	"fmt"

	"github.com/holoplot/go-evdev"
)

// human readable names for the input codes a game device commonly
// carries. anything not listed falls back to the hex code, which is
// still a stable name for mapping files.

var absNames = map[uint16]string{
	uint16(evdev.ABS_X):        "ABS_X",
	uint16(evdev.ABS_Y):        "ABS_Y",
	uint16(evdev.ABS_Z):        "ABS_Z",
	uint16(evdev.ABS_RX):       "ABS_RX",
	uint16(evdev.ABS_RY):       "ABS_RY",
	uint16(evdev.ABS_RZ):       "ABS_RZ",
	uint16(evdev.ABS_THROTTLE): "ABS_THROTTLE",
	uint16(evdev.ABS_RUDDER):   "ABS_RUDDER",
	uint16(evdev.ABS_WHEEL):    "ABS_WHEEL",
	uint16(evdev.ABS_GAS):      "ABS_GAS",
	uint16(evdev.ABS_BRAKE):    "ABS_BRAKE",
	uint16(evdev.ABS_HAT0X):    "ABS_HAT0X",
	uint16(evdev.ABS_HAT0Y):    "ABS_HAT0Y",
	uint16(evdev.ABS_HAT1X):    "ABS_HAT1X",
	uint16(evdev.ABS_HAT1Y):    "ABS_HAT1Y",
	uint16(evdev.ABS_HAT2X):    "ABS_HAT2X",
	uint16(evdev.ABS_HAT2Y):    "ABS_HAT2Y",
	uint16(evdev.ABS_HAT3X):    "ABS_HAT3X",
	uint16(evdev.ABS_HAT3Y):    "ABS_HAT3Y",
}

var keyNames = map[uint16]string{
	uint16(evdev.BTN_TRIGGER):    "BTN_TRIGGER",
	uint16(evdev.BTN_THUMB):      "BTN_THUMB",
	uint16(evdev.BTN_THUMB2):     "BTN_THUMB2",
	uint16(evdev.BTN_TOP):        "BTN_TOP",
	uint16(evdev.BTN_TOP2):       "BTN_TOP2",
	uint16(evdev.BTN_PINKIE):     "BTN_PINKIE",
	uint16(evdev.BTN_BASE):       "BTN_BASE",
	uint16(evdev.BTN_BASE2):      "BTN_BASE2",
	uint16(evdev.BTN_BASE3):      "BTN_BASE3",
	uint16(evdev.BTN_BASE4):      "BTN_BASE4",
	uint16(evdev.BTN_BASE5):      "BTN_BASE5",
	uint16(evdev.BTN_BASE6):      "BTN_BASE6",
	uint16(evdev.BTN_SOUTH):      "BTN_SOUTH",
	uint16(evdev.BTN_EAST):       "BTN_EAST",
	uint16(evdev.BTN_NORTH):      "BTN_NORTH",
	uint16(evdev.BTN_WEST):       "BTN_WEST",
	uint16(evdev.BTN_C):          "BTN_C",
	uint16(evdev.BTN_Z):          "BTN_Z",
	uint16(evdev.BTN_TL):         "BTN_TL",
	uint16(evdev.BTN_TR):         "BTN_TR",
	uint16(evdev.BTN_TL2):        "BTN_TL2",
	uint16(evdev.BTN_TR2):        "BTN_TR2",
	uint16(evdev.BTN_SELECT):     "BTN_SELECT",
	uint16(evdev.BTN_START):      "BTN_START",
	uint16(evdev.BTN_MODE):       "BTN_MODE",
	uint16(evdev.BTN_THUMBL):     "BTN_THUMBL",
	uint16(evdev.BTN_THUMBR):     "BTN_THUMBR",
	uint16(evdev.BTN_DPAD_UP):    "BTN_DPAD_UP",
	uint16(evdev.BTN_DPAD_DOWN):  "BTN_DPAD_DOWN",
	uint16(evdev.BTN_DPAD_LEFT):  "BTN_DPAD_LEFT",
	uint16(evdev.BTN_DPAD_RIGHT): "BTN_DPAD_RIGHT",
}

func absName(code uint16) string {
	if s, ok := absNames[code]; ok {
		return s
	}
	return fmt.Sprintf("abs 0x%02x", code)
}

func keyName(code uint16) string {
	if s, ok := keyNames[code]; ok {
		return s
	}
	return fmt.Sprintf("btn 0x%03x", code)
}
