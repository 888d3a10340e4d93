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

package ports

// Joystick pin numbers as they appear in mapping files. The directional
// pins reflect the wiring of the physical port: one bit per direction
// with fire on its own pin.
const (
	PinUp    = 0x01
	PinDown  = 0x02
	PinLeft  = 0x04
	PinRight = 0x08
	PinFire  = 0x10
)

// PinEvent returns the Event associated with a joystick pin number. An
// unrecognised pin number returns NoEvent.
func PinEvent(pin int) Event {
	switch pin {
	case PinUp:
		return Up
	case PinDown:
		return Down
	case PinLeft:
		return Left
	case PinRight:
		return Right
	case PinFire:
		return Fire
	}
	return NoEvent
}

// EventPin is the reverse of PinEvent. An event that is not a joystick
// pin event returns zero.
func EventPin(ev Event) int {
	switch ev {
	case Up:
		return PinUp
	case Down:
		return PinDown
	case Left:
		return PinLeft
	case Right:
		return PinRight
	case Fire:
		return PinFire
	}
	return 0
}
