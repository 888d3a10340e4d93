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

// Package evdev implements the joystick driver on top of the Linux
// evdev interface. Unlike the SDL backend it sees the kernel's noise
// parameters for every absolute axis, so devices enumerated through
// this driver get real fuzz/flat/resolution values and the digital-axis
// heuristic can do its job.
//
// Hats arrive from evdev as pairs of absolute axes (ABS_HAT0X/Y and
// friends) and are folded into single hat records at enumeration.
// D-pads on this platform are frequently reported as the four
// BTN_DPAD_* buttons, which the driver exposes through DPadButtons().
package evdev
