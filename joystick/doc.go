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

// Package joystick is the portable heart of the input system. It defines
// the normalized description of a physical controller (the Device type
// and its Axis, Button and Hat records) and everything that acts on that
// description:
//
// Capability classification decides which classes of emulated input
// device (paddle, mouse, koala pad, joystick) a physical device can
// plausibly drive, based on nothing more than the number of inputs it
// exposes.
//
// Axis translation turns a raw sample into one of three logical values,
// negative, centered or positive, using either simple sign comparison for
// digital axes or calibrated thresholds for analog axes. The default
// calibration gives every analog axis a half-range dead zone in the
// middle and a quarter-range active zone at either extreme.
//
// Hat decoding turns the two common hardware representations of a hat
// (a pair of absolute axes, or a single compound value) into a four bit
// compass bitmask.
//
// Event dispatch is the edge-triggered state machine that compares each
// decoded sample with the previous one and fires the affected mappings
// exactly once per transition, through the ports.HandleInput interface.
//
// The platform specific work of finding devices and reading samples from
// them is the responsibility of the driver package. Drivers create
// Device values, add them to a Devices session and call the dispatch
// functions with decoded samples. Events for a single device must be
// delivered in the order they were generated; the edge detection relies
// on it.
package joystick
