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

// Package driver defines the boundary between the platform joystick
// backends and the core device model. A driver is responsible for
// discovering devices, owning their platform handles, and decoding raw
// samples into calls on the device session's event functions.
//
// Exactly one driver is registered for the lifetime of the process.
// Platform packages (driver/sdl, driver/evdev) provide a Register()
// function which the program calls once at startup.
//
// The Devices() function is the usual entry point. It enumerates
// through the registered driver and prepares every discovered device:
// capabilities are classified and the default mapping is applied,
// exactly once, before the device is added to the session. Devices
// that cannot be given a directional mapping are still added, they
// just remain unmapped until a mapping file says otherwise.
package driver
