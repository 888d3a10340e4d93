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

// Package sdl implements the joystick driver on top of the SDL2
// joystick subsystem. It is the portable backend and the default on
// every platform.
//
// SDL does not deliver per-device event queues without a window event
// pump, so Poll() resamples every input and compares against the
// previous raw sample. SDL also reports no noise parameters for axes,
// which means every SDL axis is treated as analogue and
// auto-calibrated.
package sdl
