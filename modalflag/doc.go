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

// Package modalflag is a wrapper for the spf13/pflag package. It
// provides support for program modes (or sub-modes) in addition to
// flags.
//
// Flags before the mode are separate to the flags for the mode itself.
// For example:
//
//	joyport --log poll --interval 10ms /dev/input/event0
//
// In this command line, the *--log" flag is a flag for the program as a
// whole, "poll" is the mode, and "--interval" is a flag for the poll
// mode.
//
// The basic pattern of usage is to instantiate the Modes type, add modes
// and flags to it, and then parse in a loop, descending one mode level on
// each pass.
package modalflag
