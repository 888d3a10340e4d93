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

// Package vjm reads and writes joystick mapping files.
//
// A mapping file is UTF-8 text with one directive per line. A '#' starts
// a comment running to the end of the line; blank lines and comment
// lines are skipped. A minimal file:
//
//	vjm-version     2.0
//	device-vendor   0x046d
//	device-product  0xc21f
//	device-name     "Example Pad"
//	map pin 1 axis "ABS_Y" negative
//	map pin 16 button "BTN_SOUTH"
//	calibrate axis "ABS_X" negative threshold -10000
//
// Integer literals accept plain decimal; hexadecimal with a 0x or $
// prefix; and binary with a 0b or % prefix. A sign is accepted in front
// of the prefix. Strings are double-quoted with backslash as a generic
// escape: the character after a backslash is taken literally, whatever
// it is.
//
// Parsing is strict. An unrecognised leading keyword, a malformed or
// out-of-range integer, or an unterminated string abandons the whole
// load and nothing of the partially parsed file survives. Every
// diagnostic carries the file's base name and the 1-based line and
// column it refers to. A recognised construct that cannot be acted on
// yet (currently any "pot" mapping, and action names this build does
// not know) produces a warning in the central log instead and the line
// is skipped.
//
// The result of a successful parse is a File value, which can be
// applied to a live device with Apply(). Applying is forgiving in the
// way parsing is not: input names that don't exist on the device, or a
// declared device identity that doesn't match, are log warnings only.
package vjm
