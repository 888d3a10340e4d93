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

// Package logger is the central logging facility for the project. Log
// entries are accumulated in memory and written out on demand with the
// Write() or Tail() functions. Echoing of new entries to an io.Writer can
// be turned on with SetEcho(), which the command line front end does when
// the -log flag is given.
//
// Entries are tagged with the name of the system making the entry.
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count.
package logger
