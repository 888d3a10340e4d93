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

// Package test contains helper functions to remove common testing
// boilerplate.
//
// The ExpectFailure and ExpectSuccess functions test for failure and
// success under generic conditions. A nil value is interpreted as a
// success, consistent with how a nil error indicates no error.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output for comparison with the Writer.Compare() function.
//
// The Equate() function compares like-typed values for equality. Some
// types can be compared against an untyped int constant for convenience.
package test
