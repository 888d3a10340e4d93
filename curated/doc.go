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

// Package curated is the error mechanism used throughout the project. A
// curated error remembers the pattern string it was created with, which
// means the pattern doubles as an error category that can be tested for
// with the Is() and Has() functions.
//
// Packages declare their error patterns as exported string constants. For
// example, the vjm package declares:
//
//	const ParseError = "vjm: %s: %d:%d: %s"
//
// and a caller that wants to know whether a Load() failure was a parse
// error, rather than say a file-opening error, tests with:
//
//	if curated.Has(err, vjm.ParseError) {
//		...
//	}
//
// Unlike fmt.Errorf, formatting of the message is deferred until Error()
// is called. Error() also deduplicates adjacent identical parts of the
// message chain, keeping deeply wrapped errors readable.
package curated
