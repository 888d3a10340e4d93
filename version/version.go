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

// Package version records the version number of the project as a whole.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Joyport"

// if number is empty then the project was not built using the makefile.
var number string

// revision contains the vcs revision. if the source has been modified but
// not committed the string is suffixed with "+dirty".
var revision string

// Version contains the current version number of the project. If the
// version string is "unreleased" then the project has been built manually
// (ie. not with the makefile). If it is "local" then there is no version
// number and no vcs information at all.
var Version string

func init() {
	revision = "local"
	version := "local"

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				if v.Value == "true" {
					revision += "+dirty"
				}
			}
		}

		if number != "" {
			version = number
		} else if revision != "local" {
			version = "unreleased"
		}
	}

	if version == "unreleased" || version == "local" {
		Version = fmt.Sprintf("%s (%s)", version, revision)
	} else {
		Version = version
	}
}
