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

package ports

// Identifiers for the UI actions that can be bound in a mapping file.
// The emulated machine's front end interprets them; from this side they
// are opaque.
const (
	UIQuit int = iota
	UIPause
	UIReset
	UIWarp
	UIScreenshot
	UISwapPorts
)

// names as they appear in mapping files, indexed by action identifier.
var uiActionNames = []string{
	UIQuit:       "quit",
	UIPause:      "pause",
	UIReset:      "reset",
	UIWarp:       "warp",
	UIScreenshot: "screenshot",
	UISwapPorts:  "swap-ports",
}

// UIActionFromName resolves a mapping-file action name to its
// identifier.
func UIActionFromName(name string) (int, bool) {
	for id, n := range uiActionNames {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// UIActionName is the reverse of UIActionFromName. Unknown identifiers
// return the empty string.
func UIActionName(id int) string {
	if id < 0 || id >= len(uiActionNames) {
		return ""
	}
	return uiActionNames[id]
}
