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

package vjm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/ports"
	"github.com/merrilees/joyport/version"
)

// Save the device's current mappings and calibration to a file that
// Load() can read back.
func Save(path string, d *joystick.Device) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer f.Close()

	return Write(f, d)
}

// Write the device's current mappings and calibration to the writer in
// mapping file format.
func Write(w io.Writer, d *joystick.Device) error {
	if d == nil {
		return curated.Errorf(FileError, "cannot write mappings for nil device")
	}

	write := func(s string, args ...interface{}) error {
		_, err := fmt.Fprintf(w, s, args...)
		return err
	}

	if err := write("# %s mapping file\n", version.ApplicationName); err != nil {
		return curated.Errorf(FileError, err)
	}

	lines := []string{
		fmt.Sprintf("vjm-version %d.%d", CurrentMajor, CurrentMinor),
		fmt.Sprintf("device-name %s", quote(d.Name)),
		fmt.Sprintf("device-vendor 0x%04x", d.Vendor),
		fmt.Sprintf("device-product 0x%04x", d.Product),
		fmt.Sprintf("device-version 0x%04x", d.Version),
	}

	for i := range d.Axes {
		a := &d.Axes[i]
		lines = append(lines, mappingLines(a.Neg, fmt.Sprintf("axis %s negative", quote(a.Name)))...)
		lines = append(lines, mappingLines(a.Pos, fmt.Sprintf("axis %s positive", quote(a.Name)))...)

		if !a.Digital {
			lines = append(lines,
				fmt.Sprintf("calibrate axis %s negative threshold %d", quote(a.Name), a.Neg.Calib.Threshold),
				fmt.Sprintf("calibrate axis %s positive threshold %d", quote(a.Name), a.Pos.Calib.Threshold))
		}
	}

	for i := range d.Buttons {
		b := &d.Buttons[i]
		lines = append(lines, mappingLines(b.Map, fmt.Sprintf("button %s", quote(b.Name)))...)
	}

	for i := range d.Hats {
		h := &d.Hats[i]
		lines = append(lines, mappingLines(h.Up, fmt.Sprintf("hat %s up", quote(h.Name)))...)
		lines = append(lines, mappingLines(h.Down, fmt.Sprintf("hat %s down", quote(h.Name)))...)
		lines = append(lines, mappingLines(h.Left, fmt.Sprintf("hat %s left", quote(h.Name)))...)
		lines = append(lines, mappingLines(h.Right, fmt.Sprintf("hat %s right", quote(h.Name)))...)
	}

	for _, l := range lines {
		if err := write("%s\n", l); err != nil {
			return curated.Errorf(FileError, err)
		}
	}

	return nil
}

// mappingLines returns the "map" line for a mapping, or nothing for the
// none mapping and for mappings that cannot be expressed in the file
// format.
func mappingLines(m joystick.Mapping, ref string) []string {
	switch m.Action {
	case joystick.ActionPin:
		return []string{fmt.Sprintf("map pin %d %s", m.Pin, ref)}
	case joystick.ActionKey:
		return []string{fmt.Sprintf("map key %d %d %d %s", m.Key.Row, m.Key.Column, m.Key.Mod, ref)}
	case joystick.ActionUI:
		return []string{fmt.Sprintf("map action %s %s", quote(ports.UIActionName(m.UI)), ref)}
	case joystick.ActionUIActivate:
		return []string{fmt.Sprintf("map action activate %s", ref)}
	}
	return nil
}

// quote a string for the file format, escaping backslashes and quotes.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return "\"" + s + "\""
}
