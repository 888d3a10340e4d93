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

package vjm_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/joystick/vjm"
	"github.com/merrilees/joyport/ports"
	"github.com/merrilees/joyport/test"
)

const minimalFile = `vjm-version     2.0
device-vendor   0x046d
device-product  0xc21f
device-name     "Example Pad"
map pin 1 axis "ABS_Y" negative
map pin 16 button "BTN_SOUTH"
calibrate axis "ABS_X" negative threshold -10000
`

func TestMinimalFile(t *testing.T) {
	f, err := vjm.Parse(strings.NewReader(minimalFile), "minimal.vjm")
	test.ExpectSuccess(t, err)

	test.Equate(t, f.Major, 2)
	test.Equate(t, f.Minor, 0)
	test.Equate(t, f.Vendor, uint16(0x046d))
	test.Equate(t, f.Product, uint16(0xc21f))
	test.Equate(t, f.DeviceName, "Example Pad")

	test.Equate(t, len(f.Entries), 2)

	test.Equate(t, int(f.Entries[0].Ref.Class), int(vjm.InputAxis))
	test.Equate(t, f.Entries[0].Ref.Name, "ABS_Y")
	test.Equate(t, f.Entries[0].Ref.Dir == joystick.DirNegative, true)
	test.Equate(t, int(f.Entries[0].Map.Action), int(joystick.ActionPin))
	test.Equate(t, f.Entries[0].Map.Pin, 1)

	test.Equate(t, int(f.Entries[1].Ref.Class), int(vjm.InputButton))
	test.Equate(t, f.Entries[1].Ref.Name, "BTN_SOUTH")
	test.Equate(t, f.Entries[1].Map.Pin, 16)

	test.Equate(t, len(f.Calibrations), 1)
	test.Equate(t, f.Calibrations[0].AxisName, "ABS_X")
	test.Equate(t, f.Calibrations[0].Threshold, -10000)
}

func TestNumericDialects(t *testing.T) {
	// all of these spell the integer 16
	for _, literal := range []string{"0x10", "$10", "16", "0b10000", "%10000"} {
		src := fmt.Sprintf("map pin %s button \"B\"\n", literal)
		f, err := vjm.Parse(strings.NewReader(src), "dialects.vjm")
		if !test.ExpectSuccess(t, err) {
			continue
		}
		test.Equate(t, f.Entries[0].Map.Pin, 16)
	}

	// signs are accepted in front of the prefix
	f, err := vjm.Parse(strings.NewReader("calibrate axis \"A\" negative threshold -$2710\n"), "dialects.vjm")
	test.ExpectSuccess(t, err)
	test.Equate(t, f.Calibrations[0].Threshold, -10000)
}

func TestParseErrors(t *testing.T) {
	// unterminated string: a hard failure with no mappings populated
	f, err := vjm.Parse(strings.NewReader("device-name \"no closing quote\n"), "broken.vjm")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, f == nil)
	test.ExpectSuccess(t, curated.Is(err, vjm.ParseError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "broken.vjm:1:13"))

	// unknown leading keyword
	_, err = vjm.Parse(strings.NewReader("vjm-version 2.0\nfrobnicate 1\n"), "broken.vjm")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "broken.vjm:2:1"))

	// malformed integer
	_, err = vjm.Parse(strings.NewReader("device-vendor 0xfrog\n"), "broken.vjm")
	test.ExpectFailure(t, err)

	// vendor id does not fit in 16 bits
	_, err = vjm.Parse(strings.NewReader("device-vendor 0x10000\n"), "broken.vjm")
	test.ExpectFailure(t, err)

	// diagonal hat directions cannot carry a mapping
	_, err = vjm.Parse(strings.NewReader("map pin 1 hat \"H\" northeast\n"), "broken.vjm")
	test.ExpectFailure(t, err)
}

func TestCommentsAndBlanks(t *testing.T) {
	src := `# a comment line

vjm-version 2.0   # trailing comment
`
	f, err := vjm.Parse(strings.NewReader(src), "comments.vjm")
	test.ExpectSuccess(t, err)
	test.Equate(t, f.Major, 2)
}

func TestPotWarning(t *testing.T) {
	// a pot mapping is recognised but not actionable. it must not abort
	// the load
	src := "map pot x axis \"ABS_RX\" positive\nmap pin 16 button \"B\"\n"
	f, err := vjm.Parse(strings.NewReader(src), "pot.vjm")
	test.ExpectSuccess(t, err)
	test.Equate(t, len(f.Entries), 1)
}

func TestEscapes(t *testing.T) {
	f, err := vjm.Parse(strings.NewReader(`device-name "a \"quoted\" \\ name"`+"\n"), "escapes.vjm")
	test.ExpectSuccess(t, err)
	test.Equate(t, f.DeviceName, `a "quoted" \ name`)
}

func mkPad() *joystick.Device {
	d := &joystick.Device{
		Name: "Example Pad", Node: "test",
		Vendor: 0x046d, Product: 0xc21f,
	}
	d.Axes = []joystick.Axis{
		{Name: "ABS_X", Min: -32768, Max: 32767},
		{Name: "ABS_Y", Min: -32768, Max: 32767},
	}
	d.Buttons = []joystick.Button{{Name: "BTN_SOUTH"}}
	d.Hats = []joystick.Hat{{Name: "HAT0"}}
	for i := range d.Axes {
		d.Axes[i].AutoCalibrate()
	}
	return d
}

func TestApply(t *testing.T) {
	f, err := vjm.Parse(strings.NewReader(minimalFile), "minimal.vjm")
	test.ExpectSuccess(t, err)

	d := mkPad()
	test.ExpectSuccess(t, f.Apply(d))

	test.Equate(t, int(d.Axes[1].Neg.Action), int(joystick.ActionPin))
	test.Equate(t, d.Axes[1].Neg.Pin, 1)
	test.Equate(t, int(d.Buttons[0].Map.Action), int(joystick.ActionPin))
	test.Equate(t, d.Buttons[0].Map.Pin, 16)
	test.Equate(t, d.Axes[0].Neg.Calib.Threshold, -10000)

	// the positive side of ABS_X keeps its auto calibration
	test.Equate(t, d.Axes[0].Pos.Calib.Threshold, 16383)
}

func TestRoundTrip(t *testing.T) {
	d := mkPad()
	d.Axes[0].Neg = joystick.PinMapping(ports.PinLeft)
	d.Axes[0].Pos = joystick.PinMapping(ports.PinRight)
	d.Buttons[0].Map = joystick.PinMapping(ports.PinFire)
	d.Hats[0].Up = joystick.PinMapping(ports.PinUp)
	d.Axes[0].AutoCalibrate()

	w := &strings.Builder{}
	test.ExpectSuccess(t, vjm.Write(w, d))

	f, err := vjm.Parse(strings.NewReader(w.String()), "roundtrip.vjm")
	test.ExpectSuccess(t, err)
	test.Equate(t, f.DeviceName, "Example Pad")
	test.Equate(t, f.Vendor, uint16(0x046d))

	// apply the parsed file to a fresh device and compare
	e := mkPad()
	test.ExpectSuccess(t, f.Apply(e))
	test.Equate(t, e.Axes[0].Neg.Pin, ports.PinLeft)
	test.Equate(t, e.Axes[0].Pos.Pin, ports.PinRight)
	test.Equate(t, e.Buttons[0].Map.Pin, ports.PinFire)
	test.Equate(t, e.Hats[0].Up.Pin, ports.PinUp)
	test.Equate(t, e.Axes[0].Neg.Calib.Threshold, d.Axes[0].Neg.Calib.Threshold)
}
