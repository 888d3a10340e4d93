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

package joystick_test

import (
	"testing"

	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/ports"
	"github.com/merrilees/joyport/test"
)

func mkSession() (*joystick.Devices, *ports.Tally, *joystick.Device) {
	tally := &ports.Tally{}
	dv := joystick.NewDevices(tally)

	d := &joystick.Device{Name: "test device", Node: "test", Port: ports.Port1}
	d.Axes = []joystick.Axis{{
		Min: -32768, Max: 32767,
		Neg: joystick.PinMapping(ports.PinLeft),
		Pos: joystick.PinMapping(ports.PinRight),
	}}
	d.Axes[0].AutoCalibrate()
	d.Buttons = []joystick.Button{{Map: joystick.PinMapping(ports.PinFire)}}
	d.Hats = []joystick.Hat{{
		Up:    joystick.PinMapping(ports.PinUp),
		Down:  joystick.PinMapping(ports.PinDown),
		Left:  joystick.PinMapping(ports.PinLeft),
		Right: joystick.PinMapping(ports.PinRight),
	}}

	if err := dv.Add(d); err != nil {
		panic(err)
	}

	return dv, tally, d
}

func TestAxisEventPairing(t *testing.T) {
	dv, tally, d := mkSession()
	a := &d.Axes[0]

	// centered -> negative fires exactly the negative mapping at 1
	err := dv.AxisEvent(d, a, joystick.DirNegative)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 1)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Left))
	test.Equate(t, tally.Events[0].D.(bool), true)

	// negative -> positive fires negative@0 then positive@1, in that
	// order
	tally.Clear()
	err = dv.AxisEvent(d, a, joystick.DirPositive)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 2)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Left))
	test.Equate(t, tally.Events[0].D.(bool), false)
	test.Equate(t, string(tally.Events[1].Ev), string(ports.Right))
	test.Equate(t, tally.Events[1].D.(bool), true)

	// positive -> centered only releases
	tally.Clear()
	err = dv.AxisEvent(d, a, joystick.DirCentered)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 1)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Right))
	test.Equate(t, tally.Events[0].D.(bool), false)
}

func TestAxisEventIdempotence(t *testing.T) {
	dv, tally, d := mkSession()
	a := &d.Axes[0]

	err := dv.AxisEvent(d, a, joystick.DirNegative)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 1)

	// the same value again fires nothing
	err = dv.AxisEvent(d, a, joystick.DirNegative)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 1)
}

func TestButtonEvent(t *testing.T) {
	dv, tally, d := mkSession()
	b := &d.Buttons[0]

	err := dv.ButtonEvent(d, b, 1)
	test.ExpectSuccess(t, err)
	err = dv.ButtonEvent(d, b, 0)
	test.ExpectSuccess(t, err)

	test.Equate(t, len(tally.Events), 2)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Fire))
	test.Equate(t, tally.Events[0].D.(bool), true)
	test.Equate(t, tally.Events[1].D.(bool), false)
}

func TestHatEventIndependence(t *testing.T) {
	dv, tally, d := mkSession()
	h := &d.Hats[0]

	// toggling only the up bit fires only the up mapping
	err := dv.HatEvent(d, h, joystick.HatUp)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 1)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Up))
	test.Equate(t, tally.Events[0].D.(bool), true)

	tally.Clear()
	err = dv.HatEvent(d, h, joystick.HatCentered)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 1)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Up))
	test.Equate(t, tally.Events[0].D.(bool), false)

	// a diagonal transition fires in the order up, down, left, right
	tally.Clear()
	err = dv.HatEvent(d, h, joystick.HatUp|joystick.HatLeft)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 2)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.Up))
	test.Equate(t, string(tally.Events[1].Ev), string(ports.Left))

	// repeating the same bitmask fires nothing
	tally.Clear()
	err = dv.HatEvent(d, h, joystick.HatUp|joystick.HatLeft)
	test.ExpectSuccess(t, err)
	test.Equate(t, len(tally.Events), 0)
}

func TestNilReferences(t *testing.T) {
	dv, tally, d := mkSession()

	// nil references are contract violations but recoverable ones
	test.ExpectSuccess(t, dv.AxisEvent(d, nil, joystick.DirNegative))
	test.ExpectSuccess(t, dv.ButtonEvent(nil, &d.Buttons[0], 1))
	test.ExpectSuccess(t, dv.HatEvent(d, nil, joystick.HatUp))
	test.Equate(t, len(tally.Events), 0)
}

func TestUIActivateRelease(t *testing.T) {
	tally := &ports.Tally{}
	dv := joystick.NewDevices(tally)

	d := &joystick.Device{Name: "test device", Node: "test", Port: ports.Port1}
	d.Buttons = []joystick.Button{{Map: joystick.Mapping{Action: joystick.ActionUIActivate}}}
	if err := dv.Add(d); err != nil {
		t.Fatal(err)
	}

	// a press fires, a release is silently ignored
	test.ExpectSuccess(t, dv.ButtonEvent(d, &d.Buttons[0], 1))
	test.Equate(t, len(tally.Events), 1)
	test.Equate(t, string(tally.Events[0].Ev), string(ports.UIActivate))

	test.ExpectSuccess(t, dv.ButtonEvent(d, &d.Buttons[0], 0))
	test.Equate(t, len(tally.Events), 1)
}

func TestDuplicateNode(t *testing.T) {
	dv := joystick.NewDevices(nil)
	test.ExpectSuccess(t, dv.Add(&joystick.Device{Node: "a"}))
	test.ExpectFailure(t, dv.Add(&joystick.Device{Node: "a"}))
}
