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

package driver_test

import (
	"testing"

	"github.com/merrilees/joyport/driver"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/ports"
	"github.com/merrilees/joyport/test"
)

// stub driver returning a fixed device list.
type stubDriver struct {
	devices []*joystick.Device
	polled  int
}

func (drv *stubDriver) Name() string {
	return "stub"
}

func (drv *stubDriver) Enumerate() ([]*joystick.Device, error) {
	return drv.devices, nil
}

func (drv *stubDriver) Poll(dv *joystick.Devices, d *joystick.Device) error {
	drv.polled++
	return nil
}

func (drv *stubDriver) DPadButtons() (joystick.DPadButtons, bool) {
	return joystick.DPadButtons{}, false
}

func stick(node string) *joystick.Device {
	return &joystick.Device{
		Name: "test stick",
		Node: node,
		Axes: []joystick.Axis{
			{Code: 0, Name: "x", Min: -32768, Max: 32767},
			{Code: 1, Name: "y", Min: -32768, Max: 32767},
		},
		Buttons: []joystick.Button{
			{Code: 0, Name: "trigger"},
		},
	}
}

func TestNoDriver(t *testing.T) {
	driver.Register(nil)
	_, err := driver.Devices(nil)
	test.ExpectFailure(t, err)
}

func TestDevices(t *testing.T) {
	drv := &stubDriver{devices: []*joystick.Device{stick("stub:0")}}
	driver.Register(drv)

	tally := &ports.Tally{}
	dv, err := driver.Devices(tally)
	test.ExpectSuccess(t, err)
	defer dv.Close()

	test.Equate(t, len(dv.List()), 1)

	// classification and default mapping were applied during enumeration
	d := dv.Get("stub:0")
	test.ExpectSuccess(t, d != nil)
	test.ExpectSuccess(t, d.Caps&joystick.CapJoystick == joystick.CapJoystick)
	test.Equate(t, d.Axes[0].Neg.Pin, ports.PinLeft)
	test.Equate(t, d.Axes[0].Pos.Pin, ports.PinRight)
	test.Equate(t, d.Buttons[0].Map.Pin, ports.PinFire)
}

func TestDuplicateNode(t *testing.T) {
	drv := &stubDriver{devices: []*joystick.Device{stick("stub:0"), stick("stub:0")}}
	driver.Register(drv)

	dv, err := driver.Devices(nil)
	test.ExpectSuccess(t, err)
	defer dv.Close()

	// the second device was rejected, not fatal
	test.Equate(t, len(dv.List()), 1)
}
