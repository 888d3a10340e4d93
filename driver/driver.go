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

package driver

import (
	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/logger"
	"github.com/merrilees/joyport/ports"
)

// sentinal errors returned by the driver package
const (
	NoDriver = "driver: no driver registered"
)

// Driver is implemented by the platform joystick backends.
//
// Enumerate returns a freshly discovered device list. The driver owns
// the Handle field of every device it returns and must set a CloseHook
// that releases the platform resource.
//
// Poll decodes any samples that have arrived since the last call and
// forwards them to the session's event functions. It must return
// without blocking when no samples are pending.
type Driver interface {
	Name() string
	Enumerate() ([]*joystick.Device, error)
	Poll(dv *joystick.Devices, d *joystick.Device) error

	// DPadButtons returns the button codes the platform uses for
	// directional-pad buttons, for devices that expose a d-pad that
	// way. The second return value is false when the platform has no
	// such convention.
	DPadButtons() (joystick.DPadButtons, bool)
}

// the process-wide driver registration. written once at startup from
// the main goroutine, before any enumeration takes place.
var registered Driver

// Register installs drv as the process-wide driver. Registering a
// second driver replaces the first, which is logged because it almost
// certainly indicates a startup mistake. A nil driver deregisters.
func Register(drv Driver) {
	if registered != nil && drv != nil {
		logger.Logf("driver", "replacing registered driver %s with %s", registered.Name(), drv.Name())
	}
	registered = drv
}

// Registered returns the process-wide driver, or nil if none has been
// registered.
func Registered() Driver {
	return registered
}

// Devices enumerates through the registered driver and returns a
// prepared device session. Every discovered device is classified and
// given the default mapping before being added. A device for which no
// default mapping can be built is added regardless and the condition
// logged.
func Devices(handler ports.HandleInput) (*joystick.Devices, error) {
	drv := Registered()
	if drv == nil {
		return nil, curated.Errorf(NoDriver)
	}

	list, err := drv.Enumerate()
	if err != nil {
		return nil, curated.Errorf("driver: %v", err)
	}

	dpad, haveDPad := drv.DPadButtons()

	dv := joystick.NewDevices(handler)
	for _, d := range list {
		joystick.Classify(d)

		if err := d.DefaultMapping(dpad, haveDPad); err != nil {
			logger.Logf("driver", "%s: %v", d.Name, err)
		}

		if err := dv.Add(d); err != nil {
			logger.Logf("driver", "%v", err)
			d.Close()
		}
	}

	return dv, nil
}
