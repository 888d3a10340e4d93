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

package joystick

import (
	"fmt"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/ports"
)

// error patterns for the joystick package.
const (
	// the driver has broken the unique-node contract.
	DuplicateNode = "joystick: duplicate device node: %s"

	// no input on the device is suitable for directional control.
	NoDefaultMapping = "joystick: %s: no input suitable for directional control"
)

// Device is the normalized description of one physical controller. Values
// are created by the driver, which populates the identity fields and the
// input records; classification and default mapping is then applied
// exactly once, by the driver, before the device is handed to anybody
// else.
type Device struct {
	Name string

	// the platform-opaque node/path/GUID of the device. Node is the
	// stable key for user-visible lookup and guaranteed unique across a
	// device list by the driver
	Node string
	GUID string

	Vendor  uint16
	Product uint16
	Version uint16

	Axes    []Axis
	Buttons []Button
	Hats    []Hat

	Caps Capability

	// the emulated port the device is assigned to
	Port ports.PortID

	// Handle is owned exclusively by the driver. the core stores it and
	// hands it back but never dereferences it
	Handle interface{}

	// CloseHook is installed by the driver and releases whatever the
	// Handle refers to. invoked exactly once, by Close()
	CloseHook func(*Device)

	closed bool
}

func (d *Device) String() string {
	return fmt.Sprintf("%s [%s] (%d axes, %d buttons, %d hats) %s",
		d.Name, d.Node, len(d.Axes), len(d.Buttons), len(d.Hats), d.Caps)
}

// Close releases the driver-owned handle. It is safe to call more than
// once; the close hook only ever runs on the first call.
func (d *Device) Close() {
	if d.closed {
		return
	}
	d.closed = true

	if d.CloseHook != nil {
		d.CloseHook(d)
	}
	d.Handle = nil
}

// Usable is false for devices that were classified with no capability at
// all. An unusable device is still listed but is rejected from
// interactive selection.
func (d *Device) Usable() bool {
	return d.Caps != CapNone
}

// Devices is a session of enumerated devices and the handler that
// receives the events they generate. It replaces any notion of a global
// current-device list; all dispatch state lives here or in the devices
// themselves.
//
// A Devices session is exclusively owned: the core mutates it from one
// call site at a time and the driver only touches the opaque handles.
type Devices struct {
	// Handler receives every event fired by a mapping. may be changed
	// between polls but not during one
	Handler ports.HandleInput

	list []*Device
}

// NewDevices is the preferred method of initialisation for the Devices
// type.
func NewDevices(handler ports.HandleInput) *Devices {
	return &Devices{Handler: handler}
}

// Add a device to the session. Node uniqueness is a driver contract;
// a duplicate is rejected with an error.
func (dv *Devices) Add(d *Device) error {
	for _, e := range dv.list {
		if e.Node == d.Node {
			return curated.Errorf(DuplicateNode, d.Node)
		}
	}
	dv.list = append(dv.list, d)
	return nil
}

// Get the device with the specified node key. Returns nil if no device
// matches.
func (dv *Devices) Get(node string) *Device {
	for _, d := range dv.list {
		if d.Node == node {
			return d
		}
	}
	return nil
}

// List of devices in enumeration order. The returned slice is owned by
// the session and must not be mutated.
func (dv *Devices) List() []*Device {
	return dv.list
}

// Close every device in the session and empty the list. The driver close
// hook runs for each device before it is dropped.
func (dv *Devices) Close() {
	for _, d := range dv.list {
		d.Close()
	}
	dv.list = nil
}
