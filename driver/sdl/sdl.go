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

package sdl

import (
	"fmt"

	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/driver"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the range of an SDL axis sample is fixed
const (
	axisMin = -32768
	axisMax = 32767
)

// handle is the driver-owned state for one open joystick. raw samples
// from the previous poll are kept so that Poll() can detect change; the
// logical edge detection in the core is not a substitute for this, a
// redundant ButtonEvent would re-fire the mapping.
type handle struct {
	joy     *sdl.Joystick
	axes    []int16
	buttons []uint8
	hats    []uint8
}

type sdlDriver struct{}

// Register initialises the SDL joystick subsystem and installs the SDL
// driver as the process-wide driver.
func Register() error {
	if sdl.WasInit(sdl.INIT_JOYSTICK) == 0 {
		if err := sdl.Init(sdl.INIT_JOYSTICK); err != nil {
			return curated.Errorf("sdl: %v", err)
		}
	}
	driver.Register(&sdlDriver{})
	return nil
}

func (drv *sdlDriver) Name() string {
	return "sdl"
}

// SDL has no convention for a D-pad reported as individual buttons; a
// D-pad always arrives as a hat.
func (drv *sdlDriver) DPadButtons() (joystick.DPadButtons, bool) {
	return joystick.DPadButtons{}, false
}

func (drv *sdlDriver) Enumerate() ([]*joystick.Device, error) {
	var list []*joystick.Device

	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy == nil {
			logger.Logf("sdl", "joystick %d: open failed: %v", i, sdl.GetError())
			continue
		}
		if !joy.Attached() {
			joy.Close()
			continue
		}
		list = append(list, drv.describe(i, joy))
	}

	if len(list) == 0 {
		logger.Log("sdl", "no joysticks found")
	}

	return list, nil
}

// describe builds the normalized device record for an open joystick.
// the joystick stays open for the life of the device; the close hook
// releases it.
func (drv *sdlDriver) describe(index int, joy *sdl.Joystick) *joystick.Device {
	h := &handle{
		joy:     joy,
		axes:    make([]int16, joy.NumAxes()),
		buttons: make([]uint8, joy.NumButtons()),
		hats:    make([]uint8, joy.NumHats()),
	}

	d := &joystick.Device{
		Name:    joy.Name(),
		Node:    fmt.Sprintf("sdl:%d", index),
		GUID:    sdl.JoystickGetGUIDString(joy.GUID()),
		Vendor:  uint16(joy.Vendor()),
		Product: uint16(joy.Product()),
		Version: uint16(joy.ProductVersion()),
		Handle:  h,
		CloseHook: func(_ *joystick.Device) {
			joy.Close()
		},
	}

	for i := range h.axes {
		a := joystick.Axis{
			Code: uint32(i),
			Name: fmt.Sprintf("axis %d", i),
			Min:  axisMin,
			Max:  axisMax,
		}

		// SDL reports no noise parameters so the digital-axis
		// heuristic cannot be trusted here. treat every axis as
		// analogue and calibrate from the fixed range
		a.AutoCalibrate()
		d.Axes = append(d.Axes, a)
	}

	for i := range h.buttons {
		d.Buttons = append(d.Buttons, joystick.Button{
			Code: uint32(i),
			Name: fmt.Sprintf("button %d", i),
		})
	}

	for i := range h.hats {
		d.Hats = append(d.Hats, joystick.Hat{
			Code: uint32(i),
			Name: fmt.Sprintf("hat %d", i),
			LUT:  joystick.DefaultHatLUT(),
		})
	}

	return d
}

// compass translates SDL's hat bitmask into the compass state indexing
// the hat's lookup table.
func compass(v uint8) joystick.Compass {
	switch v {
	case sdl.HAT_UP:
		return joystick.CompassNorth
	case sdl.HAT_RIGHTUP:
		return joystick.CompassNorthEast
	case sdl.HAT_RIGHT:
		return joystick.CompassEast
	case sdl.HAT_RIGHTDOWN:
		return joystick.CompassSouthEast
	case sdl.HAT_DOWN:
		return joystick.CompassSouth
	case sdl.HAT_LEFTDOWN:
		return joystick.CompassSouthWest
	case sdl.HAT_LEFT:
		return joystick.CompassWest
	case sdl.HAT_LEFTUP:
		return joystick.CompassNorthWest
	}
	return joystick.CompassCentered
}

// Poll resamples every input on the device and forwards any change to
// the session's event functions. SDL delivers joystick state through
// its event queue only when a window event pump is running, which this
// driver does not assume, so polling goes through JoystickUpdate().
func (drv *sdlDriver) Poll(dv *joystick.Devices, d *joystick.Device) error {
	h, ok := d.Handle.(*handle)
	if !ok {
		logger.Logf("sdl", "%s: poll on foreign device", d.Node)
		return nil
	}

	sdl.JoystickUpdate()

	for i := range h.axes {
		raw := h.joy.Axis(i)
		if raw == h.axes[i] {
			continue
		}
		h.axes[i] = raw

		a := &d.Axes[i]
		if err := dv.AxisEvent(d, a, a.Value(int32(raw))); err != nil {
			return err
		}
	}

	for i := range h.buttons {
		raw := h.joy.Button(i)
		if raw == h.buttons[i] {
			continue
		}
		h.buttons[i] = raw

		if err := dv.ButtonEvent(d, &d.Buttons[i], raw); err != nil {
			return err
		}
	}

	for i := range h.hats {
		raw := h.joy.Hat(i)
		if raw == h.hats[i] {
			continue
		}
		h.hats[i] = raw

		ht := &d.Hats[i]
		if err := dv.HatEvent(d, ht, ht.DecodeState(compass(raw))); err != nil {
			return err
		}
	}

	return nil
}
