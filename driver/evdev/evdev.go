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

//go:build linux

package evdev

import (
	"errors"
	"fmt"
	"sort"
	"syscall"

	"github.com/holoplot/go-evdev"
	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/driver"
	"github.com/merrilees/joyport/joystick"
	"github.com/merrilees/joyport/logger"
)

// the hat axis pairs live in a contiguous block of ABS codes
const (
	hatFirst = uint16(evdev.ABS_HAT0X)
	hatLast  = uint16(evdev.ABS_HAT3Y)
)

// handle is the driver-owned state for one open device node. the code
// maps are built at enumeration and route decoded events to the right
// input record without a scan.
type handle struct {
	dev *evdev.InputDevice

	// ABS code to index in Device.Axes
	axes map[uint16]int

	// ABS code to index in Device.Hats. both codes of a pair map to
	// the same hat
	hats map[uint16]int

	// KEY code to index in Device.Buttons
	buttons map[uint16]int
}

// isPadKey is true for key codes in the button ranges a game device
// uses: the classic joystick/gamepad block, the d-pad block and the
// trigger-happy block for pads with many extra buttons.
func isPadKey(code uint16) bool {
	switch {
	case code >= uint16(evdev.BTN_MISC) && code < uint16(evdev.KEY_OK):
		return true
	case code >= uint16(evdev.BTN_DPAD_UP) && code <= uint16(evdev.BTN_DPAD_RIGHT):
		return true
	case code >= uint16(evdev.BTN_TRIGGER_HAPPY) && code <= uint16(evdev.BTN_TRIGGER_HAPPY40):
		return true
	}
	return false
}

type evdevDriver struct{}

// Register installs the evdev driver as the process-wide driver.
func Register() error {
	driver.Register(&evdevDriver{})
	return nil
}

func (drv *evdevDriver) Name() string {
	return "evdev"
}

func (drv *evdevDriver) DPadButtons() (joystick.DPadButtons, bool) {
	return joystick.DPadButtons{
		Up:    uint32(evdev.BTN_DPAD_UP),
		Down:  uint32(evdev.BTN_DPAD_DOWN),
		Left:  uint32(evdev.BTN_DPAD_LEFT),
		Right: uint32(evdev.BTN_DPAD_RIGHT),
	}, true
}

func (drv *evdevDriver) Enumerate() ([]*joystick.Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, curated.Errorf("evdev: %v", err)
	}

	var list []*joystick.Device

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			// nodes we cannot open are normal. a keyboard owned by
			// the display server for instance
			logger.Logf("evdev", "%s: %v", p.Path, err)
			continue
		}

		d, err := drv.describe(p.Path, dev)
		if err != nil {
			logger.Logf("evdev", "%s: %v", p.Path, err)
			dev.Close()
			continue
		}
		if d == nil {
			// not a game device
			dev.Close()
			continue
		}

		list = append(list, d)
	}

	if len(list) == 0 {
		logger.Log("evdev", "no game devices found")
	}

	return list, nil
}

// describe builds the normalized device record for an open node. A nil
// device with a nil error means the node is not a game device and
// should be skipped silently.
func (drv *evdevDriver) describe(path string, dev *evdev.InputDevice) (*joystick.Device, error) {
	name, err := dev.Name()
	if err != nil {
		return nil, err
	}

	// reject nodes with no absolute axes and no buttons in the
	// joystick/gamepad range. capability classification proper happens
	// later, this is only a filter for keyboards and mice
	keys := dev.CapableEvents(evdev.EV_KEY)
	padKeys := 0
	for _, c := range keys {
		if isPadKey(uint16(c)) {
			padKeys++
		}
	}

	abs, err := dev.AbsInfos()
	if err != nil {
		// devices without EV_ABS legitimately fail this query
		abs = nil
	}

	if len(abs) == 0 && padKeys == 0 {
		return nil, nil
	}

	id, err := dev.InputID()
	if err != nil {
		return nil, err
	}

	h := &handle{
		dev:     dev,
		axes:    make(map[uint16]int),
		hats:    make(map[uint16]int),
		buttons: make(map[uint16]int),
	}

	d := &joystick.Device{
		Name:    name,
		Node:    path,
		GUID:    fmt.Sprintf("%04x%04x%04x%04x", id.BusType, id.Vendor, id.Product, id.Version),
		Vendor:  id.Vendor,
		Product: id.Product,
		Version: id.Version,
		Handle:  h,
		CloseHook: func(_ *joystick.Device) {
			dev.Close()
		},
	}

	// stable ascending code order so that the first two axes of the
	// default mapping are ABS_X and ABS_Y
	codes := make([]int, 0, len(abs))
	for c := range abs {
		codes = append(codes, int(c))
	}
	sort.Ints(codes)

	for _, c := range codes {
		code := uint16(c)
		info := abs[evdev.EvCode(c)]

		a := joystick.Axis{
			Code:       uint32(code),
			Name:       absName(code),
			Min:        info.Minimum,
			Max:        info.Maximum,
			Fuzz:       info.Fuzz,
			Flat:       info.Flat,
			Resolution: info.Resolution,
		}
		a.Digital = a.LikelyDigital()
		if !a.Digital {
			a.AutoCalibrate()
		}

		if code >= hatFirst && code <= hatLast {
			drv.addHatAxis(d, h, code, a)
			continue
		}

		h.axes[code] = len(d.Axes)
		d.Axes = append(d.Axes, a)
	}

	for _, c := range keys {
		code := uint16(c)
		if !isPadKey(code) {
			continue
		}
		h.buttons[code] = len(d.Buttons)
		d.Buttons = append(d.Buttons, joystick.Button{
			Code: uint32(code),
			Name: keyName(code),
		})
	}

	return d, nil
}

// addHatAxis folds one channel of a hat axis pair into the hat record,
// creating the record when the first channel of the pair arrives.
func (drv *evdevDriver) addHatAxis(d *joystick.Device, h *handle, code uint16, a joystick.Axis) {
	// both channels of a pair share the X channel's code as the hat code
	pair := hatFirst + (code-hatFirst)&^1

	idx, ok := h.hats[pair]
	if !ok {
		idx = len(d.Hats)
		d.Hats = append(d.Hats, joystick.Hat{
			Code:    uint32(pair),
			Name:    fmt.Sprintf("hat %d", (pair-hatFirst)/2),
			TwoAxis: true,
		})
		h.hats[pair] = idx
	}
	h.hats[code] = idx

	if code&1 == 0 {
		d.Hats[idx].X = a
	} else {
		d.Hats[idx].Y = a
	}
}

// Poll drains the pending events on the device node and forwards the
// decoded values to the session's event functions. The node is in
// non-blocking mode; an empty queue is not an error.
func (drv *evdevDriver) Poll(dv *joystick.Devices, d *joystick.Device) error {
	h, ok := d.Handle.(*handle)
	if !ok {
		logger.Logf("evdev", "%s: poll on foreign device", d.Node)
		return nil
	}

	if err := h.dev.NonBlock(); err != nil {
		return curated.Errorf("evdev: %s: %v", d.Node, err)
	}

	for {
		ev, err := h.dev.ReadOne()
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
				return nil
			}
			return curated.Errorf("evdev: %s: %v", d.Node, err)
		}

		switch ev.Type {
		case evdev.EV_ABS:
			code := uint16(ev.Code)

			if idx, ok := h.hats[code]; ok {
				ht := &d.Hats[idx]
				if dir, ok := ht.DecodeAxis(uint32(code), ev.Value); ok {
					if err := dv.HatEvent(d, ht, dir); err != nil {
						return err
					}
				}
				continue
			}

			if idx, ok := h.axes[code]; ok {
				a := &d.Axes[idx]
				if err := dv.AxisEvent(d, a, a.Value(ev.Value)); err != nil {
					return err
				}
			}

		case evdev.EV_KEY:
			// value 2 is the kernel's key autorepeat, meaningless for
			// a game device
			if ev.Value == 2 {
				continue
			}
			if idx, ok := h.buttons[uint16(ev.Code)]; ok {
				if err := dv.ButtonEvent(d, &d.Buttons[idx], uint8(ev.Value)); err != nil {
					return err
				}
			}
		}
	}
}
