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

// PortID differentiates the emulated control ports into which a physical
// device can be assigned.
type PortID string

// List of defined PortIDs.
const (
	PortUnassigned PortID = "Unassigned"
	Port1          PortID = "Port1"
	Port2          PortID = "Port2"
)

// Event represents the actions that can be performed at one of the
// emulated control ports.
type Event string

// List of defined events. The comment indicates the expected type of the
// associated EventData.
const (
	NoEvent Event = "NoEvent" // nil

	// joystick pins.
	Up    Event = "Up"    // bool
	Down  Event = "Down"  // bool
	Left  Event = "Left"  // bool
	Right Event = "Right" // bool
	Fire  Event = "Fire"  // bool

	// keyboard matrix.
	KeyMatrixDown Event = "KeyMatrixDown" // KeyPress
	KeyMatrixUp   Event = "KeyMatrixUp"   // KeyPress

	// potentiometers.
	PotSet Event = "PotSet" // PotSetting

	// user interface.
	UIAction   Event = "UIAction" // UIActionState
	UIActivate Event = "UIActivate"
)

// EventData is the value associated with the event. The underlying type
// should be restricted to the types named in the Event list above.
type EventData interface{}

// KeyMod is a bitmask of keyboard modifiers held alongside a matrix
// position.
type KeyMod uint8

// List of KeyMod values.
const (
	KeyModNone  KeyMod = 0x00
	KeyModShift KeyMod = 0x01
	KeyModCtrl  KeyMod = 0x02
	KeyModAlt   KeyMod = 0x04
)

// KeyPress is the EventData for the KeyMatrixDown and KeyMatrixUp events.
type KeyPress struct {
	Row    uint8
	Column uint8
	Mod    KeyMod
}

// PotAxis differentiates the two potentiometer registers of the emulated
// machine.
type PotAxis int

// List of PotAxis values.
const (
	PotX PotAxis = iota
	PotY
)

// PotSetting is the EventData for the PotSet event.
type PotSetting struct {
	Axis  PotAxis
	Value uint8
}

// UIActionState is the EventData for the UIAction event.
type UIActionState struct {
	ID      int
	Pressed bool
}
