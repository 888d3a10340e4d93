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

// Package ports defines the vocabulary of events that can be sent to the
// control ports of the emulated machine, and the interface through which
// they are sent.
//
// The emulated machine is not part of this project. Whatever it is, it
// receives events by implementing the HandleInput interface. The joystick
// package translates raw samples from the physical device into the Event
// values defined here and forwards them through HandleInput.
//
// PortID identifies which emulated control port an event is destined for.
// A physical device that has not been assigned to a port yet has the
// PortUnassigned ID and events for it are not forwarded.
package ports
