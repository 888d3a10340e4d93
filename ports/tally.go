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

// TalliedEvent is one entry in a Tally.
type TalliedEvent struct {
	ID PortID
	Ev Event
	D  EventData
}

// Tally is an implementation of HandleInput that records every event it
// receives. Used in tests and by the command line front end to echo
// dispatched events.
type Tally struct {
	Events []TalliedEvent
}

// HandleEvent implements the HandleInput interface.
func (ty *Tally) HandleEvent(id PortID, ev Event, d EventData) error {
	ty.Events = append(ty.Events, TalliedEvent{ID: id, Ev: ev, D: d})
	return nil
}

// Clear the list of recorded events.
func (ty *Tally) Clear() {
	ty.Events = ty.Events[:0]
}
