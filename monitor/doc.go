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

// Package monitor publishes the event stream over a websocket, for
// watching what a device is doing from a browser or any other websocket
// client.
//
// The Monitor type wraps another HandleInput implementation. Events
// pass through to the wrapped handler unchanged and a JSON rendering of
// each one is broadcast to every connected client. A slow client never
// stalls the event stream; when its send buffer fills the client is
// disconnected instead.
package monitor
