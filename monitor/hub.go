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

package monitor

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/merrilees/joyport/logger"
)

// number of outgoing messages buffered per client before the client is
// considered stalled and disconnected
const sendBuffer = 256

// client is one connected websocket.
type client struct {
	hub  *hub
	conn *websocket.Conn
	send chan []byte
}

// writePump drains the send channel onto the connection. runs as a
// goroutine per client and ends when the channel is closed or the
// connection errors.
func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

// readPump discards incoming messages. the monitor protocol is one-way
// but the read loop is still needed to notice a closed connection.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// hub tracks connected clients and fans broadcast messages out to them.
type hub struct {
	crit    sync.Mutex
	clients map[*client]bool
}

func newHub() *hub {
	return &hub{clients: make(map[*client]bool)}
}

func (h *hub) register(c *client) {
	h.crit.Lock()
	defer h.crit.Unlock()

	h.clients[c] = true
	logger.Logf("monitor", "client connected (total: %d)", len(h.clients))
}

func (h *hub) unregister(c *client) {
	h.crit.Lock()
	defer h.crit.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		logger.Logf("monitor", "client disconnected (total: %d)", len(h.clients))
	}
}

// broadcast queues msg on every connected client. clients whose buffer
// is full are dropped.
func (h *hub) broadcast(msg []byte) {
	h.crit.Lock()
	defer h.crit.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			delete(h.clients, c)
			close(c.send)
			logger.Log("monitor", "dropping stalled client")
		}
	}
}

// close disconnects every client.
func (h *hub) close() {
	h.crit.Lock()
	defer h.crit.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
