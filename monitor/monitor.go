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
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/merrilees/joyport/curated"
	"github.com/merrilees/joyport/logger"
	"github.com/merrilees/joyport/ports"
)

// wsMessage is the JSON rendering of one event, as sent to every
// connected client.
type wsMessage struct {
	Seq       int64           `json:"seq"`
	Timestamp int64           `json:"timestamp"`
	Port      ports.PortID    `json:"port"`
	Event     ports.Event     `json:"event"`
	Data      ports.EventData `json:"data,omitempty"`
}

// Monitor wraps a HandleInput implementation, teeing a JSON rendering
// of every event to the connected websocket clients.
type Monitor struct {
	// Wrapped receives every event first and its error is the error of
	// HandleEvent. broadcast failure is never an event error
	Wrapped ports.HandleInput

	hub *hub
	srv *http.Server
	seq int64
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// the monitor is a local diagnostic tool
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type. The websocket endpoint is served on addr at path /ws until
// Shutdown is called.
func NewMonitor(wrapped ports.HandleInput, addr string) (*Monitor, error) {
	m := &Monitor{
		Wrapped: wrapped,
		hub:     newHub(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", m.handleWebsocket)

	m.srv = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Logf("monitor", "listening on %s", addr)
		if err := m.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logf("monitor", "%v", err)
		}
	}()

	return m, nil
}

func (m *Monitor) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf("monitor", "upgrade: %v", err)
		return
	}

	c := &client{
		hub:  m.hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	m.hub.register(c)

	go c.writePump()
	go c.readPump()
}

// HandleEvent implements the ports.HandleInput interface.
func (m *Monitor) HandleEvent(id ports.PortID, ev ports.Event, d ports.EventData) error {
	var err error
	if m.Wrapped != nil {
		err = m.Wrapped.HandleEvent(id, ev, d)
	}

	msg := wsMessage{
		Seq:       atomic.AddInt64(&m.seq, 1),
		Timestamp: time.Now().UnixMilli(),
		Port:      id,
		Event:     ev,
		Data:      d,
	}

	data, merr := json.Marshal(msg)
	if merr != nil {
		logger.Logf("monitor", "marshal: %v", merr)
		return err
	}
	m.hub.broadcast(data)

	return err
}

// Shutdown disconnects every client and stops the websocket server.
func (m *Monitor) Shutdown() error {
	m.hub.close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := m.srv.Shutdown(ctx); err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	return nil
}
