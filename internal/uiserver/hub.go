package uiserver

import (
	"sync"

	"github.com/gorilla/websocket"

	"cellmaster/pkg/logging"
)

// hub fans a single outbound message out to every connected operator
// websocket. One Coordinator has exactly one hub; messages are produced
// on the Coordinator's actor goroutine (via the Publisher methods in
// publisher.go)
// and consumed by one writer goroutine per connection, so writes to a
// given *websocket.Conn never interleave (gorilla/websocket forbids
// concurrent writers on the same connection).
type hub struct {
	mu    sync.Mutex
	conns map[*conn]struct{}
}

// conn wraps one upgraded websocket with its own outbound queue so a slow
// or wedged browser can't block the broadcaster or other connections.
type conn struct {
	ws   *websocket.Conn
	send chan wsMessage
	done chan struct{}
}

// wsMessage is the envelope for every push message (spec §6 "Operator
// push messages produced"): Type names the verb, Data carries its
// payload.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const sendQueueDepth = 64

func newHub() *hub {
	return &hub{conns: make(map[*conn]struct{})}
}

// add registers ws and starts its writer goroutine. Returns the conn so
// the caller can later remove it.
func (h *hub) add(ws *websocket.Conn) *conn {
	c := &conn{ws: ws, send: make(chan wsMessage, sendQueueDepth), done: make(chan struct{})}
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()

	go c.writeLoop()
	return c
}

// remove unregisters c and closes its underlying connection.
func (h *hub) remove(c *conn) {
	h.mu.Lock()
	_, ok := h.conns[c]
	delete(h.conns, c)
	h.mu.Unlock()
	if !ok {
		return
	}
	close(c.done)
	_ = c.ws.Close()
}

// broadcast enqueues msg for every connected operator. For a connection
// whose send queue is already full, msg is dropped (the connection stays
// registered) rather than blocking the Coordinator's actor goroutine,
// which is the only caller of broadcast.
func (h *hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.conns {
		select {
		case c.send <- msg:
		default:
			logging.Warn("uiserver", "dropping %s push: operator connection send queue full", msg.Type)
		}
	}
}

func (c *conn) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			if err := c.ws.WriteJSON(msg); err != nil {
				return
			}
		}
	}
}
