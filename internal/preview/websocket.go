package preview

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/widget"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Snapshots queued per client before it is considered too slow
	sendBuffer = 16
)

// MessageTypeConfig tags snapshot messages
const MessageTypeConfig = "config"

// Message is the JSON document pushed to preview clients
type Message struct {
	Type   string        `json:"type"`
	Config widget.Config `json:"config"`
	Code   string        `json:"code"`
}

// client is one connected browser
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte

	// primed is set once a snapshot has been queued; guarded by Server.mu
	primed bool
}

func encodeSnapshot(cfg widget.Config) ([]byte, error) {
	return json.Marshal(Message{
		Type:   MessageTypeConfig,
		Config: cfg,
		Code:   codegen.Generate(cfg),
	})
}

// handleWebSocket upgrades the request and registers the client. The client
// is registered before the current snapshot is read, so an edit racing the
// upgrade is either in that snapshot or delivered by Broadcast.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := &client{
		id:   conn.RemoteAddr().String(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "preview server closed"))
		_ = conn.Close()
		return
	}
	s.activeConns[c.id] = c
	s.wg.Add(2)
	s.mu.Unlock()

	logging.LogConnection(c.id, "websocket_upgraded")

	go func() {
		defer s.wg.Done()
		s.writePump(c)
	}()
	go func() {
		defer s.wg.Done()
		s.readPump(c)
	}()

	initial, err := encodeSnapshot(s.source.Config())
	if err != nil {
		logging.Error("Failed to encode snapshot", zap.Error(err))
		s.unregister(c)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A broadcast that already reached c is at least as new as initial.
	if cur, ok := s.activeConns[c.id]; ok && cur == c && !c.primed {
		c.send <- initial
		c.primed = true
	}
}

// unregister removes c and closes its send channel, once.
func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.activeConns[c.id]; ok && cur == c {
		delete(s.activeConns, c.id)
		close(c.send)
	}
}

// readPump drains client messages so control frames are processed.
// Client data is logged and otherwise ignored.
func (s *Server) readPump(c *client) {
	defer func() {
		s.unregister(c)
		_ = c.conn.Close()
		logging.LogConnection(c.id, "websocket_closed")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Preview connection closed unexpectedly",
					zap.String("remote_addr", c.id),
					zap.Error(err),
				)
			}
			return
		}
		logging.LogWebSocketMessage(c.id, "received", msgType, data)
	}
}

// writePump sends queued snapshots and keepalive pings. It exits when the
// send channel is closed or a write fails.
func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "preview server closed"))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logging.Debug("Failed to write snapshot",
					zap.String("remote_addr", c.id),
					zap.Error(err),
				)
				return
			}
			logging.LogWebSocketMessage(c.id, "sent", websocket.TextMessage, msg)

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
