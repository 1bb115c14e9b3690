package ws

import (
	"context"
	"io"
	"net/http"
	"time"

	"awards-board/internal/tournament"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Snapshotter supplies the result a new viewer starts from.
type Snapshotter interface {
	Current(ctx context.Context) *tournament.Result
}

type Handler struct {
	hub     *Hub
	results Snapshotter
	log     *zap.Logger
}

func NewHandler(hub *Hub, results Snapshotter, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{hub: hub, results: results, log: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the board is public
	},
}

// HandleEvents streams board updates as server-sent events.
func (h *Handler) HandleEvents(c *gin.Context) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent(EventInit, h.results.Current(c.Request.Context()))
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev.Data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// HandleWS serves the same stream over a websocket.
func (h *Handler) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}
	h.log.Info("New WebSocket connection", zap.String("remote", c.ClientIP()))

	cl := &client{
		conn:      conn,
		sub:       h.hub.Subscribe(),
		hub:       h.hub,
		log:       h.log,
		done:      make(chan struct{}),
		pingEvery: 25 * time.Second,
	}
	conn.SetReadLimit(1 << 10)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	if err := conn.WriteJSON(Event{Type: EventInit, Data: h.results.Current(c.Request.Context())}); err != nil {
		h.hub.Unsubscribe(cl.sub)
		conn.Close()
		return
	}
	cl.run()
}

type client struct {
	conn      *websocket.Conn
	sub       *Subscriber
	hub       *Hub
	log       *zap.Logger
	done      chan struct{}
	pingEvery time.Duration
}

func (c *client) run() {
	go c.writePump()
	c.readPump()
}

// readPump only drains control frames; viewers never send commands.
func (c *client) readPump() {
	defer func() {
		close(c.done)
		c.hub.Unsubscribe(c.sub)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			c.log.Debug("WS read closed", zap.Error(err))
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.pingEvery)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.sub.Events():
			if !ok {
				c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "too slow"),
					time.Now().Add(time.Second))
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteJSON(ev); err != nil {
				c.log.Info("WS write error", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
