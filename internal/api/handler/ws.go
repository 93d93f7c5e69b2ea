package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дозволяє з'єднання з будь-якого домену. У продакшені налаштувати!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeRoomEvents upgrades the connection and streams the room's event feed
// (messages after reveal, reveals, advances, finish) from Redis to the
// client. The observer is read-only; client frames are ignored beyond
// keepalive handling.
func (h *Handler) ServeRoomEvents(c *gin.Context) {
	roomID := c.Param("id")

	room, err := h.Storage.LoadRoom(roomID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load room"})
		return
	}
	if room == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ERROR: Failed to upgrade connection for room %s: %v", roomID, err)
		return
	}

	pubsub := h.Storage.SubscribeRoom(roomID)

	go readPump(conn, func() { pubsub.Close() })
	go writePump(conn, pubsub.Channel())
}

// readPump discards inbound frames and tears the subscription down when the
// client goes away.
func readPump(conn *websocket.Conn, onClose func()) {
	defer func() {
		onClose()
		conn.Close()
	}()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WARN: Observer read error: %v", err)
			}
			return
		}
	}
}

// writePump forwards Redis payloads to the socket and keeps the connection
// alive with pings. Payloads are already JSON; they pass through untouched.
func writePump(conn *websocket.Conn, events <-chan *redis.Message) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-events:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
