package telemetry

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // local viewer tools connect from file:// and other origins
	},
}

// NewRouter builds the gin engine serving hub.
func NewRouter(hub *Hub) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	started := time.Now()
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(started).String(),
			"clients": hub.Clients(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/state", handleState(hub))
		v1.GET("/ws", handleWebSocket(hub))
	}
	return router
}

func handleState(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := hub.Latest()
		if data == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no snapshot published yet"})
			return
		}
		c.Data(http.StatusOK, "application/json", data)
	}
}

func handleWebSocket(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.logf("[telemetry] upgrade error: %v", err)
			return
		}
		cl := hub.subscribe()
		go writePump(hub, cl, conn)
		go readPump(hub, cl, conn)
	}
}

// writePump forwards queued frames to conn and keeps the connection alive with pings.
func writePump(hub *Hub, cl *client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case frame, ok := <-cl.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				hub.logf("[telemetry] write error: %v", err)
				hub.unsubscribe(cl)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				hub.unsubscribe(cl)
				return
			}
		}
	}
}

// readPump discards incoming messages and unsubscribes when the peer goes away.
func readPump(hub *Hub, cl *client, conn *websocket.Conn) {
	defer func() {
		hub.unsubscribe(cl)
		conn.Close()
	}()

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				hub.logf("[telemetry] read error: %v", err)
			}
			return
		}
	}
}
