package websocket

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
)

// Connection wraps a websocket with a write lock, gorilla websockets do
// not allow concurrent writers.
type Connection struct {
	Socket *websocket.Conn
	mu     sync.Mutex
}

func (c *Connection) WriteJson(event models.MotionEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Socket.WriteJSON(event)
}

var socketsMu sync.Mutex
var sockets = make(map[*Connection]bool)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrades the request and registers the client on the motion
// event feed. The feed is write-only: a read pump drains and discards
// anything the client sends, and unregisters the connection when the
// client goes away.
func Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Log.Error("routers.websocket.Handler(): " + err.Error())
		return
	}

	connection := &Connection{Socket: conn}
	socketsMu.Lock()
	sockets[connection] = true
	socketsMu.Unlock()
	log.Log.Info("routers.websocket.Handler(): client subscribed to motion events")

	go readPump(connection)
}

func readPump(connection *Connection) {
	for {
		if _, _, err := connection.Socket.ReadMessage(); err != nil {
			break
		}
	}
	unregister(connection)
	log.Log.Info("routers.websocket.readPump(): client unsubscribed from motion events")
}

func unregister(connection *Connection) {
	socketsMu.Lock()
	defer socketsMu.Unlock()
	connection.Socket.Close()
	delete(sockets, connection)
}

// Broadcast sends a motion event to every subscribed client. A failed
// write removes the client as well, the read pump might not have seen
// the close yet.
func Broadcast(event models.MotionEvent) {
	socketsMu.Lock()
	defer socketsMu.Unlock()
	for connection := range sockets {
		if err := connection.WriteJson(event); err != nil {
			connection.Socket.Close()
			delete(sockets, connection)
		}
	}
}
