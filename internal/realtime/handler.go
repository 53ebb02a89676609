package realtime

import (
	"log"

	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// Handler returns a gin handler that upgrades the connection to WebSocket
// and runs it as a hub client until it disconnects.
func Handler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := ws.Accept(c.Writer, c.Request, &ws.AcceptOptions{
			// Cross-origin browser clients connect directly.
			InsecureSkipVerify: true,
		})
		if err != nil {
			log.Printf("[Realtime] websocket accept: %v", err)
			return
		}

		client := NewClient(hub, conn)
		client.Run(c.Request.Context())
	}
}
