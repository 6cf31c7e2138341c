package handlers

import (
	"log"
	"net/http"
	"tracker-server/middleware"
	"tracker-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades authenticated users to a live activity socket.
type WSHandler struct {
	mgr    *ws.Manager
	secret []byte
}

func NewWSHandler(mgr *ws.Manager, secret []byte) *WSHandler {
	return &WSHandler{mgr: mgr, secret: secret}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS upgrades to websocket and keeps the connection registered
// until the client goes away. Browsers cannot set headers on the
// websocket handshake, so the token travels as a query parameter.
// GET /ws?token=<jwt>
func (h *WSHandler) HandleUserWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}

	userID, err := middleware.ParseUserID(token, h.secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Register(userID, conn)
	log.Printf("user connected: %s", userID)

	defer func() {
		h.mgr.Unregister(userID, conn)
		log.Printf("user disconnected: %s", userID)
	}()

	// The socket is push-only; drain client frames until it closes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %s closed connection", userID)
			} else {
				log.Printf("read error from %s: %v", userID, err)
			}
			return
		}
	}
}
