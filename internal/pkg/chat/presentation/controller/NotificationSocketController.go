package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-chatline/internal/infrastructure/realtime"
	"go-chatline/internal/pkg/auth"
)

const socketReadTimeout = 60 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when one exists.
		return true
	},
}

// NotificationSocketController upgrades the caller to a websocket session and
// attaches it to the delivery router. The channel is outbound only; inbound
// frames are drained to keep pings flowing but carry no meaning.
type NotificationSocketController struct {
	router *realtime.Router
}

func NewNotificationSocketController(router *realtime.Router) *NotificationSocketController {
	return &NotificationSocketController{router: router}
}

func (ctl *NotificationSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response.
			return
		}

		conn := realtime.NewConnection(id.UserID, ws)
		ctl.router.Attach(conn)
		defer func() {
			ctl.router.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 16)
		_ = ws.SetReadDeadline(time.Now().Add(socketReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(socketReadTimeout))
		})

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}
}
