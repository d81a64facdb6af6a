package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-chatline/internal/infrastructure/realtime"
	storage "go-chatline/internal/infrastructure/storage/port"
	"go-chatline/internal/pkg/chat/application/notify"
	"go-chatline/internal/pkg/chat/presentation/controller"
	"go-chatline/internal/pkg/chat/search"
)

// RegisterRoutes registers chat-related HTTP endpoints under the given group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, router *realtime.Router, index *search.Index, blobs storage.BlobStore) {
	notifier := notify.NewWebSocketNotifier(router, nil)

	createCtl := controller.NewCreateChatController(pool)
	listCtl := controller.NewListChatsController(pool)
	sendMsgCtl := controller.NewSendMessageController(pool, notifier, index)
	getMsgCtl := controller.NewGetMessageController(pool, blobs)
	seenCtl := controller.NewMarkSeenController(pool, notifier)
	uploadCtl := controller.NewUploadMediaController(pool, blobs, notifier)
	searchCtl := controller.NewSearchMessagesController(pool, index)
	socketCtl := controller.NewNotificationSocketController(router)

	// POST /api/v1/chat -> open (or return) the conversation with a user
	g.POST("/chat", createCtl.Handle())

	// GET /api/v1/chat -> the caller's conversation summaries
	g.GET("/chat", listCtl.Handle())

	// POST /api/v1/chat/:chatId/message -> append a text message
	g.POST("/chat/:chatId/message", sendMsgCtl.Handle())

	// GET /api/v1/chat/:chatId/messages -> full thread, oldest first
	g.GET("/chat/:chatId/messages", getMsgCtl.Handle())

	// POST /api/v1/chat/:chatId/seen -> mark the caller's unread as seen
	g.POST("/chat/:chatId/seen", seenCtl.Handle())

	// POST /api/v1/chat/:chatId/media -> attach a file to the conversation
	g.POST("/chat/:chatId/media", uploadCtl.Handle())

	// GET /api/v1/chat/:chatId/search?q= -> full-text search in the thread
	g.GET("/chat/:chatId/search", searchCtl.Handle())

	// GET /api/v1/chat/ws -> websocket session for realtime notifications
	g.GET("/chat/ws", socketCtl.Handle())
}
