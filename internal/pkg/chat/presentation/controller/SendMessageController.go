package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-chatline/internal/pkg/auth"
	"go-chatline/internal/pkg/chat/application/notify"
	"go-chatline/internal/pkg/chat/application/usecase"
	"go-chatline/internal/pkg/chat/persistence/repository/adapter"
)

// SendMessageController handles the send-message endpoint only.
type SendMessageController struct {
	UC *usecase.SendMessageUseCase
}

func NewSendMessageController(pool *pgxpool.Pool, notifier notify.Notifier, index usecase.MessageIndexer) *SendMessageController {
	return &SendMessageController{
		UC: usecase.NewSendMessageUseCase(adapter.NewPgChatRepository(pool), notifier, index, nil),
	}
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *SendMessageController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		chatID := c.Param("chatId")
		if chatID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId is required"})
			return
		}

		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.SendMessageInput{
			ConversationID: chatID,
			AuthorID:       id.UserID,
			Content:        req.Content,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, toMessageResponse(*msg, nil))
	}
}
