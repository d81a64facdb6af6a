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

// MarkSeenController marks every unread message addressed to the caller as
// seen in one shot.
type MarkSeenController struct {
	UC *usecase.MarkSeenUseCase
}

func NewMarkSeenController(pool *pgxpool.Pool, notifier notify.Notifier) *MarkSeenController {
	return &MarkSeenController{
		UC: usecase.NewMarkSeenUseCase(adapter.NewPgChatRepository(pool), notifier),
	}
}

func (h *MarkSeenController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		err := h.UC.Execute(ctx, usecase.MarkSeenInput{
			ConversationID: chatID,
			ViewerID:       id.UserID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
