package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-chatline/internal/pkg/auth"
	"go-chatline/internal/pkg/chat/application/usecase"
	"go-chatline/internal/pkg/chat/persistence/repository/adapter"
)

// SearchMessagesController runs a full-text query over one conversation.
type SearchMessagesController struct {
	UC *usecase.SearchMessagesUseCase
}

func NewSearchMessagesController(pool *pgxpool.Pool, index usecase.MessageSearcher) *SearchMessagesController {
	return &SearchMessagesController{
		UC: usecase.NewSearchMessagesUseCase(adapter.NewPgChatRepository(pool), index),
	}
}

func (h *SearchMessagesController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		chatID := c.Param("chatId")
		query := c.Query("q")
		if chatID == "" || query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "chatId and q are required"})
			return
		}

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				limit = n
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		hits, err := h.UC.Execute(ctx, usecase.SearchMessagesInput{
			ConversationID: chatID,
			ViewerID:       id.UserID,
			Query:          query,
			Limit:          limit,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, hits)
	}
}
