package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-chatline/internal/pkg/auth"
	"go-chatline/internal/pkg/chat/application/usecase"
	"go-chatline/internal/pkg/chat/persistence/repository/adapter"
)

// ListChatsController returns the caller's conversation summaries.
type ListChatsController struct {
	UC *usecase.ListChatsUseCase
}

func NewListChatsController(pool *pgxpool.Pool) *ListChatsController {
	return &ListChatsController{
		UC: usecase.NewListChatsUseCase(adapter.NewPgChatRepository(pool)),
	}
}

func (h *ListChatsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		summaries, err := h.UC.Execute(ctx, usecase.ListChatsInput{ViewerID: id.UserID})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, summaries)
	}
}
