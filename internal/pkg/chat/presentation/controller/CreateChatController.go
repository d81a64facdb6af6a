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
	useradapter "go-chatline/internal/pkg/user/persistence/repository/adapter"
)

// CreateChatController handles the chat creation endpoint.
// One controller per endpoint.
type CreateChatController struct {
	UC *usecase.CreateChatUseCase
}

func NewCreateChatController(pool *pgxpool.Pool) *CreateChatController {
	return &CreateChatController{
		UC: usecase.NewCreateChatUseCase(
			adapter.NewPgChatRepository(pool),
			useradapter.NewPgUserRepository(pool),
		),
	}
}

type createChatRequest struct {
	RecipientID string `json:"recipientId" binding:"required"`
}

func (h *CreateChatController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		var req createChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		convID, err := h.UC.Execute(ctx, usecase.CreateChatInput{
			SenderID:    id.UserID,
			RecipientID: req.RecipientID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": convID})
	}
}
