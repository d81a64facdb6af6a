package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	storage "go-chatline/internal/infrastructure/storage/port"
	"go-chatline/internal/pkg/auth"
	chat "go-chatline/internal/pkg/chat/application/domain"
	"go-chatline/internal/pkg/chat/application/usecase"
	"go-chatline/internal/pkg/chat/persistence/repository/adapter"
)

// GetMessageController returns a conversation's full thread, oldest first.
// Media messages are hydrated with their blob bytes so clients render
// attachments without a second round trip.
type GetMessageController struct {
	UC    *usecase.GetMessageUseCase
	Blobs storage.BlobStore
}

func NewGetMessageController(pool *pgxpool.Pool, blobs storage.BlobStore) *GetMessageController {
	return &GetMessageController{
		UC:    usecase.NewGetMessageUseCase(adapter.NewPgChatRepository(pool)),
		Blobs: blobs,
	}
}

type messageResponse struct {
	ID             int64             `json:"id"`
	ConversationID string            `json:"conversationId"`
	SenderID       string            `json:"senderId"`
	RecipientID    string            `json:"recipientId"`
	Content        string            `json:"content,omitempty"`
	Type           chat.MessageType  `json:"type"`
	State          chat.MessageState `json:"state"`
	CreatedAt      time.Time         `json:"createdAt"`
	Media          []byte            `json:"media,omitempty"`
}

func toMessageResponse(m chat.Message, media []byte) messageResponse {
	return messageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		RecipientID:    m.RecipientID,
		Content:        m.Content,
		Type:           m.Type,
		State:          m.State,
		CreatedAt:      m.CreatedAt,
		Media:          media,
	}
}

func (h *GetMessageController) Handle() gin.HandlerFunc {
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

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		msgs, err := h.UC.Execute(ctx, usecase.GetMessageInput{
			ConversationID: chatID,
			ViewerID:       id.UserID,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		out := lo.Map(msgs, func(m chat.Message, _ int) messageResponse {
			var media []byte
			if m.IsMedia() {
				media = h.Blobs.Read(m.MediaPath)
			}
			return toMessageResponse(m, media)
		})
		c.JSON(http.StatusOK, out)
	}
}
