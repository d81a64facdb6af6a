package controller

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	storage "go-chatline/internal/infrastructure/storage/port"
	"go-chatline/internal/pkg/auth"
	"go-chatline/internal/pkg/chat/application/notify"
	"go-chatline/internal/pkg/chat/application/usecase"
	"go-chatline/internal/pkg/chat/persistence/repository/adapter"
)

// maxUploadBytes caps a single attachment.
const maxUploadBytes = 20 << 20

// UploadMediaController accepts a multipart attachment for a conversation.
type UploadMediaController struct {
	UC *usecase.UploadMediaUseCase
}

func NewUploadMediaController(pool *pgxpool.Pool, blobs storage.BlobStore, notifier notify.Notifier) *UploadMediaController {
	return &UploadMediaController{
		UC: usecase.NewUploadMediaUseCase(adapter.NewPgChatRepository(pool), blobs, notifier),
	}
}

func (h *UploadMediaController) Handle() gin.HandlerFunc {
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

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
			return
		}
		if header.Size > maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "attachment too large"})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read attachment"})
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read attachment"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		msg, err := h.UC.Execute(ctx, usecase.UploadMediaInput{
			ConversationID: chatID,
			AuthorID:       id.UserID,
			Filename:       header.Filename,
			Data:           data,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, toMessageResponse(*msg, nil))
	}
}
