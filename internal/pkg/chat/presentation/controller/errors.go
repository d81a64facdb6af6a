package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chat "go-chatline/internal/pkg/chat/application/domain"
	"go-chatline/internal/pkg/chat/application/usecase"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
	userrepo "go-chatline/internal/pkg/user/persistence/repository/port"
)

// respondError maps application errors onto HTTP statuses. Persistence and
// storage failures never leak their details to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, userrepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, chat.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant in this conversation"})
	case errors.Is(err, usecase.ErrPersistence), errors.Is(err, usecase.ErrStorage):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
