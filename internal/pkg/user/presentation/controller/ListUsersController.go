package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cache "go-chatline/internal/infrastructure/cache/port"
	"go-chatline/internal/pkg/auth"
	"go-chatline/internal/pkg/user/application/usecase"
	"go-chatline/internal/pkg/user/persistence/repository/adapter"
)

// ListUsersController serves the contact directory: every user except the
// caller, each with a freshly derived online flag.
type ListUsersController struct {
	UC *usecase.ListUsersUseCase
}

func NewListUsersController(pool *pgxpool.Pool, c cache.Cache, ttl time.Duration) *ListUsersController {
	return &ListUsersController{
		UC: usecase.NewListUsersUseCase(adapter.NewPgUserRepository(pool), c, ttl, nil),
	}
}

func (h *ListUsersController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		entries, err := h.UC.Execute(ctx, usecase.ListUsersInput{ViewerID: id.UserID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}
