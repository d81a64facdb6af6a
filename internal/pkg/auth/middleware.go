package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	qport "go-chatline/internal/infrastructure/queue/port"
	"go-chatline/internal/pkg/user/application/task"
	"go-chatline/internal/pkg/user/application/usecase"
)

const identityKey = "auth.identity"

// Middleware verifies the bearer token on every request, stores the caller's
// identity in the request context and schedules a user mirror refresh. The
// refresh is best-effort; authentication never depends on the queue.
func Middleware(verifier *Verifier, queue qport.Client, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		id, err := verifier.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(identityKey, id)

		if queue != nil {
			err := task.EnqueueSyncUser(c.Request.Context(), queue, usecase.SyncUserInput{
				ID:        id.UserID,
				FirstName: id.FirstName,
				LastName:  id.LastName,
				Email:     id.Email,
			})
			if err != nil {
				log.Warn("user sync not enqueued", "user_id", id.UserID, "error", err)
			}
		}

		c.Next()
	}
}

// IdentityFrom returns the verified caller stored by Middleware.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// bearerToken pulls the token from the Authorization header, falling back to
// the access_token query parameter for websocket upgrades, where browsers
// cannot set headers.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return c.Query("access_token")
}
