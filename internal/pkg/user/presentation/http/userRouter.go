package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cache "go-chatline/internal/infrastructure/cache/port"
	"go-chatline/internal/pkg/user/presentation/controller"
)

// RegisterRoutes registers user-related HTTP endpoints under the given group.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, c cache.Cache, cacheTTL time.Duration) {
	listCtl := controller.NewListUsersController(pool, c, cacheTTL)

	// GET /api/v1/user -> directory of every other user with presence
	g.GET("/user", listCtl.Handle())
}
