package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cacheport "go-chatline/internal/infrastructure/cache/port"
	qport "go-chatline/internal/infrastructure/queue/port"
	"go-chatline/internal/infrastructure/realtime"
	storage "go-chatline/internal/infrastructure/storage/port"
	"go-chatline/internal/pkg/auth"
	chathttp "go-chatline/internal/pkg/chat/presentation/http"
	"go-chatline/internal/pkg/chat/search"
	userhttp "go-chatline/internal/pkg/user/presentation/http"
)

// Deps bundles the shared infrastructure handed down to the HTTP layer.
type Deps struct {
	Pool         *pgxpool.Pool
	Queue        qport.Client
	Cache        cacheport.Cache
	Realtime     *realtime.Router
	Index        *search.Index
	Blobs        storage.BlobStore
	Verifier     *auth.Verifier
	UserCacheTTL time.Duration
}

// RegisterRoutes mounts all version 1 API routes under /api/v1. Every route
// sits behind the bearer-token middleware.
func RegisterRoutes(r *gin.Engine, d Deps) {
	v1 := r.Group("/api/v1")
	v1.Use(auth.Middleware(d.Verifier, d.Queue, nil))

	chathttp.RegisterRoutes(v1, d.Pool, d.Realtime, d.Index, d.Blobs)
	userhttp.RegisterRoutes(v1, d.Pool, d.Cache, d.UserCacheTTL)
}
