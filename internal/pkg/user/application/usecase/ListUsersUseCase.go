package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	cache "go-chatline/internal/infrastructure/cache/port"
	user "go-chatline/internal/pkg/user/domain"
	repository "go-chatline/internal/pkg/user/persistence/repository/port"
)

// DirectoryEntry is one row of the contact directory. Online is derived at
// read time and is never part of the cached payload.
type DirectoryEntry struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	LastSeen  *time.Time `json:"lastSeen,omitempty"`
	Online    bool       `json:"online"`
}

// ListUsersInput identifies the viewer, who is excluded from their own list.
type ListUsersInput struct {
	ViewerID string
}

// ListUsersUseCase lists every other user for the contact picker. The raw
// rows are cached briefly; presence is recomputed on every call so a stale
// cache can age a last_seen but never freeze an online flag.
type ListUsersUseCase struct {
	Repo  repository.UserRepository
	Cache cache.Cache
	TTL   time.Duration
	Log   *slog.Logger
	Now   func() time.Time
}

func NewListUsersUseCase(repo repository.UserRepository, c cache.Cache, ttl time.Duration, log *slog.Logger) *ListUsersUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &ListUsersUseCase{Repo: repo, Cache: c, TTL: ttl, Log: log, Now: time.Now}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, in ListUsersInput) ([]DirectoryEntry, error) {
	if in.ViewerID == "" {
		return nil, fmt.Errorf("viewer_id is required")
	}

	users, err := uc.load(ctx, in.ViewerID)
	if err != nil {
		return nil, err
	}

	now := uc.Now().UTC()
	return lo.Map(users, func(u user.User, _ int) DirectoryEntry {
		return DirectoryEntry{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			LastSeen:  u.LastSeen,
			Online:    u.Online(now),
		}
	}), nil
}

func (uc *ListUsersUseCase) load(ctx context.Context, viewerID string) ([]user.User, error) {
	key := directoryKey(viewerID)

	if uc.Cache != nil {
		if raw, err := uc.Cache.Get(ctx, key); err == nil {
			var users []user.User
			if err := json.Unmarshal([]byte(raw), &users); err == nil {
				return users, nil
			}
			uc.Log.Warn("directory cache entry unreadable", "key", key)
		} else if !errors.Is(err, cache.ErrMiss) {
			uc.Log.Warn("directory cache unavailable", "error", err)
		}
	}

	users, err := uc.Repo.ListExcept(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	if uc.Cache != nil && uc.TTL > 0 {
		if raw, err := json.Marshal(users); err == nil {
			if err := uc.Cache.Set(ctx, key, string(raw), uc.TTL); err != nil {
				uc.Log.Warn("directory cache write failed", "error", err)
			}
		}
	}
	return users, nil
}

func directoryKey(viewerID string) string {
	return "directory:except:" + viewerID
}
