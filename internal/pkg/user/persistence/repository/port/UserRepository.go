package repository

import (
	"context"
	"errors"

	user "go-chatline/internal/pkg/user/domain"
)

// ErrNotFound signals that no user matches the lookup.
var ErrNotFound = errors.New("user repository: not found")

// UserRepository defines persistence operations for the user mirror. Users
// originate in the identity provider; this store only keeps the synchronized
// copy plus the last-activity timestamp that presence is derived from.
type UserRepository interface {
	// Upsert creates or refreshes the user row keyed by the IdP public id.
	Upsert(ctx context.Context, u user.User) error

	// FindByPublicID loads a user by their stable public identifier.
	FindByPublicID(ctx context.Context, id string) (*user.User, error)

	// ListExcept returns all users except the given one, for the directory.
	ListExcept(ctx context.Context, userID string) ([]user.User, error)
}
