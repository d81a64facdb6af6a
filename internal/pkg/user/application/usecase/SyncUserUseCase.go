package usecase

import (
	"context"
	"fmt"
	"time"

	user "go-chatline/internal/pkg/user/domain"
	repository "go-chatline/internal/pkg/user/persistence/repository/port"
)

// SyncUserInput carries the identity claims to mirror into the local store.
type SyncUserInput struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SyncUserUseCase upserts the user row from token claims and stamps the
// last-activity timestamp. Every authenticated request funnels through this,
// so last_seen tracks real activity and presence falls out of it for free.
type SyncUserUseCase struct {
	Repo repository.UserRepository
	Now  func() time.Time
}

func NewSyncUserUseCase(repo repository.UserRepository) *SyncUserUseCase {
	return &SyncUserUseCase{Repo: repo, Now: time.Now}
}

func (uc *SyncUserUseCase) Execute(ctx context.Context, in SyncUserInput) error {
	if in.ID == "" {
		return fmt.Errorf("user id is required")
	}

	now := uc.Now().UTC()
	u := user.User{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		LastSeen:  &now,
	}
	if err := uc.Repo.Upsert(ctx, u); err != nil {
		return fmt.Errorf("sync user %s: %w", in.ID, err)
	}
	return nil
}
