package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
	userrepo "go-chatline/internal/pkg/user/persistence/repository/port"
)

// CreateChatInput carries the two parties of the conversation to open.
// SenderID is the acting (authenticated) user.
type CreateChatInput struct {
	SenderID    string
	RecipientID string
}

// CreateChatUseCase opens the conversation for an unordered pair of users,
// returning the existing one when the pair already talked. The repository
// guarantees at most one conversation per pair even under concurrent calls.
type CreateChatUseCase struct {
	Repo  repository.ChatRepository
	Users userrepo.UserRepository
}

func NewCreateChatUseCase(repo repository.ChatRepository, users userrepo.UserRepository) *CreateChatUseCase {
	return &CreateChatUseCase{Repo: repo, Users: users}
}

// Execute returns the conversation id for the pair, creating it if needed.
func (uc *CreateChatUseCase) Execute(ctx context.Context, in CreateChatInput) (string, error) {
	if in.SenderID == "" || in.RecipientID == "" {
		return "", fmt.Errorf("sender_id and recipient_id are required")
	}
	if in.SenderID == in.RecipientID {
		return "", chat.ErrSameParty
	}

	// Both parties must exist before a thread between them can.
	for _, id := range []string{in.SenderID, in.RecipientID} {
		if _, err := uc.Users.FindByPublicID(ctx, id); err != nil {
			if errors.Is(err, userrepo.ErrNotFound) {
				return "", fmt.Errorf("%w: user %s", userrepo.ErrNotFound, id)
			}
			return "", fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	id, err := uc.Repo.CreateOrGetConversation(ctx, in.SenderID, in.RecipientID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return id, nil
}
