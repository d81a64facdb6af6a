package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

// GetMessageInput identifies a conversation and the viewer reading it.
type GetMessageInput struct {
	ConversationID string
	ViewerID       string
}

// GetMessageUseCase returns the conversation's messages oldest first, the
// order clients render a thread in. Only participants may read.
type GetMessageUseCase struct {
	Repo repository.ChatRepository
}

func NewGetMessageUseCase(repo repository.ChatRepository) *GetMessageUseCase {
	return &GetMessageUseCase{Repo: repo}
}

func (uc *GetMessageUseCase) Execute(ctx context.Context, in GetMessageInput) ([]chat.Message, error) {
	if in.ConversationID == "" || in.ViewerID == "" {
		return nil, fmt.Errorf("conversation_id and viewer_id are required")
	}

	conv, err := uc.Repo.FindConversation(ctx, in.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !conv.HasParticipant(in.ViewerID) {
		return nil, chat.ErrNotParticipant
	}

	msgs, err := uc.Repo.MessagesAsc(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return msgs, nil
}
