package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
	"go-chatline/internal/pkg/chat/search"
)

// MessageSearcher runs full-text queries over one conversation's messages.
type MessageSearcher interface {
	Search(ctx context.Context, conversationID, query string, limit int) ([]search.Hit, error)
}

// SearchMessagesInput carries a full-text query scoped to a conversation.
type SearchMessagesInput struct {
	ConversationID string
	ViewerID       string
	Query          string
	Limit          int
}

// SearchMessagesUseCase checks membership, then defers to the index.
type SearchMessagesUseCase struct {
	Repo  repository.ChatRepository
	Index MessageSearcher
}

func NewSearchMessagesUseCase(repo repository.ChatRepository, index MessageSearcher) *SearchMessagesUseCase {
	return &SearchMessagesUseCase{Repo: repo, Index: index}
}

func (uc *SearchMessagesUseCase) Execute(ctx context.Context, in SearchMessagesInput) ([]search.Hit, error) {
	if in.ConversationID == "" || in.ViewerID == "" || in.Query == "" {
		return nil, fmt.Errorf("conversation_id, viewer_id and query are required")
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

	hits, err := uc.Index.Search(ctx, conv.ID, in.Query, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return hits, nil
}
