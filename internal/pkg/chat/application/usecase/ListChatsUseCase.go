package usecase

import (
	"context"
	"fmt"
	"time"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

// ListChatsInput identifies the viewer whose chat list is requested.
type ListChatsInput struct {
	ViewerID string
}

// ListChatsUseCase derives the viewer's conversation summaries. Each summary
// is a pure projection over the (conversation, messages, viewer) snapshot;
// presence flags are recomputed at call time.
type ListChatsUseCase struct {
	Repo repository.ChatRepository
}

func NewListChatsUseCase(repo repository.ChatRepository) *ListChatsUseCase {
	return &ListChatsUseCase{Repo: repo}
}

func (uc *ListChatsUseCase) Execute(ctx context.Context, in ListChatsInput) ([]chat.Summary, error) {
	if in.ViewerID == "" {
		return nil, fmt.Errorf("viewer_id is required")
	}

	convs, err := uc.Repo.ListConversations(ctx, in.ViewerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	now := time.Now().UTC()
	summaries := make([]chat.Summary, 0, len(convs))
	for _, conv := range convs {
		messages, err := uc.Repo.MessagesDesc(ctx, conv.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		summary, err := chat.Summarize(conv, messages, in.ViewerID, now)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
