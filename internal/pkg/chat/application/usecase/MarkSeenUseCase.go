package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "go-chatline/internal/pkg/chat/application/domain"
	"go-chatline/internal/pkg/chat/application/notify"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

// MarkSeenInput identifies the conversation and the acting viewer.
type MarkSeenInput struct {
	ConversationID string
	ViewerID       string
}

// MarkSeenUseCase bulk-transitions every SENT message addressed to the
// viewer to SEEN, then tells the counterpart. The update is one set-based
// statement, so reapplying is a no-op and a concurrent append either lands
// before the update and is included, or after and stays SENT.
type MarkSeenUseCase struct {
	Repo     repository.ChatRepository
	Notifier notify.Notifier
}

func NewMarkSeenUseCase(repo repository.ChatRepository, notifier notify.Notifier) *MarkSeenUseCase {
	return &MarkSeenUseCase{Repo: repo, Notifier: notifier}
}

func (uc *MarkSeenUseCase) Execute(ctx context.Context, in MarkSeenInput) error {
	if in.ConversationID == "" || in.ViewerID == "" {
		return fmt.Errorf("conversation_id and viewer_id are required")
	}

	conv, err := uc.Repo.FindConversation(ctx, in.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// The viewer is the recipient of the messages being read; the
	// counterpart gets the SEEN event.
	_, counterpartID, err := conv.Roles(in.ViewerID)
	if err != nil {
		return err
	}

	changed, err := uc.Repo.MarkMessagesSeen(ctx, conv.ID, in.ViewerID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Nothing transitioned means nothing to tell the counterpart.
	if changed > 0 {
		uc.Notifier.Dispatch(counterpartID, chat.NewSeenNotification(*conv, in.ViewerID, counterpartID))
	}
	return nil
}
