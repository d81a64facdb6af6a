package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	chat "go-chatline/internal/pkg/chat/application/domain"
	"go-chatline/internal/pkg/chat/application/notify"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

// MessageIndexer receives persisted text messages for full-text indexing.
// Indexing is best-effort and never fails the message flow.
type MessageIndexer interface {
	Add(m chat.Message) error
}

// SendMessageInput carries the data to append a text message. AuthorID is
// the acting user; the recipient is resolved from the conversation.
type SendMessageInput struct {
	ConversationID string
	AuthorID       string
	Content        string
}

// SendMessageUseCase appends a text message in SENT state, indexes it and
// notifies the counterpart's live sessions.
type SendMessageUseCase struct {
	Repo     repository.ChatRepository
	Notifier notify.Notifier
	Index    MessageIndexer
	Log      *slog.Logger
}

func NewSendMessageUseCase(repo repository.ChatRepository, notifier notify.Notifier, index MessageIndexer, log *slog.Logger) *SendMessageUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &SendMessageUseCase{Repo: repo, Notifier: notifier, Index: index, Log: log}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	if in.ConversationID == "" || in.AuthorID == "" {
		return nil, fmt.Errorf("conversation_id and author_id are required")
	}

	conv, err := uc.loadConversation(ctx, in.ConversationID)
	if err != nil {
		return nil, err
	}

	senderID, recipientID, err := conv.Roles(in.AuthorID)
	if err != nil {
		return nil, err
	}

	msg, err := chat.NewTextMessage(conv.ID, senderID, recipientID, in.Content)
	if err != nil {
		return nil, err
	}

	id, err := uc.Repo.SaveMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	if err := uc.Index.Add(msg); err != nil {
		uc.Log.Warn("message not indexed", "message_id", msg.ID, "error", err)
	}

	uc.Notifier.Dispatch(recipientID, chat.NewMessageNotification(*conv, msg, nil))
	return &msg, nil
}

func (uc *SendMessageUseCase) loadConversation(ctx context.Context, id string) (*chat.Conversation, error) {
	conv, err := uc.Repo.FindConversation(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return conv, nil
}
