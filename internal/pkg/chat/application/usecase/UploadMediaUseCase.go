package usecase

import (
	"context"
	"errors"
	"fmt"

	storage "go-chatline/internal/infrastructure/storage/port"
	chat "go-chatline/internal/pkg/chat/application/domain"
	"go-chatline/internal/pkg/chat/application/notify"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

// UploadMediaInput carries a raw attachment for a conversation. AuthorID is
// the acting user; Filename is only consulted for its extension.
type UploadMediaInput struct {
	ConversationID string
	AuthorID       string
	Filename       string
	Data           []byte
}

// UploadMediaUseCase stores the blob first and only then persists the
// message referencing it, so a storage failure can never leave a message
// pointing at an unwritten blob. The notification carries the media bytes.
type UploadMediaUseCase struct {
	Repo     repository.ChatRepository
	Blobs    storage.BlobStore
	Notifier notify.Notifier
}

func NewUploadMediaUseCase(repo repository.ChatRepository, blobs storage.BlobStore, notifier notify.Notifier) *UploadMediaUseCase {
	return &UploadMediaUseCase{Repo: repo, Blobs: blobs, Notifier: notifier}
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, in UploadMediaInput) (*chat.Message, error) {
	if in.ConversationID == "" || in.AuthorID == "" {
		return nil, fmt.Errorf("conversation_id and author_id are required")
	}
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("media payload is empty")
	}

	conv, err := uc.Repo.FindConversation(ctx, in.ConversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	senderID, recipientID, err := conv.Roles(in.AuthorID)
	if err != nil {
		return nil, err
	}

	ref, err := uc.Blobs.Save(ctx, in.Data, senderID, in.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	kind := chat.DetectMediaType(in.Data)
	msg := chat.NewMediaMessage(conv.ID, senderID, recipientID, ref, kind)

	id, err := uc.Repo.SaveMessage(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	msg.ID = id

	uc.Notifier.Dispatch(recipientID, chat.NewMessageNotification(*conv, msg, in.Data))
	return &msg, nil
}
