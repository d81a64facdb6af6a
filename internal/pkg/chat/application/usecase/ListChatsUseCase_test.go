package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	chat "go-chatline/internal/pkg/chat/application/domain"
)

func Test_ListChats_Counts_Unread_For_The_Viewer(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()
	send := NewSendMessageUseCase(repo, &recordingNotifier{}, &recordingIndexer{}, nil)

	for _, content := range []string{"one", "two", "three"} {
		_, err := send.Execute(context.Background(), SendMessageInput{
			ConversationID: conv.ID, AuthorID: "alice", Content: content,
		})
		req.NoError(err)
	}

	uc := NewListChatsUseCase(repo)

	bobView, err := uc.Execute(context.Background(), ListChatsInput{ViewerID: "bob"})
	req.NoError(err)
	req.Len(bobView, 1)
	req.Equal(3, bobView[0].UnreadCount)
	req.Equal("three", bobView[0].LastMessage)
	req.Equal("Alice Almeida", bobView[0].Name)

	// The sender's own unsent-to-them messages are not unread.
	aliceView, err := uc.Execute(context.Background(), ListChatsInput{ViewerID: "alice"})
	req.NoError(err)
	req.Len(aliceView, 1)
	req.Equal(0, aliceView[0].UnreadCount)
	req.Equal("Bob Barbosa", aliceView[0].Name)
}

func Test_ListChats_Unread_Drops_To_Zero_After_Seen(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()
	send := NewSendMessageUseCase(repo, &recordingNotifier{}, &recordingIndexer{}, nil)
	_, err := send.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID, AuthorID: "alice", Content: "ping",
	})
	req.NoError(err)

	seen := NewMarkSeenUseCase(repo, &recordingNotifier{})
	req.NoError(seen.Execute(context.Background(), MarkSeenInput{ConversationID: conv.ID, ViewerID: "bob"}))

	uc := NewListChatsUseCase(repo)
	view, err := uc.Execute(context.Background(), ListChatsInput{ViewerID: "bob"})
	req.NoError(err)
	req.Len(view, 1)
	req.Equal(0, view[0].UnreadCount)
}

func Test_ListChats_Media_Preview_Reads_Attachment(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()
	upload := NewUploadMediaUseCase(repo, newFakeBlobStore(), &recordingNotifier{})
	_, err := upload.Execute(context.Background(), UploadMediaInput{
		ConversationID: conv.ID, AuthorID: "alice", Filename: "cat.png", Data: pngBytes,
	})
	req.NoError(err)

	uc := NewListChatsUseCase(repo)
	view, err := uc.Execute(context.Background(), ListChatsInput{ViewerID: "bob"})
	req.NoError(err)
	req.Len(view, 1)
	req.Equal(chat.AttachmentPreview, view[0].LastMessage)
}

func Test_ListChats_Empty_For_Unknown_Viewer(t *testing.T) {
	req := require.New(t)
	repo, _ := seedAliceBob()
	uc := NewListChatsUseCase(repo)

	view, err := uc.Execute(context.Background(), ListChatsInput{ViewerID: "mallory"})
	req.NoError(err)
	req.Empty(view)
}
