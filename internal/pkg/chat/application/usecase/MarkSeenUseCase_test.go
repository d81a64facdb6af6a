package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	chat "go-chatline/internal/pkg/chat/application/domain"
	repository "go-chatline/internal/pkg/chat/persistence/repository/port"
)

func Test_MarkSeen_Transitions_Only_Messages_Addressed_To_The_Viewer(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()
	send := NewSendMessageUseCase(repo, &recordingNotifier{}, &recordingIndexer{}, nil)

	for _, content := range []string{"one", "two", "three"} {
		_, err := send.Execute(context.Background(), SendMessageInput{
			ConversationID: conv.ID, AuthorID: "alice", Content: content,
		})
		req.NoError(err)
	}
	_, err := send.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID, AuthorID: "bob", Content: "reply",
	})
	req.NoError(err)

	notifier := &recordingNotifier{}
	uc := NewMarkSeenUseCase(repo, notifier)
	req.NoError(uc.Execute(context.Background(), MarkSeenInput{ConversationID: conv.ID, ViewerID: "bob"}))

	for _, m := range repo.sorted(conv.ID, true) {
		if m.RecipientID == "bob" {
			req.Equal(chat.MessageStateSeen, m.State)
		} else {
			// Bob's own outbound message stays SENT until alice reads it.
			req.Equal(chat.MessageStateSent, m.State)
		}
	}

	events := notifier.all()
	req.Len(events, 1)
	req.Equal("alice", events[0].userID)
	req.Equal(chat.NotificationSeen, events[0].event.Type)
	req.Equal("bob", events[0].event.SenderID)
	req.Empty(events[0].event.Content)
}

func Test_MarkSeen_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()
	send := NewSendMessageUseCase(repo, &recordingNotifier{}, &recordingIndexer{}, nil)
	_, err := send.Execute(context.Background(), SendMessageInput{
		ConversationID: conv.ID, AuthorID: "alice", Content: "hello",
	})
	req.NoError(err)

	notifier := &recordingNotifier{}
	uc := NewMarkSeenUseCase(repo, notifier)
	req.NoError(uc.Execute(context.Background(), MarkSeenInput{ConversationID: conv.ID, ViewerID: "bob"}))
	req.NoError(uc.Execute(context.Background(), MarkSeenInput{ConversationID: conv.ID, ViewerID: "bob"}))

	msgs := repo.sorted(conv.ID, true)
	req.Len(msgs, 1)
	req.Equal(chat.MessageStateSeen, msgs[0].State)

	// The no-op second pass must not emit a second SEEN event.
	req.Len(notifier.all(), 1)
}

func Test_MarkSeen_With_Nothing_Unread_Emits_No_Event(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()

	notifier := &recordingNotifier{}
	uc := NewMarkSeenUseCase(repo, notifier)
	req.NoError(uc.Execute(context.Background(), MarkSeenInput{ConversationID: conv.ID, ViewerID: "bob"}))
	req.Empty(notifier.all())
}

func Test_MarkSeen_Rejects_Non_Participant(t *testing.T) {
	req := require.New(t)
	repo, conv := seedAliceBob()
	uc := NewMarkSeenUseCase(repo, &recordingNotifier{})

	err := uc.Execute(context.Background(), MarkSeenInput{ConversationID: conv.ID, ViewerID: "mallory"})
	req.ErrorIs(err, chat.ErrNotParticipant)
}

func Test_MarkSeen_Unknown_Conversation(t *testing.T) {
	req := require.New(t)
	uc := NewMarkSeenUseCase(newFakeChatRepo(), &recordingNotifier{})

	err := uc.Execute(context.Background(), MarkSeenInput{ConversationID: "missing", ViewerID: "bob"})
	req.ErrorIs(err, repository.ErrNotFound)
}
