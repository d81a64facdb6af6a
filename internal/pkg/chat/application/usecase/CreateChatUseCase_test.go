package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	chat "go-chatline/internal/pkg/chat/application/domain"
	userrepo "go-chatline/internal/pkg/user/persistence/repository/port"
)

func Test_CreateChat_Returns_Same_Conversation_For_Both_Orders(t *testing.T) {
	req := require.New(t)
	uc := NewCreateChatUseCase(newFakeChatRepo(), newFakeUserRepo("alice", "bob"))

	first, err := uc.Execute(context.Background(), CreateChatInput{SenderID: "alice", RecipientID: "bob"})
	req.NoError(err)
	req.NotEmpty(first)

	second, err := uc.Execute(context.Background(), CreateChatInput{SenderID: "bob", RecipientID: "alice"})
	req.NoError(err)
	req.Equal(first, second)
}

func Test_CreateChat_Rejects_Self_Conversation(t *testing.T) {
	req := require.New(t)
	uc := NewCreateChatUseCase(newFakeChatRepo(), newFakeUserRepo("alice"))

	_, err := uc.Execute(context.Background(), CreateChatInput{SenderID: "alice", RecipientID: "alice"})
	req.ErrorIs(err, chat.ErrSameParty)
}

func Test_CreateChat_Requires_Both_Users_To_Exist(t *testing.T) {
	req := require.New(t)
	uc := NewCreateChatUseCase(newFakeChatRepo(), newFakeUserRepo("alice"))

	_, err := uc.Execute(context.Background(), CreateChatInput{SenderID: "alice", RecipientID: "ghost"})
	req.ErrorIs(err, userrepo.ErrNotFound)
}

func Test_CreateChat_Requires_Both_Ids(t *testing.T) {
	req := require.New(t)
	uc := NewCreateChatUseCase(newFakeChatRepo(), newFakeUserRepo("alice"))

	_, err := uc.Execute(context.Background(), CreateChatInput{SenderID: "alice"})
	req.Error(err)
}
