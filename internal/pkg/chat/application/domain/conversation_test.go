package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoPartyConversation() Conversation {
	return Conversation{
		ID:        "conv-1",
		Sender:    Party{ID: "alice", FirstName: "Alice", LastName: "Archer"},
		Recipient: Party{ID: "bob", FirstName: "Bob", LastName: "Baker"},
	}
}

func Test_Roles_Resolves_Relative_To_Actor(t *testing.T) {
	req := require.New(t)
	c := twoPartyConversation()

	sender, recipient, err := c.Roles("alice")
	req.NoError(err)
	req.Equal("alice", sender)
	req.Equal("bob", recipient)

	sender, recipient, err = c.Roles("bob")
	req.NoError(err)
	req.Equal("bob", sender)
	req.Equal("alice", recipient)
}

func Test_Roles_Rejects_Strangers(t *testing.T) {
	c := twoPartyConversation()
	_, _, err := c.Roles("mallory")
	require.ErrorIs(t, err, ErrNotParticipant)
}

func Test_NameFor_Is_Counterpart_Name(t *testing.T) {
	req := require.New(t)
	c := twoPartyConversation()

	req.Equal("Bob Baker", c.NameFor("alice"))
	req.Equal("Alice Archer", c.NameFor("bob"))
	req.Empty(c.NameFor("mallory"))
}

func Test_HasParticipant(t *testing.T) {
	req := require.New(t)
	c := twoPartyConversation()

	req.True(c.HasParticipant("alice"))
	req.True(c.HasParticipant("bob"))
	req.False(c.HasParticipant("mallory"))
}
