package chat

import (
	"errors"
	"time"
)

// Domain-level errors for chat behaviors
var (
	ErrNotParticipant = errors.New("chat: user is not a participant in the conversation")
	ErrSameParty      = errors.New("chat: conversation requires two distinct participants")
	ErrEmptyMessage   = errors.New("chat: empty message body")
)

// Party is a snapshot of one conversation participant, hydrated by the
// repository at load time. LastSeen feeds the derived online status.
type Party struct {
	ID        string     `db:"id"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	LastSeen  *time.Time `db:"last_seen"`
}

// DisplayName is the human-readable name shown for this party.
func (p Party) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// Conversation represents a 1:1 thread between two parties. Sender and
// Recipient record the creation-time roles only; every action re-resolves
// the roles relative to the acting user via Roles.
type Conversation struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Sender    Party
	Recipient Party
}

// HasParticipant tells whether userID is one of the two parties.
func (c Conversation) HasParticipant(userID string) bool {
	return c.Sender.ID == userID || c.Recipient.ID == userID
}

// Roles resolves the sender/recipient pair relative to the acting user:
// the actor is the sender of the action, the other party the recipient.
// Getting this backwards misroutes notifications, so every use case goes
// through here instead of reading the stored creation-time roles.
func (c Conversation) Roles(actingID string) (senderID string, recipientID string, err error) {
	switch actingID {
	case c.Sender.ID:
		return c.Sender.ID, c.Recipient.ID, nil
	case c.Recipient.ID:
		return c.Recipient.ID, c.Sender.ID, nil
	default:
		return "", "", ErrNotParticipant
	}
}

// Counterpart returns the party that is not viewerID. The boolean is false
// when viewerID is not a participant.
func (c Conversation) Counterpart(viewerID string) (Party, bool) {
	switch viewerID {
	case c.Sender.ID:
		return c.Recipient, true
	case c.Recipient.ID:
		return c.Sender, true
	default:
		return Party{}, false
	}
}

// NameFor computes the conversation display name for the given viewer,
// which is the counterpart's name.
func (c Conversation) NameFor(viewerID string) string {
	counterpart, ok := c.Counterpart(viewerID)
	if !ok {
		return ""
	}
	return counterpart.DisplayName()
}
