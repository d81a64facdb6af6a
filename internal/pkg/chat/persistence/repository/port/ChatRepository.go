package repository

import (
	"context"
	"errors"

	chat "go-chatline/internal/pkg/chat/application/domain"
)

// ErrNotFound signals that the requested conversation does not exist.
// Adapters translate their driver-specific no-rows errors into this one so
// use cases never see pgx internals.
var ErrNotFound = errors.New("chat repository: not found")

// ChatRepository defines persistence operations for the chat domain.
// Every call is transactionally consistent on its own; MarkMessagesSeen in
// particular is a single set-based update so it cannot lose against
// concurrent appends.
type ChatRepository interface {
	// CreateOrGetConversation returns the id of the conversation for the
	// unordered pair (a, b), creating it if absent. Concurrent calls for the
	// same pair converge on one id.
	CreateOrGetConversation(ctx context.Context, a, b string) (string, error)

	// FindConversation loads a conversation with both party snapshots.
	FindConversation(ctx context.Context, id string) (*chat.Conversation, error)

	// ListConversations returns every conversation the user takes part in,
	// most recently created first.
	ListConversations(ctx context.Context, userID string) ([]chat.Conversation, error)

	// MessagesAsc returns the conversation's messages oldest first, the
	// order message listings use.
	MessagesAsc(ctx context.Context, conversationID string) ([]chat.Message, error)

	// MessagesDesc returns the conversation's messages newest first, the
	// order summaries are derived from.
	MessagesDesc(ctx context.Context, conversationID string) ([]chat.Message, error)

	// SaveMessage persists a message and returns its sequence-assigned id.
	SaveMessage(ctx context.Context, m chat.Message) (int64, error)

	// MarkMessagesSeen bulk-transitions every SENT message addressed to
	// recipientID in the conversation to SEEN and reports how many rows
	// changed. Reapplying is a no-op.
	MarkMessagesSeen(ctx context.Context, conversationID, recipientID string) (int64, error)
}
