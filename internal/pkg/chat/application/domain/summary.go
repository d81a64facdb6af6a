package chat

import (
	"time"

	"go-chatline/internal/pkg/user/domain"
)

// AttachmentPreview is the literal shown in place of non-text content.
const AttachmentPreview = "Attachment"

// Summary is the per-viewer projection of a conversation used by chat lists.
type Summary struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	UnreadCount       int        `json:"unreadCount"`
	LastMessage       string     `json:"lastMessage"`
	LastMessageTime   *time.Time `json:"lastMessageTime"`
	CounterpartOnline bool       `json:"isRecipientOnline"`
	SenderID          string     `json:"senderId"`
	RecipientID       string     `json:"recipientId"`
}

// Summarize derives the viewer-facing summary from an immutable snapshot of
// a conversation and its messages ordered newest first. The unread count is
// the number of SENT messages addressed to the viewer; the preview is the
// newest message's content, or the attachment marker when it is not text.
// The counterpart's online flag is recomputed against now on every call.
func Summarize(c Conversation, messagesDesc []Message, viewerID string, now time.Time) (Summary, error) {
	counterpart, ok := c.Counterpart(viewerID)
	if !ok {
		return Summary{}, ErrNotParticipant
	}

	unread := 0
	for _, m := range messagesDesc {
		if m.RecipientID == viewerID && m.State == MessageStateSent {
			unread++
		}
	}

	s := Summary{
		ID:                c.ID,
		Name:              counterpart.DisplayName(),
		UnreadCount:       unread,
		CounterpartOnline: user.IsOnline(counterpart.LastSeen, now),
		SenderID:          viewerID,
		RecipientID:       counterpart.ID,
	}

	if len(messagesDesc) > 0 {
		newest := messagesDesc[0]
		if newest.IsMedia() {
			s.LastMessage = AttachmentPreview
		} else {
			s.LastMessage = newest.Content
		}
		createdAt := newest.CreatedAt
		s.LastMessageTime = &createdAt
	}

	return s, nil
}
