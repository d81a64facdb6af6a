package chat

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MessageType classifies the content carried by a message.
type MessageType string

const (
	MessageTypeText  MessageType = "TEXT"
	MessageTypeImage MessageType = "IMAGE"
	MessageTypeAudio MessageType = "AUDIO"
	MessageTypeVideo MessageType = "VIDEO"
)

// MessageState is the read-state of a message. A message starts in SENT and
// only ever advances to SEEN, in bulk, never per-message and never back.
type MessageState string

const (
	MessageStateSent MessageState = "SENT"
	MessageStateSeen MessageState = "SEEN"
)

// Message is an immutable log entry in a conversation. IDs are assigned by a
// database sequence, so creation order within a conversation follows the id.
type Message struct {
	ID             int64        `db:"id"`
	ConversationID string       `db:"conversation_id"`
	SenderID       string       `db:"sender_id"`
	RecipientID    string       `db:"recipient_id"`
	Content        string       `db:"content"`
	MediaPath      string       `db:"media_path"`
	Type           MessageType  `db:"msg_type"`
	State          MessageState `db:"state"`
	CreatedAt      time.Time    `db:"created_at"`
}

// IsMedia reports whether the message carries an attachment rather than text.
func (m Message) IsMedia() bool {
	return m.Type != MessageTypeText
}

// NewTextMessage validates and shapes a text message ready to persist.
// The state is always SENT at creation.
func NewTextMessage(conversationID, senderID, recipientID, content string) (Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return Message{}, ErrEmptyMessage
	}
	return Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        trimmed,
		Type:           MessageTypeText,
		State:          MessageStateSent,
	}, nil
}

// NewMediaMessage shapes a media message referencing an already stored blob.
func NewMediaMessage(conversationID, senderID, recipientID, mediaPath string, kind MessageType) Message {
	return Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		MediaPath:      mediaPath,
		Type:           kind,
		State:          MessageStateSent,
	}
}

// DetectMediaType classifies raw upload bytes into a media message type by
// sniffing magic bytes. Anything that is not audio or video is treated as an
// image, which is the broadest bucket clients render inline.
func DetectMediaType(data []byte) MessageType {
	mime := mimetype.Detect(data).String()
	switch {
	case strings.HasPrefix(mime, "audio/"):
		return MessageTypeAudio
	case strings.HasPrefix(mime, "video/"):
		return MessageTypeVideo
	default:
		return MessageTypeImage
	}
}
