package chat

// NotificationType is the event kind carried to a connected client.
type NotificationType string

const (
	NotificationSeen    NotificationType = "SEEN"
	NotificationMessage NotificationType = "MESSAGE"
	NotificationImage   NotificationType = "IMAGE"
	NotificationAudio   NotificationType = "AUDIO"
	NotificationVideo   NotificationType = "VIDEO"
)

// Notification is the ephemeral event delivered over the realtime channel.
// It is never persisted; clients that miss it recover by re-fetching.
type Notification struct {
	ChatID      string           `json:"chatId"`
	Content     string           `json:"content,omitempty"`
	SenderID    string           `json:"senderId"`
	RecipientID string           `json:"recipientId"`
	ChatName    string           `json:"chatName,omitempty"`
	MessageType MessageType      `json:"messageType,omitempty"`
	Type        NotificationType `json:"type"`
	Media       []byte           `json:"media,omitempty"`
}

// notificationKind maps a message type onto the matching event kind.
func notificationKind(t MessageType) NotificationType {
	switch t {
	case MessageTypeImage:
		return NotificationImage
	case MessageTypeAudio:
		return NotificationAudio
	case MessageTypeVideo:
		return NotificationVideo
	default:
		return NotificationMessage
	}
}

// NewMessageNotification assembles the event describing a freshly appended
// message. The chat name is computed relative to the sender, so the
// receiving client sees the sender's counterpart-name logic applied. Media
// bytes are attached for non-text messages.
func NewMessageNotification(c Conversation, m Message, media []byte) Notification {
	n := Notification{
		ChatID:      c.ID,
		Content:     m.Content,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		ChatName:    c.NameFor(m.SenderID),
		MessageType: m.Type,
		Type:        notificationKind(m.Type),
	}
	if m.IsMedia() {
		n.Media = media
	}
	return n
}

// NewSeenNotification assembles the event telling the counterpart that the
// acting viewer has read their messages. It carries no content.
func NewSeenNotification(c Conversation, actingID, counterpartID string) Notification {
	return Notification{
		ChatID:      c.ID,
		SenderID:    actingID,
		RecipientID: counterpartID,
		Type:        NotificationSeen,
	}
}
