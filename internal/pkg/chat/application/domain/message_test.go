package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewTextMessage_Starts_Sent(t *testing.T) {
	req := require.New(t)

	m, err := NewTextMessage("conv-1", "alice", "bob", "  hello  ")
	req.NoError(err)
	req.Equal(MessageStateSent, m.State)
	req.Equal(MessageTypeText, m.Type)
	req.Equal("hello", m.Content, "content is trimmed")
	req.Equal("alice", m.SenderID)
	req.Equal("bob", m.RecipientID)
	req.False(m.IsMedia())
}

func Test_NewTextMessage_Rejects_Blank_Content(t *testing.T) {
	_, err := NewTextMessage("conv-1", "alice", "bob", "   \n\t ")
	require.ErrorIs(t, err, ErrEmptyMessage)
}

func Test_NewMediaMessage_Starts_Sent(t *testing.T) {
	req := require.New(t)

	m := NewMediaMessage("conv-1", "bob", "alice", "users/bob/17000.png", MessageTypeImage)
	req.Equal(MessageStateSent, m.State)
	req.True(m.IsMedia())
	req.Empty(m.Content)
}

func Test_DetectMediaType(t *testing.T) {
	req := require.New(t)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	req.Equal(MessageTypeImage, DetectMediaType(png))

	wav := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	req.Equal(MessageTypeAudio, DetectMediaType(wav))

	mp4 := []byte("\x00\x00\x00\x1cftypisom\x00\x00\x02\x00isomiso2avc1mp41")
	req.Equal(MessageTypeVideo, DetectMediaType(mp4))

	// Unknown payloads fall back to the image bucket.
	req.Equal(MessageTypeImage, DetectMediaType([]byte("plain text")))
}
