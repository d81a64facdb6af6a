package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_IsOnline_Within_Window(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	lastSeen := now.Add(-4 * time.Minute)
	req.True(IsOnline(&lastSeen, now))

	justNow := now
	req.True(IsOnline(&justNow, now))
}

func Test_IsOnline_Outside_Window(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	lastSeen := now.Add(-5 * time.Minute)
	req.False(IsOnline(&lastSeen, now), "exactly five minutes ago is offline")

	old := now.Add(-24 * time.Hour)
	req.False(IsOnline(&old, now))
}

func Test_IsOnline_Nil_LastSeen(t *testing.T) {
	require.False(t, IsOnline(nil, time.Now()))
}

func Test_User_DisplayName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	require.Equal(t, "Ada Lovelace", u.DisplayName())
}
