package notify

import (
	"encoding/json"
	"log/slog"

	"go-chatline/internal/infrastructure/realtime"
	chat "go-chatline/internal/pkg/chat/application/domain"
)

// Notifier pushes an ephemeral event toward one user. Implementations are
// fire-and-forget: a target without a live session is silently skipped and
// the triggering action is never blocked or failed on delivery.
type Notifier interface {
	Dispatch(userID string, n chat.Notification)
}

// WebSocketNotifier delivers notifications over the realtime router.
type WebSocketNotifier struct {
	router *realtime.Router
	log    *slog.Logger
}

func NewWebSocketNotifier(router *realtime.Router, log *slog.Logger) *WebSocketNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &WebSocketNotifier{router: router, log: log}
}

// Ensure interface compliance at compile time
var _ Notifier = (*WebSocketNotifier)(nil)

func (w *WebSocketNotifier) Dispatch(userID string, n chat.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		w.log.Error("failed to encode notification", "type", n.Type, "chat_id", n.ChatID, "error", err)
		return
	}
	if delivered := w.router.Deliver(userID, payload); delivered == 0 {
		// Expected when the user is offline; they will catch up by
		// re-fetching on reconnect.
		w.log.Debug("notification dropped, no session", "user_id", userID, "type", n.Type)
		return
	}
	w.log.Debug("notification delivered", "user_id", userID, "type", n.Type, "chat_id", n.ChatID)
}
