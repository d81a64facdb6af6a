package realtime

import (
	"log/slog"
	"sync"
)

// Router tracks every active websocket session keyed by user and delivers
// payloads to the sessions of a single addressed user. There is no broadcast:
// an event always names its target, and a target without sessions is a
// silent drop. A user may hold several concurrent sessions (e.g. two tabs);
// all of them receive the event.
type Router struct {
	mu       sync.RWMutex
	sessions map[string]*Connection            // sessionID -> connection
	users    map[string]map[string]*Connection // userID -> sessionID -> connection

	log *slog.Logger
}

// NewRouter constructs an initialized Router.
func NewRouter(log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		sessions: make(map[string]*Connection),
		users:    make(map[string]map[string]*Connection),
		log:      log,
	}
}

// Attach registers a connection under its user and starts its write loop.
func (r *Router) Attach(conn *Connection) {
	r.mu.Lock()
	r.sessions[conn.ID] = conn
	bucket := r.users[conn.UserID]
	if bucket == nil {
		bucket = make(map[string]*Connection)
		r.users[conn.UserID] = bucket
	}
	bucket[conn.ID] = conn
	r.mu.Unlock()

	conn.Start()
}

// Detach removes a connection if it is still tracked. It does not close the
// underlying socket; the caller owns that.
func (r *Router) Detach(conn *Connection) {
	r.mu.Lock()
	r.detachLocked(conn.ID)
	r.mu.Unlock()
}

// Deliver writes payload to every session of the addressed user and reports
// how many sessions accepted it. Zero means the user has no live session and
// the event is dropped; callers treat that as expected behavior, not an
// error, and must not retry or persist the payload.
func (r *Router) Deliver(userID string, payload []byte) int {
	r.mu.RLock()
	bucket := r.users[userID]
	conns := make([]*Connection, 0, len(bucket))
	for _, conn := range bucket {
		conns = append(conns, conn)
	}
	r.mu.RUnlock()

	if len(conns) == 0 {
		r.log.Debug("no active session, event dropped", "user_id", userID)
		return 0
	}

	delivered := 0
	for _, conn := range conns {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	return delivered
}

// SessionCount reports the number of live sessions for a user.
func (r *Router) SessionCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users[userID])
}

// Close terminates all tracked connections and clears router state.
func (r *Router) Close() {
	r.mu.Lock()
	conns := make([]*Connection, 0, len(r.sessions))
	for _, conn := range r.sessions {
		conns = append(conns, conn)
	}
	r.sessions = make(map[string]*Connection)
	r.users = make(map[string]map[string]*Connection)
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close(1001, "router shutdown")
	}
}

func (r *Router) detachLocked(sessionID string) {
	conn, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	delete(r.sessions, sessionID)

	bucket := r.users[conn.UserID]
	delete(bucket, sessionID)
	if len(bucket) == 0 {
		delete(r.users, conn.UserID)
	}
}
