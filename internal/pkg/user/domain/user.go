package user

import "time"

// lastActiveWindow is how recent the last activity must be for a user to be
// considered online.
const lastActiveWindow = 5 * time.Minute

// User is an application user mirrored from the identity provider. The id is
// the stable public identifier issued by the IdP (token subject).
type User struct {
	ID        string     `db:"id"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Email     string     `db:"email"`
	LastSeen  *time.Time `db:"last_seen"`
	CreatedAt time.Time  `db:"created_at"`
}

// DisplayName is the user's human-readable name.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Online derives the user's presence at the given instant.
func (u User) Online(now time.Time) bool {
	return IsOnline(u.LastSeen, now)
}

// IsOnline reports whether a last-activity timestamp counts as online at
// the given instant. Presence is an observation, not a fact: it is derived
// on every read and never stored or cached.
func IsOnline(lastSeen *time.Time, now time.Time) bool {
	return lastSeen != nil && now.Sub(*lastSeen) < lastActiveWindow
}
