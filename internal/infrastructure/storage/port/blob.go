package port

import "context"

// BlobStore is the contract for raw media storage. Implementations must be
// concurrency-safe.
//
// Read deliberately never returns an error: a missing or unreadable blob
// yields an empty slice, since message listings must not fail because one
// attachment rotted away.
type BlobStore interface {
	// Save persists data under the owner's namespace and returns an opaque
	// reference usable with Read. The filename is only consulted for its
	// extension.
	Save(ctx context.Context, data []byte, ownerID string, filename string) (string, error)

	// Read fetches the blob bytes for a reference previously returned by
	// Save. Returns an empty slice when the reference is blank, missing or
	// unreadable.
	Read(ref string) []byte
}
