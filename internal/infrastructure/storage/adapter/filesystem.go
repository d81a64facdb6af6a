package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-chatline/internal/infrastructure/storage/port"
)

// FilesystemStore keeps media blobs on local disk under
// <root>/users/<ownerID>/<unix-millis><ext>.
type FilesystemStore struct {
	root string
	log  *slog.Logger

	// now is swappable in tests to pin filenames.
	now func() time.Time
}

// NewFilesystemStore constructs a store rooted at dir.
func NewFilesystemStore(dir string, log *slog.Logger) *FilesystemStore {
	if log == nil {
		log = slog.Default()
	}
	return &FilesystemStore{root: dir, log: log, now: time.Now}
}

// Ensure interface compliance at compile time
var _ port.BlobStore = (*FilesystemStore)(nil)

func (s *FilesystemStore) Save(ctx context.Context, data []byte, ownerID string, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, "users", ownerID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("blob: create target folder: %w", err)
	}

	name := fmt.Sprintf("%d%s", s.now().UnixMilli(), fileExtension(filename))
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("blob: write file: %w", err)
	}
	s.log.Info("blob saved", "path", target, "bytes", len(data))
	return target, nil
}

// Read returns the blob bytes, or an empty slice when the reference is blank
// or the file cannot be read.
func (s *FilesystemStore) Read(ref string) []byte {
	if strings.TrimSpace(ref) == "" {
		return []byte{}
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		s.log.Warn("blob not readable", "path", ref, "error", err)
		return []byte{}
	}
	return data
}

func fileExtension(filename string) string {
	ext := filepath.Ext(filename)
	return strings.ToLower(ext)
}
