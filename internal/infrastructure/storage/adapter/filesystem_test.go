package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Save_And_Read_Roundtrip(t *testing.T) {
	req := require.New(t)
	store := NewFilesystemStore(t.TempDir(), nil)
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	ref, err := store.Save(context.Background(), data, "alice", "photo.PNG")
	req.NoError(err)
	req.Equal(filepath.Join(store.root, "users", "alice", "1700000000000.png"), ref)

	req.Equal(data, store.Read(ref))
}

func Test_Read_Missing_Returns_Empty(t *testing.T) {
	req := require.New(t)
	store := NewFilesystemStore(t.TempDir(), nil)

	req.Empty(store.Read(""))
	req.Empty(store.Read(filepath.Join(store.root, "nope.bin")))
}

func Test_Save_Without_Extension(t *testing.T) {
	req := require.New(t)
	store := NewFilesystemStore(t.TempDir(), nil)

	ref, err := store.Save(context.Background(), []byte("x"), "bob", "blob")
	req.NoError(err)
	req.Equal("", filepath.Ext(ref))
	req.Equal([]byte("x"), store.Read(ref))
}
