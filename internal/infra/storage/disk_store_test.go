package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"chatline/config"
	"chatline/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiskStore(t *testing.T) (*diskStore, string) {
	t.Helper()

	baseDir := t.TempDir()
	cfg := &config.Config{}
	cfg.Upload.BaseDir = baseDir

	store, err := NewDiskStore(cfg)
	require.NoError(t, err)

	return store.(*diskStore), baseDir
}

func TestNewDiskStore_CreatesCategoryDirectories(t *testing.T) {
	_, baseDir := newTestDiskStore(t)

	for _, category := range entity.MediaCategories() {
		info, err := os.Stat(filepath.Join(baseDir, string(category)))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestNewDiskStore_EmptyBaseDir(t *testing.T) {
	store, err := NewDiskStore(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestDiskStore_Save(t *testing.T) {
	store, baseDir := newTestDiskStore(t)
	payload := []byte("fake image bytes")

	filename, err := store.Save(context.Background(), entity.CategoryImage, "holiday photo.jpg", payload)
	require.NoError(t, err)
	assert.NotEmpty(t, filename)
	assert.Contains(t, filename, "holidayphoto.jpg")

	written, err := os.ReadFile(filepath.Join(baseDir, "image", filename))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestDiskStore_SaveGeneratesDistinctNames(t *testing.T) {
	store, _ := newTestDiskStore(t)

	first, err := store.Save(context.Background(), entity.CategoryGeneric, "notes.txt", []byte("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), entity.CategoryGeneric, "notes.txt", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStore_SaveAsOverwrites(t *testing.T) {
	store, baseDir := newTestDiskStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAs(ctx, entity.CategoryImage, "avatar_1.png", []byte("old")))
	require.NoError(t, store.SaveAs(ctx, entity.CategoryImage, "avatar_1.png", []byte("new")))

	written, err := os.ReadFile(filepath.Join(baseDir, "image", "avatar_1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), written)
}

func TestDiskStore_Remove(t *testing.T) {
	store, baseDir := newTestDiskStore(t)
	ctx := context.Background()

	filename, err := store.Save(ctx, entity.CategoryAudio, "song.mp3", []byte("audio"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, entity.CategoryAudio, filename))
	_, err = os.Stat(filepath.Join(baseDir, "audio", filename))
	assert.True(t, os.IsNotExist(err))

	// Removing an already-missing file is not an error.
	assert.NoError(t, store.Remove(ctx, entity.CategoryAudio, filename))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "clean name unchanged", in: "photo-2024_final.jpg", want: "photo-2024_final.jpg"},
		{name: "spaces stripped", in: "my photo.jpg", want: "myphoto.jpg"},
		{name: "path separators stripped", in: "../../etc/passwd", want: "....etcpasswd"},
		{name: "unicode stripped", in: "fötö.png", want: "ft.png"},
		{name: "fully hostile name falls back", in: "<>|/\\", want: "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}
