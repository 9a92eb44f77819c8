package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	res := LogsResource("acc1")
	require.NoError(t, fs.Save(ctx, res, []byte(`{"2024-06-03":{}}`)))

	got, err := fs.Load(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"2024-06-03":{}}`), got)
}

func TestFileStore_JSONResourcesGetExtension(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, AccountsResource(), []byte("[]")))
	require.NoError(t, fs.Save(ctx, BackupResource("acc1"), []byte("a,b\n")))

	_, err = os.Stat(filepath.Join(dir, "accounts.json"))
	assert.NoError(t, err)
	// Raw resources keep the extension carried by their key.
	_, err = os.Stat(filepath.Join(dir, "backup-acc1.csv"))
	assert.NoError(t, err)
}

func TestFileStore_LoadMissing(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(context.Background(), LogsResource("ghost"))
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	res := SettingsResource("acc1")

	require.NoError(t, fs.Save(ctx, res, []byte("old")))
	require.NoError(t, fs.Save(ctx, res, []byte("new")))

	got, err := fs.Load(ctx, res)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}
