package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noir/pkg/adapters/fs"
	"github.com/aretw0/noir/pkg/core"
)

// setupConfig helps create a data directory config for testing.
// It returns the config and the root path of the data directory.
func setupConfig(t *testing.T, opts ...func(*fs.Config)) (fs.Config, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "data")
	cfg := fs.Config{Root: root}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, root
}

func TestNoteStore_Initialize(t *testing.T) {
	t.Run("Creates Directory if Missing", func(t *testing.T) {
		cfg, root := setupConfig(t)
		store := fs.NewNoteStore(cfg)

		require.NoError(t, store.Initialize(context.Background()))
		assert.DirExists(t, filepath.Join(root, fs.NotesDir))
	})

	t.Run("Fails if MustExist and Missing", func(t *testing.T) {
		cfg, _ := setupConfig(t, func(c *fs.Config) { c.MustExist = true })
		store := fs.NewNoteStore(cfg)

		if err := store.Initialize(context.Background()); err == nil {
			t.Error("expected Initialize to fail when directory is missing and MustExist=true")
		}
	})

	t.Run("ReadOnly Creates Nothing", func(t *testing.T) {
		cfg, root := setupConfig(t, func(c *fs.Config) { c.ReadOnly = true })
		store := fs.NewNoteStore(cfg)

		require.NoError(t, store.Initialize(context.Background()))
		assert.NoDirExists(t, root)
	})
}

func TestNoteStore_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		cfg, root := setupConfig(t)
		store := fs.NewNoteStore(cfg)

		content := "# Hello World\nBody text\n\n![img](abc.png)"
		require.NoError(t, store.Save(ctx, "2024-05-01", content))

		raw, err := os.ReadFile(filepath.Join(root, "notes", "2024-05-01.md"))
		require.NoError(t, err)
		assert.Equal(t, content, string(raw), "stored verbatim, no frontmatter")

		got, err := store.Load(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("Overwrite Replaces Whole Content", func(t *testing.T) {
		cfg, _ := setupConfig(t)
		store := fs.NewNoteStore(cfg)

		require.NoError(t, store.Save(ctx, "2024-05-01", "a long first version"))
		require.NoError(t, store.Save(ctx, "2024-05-01", "short"))

		got, err := store.Load(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, "short", got)
	})

	t.Run("Missing Is Empty Not Error", func(t *testing.T) {
		cfg, _ := setupConfig(t)
		store := fs.NewNoteStore(cfg)

		got, err := store.Load(ctx, "1999-01-01")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Read Failure Surfaces", func(t *testing.T) {
		cfg, root := setupConfig(t)
		store := fs.NewNoteStore(cfg)

		// A directory where the note file should be cannot be read as a file.
		require.NoError(t, os.MkdirAll(filepath.Join(root, "notes", "2024-05-01.md"), 0755))

		_, err := store.Load(ctx, "2024-05-01")
		assert.Error(t, err)
	})

	t.Run("Delete", func(t *testing.T) {
		cfg, _ := setupConfig(t)
		store := fs.NewNoteStore(cfg)

		require.NoError(t, store.Save(ctx, "2024-05-01", "x"))
		require.NoError(t, store.Delete(ctx, "2024-05-01"))
		require.NoError(t, store.Delete(ctx, "2024-05-01"), "second delete is a no-op")

		got, err := store.Load(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Empty(t, got)

		dates, err := store.List(ctx, "2024-05")
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("ReadOnly Rejects Writes", func(t *testing.T) {
		cfg, _ := setupConfig(t, func(c *fs.Config) { c.ReadOnly = true })
		store := fs.NewNoteStore(cfg)

		assert.ErrorIs(t, store.Save(ctx, "2024-05-01", "x"), core.ErrReadOnly)
		assert.ErrorIs(t, store.Delete(ctx, "2024-05-01"), core.ErrReadOnly)
	})
}

func TestNoteStore_List(t *testing.T) {
	ctx := context.Background()
	cfg, root := setupConfig(t)
	store := fs.NewNoteStore(cfg)

	dates, err := store.List(ctx, "2024-05")
	require.NoError(t, err)
	assert.Empty(t, dates, "missing notes directory lists nothing")

	for _, d := range []string{"2024-04-30", "2024-05-01", "2024-05-15", "2024-06-01", "2023-05-09"} {
		require.NoError(t, store.Save(ctx, d, "# "+d))
	}
	// Non-note files and directories are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes", "2024-05-20.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "notes", "2024-05-21.md"), 0755))

	dates, err = store.List(ctx, "2024-05")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2024-05-01", "2024-05-15"}, dates)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Contains(t, all, core.Note{Date: "2024-06-01", Content: "# 2024-06-01"})
}
