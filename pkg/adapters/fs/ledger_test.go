package fs_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noir/pkg/adapters/fs"
	"github.com/aretw0/noir/pkg/core"
)

func TestLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists Whole Document", func(t *testing.T) {
		cfg, root := setupConfig(t)
		ledger := fs.NewLedger(cfg)

		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-04"))
		require.NoError(t, ledger.Set(ctx, "2024-05-02", "2024-05-09"))

		raw, err := os.ReadFile(filepath.Join(root, fs.RemindersFile))
		require.NoError(t, err)

		var onDisk map[string]string
		require.NoError(t, json.Unmarshal(raw, &onDisk))
		assert.Equal(t, map[string]string{"2024-05-01": "2024-05-04", "2024-05-02": "2024-05-09"}, onDisk)
	})

	t.Run("Set Replaces", func(t *testing.T) {
		cfg, _ := setupConfig(t)
		ledger := fs.NewLedger(cfg)

		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-06"))
		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-11"))

		all, err := ledger.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"2024-05-01": "2024-05-11"}, all)
	})

	t.Run("Delete Writes Only On Removal", func(t *testing.T) {
		cfg, root := setupConfig(t)
		ledger := fs.NewLedger(cfg)

		removed, err := ledger.Delete(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.False(t, removed)
		assert.NoFileExists(t, filepath.Join(root, fs.RemindersFile))

		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-06"))
		removed, err = ledger.Delete(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.True(t, removed)

		state := ledger.State().(fs.LedgerState)
		assert.Equal(t, 2, state.Writes)
	})

	t.Run("Malformed Document Degrades To Empty", func(t *testing.T) {
		cfg, root := setupConfig(t)
		require.NoError(t, os.MkdirAll(root, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, fs.RemindersFile), []byte("{not json"), 0644))
		ledger := fs.NewLedger(cfg)

		all, err := ledger.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		// The next write replaces the corrupt document.
		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-02"))
		all, _ = ledger.All(ctx)
		assert.Equal(t, map[string]string{"2024-05-01": "2024-05-02"}, all)
	})

	t.Run("Malformed Entry Drops Only Itself", func(t *testing.T) {
		cfg, root := setupConfig(t)
		require.NoError(t, os.MkdirAll(root, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, fs.RemindersFile), []byte(`{"2024-05-01":"2024-05-09","x":5}`), 0644))
		ledger := fs.NewLedger(cfg)

		all, err := ledger.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"2024-05-01": "2024-05-09"}, all)

		require.NoError(t, ledger.Set(ctx, "2024-05-02", "2024-05-12"))

		raw, err := os.ReadFile(filepath.Join(root, fs.RemindersFile))
		require.NoError(t, err)
		var onDisk map[string]string
		require.NoError(t, json.Unmarshal(raw, &onDisk))
		assert.Equal(t, map[string]string{"2024-05-01": "2024-05-09", "2024-05-02": "2024-05-12"}, onDisk)
	})

	t.Run("Null Document", func(t *testing.T) {
		cfg, root := setupConfig(t)
		require.NoError(t, os.MkdirAll(root, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, fs.RemindersFile), []byte("null"), 0644))
		ledger := fs.NewLedger(cfg)

		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-02"))
	})

	t.Run("All Returns Copy", func(t *testing.T) {
		cfg, _ := setupConfig(t)
		ledger := fs.NewLedger(cfg)
		require.NoError(t, ledger.Set(ctx, "2024-05-01", "2024-05-02"))

		all, _ := ledger.All(ctx)
		all["2024-05-01"] = "tampered"

		again, _ := ledger.All(ctx)
		assert.Equal(t, "2024-05-02", again["2024-05-01"])
	})

	t.Run("ReadOnly", func(t *testing.T) {
		cfg, _ := setupConfig(t, func(c *fs.Config) { c.ReadOnly = true })
		ledger := fs.NewLedger(cfg)

		assert.ErrorIs(t, ledger.Set(ctx, "2024-05-01", "2024-05-02"), core.ErrReadOnly)
	})
}

func TestLedger_ConcurrentSetsLoseNothing(t *testing.T) {
	ctx := context.Background()
	cfg, _ := setupConfig(t)
	ledger := fs.NewLedger(cfg)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			noteDate := fmt.Sprintf("2024-%02d-%02d", i/28+1, i%28+1)
			if err := ledger.Set(ctx, noteDate, "2030-01-01"); err != nil {
				t.Errorf("Set(%s) failed: %v", noteDate, err)
			}
		}(i)
	}
	wg.Wait()

	all, err := ledger.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}
