package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/aretw0/noir/pkg/core"
)

// SettingsDocument implements core.SettingsStore on <root>/settings.json.
type SettingsDocument struct {
	path   string
	config Config
	mu     sync.Mutex
}

// NewSettingsDocument creates a settings store. No I/O happens until a method is called.
func NewSettingsDocument(config Config) *SettingsDocument {
	return &SettingsDocument{
		path:   filepath.Join(config.Root, SettingsFile),
		config: config,
	}
}

// Path returns the location of the settings document.
func (d *SettingsDocument) Path() string {
	return d.path
}

// Load returns the stored settings decoded over the defaults. Any read or
// parse failure is logged and yields core.DefaultSettings.
func (d *SettingsDocument) Load(ctx context.Context) core.Settings {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, found, err := readOptional(d.path)
	if err != nil {
		d.config.logger().Error("failed to read settings", "path", d.path, "error", err)
		return core.DefaultSettings()
	}
	if !found {
		return core.DefaultSettings()
	}

	s := core.DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		d.config.logger().Error("failed to parse settings", "path", d.path, "error", err)
		return core.DefaultSettings()
	}
	return s
}

// Save writes s as the whole document.
func (d *SettingsDocument) Save(ctx context.Context, s core.Settings) error {
	if d.config.ReadOnly {
		return core.ErrReadOnly
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := writeJSONAtomic(d.path, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

var _ core.SettingsStore = (*SettingsDocument)(nil)
