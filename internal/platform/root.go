package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the per-user data directory.
const AppName = "noir"

// DataDirEnv overrides the default data directory.
const DataDirEnv = "NOIR_DATA_DIR"

// DefaultDataDir returns the per-user application data directory:
// $NOIR_DATA_DIR if set, otherwise <user config dir>/noir
// (~/.config/noir, ~/Library/Application Support/noir, %AppData%\noir).
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}
