package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrConfigExists is returned by CreateSample when the target already exists
// and overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

// CreateSample writes the embedded reference configuration to path. Writers
// are serialized through an advisory lock file next to the target.
func CreateSample(path string, format Format, overwrite bool) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire config lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another process is writing %s", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(path + ".lock")
	}()

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w at %s (use --overwrite to replace it)", ErrConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config path: %w", err)
		}
	}

	if err := os.WriteFile(path, SampleData(format), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
