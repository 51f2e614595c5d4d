package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/chronos/pkg/adapters/fs"
)

// ResolvePath turns the configured notes path into an absolute path.
// An empty path means the default file in the working directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = fs.DefaultFilename
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve notes path: %w", err)
	}
	return abs, nil
}

// FindNotesFile looks upwards from startDir for an existing file called name.
// It returns the absolute path of the first match.
func FindNotesFile(startDir, name string) (string, error) {
	if name == "" {
		name = fs.DefaultFilename
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found above %s", name, abs)
}
