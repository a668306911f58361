package worksheet

import (
	"fmt"
	"os"
)

// writeTempFile creates a temporary file with the given content and
// extension. Returns the file path and a cleanup function to remove it.
func writeTempFile(content, ext string) (path string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "worksheetgen-*."+ext)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	return path, cleanup, nil
}
