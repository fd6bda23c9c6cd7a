package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold filePath and
// returns its absolute path. Relative paths resolve against the working
// directory. Special SQLite names like ":memory:" have no parent and are
// returned as "".
func EnsureParentDir(filePath string) (string, error) {
	if filePath == "" || filePath == ":memory:" {
		return "", nil
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", filePath, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
