// Package root locates the template repository root from a working directory.
package root

import (
	"fmt"
	"os"
	"path/filepath"
)

// markers identify a template repository root, checked in order.
var markers = []string{"sdrft.toml", "manifest.yml"}

// FindTemplatesRoot walks upward from start until it finds a directory
// containing a repository marker. It returns the root, whether one was
// found, and any filesystem error.
func FindTemplatesRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		for _, marker := range markers {
			path := filepath.Join(dir, marker)
			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return "", false, err
			}
			if info.IsDir() {
				return "", false, fmt.Errorf("%s is a directory, expected a file", path)
			}
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
