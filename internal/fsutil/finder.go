// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"strings"
)

// ListBySuffix reads the immediate entries of dir and returns those whose name
// ends with suffix, in the order os.ReadDir yields them. It does not recurse
// and does not skip directories: an entry named "x.pio/" matches ".pio".
func ListBySuffix(dir string, suffix string) ([]fs.DirEntry, error) {
	if suffix == "" {
		panic("suffix must not be empty")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var matches []fs.DirEntry
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}
