package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".svg": {},
}

// IsImage reports whether path has a recognised image extension (case-insensitive).
func IsImage(path string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ImagesInFolder lists the regular image files directly inside dir, sorted
// lexicographically so item numbering is the same on every run.
func ImagesInFolder(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read folder %s", dir)
	}
	var files []string
	for _, de := range entries {
		if !IsImage(de.Name()) {
			continue
		}
		p := filepath.Join(dir, de.Name())
		st, err := os.Stat(p)
		if err != nil || !st.Mode().IsRegular() {
			continue
		}
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}
