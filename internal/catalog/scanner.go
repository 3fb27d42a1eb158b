package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned by Scan when the course root does not exist or
// is not a directory.
var ErrNotDirectory = errors.New("catalog: path is not a directory")

var subtitleExtensions = []string{".srt", ".vtt"}

// Scan walks the first-level subdirectories of root and builds the course
// catalog. Each .mp4 file (case-insensitive) becomes a MediaItem; a subtitle
// or text sidecar is attached when a file with the same base name and a
// .srt/.vtt or .txt extension sits next to the video. Folders without videos
// are omitted. Ordering follows the sorted directory listing.
func Scan(root string) (Catalog, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read course root: %w", err)
	}

	var cat Catalog
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folderPath := filepath.Join(root, entry.Name())
		items, err := scanFolder(folderPath)
		if err != nil {
			return nil, fmt.Errorf("scan folder %s: %w", entry.Name(), err)
		}

		if len(items) > 0 {
			cat = append(cat, Folder{Name: entry.Name(), Items: items})
		}
	}

	return cat, nil
}

func scanFolder(dir string) ([]MediaItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var items []MediaItem
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".mp4") {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		item := MediaItem{Video: filepath.Join(dir, entry.Name())}

		for _, ext := range subtitleExtensions {
			if candidate := filepath.Join(dir, base+ext); isFile(candidate) {
				item.Subtitle = candidate
				break
			}
		}
		if candidate := filepath.Join(dir, base+".txt"); isFile(candidate) {
			item.Text = candidate
		}

		items = append(items, item)
	}

	return items, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
