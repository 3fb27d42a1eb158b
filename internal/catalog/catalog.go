package catalog

import "path/filepath"

// MediaItem is one course video paired with at most one subtitle file and
// one plain-text sidecar. Empty paths mean the sidecar is absent.
type MediaItem struct {
	Video    string
	Subtitle string
	Text     string
}

// DisplayName is the item identifier used in the study guide and in logs.
func (m MediaItem) DisplayName() string {
	return filepath.Base(m.Video)
}

// Folder is one first-level course directory and its videos, in directory
// listing order.
type Folder struct {
	Name  string
	Items []MediaItem
}

// Catalog is the ordered folder structure produced by Scan. Slice order is
// discovery order; the output document's section order depends on it.
type Catalog []Folder

// ItemCount returns the total number of videos across all folders.
func (c Catalog) ItemCount() int {
	count := 0
	for _, f := range c {
		count += len(f.Items)
	}
	return count
}
