package ledger

import (
	"fmt"
	"os"
	"strings"
)

// Ledger is the append-only study guide document. Folder headings and item
// bodies are written in catalog order, exactly once each.
type Ledger struct {
	file *os.File
	path string
}

// Create opens (truncating) the output document at path.
func Create(path string) (*Ledger, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output document: %w", err)
	}
	return &Ledger{file: file, path: path}, nil
}

// Path returns the location of the document on disk.
func (l *Ledger) Path() string {
	return l.path
}

// WriteFolderHeading appends a folder section heading.
func (l *Ledger) WriteFolderHeading(name string) error {
	if _, err := fmt.Fprintf(l.file, "# %s\n", name); err != nil {
		return fmt.Errorf("write folder heading: %w", err)
	}
	return nil
}

// WriteItem appends one summarized item under the current folder heading.
func (l *Ledger) WriteItem(name, text string) error {
	if _, err := fmt.Fprintf(l.file, "\n## %s\n%s\n", name, strings.TrimSpace(text)); err != nil {
		return fmt.Errorf("write item %s: %w", name, err)
	}
	return nil
}

// Close flushes and closes the document.
func (l *Ledger) Close() error {
	return l.file.Close()
}
