package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"course-analyzer/internal/catalog"
	"course-analyzer/internal/logger"
)

type fakeTranscriber struct {
	text   string
	err    error
	called bool
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, videoPath string) (string, error) {
	f.called = true
	return f.text, f.err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolvePrecedence(t *testing.T) {
	dir := t.TempDir()
	subtitle := writeFile(t, dir, "a.srt", "subtitle content")
	text := writeFile(t, dir, "a.txt", "text content")

	tests := []struct {
		name       string
		item       catalog.MediaItem
		want       string
		transcribe bool
	}{
		{
			name: "subtitle wins over text",
			item: catalog.MediaItem{Video: "a.mp4", Subtitle: subtitle, Text: text},
			want: "subtitle content",
		},
		{
			name: "text when no subtitle",
			item: catalog.MediaItem{Video: "a.mp4", Text: text},
			want: "text content",
		},
		{
			name:       "transcription fallback",
			item:       catalog.MediaItem{Video: "a.mp4"},
			want:       "transcribed content",
			transcribe: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &fakeTranscriber{text: "transcribed content"}
			r := New(ft, logger.New("error"))

			got := r.Resolve(context.Background(), tt.item)
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if ft.called != tt.transcribe {
				t.Errorf("transcriber called = %v, want %v", ft.called, tt.transcribe)
			}
		})
	}
}

func TestResolveUnreadableFile(t *testing.T) {
	r := New(&fakeTranscriber{}, logger.New("error"))

	item := catalog.MediaItem{
		Video:    "a.mp4",
		Subtitle: filepath.Join(t.TempDir(), "missing.srt"),
	}
	if got := r.Resolve(context.Background(), item); got != "" {
		t.Errorf("Resolve() = %q, want empty", got)
	}
}

func TestResolveTranscriptionError(t *testing.T) {
	ft := &fakeTranscriber{err: os.ErrNotExist}
	r := New(ft, logger.New("error"))

	// A failing transcriber degrades to empty content, never an error.
	if got := r.Resolve(context.Background(), catalog.MediaItem{Video: "a.mp4"}); got != "" {
		t.Errorf("Resolve() = %q, want empty", got)
	}
}

func TestNoopTranscriber(t *testing.T) {
	tr := NewNoopTranscriber(logger.New("error"))
	text, err := tr.Transcribe(context.Background(), "a.mp4")
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "" {
		t.Errorf("Transcribe() = %q, want empty", text)
	}
}
