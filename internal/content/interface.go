package content

import (
	"context"

	"course-analyzer/internal/catalog"
)

// Resolver turns a media item into the best available textual representation.
// It never fails; when nothing usable exists it returns an empty string.
type Resolver interface {
	Resolve(ctx context.Context, item catalog.MediaItem) string
}

// Transcriber produces a transcript for a video that has no subtitle or text
// sidecar.
type Transcriber interface {
	Transcribe(ctx context.Context, videoPath string) (string, error)
}
