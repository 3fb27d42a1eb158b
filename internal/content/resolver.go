package content

import (
	"context"
	"os"

	"course-analyzer/internal/catalog"
	"course-analyzer/internal/logger"
)

type implResolver struct {
	transcriber Transcriber
	logger      logger.Logger
}

// New creates a Resolver that prefers subtitle files, then plain-text
// sidecars, then the transcription fallback.
func New(transcriber Transcriber, log logger.Logger) Resolver {
	return &implResolver{
		transcriber: transcriber,
		logger:      log,
	}
}

// Resolve returns the item's subtitle content if a subtitle file exists, else
// the text sidecar content if it is a distinct file, else whatever the
// transcriber produces. Read and transcription failures degrade to an empty
// string; callers treat empty content as valid input, not an error.
func (r *implResolver) Resolve(ctx context.Context, item catalog.MediaItem) string {
	if item.Subtitle != "" {
		return r.readFile(ctx, item.Subtitle)
	}

	if item.Text != "" && item.Text != item.Subtitle {
		return r.readFile(ctx, item.Text)
	}

	text, err := r.transcriber.Transcribe(ctx, item.Video)
	if err != nil {
		r.logger.Error(ctx, "Transcription failed for %s: %v", item.Video, err)
		return ""
	}
	return text
}

func (r *implResolver) readFile(ctx context.Context, path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Error(ctx, "Failed to read file %s: %v", path, err)
		return ""
	}
	r.logger.Debug(ctx, "Read %d bytes from %s", len(data), path)
	return string(data)
}
