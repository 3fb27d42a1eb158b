package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"course-analyzer/internal/config"
	"course-analyzer/internal/logger"
	"course-analyzer/pkg/executor"
)

type whisperTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisperTranscriber creates a Transcriber that extracts the audio track
// with ffmpeg and runs whisper.cpp over it.
func NewWhisperTranscriber(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe converts the video's audio to 16kHz mono WAV and transcribes it
// to SRT. Both intermediate files live in a per-call temp directory that is
// removed on return; only the subtitle text survives.
func (t *whisperTranscriber) Transcribe(ctx context.Context, videoPath string) (string, error) {
	tempDir, err := os.MkdirTemp("", "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.wav")

	t.logger.Info(ctx, "Extracting audio from %s", videoPath)

	// 16kHz mono PCM is the input format whisper.cpp expects.
	extractArgs := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}
	if _, err := t.executor.Execute(ctx, "ffmpeg", extractArgs...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	outputPrefix := filepath.Join(tempDir, "audio")

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Threads, videoPath)

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Language != "" {
		args = append(args, "-l", t.cfg.Language)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".srt")
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	t.logger.Info(ctx, "Transcription completed for %s (%d bytes)", videoPath, len(data))
	return string(data), nil
}

type noopTranscriber struct {
	logger logger.Logger
}

// NewNoopTranscriber creates a Transcriber that always returns empty text,
// for setups without a whisper binary. Analysis then proceeds on subtitles
// and text sidecars alone.
func NewNoopTranscriber(log logger.Logger) Transcriber {
	return &noopTranscriber{logger: log}
}

func (t *noopTranscriber) Transcribe(ctx context.Context, videoPath string) (string, error) {
	t.logger.Info(ctx, "Transcription not configured, skipping audio for %s", videoPath)
	return "", nil
}
