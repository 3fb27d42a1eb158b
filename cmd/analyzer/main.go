package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"course-analyzer/internal/analyzer"
	"course-analyzer/internal/config"
	"course-analyzer/internal/content"
	"course-analyzer/internal/gateway"
	"course-analyzer/internal/keypool"
	"course-analyzer/internal/ledger"
	"course-analyzer/internal/logger"
	"course-analyzer/internal/watcher"
	"course-analyzer/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "AI Course Analyzer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Course directory: %s", cfg.Course.Path)
	log.Info(ctx, "Output document: %s", cfg.Output.File)
	log.Info(ctx, "Gateway provider: %s (%s)", cfg.Gateway.Provider, cfg.Gateway.Model)

	secrets, err := loadSecrets(cfg)
	if err != nil {
		log.Error(ctx, "Failed to load API keys: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Loaded %d API keys", len(secrets))

	gw, err := buildGateway(cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to build gateway: %v", err)
		os.Exit(1)
	}

	resolver := content.New(buildTranscriber(cfg, log), log)

	// Progress events go one way, worker to console; the consumer never
	// touches run state.
	events := make(chan analyzer.Event, 64)
	go func() {
		for ev := range events {
			fmt.Printf("[%s] %s\n", ev.Time.Format("15:04:05"), ev.Message)
		}
	}()

	a := analyzer.New(secrets, resolver, gw, log, events)

	req := analyzer.Request{
		CoursePath:        cfg.Course.Path,
		SystemInstruction: cfg.Prompt.SystemInstruction,
		ExtraInstruction:  cfg.Prompt.ExtraInstruction,
		OutputPath:        cfg.Output.File,
	}

	runOnce := func(ctx context.Context) error {
		report, err := a.Run(ctx, req)
		if err != nil {
			return err
		}

		if report.Status == analyzer.StatusCompleted && cfg.Output.Docx {
			docxPath := strings.TrimSuffix(report.OutputPath, filepath.Ext(report.OutputPath)) + ".docx"
			if err := ledger.ExportDocx(report.OutputPath, docxPath); err != nil {
				log.Warn(ctx, "Docx export failed: %v", err)
			} else {
				log.Info(ctx, "Exported %s", docxPath)
			}
		}
		return nil
	}

	if !cfg.Watch.Enabled {
		if err := runOnce(ctx); err != nil {
			log.Error(ctx, "Analysis failed: %v", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: run once up front, then re-run on course changes until
	// interrupted. Overlapping triggers are rejected by the run guard.
	if err := runOnce(ctx); err != nil && !errors.Is(err, analyzer.ErrNoActiveKeys) {
		log.Error(ctx, "Initial analysis failed: %v", err)
		os.Exit(1)
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watcher.New(cfg.Course.Path, runOnce, log, debounce)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching for course changes. Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Course analyzer stopped")
}

// loadSecrets reads and parses the newline-separated key file. The stub
// provider needs no keys but still gets a placeholder so the pool is never
// empty.
func loadSecrets(cfg *config.Config) ([]string, error) {
	if cfg.Gateway.Provider == "stub" && cfg.Gateway.APIKeysFile == "" {
		return []string{"stub"}, nil
	}

	data, err := os.ReadFile(cfg.Gateway.APIKeysFile)
	if err != nil {
		return nil, fmt.Errorf("read key file %s: %w", cfg.Gateway.APIKeysFile, err)
	}

	secrets := keypool.Parse(string(data))
	if len(secrets) == 0 {
		return nil, fmt.Errorf("no API keys in %s", cfg.Gateway.APIKeysFile)
	}
	return secrets, nil
}

func buildGateway(cfg *config.Config, log logger.Logger) (gateway.Gateway, error) {
	switch cfg.Gateway.Provider {
	case "gemini":
		return gateway.NewGemini(cfg.Gateway.Model, log), nil
	case "chat":
		return gateway.NewChat(cfg.Gateway.BaseURL, cfg.Gateway.Model, log), nil
	case "stub":
		return gateway.NewStub(""), nil
	default:
		return nil, fmt.Errorf("unknown gateway provider %q", cfg.Gateway.Provider)
	}
}

func buildTranscriber(cfg *config.Config, log logger.Logger) content.Transcriber {
	if cfg.Whisper.BinaryPath != "" && cfg.Whisper.ModelPath != "" {
		return content.NewWhisperTranscriber(cfg.Whisper, executor.New(), log)
	}
	return content.NewNoopTranscriber(log)
}
