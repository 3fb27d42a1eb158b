package analyzer

import (
	"context"
	"errors"
	"fmt"

	"course-analyzer/internal/catalog"
	"course-analyzer/internal/keypool"
	"course-analyzer/internal/ledger"
	"course-analyzer/internal/prompt"
)

var (
	// ErrRunInProgress is returned when Run is called while another run is
	// executing. The second request is rejected, not queued.
	ErrRunInProgress = errors.New("analyzer: a run is already in progress")

	// ErrDirectoryNotFound is returned before any processing when the course
	// root is not a valid directory.
	ErrDirectoryNotFound = errors.New("analyzer: course directory not found")

	// ErrNoActiveKeys is returned when every API key has been disabled
	// mid-run. Output written up to that point is preserved.
	ErrNoActiveKeys = errors.New("analyzer: no active API keys remain")
)

// Run executes the full analysis loop sequentially. For every video, in
// catalog order: resolve content, build the prompt, draw a key from the pool,
// invoke the gateway and classify the outcome. Summaries are appended to the
// output document; token-limited items are collected for the final report;
// gateway failures disable the current key and skip the item.
func (a *implAnalyzer) Run(ctx context.Context, req Request) (*Report, error) {
	if !a.running.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer a.running.Store(false)

	a.notify(ctx, "Scanning course directory: %s", req.CoursePath)

	cat, err := catalog.Scan(req.CoursePath)
	if err != nil {
		if errors.Is(err, catalog.ErrNotDirectory) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, req.CoursePath)
		}
		return nil, fmt.Errorf("scan course directory: %w", err)
	}

	report := &Report{
		Status:  StatusCompleted,
		Folders: len(cat),
		Items:   cat.ItemCount(),
	}

	if report.Items == 0 {
		a.notify(ctx, "No videos found in %s", req.CoursePath)
		report.Status = StatusEmptyCatalog
		return report, nil
	}

	pool := keypool.New(a.secrets)

	led, err := ledger.Create(req.OutputPath)
	if err != nil {
		return nil, err
	}
	defer led.Close()
	report.OutputPath = req.OutputPath

	a.notify(ctx, "Found %d videos in %d folders, writing results to %s", report.Items, report.Folders, req.OutputPath)

	for _, folder := range cat {
		// The folder heading goes in before its items, whatever their
		// outcomes turn out to be.
		if err := led.WriteFolderHeading(folder.Name); err != nil {
			report.Status = StatusAborted
			return report, err
		}

		for _, item := range folder.Items {
			name := item.DisplayName()
			a.notify(ctx, "Analyzing video: %s", name)

			resolved := a.resolver.Resolve(ctx, item)
			text := prompt.Build(req.SystemInstruction, resolved, req.ExtraInstruction)

			cred, err := pool.Active()
			if err != nil {
				a.notify(ctx, "All API keys are inactive, stopping the run")
				report.Status = StatusAborted
				return report, ErrNoActiveKeys
			}

			result, err := a.gateway.Invoke(ctx, text, cred)
			if err != nil {
				a.logger.Error(ctx, "Request for %s failed with key %d: %v", name, cred.Index, err)
				pool.DisableCurrent()
				report.Skipped++
				// The failed item is abandoned, not re-sent with the next
				// key. TODO: retry the item against the next active key
				// before moving on, so a transient network blip does not
				// drop it.
				continue
			}

			if result.TokenLimited {
				a.notify(ctx, "Video exceeds the token limit: %s", name)
				report.OverLimit = append(report.OverLimit, name)
				continue
			}

			if err := led.WriteItem(name, result.Text); err != nil {
				report.Status = StatusAborted
				return report, err
			}
			report.Summarized++
		}
	}

	report.ActiveKeys = pool.ActiveCount()

	if len(report.OverLimit) > 0 {
		a.notify(ctx, "%d videos exceeded the token limit and were not summarized:", len(report.OverLimit))
		for _, name := range report.OverLimit {
			a.notify(ctx, " - %s", name)
		}
	}

	a.notify(ctx, "Analysis complete: %d summarized, %d skipped, %d over limit",
		report.Summarized, report.Skipped, len(report.OverLimit))
	return report, nil
}
