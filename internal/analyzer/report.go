package analyzer

// Status is the terminal state of a run.
type Status string

const (
	// StatusCompleted means every item was visited and classified.
	StatusCompleted Status = "completed"
	// StatusEmptyCatalog means the scan found no videos; no document was
	// created. This is an informational stop, not an error.
	StatusEmptyCatalog Status = "empty-catalog"
	// StatusAborted means the run stopped before visiting every item. The
	// document written up to that point is preserved.
	StatusAborted Status = "aborted"
)

// Report summarizes one run. It is valid even when Run also returns
// ErrNoActiveKeys, so callers can see how far the run got.
type Report struct {
	Status     Status
	Folders    int
	Items      int
	Summarized int
	Skipped    int
	OverLimit  []string
	ActiveKeys int
	OutputPath string
}
