package analyzer

import "context"

// Analyzer runs one course analysis: scan, per-video summarization with key
// rotation, and study guide output.
type Analyzer interface {
	Run(ctx context.Context, req Request) (*Report, error)
}

// Request carries the per-run inputs.
type Request struct {
	CoursePath        string
	SystemInstruction string
	ExtraInstruction  string
	OutputPath        string
}
