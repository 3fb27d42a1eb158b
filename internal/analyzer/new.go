package analyzer

import (
	"sync/atomic"

	"course-analyzer/internal/content"
	"course-analyzer/internal/gateway"
	"course-analyzer/internal/logger"
)

type implAnalyzer struct {
	secrets  []string
	resolver content.Resolver
	gateway  gateway.Gateway
	logger   logger.Logger
	events   chan<- Event
	running  atomic.Bool
}

// New creates an Analyzer. A fresh key pool is built from secrets at the
// start of every run, so a key disabled in one run is active again in the
// next. events may be nil; when set, progress messages are sent to it without
// ever blocking the run.
func New(secrets []string, resolver content.Resolver, gw gateway.Gateway, log logger.Logger, events chan<- Event) Analyzer {
	return &implAnalyzer{
		secrets:  secrets,
		resolver: resolver,
		gateway:  gw,
		logger:   log,
		events:   events,
	}
}
