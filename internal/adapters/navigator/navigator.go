package navigator

// Package navigator provides Navigator adapters. The real routing surface is
// outside this module; these adapters log or record the navigation target
// that guard and workflow decisions produce.

import (
	"log/slog"
	"net/url"
	"sync"
)

// LogNavigator logs each navigation. Used by the CLI where there is no
// rendering layer to drive.
type LogNavigator struct {
	logger *slog.Logger
}

// NewLogNavigator constructs a logging navigator.
func NewLogNavigator(logger *slog.Logger) *LogNavigator {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNavigator{logger: logger.With("component", "navigator")}
}

func (n *LogNavigator) NavigateTo(path string, query url.Values) {
	if len(query) > 0 {
		n.logger.Info("navigate", "path", path, "query", query.Encode())
		return
	}
	n.logger.Info("navigate", "path", path)
}

// Recorder captures navigations for assertions in tests.
type Recorder struct {
	mu    sync.Mutex
	paths []string
	query []url.Values
}

// NewRecorder constructs a recording navigator.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NavigateTo(path string, query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	r.query = append(r.query, query)
}

// Paths returns every navigation target seen so far.
func (r *Recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

// Last returns the most recent navigation, or ok=false when none happened.
func (r *Recorder) Last() (string, url.Values, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.paths) == 0 {
		return "", nil, false
	}
	return r.paths[len(r.paths)-1], r.query[len(r.query)-1], true
}
