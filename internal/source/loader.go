// Package source loads the evaluation results file and keeps the latest
// parsed snapshot fresh.
package source

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/evaldash/internal/config"
	"github.com/dgallion1/evaldash/internal/ingest"
	"github.com/dgallion1/evaldash/internal/report"
)

// Status describes the outcome of a load attempt.
type Status string

const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"
	StatusFailed  Status = "failed"
)

// Snapshot is one parsed view of the results file. A degraded load keeps
// an empty report so the rest of the page can still render around the
// message.
type Snapshot struct {
	Report   report.Report
	Status   Status
	Message  string
	Path     string
	LoadedAt time.Time
}

// Loader reads and parses the results file.
type Loader struct {
	path     string
	maxBytes int64
	opts     ingest.Options
}

func NewLoader(cfg config.Config) *Loader {
	return &Loader{
		path:     cfg.ResultsPath,
		maxBytes: cfg.MaxReportBytes,
		opts:     ingest.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
	}
}

// Load reads the file once and parses it. It never returns an error:
// a missing file degrades to a warning, any other failure to an error
// message, both with an empty report.
func (l *Loader) Load() Snapshot {
	snap := Snapshot{
		Report:   report.New(),
		Path:     l.path,
		LoadedAt: time.Now(),
	}

	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		snap.Status = StatusMissing
		snap.Message = "the results file does not exist: " + l.path
		return snap
	}
	if err != nil {
		snap.Status = StatusFailed
		snap.Message = "error loading file: " + err.Error()
		return snap
	}
	defer f.Close()

	extractor, err := ingest.ForFile(l.path, l.opts)
	if err != nil {
		snap.Status = StatusFailed
		snap.Message = "error loading file: " + err.Error()
		return snap
	}

	lines, err := extractor.Lines(io.LimitReader(f, l.maxBytes), filepath.Base(l.path))
	if err != nil {
		snap.Status = StatusFailed
		snap.Message = "error loading file: " + err.Error()
		return snap
	}

	snap.Status = StatusOK
	snap.Report = report.Parse(lines)
	return snap
}
