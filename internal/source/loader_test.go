package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/evaldash/internal/config"
)

func testConfig(path string) config.Config {
	return config.Config{
		ResultsPath:    path,
		MaxReportBytes: 1 << 20,
	}
}

func writeResults(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write results file: %v", err)
	}
	return path
}

func TestLoaderLoad_ParsesResultsFile(t *testing.T) {
	path := writeResults(t, "model_evaluation_results.txt",
		"Classification Report:\nprecision recall\nClass Distribution:\nTrain Set: 0: 100 1: 50\n")

	snap := NewLoader(testConfig(path)).Load()

	if snap.Status != StatusOK {
		t.Fatalf("expected status ok, got %s (%s)", snap.Status, snap.Message)
	}
	if got := snap.Report.ClassificationReport(); got != "precision recall" {
		t.Errorf("unexpected classification report: %q", got)
	}
	if snap.Report.TrainSet()[0] != 100 || snap.Report.TrainSet()[1] != 50 {
		t.Errorf("unexpected train set: %v", snap.Report.TrainSet())
	}
}

func TestLoaderLoad_MissingFileDegradesToWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	snap := NewLoader(testConfig(path)).Load()

	if snap.Status != StatusMissing {
		t.Fatalf("expected status missing, got %s", snap.Status)
	}
	if !strings.Contains(snap.Message, path) {
		t.Errorf("message should name the path, got %q", snap.Message)
	}
	if !snap.Report.Empty() {
		t.Errorf("expected empty report, got %+v", snap.Report)
	}
}

func TestLoaderLoad_UnsupportedFormatFails(t *testing.T) {
	path := writeResults(t, "results.xlsx", "not a report")
	snap := NewLoader(testConfig(path)).Load()

	if snap.Status != StatusFailed {
		t.Fatalf("expected status failed, got %s", snap.Status)
	}
	if !snap.Report.Empty() {
		t.Errorf("expected empty report, got %+v", snap.Report)
	}
}

func TestLoaderLoad_EmptyFileYieldsEmptyReport(t *testing.T) {
	path := writeResults(t, "results.txt", "")
	snap := NewLoader(testConfig(path)).Load()

	if snap.Status != StatusOK {
		t.Fatalf("expected status ok, got %s", snap.Status)
	}
	if !snap.Report.Empty() {
		t.Errorf("expected empty report, got %+v", snap.Report)
	}
	// Empty but successful loads still export as {}.
	if snap.Report.Sections == nil || snap.Report.Distributions == nil {
		t.Error("report maps must be initialized")
	}
}
