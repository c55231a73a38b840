package report

import (
	"reflect"
	"strings"
	"testing"
)

func parseText(t *testing.T, input string) Report {
	t.Helper()
	return Parse(strings.Split(input, "\n"))
}

func TestParse_FullReport(t *testing.T) {
	input := `Classification Report:
precision recall f1
0.9 0.8 0.85
Class Distribution:
Train Set: 0: 100 1: 50
Test Set: 0: 20 1: 10
SMOTE Train Set: 0: 100 1: 100
extra trailing note`

	rep := parseText(t, input)

	if got := rep.ClassificationReport(); got != "precision recall f1\n0.9 0.8 0.85" {
		t.Errorf("unexpected classification report: %q", got)
	}
	if want := (ClassCounts{0: 100, 1: 50}); !reflect.DeepEqual(rep.TrainSet(), want) {
		t.Errorf("train set: expected %v, got %v", want, rep.TrainSet())
	}
	if want := (ClassCounts{0: 20, 1: 10}); !reflect.DeepEqual(rep.TestSet(), want) {
		t.Errorf("test set: expected %v, got %v", want, rep.TestSet())
	}
	if want := (ClassCounts{0: 100, 1: 100}); !reflect.DeepEqual(rep.SMOTETrainSet(), want) {
		t.Errorf("smote train set: expected %v, got %v", want, rep.SMOTETrainSet())
	}
	// The class-distribution body is only captured by the end-of-input
	// flush, so it holds just the trailing note.
	if got := rep.Sections[SectionClassDistribution]; got != "extra trailing note" {
		t.Errorf("class distribution body: expected %q, got %q", "extra trailing note", got)
	}
}

func TestParse_Idempotent(t *testing.T) {
	lines := []string{
		"Classification Report:",
		"precision recall",
		"Class Distribution:",
		"Train Set: 0: 5 1: 7",
		"note",
	}
	first := Parse(lines)
	second := Parse(lines)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing twice diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParse_SectionPreservesLineOrder(t *testing.T) {
	rep := parseText(t, "Classification Report:\nalpha\nbeta\ngamma")
	if got := rep.ClassificationReport(); got != "alpha\nbeta\ngamma" {
		t.Errorf("expected lines joined in input order, got %q", got)
	}
}

func TestParse_PairExtraction(t *testing.T) {
	rep := parseText(t, "Train Set: 0: 120 1: 45")
	if want := (ClassCounts{0: 120, 1: 45}); !reflect.DeepEqual(rep.TrainSet(), want) {
		t.Errorf("expected %v, got %v", want, rep.TrainSet())
	}
}

func TestParse_PairExtractionWithoutSpace(t *testing.T) {
	rep := parseText(t, "Train Set: 0:120 1:45")
	if want := (ClassCounts{0: 120, 1: 45}); !reflect.DeepEqual(rep.TrainSet(), want) {
		t.Errorf("expected %v, got %v", want, rep.TrainSet())
	}
}

func TestParse_HeaderWithNoPairsRecordsEmptyMap(t *testing.T) {
	rep := parseText(t, "Test Set:")
	counts, ok := rep.Distributions[KeyTestSet]
	if !ok {
		t.Fatal("expected test_set key to be present")
	}
	if len(counts) != 0 {
		t.Errorf("expected empty counts, got %v", counts)
	}
	if counts == nil {
		t.Error("expected empty map, got nil")
	}
}

func TestParse_DuplicateLabelsLastWins(t *testing.T) {
	rep := parseText(t, "Train Set: 0: 10 0: 99")
	if want := (ClassCounts{0: 99}); !reflect.DeepEqual(rep.TrainSet(), want) {
		t.Errorf("expected %v, got %v", want, rep.TrainSet())
	}
}

func TestParse_TrailingFlush(t *testing.T) {
	rep := parseText(t, "Class Distribution:\nfirst note\nsecond note")
	if got := rep.Sections[SectionClassDistribution]; got != "first note\nsecond note" {
		t.Errorf("expected trailing flush to capture body, got %q", got)
	}
}

func TestParse_LinesBeforeAnyHeaderDropped(t *testing.T) {
	rep := parseText(t, "preamble one\npreamble two\nClassification Report:\nkept")
	if got := rep.ClassificationReport(); got != "kept" {
		t.Errorf("expected only post-header lines, got %q", got)
	}
	for name, body := range rep.Sections {
		if strings.Contains(body, "preamble") {
			t.Errorf("section %q leaked preamble lines: %q", name, body)
		}
	}
}

func TestParse_EmptyClassificationFlushedOnDistributionHeader(t *testing.T) {
	// The Classification Report -> Class Distribution transition flushes
	// unconditionally, even with no accumulated lines.
	rep := parseText(t, "Classification Report:\nClass Distribution:")
	body, ok := rep.Sections[SectionClassificationReport]
	if !ok {
		t.Fatal("expected classification_report key to be present")
	}
	if body != "" {
		t.Errorf("expected empty body, got %q", body)
	}
}

func TestParse_DistributionBodyDroppedBeforeNextHeader(t *testing.T) {
	// Only the end-of-input flush can emit the class_distribution body;
	// a later header discards it.
	rep := parseText(t, "Class Distribution:\ndoomed note\nClassification Report:\nsurvivor")
	if _, ok := rep.Sections[SectionClassDistribution]; ok {
		t.Errorf("expected class_distribution body to be dropped, got %q", rep.Sections[SectionClassDistribution])
	}
	if got := rep.ClassificationReport(); got != "survivor" {
		t.Errorf("expected %q, got %q", "survivor", got)
	}
}

func TestParse_DistributionLinesDoNotJoinSectionBody(t *testing.T) {
	// Train/Test/SMOTE lines are consumed by pair extraction and must not
	// appear in the open section's text.
	rep := parseText(t, "Class Distribution:\nTrain Set: 0: 1\nplain line")
	if got := rep.Sections[SectionClassDistribution]; got != "plain line" {
		t.Errorf("expected %q, got %q", "plain line", got)
	}
}

func TestParse_SMOTEHeaderNotConsumedByTrainSetRule(t *testing.T) {
	rep := parseText(t, "SMOTE Train Set: 0: 3")
	if rep.TrainSet() != nil {
		t.Errorf("train_set should be absent, got %v", rep.TrainSet())
	}
	if want := (ClassCounts{0: 3}); !reflect.DeepEqual(rep.SMOTETrainSet(), want) {
		t.Errorf("expected %v, got %v", want, rep.SMOTETrainSet())
	}
}

func TestParse_EmptyInput(t *testing.T) {
	rep := Parse(nil)
	if !rep.Empty() {
		t.Errorf("expected empty report, got %+v", rep)
	}
}

func TestParse_LeadingWhitespaceTrimmedBeforeHeaderMatch(t *testing.T) {
	rep := parseText(t, "   Classification Report:\n  indented body  ")
	if got := rep.ClassificationReport(); got != "indented body" {
		t.Errorf("expected trimmed body, got %q", got)
	}
}
