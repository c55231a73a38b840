// Package report parses model-evaluation results files into a structured
// record suitable for rendering and JSON export.
package report

import "encoding/json"

// Section and distribution keys produced by Parse.
const (
	SectionClassificationReport = "classification_report"
	SectionClassDistribution    = "class_distribution"

	KeyTrainSet      = "train_set"
	KeyTestSet       = "test_set"
	KeySMOTETrainSet = "smote_train_set"
)

// ClassCounts maps an integer class label to the number of samples
// bearing that label.
type ClassCounts map[int]int

// Report is the structured form of a model-evaluation results file.
// Sections holds free-form section bodies keyed by section name;
// Distributions holds the per-dataset class counts. A key is present
// exactly when the corresponding header line appeared in the input.
type Report struct {
	Sections      map[string]string
	Distributions map[string]ClassCounts
}

// New returns an empty report with initialized maps.
func New() Report {
	return Report{
		Sections:      make(map[string]string),
		Distributions: make(map[string]ClassCounts),
	}
}

// ClassificationReport returns the classification report text, or "" if
// the section was absent.
func (r Report) ClassificationReport() string {
	return r.Sections[SectionClassificationReport]
}

// TrainSet returns the train-set class counts, or nil if absent.
func (r Report) TrainSet() ClassCounts { return r.Distributions[KeyTrainSet] }

// TestSet returns the test-set class counts, or nil if absent.
func (r Report) TestSet() ClassCounts { return r.Distributions[KeyTestSet] }

// SMOTETrainSet returns the oversampled train-set class counts, or nil
// if absent.
func (r Report) SMOTETrainSet() ClassCounts { return r.Distributions[KeySMOTETrainSet] }

// Empty reports whether nothing was extracted.
func (r Report) Empty() bool {
	return len(r.Sections) == 0 && len(r.Distributions) == 0
}

// MarshalJSON flattens sections and distributions into a single object,
// the shape of the downloadable export. Class labels become decimal
// string keys; a distribution header with no pairs serializes as {}.
func (r Report) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Sections)+len(r.Distributions))
	for name, body := range r.Sections {
		m[name] = body
	}
	for name, counts := range r.Distributions {
		m[name] = counts
	}
	return json.Marshal(m)
}
