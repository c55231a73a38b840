package viz

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/dgallion1/evaldash/internal/report"
)

func sampleReport() report.Report {
	rep := report.New()
	rep.Distributions[report.KeyTrainSet] = report.ClassCounts{1: 50, 0: 100}
	rep.Distributions[report.KeyTestSet] = report.ClassCounts{0: 20, 1: 10}
	rep.Distributions[report.KeySMOTETrainSet] = report.ClassCounts{0: 100, 1: 100}
	return rep
}

func TestDistributionBars_GroupedAndOrdered(t *testing.T) {
	bars := DistributionBars(sampleReport())

	want := []Bar{
		{Dataset: "Train Set", Class: 0, Count: 100},
		{Dataset: "Train Set", Class: 1, Count: 50},
		{Dataset: "Test Set", Class: 0, Count: 20},
		{Dataset: "Test Set", Class: 1, Count: 10},
		{Dataset: "SMOTE Train Set", Class: 0, Count: 100},
		{Dataset: "SMOTE Train Set", Class: 1, Count: 100},
	}
	if !reflect.DeepEqual(bars, want) {
		t.Errorf("expected %v, got %v", want, bars)
	}
}

func TestDistributionBars_SkipsAbsentDatasets(t *testing.T) {
	rep := report.New()
	rep.Distributions[report.KeyTestSet] = report.ClassCounts{0: 7}

	bars := DistributionBars(rep)
	want := []Bar{{Dataset: "Test Set", Class: 0, Count: 7}}
	if !reflect.DeepEqual(bars, want) {
		t.Errorf("expected %v, got %v", want, bars)
	}
}

func TestRenderDistributionPNG_NoData(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDistributionPNG(&buf, report.New(), 720, 480)
	if !errors.Is(err, ErrNoDistribution) {
		t.Fatalf("expected ErrNoDistribution, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on error, got %d bytes", buf.Len())
	}
}

func TestRenderDistributionPNG_WritesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDistributionPNG(&buf, sampleReport(), 720, 480); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	magic := []byte{0x89, 'P', 'N', 'G'}
	if buf.Len() < len(magic) || !bytes.Equal(buf.Bytes()[:len(magic)], magic) {
		t.Errorf("output does not look like a PNG (got %d bytes)", buf.Len())
	}
}
