package report

import (
	"regexp"
	"strconv"
	"strings"
)

// sectionKind identifies which free-form section, if any, is currently
// accumulating lines.
type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionClassification
	sectionDistribution
)

func (k sectionKind) key() string {
	switch k {
	case sectionClassification:
		return SectionClassificationReport
	case sectionDistribution:
		return SectionClassDistribution
	}
	return ""
}

// classCountPattern matches one "label: count" pair. The space after the
// colon is optional.
var classCountPattern = regexp.MustCompile(`(\d+): ?(\d+)`)

// Parse scans the lines of a results file and extracts the structured
// fields. It is a single pass holding one open-section cursor, and it
// never fails: lines outside any section that match no header are
// dropped.
//
// Only two transitions emit a section body: Classification Report
// followed by Class Distribution, and the flush of whatever section is
// still open at end of input. A section body cut off by any other header
// is discarded.
func Parse(lines []string) Report {
	rep := New()

	current := sectionNone
	var body []string

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "Classification Report:"):
			current = sectionClassification
			body = nil

		case strings.HasPrefix(line, "Class Distribution:"):
			if current == sectionClassification {
				rep.Sections[current.key()] = strings.Join(body, "\n")
			}
			current = sectionDistribution
			body = nil

		case strings.HasPrefix(line, "Train Set:"):
			rep.Distributions[KeyTrainSet] = extractClassCounts(line)

		case strings.HasPrefix(line, "Test Set:"):
			rep.Distributions[KeyTestSet] = extractClassCounts(line)

		case strings.HasPrefix(line, "SMOTE Train Set:"):
			rep.Distributions[KeySMOTETrainSet] = extractClassCounts(line)

		case current != sectionNone:
			body = append(body, line)
		}
	}

	if current != sectionNone && len(body) > 0 {
		rep.Sections[current.key()] = strings.Join(body, "\n")
	}

	return rep
}

// extractClassCounts pulls every "label: count" pair out of a line.
// Duplicate labels keep the last occurrence.
func extractClassCounts(line string) ClassCounts {
	counts := make(ClassCounts)
	for _, m := range classCountPattern.FindAllStringSubmatch(line, -1) {
		label, err := strconv.Atoi(m[1])
		if err != nil {
			continue // digits guaranteed; only overflow lands here
		}
		count, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		counts[label] = count
	}
	return counts
}
