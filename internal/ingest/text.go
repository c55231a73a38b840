package ingest

import (
	"bufio"
	"io"
)

// TextExtractor handles plain-text reports. Every line is preserved,
// blanks included, since blank lines inside a section are part of its
// body.
type TextExtractor struct{}

func (e *TextExtractor) Lines(r io.Reader, filename string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
