package pulsenet

import (
	"regexp"
	"strings"
)

// Sample is a worked example: an input and the expected answer.
//
//	want=32000000
//
//	broadcaster -> a, b, c
//	...
type Sample struct {
	Want  string
	Input string
}

var sampleRx = regexp.MustCompile(`(?s)^\s*want=([^\n]*)(?:\s+(.+?\n))?\s*$`)

// ParseSample parses a want= header followed by the sample input.
func ParseSample(text string) (Sample, bool) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return Sample{}, false
	}
	return Sample{
		Want:  strings.TrimSpace(m[1]),
		Input: m[2],
	}, true
}

// Lines returns the sample input split into lines.
func (s Sample) Lines() []string {
	return Lines(s.Input)
}
