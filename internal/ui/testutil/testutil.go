// Package testutil helps tests inspect rendered terminal output.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ansiRE  = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	spaceRE = regexp.MustCompile(`\s+`)
)

// StripANSI removes ANSI escape codes so rendered output can be compared as
// plain text.
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// Plain strips styling and collapses whitespace runs into single spaces.
func Plain(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(StripANSI(s), " "))
}

// MeasureWidth returns the visual width of the widest line, ignoring styling.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// FindLine returns the first unstyled line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether any line contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// Lines splits unstyled output into lines without trailing empty lines.
func Lines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
