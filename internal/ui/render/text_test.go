package render

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string", "Work Experience", "Work Experience"},
		{"emoji kept", "💼 Work", "💼 Work"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line1\nline2", "line1line2"},
		{"escape dropped", "a\x1b[31mb", "a[31mb"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"c1 control dropped", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"日本語テキスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestCell_ExactWidth(t *testing.T) {
	for _, s := range []string{"", "ab", "a much longer string", "日本語"} {
		if w := lipgloss.Width(Cell(s, 6)); w != 6 {
			t.Errorf("Cell(%q, 6) width = %d", s, w)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 15); got != "left      right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row() narrow = %q", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"fits", "short text", 20, []string{"short text"}},
		{"breaks on words", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"empty", "", 10, nil},
		{"zero width", "text", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.input, tt.width); !slices.Equal(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}
