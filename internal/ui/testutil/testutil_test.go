package testutil

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"truecolor", "\x1b[38;2;29;185;84mgreen\x1b[0m", "green"},
		{"cursor codes", "\x1b[?25lhidden\x1b[2K", "hidden"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlain(t *testing.T) {
	if got := Plain("  \x1b[1mhello\x1b[0m \t\n world  "); got != "hello world" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestLinesAndFind(t *testing.T) {
	out := "first\n\x1b[32msecond line\x1b[0m\nthird\n\n"

	lines := Lines(out)
	if len(lines) != 3 {
		t.Fatalf("Lines() = %q, want 3 lines", lines)
	}
	if got := FindLine(out, "second"); got != "second line" {
		t.Errorf("FindLine() = %q", got)
	}
	if ContainsLine(out, "fourth") {
		t.Error("ContainsLine(fourth) = true")
	}
	if w := MeasureWidth("\x1b[1mab\x1b[0m\nabcd"); w != 4 {
		t.Errorf("MeasureWidth() = %d, want 4", w)
	}
}
