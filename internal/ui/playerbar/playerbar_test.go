package playerbar

import (
	"strings"
	"testing"

	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/transport"
	"github.com/jojongai/portfolio/internal/ui/testutil"
)

func playingView() transport.View {
	return transport.View{
		State:           transport.StatePlaying,
		Title:           "Software Engineer",
		Subtitle:        "Acme Corp",
		Position:        83,
		Duration:        200,
		Volume:          1,
		Playing:         true,
		ControlsEnabled: true,
	}
}

func TestRender_Compact(t *testing.T) {
	icons.Init("none")
	out := testutil.StripANSI(Render(playingView(), 120, ModeCompact))

	for _, want := range []string{"Software Engineer", "Acme Corp", "1:23 / 3:20", "||", "vol 100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("compact bar missing %q:\n%s", want, out)
		}
	}
	if lines := testutil.Lines(out); len(lines) != Height(ModeCompact) {
		t.Errorf("compact bar has %d lines, want %d", len(lines), Height(ModeCompact))
	}
	if w := testutil.MeasureWidth(out); w > 120 {
		t.Errorf("compact bar width = %d, exceeds 120", w)
	}
}

func TestRender_Empty(t *testing.T) {
	icons.Init("none")
	v := transport.View{State: transport.StateEmpty, Volume: 1}

	out := testutil.StripANSI(Render(v, 100, ModeCompact))

	if !strings.Contains(out, "No song selected") {
		t.Errorf("empty bar should say nothing is selected:\n%s", out)
	}
	if !strings.Contains(out, "0:00 / 0:00") {
		t.Errorf("empty bar should show zero times:\n%s", out)
	}
	if strings.Contains(out, "━") {
		t.Error("empty bar must not show progress")
	}
}

func TestRender_Expanded(t *testing.T) {
	icons.Init("none")
	v := playingView()
	v.State = transport.StatePaused
	v.Playing = false
	v.Shuffle = true
	v.Repeat = transport.RepeatAll
	v.Volume = 0
	v.Muted = true

	out := testutil.StripANSI(Render(v, 80, ModeExpanded))
	lines := testutil.Lines(out)

	if len(lines) != Height(ModeExpanded) {
		t.Fatalf("expanded bar has %d lines, want %d:\n%s", len(lines), Height(ModeExpanded), out)
	}
	if !strings.Contains(lines[1], "Software Engineer") || !strings.Contains(lines[2], "Acme Corp") {
		t.Errorf("title rows wrong:\n%s", out)
	}
	for _, want := range []string{">", "1:23", "3:20", "[S]", "[R]", "mute   0%"} {
		if !strings.Contains(lines[3], want) {
			t.Errorf("controls row missing %q: %q", want, lines[3])
		}
	}
}

func TestRender_ExpandedFallsBackWhenNarrow(t *testing.T) {
	icons.Init("none")
	out := testutil.StripANSI(Render(playingView(), 30, ModeExpanded))
	if n := len(testutil.Lines(out)); n != Height(ModeCompact) {
		t.Errorf("narrow expanded bar has %d lines, want compact height", n)
	}
}

func TestRender_FailedShowsUnavailable(t *testing.T) {
	icons.Init("none")
	v := playingView()
	v.Failed = true
	v.State = transport.StatePaused
	v.ControlsEnabled = false

	out := testutil.StripANSI(Render(v, 100, ModeExpanded))
	if !strings.Contains(out, "Audio unavailable") {
		t.Errorf("failed bar should say audio is unavailable:\n%s", out)
	}
}

func TestProgressBar(t *testing.T) {
	v := playingView()
	v.Position, v.Duration = 50, 200

	bar := testutil.StripANSI(progressBar(v, 20))
	if got := strings.Count(bar, "━"); got != 5 {
		t.Errorf("filled cells = %d, want 5", got)
	}
	if got := strings.Count(bar, "─"); got != 15 {
		t.Errorf("empty cells = %d, want 15", got)
	}
}
