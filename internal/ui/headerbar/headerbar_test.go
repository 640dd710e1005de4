package headerbar

import (
	"strings"
	"testing"

	"github.com/jojongai/portfolio/internal/icons"
	"github.com/jojongai/portfolio/internal/route"
	"github.com/jojongai/portfolio/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	icons.Init("none")

	out := testutil.StripANSI(Render(route.KindSong, "Work Experience › Engineer", 120))

	for _, want := range []string{"F1 Home", "F2 Profile", "F3 Hobbies", "F4 Liked Songs", "Work Experience › Engineer"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q: %q", want, out)
		}
	}
	if w := testutil.MeasureWidth(out); w != 120 {
		t.Errorf("header width = %d, want 120", w)
	}
}

func TestRender_Narrow(t *testing.T) {
	if got := Render(route.KindHome, "x", 10); got != "" {
		t.Errorf("Render at width 10 = %q, want empty", got)
	}
	out := testutil.StripANSI(Render(route.KindHome, "somewhere", 50))
	if strings.Contains(out, "somewhere") {
		t.Error("location should be dropped when there is no room")
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		in, want route.Kind
	}{
		{route.KindHome, route.KindHome},
		{route.KindPlaylist, route.KindHome},
		{route.KindRelationship, route.KindHome},
		{route.KindProfile, route.KindProfile},
		{route.KindLikedSongs, route.KindLikedSongs},
	}
	for _, tt := range tests {
		if got := Active(tt.in); got != tt.want {
			t.Errorf("Active(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
