package playback

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/jojongai/portfolio/internal/catalog"
	"github.com/jojongai/portfolio/internal/route"
)

// fakeNav records navigations.
type fakeNav struct {
	current route.Route
	visited []route.Route
}

func (n *fakeNav) Current() route.Route { return n.current }

func (n *fakeNav) Navigate(r route.Route) {
	n.current = r
	n.visited = append(n.visited, r)
}

func newTestService(nav Navigator) Service {
	return New(nav, zerolog.Nop())
}

// examplePlaylist is [1:-, 2:a, 3:-, 4:b].
func examplePlaylist() *catalog.Playlist {
	return &catalog.Playlist{
		ID: "p",
		Items: []catalog.Item{
			{ID: "1"},
			{ID: "2", MediaPath: "a"},
			{ID: "3"},
			{ID: "4", MediaPath: "b"},
		},
	}
}

func playlistOf(ids ...string) *catalog.Playlist {
	p := &catalog.Playlist{ID: "p"}
	for _, id := range ids {
		p.Items = append(p.Items, catalog.Item{ID: id, MediaPath: "/audio/" + id + ".mp3"})
	}
	return p
}

func selectAt(svc Service, p *catalog.Playlist, i int) {
	svc.Select(p.Items[i], p, i)
}

func TestNew_EmptySelection(t *testing.T) {
	svc := newTestService(nil)

	sel := svc.Selection()
	if sel.HasItem() || sel.Playlist != nil || sel.Index != -1 || sel.IsPlayingIntent {
		t.Errorf("initial Selection() = %+v, want empty", sel)
	}
	if svc.SelectedItem() != nil || svc.SelectedPlaylist() != nil {
		t.Error("SelectedItem/SelectedPlaylist should be nil initially")
	}
}

func TestSelect_ForcesPlayingIntent(t *testing.T) {
	svc := newTestService(nil)
	p := examplePlaylist()

	if svc.IsPlayingIntent() {
		t.Fatal("intent should start false")
	}
	selectAt(svc, p, 1)
	if !svc.IsPlayingIntent() {
		t.Error("Select() should set intent to playing")
	}

	svc.TogglePlayPause()
	selectAt(svc, p, 3)
	if !svc.IsPlayingIntent() {
		t.Error("Select() should set intent to playing regardless of prior value")
	}

	svc.TogglePlayPause()
	selectAt(svc, p, 3)
	if !svc.IsPlayingIntent() {
		t.Error("re-selecting the same item should restart playing intent")
	}
}

func TestSelect_RecordsPlaylistAndIndex(t *testing.T) {
	svc := newTestService(nil)
	p := examplePlaylist()

	selectAt(svc, p, 3)

	sel := svc.Selection()
	if sel.ItemID() != "4" || sel.PlaylistID() != "p" || sel.Index != 3 {
		t.Errorf("Selection() = item %q playlist %q index %d", sel.ItemID(), sel.PlaylistID(), sel.Index)
	}
	if sel.MediaPath() != "b" {
		t.Errorf("MediaPath() = %q, want b", sel.MediaPath())
	}
}

func TestSelect_CopiesInput(t *testing.T) {
	svc := newTestService(nil)
	p := examplePlaylist()
	selectAt(svc, p, 1)

	p.Items[1].MediaPath = "changed"
	p.Items = p.Items[:1]

	sel := svc.Selection()
	if sel.MediaPath() != "a" || len(sel.Playlist.Items) != 4 {
		t.Error("coordinator state changed through the caller's playlist")
	}

	sel.Playlist.Items[3].ID = "mutated"
	if svc.SelectedPlaylist().Items[3].ID != "4" {
		t.Error("coordinator state changed through a snapshot")
	}
}

func TestSelectItem_Standalone(t *testing.T) {
	svc := newTestService(nil)
	p := examplePlaylist()
	selectAt(svc, p, 1)

	svc.SelectItem(catalog.Item{ID: "loose", MediaPath: "/x.mp3"})

	sel := svc.Selection()
	if sel.Playlist != nil || sel.Index != -1 {
		t.Errorf("standalone selection kept playlist %q index %d", sel.PlaylistID(), sel.Index)
	}
	if _, ok := sel.DetailRoute(); ok {
		t.Error("standalone selection should have no detail route")
	}

	svc.Next()
	svc.Previous()
	if svc.Selection().ItemID() != "loose" {
		t.Error("traversal without a playlist should be a no-op")
	}
}

func TestSelect_NilPlaylistResetsIndex(t *testing.T) {
	svc := newTestService(nil)

	svc.Select(catalog.Item{ID: "x"}, nil, 5)

	if svc.Selection().Index != -1 {
		t.Errorf("Index = %d, want -1 without a playlist", svc.Selection().Index)
	}
}

func TestTogglePlayPause_TwiceIsIdentity(t *testing.T) {
	for _, start := range []bool{false, true} {
		svc := newTestService(nil)
		if start {
			selectAt(svc, examplePlaylist(), 1)
		}
		before := svc.Selection()

		svc.TogglePlayPause()
		if svc.IsPlayingIntent() == start {
			t.Errorf("start=%v: single toggle did not flip intent", start)
		}
		svc.TogglePlayPause()

		after := svc.Selection()
		if after.IsPlayingIntent != start {
			t.Errorf("start=%v: double toggle gave %v", start, after.IsPlayingIntent)
		}
		if after.ItemID() != before.ItemID() {
			t.Errorf("toggle changed the selected item")
		}
	}
}

func TestNext_SkipsItemsWithoutMedia(t *testing.T) {
	svc := newTestService(nil)
	p := examplePlaylist()
	selectAt(svc, p, 1)

	svc.Next()
	if sel := svc.Selection(); sel.ItemID() != "4" || sel.Index != 3 {
		t.Errorf("after Next() = %s@%d, want 4@3", sel.ItemID(), sel.Index)
	}

	svc.Next()
	if sel := svc.Selection(); sel.ItemID() != "2" || sel.Index != 1 {
		t.Errorf("after second Next() = %s@%d, want wrap to 2@1", sel.ItemID(), sel.Index)
	}
}

func TestPrevious_WrapsToLast(t *testing.T) {
	svc := newTestService(nil)
	p := examplePlaylist()
	selectAt(svc, p, 1)

	svc.Previous()

	if sel := svc.Selection(); sel.ItemID() != "4" || sel.Index != 3 {
		t.Errorf("after Previous() = %s@%d, want 4@3", sel.ItemID(), sel.Index)
	}
}

func TestNext_FullCycleReturnsToStart(t *testing.T) {
	playlists := []*catalog.Playlist{
		examplePlaylist(),
		playlistOf("a"),
		playlistOf("a", "b", "c", "d", "e"),
	}
	for _, p := range playlists {
		n := len(catalog.Playable(p.Items))
		for start := range p.Items {
			svc := newTestService(nil)
			selectAt(svc, p, start)
			if !p.Items[start].Playable() {
				// Selecting an unplayable item enters the cycle on the first
				// Next; closure is measured from there.
				svc.Next()
			}
			origin := svc.Selection().Index

			for range n {
				svc.Next()
			}

			if got := svc.Selection().Index; got != origin {
				t.Errorf("playlist %d items, start %d: after %d nexts index = %d, want %d",
					len(p.Items), start, n, got, origin)
			}
		}
	}
}

func TestPreviousAfterNext_IsInverse(t *testing.T) {
	p := playlistOf("a", "b", "c")
	for start := range p.Items {
		svc := newTestService(nil)
		selectAt(svc, p, start)

		svc.Next()
		svc.Previous()

		if got := svc.Selection().Index; got != start {
			t.Errorf("start %d: next then previous landed on %d", start, got)
		}
	}
}

func TestTraversal_SinglePlayableIsIdempotent(t *testing.T) {
	svc := newTestService(nil)
	p := &catalog.Playlist{ID: "p", Items: []catalog.Item{{ID: "x"}, {ID: "only", MediaPath: "m"}}}
	selectAt(svc, p, 1)

	svc.Next()
	if svc.Selection().ItemID() != "only" {
		t.Error("Next() with one playable item should stay put")
	}
	svc.Previous()
	if svc.Selection().ItemID() != "only" {
		t.Error("Previous() with one playable item should stay put")
	}
}

func TestTraversal_FromUnplayableSelection(t *testing.T) {
	p := examplePlaylist()

	svc := newTestService(nil)
	selectAt(svc, p, 0)
	svc.Next()
	if sel := svc.Selection(); sel.ItemID() != "2" {
		t.Errorf("Next() from item without media = %s, want first playable 2", sel.ItemID())
	}

	svc = newTestService(nil)
	selectAt(svc, p, 2)
	svc.Previous()
	if sel := svc.Selection(); sel.ItemID() != "4" {
		t.Errorf("Previous() from item without media = %s, want last playable 4", sel.ItemID())
	}
}

func TestTraversal_NoPlayableItemsIsNoOp(t *testing.T) {
	svc := newTestService(nil)
	p := &catalog.Playlist{ID: "p", Items: []catalog.Item{{ID: "1"}, {ID: "2", MediaPath: "  "}}}
	selectAt(svc, p, 0)
	svc.TogglePlayPause()
	sub := svc.Subscribe()

	svc.Next()
	svc.Previous()

	sel := svc.Selection()
	if sel.ItemID() != "1" || sel.IsPlayingIntent {
		t.Errorf("no-op traversal altered state: %+v", sel)
	}
	select {
	case e := <-sub.SelectionChanged:
		t.Errorf("unexpected selection event %+v", e)
	default:
	}
}

func TestTraversal_EmptyPlaylistIsNoOp(t *testing.T) {
	svc := newTestService(nil)
	svc.Select(catalog.Item{ID: "x"}, &catalog.Playlist{ID: "empty"}, 0)

	svc.Next()

	if svc.Selection().ItemID() != "x" {
		t.Error("Next() on an empty playlist changed the selection")
	}
}

func TestTraversal_NothingSelectedIsNoOp(t *testing.T) {
	svc := newTestService(nil)

	svc.Next()
	svc.Previous()

	if svc.Selection().HasItem() {
		t.Error("traversal with nothing selected selected something")
	}
}

func TestTraversal_SyncsDetailRoute(t *testing.T) {
	tests := []struct {
		name    string
		current route.Route
		want    route.Route
		moved   bool
	}{
		{
			name:    "song page follows",
			current: route.Song("p", "2"),
			want:    route.Song("p", "4"),
			moved:   true,
		},
		{
			name:    "relationship sub-view is preserved",
			current: route.Relationship("p", "2"),
			want:    route.Relationship("p", "4"),
			moved:   true,
		},
		{
			name:    "playlist listing stays",
			current: route.Playlist("p"),
			want:    route.Playlist("p"),
		},
		{
			name:    "home stays",
			current: route.Home(),
			want:    route.Home(),
		},
		{
			name:    "detail page of another item stays",
			current: route.Song("p", "4"),
			want:    route.Song("p", "4"),
		},
		{
			name:    "same item id in another playlist stays",
			current: route.Song("other", "2"),
			want:    route.Song("other", "2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &fakeNav{current: tt.current}
			svc := newTestService(nav)
			selectAt(svc, examplePlaylist(), 1)

			svc.Next()

			if nav.current != tt.want {
				t.Errorf("route = %v, want %v", nav.current, tt.want)
			}
			if moved := len(nav.visited) > 0; moved != tt.moved {
				t.Errorf("navigated = %v, want %v", moved, tt.moved)
			}
			if svc.Selection().ItemID() != "4" {
				t.Error("selection should advance regardless of route")
			}
		})
	}
}

func TestSetPlaying(t *testing.T) {
	svc := newTestService(nil)
	selectAt(svc, examplePlaylist(), 1)
	sub := svc.Subscribe()

	svc.SetPlaying(true)
	select {
	case e := <-sub.IntentChanged:
		t.Errorf("SetPlaying to the current value emitted %+v", e)
	default:
	}

	svc.SetPlaying(false)
	if svc.IsPlayingIntent() {
		t.Error("SetPlaying(false) did not clear intent")
	}
	if e := <-sub.IntentChanged; e.Playing {
		t.Error("IntentChange.Playing = true, want false")
	}
}
