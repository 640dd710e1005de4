package catalog

import (
	"encoding/json"
	"testing"
)

func TestImageRef_IsAsset(t *testing.T) {
	tests := []struct {
		ref  ImageRef
		want bool
	}{
		{"", false},
		{"💼", false},
		{"🚀", false},
		{"/png/work.png", true},
		{"cover.JPG", true},
		{"https://example.com/x", true},
	}
	for _, tt := range tests {
		if got := tt.ref.IsAsset(); got != tt.want {
			t.Errorf("%q.IsAsset() = %v, want %v", tt.ref, got, tt.want)
		}
	}
	if g := ImageRef("/png/a.png").Glyph(); g != "" {
		t.Errorf("Glyph() of asset = %q, want empty", g)
	}
}

func TestPlayable_FiltersItemsWithoutMedia(t *testing.T) {
	items := []Item{
		{ID: "1"},
		{ID: "2", MediaPath: "a"},
		{ID: "3", MediaPath: "  "},
		{ID: "4", MediaPath: "b"},
	}

	got := Playable(items)

	if len(got) != 2 {
		t.Fatalf("len(Playable) = %d, want 2", len(got))
	}
	if got[0].Item.ID != "2" || got[0].RawIndex != 1 {
		t.Errorf("got[0] = %s@%d, want 2@1", got[0].Item.ID, got[0].RawIndex)
	}
	if got[1].Item.ID != "4" || got[1].RawIndex != 3 {
		t.Errorf("got[1] = %s@%d, want 4@3", got[1].Item.ID, got[1].RawIndex)
	}
}

func TestPlaylist_Kind(t *testing.T) {
	if k := (Playlist{ID: WorkPlaylistID}).Kind(); k != CategoryWork {
		t.Errorf("Kind() = %q, want work", k)
	}
	if k := (Playlist{ID: WorkPlaylistID, Category: CategoryHobbies}).Kind(); k != CategoryHobbies {
		t.Errorf("explicit category ignored: %q", k)
	}
	if k := (Playlist{ID: "x"}).Kind(); k != CategoryGeneric {
		t.Errorf("Kind() = %q, want generic", k)
	}
}

func TestPlaylist_CloneDoesNotShareItems(t *testing.T) {
	p := Playlist{ID: "p", Items: []Item{{ID: "a", Accomplishments: []string{"x"}}}}

	c := p.Clone()
	c.Items[0].ID = "changed"
	c.Items[0].Accomplishments[0] = "y"

	if p.Items[0].ID != "a" || p.Items[0].Accomplishments[0] != "x" {
		t.Error("Clone() shares backing arrays with the original")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cat  Category
		item Item
		want Display
	}{
		{
			name: "work prefers role and company",
			cat:  CategoryWork,
			item: Item{Title: "Engineer at X", Role: "Engineer", Company: "X", Duration: "2 years"},
			want: Display{Primary: "Engineer", Secondary: "X", Column: "2 years", Kind: "Experience"},
		},
		{
			name: "work falls back to title and artist",
			cat:  CategoryWork,
			item: Item{Title: "Intern", Artist: "2020 - 2021", Location: "Toronto"},
			want: Display{Primary: "Intern", Secondary: "2020 - 2021", Column: "Toronto", Kind: "Experience"},
		},
		{
			name: "hobbies use name and category",
			cat:  CategoryHobbies,
			item: Item{Name: "Photography", Category: "Creative", Description: "lens"},
			want: Display{Primary: "Photography", Secondary: "lens", Column: "Creative", Kind: "Interest"},
		},
		{
			name: "projects show duration",
			cat:  CategoryProjects,
			item: Item{Title: "Portfolio", Artist: "React", Duration: "2 weeks", Location: "Web"},
			want: Display{Primary: "Portfolio", Secondary: "React", Column: "2 weeks", Kind: "Project"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.cat, tt.item); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHeadersFor(t *testing.T) {
	h := HeadersFor(CategoryHobbies)
	if h.Label != "Collection" || h.Noun != "items" || h.Column != "Category" {
		t.Errorf("hobbies headers = %+v", h)
	}
	if h := HeadersFor(CategoryProjects); h.Column != "Duration" {
		t.Errorf("projects column = %q, want Duration", h.Column)
	}
	if h := HeadersFor(CategoryWork); h.Column != "Location" || h.Noun != "songs" {
		t.Errorf("work headers = %+v", h)
	}
}

func TestUnmarshal_LegacyDocument(t *testing.T) {
	doc := `{
		"id": "work-experience-playlist-id",
		"title": "Work Experience",
		"description": "jobs",
		"imageUrl": "💼",
		"imagePng": "/png/work.png",
		"songs": [
			{"id": "a", "title": "A", "mp3Path": "/audio/a.mp3", "songCover": "/png/a.png", "songRelationship": "rel"},
			{"id": "b", "title": "B"}
		]
	}`

	var p Playlist
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if p.ImageReference != "/png/work.png" {
		t.Errorf("ImageReference = %q, want asset path", p.ImageReference)
	}
	if len(p.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(p.Items))
	}
	a := p.Items[0]
	if a.MediaPath != "/audio/a.mp3" || a.Cover != "/png/a.png" || a.Relationship != "rel" {
		t.Errorf("legacy item fields not mapped: %+v", a)
	}
	if p.Items[1].Playable() {
		t.Error("item without mp3Path should not be playable")
	}
}

func TestUnmarshal_NewNamesWin(t *testing.T) {
	doc := `{"id":"p","title":"t","description":"d","imageReference":"🚀","imageUrl":"⚡",
		"items":[{"id":"a","mediaPath":"/new.mp3","mp3Path":"/old.mp3"}],"songs":[{"id":"z"}]}`

	var p Playlist
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if p.ImageReference != "🚀" {
		t.Errorf("ImageReference = %q, want 🚀", p.ImageReference)
	}
	if len(p.Items) != 1 || p.Items[0].MediaPath != "/new.mp3" {
		t.Errorf("Items = %+v, want the items array with new media path", p.Items)
	}
}
