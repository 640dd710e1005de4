package catalog

// Category selects how a playlist's items are labelled.
type Category string

const (
	CategoryGeneric  Category = ""
	CategoryWork     Category = "work"
	CategoryProjects Category = "projects"
	CategorySkills   Category = "skills"
	CategoryHobbies  Category = "hobbies"
)

// Well-known playlist ids from the seed catalog.
const (
	WorkPlaylistID     = "work-experience-playlist-id"
	ProjectsPlaylistID = "personal-projects-playlist-id"
	SkillsPlaylistID   = "skills-technologies-playlist-id"
	HobbiesPlaylistID  = "hobbies-and-interests-playlist-id"
)

var categoryByID = map[string]Category{
	WorkPlaylistID:     CategoryWork,
	ProjectsPlaylistID: CategoryProjects,
	SkillsPlaylistID:   CategorySkills,
	HobbiesPlaylistID:  CategoryHobbies,
}

// Display holds the resolved strings a view shows for one item.
type Display struct {
	Primary   string // title column
	Secondary string // details/description column
	Column    string // location/duration/category column
	Kind      string // label on the detail page ("Experience", ...)
}

// Headers are the column titles of a playlist listing.
type Headers struct {
	Label     string // "Playlist" or "Collection"
	Noun      string // "songs" or "items"
	Title     string
	Column    string
	Secondary string
}

// Resolve maps an item's fields to display strings for the given category.
func Resolve(c Category, it Item) Display {
	switch c {
	case CategoryWork:
		return Display{
			Primary:   first(it.Role, it.Title, it.Name),
			Secondary: first(it.Company, it.Artist),
			Column:    first(it.Location, it.Duration),
			Kind:      "Experience",
		}
	case CategoryProjects:
		return Display{
			Primary:   first(it.Title, it.Name),
			Secondary: it.Artist,
			Column:    first(it.Duration, it.Location),
			Kind:      "Project",
		}
	case CategorySkills:
		return Display{
			Primary:   first(it.Title, it.Name),
			Secondary: it.Artist,
			Column:    first(it.Location, it.Duration),
			Kind:      "Skill",
		}
	case CategoryHobbies:
		return Display{
			Primary:   first(it.Name, it.Title),
			Secondary: it.Description,
			Column:    it.Category,
			Kind:      "Interest",
		}
	default:
		return Display{
			Primary:   first(it.Title, it.Name, it.Role),
			Secondary: it.Artist,
			Column:    first(it.Location, it.Duration),
			Kind:      "Song",
		}
	}
}

// HeadersFor returns the listing headers for a category.
func HeadersFor(c Category) Headers {
	h := Headers{
		Label:     "Playlist",
		Noun:      "songs",
		Title:     "Title",
		Column:    "Location",
		Secondary: "Details",
	}
	switch c {
	case CategoryHobbies:
		h.Label = "Collection"
		h.Noun = "items"
		h.Column = "Category"
		h.Secondary = "Description"
	case CategoryProjects:
		h.Column = "Duration"
	}
	return h
}

func first(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
