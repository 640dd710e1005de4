package catalog

import "encoding/json"

// UnmarshalJSON accepts both the current field names and the legacy
// document shape (mp3Path, imageUrl/imagePng, songCover, songRelationship).
func (it *Item) UnmarshalJSON(b []byte) error {
	type plain Item
	var aux struct {
		plain
		MP3Path          string `json:"mp3Path"`
		ImageURL         string `json:"imageUrl"`
		ImagePNG         string `json:"imagePng"`
		SongCover        string `json:"songCover"`
		SongRelationship string `json:"songRelationship"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*it = Item(aux.plain)
	if it.MediaPath == "" {
		it.MediaPath = aux.MP3Path
	}
	if it.ImageReference == "" {
		it.ImageReference = ImageRef(first(aux.ImagePNG, aux.ImageURL))
	}
	if it.Cover == "" {
		it.Cover = aux.SongCover
	}
	if it.Relationship == "" {
		it.Relationship = aux.SongRelationship
	}
	return nil
}

// UnmarshalJSON accepts both "items" and the legacy "songs" key, and the
// legacy imageUrl/imagePng pair. An asset image wins over a glyph.
func (p *Playlist) UnmarshalJSON(b []byte) error {
	type plain Playlist
	var aux struct {
		plain
		Songs    []Item `json:"songs"`
		ImageURL string `json:"imageUrl"`
		ImagePNG string `json:"imagePng"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Playlist(aux.plain)
	if p.Items == nil {
		p.Items = aux.Songs
	}
	if p.ImageReference == "" {
		p.ImageReference = ImageRef(first(aux.ImagePNG, aux.ImageURL))
	}
	return nil
}
