package tags

import (
	"go.senan.xyz/taglib"
)

// readWithTaglib reads FLAC, M4A and Ogg metadata through TagLib when
// dhowden/tag fails on the file.
func readWithTaglib(path string) (*Tag, error) {
	rawTags, err := taglib.ReadTags(path)
	if err != nil {
		return nil, err
	}
	tags := taglibTags(rawTags)

	t := &Tag{
		Path:        path,
		Title:       tags.get(taglib.Title),
		Artist:      tags.get(taglib.Artist),
		AlbumArtist: tags.get(taglib.AlbumArtist),
		Album:       tags.get(taglib.Album),
		Genre:       tags.get(taglib.Genre),
		Composer:    tags.get("COMPOSER"),
		Lyrics:      tags.get("LYRICS", "UNSYNCEDLYRICS"),
		Date:        tags.get(taglib.Date, "YEAR"),
		TrackNumber: tags.number(taglib.TrackNumber),
		DiscNumber:  tags.number(taglib.DiscNumber),
	}

	if data, err := taglib.ReadImage(path); err == nil && len(data) > 0 {
		t.Picture = &Picture{MIMEType: detectMimeType(data), Data: data}
	}

	t.fillDefaults()
	return t, nil
}
