package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3ExtendedTags fills the date, composer, lyrics and picture from
// ID3v2 frames when dhowden/tag left them empty.
func readMP3ExtendedTags(path string, t *Tag) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3tag.Close()

	if date := id3Date(id3tag); date != "" {
		t.Date = date
	}
	if t.Composer == "" {
		t.Composer = getID3TextFrame(id3tag, "TCOM")
	}
	if t.Lyrics == "" {
		t.Lyrics = getID3Lyrics(id3tag)
	}
	if t.Picture == nil {
		t.Picture = getID3Picture(id3tag)
	}
}

// readMP3WithID3v2 reads MP3 metadata using only the id3v2 library.
func readMP3WithID3v2(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	track, _ := parseTrackNumber(getID3TextFrame(id3tag, "TRCK"))
	disc, _ := parseTrackNumber(getID3TextFrame(id3tag, "TPOS"))

	t := &Tag{
		Path:        path,
		Title:       id3tag.Title(),
		Artist:      id3tag.Artist(),
		AlbumArtist: getID3TextFrame(id3tag, "TPE2"),
		Album:       id3tag.Album(),
		Genre:       id3tag.Genre(),
		Composer:    getID3TextFrame(id3tag, "TCOM"),
		Lyrics:      getID3Lyrics(id3tag),
		Date:        id3Date(id3tag),
		TrackNumber: track,
		DiscNumber:  disc,
		Picture:     getID3Picture(id3tag),
	}
	t.fillDefaults()
	return t, nil
}

// id3Date reads the ID3v2.4 recording date, or the v2.3 year and DDMM frames.
func id3Date(id3tag *id3v2.Tag) string {
	if date := getID3TextFrame(id3tag, "TDRC"); date != "" {
		return date
	}
	year := getID3TextFrame(id3tag, "TYER")
	if year == "" {
		return ""
	}
	if tdat := getID3TextFrame(id3tag, "TDAT"); len(tdat) == 4 {
		return year + "-" + tdat[2:4] + "-" + tdat[0:2]
	}
	return year
}

// getID3TextFrame reads a text frame value from an ID3v2 tag.
func getID3TextFrame(id3tag *id3v2.Tag, frameID string) string {
	frames := id3tag.GetFrames(frameID)
	if len(frames) == 0 {
		return ""
	}
	if tf, ok := frames[0].(id3v2.TextFrame); ok {
		return tf.Text
	}
	return ""
}

func getID3Lyrics(id3tag *id3v2.Tag) string {
	for _, frame := range id3tag.GetFrames("USLT") {
		if uslf, ok := frame.(id3v2.UnsynchronisedLyricsFrame); ok && uslf.Lyrics != "" {
			return uslf.Lyrics
		}
	}
	return ""
}

func getID3Picture(id3tag *id3v2.Tag) *Picture {
	for _, frame := range id3tag.GetFrames("APIC") {
		if pic, ok := frame.(id3v2.PictureFrame); ok && len(pic.Picture) > 0 {
			return &Picture{MIMEType: pic.MimeType, Data: pic.Picture}
		}
	}
	return nil
}
