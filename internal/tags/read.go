package tags

import (
	"os"
	"strconv"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
// dhowden/tag is tried first; format-specific readers fill in what it
// misses or take over when it fails.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch ext(path) {
		case ExtMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readMP3WithID3v2(path)
		case ExtFLAC, ExtM4A, ExtMP4, ExtOPUS, ExtOGG, ExtOGA:
			return readWithTaglib(path)
		case ExtWAV:
			// WAV files rarely carry tags; the caller falls back to the path.
			t := &Tag{Path: path}
			t.fillDefaults()
			return t, nil
		}
		return nil, err
	}

	track, _ := m.Track()
	disc, _ := m.Disc()

	t := &Tag{
		Path:        path,
		Title:       m.Title(),
		Artist:      m.Artist(),
		AlbumArtist: m.AlbumArtist(),
		Album:       m.Album(),
		Genre:       m.Genre(),
		Composer:    m.Composer(),
		Lyrics:      m.Lyrics(),
		Date:        yearToDate(m.Year()),
		TrackNumber: track,
		DiscNumber:  disc,
	}
	if p := m.Picture(); p != nil && len(p.Data) > 0 {
		t.Picture = &Picture{MIMEType: p.MIMEType, Data: p.Data}
	}

	switch ext(path) {
	case ExtMP3:
		readMP3ExtendedTags(path, t)
	case ExtFLAC:
		readFLACExtendedTags(path, t)
	}

	t.fillDefaults()
	return t, nil
}

// ReadWithAudio reads both tag metadata and audio stream properties.
// Unreadable tags degrade to a title derived from the file name; an
// unreadable stream is an error.
func ReadWithAudio(path string) (*FileInfo, error) {
	t, err := Read(path)
	if err != nil {
		t = &Tag{Path: path}
		t.fillDefaults()
	}

	audio, err := ReadAudioInfo(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Tag:       *t,
		AudioInfo: *audio,
	}, nil
}

// yearToDate converts a year integer to a date string.
// Returns empty string for year 0.
func yearToDate(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
