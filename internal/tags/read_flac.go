package tags

import (
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// readFLACExtendedTags fills the date, composer, lyrics and cover from the
// FLAC metadata blocks when dhowden/tag left them empty.
func readFLACExtendedTags(path string, t *Tag) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return
	}

	for _, meta := range f.Meta {
		switch meta.Type {
		case goflac.VorbisComment:
			cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				continue
			}
			applyFLACComments(commentMap(cmts.Comments), t)
		case goflac.Picture:
			if t.Picture != nil {
				continue
			}
			pic, err := flacpicture.ParseFromMetaDataBlock(*meta)
			if err != nil || len(pic.ImageData) == 0 {
				continue
			}
			t.Picture = &Picture{MIMEType: pic.MIME, Data: pic.ImageData}
		}
	}
}

func applyFLACComments(comments map[string]string, t *Tag) {
	if date := firstOf(comments, "DATE", "YEAR"); date != "" {
		t.Date = date
	}
	if t.Composer == "" {
		t.Composer = comments["COMPOSER"]
	}
	if t.Lyrics == "" {
		t.Lyrics = firstOf(comments, "LYRICS", "UNSYNCEDLYRICS")
	}
}

func firstOf(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := m[k]; v != "" {
			return v
		}
	}
	return ""
}

// commentMap keys "FIELD=value" comments by upper-case field name. The first
// value of a repeated field wins; comments without '=' are dropped.
func commentMap(lines []string) map[string]string {
	comments := make(map[string]string, len(lines))
	for _, line := range lines {
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" {
			continue
		}
		key = strings.ToUpper(key)
		if _, seen := comments[key]; !seen {
			comments[key] = value
		}
	}
	return comments
}
