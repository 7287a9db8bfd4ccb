// Package tags reads metadata and stream properties from music files.
// It covers MP3, FLAC, WAV, Opus/Ogg and M4A.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// File extensions supported by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// Picture is embedded or folder artwork.
type Picture struct {
	MIMEType string
	Data     []byte
}

// Tag contains the metadata shelf keeps about a track.
type Tag struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Genre       string
	Composer    string
	Lyrics      string
	Date        string // YYYY-MM-DD or YYYY

	TrackNumber int
	DiscNumber  int

	Picture *Picture
}

// Year derives the year from the Date field.
// Returns 0 if Date is empty or cannot be parsed.
func (t *Tag) Year() int {
	if t.Date == "" {
		return 0
	}
	year := t.Date
	if len(year) > 4 {
		year = year[:4]
	}
	y, _ := strconv.Atoi(year)
	return y
}

// AudioInfo contains audio stream properties (not tags).
type AudioInfo struct {
	Duration   time.Duration
	Format     string // MP3, FLAC, WAV, OPUS, VORBIS, AAC, ALAC, M4A
	SampleRate int
	BitDepth   int
}

// FileInfo combines Tag and AudioInfo for a complete file description.
type FileInfo struct {
	Tag
	AudioInfo
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch ext(path) {
	case ExtMP3, ExtFLAC, ExtWAV, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4:
		return true
	}
	return false
}

// fillDefaults applies the fallbacks every reader shares. AlbumArtist is
// left empty when the file has none so callers can tell it was missing.
func (t *Tag) fillDefaults() {
	if t.Title == "" {
		t.Title = filepath.Base(t.Path)
	}
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// number parses a track/disc number that may be "N" or "N/M".
func (t taglibTags) number(key string) int {
	n, _ := parseTrackNumber(t.get(key))
	return n
}

// parseTrackNumber parses a track number string like "5" or "5/10".
func parseTrackNumber(s string) (num, total int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, "/", 2)
	num, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		total, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return num, total
}
