package tags

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// Common cover art filenames to look for in album folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"front.jpg", "front.jpeg", "front.png",
}

// FolderCover looks for a cover image next to the tracks of an album.
// Returns nil when the directory has none.
func FolderCover(dir string) *Picture {
	for _, filename := range coverArtFilenames {
		for _, name := range []string{filename, strings.ToUpper(filename)} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil || len(data) == 0 {
				continue
			}
			return &Picture{MIMEType: detectMimeType(data), Data: data}
		}
	}
	return nil
}

// detectMimeType sniffs image data, defaulting to JPEG.
func detectMimeType(data []byte) string {
	if len(data) == 0 {
		return mimeJPEG
	}
	switch http.DetectContentType(data) {
	case mimePNG:
		return mimePNG
	default:
		return mimeJPEG
	}
}
