package tags

import "testing"

func TestTag_Year(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
	}{
		{"empty", "", 0},
		{"year only", "2023", 2023},
		{"full date", "2023-06-15", 2023},
		{"invalid", "invalid", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := &Tag{Date: tt.date}
			if got := tag.Year(); got != tt.want {
				t.Errorf("Year() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.wav", true},
		{"song.opus", true},
		{"song.ogg", true},
		{"song.oga", true},
		{"song.m4a", true},
		{"song.mp4", true},
		{"cover.jpg", false},
		{"song.txt", false},
		{"song", false},
		{"/path/to/music.flac", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseTrackNumber(t *testing.T) {
	tests := []struct {
		input     string
		wantNum   int
		wantTotal int
	}{
		{"", 0, 0},
		{"5", 5, 0},
		{"5/10", 5, 10},
		{" 3 / 12 ", 3, 12},
		{"invalid", 0, 0},
		{"5/invalid", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			num, total := parseTrackNumber(tt.input)
			if num != tt.wantNum || total != tt.wantTotal {
				t.Errorf("parseTrackNumber(%q) = %d, %d; want %d, %d",
					tt.input, num, total, tt.wantNum, tt.wantTotal)
			}
		})
	}
}

func TestCommentMap(t *testing.T) {
	got := commentMap([]string{"artist=", "DATE", "Artist=second", "=x", "genre=a=b"})

	if v, ok := got["ARTIST"]; !ok || v != "" {
		t.Errorf("ARTIST = %q, %v; want first (empty) value kept", v, ok)
	}
	if _, ok := got["DATE"]; ok {
		t.Error("comment without '=' should be ignored")
	}
	if _, ok := got[""]; ok {
		t.Error("comment with an empty field name should be ignored")
	}
	if got["GENRE"] != "a=b" {
		t.Errorf("GENRE = %q, want value split on the first '='", got["GENRE"])
	}
	if len(commentMap(nil)) != 0 {
		t.Error("nil comments should give an empty map")
	}
}
