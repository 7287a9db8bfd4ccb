// Package oggtest builds Ogg streams page by page for tests. Checksums are
// left at zero; the reader does not verify them.
package oggtest

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/shelf/internal/ogg"
)

type Writer struct {
	buf bytes.Buffer
}

// Page writes one page holding segments, which are split into lacing
// values.
func (w *Writer) Page(serial uint32, flags byte, granule int64, segments ...[]byte) {
	var lacing []byte
	var body []byte
	for _, seg := range segments {
		n := len(seg)
		for n >= 255 {
			lacing = append(lacing, 255)
			n -= 255
		}
		lacing = append(lacing, byte(n))
		body = append(body, seg...)
	}
	w.RawPage(serial, flags, granule, lacing, body)
}

// RawPage writes a page with explicit lacing values, for packets that
// continue on the next page.
func (w *Writer) RawPage(serial uint32, flags byte, granule int64, lacing, body []byte) {
	var hdr [ogg.HeaderSize]byte
	copy(hdr[:], "OggS")
	hdr[5] = flags
	binary.LittleEndian.PutUint64(hdr[6:], uint64(granule))
	binary.LittleEndian.PutUint32(hdr[14:], serial)
	hdr[26] = byte(len(lacing))
	w.buf.Write(hdr[:])
	w.buf.Write(lacing)
	w.buf.Write(body)
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Reader returns a closable reader over the pages written so far.
func (w *Writer) Reader() io.ReadSeekCloser {
	return nopCloser{bytes.NewReader(w.buf.Bytes())}
}

// WriteFile stores the stream under dir and returns its path.
func (w *Writer) WriteFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, w.buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type nopCloser struct{ io.ReadSeeker }

func (nopCloser) Close() error { return nil }

// OpusHead returns an identification packet for an Opus stream.
func OpusHead(channels byte, preSkip uint16) []byte {
	head := make([]byte, 19)
	copy(head, "OpusHead")
	head[8] = 1
	head[9] = channels
	binary.LittleEndian.PutUint16(head[10:], preSkip)
	binary.LittleEndian.PutUint32(head[12:], 44100)
	return head
}

// VorbisIdent returns an identification packet for a Vorbis stream.
func VorbisIdent(channels byte, rate uint32) []byte {
	ident := make([]byte, 30)
	ident[0] = 1
	copy(ident[1:], "vorbis")
	ident[11] = channels
	binary.LittleEndian.PutUint32(ident[12:], rate)
	ident[29] = 1 // framing bit
	return ident
}
