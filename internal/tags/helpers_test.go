package tags

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createTestMP3 writes a single silent MPEG1 Layer3 frame (128kbps, 44100Hz)
// and lets edit add ID3v2 frames to it.
func createTestMP3(t *testing.T, dir, name string, edit func(tag *id3v2.Tag)) string {
	t.Helper()
	path := filepath.Join(dir, name)

	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00
	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}

	if edit == nil {
		return path
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("open id3 tag: %v", err)
	}
	defer tag.Close()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	edit(tag)
	if err := tag.Save(); err != nil {
		t.Fatalf("save id3 tag: %v", err)
	}
	return path
}

// createTestFLAC writes a FLAC header with a STREAMINFO block describing
// seconds of 44.1kHz/16-bit stereo audio and a Vorbis comment block.
func createTestFLAC(t *testing.T, dir, name string, seconds int, comments ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)

	const sampleRate = 44100
	total := uint64(sampleRate * seconds)

	info := make([]byte, 34)
	binary.BigEndian.PutUint16(info[0:], 4096) // min block size
	binary.BigEndian.PutUint16(info[2:], 4096) // max block size
	info[10] = byte(sampleRate >> 12)
	info[11] = byte(sampleRate >> 4 & 0xFF)
	info[12] = byte(sampleRate&0xF)<<4 | 1<<1 // 2 channels, bps high bit 0
	info[13] = 0xF<<4 | byte(total>>32&0xF)   // 16 bits per sample
	binary.BigEndian.PutUint32(info[14:], uint32(total))

	var vc []byte
	vc = binary.LittleEndian.AppendUint32(vc, uint32(len("shelf")))
	vc = append(vc, "shelf"...)
	vc = binary.LittleEndian.AppendUint32(vc, uint32(len(comments)))
	for _, c := range comments {
		vc = binary.LittleEndian.AppendUint32(vc, uint32(len(c)))
		vc = append(vc, c...)
	}

	data := []byte("fLaC")
	data = appendFLACBlock(data, 0, false, info)
	data = appendFLACBlock(data, 4, true, vc)
	// go-flac expects audio frames to start with a sync code.
	data = append(data, 0xFF, 0xF8, 0x69, 0x08, 0x00, 0x00)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to create test FLAC: %v", err)
	}
	return path
}

func appendFLACBlock(dst []byte, blockType byte, last bool, body []byte) []byte {
	header := blockType
	if last {
		header |= 0x80
	}
	n := len(body)
	dst = append(dst, header, byte(n>>16), byte(n>>8), byte(n))
	return append(dst, body...)
}

// createTestWAV writes a 16-bit mono PCM WAV file of the given length.
func createTestWAV(t *testing.T, dir, name string, sampleRate, samples int) string {
	t.Helper()
	path := filepath.Join(dir, name)

	dataLen := samples * 2
	var b []byte
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(36+dataLen))
	b = append(b, "WAVE"...)
	b = append(b, "fmt "...)
	b = binary.LittleEndian.AppendUint32(b, 16)
	b = binary.LittleEndian.AppendUint16(b, 1) // PCM
	b = binary.LittleEndian.AppendUint16(b, 1) // mono
	b = binary.LittleEndian.AppendUint32(b, uint32(sampleRate))
	b = binary.LittleEndian.AppendUint32(b, uint32(sampleRate*2))
	b = binary.LittleEndian.AppendUint16(b, 2)
	b = binary.LittleEndian.AppendUint16(b, 16)
	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(dataLen))
	b = append(b, make([]byte, dataLen)...)

	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("failed to create test WAV: %v", err)
	}
	return path
}
