package ogg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Codec identifies the codec of a logical stream.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecOpus
	CodecVorbis
)

func (c Codec) String() string {
	switch c {
	case CodecOpus:
		return "OPUS"
	case CodecVorbis:
		return "VORBIS"
	default:
		return "OGG"
	}
}

// OpusSampleRate is the rate Opus always decodes at.
const OpusSampleRate = 48000

var (
	ErrUnknownCodec = errors.New("ogg: neither Opus nor Vorbis")
	ErrOpusHeader   = errors.New("opus: invalid header")
	ErrVorbisHeader = errors.New("vorbis: invalid identification header")
)

// Ident is what the identification header of a stream declares.
type Ident struct {
	Codec      Codec
	Channels   int
	SampleRate int
	PreSkip    int // decoded samples at the start that are not audio
}

// ParseIdent parses the first packet of a stream.
//
// OpusHead: version at 8, channels at 9, pre-skip at 10.
// Vorbis: version at 7, channels at 11, sample rate at 12. Little-endian.
func ParseIdent(first []byte) (Ident, error) {
	switch {
	case bytes.HasPrefix(first, []byte("OpusHead")):
		if len(first) < 19 || first[8]>>4 != 0 || first[9] == 0 {
			return Ident{}, ErrOpusHeader
		}
		return Ident{
			Codec:      CodecOpus,
			Channels:   int(first[9]),
			SampleRate: OpusSampleRate,
			PreSkip:    int(binary.LittleEndian.Uint16(first[10:12])),
		}, nil
	case len(first) >= 7 && first[0] == 1 && string(first[1:7]) == "vorbis":
		if len(first) < 16 || binary.LittleEndian.Uint32(first[7:11]) != 0 {
			return Ident{}, ErrVorbisHeader
		}
		id := Ident{
			Codec:      CodecVorbis,
			Channels:   int(first[11]),
			SampleRate: int(binary.LittleEndian.Uint32(first[12:16])),
		}
		if id.Channels == 0 || id.SampleRate == 0 {
			return Ident{}, fmt.Errorf("%w: %d channels at %d Hz", ErrVorbisHeader, id.Channels, id.SampleRate)
		}
		return id, nil
	default:
		return Ident{}, ErrUnknownCodec
	}
}
