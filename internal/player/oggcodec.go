package player

import (
	"bytes"
	"fmt"

	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"

	"github.com/llehouerou/shelf/internal/ogg"
)

// oggCodec decodes the packets of one Ogg logical stream.
type oggCodec interface {
	sampleRate() int
	channels() int
	// preSkip is the number of decoded samples at the start that are not
	// part of the audio.
	preSkip() int
	// preroll is how far before a seek target decoding must restart to
	// converge.
	preroll() int
	// headerPackets counts the header packets, identification included.
	headerPackets() int
	// header takes the header packets following the identification one.
	header(pkt []byte) error
	// decode returns interleaved samples, valid until the next call.
	decode(pkt []byte) ([]float32, error)
	reset()
}

func newOggCodec(first []byte) (oggCodec, error) {
	id, err := ogg.ParseIdent(first)
	if err != nil {
		return nil, err
	}
	if id.Codec == ogg.CodecOpus {
		return newOpusCodec(id)
	}
	return newVorbisCodec(id, first)
}

const (
	opusPreroll  = 3840 // 80 ms
	opusMaxFrame = 5760 // 120 ms
)

type opusCodec struct {
	dec  *opus.Decoder
	ch   int
	skip int
	buf  []float32
}

// newOpusCodec supports mono and stereo streams (channel mapping family 0)
// only.
func newOpusCodec(id ogg.Ident) (*opusCodec, error) {
	if id.Channels > 2 {
		return nil, fmt.Errorf("opus: %d channels not supported", id.Channels)
	}
	dec, err := opus.NewDecoder(ogg.OpusSampleRate, id.Channels)
	if err != nil {
		return nil, fmt.Errorf("opus: %w", err)
	}
	return &opusCodec{
		dec:  dec,
		ch:   id.Channels,
		skip: id.PreSkip,
		buf:  make([]float32, opusMaxFrame*id.Channels),
	}, nil
}

func (c *opusCodec) sampleRate() int    { return ogg.OpusSampleRate }
func (c *opusCodec) channels() int      { return c.ch }
func (c *opusCodec) preSkip() int       { return c.skip }
func (c *opusCodec) preroll() int       { return opusPreroll }
func (c *opusCodec) headerPackets() int { return 2 }

func (c *opusCodec) header(pkt []byte) error {
	if !bytes.HasPrefix(pkt, []byte("OpusTags")) {
		return ogg.ErrOpusHeader
	}
	return nil
}

func (c *opusCodec) decode(pkt []byte) ([]float32, error) {
	n, err := c.dec.DecodeFloat32(pkt, c.buf)
	if err != nil {
		return nil, err
	}
	return c.buf[:n*c.ch], nil
}

// reset is a no-op: the Opus decoder converges within the pre-roll.
func (c *opusCodec) reset() {}

type vorbisCodec struct {
	dec  *vorbis.Decoder
	ch   int
	rate int
}

// newVorbisCodec feeds the identification packet to the decoder; the
// comment and setup packets follow through header.
func newVorbisCodec(id ogg.Ident, first []byte) (*vorbisCodec, error) {
	dec := &vorbis.Decoder{}
	if err := dec.ReadHeader(first); err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return &vorbisCodec{dec: dec, ch: id.Channels, rate: id.SampleRate}, nil
}

func (c *vorbisCodec) sampleRate() int    { return c.rate }
func (c *vorbisCodec) channels() int      { return c.ch }
func (c *vorbisCodec) preSkip() int       { return 0 }
func (c *vorbisCodec) preroll() int       { return 0 }
func (c *vorbisCodec) headerPackets() int { return 3 } // identification, comment, setup

func (c *vorbisCodec) header(pkt []byte) error {
	if err := c.dec.ReadHeader(pkt); err != nil {
		return fmt.Errorf("vorbis: %w", err)
	}
	return nil
}

func (c *vorbisCodec) decode(pkt []byte) ([]float32, error) {
	return c.dec.Decode(pkt)
}

func (c *vorbisCodec) reset() {
	c.dec.Clear()
}
