package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/alac"
	"github.com/llehouerou/go-faad2"
	"github.com/llehouerou/go-m4a"
)

const alacFrameSize = 4096

// m4aStream plays an MP4 audio track, AAC through faad2 or ALAC.
// Samples are read one container sample at a time and converted to
// stereo frames.
type m4aStream struct {
	f         io.ReadSeekCloser
	container *m4a.Reader
	codec     m4a.CodecType
	aac       *faad2.Decoder
	alac      *alac.Alac

	rate     int
	channels int
	bits     int
	length   int
	next     int // index of the next container sample
	frames   [][2]float64
	err      error
}

func decodeM4A(f io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	c, err := m4a.Open(f)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("m4a: %w", err)
	}

	s := &m4aStream{
		f:         f,
		container: c,
		codec:     c.Codec(),
		rate:      int(c.SampleRate()),
		channels:  int(c.Channels()),
		bits:      int(c.SampleSize()),
	}
	s.length = int(c.Duration().Seconds() * float64(s.rate))

	precision := 2
	switch s.codec {
	case m4a.CodecAAC:
		ctx := context.Background()
		dec, err := faad2.NewDecoder(ctx)
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("aac: %w", err)
		}
		if err := dec.Init(ctx, c.CodecConfig()); err != nil {
			dec.Close(ctx)
			return nil, beep.Format{}, fmt.Errorf("aac: %w", err)
		}
		s.aac = dec
	case m4a.CodecALAC:
		dec, err := alac.NewWithConfig(alac.Config{
			SampleRate:  s.rate,
			SampleSize:  s.bits,
			NumChannels: s.channels,
			FrameSize:   alacFrameSize,
		})
		if err != nil {
			return nil, beep.Format{}, fmt.Errorf("alac: %w", err)
		}
		s.alac = dec
		if s.bits == 24 {
			precision = 3
		}
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: m4a codec %s", ErrUnsupportedFormat, s.codec)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(s.rate),
		NumChannels: 2,
		Precision:   precision,
	}
	return s, format, nil
}

func (s *m4aStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}
	for n < len(samples) {
		if len(s.frames) > 0 {
			k := copy(samples[n:], s.frames)
			s.frames = s.frames[k:]
			n += k
			continue
		}
		if s.next >= s.container.SampleCount() {
			break
		}
		data, err := s.container.ReadSample(s.next)
		if err != nil {
			s.err = err
			break
		}
		s.next++
		if s.frames, err = s.decodeSample(data); err != nil {
			s.err = err
			break
		}
	}
	return n, n > 0
}

func (s *m4aStream) decodeSample(data []byte) ([][2]float64, error) {
	if s.aac != nil {
		pcm, err := s.aac.Decode(context.Background(), data)
		if err != nil {
			return nil, fmt.Errorf("aac: %w", err)
		}
		return int16Frames(pcm, s.channels), nil
	}
	if s.alac != nil {
		return pcmFrames(s.alac.Decode(data), s.bits/8, s.channels), nil
	}
	return nil, errors.New("m4a: no decoder")
}

func (s *m4aStream) Err() error { return s.err }
func (s *m4aStream) Len() int   { return s.length }

func (s *m4aStream) Position() int {
	return int(s.container.SampleTime(s.next).Seconds() * float64(s.rate))
}

// Seek lands on the container sample holding p.
func (s *m4aStream) Seek(p int) error {
	p = max(0, min(p, s.length))
	at := time.Duration(float64(p) / float64(s.rate) * float64(time.Second))
	s.next = s.container.SeekToTime(at)
	s.frames = nil
	s.err = nil
	return nil
}

func (s *m4aStream) Close() error {
	if s.aac != nil {
		s.aac.Close(context.Background())
	}
	return s.f.Close()
}

// int16Frames turns interleaved 16-bit samples into stereo frames; mono
// is duplicated and channels past the second are dropped.
func int16Frames(pcm []int16, channels int) [][2]float64 {
	if channels < 1 {
		return nil
	}
	frames := make([][2]float64, len(pcm)/channels)
	for i := range frames {
		left := float64(pcm[i*channels]) / 32768
		right := left
		if channels > 1 {
			right = float64(pcm[i*channels+1]) / 32768
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

// pcmFrames does the same for little-endian signed PCM bytes of 2 or 3
// bytes per sample.
func pcmFrames(data []byte, bytesPerSample, channels int) [][2]float64 {
	if channels < 1 || (bytesPerSample != 2 && bytesPerSample != 3) {
		return nil
	}
	stride := bytesPerSample * channels
	frames := make([][2]float64, len(data)/stride)
	for i := range frames {
		off := i * stride
		left := pcmSample(data[off:], bytesPerSample)
		right := left
		if channels > 1 {
			right = pcmSample(data[off+bytesPerSample:], bytesPerSample)
		}
		frames[i] = [2]float64{left, right}
	}
	return frames
}

func pcmSample(b []byte, size int) float64 {
	if size == 2 {
		return float64(int16(uint16(b[0])|uint16(b[1])<<8)) / 32768
	}
	v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	v = v << 8 >> 8 // sign-extend 24 bits
	return float64(v) / (1 << 23)
}
