package player

import (
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/shelf/internal/ogg"
)

// oggStream plays the audio packets of an Ogg file through an oggCodec.
// Positions are in output samples, i.e. granule positions minus pre-skip.
type oggStream struct {
	f         io.ReadSeekCloser
	packets   *ogg.Packets
	codec     oggCodec
	pages     []ogg.Page
	dataStart int64

	length  int
	pos     int
	discard int // decoded samples still to drop before output
	pcm     []float32
	err     error
}

func decodeOgg(f io.ReadSeekCloser) (beep.StreamSeekCloser, beep.Format, error) {
	s, err := openOggStream(f, newOggCodec)
	if err != nil {
		return nil, beep.Format{}, err
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(s.codec.sampleRate()),
		NumChannels: min(s.codec.channels(), 2),
		Precision:   2,
	}
	return s, format, nil
}

func openOggStream(f io.ReadSeekCloser, newCodec func(first []byte) (oggCodec, error)) (*oggStream, error) {
	packets := ogg.NewPackets(f)
	first, err := packets.Next()
	if err != nil {
		return nil, fmt.Errorf("ogg: identification header: %w", truncated(err))
	}
	codec, err := newCodec(first)
	if err != nil {
		return nil, err
	}
	for range codec.headerPackets() - 1 {
		pkt, err := packets.Next()
		if err != nil {
			return nil, fmt.Errorf("ogg: headers: %w", truncated(err))
		}
		if err := codec.header(pkt); err != nil {
			return nil, err
		}
	}

	// Audio starts on a fresh page after the headers.
	dataStart, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	serial, _ := packets.Serial()
	pages, err := ogg.IndexPages(f, dataStart, serial)
	if err != nil {
		return nil, err
	}
	last := ogg.LastGranule(pages)

	return &oggStream{
		f:         f,
		packets:   packets,
		codec:     codec,
		pages:     pages,
		dataStart: dataStart,
		length:    max(int(last)-codec.preSkip(), 0),
		discard:   codec.preSkip(),
	}, nil
}

func (s *oggStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}
	ch := s.codec.channels()
	for n < len(samples) && s.pos < s.length {
		if len(s.pcm) == 0 {
			pkt, err := s.packets.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					s.err = err
				}
				break
			}
			pcm, err := s.codec.decode(pkt)
			if err != nil {
				continue // corrupt packet
			}
			s.pcm = pcm
			continue
		}

		frames := len(s.pcm) / ch
		if frames == 0 {
			s.pcm = nil
			continue
		}
		if s.discard > 0 {
			d := min(s.discard, frames)
			s.pcm = s.pcm[d*ch:]
			s.discard -= d
			continue
		}

		k := min(frames, len(samples)-n, s.length-s.pos)
		for i := range k {
			left := float64(s.pcm[i*ch])
			right := left
			if ch > 1 {
				right = float64(s.pcm[i*ch+1])
			}
			samples[n+i] = [2]float64{left, right}
		}
		s.pcm = s.pcm[k*ch:]
		n += k
		s.pos += k
	}
	return n, n > 0
}

func (s *oggStream) Err() error    { return s.err }
func (s *oggStream) Len() int      { return s.length }
func (s *oggStream) Position() int { return s.pos }
func (s *oggStream) Close() error  { return s.f.Close() }

// Seek restarts decoding from the last page ending before the target minus
// the codec's pre-roll, then drops samples up to the target.
func (s *oggStream) Seek(p int) error {
	p = max(0, min(p, s.length))
	target := int64(p + s.codec.preSkip())
	from := max(target-int64(s.codec.preroll()), 0)

	offset, granule := s.dataStart, int64(0)
	for i, pg := range s.pages {
		if pg.Granule < 0 {
			continue
		}
		if pg.Granule > from {
			break
		}
		granule = pg.Granule
		if i+1 < len(s.pages) {
			offset = s.pages[i+1].Offset
		} else {
			offset = -1
		}
	}

	var err error
	if offset < 0 {
		_, err = s.f.Seek(0, io.SeekEnd)
	} else {
		_, err = s.f.Seek(offset, io.SeekStart)
	}
	if err != nil {
		return err
	}

	s.packets.Reset()
	s.codec.reset()
	s.pcm = nil
	s.err = nil
	s.discard = int(target - granule)
	s.pos = p
	return nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
