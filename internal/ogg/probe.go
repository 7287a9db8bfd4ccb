package ogg

import (
	"fmt"
	"io"
	"time"
)

// Info describes an Ogg file without decoding it.
type Info struct {
	Ident
	// Samples is the stream length in output samples, pre-skip removed.
	Samples int64
}

func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(i.Samples) * time.Second / time.Duration(i.SampleRate)
}

// Probe reads the identification header of the first stream in r and its
// last granule position. r is left at the start.
func Probe(r io.ReadSeeker) (Info, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Info{}, err
	}
	packets := NewPackets(r)
	first, err := packets.Next()
	if err != nil {
		return Info{}, fmt.Errorf("ogg: identification header: %w", unexpected(err))
	}
	id, err := ParseIdent(first)
	if err != nil {
		return Info{}, err
	}
	serial, _ := packets.Serial()
	pages, err := IndexPages(r, 0, serial)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Ident:   id,
		Samples: max(LastGranule(pages)-int64(id.PreSkip), 0),
	}, nil
}
