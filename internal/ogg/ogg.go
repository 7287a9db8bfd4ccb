// Package ogg reads the Ogg container: pages, the packets they carry and the
// granule positions used for duration and seeking.
//
// Ogg framing groups data into pages of up to 255 lacing segments. A lacing
// value below 255 ends a packet; a page ending on 255 continues the packet
// on the next page. Only the first logical stream of a file is read.
package ogg

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	// HeaderSize is the fixed part of a page header, before lacing values.
	HeaderSize = 27

	FlagContinued = 0x01
	FlagFirst     = 0x02
	FlagLast      = 0x04
)

var (
	ErrCapture = errors.New("ogg: missing capture pattern")
	ErrVersion = errors.New("ogg: unsupported stream version")
)

// PageHeader is a page header with its lacing values.
type PageHeader struct {
	Flags   byte
	Granule int64 // -1 when no packet ends on the page
	Serial  uint32
	Lacing  []byte
}

// BodySize is the number of payload bytes following the header.
func (h PageHeader) BodySize() int {
	n := 0
	for _, l := range h.Lacing {
		n += int(l)
	}
	return n
}

// Size is the full page size, header included.
func (h PageHeader) Size() int64 {
	return int64(HeaderSize + len(h.Lacing) + h.BodySize())
}

// ReadPageHeader reads a page header. It returns io.EOF only at a clean
// page boundary.
func ReadPageHeader(r io.Reader) (PageHeader, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return PageHeader{}, err
	}
	if string(buf[:4]) != "OggS" {
		return PageHeader{}, ErrCapture
	}
	if buf[4] != 0 {
		return PageHeader{}, ErrVersion
	}
	h := PageHeader{
		Flags:   buf[5],
		Granule: int64(binary.LittleEndian.Uint64(buf[6:14])),
		Serial:  binary.LittleEndian.Uint32(buf[14:18]),
		Lacing:  make([]byte, buf[26]),
	}
	if _, err := io.ReadFull(r, h.Lacing); err != nil {
		return PageHeader{}, unexpected(err)
	}
	return h, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Packets reassembles the packets of the first logical stream in a reader.
// Pages of other streams are skipped.
type Packets struct {
	r io.Reader

	serial    uint32
	hasSerial bool

	pending [][]byte
	partial []byte
	// After a seek the reader may land on a page that continues a packet
	// it never saw the start of; that fragment is dropped.
	synced   bool
	dropping bool
}

func NewPackets(r io.Reader) *Packets {
	return &Packets{r: r}
}

// Serial returns the serial number of the stream being read, once the
// first page has been seen.
func (p *Packets) Serial() (uint32, bool) {
	return p.serial, p.hasSerial
}

// Next returns the next complete packet, or io.EOF after the last one.
func (p *Packets) Next() ([]byte, error) {
	for len(p.pending) == 0 {
		if err := p.readPage(); err != nil {
			return nil, err
		}
	}
	pkt := p.pending[0]
	p.pending = p.pending[1:]
	return pkt, nil
}

func (p *Packets) readPage() error {
	h, err := ReadPageHeader(p.r)
	if err != nil {
		return err
	}
	body := make([]byte, h.BodySize())
	if _, err := io.ReadFull(p.r, body); err != nil {
		return unexpected(err)
	}

	if !p.hasSerial {
		p.serial, p.hasSerial = h.Serial, true
	}
	if h.Serial != p.serial {
		return nil
	}

	if h.Flags&FlagContinued == 0 {
		p.partial, p.dropping = nil, false
	} else if !p.synced {
		p.dropping = true
	}
	p.synced = true

	off := 0
	for _, l := range h.Lacing {
		p.partial = append(p.partial, body[off:off+int(l)]...)
		off += int(l)
		if l == 255 {
			continue
		}
		if p.dropping {
			p.dropping = false
		} else {
			p.pending = append(p.pending, p.partial)
		}
		p.partial = nil
	}
	return nil
}

// Reset forgets buffered data after the underlying reader moved. The stream
// serial is kept.
func (p *Packets) Reset() {
	p.pending, p.partial = nil, nil
	p.synced, p.dropping = false, false
}

// Page locates a page of the indexed stream.
type Page struct {
	Offset  int64
	Granule int64
}

// IndexPages lists the pages of stream serial from start to the end of r,
// then rewinds r to start. A truncated last page ends the index.
func IndexPages(r io.ReadSeeker, start int64, serial uint32) ([]Page, error) {
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	var pages []Page
	off := start
	for {
		h, err := ReadPageHeader(r)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if h.Serial == serial {
			pages = append(pages, Page{Offset: off, Granule: h.Granule})
		}
		off += h.Size()
		if _, err := r.Seek(off, io.SeekStart); err != nil {
			return nil, err
		}
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	return pages, nil
}

// LastGranule is the highest granule position among pages, 0 when none has
// one.
func LastGranule(pages []Page) int64 {
	var last int64
	for _, pg := range pages {
		last = max(last, pg.Granule)
	}
	return last
}
