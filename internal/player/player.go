package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrUnsupportedFormat is returned by Load for files it cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ErrNotLoaded is returned by SeekTo when no file is loaded.
var ErrNotLoaded = errors.New("no file loaded")

// Output sample rate. Every file is resampled to it so the speaker is
// initialized once per process.
const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	return speakerErr
}

// Player plays one file at a time through the system speaker.
type Player struct {
	mu       sync.Mutex
	state    State
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	volumeDB float64
	finished chan struct{}
}

// New creates a player with 0 dB gain. The speaker is opened on first Load.
func New() *Player {
	return &Player{
		state:    Stopped,
		finished: make(chan struct{}, 1),
	}
}

// Load opens path and queues it paused at position zero. Any previously
// loaded file is released first, also when Load fails.
func (p *Player) Load(path string) error {
	p.Unload()

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(path, f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if err := initSpeaker(); err != nil {
		streamer.Close()
		f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{
		Streamer: beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer),
		Paused:   true,
	}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     10,
		Volume:   p.volumeDB / 20,
	}
	p.state = Paused
	p.drainFinished()

	speaker.Play(beep.Seq(p.volume, beep.Callback(p.signalFinished)))
	return nil
}

// signalFinished runs on the speaker goroutine with the speaker lock held,
// so it must not touch p.mu or call back into the speaker.
func (p *Player) signalFinished() {
	select {
	case p.finished <- struct{}{}:
	default:
	}
}

func (p *Player) drainFinished() {
	select {
	case <-p.finished:
	default:
	}
}

// Unload stops output and releases the current file.
func (p *Player) Unload() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Stopped {
		return
	}

	speaker.Clear()
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
	p.drainFinished()
}

// Play starts or resumes output. A file that already played to its end
// restarts from the beginning.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.CanPlay() {
		return
	}

	speaker.Lock()
	if p.streamer.Position() >= p.streamer.Len() {
		if err := p.streamer.Seek(0); err == nil {
			speaker.Unlock()
			// The exhausted sequence has already been dropped by the mixer.
			speaker.Play(beep.Seq(p.volume, beep.Callback(p.signalFinished)))
			speaker.Lock()
		}
	}
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Pause halts output, keeping the position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.CanPause() {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SeekTo moves to pos, clamped to the file bounds.
func (p *Player) SeekTo(pos time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNotLoaded
	}

	speaker.Lock()
	defer speaker.Unlock()

	n := p.format.SampleRate.N(pos)
	n = max(0, min(n, p.streamer.Len()-1))
	if err := p.streamer.Seek(n); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	return nil
}

func (p *Player) FinishedChan() <-chan struct{} {
	return p.finished
}

// Close releases the current file. The speaker stays open for the process.
func (p *Player) Close() error {
	p.Unload()
	return nil
}
