package soundmaker

import (
	"errors"
	"time"

	"github.com/wavelab/soundmaker/internal/audio"
)

// Player couples a Mixer to the default audio output device and starts
// playing immediately. The device drives the mixer's clock at sample-rate
// cadence on a dedicated render goroutine; AddNotes/RemoveNotes may be
// called from any goroutine while sound plays.
type Player struct {
	*Mixer
	out *audio.Output
}

// NewPlayer opens the default output device at the given sample rate and
// begins playback of an initially silent mix. Device and stream
// acquisition failures are returned as distinct error kinds (see
// internal/audio); they are fatal to starting the engine and not retried.
func NewPlayer(sampleRate int, opts ...Option) (*Player, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	m := NewMixer(opts...)
	out, err := audio.NewOutput(sampleRate, m)
	if err != nil {
		return nil, err
	}
	out.Play()
	return &Player{Mixer: m, out: out}, nil
}

// Pause suspends playback; the mixer clock stops advancing.
func (p *Player) Pause() {
	p.out.Pause()
}

// Resume continues playback after Pause.
func (p *Player) Resume() {
	p.out.Play()
}

// IsPlaying reports whether the output stream is running.
func (p *Player) IsPlaying() bool {
	return p.out.IsPlaying()
}

// Position returns the playback position the listener actually hears. It
// lags Time() by the device buffer.
func (p *Player) Position() time.Duration {
	return p.out.Position()
}

// Stop tears down the output stream. No further ticks occur afterwards;
// the mixer and its notes remain readable but silent.
func (p *Player) Stop() error {
	return p.out.Stop()
}
