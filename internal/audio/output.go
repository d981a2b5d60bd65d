package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Setup failures, surfaced once at startup and never retried internally.
var (
	// ErrContextMismatch means the process-wide audio context was already
	// initialized at a different sample rate.
	ErrContextMismatch = errors.New("audio context sample rate mismatch")
	// ErrStreamBuild means the output stream could not be created.
	ErrStreamBuild = errors.New("build output stream")
)

// SampleSource produces one mono sample per output frame. Tick receives
// the frame duration in seconds and must advance the source's notion of
// time by it. It is called on the audio render goroutine and must never
// block.
type SampleSource interface {
	Tick(step float64) float64
}

// StreamReader adapts a SampleSource to the io.Reader the audio context
// consumes: little-endian float32 samples, stereo interleaved, the mono
// source duplicated across both channels.
type StreamReader struct {
	mu     sync.Mutex
	source SampleSource
	step   float64
}

func NewStreamReader(source SampleSource, sampleRate int) *StreamReader {
	return &StreamReader{source: source, step: 1 / float64(sampleRate)}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	for i := 0; i < frames; i++ {
		bits := math.Float32bits(float32(r.source.Tick(r.step)))
		binary.LittleEndian.PutUint32(p[i*8:], bits)
		binary.LittleEndian.PutUint32(p[i*8+4:], bits)
	}
	return frames * 8, nil
}

func (r *StreamReader) Close() error { return nil }

// Output owns one playback stream on the default output device.
type Output struct {
	player *ebitaudio.Player
	reader io.ReadCloser
}

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

// sharedAudioContext returns the process-wide audio context. The backend
// permits a single context per process; every Output must agree on the
// sample rate.
func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("%w: context at %d Hz, requested %d Hz",
			ErrContextMismatch, audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// NewOutput binds the source to the default output device. The device pulls
// frames at its own cadence; one Tick is issued per frame. The returned
// Output starts paused.
func NewOutput(sampleRate int, source SampleSource) (*Output, error) {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	reader := NewStreamReader(source, sampleRate)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStreamBuild, err)
	}
	return &Output{player: pl, reader: reader}, nil
}

func (o *Output) Play()  { o.player.Play() }
func (o *Output) Pause() { o.player.Pause() }

func (o *Output) IsPlaying() bool { return o.player.IsPlaying() }

// Position returns the playback position the listener actually hears,
// which lags the source clock by the device buffer.
func (o *Output) Position() time.Duration { return o.player.Position() }

// Stop tears the stream down; no further ticks occur afterwards.
func (o *Output) Stop() error {
	o.player.Pause()
	o.player.Close()
	return o.reader.Close()
}
