package soundmaker

import (
	"math"
	"sync"
)

// defaultMixGain is the fixed mix-down factor applied to the summed note
// contributions before the optional ceiling.
const defaultMixGain = 0.2

// Option configures a Mixer or Player at construction time.
type Option func(*config)

type config struct {
	mixGain        float64
	amplitudeLimit float64
}

func defaultMixerConfig() config {
	return config{mixGain: defaultMixGain}
}

// WithMixGain overrides the mix-down factor applied to the summed output.
func WithMixGain(gain float64) Option {
	return func(cfg *config) {
		cfg.mixGain = gain
	}
}

// WithAmplitudeLimit sets a hard ceiling on |sample|, useful to protect
// speakers (and ears) while experimenting. 0 disables the ceiling.
func WithAmplitudeLimit(limit float64) Option {
	return func(cfg *config) {
		cfg.amplitudeLimit = limit
	}
}

// Mixer aggregates all sounding notes into one output sample per tick. It
// is safe for concurrent use: the render path calls Sample/Tick while any
// number of caller goroutines add and remove notes. All access to the note
// list is serialized by one lock; callers never hold it across anything
// slower than a slice scan, so contention windows stay far below a frame.
type Mixer struct {
	mu    sync.Mutex
	notes []note
	clock Clock
	cfg   config
}

// NewMixer returns a mixer with no sounding notes and its clock at zero.
func NewMixer(opts ...Option) *Mixer {
	cfg := defaultMixerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mixer{cfg: cfg}
}

// Time returns the mixer clock, in seconds of rendered audio.
func (m *Mixer) Time() float64 {
	return m.clock.Now()
}

// AddNote starts or retriggers a single note.
func (m *Mixer) AddNote(v Voice) {
	m.AddNotes(v)
}

// AddNotes starts or retriggers notes in bulk. A voice whose pitch and
// instrument kind match a sounding note retriggers it in place, resetting
// its on-time; exactly one note per pitch+kind is ever sounding. If the
// match is mid-release (or absent) a fresh note starts and any old tail
// fades out on its own.
func (m *Mixer) AddNotes(voices ...Voice) {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range voices {
		if v.Instrument == nil {
			continue
		}
		if n := m.findSounding(v); n != nil {
			n.on = now
			n.off = soundingOff
			n.state = noteSounding
			continue
		}
		m.notes = append(m.notes, note{
			pitch:      v.Pitch,
			on:         now,
			off:        soundingOff,
			state:      noteSounding,
			kind:       v.Instrument.Name(),
			instrument: v.Instrument.Clone(),
		})
	}
}

// RemoveNote begins the release of a single note.
func (m *Mixer) RemoveNote(v Voice) {
	m.RemoveNotes(v)
}

// RemoveNotes begins the release of the matching sounding notes. Releasing
// an already-released or nonexistent note is a no-op, never an error.
func (m *Mixer) RemoveNotes(voices ...Voice) {
	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range voices {
		if n := m.findSounding(v); n != nil {
			n.off = now
			n.state = noteReleasing
		}
	}
}

// findSounding is called with m.mu held.
func (m *Mixer) findSounding(v Voice) *note {
	for i := range m.notes {
		if n := &m.notes[i]; n.state == noteSounding && n.matches(v) {
			return n
		}
	}
	return nil
}

// SimultaneousNotes returns the number of notes currently sounding or
// releasing.
func (m *Mixer) SimultaneousNotes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.notes)
}

// Sample is the per-tick render callback: it sums every note's instrument
// output at the given time, drops notes that report finished, applies the
// mix-down gain and the optional ceiling, and returns the sample. It is
// bounded-time and allocation-free; the note list is pruned in place every
// tick.
func (m *Mixer) Sample(time float64) float64 {
	m.mu.Lock()
	var mixed float64
	w := 0
	for i := range m.notes {
		n := &m.notes[i]
		sample, finished := n.instrument.Sound(time, n.on, n.off, n.pitch)
		mixed += sample
		if finished {
			n.state = noteFinished
			continue
		}
		if w != i {
			m.notes[w] = m.notes[i]
		}
		w++
	}
	for i := w; i < len(m.notes); i++ {
		m.notes[i] = note{} // release the instrument reference
	}
	m.notes = m.notes[:w]
	m.mu.Unlock()

	out := mixed * m.cfg.mixGain
	if limit := m.cfg.amplitudeLimit; limit > 0 {
		out = math.Max(-limit, math.Min(limit, out))
	}
	return out
}

// Tick renders one frame: it mixes at the current clock time, then
// advances the clock by step seconds. The audio output binding calls Tick
// once per output frame; offline rendering drives it in a plain loop.
func (m *Mixer) Tick(step float64) float64 {
	sample := m.Sample(m.clock.Now())
	m.clock.Advance(step)
	return sample
}
