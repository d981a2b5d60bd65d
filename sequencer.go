package soundmaker

import (
	"errors"
	"fmt"
	"time"
)

// BeatState marks one slot of a sequencer track's beat grid.
type BeatState int

const (
	Rest BeatState = iota
	Beat
)

// PercussionPitch is the reserved pitch id carried by the toneless voices
// the sequencer emits.
const PercussionPitch = 64

// SequencerConfig describes the beat grid: Tempo in beats per minute,
// Beats slots per cycle, SubBeats subdivisions per beat.
type SequencerConfig struct {
	Tempo    float64
	Beats    int
	SubBeats int
}

// DefaultSequencerConfig returns a 4/4 grid at 120 bpm.
func DefaultSequencerConfig() SequencerConfig {
	return SequencerConfig{Tempo: 120, Beats: 4, SubBeats: 4}
}

type sequencerTrack struct {
	instrument Instrument
	pattern    []BeatState
}

// Sequencer emits note-on voices whenever elapsed real time crosses a
// sub-beat boundary of its grid. It is purely generative: it never reads
// player state, and restarting means constructing a fresh one.
//
// The internal clock starts at construction. Update is meant to be polled
// from a single control goroutine; the sequencer is not safe for
// concurrent use.
type Sequencer struct {
	subBeatTime float64
	totalBeats  int
	currentBeat int
	accumulated float64
	previous    time.Time
	now         func() time.Time
	tracks      []sequencerTrack
}

// NewSequencer validates the grid and starts the internal clock.
func NewSequencer(cfg SequencerConfig) (*Sequencer, error) {
	if cfg.Tempo <= 0 {
		return nil, errors.New("tempo must be positive")
	}
	if cfg.Beats <= 0 || cfg.SubBeats <= 0 {
		return nil, errors.New("beats and subBeats must be positive")
	}
	now := time.Now
	return &Sequencer{
		subBeatTime: 60.0 / cfg.Tempo / float64(cfg.SubBeats),
		totalBeats:  cfg.Beats * cfg.SubBeats,
		now:         now,
		previous:    now(),
	}, nil
}

// AddTrack registers an instrument with its beat pattern. The pattern must
// cover the whole grid, one slot per sub-beat. Tracks fire in the order
// they were added.
func (s *Sequencer) AddTrack(instrument Instrument, pattern []BeatState) error {
	if instrument == nil {
		return errors.New("instrument must not be nil")
	}
	if len(pattern) != s.totalBeats {
		return fmt.Errorf("pattern has %d slots, grid has %d", len(pattern), s.totalBeats)
	}
	s.tracks = append(s.tracks, sequencerTrack{
		instrument: instrument,
		pattern:    append([]BeatState(nil), pattern...),
	})
	return nil
}

// Update measures the real time elapsed since the previous call and
// returns one Voice per Beat slot reached, at PercussionPitch, ready to be
// fed into Mixer.AddNotes. When polling lags across several sub-beat
// boundaries, every crossed boundary still produces its batch, so no beat
// is dropped.
func (s *Sequencer) Update() []Voice {
	t := s.now()
	elapsed := t.Sub(s.previous).Seconds()
	s.previous = t
	return s.step(elapsed)
}

// step advances the grid by elapsed seconds. Split out from Update so the
// accumulator logic is exercisable without a wall clock.
func (s *Sequencer) step(elapsed float64) []Voice {
	s.accumulated += elapsed
	var voices []Voice
	for s.accumulated >= s.subBeatTime {
		s.accumulated -= s.subBeatTime
		s.currentBeat++
		if s.currentBeat >= s.totalBeats {
			s.currentBeat = 0
		}
		for _, track := range s.tracks {
			if track.pattern[s.currentBeat] == Beat {
				voices = append(voices, NewVoice(track.instrument.Clone(), PercussionPitch))
			}
		}
	}
	return voices
}

// CurrentBeat returns the most recently reached slot index.
func (s *Sequencer) CurrentBeat() int {
	return s.currentBeat
}
