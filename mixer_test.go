package soundmaker

import (
	"math"
	"sync"
	"testing"
)

// stubInstrument emits a constant value and, when doneAt is set, reports
// finished once time reaches it.
type stubInstrument struct {
	name   string
	value  float64
	doneAt float64
}

func (s *stubInstrument) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	return s.value, s.doneAt > 0 && time >= s.doneAt
}

func (s *stubInstrument) Name() string { return s.name }

func (s *stubInstrument) Clone() Instrument {
	c := *s
	return &c
}

func TestAddNoteCreates(t *testing.T) {
	m := NewMixer()
	m.AddNote(NewVoice(&stubInstrument{name: "stub"}, 10))
	if got := m.SimultaneousNotes(); got != 1 {
		t.Fatalf("SimultaneousNotes = %d, want 1", got)
	}
	n := m.notes[0]
	if n.pitch != 10 || n.kind != "stub" || n.state != noteSounding || n.on != 0 || n.off != soundingOff {
		t.Errorf("unexpected note: %+v", n)
	}
}

func TestRetriggerKeepsSingleNote(t *testing.T) {
	m := NewMixer()
	voice := NewVoice(&stubInstrument{name: "stub"}, 10)
	m.AddNote(voice)
	m.clock.Advance(0.5)
	m.AddNote(voice)
	if got := m.SimultaneousNotes(); got != 1 {
		t.Fatalf("SimultaneousNotes after retrigger = %d, want 1", got)
	}
	if n := m.notes[0]; n.on != 0.5 || n.state != noteSounding {
		t.Errorf("retrigger did not reset on-time: %+v", n)
	}
}

func TestAddWhileReleasingStartsNewNote(t *testing.T) {
	m := NewMixer()
	voice := NewVoice(&stubInstrument{name: "stub"}, 10)
	m.AddNote(voice)
	m.clock.Advance(0.5)
	m.RemoveNote(voice)
	m.AddNote(voice)
	if got := m.SimultaneousNotes(); got != 2 {
		t.Fatalf("SimultaneousNotes = %d, want 2 (releasing tail plus fresh note)", got)
	}
	if m.notes[0].state != noteReleasing || m.notes[1].state != noteSounding {
		t.Errorf("states = %v, %v; want releasing, sounding", m.notes[0].state, m.notes[1].state)
	}
}

func TestRemoveMarksRelease(t *testing.T) {
	m := NewMixer()
	voice := NewVoice(&stubInstrument{name: "stub"}, 10)
	m.AddNote(voice)
	m.clock.Advance(1.25)
	m.RemoveNote(voice)
	if n := m.notes[0]; n.state != noteReleasing || n.off != 1.25 {
		t.Errorf("release not recorded: %+v", n)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	m := NewMixer()
	voice := NewVoice(&stubInstrument{name: "stub"}, 10)

	// Removing with no matching note changes nothing.
	m.RemoveNote(voice)
	if got := m.SimultaneousNotes(); got != 0 {
		t.Fatalf("remove on empty mixer created notes: %d", got)
	}

	m.AddNote(voice)
	m.clock.Advance(0.5)
	m.RemoveNote(voice)
	off := m.notes[0].off
	m.clock.Advance(0.5)
	m.RemoveNote(voice)
	if got := m.SimultaneousNotes(); got != 1 {
		t.Fatalf("double remove changed note count: %d", got)
	}
	if m.notes[0].off != off {
		t.Errorf("double remove moved off-time: %v -> %v", off, m.notes[0].off)
	}

	// A different pitch of the same kind is a different voice.
	m.RemoveNote(NewVoice(&stubInstrument{name: "stub"}, 11))
	if m.notes[0].off != off {
		t.Errorf("remove of unrelated pitch touched the note")
	}
}

func TestMatchingIsPitchAndKind(t *testing.T) {
	m := NewMixer()
	m.AddNote(NewVoice(&stubInstrument{name: "a"}, 10))
	m.AddNote(NewVoice(&stubInstrument{name: "b"}, 10))
	m.AddNote(NewVoice(&stubInstrument{name: "a"}, 11))
	if got := m.SimultaneousNotes(); got != 3 {
		t.Fatalf("distinct pitch+kind combinations collapsed: %d notes", got)
	}
}

func TestNilInstrumentVoiceIgnored(t *testing.T) {
	m := NewMixer()
	m.AddNote(Voice{Pitch: 10})
	if got := m.SimultaneousNotes(); got != 0 {
		t.Errorf("nil-instrument voice created a note")
	}
}

func TestSamplePrunesFinishedNotes(t *testing.T) {
	m := NewMixer()
	m.AddNote(NewVoice(&stubInstrument{name: "short", doneAt: 1}, 10))
	m.AddNote(NewVoice(&stubInstrument{name: "long"}, 10))

	m.Sample(0.5)
	if got := m.SimultaneousNotes(); got != 2 {
		t.Fatalf("premature prune: %d notes", got)
	}
	m.Sample(1.5)
	if got := m.SimultaneousNotes(); got != 1 {
		t.Fatalf("finished note not pruned: %d notes", got)
	}
	if m.notes[0].kind != "long" {
		t.Errorf("wrong note pruned: kept %q", m.notes[0].kind)
	}
}

func TestSampleMixGainAndCeiling(t *testing.T) {
	m := NewMixer()
	m.AddNote(NewVoice(&stubInstrument{name: "a", value: 1}, 10))
	m.AddNote(NewVoice(&stubInstrument{name: "b", value: 2}, 10))
	if got := m.Sample(0); math.Abs(got-3*defaultMixGain) > 1e-12 {
		t.Errorf("mixed sample = %v, want %v", got, 3*defaultMixGain)
	}

	limited := NewMixer(WithMixGain(1), WithAmplitudeLimit(1.5))
	limited.AddNote(NewVoice(&stubInstrument{name: "loud", value: 10}, 10))
	if got := limited.Sample(0); got != 1.5 {
		t.Errorf("ceiling: sample = %v, want 1.5", got)
	}
	negative := NewMixer(WithMixGain(1), WithAmplitudeLimit(1.5))
	negative.AddNote(NewVoice(&stubInstrument{name: "loud", value: -10}, 10))
	if got := negative.Sample(0); got != -1.5 {
		t.Errorf("ceiling is not symmetric: sample = %v, want -1.5", got)
	}
}

func TestNotesOwnInstrumentClones(t *testing.T) {
	m := NewMixer()
	original := &stubInstrument{name: "stub", value: 1}
	m.AddNote(NewVoice(original, 10))
	original.value = 99
	if got := m.Sample(0); math.Abs(got-1*defaultMixGain) > 1e-12 {
		t.Errorf("note shares the caller's instrument instance: sample = %v", got)
	}
}

func TestTickAdvancesClock(t *testing.T) {
	m := NewMixer()
	m.Tick(0.5)
	m.Tick(0.5)
	if got := m.Time(); got != 1 {
		t.Errorf("Time after two 0.5s ticks = %v, want 1", got)
	}
}

func TestConcurrentControlAndRender(t *testing.T) {
	m := NewMixer()
	voice := NewVoice(&stubInstrument{name: "stub", value: 0.1}, 10)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			m.AddNote(voice)
			m.RemoveNote(voice)
			m.SimultaneousNotes()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			m.Tick(1.0 / 48000)
		}
	}()
	wg.Wait()
}

func BenchmarkMixerSample(b *testing.B) {
	m := NewMixer(WithAmplitudeLimit(1))
	for pitch := 40; pitch < 56; pitch++ {
		m.AddNote(NewVoice(NewHarmonica(), pitch))
	}
	step := 1.0 / 48000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Tick(step)
	}
}
