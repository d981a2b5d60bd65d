package soundmaker

// Instrument turns elapsed note time into a signal value. Implementations
// compose one or more oscillator calls at offsets relative to the note's
// pitch, shaped by an ADSR envelope.
//
// Sound reports finished=true once the note can be dropped from the mix:
// sustained instruments report it when the envelope has decayed to zero,
// percussive ones when a fixed lifetime has elapsed.
//
// Clone must return an independent copy. Every sounding note owns its own
// instrument instance, so mutating one note's parameters never leaks into
// another note started from the same preset.
//
// Name identifies the instrument kind: two notes with the same Name and
// pitch are the same voice for retrigger and note-off matching.
type Instrument interface {
	Sound(time, timeOn, timeOff float64, pitch int) (sample float64, finished bool)
	Name() string
	Clone() Instrument
}

// Voice is a transient request to start or stop one note of one instrument
// at one pitch. It is consumed by Mixer.AddNotes/RemoveNotes and never
// stored.
type Voice struct {
	Instrument Instrument
	Pitch      int
}

// NewVoice builds a Voice for the given instrument and semitone pitch.
func NewVoice(instrument Instrument, pitch int) Voice {
	return Voice{Instrument: instrument, Pitch: pitch}
}

// InstrumentName returns the display name of the voice's instrument, or ""
// for a zero Voice.
func (v Voice) InstrumentName() string {
	if v.Instrument == nil {
		return ""
	}
	return v.Instrument.Name()
}
