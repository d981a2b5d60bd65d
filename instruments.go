package soundmaker

// Ready-made instruments. Each one is a fixed stack of oscillator calls at
// offsets relative to the note's pitch, shaped by its envelope and scaled
// by an overall volume. They are starting points: copy one, tweak the
// fields, and listen.

// Bell is akin to a glockenspiel: crisp and clean, so no noise component;
// nearly no sustain, so a short attack, a long decay trailing off to
// nothing, and a doubled input frequency for the higher pitch.
type Bell struct {
	Env     ADSR
	Volume  float64
	Vibrato LFO
}

func NewBell() *Bell {
	env := DefaultADSR()
	env.AttackTime = 0.01
	env.DecayTime = 1.0
	env.SustainAmplitude = 0.0
	env.ReleaseTime = 1.0
	return &Bell{Env: env, Volume: 1.0, Vibrato: LFO{Hertz: 5}}
}

func (b *Bell) Name() string { return "Bell" }

func (b *Bell) Clone() Instrument {
	c := *b
	return &c
}

func (b *Bell) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	amplitude := b.Env.Amplitude(time, timeOn, timeOff)
	sound := 1.00*Signal(time-timeOn, Frequency(pitch+12), Sine, b.Vibrato) +
		0.50*Signal(time-timeOn, Frequency(pitch+24), Sine, LFO{}) +
		0.25*Signal(time-timeOn, Frequency(pitch+36), Sine, LFO{})
	return amplitude * sound * b.Volume, time > timeOn && amplitude <= 0
}

// Bell8 is an 8-bit rendition of Bell built on a square fundamental.
type Bell8 struct {
	Env     ADSR
	Volume  float64
	Vibrato LFO
}

func NewBell8() *Bell8 {
	env := DefaultADSR()
	env.AttackTime = 0.01
	env.DecayTime = 0.5
	env.SustainAmplitude = 0.8
	env.ReleaseTime = 1.0
	return &Bell8{Env: env, Volume: 1.0, Vibrato: LFO{Hertz: 5}}
}

func (b *Bell8) Name() string { return "8-Bit Bell" }

func (b *Bell8) Clone() Instrument {
	c := *b
	return &c
}

func (b *Bell8) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	amplitude := b.Env.Amplitude(time, timeOn, timeOff)
	sound := 1.00*Signal(time-timeOn, Frequency(pitch), Square, b.Vibrato) +
		0.50*Signal(time-timeOn, Frequency(pitch+12), Sine, LFO{}) +
		0.25*Signal(time-timeOn, Frequency(pitch+24), Sine, LFO{})
	return amplitude * sound * b.Volume, time > timeOn && amplitude <= 0
}

// Harmonica is a reed instrument, hence the square waves; the low noise
// component gives it its breathiness.
type Harmonica struct {
	Env     ADSR
	Volume  float64
	Vibrato LFO
}

func NewHarmonica() *Harmonica {
	env := DefaultADSR()
	env.AttackTime = 0.0
	env.DecayTime = 1.0
	env.SustainAmplitude = 0.95
	env.ReleaseTime = 0.1
	return &Harmonica{Env: env, Volume: 0.3, Vibrato: LFO{Hertz: 5}}
}

func (h *Harmonica) Name() string { return "Harmonica" }

func (h *Harmonica) Clone() Instrument {
	c := *h
	return &c
}

func (h *Harmonica) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	amplitude := h.Env.Amplitude(time, timeOn, timeOff)
	sound := 1.00*Signal(time-timeOn, Frequency(pitch-12), AnalogSaw, h.Vibrato) +
		1.00*Signal(time-timeOn, Frequency(pitch), Square, h.Vibrato) +
		0.50*Signal(time-timeOn, Frequency(pitch+12), Square, LFO{}) +
		0.05*Signal(time-timeOn, Frequency(pitch+24), Noise, LFO{})
	return amplitude * sound * h.Volume, time > timeOn && amplitude <= 0
}

// Percussive instruments have no natural note-off, so they carry a
// MaxLifeTime and report finished once it elapses regardless of release.

// DrumKick is a low sine thump with a slow pitch drop and a trace of noise.
type DrumKick struct {
	Env         ADSR
	Volume      float64
	MaxLifeTime float64
}

func NewDrumKick() *DrumKick {
	env := DefaultADSR()
	env.AttackTime = 0.01
	env.DecayTime = 0.15
	env.SustainAmplitude = 0.0
	env.ReleaseTime = 0.0
	return &DrumKick{Env: env, Volume: 1.0, MaxLifeTime: 1.5}
}

func (d *DrumKick) Name() string { return "Drum Kick" }

func (d *DrumKick) Clone() Instrument {
	c := *d
	return &c
}

func (d *DrumKick) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	amplitude := d.Env.Amplitude(time, timeOn, timeOff)
	sound := 0.99*Signal(time-timeOn, Frequency(pitch-36), Sine, LFO{Hertz: 1, Amplitude: 1}) +
		0.01*Signal(time-timeOn, 0, Noise, LFO{})
	return amplitude * sound * d.Volume,
		d.MaxLifeTime > 0 && time-timeOn >= d.MaxLifeTime
}

// DrumSnare splits its energy evenly between a wobbling mid sine and noise.
type DrumSnare struct {
	Env         ADSR
	Volume      float64
	MaxLifeTime float64
}

func NewDrumSnare() *DrumSnare {
	env := DefaultADSR()
	env.AttackTime = 0.0
	env.DecayTime = 0.2
	env.SustainAmplitude = 0.0
	env.ReleaseTime = 0.0
	return &DrumSnare{Env: env, Volume: 1.0, MaxLifeTime: 1.0}
}

func (d *DrumSnare) Name() string { return "Drum Snare" }

func (d *DrumSnare) Clone() Instrument {
	c := *d
	return &c
}

func (d *DrumSnare) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	amplitude := d.Env.Amplitude(time, timeOn, timeOff)
	sound := 0.5*Signal(time-timeOn, Frequency(pitch-24), Sine, LFO{Hertz: 0.5, Amplitude: 1}) +
		0.5*Signal(time-timeOn, 0, Noise, LFO{})
	return amplitude * sound * d.Volume,
		d.MaxLifeTime > 0 && time-timeOn >= d.MaxLifeTime
}

// DrumHiHat is mostly noise over a thin square tick.
type DrumHiHat struct {
	Env         ADSR
	Volume      float64
	MaxLifeTime float64
}

func NewDrumHiHat() *DrumHiHat {
	env := DefaultADSR()
	env.AttackTime = 0.01
	env.DecayTime = 0.05
	env.SustainAmplitude = 0.0
	env.ReleaseTime = 0.0
	return &DrumHiHat{Env: env, Volume: 0.5, MaxLifeTime: 1.0}
}

func (d *DrumHiHat) Name() string { return "Drum HiHat" }

func (d *DrumHiHat) Clone() Instrument {
	c := *d
	return &c
}

func (d *DrumHiHat) Sound(time, timeOn, timeOff float64, pitch int) (float64, bool) {
	amplitude := d.Env.Amplitude(time, timeOn, timeOff)
	sound := 0.1*Signal(time-timeOn, Frequency(pitch-12), Square, LFO{Hertz: 1.5, Amplitude: 1}) +
		0.9*Signal(time-timeOn, 0, Noise, LFO{})
	return amplitude * sound * d.Volume,
		d.MaxLifeTime > 0 && time-timeOn >= d.MaxLifeTime
}
