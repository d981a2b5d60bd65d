package soundmaker

// amplitudeEpsilon is the 64-bit machine epsilon. Envelope output at or
// below it is clamped to exactly 0, which is the signal the mixer uses to
// retire a note.
const amplitudeEpsilon = 2.220446049250313e-16

// ADSR is a four-phase amplitude envelope: a linear attack from 0 to
// StartAmplitude, a linear decay to SustainAmplitude, a hold at
// SustainAmplitude until release, and a linear release to 0.
//
// Plucked/struck timbres set SustainAmplitude to 0 so the note dies out
// on its own; see the presets in instruments.go.
type ADSR struct {
	AttackTime       float64
	DecayTime        float64
	ReleaseTime      float64
	SustainAmplitude float64
	StartAmplitude   float64
}

// DefaultADSR returns a general-purpose envelope: 100 ms attack and decay,
// 200 ms release, full sustain.
func DefaultADSR() ADSR {
	return ADSR{
		AttackTime:       0.1,
		DecayTime:        0.1,
		ReleaseTime:      0.2,
		SustainAmplitude: 1.0,
		StartAmplitude:   1.0,
	}
}

// Amplitude returns the envelope level in [0, 1] at the given time for a
// note switched on at timeOn and off at timeOff. While the note is
// sounding (timeOn > timeOff) only the attack/decay curve applies. After
// release the fade starts from the level the curve had reached at the
// moment of release, so a note released mid-attack fades from its true
// in-flight level rather than from sustain.
func (e ADSR) Amplitude(time, timeOn, timeOff float64) float64 {
	var amplitude float64
	if timeOn > timeOff {
		amplitude = e.curveAt(time - timeOn)
	} else if e.ReleaseTime > 0 {
		releaseAmplitude := e.curveAt(timeOff - timeOn)
		amplitude = releaseAmplitude - (time-timeOff)/e.ReleaseTime*releaseAmplitude
	}
	if amplitude <= amplitudeEpsilon {
		return 0
	}
	return amplitude
}

// curveAt evaluates the attack/decay/sustain portion at lifeTime seconds
// after note-on.
func (e ADSR) curveAt(lifeTime float64) float64 {
	switch {
	case e.AttackTime > 0 && lifeTime <= e.AttackTime:
		return lifeTime / e.AttackTime * e.StartAmplitude
	case lifeTime <= e.AttackTime+e.DecayTime:
		if e.DecayTime <= 0 {
			return e.SustainAmplitude
		}
		return (lifeTime-e.AttackTime)/e.DecayTime*(e.SustainAmplitude-e.StartAmplitude) +
			e.StartAmplitude
	default:
		return e.SustainAmplitude
	}
}
